package cryptocurrency

import (
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"time"

	"github.com/BitLeap/BitLeap-Backend/providers"
	"github.com/BitLeap/BitLeap-Backend/utils"
	"github.com/shopspring/decimal"
)

// ErrUpstreamUnavailable covers every failure mode of the live price fetch:
// transport errors, non-200 responses and unparseable bodies. Callers fall
// back to cached or static prices instead of surfacing it.
var ErrUpstreamUnavailable = fmt.Errorf("rates upstream unavailable")

type CoinGeckoProvider struct {
	providers.BaseProvider
	config *RatesProviderConfig
}

type RatesProviderConfig struct {
	RatesProviderName  string `mapstructure:"RATES_PROVIDER_NAME"`
	CoinGeckoBaseUrl   string `mapstructure:"COINGECKO_BASE_URL"`
	CoinGeckoAccessKey string `mapstructure:"COINGECKO_ACCESS_KEY"`
}

func NewRatesProvider() (*CoinGeckoProvider, error) {
	var c RatesProviderConfig

	err := utils.LoadCustomConfig(utils.EnvPath, &c)
	if err != nil {
		return nil, fmt.Errorf("could not load rates provider config: %w", err)
	}

	if c.RatesProviderName == "" {
		c.RatesProviderName = providers.CoinGecko
	}

	return &CoinGeckoProvider{
		BaseProvider: providers.BaseProvider{
			Name:    c.RatesProviderName,
			BaseURL: c.CoinGeckoBaseUrl,
			APIKey:  c.CoinGeckoAccessKey,
			Client: &http.Client{
				Timeout: time.Second * 30,
			},
		},
		config: &c,
	}, nil
}

// GetSpotPrice fetches the current USDT price of the pair's base asset.
// It returns a strictly positive finite price or ErrUpstreamUnavailable.
func (c *CoinGeckoProvider) GetSpotPrice(pair string) (decimal.Decimal, error) {
	coinID, ok := supportedPairs[pair]
	if !ok {
		return decimal.Zero, fmt.Errorf("unrecognized pair: %v", pair)
	}

	base, err := url.Parse(c.BaseURL)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: bad base url: %v", ErrUpstreamUnavailable, err)
	}

	base.Path += "/simple/price"
	params := url.Values{}
	params.Add("ids", coinID)
	params.Add("vs_currencies", "usd")
	base.RawQuery = params.Encode()

	resp, err := c.MakeRequest("GET", base.String(), nil, nil)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return decimal.Zero, fmt.Errorf("%w: unexpected status code %d", ErrUpstreamUnavailable, resp.StatusCode)
	}

	var payload map[string]map[string]float64
	decoder := json.NewDecoder(resp.Body)
	if err := decoder.Decode(&payload); err != nil {
		return decimal.Zero, fmt.Errorf("%w: error decoding response body: %v", ErrUpstreamUnavailable, err)
	}

	rate, ok := payload[coinID]["usd"]
	if !ok {
		return decimal.Zero, fmt.Errorf("%w: no usd value for %v in response", ErrUpstreamUnavailable, coinID)
	}

	if rate <= 0 || math.IsInf(rate, 0) || math.IsNaN(rate) {
		return decimal.Zero, fmt.Errorf("%w: non-positive price %v for %v", ErrUpstreamUnavailable, rate, coinID)
	}

	return decimal.NewFromFloat(rate), nil
}
