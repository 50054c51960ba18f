package cryptocurrency_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/BitLeap/BitLeap-Backend/providers"
	"github.com/BitLeap/BitLeap-Backend/providers/cryptocurrency"
	"github.com/shopspring/decimal"
)

func newTestProvider(baseURL string) *cryptocurrency.CoinGeckoProvider {
	return &cryptocurrency.CoinGeckoProvider{
		BaseProvider: providers.BaseProvider{
			Name:    providers.CoinGecko,
			BaseURL: baseURL,
			Client:  &http.Client{Timeout: time.Second},
		},
	}
}

func TestGetSpotPrice_ParsesUpstreamResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("ids"); got != "bitcoin" {
			t.Errorf("ids param: got %q, want %q", got, "bitcoin")
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"bitcoin":{"usd":96123.5}}`))
	}))
	defer srv.Close()

	price, err := newTestProvider(srv.URL).GetSpotPrice("BTC/USDT")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !price.Equal(decimal.NewFromFloat(96123.5)) {
		t.Errorf("got %v, want 96123.5", price)
	}
}

func TestGetSpotPrice_Non200IsUpstreamUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	_, err := newTestProvider(srv.URL).GetSpotPrice("BTC/USDT")
	if !errors.Is(err, cryptocurrency.ErrUpstreamUnavailable) {
		t.Errorf("got %v, want ErrUpstreamUnavailable", err)
	}
}

func TestGetSpotPrice_GarbageBodyIsUpstreamUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html>rate limited</html>`))
	}))
	defer srv.Close()

	_, err := newTestProvider(srv.URL).GetSpotPrice("ETH/USDT")
	if !errors.Is(err, cryptocurrency.ErrUpstreamUnavailable) {
		t.Errorf("got %v, want ErrUpstreamUnavailable", err)
	}
}

func TestGetSpotPrice_NonPositivePriceRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"solana":{"usd":0}}`))
	}))
	defer srv.Close()

	_, err := newTestProvider(srv.URL).GetSpotPrice("SOL/USDT")
	if !errors.Is(err, cryptocurrency.ErrUpstreamUnavailable) {
		t.Errorf("got %v, want ErrUpstreamUnavailable", err)
	}
}

func TestGetSpotPrice_UnrecognizedPair(t *testing.T) {
	_, err := newTestProvider("http://127.0.0.1:1").GetSpotPrice("DOGE/EUR")
	if err == nil {
		t.Fatal("expected an error for an unsupported pair")
	}
	if errors.Is(err, cryptocurrency.ErrUpstreamUnavailable) {
		t.Error("pair validation should fail before any network call")
	}
}

func TestIsSupportedPair(t *testing.T) {
	if !cryptocurrency.IsSupportedPair("BTC/USDT") {
		t.Error("BTC/USDT should be supported")
	}
	if cryptocurrency.IsSupportedPair("BTC/EUR") {
		t.Error("BTC/EUR should not be supported")
	}
}

func TestFallbackPricesCoverSupportedPairs(t *testing.T) {
	for _, pair := range cryptocurrency.SupportedPairs() {
		v, ok := cryptocurrency.FallbackPrices[pair]
		if !ok {
			t.Errorf("no fallback price for %v", pair)
			continue
		}
		price, err := decimal.NewFromString(v)
		if err != nil || !price.IsPositive() {
			t.Errorf("fallback price for %v is not a positive decimal: %q", pair, v)
		}
	}
}
