package pricing

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/BitLeap/BitLeap-Backend/providers/cryptocurrency"
	"github.com/BitLeap/BitLeap-Backend/services"
	"github.com/BitLeap/BitLeap-Backend/services/monitoring/logging"
	gocache "github.com/patrickmn/go-cache"
	"github.com/shopspring/decimal"
)

const (
	spotKeyPrefix = "spot:"
	spotCacheTTL  = 5 * time.Second

	// Retry budget for the live read: 250ms, 500ms, then give up.
	backoffBase   = 250 * time.Millisecond
	backoffFactor = 2
	maxAttempts   = 3
)

// SpotFetcher is what the pricing service needs from the rates provider.
type SpotFetcher interface {
	GetSpotPrice(pair string) (decimal.Decimal, error)
}

type PricingService struct {
	provider  SpotFetcher
	cache     *services.RedisService
	lastKnown *gocache.Cache
	logger    *logging.Logger
}

func NewPricingService(provider SpotFetcher, cache *services.RedisService, logger *logging.Logger) *PricingService {
	return &PricingService{
		provider:  provider,
		cache:     cache,
		lastKnown: gocache.New(30*time.Minute, 10*time.Minute),
		logger:    logger,
	}
}

// GetPrice returns the current spot price for the pair. Resolution order:
// redis cache, live fetch (with backoff), last price this process saw, then
// the static fallback table. Only a pair absent from all four fails.
func (s *PricingService) GetPrice(ctx context.Context, pair string) (decimal.Decimal, error) {
	return s.getPrice(ctx, pair, maxAttempts)
}

func (s *PricingService) getPrice(ctx context.Context, pair string, attempts int) (decimal.Decimal, error) {
	if !cryptocurrency.IsSupportedPair(pair) {
		return decimal.Zero, ErrUnknownPair
	}

	if s.cache != nil {
		cached, err := s.cache.Get(ctx, spotKeyPrefix+pair)
		if err == nil {
			if price, perr := decimal.NewFromString(cached); perr == nil && price.IsPositive() {
				return price, nil
			}
		} else if !services.IsMiss(err) {
			s.logger.Warn(fmt.Sprintf("redis price lookup failed for %v: %v", pair, err))
		}
	}

	price, err := s.fetchWithBackoff(ctx, pair, attempts)
	if err == nil {
		s.remember(ctx, pair, price)
		return price, nil
	}

	s.logger.Warn(fmt.Sprintf("live price fetch failed for %v, using fallback: %v", pair, err))
	return s.fallback(pair)
}

func (s *PricingService) fetchWithBackoff(ctx context.Context, pair string, attempts int) (decimal.Decimal, error) {
	var lastErr error
	delay := backoffBase
	for attempt := 0; attempt < attempts; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return decimal.Zero, ctx.Err()
			case <-time.After(delay):
			}
			delay *= backoffFactor
		}

		price, err := s.provider.GetSpotPrice(pair)
		if err == nil {
			return price, nil
		}
		lastErr = err
	}
	return decimal.Zero, lastErr
}

func (s *PricingService) remember(ctx context.Context, pair string, price decimal.Decimal) {
	s.lastKnown.Set(pair, price, gocache.DefaultExpiration)
	if s.cache != nil {
		if err := s.cache.Set(ctx, spotKeyPrefix+pair, price.String(), spotCacheTTL); err != nil {
			s.logger.Warn(fmt.Sprintf("failed to cache price for %v: %v", pair, err))
		}
	}
}

func (s *PricingService) fallback(pair string) (decimal.Decimal, error) {
	if v, found := s.lastKnown.Get(pair); found {
		if price, ok := v.(decimal.Decimal); ok && price.IsPositive() {
			return price, nil
		}
	}

	if v, ok := cryptocurrency.FallbackPrices[pair]; ok {
		price, err := decimal.NewFromString(v)
		if err == nil && price.IsPositive() {
			return price, nil
		}
	}

	return decimal.Zero, ErrPriceUnavailable
}

type Ticker struct {
	Pair  string `json:"pair"`
	Price string `json:"price"`
}

// Tickers lists every supported pair with its current price. Pairs whose
// price cannot be resolved at all are skipped rather than failing the page.
// The live fetch gets a single attempt per pair here; with the upstream down
// the listing must not stack a full retry budget for every symbol.
func (s *PricingService) Tickers(ctx context.Context) []Ticker {
	pairs := cryptocurrency.SupportedPairs()
	sort.Strings(pairs)

	tickers := make([]Ticker, 0, len(pairs))
	for _, pair := range pairs {
		price, err := s.getPrice(ctx, pair, 1)
		if err != nil {
			s.logger.Warn(fmt.Sprintf("skipping ticker %v: %v", pair, err))
			continue
		}
		tickers = append(tickers, Ticker{Pair: pair, Price: price.String()})
	}
	return tickers
}
