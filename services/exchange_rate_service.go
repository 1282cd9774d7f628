package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/invoxa/invoxa-api/interfaces"
	"github.com/invoxa/invoxa-api/logger"
	"github.com/invoxa/invoxa-api/types/api/params"
	"github.com/invoxa/invoxa-api/types/api/responses"
	"go.uber.org/zap"
)

// fallbackRatesAsOf is the snapshot date of the static table below. The
// timestamp rides along on every fallback result so consumers can reason
// about staleness instead of trusting the numbers implicitly.
var fallbackRatesAsOf = time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC)

// fallbackRates are approximate USD-based rates used when the live source
// is unreachable. Non-authoritative by definition.
var fallbackRates = map[string]float64{
	"USD": 1,
	"EUR": 0.93,
	"GBP": 0.79,
	"JPY": 144.17,
	"CAD": 1.34,
	"AUD": 1.49,
	"NZD": 1.62,
	"CHF": 0.89,
	"CNY": 7.24,
	"INR": 82.97,
	"MXN": 17.07,
	"BRL": 4.92,
	"SGD": 1.34,
}

// cachedRate is one cache entry; entries expire after the service TTL.
type cachedRate struct {
	rate      float64
	updatedAt time.Time
	expiresAt time.Time
}

// ExchangeRateService resolves currency-pair rates from a live source with
// an in-memory TTL cache and a static fallback table. Concurrent cache
// population races are benign: writes are idempotent and last-write-wins.
type ExchangeRateService struct {
	source     interfaces.RateSource
	logger     *zap.Logger
	cache      map[string]*cachedRate
	cacheMutex sync.RWMutex
	cacheTTL   time.Duration
	now        func() time.Time
}

// NewExchangeRateService creates an exchange rate service over the given
// live source. Rates are cached for one hour.
func NewExchangeRateService(source interfaces.RateSource) *ExchangeRateService {
	return &ExchangeRateService{
		source:   source,
		logger:   logger.Log,
		cache:    make(map[string]*cachedRate),
		cacheTTL: time.Hour,
		now:      time.Now,
	}
}

// GetExchangeRate returns the rate for one currency pair. Resolution order
// is cache, live source, static fallback; the result's Source field records
// which one answered. The error return is reserved for invalid input; an
// unreachable live source is not an error here.
func (s *ExchangeRateService) GetExchangeRate(ctx context.Context, p params.ExchangeRateParams) (*responses.ExchangeRateResult, error) {
	if p.Base == "" || p.Target == "" {
		return nil, fmt.Errorf("exchange rate lookup requires base and target currencies")
	}

	cacheKey := p.Base + "_" + p.Target

	if entry := s.getCachedRate(cacheKey); entry != nil {
		return &responses.ExchangeRateResult{
			Base:   p.Base,
			Target: p.Target,
			Rate:   entry.rate,
			Source: responses.RateSourceCache,
			AsOf:   entry.updatedAt,
		}, nil
	}

	rates, err := s.source.FetchRates(ctx, p.Base, []string{p.Target})
	if err == nil {
		rate, ok := rates[p.Target]
		if !ok {
			err = fmt.Errorf("rate source returned no rate for %s", p.Target)
		} else {
			s.setCachedRate(cacheKey, rate)
			return &responses.ExchangeRateResult{
				Base:   p.Base,
				Target: p.Target,
				Rate:   rate,
				Source: responses.RateSourceLive,
				AsOf:   s.now(),
			}, nil
		}
	}

	s.logger.Warn("live exchange rate fetch failed, using static fallback rates",
		zap.String("base", p.Base),
		zap.String("target", p.Target),
		zap.Error(err))

	return &responses.ExchangeRateResult{
		Base:   p.Base,
		Target: p.Target,
		Rate:   fallbackRate(p.Base, p.Target),
		Source: responses.RateSourceFallback,
		AsOf:   fallbackRatesAsOf,
	}, nil
}

func (s *ExchangeRateService) getCachedRate(key string) *cachedRate {
	s.cacheMutex.RLock()
	defer s.cacheMutex.RUnlock()

	entry, ok := s.cache[key]
	if !ok || s.now().After(entry.expiresAt) {
		return nil
	}
	return entry
}

func (s *ExchangeRateService) setCachedRate(key string, rate float64) {
	s.cacheMutex.Lock()
	defer s.cacheMutex.Unlock()

	now := s.now()
	s.cache[key] = &cachedRate{
		rate:      rate,
		updatedAt: now,
		expiresAt: now.Add(s.cacheTTL),
	}
}

// fallbackRate derives a cross rate from the USD-based static table. An
// unknown currency contributes a factor of 1, matching the permissive
// behavior of the upstream rate feed.
func fallbackRate(base, target string) float64 {
	targetRate, ok := fallbackRates[target]
	if !ok {
		targetRate = 1
	}
	if base == "USD" {
		return targetRate
	}
	baseRate, ok := fallbackRates[base]
	if !ok {
		baseRate = 1
	}
	return targetRate / baseRate
}
