package calculator

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/go-kit/log"

	"go-interest-calculator/cache"
	"go-interest-calculator/domain"
)

// cachingService decorates a calculator.Service with a cache of results.
// Results depend only on the inputs, so a cached result never goes stale; ttl only bounds the
// size of the store. Errors are never cached and a failing store is bypassed.
type cachingService struct {
	// next the service being decorated with a cache
	next Service

	// store where results are kept
	store cache.Store

	// ttl how long results are kept
	ttl time.Duration

	logger log.Logger
}

// NewCachingService returns a new caching Service
func NewCachingService(store cache.Store, ttl time.Duration, logger log.Logger, s Service) Service {
	return &cachingService{
		next:   s,
		store:  store,
		ttl:    ttl,
		logger: logger,
	}
}

func (s *cachingService) Simple(ctx context.Context, in domain.Inputs) (domain.Amount, error) {
	key := cache.Key("simple", in)
	if v, ok := s.lookupFloat(ctx, key); ok {
		return domain.Amount(v), nil
	}

	amount, err := s.next.Simple(ctx, in)
	if err != nil {
		return 0, err
	}
	s.remember(ctx, key, formatFloat(float64(amount)))
	return amount, nil
}

func (s *cachingService) Compound(ctx context.Context, in domain.Inputs) (domain.Compounded, error) {
	key := cache.Key("compound", in)
	if v, ok := s.lookup(ctx, key); ok {
		if result, ok := parseCompounded(v); ok {
			return result, nil
		}
		s.logger.Log("msg", "discarding malformed cache entry", "key", key, "value", v)
	}

	result, err := s.next.Compound(ctx, in)
	if err != nil {
		return domain.Compounded{}, err
	}
	s.remember(ctx, key, formatFloat(float64(result.Interest))+" "+formatFloat(float64(result.Amount)))
	return result, nil
}

func (s *cachingService) Difference(ctx context.Context, in domain.Inputs) (domain.Amount, error) {
	key := cache.Key("difference", in)
	if v, ok := s.lookupFloat(ctx, key); ok {
		return domain.Amount(v), nil
	}

	difference, err := s.next.Difference(ctx, in)
	if err != nil {
		return 0, err
	}
	s.remember(ctx, key, formatFloat(float64(difference)))
	return difference, nil
}

// lookup treats a failing store as a miss
func (s *cachingService) lookup(ctx context.Context, key string) (string, bool) {
	v, ok, err := s.store.Get(ctx, key)
	if err != nil {
		s.logger.Log("msg", "cache lookup failed", "key", key, "err", err)
		return "", false
	}
	return v, ok
}

func (s *cachingService) lookupFloat(ctx context.Context, key string) (float64, bool) {
	v, ok := s.lookup(ctx, key)
	if !ok {
		return 0, false
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		s.logger.Log("msg", "discarding malformed cache entry", "key", key, "value", v)
		return 0, false
	}
	return f, true
}

func (s *cachingService) remember(ctx context.Context, key string, value string) {
	if err := s.store.Set(ctx, key, value, s.ttl); err != nil {
		s.logger.Log("msg", "cache store failed", "key", key, "err", err)
	}
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

func parseCompounded(v string) (domain.Compounded, bool) {
	interestPart, amountPart, found := strings.Cut(v, " ")
	if !found {
		return domain.Compounded{}, false
	}
	earned, err := strconv.ParseFloat(interestPart, 64)
	if err != nil {
		return domain.Compounded{}, false
	}
	amount, err := strconv.ParseFloat(amountPart, 64)
	if err != nil {
		return domain.Compounded{}, false
	}
	return domain.Compounded{Interest: domain.Amount(earned), Amount: domain.Amount(amount)}, true
}
