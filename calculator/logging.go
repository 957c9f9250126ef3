package calculator

import (
	"context"
	"time"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"

	"go-interest-calculator/domain"
)

// loggingService decorates a calculator.Service with logging
type loggingService struct {
	logger log.Logger
	next   Service
}

// NewLoggingService returns a new instance of a logging Service
func NewLoggingService(logger log.Logger, s Service) Service {
	return &loggingService{
		next:   s,
		logger: logger,
	}
}

// log writes one info line per call, tagged with the request id when there is one
func (s *loggingService) log(ctx context.Context, keyvals ...interface{}) {
	if id := RequestID(ctx); id != "" {
		keyvals = append(keyvals, "request_id", id)
	}
	_ = level.Info(s.logger).Log(keyvals...)
}

func (s *loggingService) Simple(ctx context.Context, in domain.Inputs) (amount domain.Amount, err error) {
	defer func(begin time.Time) {
		s.log(ctx,
			"method", "simple",
			"principal", in.Principal,
			"rate", in.Rate,
			"period", in.Period,
			"amount", amount,
			"took", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Simple(ctx, in)
}

func (s *loggingService) Compound(ctx context.Context, in domain.Inputs) (result domain.Compounded, err error) {
	defer func(begin time.Time) {
		s.log(ctx,
			"method", "compound",
			"principal", in.Principal,
			"rate", in.Rate,
			"period", in.Period,
			"interest", result.Interest,
			"amount", result.Amount,
			"took", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Compound(ctx, in)
}

func (s *loggingService) Difference(ctx context.Context, in domain.Inputs) (difference domain.Amount, err error) {
	defer func(begin time.Time) {
		s.log(ctx,
			"method", "difference",
			"principal", in.Principal,
			"rate", in.Rate,
			"period", in.Period,
			"difference", difference,
			"took", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Difference(ctx, in)
}
