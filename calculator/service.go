package calculator

import (
	"context"

	"go-interest-calculator/domain"
	"go-interest-calculator/interest"
)

// Service computes interest for a set of inputs
type Service interface {
	// Simple final amount under simple interest, rounded to cents
	Simple(ctx context.Context, in domain.Inputs) (domain.Amount, error)

	// Compound interest earned and final amount under compound interest, unrounded
	Compound(ctx context.Context, in domain.Inputs) (domain.Compounded, error)

	// Difference compound final amount minus simple final amount, rounded to cents
	Difference(ctx context.Context, in domain.Inputs) (domain.Amount, error)
}

// service computes interest with the interest package
type service struct{}

// NewService constructs a valid Service
func NewService() Service {
	return &service{}
}

func (s *service) Simple(_ context.Context, in domain.Inputs) (domain.Amount, error) {
	amount, err := interest.Simple(float64(in.Principal), float64(in.Rate), float64(in.Period))
	if err != nil {
		return 0, err
	}
	return domain.Amount(amount), nil
}

func (s *service) Compound(_ context.Context, in domain.Inputs) (domain.Compounded, error) {
	earned, amount, err := interest.Compound(float64(in.Principal), float64(in.Rate), float64(in.Period))
	if err != nil {
		return domain.Compounded{}, err
	}
	return domain.Compounded{
		Interest: domain.Amount(earned),
		Amount:   domain.Amount(amount),
	}, nil
}

func (s *service) Difference(_ context.Context, in domain.Inputs) (domain.Amount, error) {
	difference, err := interest.Difference(float64(in.Principal), float64(in.Rate), float64(in.Period))
	if err != nil {
		return 0, err
	}
	return domain.Amount(difference), nil
}
