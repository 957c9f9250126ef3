package calculator

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"go-interest-calculator/domain"
	"go-interest-calculator/interest"
)

func TestService(t *testing.T) {
	service := NewService()
	ctx := context.Background()

	tests := []struct {
		name    string
		in      domain.Inputs
		simple  domain.Amount
		diff    domain.Amount
		wantErr error
	}{
		{
			"two years at 5%",
			domain.Inputs{Principal: 1000, Rate: 5, Period: 2},
			1100,
			2.5,
			nil,
		},
		{
			"seven years at 9.9%",
			domain.Inputs{Principal: 8.9, Rate: 9.9, Period: 7},
			15.07,
			2.17,
			nil,
		},
		{
			"no time",
			domain.Inputs{Principal: 1000, Rate: 5, Period: 0},
			1000,
			0,
			nil,
		},
		{
			"negative rate",
			domain.Inputs{Principal: 1000, Rate: -5, Period: 2},
			0,
			0,
			interest.ErrInvalidValue,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			simple, err := service.Simple(ctx, tt.in)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Simple() error = %v, wantErr %v", err, tt.wantErr)
			}
			if simple != tt.simple {
				t.Errorf("Simple() got = %v, want %v", simple, tt.simple)
			}

			diff, err := service.Difference(ctx, tt.in)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Difference() error = %v, wantErr %v", err, tt.wantErr)
			}
			if diff != tt.diff {
				t.Errorf("Difference() got = %v, want %v", diff, tt.diff)
			}

			compound, err := service.Compound(ctx, tt.in)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Compound() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr != nil && !reflect.DeepEqual(compound, domain.Compounded{}) {
				t.Errorf("Compound() got = %v on error", compound)
			}
		})
	}
}
