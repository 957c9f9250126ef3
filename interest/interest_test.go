package interest

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimple(t *testing.T) {
	type args struct {
		principal   float64
		ratePercent float64
		years       float64
	}
	tests := []struct {
		name    string
		args    args
		want    float64
		wantErr error
	}{
		{"two years at 5%", args{1000.00, 5.0, 2.0}, 1100.00, nil},
		{"ten years at 3.5%", args{2500.00, 3.5, 10.0}, 3375.00, nil},
		{"fractional years", args{1000, 5, 2.5}, 1125.00, nil},
		{"rounded to cents", args{8.9, 9.9, 7}, 15.07, nil},
		{"zero time", args{1234.56, 7, 0}, 1234.56, nil},
		{"zero rate", args{1234.56, 0, 30}, 1234.56, nil},
		{"zero principal", args{0, 7, 30}, 0, nil},
		{"negative principal", args{-1, 5, 2}, 0, ErrInvalidValue},
		{"negative rate", args{1000, -5, 2}, 0, ErrInvalidValue},
		{"negative years", args{1000, 5, -2}, 0, ErrInvalidValue},
		{"nan principal", args{math.NaN(), 5, 2}, 0, ErrInvalidValue},
		{"infinite years", args{1000, 5, math.Inf(1)}, 0, ErrInvalidValue},
		{"zero principal huge rate", args{0, 1e308, 1e308}, 0, nil},
		{"overflowing amount", args{1e300, 1e300, 1e300}, 0, ErrInvalidValue},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Simple(tt.args.principal, tt.args.ratePercent, tt.args.years)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSimple_Monotonic(t *testing.T) {
	values := []float64{0, 0.5, 1, 2.25, 10, 99.99, 1000}

	for _, a := range values {
		for _, b := range values {
			for i, lo := range values {
				for _, hi := range values[i:] {
					p1, _ := Simple(lo, a, b)
					p2, _ := Simple(hi, a, b)
					assert.LessOrEqual(t, p1, p2, "principal %v -> %v", lo, hi)

					r1, _ := Simple(a, lo, b)
					r2, _ := Simple(a, hi, b)
					assert.LessOrEqual(t, r1, r2, "rate %v -> %v", lo, hi)

					y1, _ := Simple(a, b, lo)
					y2, _ := Simple(a, b, hi)
					assert.LessOrEqual(t, y1, y2, "years %v -> %v", lo, hi)
				}
			}
		}
	}
}

func TestCompound(t *testing.T) {
	interest, amount, err := Compound(8.9, 9.9, 7)
	require.NoError(t, err)
	assert.InDelta(t, 17.23351448836623, amount, 1e-9)
	assert.InDelta(t, 8.333514488366228, interest, 1e-9)
	assert.Equal(t, amount-8.9, interest)

	interest, amount, err = Compound(1000, 5, 1)
	require.NoError(t, err)
	assert.InDelta(t, 1050.0, amount, 1e-9)
	assert.InDelta(t, 50.0, interest, 1e-9)
}

func TestCompound_Unrounded(t *testing.T) {
	_, amount, err := Compound(1000, 5, 0.5)
	require.NoError(t, err)
	assert.NotEqual(t, round2(amount), amount)
}

func TestCompound_Boundaries(t *testing.T) {
	interest, amount, err := Compound(1234.56, 7, 0)
	require.NoError(t, err)
	assert.Equal(t, 1234.56, amount)
	assert.Equal(t, 0.0, interest)

	interest, amount, err = Compound(1234.56, 0, 30)
	require.NoError(t, err)
	assert.Equal(t, 1234.56, amount)
	assert.Equal(t, 0.0, interest)
}

func TestCompound_Overflow(t *testing.T) {
	type args struct {
		principal   float64
		ratePercent float64
		periods     float64
	}
	tests := []struct {
		name         string
		args         args
		wantInterest float64
		wantAmount   float64
		wantErr      error
	}{
		{"zero principal", args{0, 1e10, 1000}, 0, 0, nil},
		{"amount overflows", args{1000, 1e10, 1000}, 0, 0, ErrInvalidValue},
		{"largest finite", args{1, 100, 1023}, math.Pow(2, 1023) - 1, math.Pow(2, 1023), nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			interest, amount, err := Compound(tt.args.principal, tt.args.ratePercent, tt.args.periods)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, 0.0, amount)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantAmount, amount)
			assert.Equal(t, tt.wantInterest, interest)
		})
	}

	_, _, err := Compound(1000, 1e10, 1000)
	assert.EqualError(t, err, "compound interest: result [+Inf]: out of range")
}

func TestCompound_Negative(t *testing.T) {
	for _, args := range [][3]float64{{-1, 5, 2}, {1, -5, 2}, {1, 5, -2}} {
		_, _, err := Compound(args[0], args[1], args[2])
		assert.ErrorIs(t, err, ErrInvalidValue, "%v", args)
		assert.False(t, errors.Is(err, ErrNotNumeric))
	}
}

func TestCompound_DominatesSimple(t *testing.T) {
	for _, principal := range []float64{0.01, 8.9, 1000, 250000} {
		for _, rate := range []float64{0.1, 3.5, 9.9, 25} {
			for periods := 1.0; periods <= 30; periods++ {
				simple, err := Simple(principal, rate, periods)
				require.NoError(t, err)
				_, compound, err := Compound(principal, rate, periods)
				require.NoError(t, err)

				// simple is rounded to cents, compound is not
				assert.GreaterOrEqual(t, compound+0.005+1e-9, simple, "%v %v %v", principal, rate, periods)
			}
		}
	}
}

func TestDifference(t *testing.T) {
	type args struct {
		principal   float64
		ratePercent float64
		years       float64
	}
	tests := []struct {
		name    string
		args    args
		want    float64
		wantErr error
	}{
		{"seven years at 9.9%", args{8.9, 9.9, 7}, 2.17, nil},
		{"two years at 10%", args{1000, 10, 2}, 10.00, nil},
		{"one year ties", args{1000, 5, 1}, 0, nil},
		{"zero time", args{1000, 5, 0}, 0, nil},
		{"zero rate", args{1000, 0, 10}, 0, nil},
		{"zero principal huge rate", args{0, 1e10, 1000}, 0, nil},
		{"compound overflows", args{1000, 1e10, 1000}, 0, ErrInvalidValue},
		{"negative principal", args{-8.9, 9.9, 7}, 0, ErrInvalidValue},
		{"negative years", args{8.9, 9.9, -7}, 0, ErrInvalidValue},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Difference(tt.args.principal, tt.args.ratePercent, tt.args.years)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIdempotent(t *testing.T) {
	s1, _ := Simple(8.9, 9.9, 7)
	s2, _ := Simple(8.9, 9.9, 7)
	assert.Equal(t, s1, s2)

	i1, a1, _ := Compound(8.9, 9.9, 7)
	i2, a2, _ := Compound(8.9, 9.9, 7)
	assert.Equal(t, i1, i2)
	assert.Equal(t, a1, a2)

	d1, _ := Difference(8.9, 9.9, 7)
	d2, _ := Difference(8.9, 9.9, 7)
	assert.Equal(t, d1, d2)
}

func TestArgumentError(t *testing.T) {
	_, err := Simple(-1, 5, 2)

	var argErr *ArgumentError
	require.True(t, errors.As(err, &argErr))
	assert.Equal(t, "principal", argErr.Name)
	assert.Equal(t, -1.0, argErr.Value)
	assert.Equal(t, "simple interest: principal [-1]: must be non-negative", err.Error())
}
