package interest

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRound2(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{1100, 1100},
		{15.0677, 15.07},
		{2.1658, 2.17},
		{2.1635, 2.16},
		{1.005, 1.01},
		{2.675, 2.68},
		{-1.005, -1.01},
		{0.004, 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, round2(tt.in), "round2(%v)", tt.in)
	}

	assert.True(t, math.IsInf(round2(math.Inf(1)), 1))
	assert.True(t, math.IsNaN(round2(math.NaN())))
}
