package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"go-interest-calculator/domain"
)

func TestKey(t *testing.T) {
	in := domain.Inputs{Principal: 8.9, Rate: 9.9, Period: 7}
	assert.Equal(t, "interest:simple:8.9:9.9:7", Key("simple", in))
	assert.NotEqual(t, Key("simple", in), Key("compound", in))
	assert.NotEqual(t, Key("simple", in), Key("simple", domain.Inputs{Principal: 8.9, Rate: 9.9, Period: 7.0000001}))
}

func TestRedis_Unreachable(t *testing.T) {
	// nothing listens on port 1
	r := NewRedis("127.0.0.1:1", 0)
	defer r.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	_, ok, err := r.Get(ctx, "k")
	assert.Error(t, err)
	assert.False(t, ok)

	assert.Error(t, r.Set(ctx, "k", "v", time.Minute))
	assert.Error(t, r.Ping(ctx))
}
