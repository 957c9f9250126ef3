package cache

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"go-interest-calculator/domain"
)

// Store holds calculation results as strings
type Store interface {
	// Get returns the value for key. ok is false on a miss, which is not an error.
	Get(ctx context.Context, key string) (value string, ok bool, err error)

	// Set stores value under key for ttl. A zero ttl keeps the value until evicted.
	Set(ctx context.Context, key string, value string, ttl time.Duration) error
}

// Key builds the store key for method applied to inputs.
// Floats are formatted exactly so that distinct inputs never share a key.
func Key(method string, in domain.Inputs) string {
	return fmt.Sprintf("interest:%s:%s:%s:%s",
		method,
		strconv.FormatFloat(float64(in.Principal), 'g', -1, 64),
		strconv.FormatFloat(float64(in.Rate), 'g', -1, 64),
		strconv.FormatFloat(float64(in.Period), 'g', -1, 64),
	)
}
