package calculator

import "context"

type requestIDKey struct{}

// WithRequestID returns a copy of ctx carrying id, which the logging service reports
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// RequestID the request id carried by ctx, or "" if there is none
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}
