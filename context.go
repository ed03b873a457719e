package gostamp

import (
	"context"
)

// stampKey is an unexported context key type.
type stampKey struct{}
type skipKey struct{}

// WithModifiedBy overrides the stamp value for saves run with the returned context.
func WithModifiedBy(ctx context.Context, id int64) context.Context {
	return context.WithValue(ctx, stampKey{}, id)
}

// WithSkip marks the context so gostamp leaves entities untouched.
func WithSkip(ctx context.Context) context.Context {
	return context.WithValue(ctx, skipKey{}, true)
}

// extractModifiedBy extracts the stamp override from context.
func extractModifiedBy(ctx context.Context) (int64, bool) {
	if v, ok := ctx.Value(stampKey{}).(int64); ok {
		return v, true
	}
	return 0, false
}

// extractSkip extracts skip flag from context.
func extractSkip(ctx context.Context) bool {
	if v, ok := ctx.Value(skipKey{}).(bool); ok {
		return v
	}
	return false
}
