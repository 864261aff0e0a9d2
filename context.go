package circumflex

import "context"

type skipComputeCtxKey struct{}

// WithSkipCompute returns context with lazy computation disabled.
//
// With such context CacheMap.Get returns ErrKeyNotFound for a missing key
// instead of invoking the compute function.
func WithSkipCompute(ctx context.Context) context.Context {
	return context.WithValue(ctx, skipComputeCtxKey{}, true)
}

// SkipCompute returns true if lazy computation is disabled in context.
func SkipCompute(ctx context.Context) bool {
	_, ok := ctx.Value(skipComputeCtxKey{}).(bool)
	return ok
}
