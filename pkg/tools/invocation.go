package tools

import "context"

// Invocation identifies who a handler runs on behalf of. The runtime
// binds it into the handler context; identity-aware tools (memory) read
// it back instead of taking user IDs as arguments.
type Invocation struct {
	UserID    string
	SessionID string
	TraceID   string
}

type invocationKey struct{}

// WithInvocation binds inv into ctx.
func WithInvocation(ctx context.Context, inv Invocation) context.Context {
	return context.WithValue(ctx, invocationKey{}, inv)
}

// InvocationFrom returns the invocation bound into ctx, zero-valued when
// none was set.
func InvocationFrom(ctx context.Context) Invocation {
	inv, _ := ctx.Value(invocationKey{}).(Invocation)
	return inv
}
