// Package requestid carries the per-request correlation id through contexts
// and across service hops.
package requestid

import "context"

// Header is the HTTP header both services read and forward.
const Header = "X-Request-ID"

type ctxKey struct{}

// NewContext returns a copy of ctx holding id.
func NewContext(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxKey{}, id)
}

// FromContext returns the id stored in ctx, or "" when none is set.
func FromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	id, _ := ctx.Value(ctxKey{}).(string)
	return id
}
