// Package requestctx carries per-request identity through context values.
package requestctx

import "context"

// adminIDContextKey is the context key for the authenticated admin identity.
type adminIDContextKey struct{}

// WithAdminID stores an admin user identifier in context.
func WithAdminID(ctx context.Context, adminID string) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, adminIDContextKey{}, adminID)
}

// AdminIDFromContext returns the admin user identifier stored in context.
func AdminIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	value, _ := ctx.Value(adminIDContextKey{}).(string)
	return value
}
