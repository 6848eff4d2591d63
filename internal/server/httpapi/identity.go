// Package httpapi exposes the REST surface: chi router, auth gateway,
// rate limiting, request validation and the JSON response envelope.
package httpapi

import (
	"context"
	"time"
)

type ctxKey int

const identityKey ctxKey = iota

// Identity is the authenticated caller, resolved by the auth gateway from
// the bearer token and the user store. It is the only source of the caller
// id; handlers never read it from path, query or body.
type Identity struct {
	ID        string
	Name      string
	Email     string
	CreatedAt time.Time
}

// WithIdentity returns a context carrying the resolved identity.
func WithIdentity(ctx context.Context, id *Identity) context.Context {
	return context.WithValue(ctx, identityKey, id)
}

// IdentityFromContext returns the identity attached by the auth gateway.
// ok is false on routes the gateway did not guard.
func IdentityFromContext(ctx context.Context) (*Identity, bool) {
	id, ok := ctx.Value(identityKey).(*Identity)
	return id, ok
}
