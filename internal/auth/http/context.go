// Package http provides the authentication middleware and request context
// helpers for the token gate.
package http

import (
	"context"

	authDomain "github.com/allisson/posts/internal/auth/domain"
)

// identityKey is a context key type for storing verified identities.
type identityKey struct{}

// WithIdentity stores a verified identity in the context.
// Called by the authentication middleware after successful verification.
func WithIdentity(ctx context.Context, identity *authDomain.Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, identity)
}

// GetIdentity retrieves the verified identity from the context.
// Returns (identity, true) if present, or (nil, false) if no identity was
// set. Handlers behind the authentication middleware can rely on presence.
func GetIdentity(ctx context.Context) (*authDomain.Identity, bool) {
	identity, ok := ctx.Value(identityKey{}).(*authDomain.Identity)
	return identity, ok
}
