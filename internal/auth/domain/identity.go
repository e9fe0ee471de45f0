// Package domain defines the identity types produced by token verification.
package domain

import (
	jwt "github.com/golang-jwt/jwt/v5"
)

// Identity is the verified claim extracted from a bearer token.
// It is materialized fresh per request, never persisted, and immutable
// once attached to the request context.
type Identity struct {
	UserID string
}

// Claims is the JWT claim payload signed into bearer tokens.
// The user id is the only custom claim; expiry and issue time come from
// the registered claims and are enforced during verification.
type Claims struct {
	UserID string `json:"user_id"`
	jwt.RegisteredClaims
}
