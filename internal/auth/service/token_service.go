// Package service implements bearer token signing and verification.
package service

import (
	"time"

	jwt "github.com/golang-jwt/jwt/v5"

	authDomain "github.com/allisson/posts/internal/auth/domain"
	apperrors "github.com/allisson/posts/internal/errors"
)

// TokenService signs and verifies bearer tokens against a shared secret.
type TokenService interface {
	// Sign creates a token carrying the given user id, valid for ttl.
	Sign(userID string, ttl time.Duration) (string, error)

	// Verify validates a token's signature and expiry and returns the
	// embedded identity. Any failure returns ErrInvalidCredential with
	// the underlying reason preserved in the chain for logging.
	Verify(token string) (*authDomain.Identity, error)
}

// jwtTokenService implements TokenService using HMAC-SHA256 signatures.
type jwtTokenService struct {
	secret []byte
}

// NewTokenService creates a TokenService for the given shared secret.
// The secret is read once at startup; an empty secret is a configuration
// error and verification fails closed by refusing to construct.
func NewTokenService(secret string) (TokenService, error) {
	if secret == "" {
		return nil, apperrors.New("jwt secret key must not be empty")
	}
	return &jwtTokenService{secret: []byte(secret)}, nil
}

// Sign creates an HS256 token with the user id claim and expiry.
func (s *jwtTokenService) Sign(userID string, ttl time.Duration) (string, error) {
	now := time.Now().UTC()
	claims := authDomain.Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", apperrors.Wrap(err, "failed to sign token")
	}
	return signed, nil
}

// Verify parses and validates the token. Only HS256 is accepted; expiry is
// enforced by the registered claims validation.
func (s *jwtTokenService) Verify(tokenString string) (*authDomain.Identity, error) {
	var claims authDomain.Claims

	token, err := jwt.ParseWithClaims(
		tokenString,
		&claims,
		func(token *jwt.Token) (any, error) {
			return s.secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInvalidCredential, err.Error())
	}
	if !token.Valid {
		return nil, apperrors.ErrInvalidCredential
	}
	if claims.UserID == "" {
		return nil, apperrors.Wrap(apperrors.ErrInvalidCredential, "token missing user_id claim")
	}

	return &authDomain.Identity{UserID: claims.UserID}, nil
}
