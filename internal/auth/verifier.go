package auth

import (
	"context"
	"fmt"

	"github.com/MicahParks/keyfunc/v3"
	"github.com/golang-jwt/jwt/v5"

	"github.com/pitwall-dev/portfolio-backend/internal/auth/domain"
)

// SessionClaims are the claims the auth service puts in its access tokens.
type SessionClaims struct {
	jwt.RegisteredClaims
	Email string `json:"email"`
	Role  string `json:"role"`
}

// Verifier validates access tokens locally so protected routes do not pay a
// round trip to the auth service on every request.
type Verifier interface {
	VerifyToken(tokenString string) (*SessionClaims, error)
}

// JWKSVerifier verifies tokens against the auth service's published JWKS.
// Keys are cached and refreshed by keyfunc based on HTTP cache headers.
type JWKSVerifier struct {
	jwks keyfunc.Keyfunc
}

// NewJWKSVerifier fetches the key set from jwksURL.
func NewJWKSVerifier(ctx context.Context, jwksURL string) (*JWKSVerifier, error) {
	if jwksURL == "" {
		return nil, fmt.Errorf("jwks url required")
	}

	jwks, err := keyfunc.NewDefaultCtx(ctx, []string{jwksURL})
	if err != nil {
		return nil, fmt.Errorf("failed to create JWKS client: %w", err)
	}

	return &JWKSVerifier{jwks: jwks}, nil
}

// VerifyToken parses and validates a token, returning its claims.
func (v *JWKSVerifier) VerifyToken(tokenString string) (*SessionClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, v.jwks.Keyfunc)
	if err != nil || !token.Valid {
		return nil, domain.ErrUnauthorized
	}

	// Reject unexpected algorithms to prevent algorithm confusion.
	switch token.Method.Alg() {
	case "RS256", "ES256":
	default:
		return nil, domain.ErrUnauthorized
	}

	claims, ok := token.Claims.(*SessionClaims)
	if !ok || claims.Subject == "" {
		return nil, domain.ErrUnauthorized
	}

	// Anonymous tokens carry a different role; only signed-in sessions pass.
	if claims.Role != "authenticated" {
		return nil, domain.ErrUnauthorized
	}

	return claims, nil
}
