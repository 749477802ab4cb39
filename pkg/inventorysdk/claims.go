package inventorysdk

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenClaims is the client-side view of a token's payload. The zero value
// represents the anonymous state.
type TokenClaims struct {
	Subject   string
	Roles     []string
	ExpiresAt time.Time
}

// HasRole reports whether the claims carry the given role.
func (c TokenClaims) HasRole(role string) bool {
	for _, r := range c.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// Expired reports whether the token's expiry has passed. Claims without an
// expiry are treated as expired, since the service always sets one.
func (c TokenClaims) Expired(now time.Time) bool {
	if c.ExpiresAt.IsZero() {
		return true
	}
	return !now.Before(c.ExpiresAt)
}

type rawClaims struct {
	Roles []string `json:"roles"`
	jwt.RegisteredClaims
}

// DecodeClaims extracts claims from a token without verifying its signature.
// This is a display convenience only; the server verifies every request.
// Malformed or empty input yields zero claims, never an error, so corrupt
// stored tokens degrade to the anonymous state.
func DecodeClaims(token string) TokenClaims {
	if token == "" {
		return TokenClaims{}
	}

	parser := jwt.NewParser()
	var raw rawClaims
	if _, _, err := parser.ParseUnverified(token, &raw); err != nil {
		return TokenClaims{}
	}

	claims := TokenClaims{
		Subject: raw.Subject,
		Roles:   raw.Roles,
	}
	if raw.ExpiresAt != nil {
		claims.ExpiresAt = raw.ExpiresAt.Time
	}
	return claims
}
