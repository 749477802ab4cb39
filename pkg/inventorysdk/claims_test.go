package inventorysdk

import (
	"testing"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

func signedTestToken(t *testing.T, subject string, roles []string, expiresAt time.Time) string {
	t.Helper()

	claims := jwt.MapClaims{
		"sub":   subject,
		"roles": roles,
		"exp":   expiresAt.Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("any-secret"))
	require.NoError(t, err)
	return token
}

func TestDecodeClaims(t *testing.T) {
	t.Parallel()

	exp := time.Now().Add(time.Hour).Truncate(time.Second)
	token := signedTestToken(t, "user-123", []string{"User", "Admin"}, exp)

	claims := DecodeClaims(token)
	require.Equal(t, "user-123", claims.Subject)
	require.Equal(t, []string{"User", "Admin"}, claims.Roles)
	require.True(t, claims.ExpiresAt.Equal(exp))
	require.True(t, claims.HasRole("Admin"))
	require.False(t, claims.HasRole("SuperAdmin"))
	require.False(t, claims.Expired(time.Now()))
}

func TestDecodeClaimsMalformedInputIsAnonymous(t *testing.T) {
	t.Parallel()

	for _, input := range []string{
		"",
		"garbage",
		"a.b",
		"not.base64url.payload",
		"eyJhbGciOiJIUzI1NiJ9.!!!.sig",
	} {
		claims := DecodeClaims(input)
		require.Equal(t, TokenClaims{}, claims, "input %q", input)
	}
}

func TestClaimsExpiry(t *testing.T) {
	t.Parallel()

	now := time.Now()

	expired := TokenClaims{Subject: "u", ExpiresAt: now.Add(-time.Minute)}
	require.True(t, expired.Expired(now))

	live := TokenClaims{Subject: "u", ExpiresAt: now.Add(time.Minute)}
	require.False(t, live.Expired(now))

	// Missing expiry is treated as expired.
	require.True(t, TokenClaims{Subject: "u"}.Expired(now))
}
