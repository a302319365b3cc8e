package shopsdk_test

import (
	"testing"
	"time"

	"github.com/aussiebroadwan/tomato/pkg/shopsdk"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

func signedToken(t *testing.T, exp *time.Time) string {
	t.Helper()

	claims := jwt.RegisteredClaims{Subject: "alice"}
	if exp != nil {
		claims.ExpiresAt = jwt.NewNumericDate(*exp)
	}
	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return raw
}

func TestCredentialExpired(t *testing.T) {
	t.Parallel()

	now := time.Now()
	past := now.Add(-time.Minute)
	future := now.Add(time.Hour)

	t.Run("expired jwt", func(t *testing.T) {
		require.True(t, shopsdk.CredentialExpired(signedToken(t, &past), now))
	})

	t.Run("expired jwt with bearer prefix", func(t *testing.T) {
		require.True(t, shopsdk.CredentialExpired("Bearer "+signedToken(t, &past), now))
	})

	t.Run("valid jwt", func(t *testing.T) {
		require.False(t, shopsdk.CredentialExpired(signedToken(t, &future), now))
	})

	t.Run("jwt without exp", func(t *testing.T) {
		require.False(t, shopsdk.CredentialExpired(signedToken(t, nil), now))
	})

	t.Run("opaque token", func(t *testing.T) {
		require.False(t, shopsdk.CredentialExpired("not-a-jwt", now))
		require.False(t, shopsdk.CredentialExpired("", now))
	})
}
