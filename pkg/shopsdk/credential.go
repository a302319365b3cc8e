package shopsdk

import (
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// CredentialExpired reports whether raw is a JWT whose exp claim is at or
// before now. The signature is not verified; the backend remains the
// authority. Opaque or unparsable tokens are never considered expired.
func CredentialExpired(raw string, now time.Time) bool {
	raw = strings.TrimSpace(raw)
	if len(raw) > 7 && strings.EqualFold(raw[:7], "bearer ") {
		raw = strings.TrimSpace(raw[7:])
	}
	if raw == "" {
		return false
	}

	var claims jwt.RegisteredClaims
	if _, _, err := jwt.NewParser().ParseUnverified(raw, &claims); err != nil {
		return false
	}
	if claims.ExpiresAt == nil {
		return false
	}
	return !now.Before(claims.ExpiresAt.Time)
}
