package store

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/aussiebroadwan/tomato/pkg/shopsdk"
	"github.com/aussiebroadwan/tomato/pkg/slogx"
)

// AccessTokenKey is the storage key of the session credential.
const AccessTokenKey = "access_token"

// CredentialStore keeps the session credential in LocalStorage. It implements
// the credential source the profile view reads from.
type CredentialStore struct {
	store Store
	now   func() time.Time
}

// NewCredentialStore creates a CredentialStore backed by s.
func NewCredentialStore(s Store) *CredentialStore {
	return &CredentialStore{store: s, now: time.Now}
}

// AccessToken returns the stored credential, or "" when none is stored. A JWT
// credential that has already expired counts as none and is removed.
func (c *CredentialStore) AccessToken(ctx context.Context) (string, error) {
	token, err := c.store.LocalStorage().GetItem(ctx, AccessTokenKey)
	if errors.Is(err, ErrNotFound) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("read %s: %w", AccessTokenKey, err)
	}

	if shopsdk.CredentialExpired(token, c.now()) {
		l := slogx.FromContext(ctx)
		l.Info("stored credential expired, discarding")
		if err := c.store.LocalStorage().RemoveItem(ctx, AccessTokenKey); err != nil {
			l.Warn("failed to remove expired credential", slog.Any("error", err))
		}
		return "", nil
	}

	return token, nil
}

// SetAccessToken stores token as the session credential.
func (c *CredentialStore) SetAccessToken(ctx context.Context, token string) error {
	return c.store.LocalStorage().SetItem(ctx, AccessTokenKey, token)
}

// ClearAccessToken removes the session credential.
func (c *CredentialStore) ClearAccessToken(ctx context.Context) error {
	return c.store.LocalStorage().RemoveItem(ctx, AccessTokenKey)
}

// PurgeExpired removes the stored credential if it is an expired JWT. It
// reports whether a credential was removed.
func (c *CredentialStore) PurgeExpired(ctx context.Context) (bool, error) {
	token, err := c.store.LocalStorage().GetItem(ctx, AccessTokenKey)
	if errors.Is(err, ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("read %s: %w", AccessTokenKey, err)
	}

	if !shopsdk.CredentialExpired(token, c.now()) {
		return false, nil
	}
	if err := c.store.LocalStorage().RemoveItem(ctx, AccessTokenKey); err != nil {
		return false, fmt.Errorf("remove %s: %w", AccessTokenKey, err)
	}
	return true, nil
}
