package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aussiebroadwan/tomato/internal/profile/domain"
	"github.com/aussiebroadwan/tomato/pkg/slogx"
)

// Load bootstraps the view. Without a stored credential it returns a redirect
// to the login page and makes no backend call. Otherwise it binds a session to
// the credential, fetches the base profile and, for sellers, the seller
// extension, and only then marks the view ready.
//
// Failures never escape: they are logged and shown as an error notice, and the
// previous state is kept.
func (v *ProfileView) Load(ctx context.Context) *Redirect {
	l := slogx.FromContext(ctx)

	token, err := v.svc.Credentials.AccessToken(ctx)
	if err != nil {
		v.fail(ctx, "failed to read credential", fmt.Errorf("%w: %w", ErrCredential, err), nil)
		return nil
	}
	if token == "" {
		l.Info("no credential stored, redirecting to login")
		return &Redirect{Location: v.svc.loginPath()}
	}

	backend := v.svc.Sessions(token)
	v.mu.Lock()
	v.backend = backend
	v.mu.Unlock()

	profile, seller, err := fetchProfile(ctx, backend)
	if err != nil {
		v.fail(ctx, "failed to load profile", err, nil)
		return nil
	}

	v.update(ctx, func(s *ViewState) {
		s.Profile = profile
		s.Seller = seller
		s.Ready = true
	})
	return nil
}

// fetchProfile loads the base profile, then the seller extension if the role
// has one.
func fetchProfile(ctx context.Context, backend Backend) (domain.BaseProfile, *domain.SellerExtension, error) {
	l := slogx.FromContext(ctx)

	p, err := backend.GetProfile(ctx)
	if err != nil {
		return domain.BaseProfile{}, nil, fmt.Errorf("%w: %w", ErrProfileFetch, err)
	}

	profile, known := toBaseProfile(p)
	if !known {
		l.Warn("backend returned an unknown role", slog.String("role", p.Role), slog.Int64("user_id", p.ID))
	}

	switch profile.Role {
	case domain.RoleSeller:
		seller, err := fetchSeller(ctx, backend, profile.ID)
		if err != nil {
			return domain.BaseProfile{}, nil, err
		}
		return profile, seller, nil
	case domain.RoleCustomer, domain.RoleAdmin, domain.RoleNone:
		return profile, nil, nil
	}
	return profile, nil, nil
}

func fetchSeller(ctx context.Context, backend Backend, userID int64) (*domain.SellerExtension, error) {
	s, err := backend.GetSellerProfile(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSellerFetch, err)
	}
	return &domain.SellerExtension{Introduce: s.Introduce}, nil
}
