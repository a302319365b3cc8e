package service

import (
	"context"
	"log/slog"
	"sync"

	"github.com/aussiebroadwan/tomato/internal/profile/domain"
	"github.com/aussiebroadwan/tomato/pkg/shopsdk"
	"github.com/aussiebroadwan/tomato/pkg/slogx"
)

// DefaultLoginPath is where a view without a credential sends the user.
const DefaultLoginPath = "/login"

// Backend is the set of backend calls a profile view makes. *shopsdk.Session
// satisfies it.
type Backend interface {
	GetProfile(ctx context.Context) (*shopsdk.UserProfile, error)
	GetSellerProfile(ctx context.Context, userID int64) (*shopsdk.SellerProfile, error)
	PatchProfile(ctx context.Context, userID int64, req shopsdk.PatchProfileRequest) error
	PatchSellerProfile(ctx context.Context, userID int64, req shopsdk.PatchSellerProfileRequest) error
}

// SessionFactory binds a credential to a Backend.
type SessionFactory func(credential string) Backend

// CredentialSource reads the stored credential. An empty token with a nil
// error means no credential is stored.
type CredentialSource interface {
	AccessToken(ctx context.Context) (string, error)
}

// ProfileService mounts profile views. It holds the collaborators shared by
// every view.
type ProfileService struct {
	Credentials CredentialSource
	Sessions    SessionFactory
	LoginPath   string
}

// SDKSessions adapts an SDK client into a SessionFactory.
func SDKSessions(client *shopsdk.SDKClient) SessionFactory {
	return func(credential string) Backend {
		return client.NewSession(credential)
	}
}

// Mount creates a fresh, not yet loaded view.
func (s *ProfileService) Mount() *ProfileView {
	return &ProfileView{svc: s}
}

func (s *ProfileService) loginPath() string {
	if s.LoginPath == "" {
		return DefaultLoginPath
	}
	return s.LoginPath
}

// ViewState is what a profile view renders.
type ViewState struct {
	// Ready is false until the base profile and, for sellers, the seller
	// extension have been loaded.
	Ready bool

	Profile domain.BaseProfile

	// Seller is nil unless the role is RoleSeller and the extension loaded.
	Seller *domain.SellerExtension

	Notice *domain.Notice

	// Draft holds the values of a failed submit so no edits are lost.
	Draft *domain.ProfileForm
}

// Redirect tells the caller to navigate elsewhere instead of rendering.
type Redirect struct {
	Location string
}

// ProfileView is one mounted instance of the profile page. A view lives until
// Close is called or the context passed to Load/Submit is done; results that
// arrive afterwards are dropped.
type ProfileView struct {
	svc *ProfileService

	mu      sync.Mutex
	state   ViewState
	backend Backend
	closed  bool
}

// Snapshot returns a copy of the current state.
func (v *ProfileView) Snapshot() ViewState {
	v.mu.Lock()
	defer v.mu.Unlock()

	s := v.state
	if s.Seller != nil {
		seller := *s.Seller
		s.Seller = &seller
	}
	if s.Notice != nil {
		notice := *s.Notice
		s.Notice = &notice
	}
	if s.Draft != nil {
		draft := cloneForm(*s.Draft)
		s.Draft = &draft
	}
	return s
}

// Close unmounts the view.
func (v *ProfileView) Close() {
	v.mu.Lock()
	v.closed = true
	v.mu.Unlock()
}

// update applies fn to the state if the view is still mounted. It reports
// whether fn ran.
func (v *ProfileView) update(ctx context.Context, fn func(*ViewState)) bool {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.closed || ctx.Err() != nil {
		slogx.FromContext(ctx).Debug("profile view unmounted, dropping result")
		return false
	}
	fn(&v.state)
	return true
}

// fail logs err and shows the matching error notice. draft, when non-nil,
// is kept for the next render.
func (v *ProfileView) fail(ctx context.Context, msg string, err error, draft *domain.ProfileForm) {
	slogx.FromContext(ctx).Error(msg, slog.Any("error", err))

	notice := noticeFor(err)
	v.update(ctx, func(s *ViewState) {
		s.Notice = notice
		if draft != nil {
			d := cloneForm(*draft)
			s.Draft = &d
		}
	})
}

func (v *ProfileView) session() (Backend, ViewState) {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.backend, v.state
}

func cloneForm(f domain.ProfileForm) domain.ProfileForm {
	if f.Introduce != nil {
		intro := *f.Introduce
		f.Introduce = &intro
	}
	return f
}

func toBaseProfile(p *shopsdk.UserProfile) (domain.BaseProfile, bool) {
	role, known := domain.ParseRole(p.Role)
	return domain.BaseProfile{
		ID:       p.ID,
		Username: p.Username,
		Nickname: p.Nickname,
		Role:     role,
	}, known
}
