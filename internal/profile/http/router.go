package http

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/aussiebroadwan/tomato/internal/profile/i18n"
	"github.com/aussiebroadwan/tomato/internal/profile/service"
	"github.com/aussiebroadwan/tomato/internal/profile/store"
	"github.com/aussiebroadwan/tomato/pkg/httpx"
	"github.com/aussiebroadwan/tomato/pkg/slogx"

	_ "github.com/aussiebroadwan/tomato/api/profile" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Authenticator exchanges a username and password for a credential.
// *shopsdk.SDKClient satisfies it.
type Authenticator interface {
	Login(ctx context.Context, username, password string) (string, error)
}

// CredentialKeeper writes the stored session credential.
// *store.CredentialStore satisfies it.
type CredentialKeeper interface {
	SetAccessToken(ctx context.Context, token string) error
	ClearAccessToken(ctx context.Context) error
}

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	buildVersion string
	startTime    time.Time
	logger       *slog.Logger
	store        store.Store
	catalog      *i18n.Catalog
	pages        *pages

	ProfileService *service.ProfileService
	Authenticator  Authenticator
	Credentials    CredentialKeeper

	// HomeURL is the target of the "go home" link.
	HomeURL string
}

func NewRouter(
	buildVersion string,
	st store.Store,
	catalog *i18n.Catalog,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		catalog:      catalog,
		pages:        mustParsePages(),
		logger:       logger,
		HomeURL:      "/",
	}

	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerProfile()
	r.registerLogin()
	r.registerHome()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Tomato Profile Console
//	@version		0.1.0
//	@description	Local console for viewing and editing a Tomato market user profile.
//	@description	Pages are server rendered HTML; the session credential is kept in the console's local storage.
//
//	@contact.name	AussieBroadWAN Team
//	@contact.url	https://github.com/aussiebroadwan/tomato
//
//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT
//
//	@host			localhost:8080
//	@BasePath		/
//
//	@schemes		http
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerProfile() {
	h := &ProfileHandler{
		Service: r.ProfileService,
		Pages:   r.pages,
		Catalog: r.catalog,
		HomeURL: r.HomeURL,
	}

	// GET /profile - lenient rate limit (page load, one or two backend reads)
	r.Mux.Handle("GET /profile",
		httpx.Chain(http.HandlerFunc(h.HandleGet),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)

	// POST /profile - moderate rate limit (up to two backend writes and two reads)
	r.Mux.Handle("POST /profile",
		httpx.Chain(http.HandlerFunc(h.HandlePost),
			httpx.RateLimitByIP(httpx.ModerateLimit),
		),
	)
}

func (r *Router) registerLogin() {
	h := &LoginHandler{
		Authenticator: r.Authenticator,
		Credentials:   r.Credentials,
		Pages:         r.pages,
		Catalog:       r.catalog,
		LoginPath:     r.loginPath(),
		ProfilePath:   "/profile",
	}

	r.Mux.Handle("GET /login",
		httpx.Chain(http.HandlerFunc(h.HandleGet),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)

	// POST /login - strict rate limit by IP + username to slow down guessing
	r.Mux.Handle("POST /login",
		httpx.Chain(http.HandlerFunc(h.HandlePost),
			httpx.RateLimitByIPAndFormField(httpx.StrictLimit, "username"),
		),
	)

	r.Mux.Handle("POST /logout",
		httpx.Chain(http.HandlerFunc(h.HandleLogout),
			httpx.RateLimitByIP(httpx.ModerateLimit),
		),
	)
}

func (r *Router) registerHome() {
	h := &HomeHandler{Pages: r.pages, Catalog: r.catalog}

	r.Mux.Handle("GET /{$}",
		httpx.Chain(h,
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
}

func (r *Router) registerSystem() {
	// Health check endpoints - lenient rate limits (monitoring systems may poll frequently)
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
}

func (r *Router) loginPath() string {
	if r.ProfileService != nil && r.ProfileService.LoginPath != "" {
		return r.ProfileService.LoginPath
	}
	return service.DefaultLoginPath
}
