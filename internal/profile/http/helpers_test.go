package http

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/aussiebroadwan/tomato/internal/profile/i18n"
	"github.com/aussiebroadwan/tomato/internal/profile/service"
	"github.com/aussiebroadwan/tomato/internal/profile/store"
	"github.com/aussiebroadwan/tomato/internal/profile/store/drivers/sqlite"
	"github.com/aussiebroadwan/tomato/pkg/shopsdk"
	"github.com/aussiebroadwan/tomato/pkg/slogx"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

// shopBackend is a fake of the market backend. It records "METHOD path" for
// every request and the Authorization header of the last one.
type shopBackend struct {
	mu        sync.Mutex
	calls     []string
	auth      string
	profile   shopsdk.UserProfile
	introduce string
	token     string

	// fail maps "METHOD path" to a status code to answer with.
	fail map[string]int
}

func newShopBackend(t *testing.T, profile shopsdk.UserProfile) (*shopBackend, *httptest.Server) {
	t.Helper()

	b := &shopBackend{profile: profile, token: "issued-token", fail: map[string]int{}}
	srv := httptest.NewServer(http.HandlerFunc(b.serve))
	t.Cleanup(srv.Close)
	return b, srv
}

func (b *shopBackend) serve(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	defer b.mu.Unlock()

	call := r.Method + " " + r.URL.Path
	b.calls = append(b.calls, call)
	b.auth = r.Header.Get("Authorization")

	if code, ok := b.fail[call]; ok {
		w.WriteHeader(code)
		_ = json.NewEncoder(w).Encode(map[string]string{"errorMessage": "forced failure"})
		return
	}

	id := fmt.Sprint(b.profile.ID)
	switch call {
	case "POST /users/login":
		var req shopsdk.LoginRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		if req.Password != "secret" {
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(map[string]string{"errorMessage": "bad credentials"})
			return
		}
		_ = json.NewEncoder(w).Encode(shopsdk.LoginResponse{AccessToken: b.token})
	case "GET /users/profile":
		_ = json.NewEncoder(w).Encode(b.profile)
	case "GET /sellers/users/" + id:
		_ = json.NewEncoder(w).Encode(shopsdk.SellerProfile{Introduce: b.introduce})
	case "PATCH /users/" + id + "/profile":
		var req shopsdk.PatchProfileRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		b.profile.Nickname = req.Nickname
	case "PATCH /sellers/" + id:
		var req shopsdk.PatchSellerProfileRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		b.introduce = req.Introduce
	default:
		w.WriteHeader(http.StatusNotFound)
	}
}

func (b *shopBackend) Calls() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]string(nil), b.calls...)
}

func (b *shopBackend) Auth() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.auth
}

type testEnv struct {
	router      *Router
	store       *sqlite.Store
	credentials *store.CredentialStore
}

func newTestEnv(t *testing.T, backendURL string) *testEnv {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	require.NoError(t, st.ApplyMigrations())
	t.Cleanup(func() { _ = st.Close() })

	catalog, err := i18n.New(language.Korean)
	require.NoError(t, err)

	client := shopsdk.NewSDKClient(backendURL, 5*time.Second)
	credentials := store.NewCredentialStore(st)

	r := NewRouter("test", st, catalog, slogx.Discard())
	r.ProfileService = &service.ProfileService{
		Credentials: credentials,
		Sessions:    service.SDKSessions(client),
		LoginPath:   "/login",
	}
	r.Authenticator = client
	r.Credentials = credentials
	r.ApplyRoutes()

	return &testEnv{router: r, store: st, credentials: credentials}
}

func (e *testEnv) do(t *testing.T, req *http.Request) (*http.Response, string) {
	t.Helper()

	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	res := rec.Result()
	body, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	return res, string(body)
}

func getRequest(path, lang string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if lang != "" {
		req.Header.Set("Accept-Language", lang)
	}
	return req
}

func postForm(path string, form url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}
