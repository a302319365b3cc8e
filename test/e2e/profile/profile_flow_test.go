package profile_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"testing"

	"github.com/aussiebroadwan/tomato/pkg/shopsdk"
	"github.com/stretchr/testify/require"
)

type healthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
	Checks  *struct {
		Storage string `json:"storage"`
	} `json:"checks"`
}

func getHealth(t *testing.T, endpoint string) healthResponse {
	t.Helper()

	resp, err := http.Get(endpoint)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var health healthResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&health))
	return health
}

// TestHealthEndpoints verifies both probes report healthy.
func TestHealthEndpoints(t *testing.T) {
	port := startBackend(t, &marketBackend{})
	baseURL, cleanup := setupConsoleContainer(t, port)
	defer cleanup()

	require.Equal(t, "ok", getHealth(t, baseURL+"/livez").Status)

	ready := getHealth(t, baseURL+"/readyz")
	require.Equal(t, "ok", ready.Status)
	require.NotNil(t, ready.Checks)
	require.Equal(t, "ok", ready.Checks.Storage)
}

// TestProfileRequiresLogin verifies a fresh console sends the visitor to the
// login page without calling the backend.
func TestProfileRequiresLogin(t *testing.T) {
	backend := &marketBackend{}
	port := startBackend(t, backend)
	baseURL, cleanup := setupConsoleContainer(t, port)
	defer cleanup()

	resp, err := browser(t).Get(baseURL + "/profile")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusFound, resp.StatusCode)
	require.Equal(t, "/login", resp.Header.Get("Location"))
	require.Empty(t, backend.Calls())
}

// TestSellerProfileFlow signs in as a seller, edits both sections and checks
// the backend saw the writes followed by a resync.
func TestSellerProfileFlow(t *testing.T) {
	backend := &marketBackend{
		profile:   shopsdk.UserProfile{ID: 1, Username: testUsername, Nickname: "Al", Role: "SELLER"},
		introduce: "hi",
	}
	port := startBackend(t, backend)
	baseURL, cleanup := setupConsoleContainer(t, port)
	defer cleanup()

	client := browser(t)

	// 1. Sign in
	resp, err := client.PostForm(baseURL+"/login", url.Values{
		"username": {testUsername},
		"password": {testPassword},
	})
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusFound, resp.StatusCode)
	require.Equal(t, "/profile", resp.Header.Get("Location"))

	// 2. Load the profile
	req, err := http.NewRequestWithContext(t.Context(), http.MethodGet, baseURL+"/profile", nil)
	require.NoError(t, err)
	req.Header.Set("Accept-Language", "en")
	resp, err = client.Do(req)
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Contains(t, string(body), "[Seller]Al&#39;s Profile")
	require.Contains(t, string(body), `value="hi"`)

	// 3. Submit
	form := url.Values{"nickname": {"Bob"}, "introduce": {"new bio"}}
	req, err = http.NewRequestWithContext(t.Context(), http.MethodPost, baseURL+"/profile", strings.NewReader(form.Encode()))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept-Language", "en")
	resp, err = client.Do(req)
	require.NoError(t, err)
	body, _ = io.ReadAll(resp.Body)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Contains(t, string(body), "Your profile has been updated.")
	require.Contains(t, string(body), "[Seller]Bob&#39;s Profile")

	require.Equal(t, []string{
		"POST /users/login",
		"GET /users/profile",
		"GET /sellers/users/1",
		"GET /users/profile",
		"GET /sellers/users/1",
		"PATCH /users/1/profile",
		"PATCH /sellers/1",
		"GET /users/profile",
		"GET /sellers/users/1",
	}, backend.Calls())

	// 4. Sign out
	resp, err = client.Post(baseURL+"/logout", "application/x-www-form-urlencoded", nil)
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusFound, resp.StatusCode)

	resp, err = client.Get(baseURL + "/profile")
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, "/login", resp.Header.Get("Location"))
}
