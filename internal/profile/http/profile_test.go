package http

import (
	"context"
	"net/http"
	"net/url"
	"testing"

	"github.com/aussiebroadwan/tomato/pkg/shopsdk"
	"github.com/stretchr/testify/require"
)

func TestProfilePage(t *testing.T) {
	t.Parallel()

	t.Run("no credential redirects to login", func(t *testing.T) {
		t.Parallel()
		backend, srv := newShopBackend(t, shopsdk.UserProfile{ID: 1, Username: "alice", Nickname: "Al", Role: "CUSTOMER"})
		env := newTestEnv(t, srv.URL)

		res, _ := env.do(t, getRequest("/profile", ""))
		require.Equal(t, http.StatusFound, res.StatusCode)
		require.Equal(t, "/login", res.Header.Get("Location"))
		require.Empty(t, backend.Calls())
	})

	t.Run("customer page", func(t *testing.T) {
		t.Parallel()
		backend, srv := newShopBackend(t, shopsdk.UserProfile{ID: 1, Username: "alice", Nickname: "Al", Role: "CUSTOMER"})
		env := newTestEnv(t, srv.URL)
		require.NoError(t, env.credentials.SetAccessToken(context.Background(), "tok"))

		res, body := env.do(t, getRequest("/profile", "ko"))
		require.Equal(t, http.StatusOK, res.StatusCode)
		require.Equal(t, "no-store", res.Header.Get("Cache-Control"))
		require.Contains(t, body, "[고객]Al님의 Profile")
		require.Contains(t, body, `value="alice" readonly`)
		require.NotContains(t, body, `name="introduce"`)
		require.Equal(t, []string{"GET /users/profile"}, backend.Calls())
		require.Equal(t, "Bearer tok", backend.Auth())
	})

	t.Run("seller page shows introduce", func(t *testing.T) {
		t.Parallel()
		backend, srv := newShopBackend(t, shopsdk.UserProfile{ID: 1, Username: "sam", Nickname: "Sam", Role: "SELLER"})
		backend.introduce = "hi"
		env := newTestEnv(t, srv.URL)
		require.NoError(t, env.credentials.SetAccessToken(context.Background(), "tok"))

		_, body := env.do(t, getRequest("/profile", "en"))
		require.Contains(t, body, "[Seller]Sam&#39;s Profile")
		require.Contains(t, body, `name="introduce" value="hi"`)
		require.Equal(t, []string{"GET /users/profile", "GET /sellers/users/1"}, backend.Calls())
	})

	t.Run("backend failure renders notice without form", func(t *testing.T) {
		t.Parallel()
		backend, srv := newShopBackend(t, shopsdk.UserProfile{ID: 1, Username: "a", Nickname: "A", Role: "CUSTOMER"})
		backend.fail["GET /users/profile"] = http.StatusInternalServerError
		env := newTestEnv(t, srv.URL)
		require.NoError(t, env.credentials.SetAccessToken(context.Background(), "tok"))

		res, body := env.do(t, getRequest("/profile", "en"))
		require.Equal(t, http.StatusOK, res.StatusCode)
		require.Contains(t, body, "Could not load your profile.")
		require.NotContains(t, body, `id="loading"`)
		require.NotContains(t, body, `name="nickname"`)
	})

	t.Run("rejected credential offers login link", func(t *testing.T) {
		t.Parallel()
		backend, srv := newShopBackend(t, shopsdk.UserProfile{ID: 1, Username: "a", Nickname: "A", Role: "CUSTOMER"})
		backend.fail["GET /users/profile"] = http.StatusUnauthorized
		env := newTestEnv(t, srv.URL)
		require.NoError(t, env.credentials.SetAccessToken(context.Background(), "tok"))

		_, body := env.do(t, getRequest("/profile", "en"))
		require.Contains(t, body, "Your session has expired.")
		require.Contains(t, body, `href="/login"`)
	})
}

func TestProfileSubmit(t *testing.T) {
	t.Parallel()

	t.Run("seller submit writes then resyncs", func(t *testing.T) {
		t.Parallel()
		backend, srv := newShopBackend(t, shopsdk.UserProfile{ID: 1, Username: "sam", Nickname: "Al", Role: "SELLER"})
		backend.introduce = "hi"
		env := newTestEnv(t, srv.URL)
		require.NoError(t, env.credentials.SetAccessToken(context.Background(), "tok"))

		res, body := env.do(t, postForm("/profile", url.Values{"nickname": {"Bob"}, "introduce": {"new bio"}}))
		require.Equal(t, http.StatusOK, res.StatusCode)
		require.Equal(t, []string{
			"GET /users/profile",
			"GET /sellers/users/1",
			"PATCH /users/1/profile",
			"PATCH /sellers/1",
			"GET /users/profile",
			"GET /sellers/users/1",
		}, backend.Calls())
		require.Contains(t, body, "프로필을 업데이트 했습니다.")
		require.Contains(t, body, `value="Bob"`)
		require.Contains(t, body, `value="new bio"`)
	})

	t.Run("customer submit never touches seller profile", func(t *testing.T) {
		t.Parallel()
		backend, srv := newShopBackend(t, shopsdk.UserProfile{ID: 2, Username: "carol", Nickname: "C", Role: "CUSTOMER"})
		env := newTestEnv(t, srv.URL)
		require.NoError(t, env.credentials.SetAccessToken(context.Background(), "tok"))

		_, body := env.do(t, postForm("/profile", url.Values{"nickname": {"Carol"}}))
		require.Equal(t, []string{
			"GET /users/profile",
			"PATCH /users/2/profile",
			"GET /users/profile",
		}, backend.Calls())
		require.Contains(t, body, "[고객]Carol님의 Profile")
	})

	t.Run("failed save keeps the edit", func(t *testing.T) {
		t.Parallel()
		backend, srv := newShopBackend(t, shopsdk.UserProfile{ID: 3, Username: "d", Nickname: "Old", Role: "CUSTOMER"})
		backend.fail["PATCH /users/3/profile"] = http.StatusBadRequest
		env := newTestEnv(t, srv.URL)
		require.NoError(t, env.credentials.SetAccessToken(context.Background(), "tok"))

		res, body := env.do(t, postForm("/profile", url.Values{"nickname": {"Edited"}}))
		require.Equal(t, http.StatusOK, res.StatusCode)
		require.Contains(t, body, "프로필을 저장하지 못했습니다.")
		require.Contains(t, body, `value="Edited"`)
		require.Contains(t, body, "[고객]Old님의 Profile")
	})

	t.Run("blank nickname is rejected locally", func(t *testing.T) {
		t.Parallel()
		backend, srv := newShopBackend(t, shopsdk.UserProfile{ID: 1, Username: "a", Nickname: "A", Role: "CUSTOMER"})
		env := newTestEnv(t, srv.URL)
		require.NoError(t, env.credentials.SetAccessToken(context.Background(), "tok"))

		_, body := env.do(t, postForm("/profile", url.Values{"nickname": {""}}))
		require.Contains(t, body, "필수 항목을 입력해 주세요.")
		require.Equal(t, []string{"GET /users/profile"}, backend.Calls())
	})

	t.Run("rejected credential on reload keeps the edit", func(t *testing.T) {
		t.Parallel()
		backend, srv := newShopBackend(t, shopsdk.UserProfile{ID: 1, Username: "a", Nickname: "A", Role: "CUSTOMER"})
		backend.fail["GET /users/profile"] = http.StatusUnauthorized
		env := newTestEnv(t, srv.URL)
		require.NoError(t, env.credentials.SetAccessToken(context.Background(), "tok"))

		req := postForm("/profile", url.Values{"nickname": {"MyEdit"}})
		req.Header.Set("Accept-Language", "en")
		res, body := env.do(t, req)
		require.Equal(t, http.StatusOK, res.StatusCode)
		require.Contains(t, body, "Your session has expired.")
		require.NotContains(t, body, "Your profile has not been loaded yet.")
		require.Contains(t, body, `href="/login"`)
		require.Contains(t, body, `name="nickname" value="MyEdit"`)
		require.NotContains(t, body, `id="loading"`)
		require.Equal(t, []string{"GET /users/profile"}, backend.Calls())
	})

	t.Run("failed reload keeps the seller edit", func(t *testing.T) {
		t.Parallel()
		backend, srv := newShopBackend(t, shopsdk.UserProfile{ID: 1, Username: "sam", Nickname: "Sam", Role: "SELLER"})
		backend.fail["GET /users/profile"] = http.StatusInternalServerError
		env := newTestEnv(t, srv.URL)
		require.NoError(t, env.credentials.SetAccessToken(context.Background(), "tok"))

		req := postForm("/profile", url.Values{"nickname": {"MyEdit"}, "introduce": {"my bio"}})
		req.Header.Set("Accept-Language", "en")
		_, body := env.do(t, req)
		require.Contains(t, body, "Could not load your profile.")
		require.Contains(t, body, `name="nickname" value="MyEdit"`)
		require.Contains(t, body, `name="introduce" value="my bio"`)
		require.NotContains(t, body, `name="username"`)
		require.Equal(t, []string{"GET /users/profile"}, backend.Calls())
	})

	t.Run("no credential redirects", func(t *testing.T) {
		t.Parallel()
		backend, srv := newShopBackend(t, shopsdk.UserProfile{ID: 1})
		env := newTestEnv(t, srv.URL)

		res, _ := env.do(t, postForm("/profile", url.Values{"nickname": {"x"}}))
		require.Equal(t, http.StatusFound, res.StatusCode)
		require.Empty(t, backend.Calls())
	})
}
