package http

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/aussiebroadwan/tomato/internal/profile/domain"
	"github.com/aussiebroadwan/tomato/internal/profile/i18n"
	"github.com/aussiebroadwan/tomato/pkg/shopsdk"
	"github.com/aussiebroadwan/tomato/pkg/slogx"
)

// LoginHandler exchanges credentials with the backend and keeps the returned
// token in local storage.
type LoginHandler struct {
	Authenticator Authenticator
	Credentials   CredentialKeeper
	Pages         *pages
	Catalog       *i18n.Catalog
	LoginPath     string
	ProfilePath   string
}

type loginPage struct {
	Username string
}

// HandleGet renders the login form.
//
//	@Summary		Login page
//	@Tags			Session
//	@Produce		html
//	@Param			logged_out	query		string	false	"Show the signed-out notice"
//	@Success		200			{string}	string	"Login page"
//	@Router			/login [get]
func (h *LoginHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	var notice *domain.Notice
	if r.URL.Query().Has("logged_out") {
		notice = domain.Success(domain.NoticeLoggedOut)
	}
	h.render(w, r, http.StatusOK, notice, loginPage{})
}

// HandlePost signs in with the backend and stores the credential.
//
//	@Summary		Sign in
//	@Description	Exchanges username and password for an access token via the backend and stores it under access_token.
//	@Tags			Session
//	@Accept			x-www-form-urlencoded
//	@Produce		html
//	@Param			username	formData	string	true	"Username"
//	@Param			password	formData	string	true	"Password"
//	@Success		302			{string}	string	"Redirect to the profile page"
//	@Failure		400			{string}	string	"Missing username or password"
//	@Failure		401			{string}	string	"Backend rejected the credentials"
//	@Failure		429			{object}	httpx.ErrorBody	"Too many attempts"
//	@Failure		502			{string}	string	"Backend unreachable"
//	@Router			/login [post]
func (h *LoginHandler) HandlePost(w http.ResponseWriter, r *http.Request) {
	l := slogx.FromContext(r.Context())

	if err := r.ParseForm(); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	username := strings.TrimSpace(r.PostForm.Get("username"))
	password := r.PostForm.Get("password")
	page := loginPage{Username: username}

	if username == "" || password == "" {
		h.render(w, r, http.StatusBadRequest, domain.Failure(domain.NoticeLoginFieldsRequired), page)
		return
	}

	token, err := h.Authenticator.Login(r.Context(), username, password)
	if err != nil {
		var apiErr *shopsdk.APIError
		if errors.As(err, &apiErr) && apiErr.StatusCode < http.StatusInternalServerError {
			l.Info("login rejected", slog.String("username", username), slog.Int("status", apiErr.StatusCode))
			h.render(w, r, http.StatusUnauthorized, domain.Failure(domain.NoticeLoginFailed), page)
			return
		}
		l.Error("login request failed", slog.String("username", username), slog.Any("error", err))
		h.render(w, r, http.StatusBadGateway, domain.Failure(domain.NoticeLoginFailed), page)
		return
	}

	if err := h.Credentials.SetAccessToken(r.Context(), token); err != nil {
		l.Error("failed to store credential", slog.Any("error", err))
		h.render(w, r, http.StatusInternalServerError, domain.Failure(domain.NoticeStorageFailed), page)
		return
	}

	l.Info("signed in", slog.String("username", username))
	http.Redirect(w, r, h.ProfilePath, http.StatusFound)
}

// HandleLogout removes the stored credential.
//
//	@Summary	Sign out
//	@Tags		Session
//	@Success	302	{string}	string	"Redirect to the login page"
//	@Router		/logout [post]
func (h *LoginHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	if err := h.Credentials.ClearAccessToken(r.Context()); err != nil {
		slogx.FromContext(r.Context()).Error("failed to clear credential", slog.Any("error", err))
		h.render(w, r, http.StatusInternalServerError, domain.Failure(domain.NoticeStorageFailed), loginPage{})
		return
	}
	http.Redirect(w, r, h.LoginPath+"?logged_out=1", http.StatusFound)
}

func (h *LoginHandler) render(w http.ResponseWriter, r *http.Request, status int, notice *domain.Notice, page loginPage) {
	l := localizer(h.Catalog, r)
	h.Pages.render(w, r, status, pageLogin, newPageData(l, l.T(i18n.KeyLoginTitle), notice, page))
}
