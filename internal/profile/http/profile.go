package http

import (
	"log/slog"
	"net/http"

	"github.com/aussiebroadwan/tomato/internal/profile/domain"
	"github.com/aussiebroadwan/tomato/internal/profile/i18n"
	"github.com/aussiebroadwan/tomato/internal/profile/service"
	"github.com/aussiebroadwan/tomato/pkg/slogx"
)

// ProfileHandler serves the profile page. Every request mounts its own view
// and unmounts it when the request ends.
type ProfileHandler struct {
	Service *service.ProfileService
	Pages   *pages
	Catalog *i18n.Catalog
	HomeURL string
}

// profilePage is the page data of profile.html.
type profilePage struct {
	Ready bool

	// Editing shows the form. It is also set when the profile did not load but
	// a submitted edit is kept, so the user can send it again.
	Editing bool

	Profile       domain.BaseProfile
	ShowIntroduce bool
	Nickname      string
	Introduce     string
	HomeURL       string
	LoginPath     string

	// Relogin offers a link to the login page after the backend rejected the
	// stored credential.
	Relogin bool
}

// HandleGet loads and renders the profile of the stored credential's user.
//
//	@Summary		Profile page
//	@Description	Loads the base profile and, for sellers, the seller profile from the backend and renders the edit form.
//	@Description	Redirects to the login page when no credential is stored.
//	@Description	Backend failures render the page with an error notice instead of failing the request.
//	@Tags			Profile
//	@Produce		html
//	@Param			Accept-Language	header		string	false	"Display language (ko, en)"
//	@Success		200				{string}	string	"Profile page"
//	@Success		302				{string}	string	"Redirect to the login page"
//	@Router			/profile [get]
func (h *ProfileHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	view := h.Service.Mount()
	defer view.Close()

	if redirect := view.Load(r.Context()); redirect != nil {
		http.Redirect(w, r, redirect.Location, http.StatusFound)
		return
	}

	h.render(w, r, view.Snapshot())
}

// HandlePost saves the submitted profile form and renders the result.
//
//	@Summary		Save profile
//	@Description	Sends the nickname, then for sellers the introduce text when the form carries it.
//	@Description	The page is rendered from a fresh read of the backend with a confirmation or error notice.
//	@Tags			Profile
//	@Accept			x-www-form-urlencoded
//	@Produce		html
//	@Param			nickname	formData	string		true	"New nickname"
//	@Param			introduce	formData	string		false	"New seller introduction (sellers only)"
//	@Success		200			{string}	string		"Profile page with notice"
//	@Success		302			{string}	string		"Redirect to the login page"
//	@Failure		400			{string}	string		"Malformed form"
//	@Router			/profile [post]
func (h *ProfileHandler) HandlePost(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		slogx.FromContext(r.Context()).Debug("malformed profile form", slog.Any("error", err))
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	view := h.Service.Mount()
	defer view.Close()

	if redirect := view.Load(r.Context()); redirect != nil {
		http.Redirect(w, r, redirect.Location, http.StatusFound)
		return
	}

	view.Submit(r.Context(), formFromRequest(r))
	h.render(w, r, view.Snapshot())
}

func (h *ProfileHandler) render(w http.ResponseWriter, r *http.Request, state service.ViewState) {
	l := localizer(h.Catalog, r)

	page := profilePage{
		Ready:         state.Ready,
		Editing:       state.Ready || state.Draft != nil,
		Profile:       state.Profile,
		ShowIntroduce: state.Ready && state.Profile.Role.HasSellerExtension(),
		Nickname:      state.Profile.Nickname,
		HomeURL:       h.HomeURL,
		LoginPath:     h.Service.LoginPath,
		Relogin:       state.Notice != nil && state.Notice.Key == domain.NoticeSessionRejected,
	}
	if page.LoginPath == "" {
		page.LoginPath = service.DefaultLoginPath
	}
	if state.Seller != nil {
		page.Introduce = state.Seller.Introduce
	}
	if d := state.Draft; d != nil {
		page.Nickname = d.Nickname
		if d.Introduce != nil {
			page.Introduce = *d.Introduce
			page.ShowIntroduce = page.ShowIntroduce || !state.Ready
		}
	}

	title := l.T(i18n.KeyProfileHead)
	if state.Ready {
		title = l.ProfileTitle(state.Profile)
	}

	h.Pages.render(w, r, http.StatusOK, pageProfile, newPageData(l, title, state.Notice, page))
}

// formFromRequest reads a parsed profile form. Introduce stays nil when the
// form has no introduce field at all.
func formFromRequest(r *http.Request) domain.ProfileForm {
	form := domain.ProfileForm{Nickname: r.PostForm.Get(domain.FieldNickname)}
	if _, ok := r.PostForm[domain.FieldIntroduce]; ok {
		introduce := r.PostForm.Get(domain.FieldIntroduce)
		form.Introduce = &introduce
	}
	return form
}
