package http

import (
	"net/http"

	"github.com/aussiebroadwan/tomato/internal/profile/i18n"
)

// HomeHandler renders the landing page.
type HomeHandler struct {
	Pages   *pages
	Catalog *i18n.Catalog
}

// ServeHTTP godoc
//
//	@Summary	Home page
//	@Tags		Pages
//	@Produce	html
//	@Success	200	{string}	string	"Home page"
//	@Router		/ [get]
func (h *HomeHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	l := localizer(h.Catalog, r)
	h.Pages.render(w, r, http.StatusOK, pageHome, newPageData(l, l.T(i18n.KeyHomeTitle), nil, nil))
}
