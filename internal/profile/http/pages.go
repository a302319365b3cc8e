package http

import (
	"bytes"
	"embed"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/aussiebroadwan/tomato/internal/profile/domain"
	"github.com/aussiebroadwan/tomato/internal/profile/i18n"
	"github.com/aussiebroadwan/tomato/pkg/httpx"
	"github.com/aussiebroadwan/tomato/pkg/slogx"
)

//go:embed templates/*.html
var templateFS embed.FS

const (
	pageProfile = "profile.html"
	pageLogin   = "login.html"
	pageHome    = "home.html"
)

// pages holds one template set per page, each combined with the shared layout.
type pages struct {
	byName map[string]*template.Template
}

func mustParsePages() *pages {
	p := &pages{byName: map[string]*template.Template{}}
	for _, name := range []string{pageProfile, pageLogin, pageHome} {
		p.byName[name] = template.Must(template.ParseFS(templateFS, "templates/layout.html", "templates/"+name))
	}
	return p
}

// pageData is what every page template receives.
type pageData struct {
	L      *i18n.Localizer
	Lang   string
	Title  string
	Notice *noticeView

	// Page is the page specific data.
	Page any
}

type noticeView struct {
	Kind string
	Text string
}

func newPageData(l *i18n.Localizer, title string, notice *domain.Notice, page any) pageData {
	d := pageData{
		L:     l,
		Lang:  l.Tag.String(),
		Title: title,
		Page:  page,
	}
	if notice != nil {
		d.Notice = &noticeView{Kind: string(notice.Kind), Text: l.Notice(notice)}
	}
	return d
}

// render executes the named page into a buffer and writes it with status.
// Nothing is written to w if the template fails.
func (p *pages) render(w http.ResponseWriter, r *http.Request, status int, name string, data pageData) {
	var buf bytes.Buffer
	if err := p.byName[name].ExecuteTemplate(&buf, "layout", data); err != nil {
		slogx.FromContext(r.Context()).Error("failed to render page", slog.String("page", name), slog.Any("error", err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	httpx.NoCache(w)
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

// localizer picks the display language of r.
func localizer(c *i18n.Catalog, r *http.Request) *i18n.Localizer {
	return c.Localizer(c.Match(r.Header.Get("Accept-Language")))
}
