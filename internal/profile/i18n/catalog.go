// Package i18n holds the display strings of the profile console. Strings are
// keyed by role and field name and resolved per request from Accept-Language.
package i18n

import (
	"fmt"

	"github.com/aussiebroadwan/tomato/internal/profile/domain"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// DefaultLocale is used when neither the request nor the configuration picks a
// supported language.
var DefaultLocale = language.Korean

// Catalog resolves display strings for the supported languages.
type Catalog struct {
	builder   *catalog.Builder
	supported []language.Tag
	matcher   language.Matcher
}

// New builds the catalog. fallback is preferred when a request states no
// usable preference; it must be one of the supported languages, otherwise
// DefaultLocale is used.
func New(fallback language.Tag) (*Catalog, error) {
	tables := []table{korean, english}

	supported := make([]language.Tag, 0, len(tables))
	found := false
	for _, t := range tables {
		if t.tag == fallback {
			found = true
		}
	}
	if !found {
		fallback = DefaultLocale
	}
	supported = append(supported, fallback)
	for _, t := range tables {
		if t.tag != fallback {
			supported = append(supported, t.tag)
		}
	}

	b := catalog.NewBuilder(catalog.Fallback(fallback))
	for _, t := range tables {
		if err := register(b, t); err != nil {
			return nil, fmt.Errorf("register %s: %w", t.tag, err)
		}
	}

	return &Catalog{
		builder:   b,
		supported: supported,
		matcher:   language.NewMatcher(supported),
	}, nil
}

func register(b *catalog.Builder, t table) error {
	for _, r := range roles {
		if err := b.SetString(t.tag, roleKey(r), t.roles[r]); err != nil {
			return err
		}
		for _, f := range fields {
			if err := b.SetString(t.tag, fieldKey(r, f), t.fields[f]); err != nil {
				return err
			}
		}
	}
	for key, msg := range t.messages {
		if err := b.SetString(t.tag, key, msg); err != nil {
			return err
		}
	}
	return nil
}

// Supported lists the supported languages, preferred fallback first.
func (c *Catalog) Supported() []language.Tag {
	return append([]language.Tag(nil), c.supported...)
}

// Match picks the supported language for an Accept-Language header value.
func (c *Catalog) Match(acceptLanguage string) language.Tag {
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return c.supported[0]
	}
	_, idx, conf := c.matcher.Match(tags...)
	if conf == language.No {
		return c.supported[0]
	}
	return c.supported[idx]
}

// Localizer returns the string resolver for tag.
func (c *Catalog) Localizer(tag language.Tag) *Localizer {
	return &Localizer{
		Tag:     tag,
		printer: message.NewPrinter(tag, message.Catalog(c.builder)),
	}
}

// Localizer resolves display strings in one language.
type Localizer struct {
	Tag     language.Tag
	printer *message.Printer
}

// T formats the message stored under key.
func (l *Localizer) T(key string, args ...any) string {
	return l.printer.Sprintf(key, args...)
}

// Role is the display label of r.
func (l *Localizer) Role(r domain.Role) string {
	return l.printer.Sprintf(roleKey(r))
}

// Field is the label of field as shown to a user with role r.
func (l *Localizer) Field(r domain.Role, field string) string {
	return l.printer.Sprintf(fieldKey(r, field))
}

// Notice is the text of n, or "" for a nil notice.
func (l *Localizer) Notice(n *domain.Notice) string {
	if n == nil {
		return ""
	}
	return l.printer.Sprintf(n.Key)
}

// ProfileTitle renders "[role]nickname" in the page heading.
func (l *Localizer) ProfileTitle(p domain.BaseProfile) string {
	return l.printer.Sprintf(KeyProfileTitle, l.Role(p.Role), p.Nickname)
}
