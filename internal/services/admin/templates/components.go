package templates

import (
	"context"
	"html"
	"io"
	"net/url"
	"strings"

	"github.com/a-h/templ"
)

// PageHeading holds header metadata for pages.
type PageHeading struct {
	// Title is the page heading.
	Title string
	// Breadcrumbs renders a path trail for the page.
	Breadcrumbs []Breadcrumb
	// ActionURL renders a CTA button when set.
	ActionURL string
	// ActionLabel is the CTA button label.
	ActionLabel string
}

// Breadcrumb represents a single breadcrumb item.
type Breadcrumb struct {
	// Label is the visible label.
	Label string
	// URL is the optional navigation target.
	URL string
}

// AppendQueryParam appends a single query parameter to a URL.
func AppendQueryParam(baseURL string, key string, value string) string {
	encodedKey := url.QueryEscape(key)
	encodedValue := url.QueryEscape(value)
	if strings.Contains(baseURL, "?") {
		return baseURL + "&" + encodedKey + "=" + encodedValue
	}
	return baseURL + "?" + encodedKey + "=" + encodedValue
}

// markup builds escaped HTML for hand-rendered components.
type markup struct {
	b strings.Builder
}

func (m *markup) raw(s string) *markup {
	m.b.WriteString(s)
	return m
}

func (m *markup) text(s string) *markup {
	m.b.WriteString(html.EscapeString(s))
	return m
}

func (m *markup) attr(name, value string) *markup {
	m.b.WriteString(` ` + name + `="` + html.EscapeString(value) + `"`)
	return m
}

func (m *markup) String() string {
	return m.b.String()
}

// component wraps a render function as a templ component.
func component(render func(ctx context.Context, w io.Writer) error) templ.Component {
	return templ.ComponentFunc(render)
}

// textComponent renders prebuilt HTML.
func textComponent(htmlText string) templ.Component {
	return component(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, htmlText)
		return err
	})
}

// renderHeading renders a page heading with breadcrumbs and optional action.
func renderHeading(m *markup, heading PageHeading) {
	m.raw(`<header class="page-heading">`)
	if len(heading.Breadcrumbs) > 0 {
		m.raw(`<nav class="breadcrumbs">`)
		for i, crumb := range heading.Breadcrumbs {
			if i > 0 {
				m.raw(`<span class="sep">/</span>`)
			}
			if crumb.URL != "" {
				m.raw(`<a`).attr("href", crumb.URL).raw(`>`).text(crumb.Label).raw(`</a>`)
			} else {
				m.raw(`<span>`).text(crumb.Label).raw(`</span>`)
			}
		}
		m.raw(`</nav>`)
	}
	m.raw(`<h1>`).text(heading.Title).raw(`</h1>`)
	if heading.ActionURL != "" {
		m.raw(`<a class="button"`).attr("href", heading.ActionURL).raw(`>`).text(heading.ActionLabel).raw(`</a>`)
	}
	m.raw(`</header>`)
}

// renderFlash renders an optional notice banner.
func renderFlash(m *markup, message string) {
	if strings.TrimSpace(message) == "" {
		return
	}
	m.raw(`<p class="flash">`).text(message).raw(`</p>`)
}

// postButton renders a one-button form for state-changing actions.
func postButton(m *markup, action, label string) {
	m.raw(`<form method="post"`).attr("action", action).raw(` class="inline">`)
	m.raw(`<button type="submit">`).text(label).raw(`</button>`)
	m.raw(`</form>`)
}
