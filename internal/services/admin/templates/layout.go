package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/chekout/admin/internal/services/admin/routepath"
)

// Brand is the product name rendered in titles and the header.
const Brand = "Chekout Admin"

type navItem struct {
	labelKey string
	path     string
}

var navItems = []navItem{
	{"nav.dashboard", routepath.Root},
	{"nav.products", routepath.Products},
	{"nav.categories", routepath.Categories},
	{"nav.users", routepath.Users},
	{"nav.orders", routepath.Orders},
	{"nav.gift_cards", routepath.GiftCards},
	{"nav.discount_keys", routepath.DiscountKeys},
	{"nav.roles", routepath.Roles},
}

// PageTitle formats the branded document title for a page.
func PageTitle(loc Localizer, titleKey string) string {
	return T(loc, titleKey, Brand)
}

// Layout renders the shared document shell around page content.
func Layout(pc PageContext, titleKey string, content templ.Component) templ.Component {
	return component(func(ctx context.Context, w io.Writer) error {
		lang := pc.Lang
		if lang == "" {
			lang = "en"
		}

		head := &markup{}
		head.raw(`<!DOCTYPE html><html`).attr("lang", lang).raw(`><head>`)
		head.raw(`<meta charset="utf-8">`)
		head.raw(`<meta name="viewport" content="width=device-width, initial-scale=1">`)
		head.raw(`<title>`).text(PageTitle(pc.Loc, titleKey)).raw(`</title>`)
		head.raw(`<link rel="stylesheet"`).attr("href", routepath.StaticPrefix+"admin.css").raw(`>`)
		head.raw(`<script src="https://unpkg.com/htmx.org@1.9.12" defer></script>`)
		head.raw(`<script`).attr("src", routepath.StaticPrefix+"watch.js").raw(` defer></script>`)
		head.raw(`</head><body>`)
		head.raw(`<header class="topbar"><a class="brand"`).attr("href", routepath.Root).raw(`>`).text(Brand).raw(`</a></header>`)
		head.raw(`<nav class="sidebar"><ul>`)
		for _, item := range navItems {
			head.raw(`<li`)
			if item.path == pc.CurrentPath {
				head.raw(` class="active"`)
			}
			head.raw(`><a`).attr("href", item.path).raw(`>`).text(T(pc.Loc, item.labelKey)).raw(`</a></li>`)
		}
		head.raw(`</ul></nav>`)
		head.raw(`<main class="content">`)
		if _, err := io.WriteString(w, head.String()); err != nil {
			return err
		}

		if content != nil {
			if err := content.Render(ctx, w); err != nil {
				return err
			}
		}

		_, err := io.WriteString(w, `</main></body></html>`)
		return err
	})
}
