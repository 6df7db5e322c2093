package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/chekout/admin/internal/services/admin/routepath"
)

// DiscountKeysPageView provides data for the discount keys page.
type DiscountKeysPageView struct {
	Message     string
	CheckCode   string
	CheckResult string
	Tiers       []TierOption
	Rows        []DiscountKeyRow
}

// TierOption is one generate-form tier choice.
type TierOption struct {
	Value   string
	Label   string
	Percent string
}

// DiscountKeyRow represents a row in the discount keys table.
type DiscountKeyRow struct {
	ID        string
	Code      string
	Tier      string
	Percent   string
	Used      bool
	Revoked   bool
	UsedBy    string
	CreatedAt string
}

// DiscountKeysTable renders just the key table for HTMX swaps.
func DiscountKeysTable(pc PageContext, view DiscountKeysPageView) templ.Component {
	return component(func(ctx context.Context, w io.Writer) error {
		m := &markup{}
		m.raw(`<div id="discount-keys-table">`)
		m.raw(`<table><thead><tr>`)
		for _, key := range []string{"discountkeys.code", "discountkeys.tier", "discountkeys.percent", "discountkeys.state", "discountkeys.created", "discountkeys.actions"} {
			m.raw(`<th>`).text(T(pc.Loc, key)).raw(`</th>`)
		}
		m.raw(`</tr></thead><tbody>`)
		if len(view.Rows) == 0 {
			m.raw(`<tr><td colspan="6" class="empty">`).text(T(pc.Loc, "discountkeys.empty")).raw(`</td></tr>`)
		}
		for _, row := range view.Rows {
			m.raw(`<tr>`)
			m.raw(`<td><code>`).text(row.Code).raw(`</code></td>`)
			m.raw(`<td>`).text(row.Tier).raw(`</td>`)
			m.raw(`<td>`).text(row.Percent).raw(`</td>`)
			m.raw(`<td>`).text(discountKeyStateLabel(pc.Loc, row)).raw(`</td>`)
			m.raw(`<td>`).text(row.CreatedAt).raw(`</td>`)
			m.raw(`<td>`)
			if !row.Used && !row.Revoked {
				postButton(m, routepath.DiscountKeyRevoke(row.ID), T(pc.Loc, "action.revoke"))
			}
			m.raw(`</td>`)
			m.raw(`</tr>`)
		}
		m.raw(`</tbody></table></div>`)
		_, err := io.WriteString(w, m.String())
		return err
	})
}

func discountKeyStateLabel(loc Localizer, row DiscountKeyRow) string {
	switch {
	case row.Revoked:
		return T(loc, "discountkeys.state_revoked")
	case row.Used:
		return T(loc, "discountkeys.state_used", row.UsedBy)
	default:
		return T(loc, "discountkeys.state_unused")
	}
}

// DiscountKeysContent renders the key list and generate form.
func DiscountKeysContent(pc PageContext, view DiscountKeysPageView) templ.Component {
	return component(func(ctx context.Context, w io.Writer) error {
		m := &markup{}
		renderHeading(m, PageHeading{Title: T(pc.Loc, "discountkeys.heading")})
		renderFlash(m, view.Message)

		m.raw(`<form method="post"`).attr("action", routepath.DiscountKeysGenerate).raw(` class="inline generate">`)
		m.raw(`<select name="tier">`)
		for _, tier := range view.Tiers {
			m.raw(`<option`).attr("value", tier.Value).raw(`>`)
			m.text(tier.Label + " (" + tier.Percent + ")")
			m.raw(`</option>`)
		}
		m.raw(`</select>`)
		m.raw(`<input type="number" name="count" min="1" value="10">`)
		m.raw(`<button type="submit">`).text(T(pc.Loc, "discountkeys.generate")).raw(`</button>`)
		m.raw(`</form>`)

		m.raw(`<form method="get"`).attr("action", routepath.DiscountKeysCheck).raw(` class="inline filter">`)
		m.raw(`<input type="text" name="code" maxlength="8"`).attr("value", view.CheckCode).raw(`>`)
		m.raw(`<button type="submit">`).text(T(pc.Loc, "discountkeys.check")).raw(`</button>`)
		m.raw(`</form>`)
		if view.CheckResult != "" {
			m.raw(`<p class="check-result">`).text(view.CheckResult).raw(`</p>`)
		}

		if _, err := io.WriteString(w, m.String()); err != nil {
			return err
		}
		return DiscountKeysTable(pc, view).Render(ctx, w)
	})
}

// DiscountKeysPage renders the full discount keys document.
func DiscountKeysPage(pc PageContext, view DiscountKeysPageView) templ.Component {
	return Layout(pc, "title.discountkeys", DiscountKeysContent(pc, view))
}
