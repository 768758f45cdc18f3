package components

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/coli-team/coli-web/internal/domain"
)

// TaskMember renders a member's avatar next to their name.
func TaskMember(a Assets, member domain.User) g.Node {
	return h.Div(
		h.Class("flex items-center gap-2"),
		Avatar(a.UserProfileURL(member.Profile), "size-[3.6rem]"),
		h.P(
			h.Class("font-semibold text-slate-700 text-[1rem] flex items-center gap-1"),
			h.Span(g.Text(member.Name)),
			h.Span(h.Class("relative top-[-.4rem]"), g.Attr("aria-hidden", "true"), g.Text("✦")),
		),
	)
}
