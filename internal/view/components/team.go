package components

import (
	"net/url"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/coli-team/coli-web/internal/domain"
)

// MaxMemberAvatars is how many member avatars a team card shows.
const MaxMemberAvatars = 4

// DescriptionPlaceholder stands in for a team without a description.
const DescriptionPlaceholder = "No description yet."

// TeamBox renders a team card linking to the team page. The description is
// written out as-is: it must already be sanitized.
func TeamBox(a Assets, team domain.Team) g.Node {
	return h.A(
		h.Href("/"+url.PathEscape(team.ID)),
		h.Class("relative w-full max-sm:w-[70%] mx-auto border-2 rounded-[.3rem] border-gray-400 flex flex-col"),
		g.Attr("data-team-id", team.ID),
		h.Div(
			h.Class("flex items-center py-2 px-2 mb-1 justify-between"),
			h.Div(
				h.Class("flex items-center gap-4"),
				Avatar(a.TeamProfileURL(team.Profile), "size-[3rem] drop-shadow-md"),
				h.Span(h.Class("font-semibold text-slate-600"), g.Text(team.Name)),
			),
		),
		h.P(h.Class("h-[.02rem] bg-slate-100 mx-2")),
		h.Div(
			h.Class("min-h-[4rem]"),
			h.Div(h.Class("px-2 text-slate-700 line-clamp-4"), description(team.Description)),
		),
		h.Div(
			h.Class("border-t-[.1rem] border-t-gray-100 w-full flex items-center mt-4 pt-3 pb-1 pl-1"),
			h.Div(
				h.Class("relative mr-4"),
				Avatar(a.UserProfileURL(team.Creator.Profile), "size-[3rem]"),
				h.Span(h.Class("absolute text-sm -top-2 -right-3 text-slate-600"), g.Attr("aria-hidden", "true"), g.Text("♚")),
			),
			g.Map(visibleMembers(team.Members), func(m domain.User) g.Node {
				return Avatar(a.UserProfileURL(m.Profile), "size-[3rem]")
			}),
		),
	)
}

// TeamGrid lays out team cards, with an empty state when there are none.
func TeamGrid(a Assets, teams []domain.Team) g.Node {
	if len(teams) == 0 {
		return h.P(h.Class("text-center text-slate-500 my-8"), g.Text("You are not part of any team yet."))
	}
	return h.Div(
		h.Class("grid grid-cols-1 sm:grid-cols-2 lg:grid-cols-3 gap-6"),
		g.Map(teams, func(t domain.Team) g.Node { return TeamBox(a, t) }),
	)
}

func description(d domain.SafeHTML) g.Node {
	if d == "" {
		return g.Text(DescriptionPlaceholder)
	}
	return g.Raw(string(d))
}

func visibleMembers(members []domain.User) []domain.User {
	if len(members) > MaxMemberAvatars {
		return members[:MaxMemberAvatars]
	}
	return members
}
