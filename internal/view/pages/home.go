package pages

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/coli-team/coli-web/internal/domain"
	"github.com/coli-team/coli-web/internal/view/components"
)

// SignOutPath ends the session.
const SignOutPath = "/sign-out"

// HomeData is the view model for the team listing page.
type HomeData struct {
	User        domain.User
	Teams       []domain.Team
	Unavailable bool // The team list could not be loaded.
}

// Home renders the signed-in landing page: the user and their teams.
func Home(a components.Assets, data HomeData) g.Node {
	return h.Div(
		h.Class("container mx-auto p-6"),
		h.Header(
			h.Class("flex items-center justify-between mb-8"),
			components.TaskMember(a, data.User),
			h.Form(
				h.Method("post"),
				h.Action(SignOutPath),
				h.Button(h.Type("submit"), h.Class("text-sm font-semibold text-slate-600"), g.Text("Sign Out")),
			),
		),
		h.H2(h.Class("font-bold text-2xl text-slate-700 mb-4"), g.Text("Your Teams")),
		g.If(data.Unavailable,
			h.P(h.Class("text-center text-slate-500 my-8"), g.Text("Teams are unavailable right now.")),
		),
		g.If(!data.Unavailable, components.TeamGrid(a, data.Teams)),
	)
}
