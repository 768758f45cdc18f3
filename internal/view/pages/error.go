package pages

import (
	"net/http"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// Error renders a minimal error page for status.
func Error(status int, message string) g.Node {
	if message == "" {
		message = http.StatusText(status)
	}
	return h.Div(
		h.Class("h-screen grid place-items-center"),
		h.Div(
			h.Class("text-center"),
			h.H1(h.Class("font-bold text-4xl text-slate-700"), g.Textf("%d", status)),
			h.P(h.Class("text-slate-500 mt-2"), g.Text(message)),
			h.A(h.Class("text-slate-600 underline mt-4 block"), h.Href("/"), g.Text("Back to COLI")),
		),
	)
}
