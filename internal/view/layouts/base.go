package layouts

import (
	"context"
	"io"

	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
	c "maragu.dev/gomponents/components"
	h "maragu.dev/gomponents/html"

	"github.com/coli-team/coli-web/internal/view"
)

// HTMXScriptURL is the htmx build the pages are written against.
const HTMXScriptURL = "https://unpkg.com/htmx.org@2.0.4"

// Base wraps page content in the document shell with flash messages.
func Base(title string, flashes view.FlashData, content templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return c.HTML5(c.HTML5Props{
			Title:    CalculateTitle(title),
			Language: "en",
			Head: []g.Node{
				h.Meta(h.Name("viewport"), h.Content("width=device-width, initial-scale=1")),
				h.Link(h.Rel("stylesheet"), h.Href("/static/app.css")),
				h.Script(h.Src(HTMXScriptURL), h.Defer()),
			},
			Body: []g.Node{
				h.Class("bg-white text-slate-800"),
				Flashes(flashes),
				h.Main(view.AdaptTemplToGomponentCtx(ctx, content)),
			},
		}).Render(w)
	})
}

// Flashes renders one-shot success and error banners.
func Flashes(f view.FlashData) g.Node {
	if f.Empty() {
		return g.Text("")
	}
	return h.Div(
		h.ID("flashes"),
		h.Class("fixed top-2 inset-x-0 flex flex-col items-center gap-2"),
		g.Map(f.Success, func(msg string) g.Node {
			return h.P(h.Class("flash flash-success px-4 py-2 rounded-sm bg-green-100 text-green-800"), g.Attr("role", "status"), g.Text(msg))
		}),
		g.Map(f.Error, func(msg string) g.Node {
			return h.P(h.Class("flash flash-error px-4 py-2 rounded-sm bg-red-100 text-red-800"), g.Attr("role", "alert"), g.Text(msg))
		}),
	)
}
