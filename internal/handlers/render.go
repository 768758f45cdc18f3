package handlers

import (
	"github.com/labstack/echo/v4"
	g "maragu.dev/gomponents"

	"github.com/coli-team/coli-web/internal/view"
	"github.com/coli-team/coli-web/internal/view/layouts"
)

// renderPage wraps content in the base layout with any pending flashes and
// renders it through the echo renderer.
func renderPage(c echo.Context, status int, title string, content g.Node) error {
	page := layouts.Base(title, view.GetFlashData(c), view.AdaptGomponentToTempl(content))
	return c.Render(status, "", page)
}

// renderFragment renders a bare node, e.g. an htmx swap target.
func renderFragment(c echo.Context, status int, node g.Node) error {
	return c.Render(status, "", node)
}
