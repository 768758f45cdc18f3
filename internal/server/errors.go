package server

import (
	"bytes"
	"errors"
	"net/http"
	"runtime/debug"

	"github.com/labstack/echo/v4"

	"github.com/coli-team/coli-web/internal/middleware"
	"github.com/coli-team/coli-web/internal/view"
	"github.com/coli-team/coli-web/internal/view/layouts"
	"github.com/coli-team/coli-web/internal/view/pages"
)

// setupErrorHandling installs the central error handler. HTTP errors are
// rendered with their status and message; anything else is logged with a
// stack trace and rendered as a 500.
func setupErrorHandling(e *echo.Echo) {
	e.HTTPErrorHandler = func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}
		logger := middleware.FromContext(c.Request().Context())

		status := http.StatusInternalServerError
		message := ""
		var he *echo.HTTPError
		if errors.As(err, &he) {
			status = he.Code
			if msg, ok := he.Message.(string); ok {
				message = msg
			}
			if he.Internal != nil {
				logger.Warn("Request failed", "status", status, "error", he.Internal)
			}
		} else {
			logger.Error("Internal Server Error (Unhandled)",
				"error", err,
				"stack_trace", string(debug.Stack()),
			)
		}

		if c.Request().Method == http.MethodHead {
			err = c.NoContent(status)
		} else {
			err = renderError(c, status, message)
		}
		if err != nil {
			logger.Error("Failed to write error response", "error", err)
		}
	}
}

func renderError(c echo.Context, status int, message string) error {
	title := http.StatusText(status)
	page := layouts.Base(title, view.FlashData{}, view.AdaptGomponentToTempl(pages.Error(status, message)))

	var buf bytes.Buffer
	if err := page.Render(c.Request().Context(), &buf); err != nil {
		return c.String(status, title)
	}
	return c.HTMLBlob(status, buf.Bytes())
}
