package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/coli-team/coli-web/internal/middleware"
	"github.com/coli-team/coli-web/internal/session"
	"github.com/coli-team/coli-web/internal/view"
)

// SignOut expires the session cookies (POST /sign-out).
func SignOut(c echo.Context) error {
	if err := session.Clear(c); err != nil {
		return err
	}
	view.SetFlashSuccess(c, "You have been signed out.")
	return c.Redirect(http.StatusSeeOther, middleware.SignUpPath)
}

// Health reports liveness (GET /health).
func Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
