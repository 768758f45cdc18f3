package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/coli-team/coli-web/internal/domain"
	"github.com/coli-team/coli-web/internal/middleware"
	"github.com/coli-team/coli-web/internal/session"
	"github.com/coli-team/coli-web/internal/view"
	"github.com/coli-team/coli-web/internal/view/components"
	"github.com/coli-team/coli-web/internal/view/pages"
)

// HomeHandler renders the signed-in user's team list.
type HomeHandler struct {
	teams  domain.TeamDirectory
	assets components.Assets
}

// NewHomeHandler creates a new HomeHandler.
func NewHomeHandler(teams domain.TeamDirectory, assets components.Assets) *HomeHandler {
	return &HomeHandler{teams: teams, assets: assets}
}

// HomeGet handles GET /. It expects middleware.RequireUser in front of it.
func (h *HomeHandler) HomeGet(c echo.Context) error {
	user, ok := middleware.UserFromContext(c)
	if !ok {
		return c.Redirect(http.StatusSeeOther, middleware.SignUpPath)
	}
	token, _ := session.Token(c)

	ctx := c.Request().Context()
	data := pages.HomeData{User: user}
	teams, err := h.teams.ListTeams(ctx, token)
	switch {
	case errors.Is(err, domain.ErrUnauthorized):
		// The API no longer accepts the token; start over.
		middleware.FromContext(ctx).Info("Session token rejected, signing out", "user_id", user.ID)
		if err := session.Clear(c); err != nil {
			return err
		}
		view.SetFlashError(c, "Your session has expired. Please sign up or sign in again.")
		return c.Redirect(http.StatusSeeOther, middleware.SignUpPath)
	case err != nil:
		middleware.FromContext(ctx).Error("Failed to load teams", "error", err)
		data.Unavailable = true
	default:
		data.Teams = teams
	}

	return renderPage(c, http.StatusOK, "Teams", pages.Home(h.assets, data))
}
