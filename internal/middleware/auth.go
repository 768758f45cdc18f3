package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/coli-team/coli-web/internal/domain"
	"github.com/coli-team/coli-web/internal/session"
)

// UserContextKey is the echo context key the signed-in user is stored under.
const UserContextKey = "user"

// Redirect targets for the session guards.
const (
	SignUpPath = "/sign-up"
	HomePath   = "/"
)

// RequireUser lets signed-in users through with the user stored under
// UserContextKey, and redirects everyone else to the sign-up page.
func RequireUser(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		user, ok := session.CurrentUser(c)
		if !ok {
			return c.Redirect(http.StatusSeeOther, SignUpPath)
		}
		c.Set(UserContextKey, user)
		return next(c)
	}
}

// RedirectIfSignedIn sends users who already have a session to the home page.
func RedirectIfSignedIn(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if _, ok := session.CurrentUser(c); ok {
			return c.Redirect(http.StatusSeeOther, HomePath)
		}
		return next(c)
	}
}

// UserFromContext returns the user stored by RequireUser.
func UserFromContext(c echo.Context) (domain.User, bool) {
	user, ok := c.Get(UserContextKey).(domain.User)
	return user, ok
}
