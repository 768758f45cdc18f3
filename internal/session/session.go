// Package session holds the process-wide session state written once a user
// has signed up: the token in durable client storage and the current user.
package session

import (
	"net/http"
	"time"

	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"

	"github.com/coli-team/coli-web/internal/domain"
)

const (
	// TokenKey is the durable storage key (cookie name on the web) for the API token.
	TokenKey = "token"

	sessionName = "coli-session"
	tokenTTL    = 7 * 24 * time.Hour

	keyUserID      = "user_id"
	keyUserName    = "user_name"
	keyUserEmail   = "user_email"
	keyUserProfile = "user_profile"
)

// EchoWriter persists a session into the browser: the token as an HttpOnly
// cookie and the user in the signed session cookie.
type EchoWriter struct {
	c echo.Context
}

// NewEchoWriter binds a writer to the current request.
func NewEchoWriter(c echo.Context) *EchoWriter {
	return &EchoWriter{c: c}
}

// Save implements signup.SessionWriter.
func (w *EchoWriter) Save(s domain.Session) error {
	sess, err := session.Get(sessionName, w.c)
	if err != nil {
		return err
	}
	sess.Values[keyUserID] = s.User.ID
	sess.Values[keyUserName] = s.User.Name
	sess.Values[keyUserEmail] = s.User.Email
	sess.Values[keyUserProfile] = s.User.Profile
	if err := sess.Save(w.c.Request(), w.c.Response()); err != nil {
		return err
	}

	setTokenCookie(w.c, s.Token)
	return nil
}

// CurrentUser returns the signed-in user, if any. A user without a token
// cookie is treated as signed out.
func CurrentUser(c echo.Context) (domain.User, bool) {
	if _, ok := Token(c); !ok {
		return domain.User{}, false
	}
	sess, err := session.Get(sessionName, c)
	if err != nil {
		return domain.User{}, false
	}
	id, _ := sess.Values[keyUserID].(string)
	if id == "" {
		return domain.User{}, false
	}
	name, _ := sess.Values[keyUserName].(string)
	email, _ := sess.Values[keyUserEmail].(string)
	profile, _ := sess.Values[keyUserProfile].(string)
	return domain.User{ID: id, Name: name, Email: email, Profile: profile}, true
}

// Token returns the API token from the token cookie.
func Token(c echo.Context) (string, bool) {
	cookie, err := c.Cookie(TokenKey)
	if err != nil || cookie.Value == "" {
		return "", false
	}
	return cookie.Value, true
}

// Clear signs the user out by expiring both cookies.
func Clear(c echo.Context) error {
	setTokenCookie(c, "")
	sess, err := session.Get(sessionName, c)
	if err != nil {
		return err
	}
	sess.Options.MaxAge = -1
	return sess.Save(c.Request(), c.Response())
}

// setTokenCookie writes the token cookie; an empty token expires it.
func setTokenCookie(c echo.Context, token string) {
	cookie := new(http.Cookie)
	cookie.Name = TokenKey
	cookie.Value = token
	cookie.Path = "/"
	if token == "" {
		cookie.MaxAge = -1
	} else {
		cookie.Expires = time.Now().UTC().Add(tokenTTL)
	}
	// HttpOnly keeps the token out of reach of page scripts.
	cookie.HttpOnly = true
	cookie.Secure = c.Request().TLS != nil
	cookie.SameSite = http.SameSiteLaxMode
	c.SetCookie(cookie)
}
