package handlers_test

import (
	"bytes"
	"context"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/sessions"
	echosession "github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coli-team/coli-web/internal/domain"
	"github.com/coli-team/coli-web/internal/handlers"
	"github.com/coli-team/coli-web/internal/middleware"
	"github.com/coli-team/coli-web/internal/rendering"
	"github.com/coli-team/coli-web/internal/session"
	"github.com/coli-team/coli-web/internal/signup"
	"github.com/coli-team/coli-web/internal/view/components"
)

const testSessionSecret = "a-very-secret-key-for-testing-!"

var pngBytes = append([]byte("\x89PNG\r\n\x1a\n"), make([]byte, 64)...)

// mockRegistrar records sign-up calls and returns a canned result.
type mockRegistrar struct {
	calls []domain.Registration
	err   error
}

func (m *mockRegistrar) SignUp(ctx context.Context, reg domain.Registration) (domain.Session, error) {
	m.calls = append(m.calls, reg)
	if m.err != nil {
		return domain.Session{}, m.err
	}
	return domain.Session{
		Token: "test-token",
		User:  domain.User{ID: "u1", Name: reg.Name, Email: reg.Email},
	}, nil
}

type mockTeams struct {
	teams []domain.Team
	err   error
	token string
}

func (m *mockTeams) ListTeams(ctx context.Context, token string) ([]domain.Team, error) {
	m.token = token
	return m.teams, m.err
}

func setupTest(reg *mockRegistrar, teams *mockTeams) *echo.Echo {
	e := echo.New()
	e.Renderer = rendering.NewUniversalRenderer()
	e.Validator = handlers.NewValidator()
	e.Use(echosession.Middleware(sessions.NewCookieStore([]byte(testSessionSecret))))

	signUp := handlers.NewSignUpHandler(signup.NewController(reg, nil), 1<<20)
	home := handlers.NewHomeHandler(teams, components.NewAssets("http://cdn.test"))

	e.GET("/", home.HomeGet, middleware.RequireUser)
	e.GET("/sign-up", signUp.Get)
	e.POST("/sign-up", signUp.Post)
	e.GET("/sign-up/label/:field", signUp.Label)
	e.POST("/sign-out", handlers.SignOut)

	e.POST("/test-login", func(c echo.Context) error {
		err := session.NewEchoWriter(c).Save(domain.Session{
			Token: "test-token",
			User:  domain.User{ID: "u1", Name: "Alice Liddell"},
		})
		if err != nil {
			return err
		}
		return c.NoContent(http.StatusNoContent)
	})
	return e
}

type form struct {
	name, email, password, confirm string
	profile                        []byte
}

func validForm() form {
	return form{
		name:     "Alice Liddell",
		email:    "alice@gmail.com",
		password: "secret1",
		confirm:  "secret1",
		profile:  pngBytes,
	}
}

func signUpRequest(t *testing.T, f form, htmx bool) *http.Request {
	t.Helper()
	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	require.NoError(t, w.WriteField("name", f.name))
	require.NoError(t, w.WriteField("email", f.email))
	if f.profile != nil {
		part, err := w.CreateFormFile("profile", "me.png")
		require.NoError(t, err)
		_, err = part.Write(f.profile)
		require.NoError(t, err)
	}
	require.NoError(t, w.WriteField("password", f.password))
	require.NoError(t, w.WriteField("confirm_password", f.confirm))
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/sign-up", &body)
	req.Header.Set(echo.HeaderContentType, w.FormDataContentType())
	if htmx {
		req.Header.Set("HX-Request", "true")
	}
	return req
}

func cookie(rec *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, c := range rec.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// assertFlashMessage decodes the flash session set on rec and checks its first message.
func assertFlashMessage(t *testing.T, rec *httptest.ResponseRecorder, key, expectedMessage string) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range rec.Result().Cookies() {
		req.AddCookie(c)
	}
	sess, err := sessions.NewCookieStore([]byte(testSessionSecret)).Get(req, "flash-session")
	require.NoError(t, err)

	flashes := sess.Flashes(key)
	require.NotEmpty(t, flashes, "expected flash message but found none for key: %s", key)
	assert.Equal(t, expectedMessage, flashes[0])
}

func login(t *testing.T, e *echo.Echo) []*http.Cookie {
	t.Helper()
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/test-login", nil))
	require.Equal(t, http.StatusNoContent, rec.Code)
	return rec.Result().Cookies()
}

func TestSignUpGet(t *testing.T) {
	e := setupTest(&mockRegistrar{}, &mockTeams{})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/sign-up", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "<title>Sign Up - COLI</title>")
	assert.Contains(t, body, `id="signup-form"`)
}

func TestSignUpPost(t *testing.T) {
	t.Run("success stores the session and redirects home", func(t *testing.T) {
		reg := &mockRegistrar{}
		e := setupTest(reg, &mockTeams{})

		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, signUpRequest(t, validForm(), false))

		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/", rec.Header().Get(echo.HeaderLocation))
		require.Len(t, reg.calls, 1)
		assert.Equal(t, "Alice Liddell", reg.calls[0].Name)
		assert.Equal(t, "image/png", reg.calls[0].Profile.ContentType)
		assert.Equal(t, "me.png", reg.calls[0].Profile.Filename)

		token := cookie(rec, session.TokenKey)
		require.NotNil(t, token)
		assert.Equal(t, "test-token", token.Value)
		assert.True(t, token.HttpOnly)
		assertFlashMessage(t, rec, "success", "Account created successfully!")
	})

	t.Run("htmx success redirects through the HX-Redirect header", func(t *testing.T) {
		e := setupTest(&mockRegistrar{}, &mockTeams{})

		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, signUpRequest(t, validForm(), true))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "/", rec.Header().Get("HX-Redirect"))
	})

	t.Run("invalid form is re-rendered with the field error", func(t *testing.T) {
		reg := &mockRegistrar{}
		e := setupTest(reg, &mockTeams{})
		f := validForm()
		f.name = "Bob"

		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, signUpRequest(t, f, false))

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Contains(t, rec.Body.String(), signup.MsgName)
		assert.Contains(t, rec.Body.String(), `value="alice@gmail.com"`)
		assert.Empty(t, reg.calls)
		assert.Nil(t, cookie(rec, session.TokenKey))
	})

	t.Run("re-render drops the profile upload and passwords", func(t *testing.T) {
		e := setupTest(&mockRegistrar{}, &mockTeams{})
		f := validForm()
		f.email = "alice@example.com"

		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, signUpRequest(t, f, true))

		body := rec.Body.String()
		assert.Contains(t, body, signup.MsgEmail)
		assert.Contains(t, body, `value="Alice Liddell"`)
		assert.NotContains(t, body, "secret1")
		assert.NotContains(t, body, "me.png")
		assert.Contains(t, body, `type="file"`)
	})

	t.Run("missing profile is reported", func(t *testing.T) {
		reg := &mockRegistrar{}
		e := setupTest(reg, &mockTeams{})
		f := validForm()
		f.profile = nil

		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, signUpRequest(t, f, false))

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Contains(t, rec.Body.String(), signup.MsgProfile)
		assert.Empty(t, reg.calls)
	})

	t.Run("htmx validation failure returns only the form", func(t *testing.T) {
		e := setupTest(&mockRegistrar{}, &mockTeams{})
		f := validForm()
		f.confirm = "different"

		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, signUpRequest(t, f, true))

		assert.Equal(t, http.StatusOK, rec.Code)
		body := rec.Body.String()
		assert.True(t, strings.HasPrefix(body, "<form"))
		assert.NotContains(t, body, "<html")
		assert.Contains(t, body, signup.MsgConfirmPassword)
	})

	t.Run("api failure re-enables the form", func(t *testing.T) {
		reg := &mockRegistrar{err: errors.New("connection refused")}
		e := setupTest(reg, &mockTeams{})

		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, signUpRequest(t, validForm(), false))

		assert.Equal(t, http.StatusBadGateway, rec.Code)
		assert.Len(t, reg.calls, 1)
		assert.Contains(t, rec.Body.String(), `data-phase="failed"`)
		assert.NotContains(t, rec.Body.String(), " disabled>")
		assert.Nil(t, cookie(rec, session.TokenKey))
	})

	t.Run("oversized fields are rejected", func(t *testing.T) {
		reg := &mockRegistrar{}
		e := setupTest(reg, &mockTeams{})
		f := validForm()
		f.name = strings.Repeat("a", 300)

		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, signUpRequest(t, f, false))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Empty(t, reg.calls)
	})
}

func TestSignUpLabel(t *testing.T) {
	e := setupTest(&mockRegistrar{}, &mockTeams{})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/sign-up/label/confirm_password", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `id="label-confirm_password"`)
	assert.Contains(t, rec.Body.String(), "Confirm Password")

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/sign-up/label/nope", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHomeGet(t *testing.T) {
	t.Run("lists the user's teams", func(t *testing.T) {
		teams := &mockTeams{teams: []domain.Team{{ID: "t1", Name: "Core Team"}}}
		e := setupTest(&mockRegistrar{}, teams)

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		for _, c := range login(t, e) {
			req.AddCookie(c)
		}
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Core Team")
		assert.Contains(t, rec.Body.String(), "Alice Liddell")
		assert.Equal(t, "test-token", teams.token)
	})

	t.Run("rejected token signs the user out", func(t *testing.T) {
		e := setupTest(&mockRegistrar{}, &mockTeams{err: domain.ErrUnauthorized})

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		for _, c := range login(t, e) {
			req.AddCookie(c)
		}
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/sign-up", rec.Header().Get(echo.HeaderLocation))
		token := cookie(rec, session.TokenKey)
		require.NotNil(t, token)
		assert.Negative(t, token.MaxAge)
	})

	t.Run("api outage still renders the page", func(t *testing.T) {
		e := setupTest(&mockRegistrar{}, &mockTeams{err: errors.New("boom")})

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		for _, c := range login(t, e) {
			req.AddCookie(c)
		}
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Teams are unavailable right now.")
	})
}

func TestSignOut(t *testing.T) {
	e := setupTest(&mockRegistrar{}, &mockTeams{})

	req := httptest.NewRequest(http.MethodPost, "/sign-out", nil)
	for _, c := range login(t, e) {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	token := cookie(rec, session.TokenKey)
	require.NotNil(t, token)
	assert.Negative(t, token.MaxAge)
	assertFlashMessage(t, rec, "success", "You have been signed out.")
}
