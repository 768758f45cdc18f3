package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/coli-team/coli-web/internal/domain"
	"github.com/coli-team/coli-web/internal/middleware"
	"github.com/coli-team/coli-web/internal/session"
	"github.com/coli-team/coli-web/internal/signup"
	"github.com/coli-team/coli-web/internal/storage"
	"github.com/coli-team/coli-web/internal/view"
	"github.com/coli-team/coli-web/internal/view/pages"
)

const signUpTitle = "Sign Up"

// SignUpHandler serves the sign-up form and drives the form controller.
type SignUpHandler struct {
	controller     *signup.Controller
	maxUploadBytes int64
}

// NewSignUpHandler creates a new SignUpHandler.
func NewSignUpHandler(controller *signup.Controller, maxUploadBytes int64) *SignUpHandler {
	return &SignUpHandler{controller: controller, maxUploadBytes: maxUploadBytes}
}

// Get renders an empty sign-up form (GET /sign-up).
func (h *SignUpHandler) Get(c echo.Context) error {
	return renderPage(c, http.StatusOK, signUpTitle, pages.SignUp(signup.State{}))
}

// Post handles the form submission (POST /sign-up).
//
// Successful sign-ups redirect home. A rejected form is re-rendered with the
// field error in its label (422), a failed API call with the submit control
// re-enabled (502). htmx requests always get 200 so the form is swapped in.
func (h *SignUpHandler) Post(c echo.Context) error {
	var req SignUpRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form").SetInternal(err)
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form").SetInternal(err)
	}

	profile, err := h.readProfile(c)
	if err != nil {
		if errors.Is(err, storage.ErrTooLarge) {
			return echo.NewHTTPError(http.StatusRequestEntityTooLarge, "profile image is too large")
		}
		return echo.NewHTTPError(http.StatusBadRequest, "invalid profile upload").SetInternal(err)
	}

	state := signup.Apply(signup.State{},
		signup.NameChanged{Value: req.Name},
		signup.EmailChanged{Value: req.Email},
		signup.ProfileChanged{Upload: profile},
		signup.PasswordChanged{Value: req.Password},
		signup.ConfirmPasswordChanged{Value: req.ConfirmPassword},
	)

	ctx := c.Request().Context()
	state, err = h.controller.Submit(ctx, state, session.NewEchoWriter(c))

	switch {
	case state.Phase == signup.PhaseRedirect:
		view.SetFlashSuccess(c, "Account created successfully!")
		if isHTMX(c) {
			c.Response().Header().Set("HX-Redirect", middleware.HomePath)
			return c.NoContent(http.StatusOK)
		}
		return c.Redirect(http.StatusSeeOther, middleware.HomePath)

	case err != nil:
		middleware.FromContext(ctx).Warn("Sign-up failed", "error", err)
		return h.renderForm(c, http.StatusBadGateway, state)

	default:
		return h.renderForm(c, http.StatusUnprocessableEntity, state)
	}
}

// Label renders the default label of a field (GET /sign-up/label/:field). The
// form requests it to clear an error once the user edits the field.
func (h *SignUpHandler) Label(c echo.Context) error {
	field, ok := signup.ParseField(c.Param("field"))
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "unknown field")
	}
	return renderFragment(c, http.StatusOK, pages.FieldLabel(field, signup.ValidationError{}))
}

// renderForm re-renders the form from state. Only name and email are refilled:
// browsers cannot prefill a file input and passwords are never echoed, so the
// user picks the profile image and types both passwords again after any
// failed submit.
func (h *SignUpHandler) renderForm(c echo.Context, status int, state signup.State) error {
	if isHTMX(c) {
		return renderFragment(c, http.StatusOK, pages.SignUpForm(state))
	}
	return renderPage(c, status, signUpTitle, pages.SignUp(state))
}

// readProfile returns the uploaded profile image, or nil when none was sent.
func (h *SignUpHandler) readProfile(c echo.Context) (*domain.Upload, error) {
	fh, err := c.FormFile("profile")
	if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return storage.ReadUpload(f, fh.Filename, h.maxUploadBytes)
}
