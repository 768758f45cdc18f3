package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// CustomValidator wraps go-playground/validator to implement echo.Validator.
type CustomValidator struct {
	validator *validator.Validate
}

// NewValidator creates a new CustomValidator.
func NewValidator() *CustomValidator {
	return &CustomValidator{validator: validator.New()}
}

// Validate implements echo.Validator.
func (cv *CustomValidator) Validate(i any) error {
	return cv.validator.Struct(i)
}

// SignUpRequest is the bound form of POST /sign-up. The limits only reject
// oversized input; the form rules themselves live in package signup.
type SignUpRequest struct {
	Name            string `form:"name" validate:"max=200"`
	Email           string `form:"email" validate:"max=254"`
	Password        string `form:"password" validate:"max=256"`
	ConfirmPassword string `form:"confirm_password" validate:"max=256"`
}

// isHTMX reports whether the request was issued by htmx.
func isHTMX(c echo.Context) bool {
	return c.Request().Header.Get("HX-Request") == "true"
}
