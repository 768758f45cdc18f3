// Package signup holds the sign-up form controller: the form state, the
// events that change it and the validation pipeline that gates submission.
package signup

import "github.com/coli-team/coli-web/internal/domain"

// Field identifies a form field that a ValidationError can be attached to.
type Field int

const (
	FieldNone Field = iota
	FieldName
	FieldEmail
	FieldProfile
	FieldPassword
	FieldConfirmPassword
)

var fieldKeys = map[Field]string{
	FieldName:            "name",
	FieldEmail:           "email",
	FieldProfile:         "profile",
	FieldPassword:        "password",
	FieldConfirmPassword: "confirm_password",
}

// String returns the form key of the field, as used in request bodies and element ids.
func (f Field) String() string {
	if key, ok := fieldKeys[f]; ok {
		return key
	}
	return "none"
}

// ParseField maps a form key back to its Field.
func ParseField(key string) (Field, bool) {
	for f, k := range fieldKeys {
		if k == key {
			return f, true
		}
	}
	return FieldNone, false
}

// Fields lists the form fields in the order they are validated.
func Fields() []Field {
	return []Field{FieldName, FieldEmail, FieldProfile, FieldPassword, FieldConfirmPassword}
}

// ValidationError is the single error slot of the form. The zero value is the
// cleared state.
type ValidationError struct {
	Field   Field
	Message string
	Active  bool
}

// For reports whether the error is active and attached to f.
func (e ValidationError) For(f Field) bool {
	return e.Active && e.Field == f
}

// Phase is the submission phase of the form.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseSubmitting
	PhaseRedirect
	PhaseFailed
)

func (p Phase) String() string {
	switch p {
	case PhaseSubmitting:
		return "submitting"
	case PhaseRedirect:
		return "redirect"
	case PhaseFailed:
		return "failed"
	default:
		return "idle"
	}
}

// State is the whole sign-up form. It is a value; Update returns a new one.
type State struct {
	Name            string
	Email           string
	Profile         *domain.Upload
	Password        string
	ConfirmPassword string
	Error           ValidationError
	Phase           Phase
}

// Busy reports whether the submit control should be disabled.
func (s State) Busy() bool {
	return s.Phase == PhaseSubmitting
}

// Registration packages the fields for the API. It is only meaningful once
// the state has passed validation.
func (s State) Registration() domain.Registration {
	reg := domain.Registration{
		Name:     s.Name,
		Email:    s.Email,
		Password: s.Password,
	}
	if s.Profile != nil {
		reg.Profile = *s.Profile
	}
	return reg
}
