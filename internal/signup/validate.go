package signup

import (
	"errors"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf16"

	"github.com/go-playground/validator/v10"

	"github.com/coli-team/coli-web/internal/domain"
)

// Minimum lengths, counted in UTF-16 code units after trimming.
const (
	MinNameLength     = 7
	MinPasswordLength = 6
)

// Messages shown in place of a field's label when its rule fails.
const (
	MsgName            = "User full name can't be less than 7 characters!"
	MsgEmail           = "Please provide valid email!"
	MsgProfile         = "Please provide profile!"
	MsgPassword        = "Please provide strong password greater than 5 symbols!"
	MsgConfirmPassword = "Please confirm your password"
)

// emailPattern is deliberately loose: it is unanchored and the dot is not
// escaped, so anything containing "<non-digits>@gmail<any char>com" passes.
var emailPattern = regexp.MustCompile(`\b\D+\w*@gmail.com`)

// submission mirrors State with the rules attached. Field order is the
// validation order; only the first failure is reported.
type submission struct {
	Name            string         `validate:"trimmedmin=7"`
	Email           string         `validate:"required,gmail"`
	Profile         *domain.Upload `validate:"required"`
	Password        string         `validate:"trimmedmin=6"`
	ConfirmPassword string         `validate:"eqfield=Password"`
}

var submissionFields = map[string]Field{
	"Name":            FieldName,
	"Email":           FieldEmail,
	"Profile":         FieldProfile,
	"Password":        FieldPassword,
	"ConfirmPassword": FieldConfirmPassword,
}

var fieldMessages = map[Field]string{
	FieldName:            MsgName,
	FieldEmail:           MsgEmail,
	FieldProfile:         MsgProfile,
	FieldPassword:        MsgPassword,
	FieldConfirmPassword: MsgConfirmPassword,
}

var validatorInstance = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("trimmedmin", validateTrimmedMin)
	_ = v.RegisterValidation("gmail", validateGmail)
	return v
}

func validateTrimmedMin(fl validator.FieldLevel) bool {
	min, err := strconv.Atoi(fl.Param())
	if err != nil {
		return false
	}
	return textLength(fl.Field().String()) >= min
}

func validateGmail(fl validator.FieldLevel) bool {
	return emailPattern.MatchString(fl.Field().String())
}

// textLength counts the trimmed text in UTF-16 code units, the unit browsers
// report for input lengths. An emoji outside the BMP counts as two and a
// combining accent counts on its own.
func textLength(s string) int {
	n := 0
	for _, r := range strings.TrimSpace(s) {
		if l := utf16.RuneLen(r); l > 0 {
			n += l
		} else {
			n++ // invalid UTF-8 decodes to U+FFFD
		}
	}
	return n
}

// Validate runs the rules over s in order and returns the first failure as
// an active ValidationError. ok is true when every rule passes.
func Validate(s State) (verr ValidationError, ok bool) {
	err := validatorInstance.Struct(submission{
		Name:            s.Name,
		Email:           s.Email,
		Profile:         s.Profile,
		Password:        s.Password,
		ConfirmPassword: s.ConfirmPassword,
	})
	if err == nil {
		return ValidationError{}, true
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		// Only reachable if the rule set itself is broken.
		return ValidationError{Field: FieldNone, Message: err.Error(), Active: true}, false
	}
	field := submissionFields[verrs[0].StructField()]
	return NewError(field), false
}

// NewError builds the active error for f with its standard message.
func NewError(f Field) ValidationError {
	return ValidationError{Field: f, Message: fieldMessages[f], Active: true}
}
