package signup

import "github.com/coli-team/coli-web/internal/domain"

// Event is anything that can be applied to a State with Update.
type Event interface {
	isEvent()
}

// NameChanged sets the full name.
type NameChanged struct{ Value string }

// EmailChanged sets the email address.
type EmailChanged struct{ Value string }

// ProfileChanged sets the profile image. A nil Upload removes it.
type ProfileChanged struct{ Upload *domain.Upload }

// PasswordChanged sets the password.
type PasswordChanged struct{ Value string }

// ConfirmPasswordChanged sets the password confirmation.
type ConfirmPasswordChanged struct{ Value string }

// SubmitRequested runs the validation pipeline and, if it passes, moves the
// form into PhaseSubmitting.
type SubmitRequested struct{}

// SubmitSucceeded settles an in-flight submission successfully.
type SubmitSucceeded struct{}

// SubmitFailed settles an in-flight submission with a failure. Err is kept
// for logging only and never reaches the form.
type SubmitFailed struct{ Err error }

func (NameChanged) isEvent()            {}
func (EmailChanged) isEvent()           {}
func (ProfileChanged) isEvent()         {}
func (PasswordChanged) isEvent()        {}
func (ConfirmPasswordChanged) isEvent() {}
func (SubmitRequested) isEvent()        {}
func (SubmitSucceeded) isEvent()        {}
func (SubmitFailed) isEvent()           {}
