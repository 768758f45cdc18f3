package signup

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/coli-team/coli-web/internal/domain"
)

// SessionWriter persists the outcome of a successful sign-up: the token to
// durable client storage and the user to the process-wide session.
type SessionWriter interface {
	Save(sess domain.Session) error
}

// Controller runs the one side-effecting transition of the form: sending a
// validated submission to the Registrar.
type Controller struct {
	registrar domain.Registrar
	logger    *slog.Logger
}

// NewController creates a Controller. A nil logger falls back to slog.Default.
func NewController(registrar domain.Registrar, logger *slog.Logger) *Controller {
	if logger == nil {
		logger = slog.Default()
	}
	return &Controller{registrar: registrar, logger: logger}
}

// Submit validates s and, when it passes, issues exactly one sign-up call.
//
// The returned state is in PhaseRedirect on success and PhaseFailed when the
// call or the session write failed; in that case the error is returned as
// well. A state that fails validation comes back with its error set, the
// phase unchanged and a nil error, and no call is made.
func (c *Controller) Submit(ctx context.Context, s State, sessions SessionWriter) (State, error) {
	s = Update(s, SubmitRequested{})
	if s.Phase != PhaseSubmitting {
		return s, nil
	}

	sess, err := c.registrar.SignUp(ctx, s.Registration())
	if err != nil {
		c.logger.WarnContext(ctx, "sign-up request failed", "email", s.Email, "error", err)
		return Update(s, SubmitFailed{Err: err}), fmt.Errorf("sign up: %w", err)
	}

	if err := sessions.Save(sess); err != nil {
		c.logger.ErrorContext(ctx, "failed to persist session after sign-up", "user_id", sess.User.ID, "error", err)
		return Update(s, SubmitFailed{Err: err}), fmt.Errorf("save session: %w", err)
	}

	c.logger.InfoContext(ctx, "user signed up", "user_id", sess.User.ID)
	return Update(s, SubmitSucceeded{}), nil
}
