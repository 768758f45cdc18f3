package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/coli-team/coli-web/internal/domain"
)

// ErrMalformedResponse is returned when a 2xx response lacks required fields.
var ErrMalformedResponse = errors.New("malformed API response")

// StatusError is returned for any non-2xx response. The body is kept for
// logs only; its shape is owned by the API and not interpreted here.
type StatusError struct {
	Method     string
	Path       string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s %s: unexpected status %d: %s", e.Method, e.Path, e.StatusCode, e.Body)
}

// Is lets callers match auth failures with errors.Is(err, domain.ErrUnauthorized).
func (e *StatusError) Is(target error) bool {
	if target != domain.ErrUnauthorized {
		return false
	}
	return e.StatusCode == http.StatusUnauthorized || e.StatusCode == http.StatusForbidden
}
