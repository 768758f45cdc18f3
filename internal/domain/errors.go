package domain

import "errors"

// ErrUnauthorized is the sentinel callers branch on when the API rejects the
// session token.
var ErrUnauthorized = errors.New("session token rejected")
