package domain

import (
	"context"
	"strings"
)

// User is a COLI account as returned by the API. It is read-only on this side.
type User struct {
	ID      string
	Name    string
	Email   string
	Profile string // Image reference under /uploads/users/profiles; empty when unset.
}

// HasProfile reports whether the user has uploaded a profile image.
func (u User) HasProfile() bool {
	return strings.TrimSpace(u.Profile) != ""
}

// Upload is a file picked by the user, held in memory until it is sent on.
type Upload struct {
	Filename    string
	ContentType string
	Content     []byte
}

// Registration carries the validated sign-up fields sent to the API.
type Registration struct {
	Name     string
	Email    string
	Password string
	Profile  Upload
}

// Session is what a successful sign-up hands back: the new user and their token.
type Session struct {
	Token string
	User  User
}

// Registrar creates accounts. It lives in the domain because the sign-up flow
// depends on it, not on a particular HTTP client.
type Registrar interface {
	SignUp(ctx context.Context, reg Registration) (Session, error)
}
