// Package components holds the stateless renderers for users and teams.
package components

import (
	"net/url"
	"strings"
)

const (
	userProfilesPath = "/uploads/users/profiles/"
	teamProfilesPath = "/uploads/teams/profiles/"
)

// Assets builds image URLs on the asset origin.
type Assets struct {
	BaseURL string
}

// NewAssets creates Assets for the given origin, e.g. "http://localhost:5050".
func NewAssets(baseURL string) Assets {
	return Assets{BaseURL: strings.TrimRight(baseURL, "/")}
}

// UserProfileURL returns the image URL for a user profile reference, or ""
// when the reference is empty.
func (a Assets) UserProfileURL(ref string) string {
	return a.profileURL(userProfilesPath, ref)
}

// TeamProfileURL returns the image URL for a team profile reference, or ""
// when the reference is empty.
func (a Assets) TeamProfileURL(ref string) string {
	return a.profileURL(teamProfilesPath, ref)
}

func (a Assets) profileURL(dir, ref string) string {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return ""
	}
	return a.BaseURL + dir + url.PathEscape(ref)
}
