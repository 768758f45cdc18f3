package domain

import "context"

// SafeHTML is markup that has already been through the sanitizer at the
// data-fetch boundary. Renderers write it out verbatim.
type SafeHTML string

// Team is a COLI team as returned by the API.
type Team struct {
	ID          string
	Name        string
	Profile     string   // Image reference under /uploads/teams/profiles; empty when unset.
	Description SafeHTML // Empty when the team has no description.
	Creator     User
	Members     []User
}

// TeamDirectory lists the teams visible to the holder of a session token.
type TeamDirectory interface {
	ListTeams(ctx context.Context, token string) ([]Team, error)
}
