package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/coli-team/coli-web/internal/domain"
)

// TeamsPath lists the teams of the signed-in user.
const TeamsPath = "/api/v1/teams"

// ListTeams fetches the caller's teams. Descriptions are sanitized here so
// everything past this point can treat them as trusted markup.
func (c *Client) ListTeams(ctx context.Context, token string) ([]domain.Team, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url(TeamsPath), nil)
	if err != nil {
		return nil, fmt.Errorf("build teams request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	var out teamsResponse
	if err := c.do(ctx, req, &out); err != nil {
		return nil, err
	}

	teams := make([]domain.Team, 0, len(out.Data.Teams))
	for _, t := range out.Data.Teams {
		teams = append(teams, c.toTeam(t))
	}
	return teams, nil
}

func (c *Client) toTeam(t teamDTO) domain.Team {
	team := domain.Team{
		ID:      t.ID,
		Name:    t.Name,
		Profile: t.Profile,
	}
	if t.Description != nil {
		team.Description = c.Sanitize(*t.Description)
	}
	if t.Creator != nil {
		team.Creator = t.Creator.toDomain()
	}
	for _, m := range t.Members {
		team.Members = append(team.Members, m.toDomain())
	}
	return team
}

// Sanitize strips everything outside the user-generated-content allow list.
func (c *Client) Sanitize(raw string) domain.SafeHTML {
	return domain.SafeHTML(c.sanitizer.Sanitize(raw))
}
