package components

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	g "maragu.dev/gomponents"

	"github.com/coli-team/coli-web/internal/domain"
)

var testAssets = NewAssets("http://cdn.test/")

func render(t *testing.T, n g.Node) string {
	t.Helper()
	var sb strings.Builder
	require.NoError(t, n.Render(&sb))
	return sb.String()
}

func member(i int, withProfile bool) domain.User {
	u := domain.User{ID: fmt.Sprintf("u%d", i), Name: fmt.Sprintf("Member %d", i)}
	if withProfile {
		u.Profile = fmt.Sprintf("u%d.png", i)
	}
	return u
}

func TestAssets(t *testing.T) {
	assert.Equal(t, "http://cdn.test/uploads/users/profiles/u1.png", testAssets.UserProfileURL("u1.png"))
	assert.Equal(t, "http://cdn.test/uploads/teams/profiles/t%201.png", testAssets.TeamProfileURL("t 1.png"))
	assert.Empty(t, testAssets.UserProfileURL(""))
	assert.Empty(t, testAssets.TeamProfileURL("  "))
}

func TestTaskMember(t *testing.T) {
	t.Run("with profile renders the image", func(t *testing.T) {
		out := render(t, TaskMember(testAssets, member(1, true)))
		assert.Contains(t, out, `src="http://cdn.test/uploads/users/profiles/u1.png"`)
		assert.Contains(t, out, "Member 1")
		assert.NotContains(t, out, "animate-pulse")
	})

	t.Run("without profile renders the placeholder", func(t *testing.T) {
		out := render(t, TaskMember(testAssets, member(2, false)))
		assert.NotContains(t, out, "<img")
		assert.Contains(t, out, "animate-pulse")
		assert.Contains(t, out, "Member 2")
	})

	t.Run("name is escaped", func(t *testing.T) {
		out := render(t, TaskMember(testAssets, domain.User{Name: "<b>Eve</b>"}))
		assert.Contains(t, out, "&lt;b&gt;Eve&lt;/b&gt;")
	})
}

func TestTeamBox(t *testing.T) {
	t.Run("full team", func(t *testing.T) {
		team := domain.Team{
			ID:          "t1",
			Name:        "Core",
			Profile:     "t1.png",
			Description: "<p>Ship <em>it</em></p>",
			Creator:     member(0, true),
		}
		for i := 1; i <= 7; i++ {
			team.Members = append(team.Members, member(i, true))
		}

		out := render(t, TeamBox(testAssets, team))
		assert.Contains(t, out, `href="/t1"`)
		assert.Contains(t, out, `src="http://cdn.test/uploads/teams/profiles/t1.png"`)
		assert.Contains(t, out, "Core")
		assert.Contains(t, out, "<p>Ship <em>it</em></p>", "sanitized description is trusted markup")
		assert.NotContains(t, out, DescriptionPlaceholder)

		// Creator plus at most four members.
		assert.Equal(t, 1+MaxMemberAvatars, strings.Count(out, "/uploads/users/profiles/"))
		assert.Contains(t, out, "u4.png")
		assert.NotContains(t, out, "u5.png")
	})

	t.Run("missing optional fields fall back", func(t *testing.T) {
		team := domain.Team{ID: "t2", Name: "Bare"}
		for i := 1; i <= 9; i++ {
			team.Members = append(team.Members, member(i, false))
		}

		out := render(t, TeamBox(testAssets, team))
		assert.Contains(t, out, DescriptionPlaceholder)
		assert.NotContains(t, out, "<img")
		// Team image, creator and four members are all placeholders.
		assert.Equal(t, 2+MaxMemberAvatars, strings.Count(out, `data-placeholder="avatar"`))
	})

	t.Run("fewer than four members renders them all", func(t *testing.T) {
		team := domain.Team{ID: "t3", Members: []domain.User{member(1, true), member(2, true)}}
		out := render(t, TeamBox(testAssets, team))
		assert.Equal(t, 2, strings.Count(out, "/uploads/users/profiles/"))
	})
}

func TestTeamGrid(t *testing.T) {
	assert.Contains(t, render(t, TeamGrid(testAssets, nil)), "not part of any team")

	out := render(t, TeamGrid(testAssets, []domain.Team{{ID: "a"}, {ID: "b"}}))
	assert.Equal(t, 2, strings.Count(out, "data-team-id="))
}
