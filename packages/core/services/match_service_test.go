package services_test

import (
	"context"
	"testing"

	"futsim-api/packages/core/models"
	"futsim-api/packages/core/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func TestMatchLifecycle(t *testing.T) {
	f := newFixture(t)
	c := f.championship(t, "Liga", models.FormatRoundRobin)
	home := f.team(t, c.ID, "Ceará", 0, 0, 0, 0, 0)
	away := f.team(t, c.ID, "Fortaleza", 0, 0, 0, 0, 0)

	match, err := f.matches.CreateMatch(context.Background(), c.ID, models.CreateMatchRequest{Round: 2, HomeTeamID: home.ID, AwayTeamID: away.ID})
	require.Nil(t, err)
	assert.False(t, match.Played())
	assert.Nil(t, match.PlayedAt)
	assert.Equal(t, "Ceará", match.HomeTeam.Name)

	match, err = f.matches.UpdateMatchScore(context.Background(), match.ID, models.UpdateMatchScoreRequest{HomeGoals: intPtr(2), AwayGoals: intPtr(2)})
	require.Nil(t, err)
	assert.True(t, match.Played())
	assert.Equal(t, 2, *match.HomeGoals)

	// scores do not touch the team counters
	team, err := f.teams.GetTeamByID(t.Context(), c.ID, home.ID)
	require.Nil(t, err)
	assert.Equal(t, 0, team.Draws)

	list, err := f.matches.GetMatchesByChampionship(context.Background(), c.ID)
	require.Nil(t, err)
	assert.Len(t, list, 1)

	require.Nil(t, f.matches.DeleteMatch(context.Background(), match.ID))
	_, err = f.matches.GetMatchByID(context.Background(), match.ID)
	assert.ErrorIs(t, err, services.ErrMatchNotFound)
	assert.ErrorIs(t, f.matches.DeleteMatch(context.Background(), match.ID), services.ErrMatchNotFound)
}

func TestCreateMatchValidation(t *testing.T) {
	f := newFixture(t)
	c := f.championship(t, "Liga", models.FormatRoundRobin)
	other := f.championship(t, "Outra", models.FormatRoundRobin)
	a := f.team(t, c.ID, "A", 0, 0, 0, 0, 0)
	b := f.team(t, other.ID, "B", 0, 0, 0, 0, 0)

	_, err := f.matches.CreateMatch(context.Background(), c.ID, models.CreateMatchRequest{HomeTeamID: a.ID, AwayTeamID: a.ID})
	assert.ErrorIs(t, err, services.ErrInvalidMatch)

	_, err = f.matches.CreateMatch(context.Background(), c.ID, models.CreateMatchRequest{HomeTeamID: a.ID, AwayTeamID: b.ID})
	assert.ErrorIs(t, err, services.ErrTeamNotFound)

	_, err = f.matches.CreateMatch(context.Background(), 999, models.CreateMatchRequest{HomeTeamID: a.ID, AwayTeamID: b.ID})
	assert.ErrorIs(t, err, services.ErrChampionshipNotFound)

	c2 := f.team(t, c.ID, "C", 0, 0, 0, 0, 0)
	_, err = f.matches.CreateMatch(context.Background(), c.ID, models.CreateMatchRequest{HomeTeamID: a.ID, AwayTeamID: c2.ID, HomeGoals: intPtr(1)})
	assert.ErrorIs(t, err, services.ErrInvalidMatch)

	played, err := f.matches.CreateMatch(context.Background(), c.ID, models.CreateMatchRequest{HomeTeamID: a.ID, AwayTeamID: c2.ID, HomeGoals: intPtr(1), AwayGoals: intPtr(0)})
	require.Nil(t, err)
	assert.NotNil(t, played.PlayedAt)
	assert.Equal(t, 1, played.Round)
}

func TestDeletingTeamRemovesItsMatches(t *testing.T) {
	f := newFixture(t)
	c := f.championship(t, "Liga", models.FormatRoundRobin)
	a := f.team(t, c.ID, "A", 0, 0, 0, 0, 0)
	b := f.team(t, c.ID, "B", 0, 0, 0, 0, 0)
	x := f.team(t, c.ID, "X", 0, 0, 0, 0, 0)

	_, err := f.matches.CreateMatch(context.Background(), c.ID, models.CreateMatchRequest{HomeTeamID: a.ID, AwayTeamID: b.ID})
	require.Nil(t, err)
	kept, err := f.matches.CreateMatch(context.Background(), c.ID, models.CreateMatchRequest{HomeTeamID: b.ID, AwayTeamID: x.ID})
	require.Nil(t, err)

	require.Nil(t, f.teams.Delete(t.Context(), *a))

	list, err := f.matches.GetMatchesByChampionship(context.Background(), c.ID)
	require.Nil(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, kept.ID, list[0].ID)
}
