package standings_test

import (
	"math/rand"
	"testing"

	"futsim-api/packages/core/models"
	"futsim-api/packages/core/standings"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func names(rows []standings.Row) []string {
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = r.Name
	}
	return out
}

func TestRankEmpty(t *testing.T) {
	for _, p := range []standings.Policy{standings.GroupStage, standings.RoundRobin} {
		rows := standings.Rank(nil, p)
		assert.NotNil(t, rows)
		assert.Len(t, rows, 0)
	}
}

func TestRankRoundRobinPoints(t *testing.T) {
	teams := []models.Team{
		{ID: 2, Name: "Flamengo", Wins: 11, Draws: 3, Losses: 5, GoalsFor: 28, GoalsAgainst: 18},
		{ID: 1, Name: "Palmeiras", Wins: 12, Draws: 2, Losses: 5, GoalsFor: 30, GoalsAgainst: 15},
	}

	rows := standings.Rank(teams, standings.RoundRobin)
	require.Len(t, rows, 2)

	assert.Equal(t, "Palmeiras", rows[0].Name)
	assert.Equal(t, 1, rows[0].Position)
	assert.Equal(t, 38, rows[0].Points)
	assert.Equal(t, 19, rows[0].GamesPlayed)
	assert.Equal(t, 15, rows[0].GoalDifference)

	assert.Equal(t, "Flamengo", rows[1].Name)
	assert.Equal(t, 2, rows[1].Position)
	assert.Equal(t, 36, rows[1].Points)
}

func TestRankGroupStageGoalsForTieBreak(t *testing.T) {
	teams := []models.Team{
		{Name: "Time A", Wins: 1, Draws: 1, GoalsFor: 3, GoalsAgainst: 2},
		{Name: "Time B", Wins: 1, Draws: 1, GoalsFor: 5, GoalsAgainst: 4},
	}

	rows := standings.Rank(teams, standings.GroupStage)
	assert.Equal(t, []string{"Time B", "Time A"}, names(rows))
}

func TestRankWinsKeyOnlyInRoundRobin(t *testing.T) {
	// Same points (6): A has 2 wins and GD 0, B has 1 win, 3 draws and GD +3.
	teams := []models.Team{
		{Name: "A", Wins: 2, Losses: 2, GoalsFor: 4, GoalsAgainst: 4},
		{Name: "B", Wins: 1, Draws: 3, GoalsFor: 5, GoalsAgainst: 2},
	}

	assert.Equal(t, []string{"A", "B"}, names(standings.Rank(teams, standings.RoundRobin)))
	assert.Equal(t, []string{"B", "A"}, names(standings.Rank(teams, standings.GroupStage)))
}

func TestRankKeepsInputOrderOnFullTie(t *testing.T) {
	teams := []models.Team{
		{Name: "Primeiro", Wins: 1, GoalsFor: 2},
		{Name: "Segundo", Wins: 1, GoalsFor: 2},
		{Name: "Terceiro", Wins: 1, GoalsFor: 2},
	}

	rows := standings.Rank(teams, standings.GroupStage)
	assert.Equal(t, []string{"Primeiro", "Segundo", "Terceiro"}, names(rows))
}

func TestRankPositionsArePermutation(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	for n := 0; n < 40; n++ {
		teams := make([]models.Team, n)
		for i := range teams {
			teams[i] = models.Team{
				ID:           uint(i + 1),
				Name:         string(rune('A' + i%26)),
				Wins:         r.Intn(5),
				Draws:        r.Intn(5),
				Losses:       r.Intn(5),
				GoalsFor:     r.Intn(10),
				GoalsAgainst: r.Intn(10),
			}
		}

		for _, p := range []standings.Policy{standings.GroupStage, standings.RoundRobin} {
			rows := standings.Rank(teams, p)
			require.Len(t, rows, n)

			seenPos := make(map[int]bool, n)
			seenID := make(map[uint]bool, n)
			for i, row := range rows {
				assert.Equal(t, i+1, row.Position)
				seenPos[row.Position] = true
				seenID[row.TeamID] = true
			}
			assert.Len(t, seenPos, n)
			assert.Len(t, seenID, n)
		}
	}
}

func TestRankIsDeterministic(t *testing.T) {
	teams := []models.Team{
		{ID: 1, Name: "Santos", Wins: 3, Draws: 1, GoalsFor: 7, GoalsAgainst: 3},
		{ID: 2, Name: "Grêmio", Wins: 3, Draws: 1, GoalsFor: 7, GoalsAgainst: 3},
		{ID: 3, Name: "Bahia", Wins: 4, Losses: 1, GoalsFor: 6, GoalsAgainst: 5},
		{ID: 4, Name: "Vasco", Draws: 2, Losses: 3, GoalsFor: 2, GoalsAgainst: 9},
	}

	first := standings.Rank(teams, standings.RoundRobin)

	// Feed the ranked order back in, as a screen would after a refresh.
	reordered := make([]models.Team, len(first))
	byID := map[uint]models.Team{}
	for _, tm := range teams {
		byID[tm.ID] = tm
	}
	for i, row := range first {
		reordered[i] = byID[row.TeamID]
	}

	second := standings.Rank(reordered, standings.RoundRobin)
	assert.Equal(t, first, second)
}

func TestRankDoesNotMutateInput(t *testing.T) {
	teams := []models.Team{
		{Name: "Ceará", Wins: 0},
		{Name: "Fortaleza", Wins: 2},
	}
	standings.Rank(teams, standings.GroupStage)
	assert.Equal(t, "Ceará", teams[0].Name)
}

func TestRankAcceptsNegativeCounters(t *testing.T) {
	teams := []models.Team{
		{Name: "Neg", Wins: -1},
		{Name: "Zero"},
	}
	rows := standings.Rank(teams, standings.GroupStage)
	assert.Equal(t, []string{"Zero", "Neg"}, names(rows))
	assert.Equal(t, -3, rows[1].Points)
}

func TestParsePolicy(t *testing.T) {
	p, err := standings.ParsePolicy("group_stage")
	assert.Nil(t, err)
	assert.Equal(t, standings.GroupStage, p)

	p, err = standings.ParsePolicy("round_robin")
	assert.Nil(t, err)
	assert.Equal(t, standings.RoundRobin, p)

	_, err = standings.ParsePolicy("knockout")
	assert.ErrorIs(t, err, standings.ErrUnknownPolicy)
}

func TestPolicyForFormat(t *testing.T) {
	_, ok := standings.PolicyForFormat(models.FormatKnockout)
	assert.False(t, ok)

	p, ok := standings.PolicyForFormat(models.FormatGroupStage)
	assert.True(t, ok)
	assert.Equal(t, "group_stage", p.String())
}
