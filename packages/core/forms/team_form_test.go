package forms_test

import (
	"testing"

	"futsim-api/packages/core/forms"
	"futsim-api/packages/core/models"

	"github.com/stretchr/testify/assert"
)

func validForm() forms.TeamForm {
	return forms.TeamForm{
		Name:         "Time A",
		Wins:         "3",
		Draws:        "1",
		Losses:       "2",
		GoalsFor:     "5",
		GoalsAgainst: "4",
	}
}

func TestParseValid(t *testing.T) {
	in, err := validForm().Parse()
	assert.Nil(t, err)

	var team models.Team
	in.Apply(&team)

	assert.Equal(t, "Time A", team.Name)
	assert.Equal(t, 10, team.Points())
	assert.Equal(t, 6, team.GamesPlayed())
	assert.Equal(t, 1, team.GoalDifference())
}

func TestParseRejects(t *testing.T) {
	cases := map[string]func(f *forms.TeamForm){
		"empty name":        func(f *forms.TeamForm) { f.Name = "" },
		"blank name":        func(f *forms.TeamForm) { f.Name = "   \t" },
		"non numeric wins":  func(f *forms.TeamForm) { f.Wins = "abc" },
		"empty draws":       func(f *forms.TeamForm) { f.Draws = "" },
		"decimal losses":    func(f *forms.TeamForm) { f.Losses = "1.5" },
		"padded goals":      func(f *forms.TeamForm) { f.GoalsFor = " 5" },
		"goals against":     func(f *forms.TeamForm) { f.GoalsAgainst = "x" },
		"wins above int32":  func(f *forms.TeamForm) { f.Wins = "2147483648" },
		"draws below int32": func(f *forms.TeamForm) { f.Draws = "-2147483649" },
		"huge goals":        func(f *forms.TeamForm) { f.GoalsFor = "9223372036854775807" },
	}

	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			f := validForm()
			mutate(&f)
			_, err := f.Parse()
			assert.ErrorIs(t, err, forms.ErrInvalidTeamForm)
		})
	}
}

func TestParseAcceptsNegativeNumbers(t *testing.T) {
	f := validForm()
	f.Wins = "-2"
	in, err := f.Parse()
	assert.Nil(t, err)
	assert.Equal(t, -2, in.Wins)
}

func TestParseInt32Bounds(t *testing.T) {
	f := validForm()
	f.Wins = "2147483647"
	f.Draws = "-2147483648"
	in, err := f.Parse()
	assert.Nil(t, err)
	assert.Equal(t, 2147483647, in.Wins)
	assert.Equal(t, -2147483648, in.Draws)
}

func TestFromTeamRoundTrip(t *testing.T) {
	team := models.Team{ID: 9, ChampionshipID: 2, Name: "Bahia", Wins: 4, Draws: 2, Losses: 1, GoalsFor: 11, GoalsAgainst: 6}
	in, err := forms.FromTeam(team).Parse()
	assert.Nil(t, err)

	copyTeam := models.Team{ID: 9, ChampionshipID: 2}
	in.Apply(&copyTeam)
	assert.Equal(t, team, copyTeam)
}
