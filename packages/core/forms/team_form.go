// Package forms validates the add/edit team form and keeps the state a
// table screen holds between submissions.
package forms

import (
	"errors"
	"strconv"
	"strings"

	"futsim-api/packages/core/models"
)

var (
	ErrInvalidTeamForm = errors.New("fill in every field correctly")
	ErrNothingSelected = errors.New("no team selected")
)

// TeamForm is the raw text of the six form fields.
type TeamForm struct {
	Name         string
	Wins         string
	Draws        string
	Losses       string
	GoalsFor     string
	GoalsAgainst string
}

func FromRequest(req models.TeamFormRequest) TeamForm {
	return TeamForm{
		Name:         req.Name,
		Wins:         req.Wins,
		Draws:        req.Draws,
		Losses:       req.Losses,
		GoalsFor:     req.GoalsFor,
		GoalsAgainst: req.GoalsAgainst,
	}
}

// FromTeam fills the form with the current values of t, as the edit dialog does.
func FromTeam(t models.Team) TeamForm {
	return TeamForm{
		Name:         t.Name,
		Wins:         strconv.Itoa(t.Wins),
		Draws:        strconv.Itoa(t.Draws),
		Losses:       strconv.Itoa(t.Losses),
		GoalsFor:     strconv.Itoa(t.GoalsFor),
		GoalsAgainst: strconv.Itoa(t.GoalsAgainst),
	}
}

// TeamInput is a parsed form.
type TeamInput struct {
	Name         string
	Wins         int
	Draws        int
	Losses       int
	GoalsFor     int
	GoalsAgainst int
}

// Parse validates the form. The name must not be blank and every counter
// must parse as a 32-bit integer. Ranges are not checked otherwise:
// negative values pass.
func (f TeamForm) Parse() (TeamInput, error) {
	if strings.TrimSpace(f.Name) == "" {
		return TeamInput{}, ErrInvalidTeamForm
	}

	var in TeamInput
	in.Name = f.Name

	fields := []struct {
		raw string
		dst *int
	}{
		{f.Wins, &in.Wins},
		{f.Draws, &in.Draws},
		{f.Losses, &in.Losses},
		{f.GoalsFor, &in.GoalsFor},
		{f.GoalsAgainst, &in.GoalsAgainst},
	}
	for _, field := range fields {
		n, err := strconv.ParseInt(field.raw, 10, 32)
		if err != nil {
			return TeamInput{}, ErrInvalidTeamForm
		}
		*field.dst = int(n)
	}

	return in, nil
}

// Apply overwrites the editable fields of t, leaving its identity alone.
func (in TeamInput) Apply(t *models.Team) {
	t.Name = in.Name
	t.Wins = in.Wins
	t.Draws = in.Draws
	t.Losses = in.Losses
	t.GoalsFor = in.GoalsFor
	t.GoalsAgainst = in.GoalsAgainst
}
