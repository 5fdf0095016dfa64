// Package standings orders the teams of a championship into a table.
package standings

import (
	"errors"
	"fmt"
	"sort"

	"futsim-api/packages/core/models"
)

// Policy selects the tie-break keys used after points.
type Policy int

const (
	// GroupStage orders by points, goal difference, goals scored.
	GroupStage Policy = iota + 1
	// RoundRobin orders by points, wins, goal difference, goals scored.
	RoundRobin
)

var ErrUnknownPolicy = errors.New("unknown ranking policy")

func (p Policy) String() string {
	switch p {
	case GroupStage:
		return models.FormatGroupStage
	case RoundRobin:
		return models.FormatRoundRobin
	}
	return fmt.Sprintf("policy(%d)", int(p))
}

func ParsePolicy(s string) (Policy, error) {
	switch s {
	case models.FormatGroupStage:
		return GroupStage, nil
	case models.FormatRoundRobin:
		return RoundRobin, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownPolicy, s)
}

// PolicyForFormat returns the table policy used by a championship format.
// Knockout championships have no table.
func PolicyForFormat(format string) (Policy, bool) {
	switch format {
	case models.FormatGroupStage:
		return GroupStage, true
	case models.FormatRoundRobin:
		return RoundRobin, true
	}
	return 0, false
}

// Row is one line of a ranked table.
type Row struct {
	Position       int    `json:"position"`
	TeamID         uint   `json:"team_id"`
	Name           string `json:"name"`
	Points         int    `json:"points"`
	GamesPlayed    int    `json:"games_played"`
	Wins           int    `json:"wins"`
	Draws          int    `json:"draws"`
	Losses         int    `json:"losses"`
	GoalsFor       int    `json:"goals_for"`
	GoalsAgainst   int    `json:"goals_against"`
	GoalDifference int    `json:"goal_difference"`
}

func newRow(t models.Team) Row {
	return Row{
		TeamID:         t.ID,
		Name:           t.Name,
		Points:         t.Points(),
		GamesPlayed:    t.GamesPlayed(),
		Wins:           t.Wins,
		Draws:          t.Draws,
		Losses:         t.Losses,
		GoalsFor:       t.GoalsFor,
		GoalsAgainst:   t.GoalsAgainst,
		GoalDifference: t.GoalDifference(),
	}
}

// keys returns the descending sort keys of a row under p.
func (p Policy) keys(r Row) []int {
	if p == RoundRobin {
		return []int{r.Points, r.Wins, r.GoalDifference, r.GoalsFor}
	}
	return []int{r.Points, r.GoalDifference, r.GoalsFor}
}

// Rank derives a fresh table from teams. Rows that tie on every key keep
// their input order. The input is not modified and an empty input yields an
// empty, non-nil table.
func Rank(teams []models.Team, p Policy) []Row {
	rows := make([]Row, len(teams))
	for i, t := range teams {
		rows[i] = newRow(t)
	}

	sort.SliceStable(rows, func(i, j int) bool {
		a, b := p.keys(rows[i]), p.keys(rows[j])
		for k := range a {
			if a[k] != b[k] {
				return a[k] > b[k]
			}
		}
		return false
	})

	for i := range rows {
		rows[i].Position = i + 1
	}
	return rows
}
