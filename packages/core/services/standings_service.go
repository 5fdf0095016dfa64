package services

import (
	"context"

	"futsim-api/packages/core/models"
	"futsim-api/packages/core/standings"
)

const noTeamsPlaceholder = "No teams registered yet"

// Table is a ranked standings table ready to render.
type Table struct {
	ChampionshipID uint            `json:"championship_id"`
	Championship   string          `json:"championship"`
	Policy         string          `json:"policy"`
	Revision       uint64          `json:"revision"`
	Empty          bool            `json:"empty"`
	Placeholder    string          `json:"placeholder,omitempty"`
	Rows           []standings.Row `json:"rows"`
}

type StandingsService struct {
	championships *ChampionshipService
	teams         *TeamService
}

func NewStandingsService(championships *ChampionshipService, teams *TeamService) *StandingsService {
	return &StandingsService{
		championships: championships,
		teams:         teams,
	}
}

// GetTable ranks the teams of a championship. A nil policy uses the one of
// the championship's format; knockout championships need an explicit one.
func (s *StandingsService) GetTable(ctx context.Context, championshipID uint, policy *standings.Policy) (*Table, error) {
	championship, err := s.championships.GetChampionshipByID(ctx, championshipID)
	if err != nil {
		return nil, err
	}

	p, ok := standings.PolicyForFormat(championship.Format)
	if policy != nil {
		p, ok = *policy, true
	}
	if !ok {
		return nil, ErrNoStandings
	}

	snap, err := s.teams.Snapshot(ctx, championshipID)
	if err != nil {
		return nil, err
	}

	return newTable(championship, p, snap.Revision, snap.Teams), nil
}

func newTable(c *models.Championship, p standings.Policy, revision uint64, teams []models.Team) *Table {
	table := &Table{
		ChampionshipID: c.ID,
		Championship:   c.Name,
		Policy:         p.String(),
		Revision:       revision,
		Rows:           standings.Rank(teams, p),
	}
	if len(table.Rows) == 0 {
		table.Empty = true
		table.Placeholder = noTeamsPlaceholder
	}
	return table
}
