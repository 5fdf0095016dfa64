package services_test

import (
	"context"
	"testing"

	"futsim-api/packages/core/events"
	"futsim-api/packages/core/forms"
	"futsim-api/packages/core/models"
	"futsim-api/packages/core/services"
	"futsim-api/packages/core/testdb"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fixture struct {
	db            *gorm.DB
	hub           *events.Hub
	championships *services.ChampionshipService
	teams         *services.TeamService
	standings     *services.StandingsService
	matches       *services.MatchService
	knockout      *services.KnockoutService
}

func newFixture(t *testing.T) *fixture {
	db := testdb.New(t)
	hub := events.NewHub()
	championships := services.NewChampionshipService(db, hub)
	teams := services.NewTeamService(db, hub)
	return &fixture{
		db:            db,
		hub:           hub,
		championships: championships,
		teams:         teams,
		standings:     services.NewStandingsService(championships, teams),
		matches:       services.NewMatchService(db),
		knockout:      services.NewKnockoutService(db),
	}
}

func (f *fixture) championship(t *testing.T, name, format string) *models.Championship {
	c, err := f.championships.CreateChampionship(context.Background(), models.CreateChampionshipRequest{Name: name, Format: format})
	require.Nil(t, err)
	return c
}

func (f *fixture) team(t *testing.T, championshipID uint, name string, w, d, l, gf, ga int) *models.Team {
	team, err := f.teams.Create(context.Background(), championshipID, forms.TeamInput{
		Name: name, Wins: w, Draws: d, Losses: l, GoalsFor: gf, GoalsAgainst: ga,
	})
	require.Nil(t, err)
	return team
}
