package services_test

import (
	"context"
	"testing"
	"time"

	"futsim-api/packages/core/models"
	"futsim-api/packages/core/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateChampionshipUniqueSlug(t *testing.T) {
	f := newFixture(t)

	a := f.championship(t, "Copa do Bairro 2025", models.FormatGroupStage)
	b := f.championship(t, "Copa do Bairro 2025", models.FormatRoundRobin)

	assert.Equal(t, "copa-do-bairro-2025", a.Slug)
	assert.Equal(t, "copa-do-bairro-2025-1", b.Slug)

	got, err := f.championships.GetChampionshipBySlug(context.Background(), b.Slug)
	require.Nil(t, err)
	assert.Equal(t, b.ID, got.ID)
}

func TestCreateChampionshipRequiresName(t *testing.T) {
	f := newFixture(t)
	_, err := f.championships.CreateChampionship(context.Background(), models.CreateChampionshipRequest{Name: "  ", Format: models.FormatKnockout})
	assert.Error(t, err)
}

func TestGetAllChampionshipsFiltersByFormat(t *testing.T) {
	f := newFixture(t)
	f.championship(t, "Liga A", models.FormatRoundRobin)
	f.championship(t, "Liga B", models.FormatRoundRobin)
	f.championship(t, "Copa", models.FormatKnockout)

	all, err := f.championships.GetAllChampionships(context.Background(), 1, 2, nil)
	require.Nil(t, err)
	assert.Equal(t, int64(3), all.Total)
	assert.Equal(t, 2, all.TotalPages)
	assert.Len(t, all.Data, 2)

	format := models.FormatRoundRobin
	leagues, err := f.championships.GetAllChampionships(context.Background(), 1, 10, &format)
	require.Nil(t, err)
	assert.Equal(t, int64(2), leagues.Total)
}

func TestUpdateChampionship(t *testing.T) {
	f := newFixture(t)
	c := f.championship(t, "Liga", models.FormatRoundRobin)

	name := "Liga Municipal"
	desc := "Série A"
	updated, err := f.championships.UpdateChampionship(context.Background(), c.ID, models.UpdateChampionshipRequest{Name: &name, Description: &desc})
	require.Nil(t, err)
	assert.Equal(t, "Liga Municipal", updated.Name)
	assert.Equal(t, "Série A", updated.Description)
	assert.Equal(t, c.Slug, updated.Slug)

	_, err = f.championships.UpdateChampionship(context.Background(), 999, models.UpdateChampionshipRequest{Name: &name})
	assert.ErrorIs(t, err, services.ErrChampionshipNotFound)
}

func TestDeleteChampionshipCascades(t *testing.T) {
	f := newFixture(t)
	c := f.championship(t, "Liga", models.FormatRoundRobin)
	a := f.team(t, c.ID, "A", 1, 0, 0, 1, 0)
	b := f.team(t, c.ID, "B", 0, 0, 1, 0, 1)
	_, err := f.matches.CreateMatch(context.Background(), c.ID, models.CreateMatchRequest{HomeTeamID: a.ID, AwayTeamID: b.ID})
	require.Nil(t, err)

	sub := f.hub.Subscribe(c.ID)

	require.Nil(t, f.championships.DeleteChampionship(context.Background(), c.ID))

	_, err = f.championships.GetChampionshipByID(context.Background(), c.ID)
	assert.ErrorIs(t, err, services.ErrChampionshipNotFound)

	var teams int64
	f.db.Model(&models.Team{}).Where("championship_id = ?", c.ID).Count(&teams)
	assert.Equal(t, int64(0), teams)

	_, err = f.teams.ListByChampionship(context.Background(), c.ID)
	assert.ErrorIs(t, err, services.ErrChampionshipNotFound)

	// subscription was closed; drain the replayed snapshot first
	for range sub.C() {
	}

	assert.ErrorIs(t, f.championships.DeleteChampionship(context.Background(), c.ID), services.ErrChampionshipNotFound)
}

func TestCreateChampionshipSlugFoldsAccents(t *testing.T) {
	f := newFixture(t)

	c := f.championship(t, "Copa São Paulo de Futebol Júnior", models.FormatKnockout)
	assert.Equal(t, "copa-sao-paulo-de-futebol-junior", c.Slug)

	c = f.championship(t, "!!!", models.FormatKnockout)
	assert.Equal(t, "championship", c.Slug)
}

func TestCreateChampionshipClosedStore(t *testing.T) {
	f := newFixture(t)
	sqlDB, err := f.db.DB()
	require.Nil(t, err)
	require.Nil(t, sqlDB.Close())

	done := make(chan error, 1)
	go func() {
		_, err := f.championships.CreateChampionship(context.Background(), models.CreateChampionshipRequest{Name: "Liga", Format: models.FormatRoundRobin})
		done <- err
	}()

	select {
	case err := <-done:
		assert.Error(t, err)
		assert.NotErrorIs(t, err, services.ErrChampionshipName)
	case <-time.After(2 * time.Second):
		t.Fatal("CreateChampionship did not return with a closed store")
	}
}

func TestChampionshipCancelledContext(t *testing.T) {
	f := newFixture(t)
	c := f.championship(t, "Liga", models.FormatRoundRobin)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := f.championships.GetChampionshipByID(ctx, c.ID)
	assert.ErrorIs(t, err, context.Canceled)
}
