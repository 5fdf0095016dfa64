package services_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"futsim-api/packages/core/forms"
	"futsim-api/packages/core/models"
	"futsim-api/packages/core/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestTeamCRUD(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	c := f.championship(t, "Brasileirão", models.FormatRoundRobin)

	team := f.team(t, c.ID, "Palmeiras", 12, 2, 5, 30, 15)
	assert.NotZero(t, team.ID)
	assert.Equal(t, 38, team.Points())

	got, err := f.championships.GetChampionshipByID(context.Background(), c.ID)
	require.Nil(t, err)
	assert.Equal(t, 1, got.NbTeams)

	updated, err := f.teams.Update(ctx, *team, forms.TeamInput{Name: "Palmeiras SP", Wins: 13, Draws: 2, Losses: 5, GoalsFor: 31, GoalsAgainst: 15})
	require.Nil(t, err)
	assert.Equal(t, team.ID, updated.ID)
	assert.Equal(t, c.ID, updated.ChampionshipID)
	assert.Equal(t, "Palmeiras SP", updated.Name)
	assert.Equal(t, 41, updated.Points())

	require.Nil(t, f.teams.Delete(ctx, *updated))
	_, err = f.teams.GetTeamByID(ctx, c.ID, team.ID)
	assert.ErrorIs(t, err, services.ErrTeamNotFound)

	got, _ = f.championships.GetChampionshipByID(context.Background(), c.ID)
	assert.Equal(t, 0, got.NbTeams)

	assert.ErrorIs(t, f.teams.Delete(ctx, *updated), services.ErrTeamNotFound)
}

func TestTeamUpdateCanZeroCounters(t *testing.T) {
	f := newFixture(t)
	c := f.championship(t, "Liga", models.FormatRoundRobin)
	team := f.team(t, c.ID, "Remo", 3, 3, 3, 9, 9)

	updated, err := f.teams.Update(context.Background(), *team, forms.TeamInput{Name: "Remo"})
	require.Nil(t, err)
	assert.Equal(t, 0, updated.Wins)
	assert.Equal(t, 0, updated.GoalsFor)
}

func TestTeamCreateUnknownChampionship(t *testing.T) {
	f := newFixture(t)
	_, err := f.teams.Create(context.Background(), 42, forms.TeamInput{Name: "X"})
	assert.ErrorIs(t, err, services.ErrChampionshipNotFound)
}

func TestTeamUpdateWrongChampionship(t *testing.T) {
	f := newFixture(t)
	a := f.championship(t, "A", models.FormatRoundRobin)
	b := f.championship(t, "B", models.FormatRoundRobin)
	team := f.team(t, a.ID, "Paysandu", 0, 0, 0, 0, 0)

	moved := *team
	moved.ChampionshipID = b.ID
	_, err := f.teams.Update(context.Background(), moved, forms.TeamInput{Name: "Paysandu"})
	assert.ErrorIs(t, err, services.ErrTeamNotFound)
}

func TestListByChampionshipStoreOrder(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	a := f.championship(t, "A", models.FormatRoundRobin)
	b := f.championship(t, "B", models.FormatRoundRobin)

	f.team(t, a.ID, "Z", 0, 0, 0, 0, 0)
	f.team(t, b.ID, "Other", 0, 0, 0, 0, 0)
	f.team(t, a.ID, "M", 5, 0, 0, 0, 0)

	teams, err := f.teams.ListByChampionship(ctx, a.ID)
	require.Nil(t, err)
	require.Len(t, teams, 2)
	assert.Equal(t, "Z", teams[0].Name)
	assert.Equal(t, "M", teams[1].Name)

	empty := f.championship(t, "Empty", models.FormatGroupStage)
	teams, err = f.teams.ListByChampionship(ctx, empty.ID)
	require.Nil(t, err)
	assert.NotNil(t, teams)
	assert.Len(t, teams, 0)
}

// Duplicate names are allowed; lookups by name resolve to the earliest
// record, so the second namesake cannot be reached by name.
func TestFindByNameReturnsFirstNamesake(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	c := f.championship(t, "Liga", models.FormatRoundRobin)

	first := f.team(t, c.ID, "Atlético", 1, 0, 0, 1, 0)
	second := f.team(t, c.ID, "Atlético", 5, 0, 0, 9, 0)

	got, err := f.teams.FindByName(ctx, c.ID, "Atlético")
	require.Nil(t, err)
	assert.Equal(t, first.ID, got.ID)

	// The higher ranked namesake is the second one, yet deleting by name
	// removes the first.
	require.Nil(t, f.teams.Delete(ctx, *got))
	got, err = f.teams.FindByName(ctx, c.ID, "Atlético")
	require.Nil(t, err)
	assert.Equal(t, second.ID, got.ID)

	_, err = f.teams.FindByName(ctx, c.ID, "atlético")
	assert.ErrorIs(t, err, services.ErrTeamNotFound)
}

func TestTeamWritesPublishRevisions(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	c := f.championship(t, "Liga", models.FormatRoundRobin)

	sub := f.teams.Subscribe(c.ID)
	defer sub.Close()

	team := f.team(t, c.ID, "Avaí", 0, 0, 0, 0, 0)
	snap := <-sub.C()
	assert.Equal(t, uint64(1), snap.Revision)
	assert.Len(t, snap.Teams, 1)

	_, err := f.teams.Update(ctx, *team, forms.TeamInput{Name: "Avaí FC", Wins: 1})
	require.Nil(t, err)
	snap = <-sub.C()
	assert.Equal(t, uint64(2), snap.Revision)
	assert.Equal(t, "Avaí FC", snap.Teams[0].Name)

	require.Nil(t, f.teams.Delete(ctx, *team))
	snap = <-sub.C()
	assert.Equal(t, uint64(3), snap.Revision)
	assert.Empty(t, snap.Teams)

	current, err := f.teams.Snapshot(ctx, c.ID)
	require.Nil(t, err)
	assert.Equal(t, uint64(3), current.Revision)
}

func TestFailedWriteDoesNotPublish(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	c := f.championship(t, "Liga", models.FormatRoundRobin)

	err := f.teams.Delete(ctx, models.Team{ID: 99, ChampionshipID: c.ID})
	assert.ErrorIs(t, err, services.ErrTeamNotFound)
	assert.Equal(t, uint64(0), f.hub.Revision(c.ID))
}

func TestListCancelledContext(t *testing.T) {
	f := newFixture(t)
	c := f.championship(t, "Liga", models.FormatRoundRobin)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := f.teams.ListByChampionship(ctx, c.ID)
	assert.Error(t, err)
}

type holdReloadKey struct{}

// A writer whose reload is slow must not publish its older list after a
// faster writer has published a newer one.
func TestConcurrentWritersPublishNewestList(t *testing.T) {
	f := newFixture(t)
	c := f.championship(t, "Liga", models.FormatRoundRobin)

	reached := make(chan struct{})
	release := make(chan struct{})
	var once sync.Once
	err := f.db.Callback().Query().After("gorm:query").Register("test:hold_reload", func(tx *gorm.DB) {
		if tx.Statement.Context.Value(holdReloadKey{}) == nil {
			return
		}
		if _, ok := tx.Statement.Dest.(*[]models.Team); !ok {
			return
		}
		once.Do(func() {
			close(reached)
			<-release
		})
	})
	require.Nil(t, err)

	slow := context.WithValue(context.Background(), holdReloadKey{}, true)
	slowDone := make(chan error, 1)
	go func() {
		_, err := f.teams.Create(slow, c.ID, forms.TeamInput{Name: "Ceará"})
		slowDone <- err
	}()
	<-reached

	fastDone := make(chan error, 1)
	go func() {
		_, err := f.teams.Create(context.Background(), c.ID, forms.TeamInput{Name: "Sport"})
		fastDone <- err
	}()

	// Let the second write commit and try to publish while the first
	// reload is still holding its stale list.
	require.Eventually(t, func() bool {
		var n int64
		f.db.Model(&models.Team{}).Where("championship_id = ?", c.ID).Count(&n)
		return n == 2
	}, 2*time.Second, 10*time.Millisecond)
	time.Sleep(50 * time.Millisecond)

	close(release)
	require.Nil(t, <-slowDone)
	require.Nil(t, <-fastDone)

	sub := f.teams.Subscribe(c.ID)
	defer sub.Close()
	latest := <-sub.C()
	assert.Equal(t, uint64(2), latest.Revision)
	assert.Len(t, latest.Teams, 2)

	snap, err := f.teams.Snapshot(context.Background(), c.ID)
	require.Nil(t, err)
	assert.Equal(t, uint64(2), snap.Revision)
	assert.Len(t, snap.Teams, 2)
}
