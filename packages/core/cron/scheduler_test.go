package cron_test

import (
	"testing"
	"time"

	"futsim-api/packages/core/cron"
	"futsim-api/packages/core/models"
	"futsim-api/packages/core/services"
	"futsim-api/packages/core/testdb"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStartRejectsBadSchedule(t *testing.T) {
	db := testdb.New(t)
	s := cron.NewScheduler(services.NewPurgeService(db, time.Hour), "every full moon")
	assert.Error(t, s.Start())
}

func TestStartAndStop(t *testing.T) {
	db := testdb.New(t)
	s := cron.NewScheduler(services.NewPurgeService(db, time.Hour), "")
	require.Nil(t, s.Start())
	s.Stop()
}

func TestRunNowPurgesExpiredRows(t *testing.T) {
	db := testdb.New(t)
	c := models.Championship{Name: "Antigo", Slug: "antigo", Format: models.FormatRoundRobin}
	require.Nil(t, db.Create(&c).Error)
	require.Nil(t, db.Delete(&c).Error)
	require.Nil(t, db.Unscoped().Model(&models.Championship{}).Where("id = ?", c.ID).
		Update("deleted_at", time.Now().Add(-48*time.Hour)).Error)

	s := cron.NewScheduler(services.NewPurgeService(db, 24*time.Hour), "")
	s.RunNow()

	var count int64
	db.Unscoped().Model(&models.Championship{}).Count(&count)
	assert.Equal(t, int64(0), count)
}
