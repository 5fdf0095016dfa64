package migrations_test

import (
	"testing"

	"futsim-api/migrations"
	"futsim-api/packages/core/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func openDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.Nil(t, err)
	sqlDB, err := db.DB()
	require.Nil(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })
	return db
}

func TestMigrateCreatesTables(t *testing.T) {
	db := openDB(t)
	migrator := migrations.NewCoreMigrator(db)

	assert.Len(t, migrator.Pending(), len(migrations.GetAllMigrations()))
	require.Nil(t, migrator.Migrate())

	for _, table := range []interface{}{&models.Championship{}, &models.Team{}, &models.Match{}, &models.KnockoutState{}} {
		assert.True(t, db.Migrator().HasTable(table), "%T", table)
	}
	assert.Empty(t, migrator.Pending())

	applied, err := migrator.Applied()
	require.Nil(t, err)
	assert.Len(t, applied, len(migrations.GetAllMigrations()))
	for _, record := range applied {
		assert.Equal(t, 1, record.Batch)
	}

	// second run is a no-op
	require.Nil(t, migrator.Migrate())
	applied, _ = migrator.Applied()
	assert.Len(t, applied, len(migrations.GetAllMigrations()))
}

func TestRollbackLastBatch(t *testing.T) {
	db := openDB(t)

	first := migrations.NewMigrator(db)
	defs := migrations.GetAllMigrations()
	for _, def := range defs[:2] {
		first.AddMigration(def)
	}
	require.Nil(t, first.Migrate())

	all := migrations.NewCoreMigrator(db)
	require.Nil(t, all.Migrate())
	assert.True(t, db.Migrator().HasTable(&models.Match{}))

	require.Nil(t, all.Rollback(1))
	assert.False(t, db.Migrator().HasTable(&models.Match{}))
	assert.False(t, db.Migrator().HasTable(&models.KnockoutState{}))
	assert.True(t, db.Migrator().HasTable(&models.Team{}))
	assert.Len(t, all.Pending(), 2)

	require.Nil(t, all.Rollback(5))
	assert.False(t, db.Migrator().HasTable(&models.Championship{}))
	assert.Len(t, all.Pending(), len(defs))
}

func TestRollbackUnknownDefinition(t *testing.T) {
	db := openDB(t)
	require.Nil(t, migrations.NewCoreMigrator(db).Migrate())

	empty := migrations.NewMigrator(db)
	assert.Error(t, empty.Rollback(1))
}
