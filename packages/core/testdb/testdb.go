// Package testdb opens a migrated in-memory SQLite database for tests.
package testdb

import (
	"testing"

	"futsim-api/migrations"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// New returns a fresh database with every migration applied. Each call gets
// its own in-memory database.
func New(t testing.TB) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("opening sqlite: %v", err)
	}

	// A second connection would see a different, empty :memory: database.
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("getting sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	if err := migrations.NewCoreMigrator(db).Migrate(); err != nil {
		t.Fatalf("migrating: %v", err)
	}

	return db
}
