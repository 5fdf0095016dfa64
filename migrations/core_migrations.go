package migrations

import (
	"futsim-api/packages/core/models"

	"gorm.io/gorm"
)

// Table creation goes through the gorm migrator so the same definitions run
// on SQLite, PostgreSQL and MySQL.

func GetCoreMigrations() []MigrationDefinition {
	return []MigrationDefinition{
		{
			Name: "2025_06_01_000000_create_championships_table",
			Up: func(db *gorm.DB) error {
				return db.Migrator().CreateTable(&models.Championship{})
			},
			Down: func(db *gorm.DB) error {
				return db.Migrator().DropTable(&models.Championship{})
			},
		},
		{
			Name: "2025_06_01_000001_create_teams_table",
			Up: func(db *gorm.DB) error {
				return db.Migrator().CreateTable(&models.Team{})
			},
			Down: func(db *gorm.DB) error {
				return db.Migrator().DropTable(&models.Team{})
			},
		},
		{
			Name: "2025_06_02_000000_create_matches_table",
			Up: func(db *gorm.DB) error {
				return db.Migrator().CreateTable(&models.Match{})
			},
			Down: func(db *gorm.DB) error {
				return db.Migrator().DropTable(&models.Match{})
			},
		},
		{
			Name: "2025_06_10_000000_create_knockout_states_table",
			Up: func(db *gorm.DB) error {
				return db.Migrator().CreateTable(&models.KnockoutState{})
			},
			Down: func(db *gorm.DB) error {
				return db.Migrator().DropTable(&models.KnockoutState{})
			},
		},
	}
}

// GetAllMigrations returns every migration in the order they must run.
func GetAllMigrations() []MigrationDefinition {
	return GetCoreMigrations()
}

// NewCoreMigrator returns a migrator loaded with every migration.
func NewCoreMigrator(db *gorm.DB) *Migrator {
	migrator := NewMigrator(db)
	for _, migration := range GetAllMigrations() {
		migrator.AddMigration(migration)
	}
	return migrator
}
