package migrations

import (
	"fmt"
	"log"
	"time"

	"gorm.io/gorm"
)

// Migration is a row of the bookkeeping table: one applied definition.
type Migration struct {
	ID        uint      `gorm:"primaryKey"`
	Name      string    `gorm:"size:255;uniqueIndex;not null"`
	Batch     int       `gorm:"not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (Migration) TableName() string {
	return "schema_migrations"
}

type MigrationFunc func(*gorm.DB) error

type MigrationDefinition struct {
	Name string
	Up   MigrationFunc
	Down MigrationFunc
}

// Migrator applies definitions in registration order. Definitions applied
// by the same Migrate call share a batch number and roll back together.
type Migrator struct {
	db         *gorm.DB
	migrations []MigrationDefinition
}

func NewMigrator(db *gorm.DB) *Migrator {
	if err := db.AutoMigrate(&Migration{}); err != nil {
		log.Printf("Error creating migrations table: %v", err)
	}
	return &Migrator{
		db:         db,
		migrations: []MigrationDefinition{},
	}
}

func (m *Migrator) AddMigration(migration MigrationDefinition) {
	m.migrations = append(m.migrations, migration)
}

// Migrate runs every pending definition. Each one runs in its own
// transaction together with its bookkeeping row.
func (m *Migrator) Migrate() error {
	log.Println("Running database migrations...")

	batch := m.latestBatch() + 1
	applied := 0

	for _, migration := range m.migrations {
		if m.hasRun(migration.Name) {
			continue
		}

		log.Printf("Migrating: %s", migration.Name)

		err := m.db.Transaction(func(tx *gorm.DB) error {
			if err := migration.Up(tx); err != nil {
				return fmt.Errorf("migration %s failed: %w", migration.Name, err)
			}
			if err := tx.Create(&Migration{Name: migration.Name, Batch: batch}).Error; err != nil {
				return fmt.Errorf("failed to record migration %s: %w", migration.Name, err)
			}
			return nil
		})
		if err != nil {
			return err
		}

		applied++
		log.Printf("Migrated: %s", migration.Name)
	}

	if applied == 0 {
		log.Println("Nothing to migrate")
		return nil
	}

	log.Printf("Migration completed successfully (%d applied, batch %d)", applied, batch)
	return nil
}

// Rollback reverts the last steps batches.
func (m *Migrator) Rollback(steps int) error {
	if steps <= 0 {
		steps = 1
	}

	log.Printf("Rolling back %d batch(es)...", steps)

	for i := 0; i < steps; i++ {
		batch := m.latestBatch()
		if batch == 0 {
			break
		}

		var records []Migration
		if err := m.db.Where("batch = ?", batch).Order("id DESC").Find(&records).Error; err != nil {
			return err
		}

		for _, record := range records {
			migration := m.findMigration(record.Name)
			if migration == nil {
				return fmt.Errorf("migration definition not found: %s", record.Name)
			}
			if migration.Down == nil {
				return fmt.Errorf("rollback not defined for migration: %s", record.Name)
			}

			log.Printf("Rolling back: %s", record.Name)

			err := m.db.Transaction(func(tx *gorm.DB) error {
				if err := migration.Down(tx); err != nil {
					return fmt.Errorf("rollback failed for %s: %w", record.Name, err)
				}
				if err := tx.Delete(&record).Error; err != nil {
					return fmt.Errorf("failed to remove migration record %s: %w", record.Name, err)
				}
				return nil
			})
			if err != nil {
				return err
			}

			log.Printf("Rolled back: %s", record.Name)
		}
	}

	log.Println("Rollback completed successfully")
	return nil
}

// Applied lists the recorded migrations, oldest first.
func (m *Migrator) Applied() ([]Migration, error) {
	var records []Migration
	err := m.db.Order("batch ASC, id ASC").Find(&records).Error
	return records, err
}

// Pending lists the names of registered definitions not yet applied.
func (m *Migrator) Pending() []string {
	var names []string
	for _, migration := range m.migrations {
		if !m.hasRun(migration.Name) {
			names = append(names, migration.Name)
		}
	}
	return names
}

func (m *Migrator) hasRun(name string) bool {
	var count int64
	m.db.Model(&Migration{}).Where("name = ?", name).Count(&count)
	return count > 0
}

func (m *Migrator) latestBatch() int {
	var batch int
	m.db.Model(&Migration{}).Select("COALESCE(MAX(batch), 0)").Scan(&batch)
	return batch
}

func (m *Migrator) findMigration(name string) *MigrationDefinition {
	for i := range m.migrations {
		if m.migrations[i].Name == name {
			return &m.migrations[i]
		}
	}
	return nil
}
