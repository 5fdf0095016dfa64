package services

import (
	"log"
	"time"

	"futsim-api/packages/core/models"

	"gorm.io/gorm"
)

// PurgeService hard-deletes rows that were soft-deleted longer ago than the
// retention window.
type PurgeService struct {
	db        *gorm.DB
	retention time.Duration
}

func NewPurgeService(db *gorm.DB, retention time.Duration) *PurgeService {
	return &PurgeService{
		db:        db,
		retention: retention,
	}
}

// PurgeDeleted removes expired rows and returns how many were removed.
func (s *PurgeService) PurgeDeleted() (int64, error) {
	cutoff := time.Now().Add(-s.retention)

	var total int64
	for _, model := range []interface{}{&models.Match{}, &models.Team{}, &models.Championship{}} {
		result := s.db.Unscoped().
			Where("deleted_at IS NOT NULL AND deleted_at < ?", cutoff).
			Delete(model)
		if result.Error != nil {
			log.Printf("Error purging %T: %v", model, result.Error)
			return total, result.Error
		}
		total += result.RowsAffected
	}

	return total, nil
}

// CountPurgeable returns how many rows the next purge would remove.
func (s *PurgeService) CountPurgeable() (int64, error) {
	cutoff := time.Now().Add(-s.retention)

	var total int64
	for _, model := range []interface{}{&models.Match{}, &models.Team{}, &models.Championship{}} {
		var count int64
		if err := s.db.Unscoped().Model(model).
			Where("deleted_at IS NOT NULL AND deleted_at < ?", cutoff).
			Count(&count).Error; err != nil {
			return 0, err
		}
		total += count
	}

	return total, nil
}
