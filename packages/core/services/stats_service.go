package services

import (
	"context"

	"futsim-api/packages/core/models"

	"gorm.io/gorm"
)

type StatsService struct {
	db *gorm.DB
}

func NewStatsService(db *gorm.DB) *StatsService {
	return &StatsService{
		db: db,
	}
}

func (s *StatsService) GetStats(ctx context.Context) (*models.Stats, error) {
	var totalChampionships int64
	var totalTeams int64
	var totalMatches int64

	db := s.db.WithContext(ctx)

	// Count championships
	if err := db.Model(&models.Championship{}).Count(&totalChampionships).Error; err != nil {
		return nil, err
	}

	// Count teams
	if err := db.Model(&models.Team{}).Count(&totalTeams).Error; err != nil {
		return nil, err
	}

	// Count matches
	if err := db.Model(&models.Match{}).Count(&totalMatches).Error; err != nil {
		return nil, err
	}

	var byFormat []struct {
		Format string
		Total  int64
	}
	if err := db.Model(&models.Championship{}).
		Select("format, COUNT(*) AS total").
		Group("format").
		Scan(&byFormat).Error; err != nil {
		return nil, err
	}

	formats := map[string]int64{
		models.FormatGroupStage: 0,
		models.FormatRoundRobin: 0,
		models.FormatKnockout:   0,
	}
	for _, f := range byFormat {
		formats[f.Format] = f.Total
	}

	stats := &models.Stats{
		TotalChampionships:    totalChampionships,
		TotalTeams:            totalTeams,
		TotalMatches:          totalMatches,
		ChampionshipsByFormat: formats,
	}

	return stats, nil
}
