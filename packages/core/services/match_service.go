package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"futsim-api/packages/core/models"

	"gorm.io/gorm"
)

type MatchService struct {
	db *gorm.DB
}

func NewMatchService(db *gorm.DB) *MatchService {
	return &MatchService{
		db: db,
	}
}

func (s *MatchService) CreateMatch(ctx context.Context, championshipID uint, req models.CreateMatchRequest) (*models.Match, error) {
	var championship models.Championship
	if err := s.db.WithContext(ctx).First(&championship, championshipID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrChampionshipNotFound
		}
		return nil, err
	}

	if req.HomeTeamID == req.AwayTeamID {
		return nil, fmt.Errorf("%w: home and away teams must be different", ErrInvalidMatch)
	}
	if (req.HomeGoals == nil) != (req.AwayGoals == nil) {
		return nil, fmt.Errorf("%w: both scores or none must be given", ErrInvalidMatch)
	}

	var count int64
	if err := s.db.WithContext(ctx).Model(&models.Team{}).
		Where("championship_id = ? AND id IN ?", championshipID, []uint{req.HomeTeamID, req.AwayTeamID}).
		Count(&count).Error; err != nil {
		return nil, err
	}
	if count != 2 {
		return nil, ErrTeamNotFound
	}

	round := req.Round
	if round <= 0 {
		round = 1
	}

	match := &models.Match{
		ChampionshipID: championshipID,
		Round:          round,
		HomeTeamID:     req.HomeTeamID,
		AwayTeamID:     req.AwayTeamID,
		HomeGoals:      req.HomeGoals,
		AwayGoals:      req.AwayGoals,
	}
	if match.Played() {
		now := time.Now()
		match.PlayedAt = &now
	}

	if err := s.db.WithContext(ctx).Create(match).Error; err != nil {
		return nil, err
	}

	return s.GetMatchByID(ctx, match.ID)
}

func (s *MatchService) GetMatchByID(ctx context.Context, id uint) (*models.Match, error) {
	var match models.Match

	result := s.db.WithContext(ctx).Preload("HomeTeam").Preload("AwayTeam").First(&match, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrMatchNotFound
		}
		return nil, result.Error
	}

	return &match, nil
}

func (s *MatchService) GetMatchesByChampionship(ctx context.Context, championshipID uint) ([]models.Match, error) {
	matches := []models.Match{}

	result := s.db.WithContext(ctx).Where("championship_id = ?", championshipID).
		Preload("HomeTeam").
		Preload("AwayTeam").
		Order("round ASC").
		Order("id ASC").
		Find(&matches)
	if result.Error != nil {
		return nil, result.Error
	}

	return matches, nil
}

func (s *MatchService) UpdateMatchScore(ctx context.Context, id uint, req models.UpdateMatchScoreRequest) (*models.Match, error) {
	if _, err := s.GetMatchByID(ctx, id); err != nil {
		return nil, err
	}

	updates := map[string]interface{}{
		"home_goals": *req.HomeGoals,
		"away_goals": *req.AwayGoals,
		"played_at":  time.Now(),
	}
	if err := s.db.WithContext(ctx).Model(&models.Match{}).Where("id = ?", id).Updates(updates).Error; err != nil {
		return nil, err
	}

	return s.GetMatchByID(ctx, id)
}

func (s *MatchService) DeleteMatch(ctx context.Context, id uint) error {
	result := s.db.WithContext(ctx).Delete(&models.Match{}, id)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return ErrMatchNotFound
	}

	return nil
}
