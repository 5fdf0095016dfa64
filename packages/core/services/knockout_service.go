package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"futsim-api/packages/core/models"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// KnockoutService stores the bracket of a championship. The bracket is
// kept as entered; it is not generated here.
type KnockoutService struct {
	db *gorm.DB
}

func NewKnockoutService(db *gorm.DB) *KnockoutService {
	return &KnockoutService{
		db: db,
	}
}

func (s *KnockoutService) GetKnockout(ctx context.Context, championshipID uint) (*models.KnockoutResponse, error) {
	var state models.KnockoutState

	result := s.db.WithContext(ctx).Where("championship_id = ?", championshipID).First(&state)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrKnockoutNotFound
		}
		return nil, result.Error
	}

	return toKnockoutResponse(state)
}

func (s *KnockoutService) SaveKnockout(ctx context.Context, championshipID uint, rounds []models.KnockoutRound) (*models.KnockoutResponse, error) {
	if err := ValidateBracket(rounds); err != nil {
		return nil, err
	}

	var championship models.Championship
	if err := s.db.WithContext(ctx).First(&championship, championshipID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrChampionshipNotFound
		}
		return nil, err
	}

	raw, err := json.Marshal(rounds)
	if err != nil {
		return nil, fmt.Errorf("encoding bracket: %w", err)
	}

	state := models.KnockoutState{
		ChampionshipID: championshipID,
		Rounds:         datatypes.JSON(raw),
	}
	if err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "championship_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"rounds", "updated_at"}),
	}).Create(&state).Error; err != nil {
		return nil, err
	}

	return s.GetKnockout(ctx, championshipID)
}

func (s *KnockoutService) DeleteKnockout(ctx context.Context, championshipID uint) error {
	result := s.db.WithContext(ctx).Where("championship_id = ?", championshipID).Delete(&models.KnockoutState{})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return ErrKnockoutNotFound
	}

	return nil
}

// ValidateBracket checks the shape of a bracket: at least one round, every
// round has ties, every tie names two teams and scores are not negative.
func ValidateBracket(rounds []models.KnockoutRound) error {
	if len(rounds) == 0 {
		return fmt.Errorf("%w: at least one round is required", ErrInvalidBracket)
	}
	for i, round := range rounds {
		if len(round.Ties) == 0 {
			return fmt.Errorf("%w: round %d has no ties", ErrInvalidBracket, i+1)
		}
		for j, tie := range round.Ties {
			if strings.TrimSpace(tie.Home) == "" || strings.TrimSpace(tie.Away) == "" {
				return fmt.Errorf("%w: round %d tie %d needs two teams", ErrInvalidBracket, i+1, j+1)
			}
			if (tie.HomeGoals != nil && *tie.HomeGoals < 0) || (tie.AwayGoals != nil && *tie.AwayGoals < 0) {
				return fmt.Errorf("%w: round %d tie %d has a negative score", ErrInvalidBracket, i+1, j+1)
			}
		}
	}
	return nil
}

func toKnockoutResponse(state models.KnockoutState) (*models.KnockoutResponse, error) {
	var rounds []models.KnockoutRound
	if err := json.Unmarshal(state.Rounds, &rounds); err != nil {
		return nil, fmt.Errorf("decoding bracket of championship %d: %w", state.ChampionshipID, err)
	}

	return &models.KnockoutResponse{
		ChampionshipID: state.ChampionshipID,
		Rounds:         rounds,
		UpdatedAt:      state.UpdatedAt,
	}, nil
}
