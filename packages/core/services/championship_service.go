package services

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"futsim-api/packages/core/events"
	"futsim-api/packages/core/models"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
	"gorm.io/gorm"
)

var slugInvalid = regexp.MustCompile(`[^a-z0-9]+`)

type ChampionshipService struct {
	db  *gorm.DB
	hub *events.Hub
}

func NewChampionshipService(db *gorm.DB, hub *events.Hub) *ChampionshipService {
	return &ChampionshipService{
		db:  db,
		hub: hub,
	}
}

func (s *ChampionshipService) CreateChampionship(ctx context.Context, req models.CreateChampionshipRequest) (*models.Championship, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, ErrChampionshipName
	}

	slug, err := s.generateUniqueSlug(ctx, name)
	if err != nil {
		return nil, err
	}

	championship := &models.Championship{
		Name:        name,
		Slug:        slug,
		Format:      req.Format,
		Description: req.Description,
	}

	if err := s.db.WithContext(ctx).Create(championship).Error; err != nil {
		return nil, err
	}

	return championship, nil
}

func (s *ChampionshipService) GetChampionshipByID(ctx context.Context, id uint) (*models.Championship, error) {
	var championship models.Championship

	result := s.db.WithContext(ctx).First(&championship, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrChampionshipNotFound
		}
		return nil, result.Error
	}

	return &championship, nil
}

func (s *ChampionshipService) GetChampionshipBySlug(ctx context.Context, slug string) (*models.Championship, error) {
	var championship models.Championship

	result := s.db.WithContext(ctx).Where("slug = ?", slug).First(&championship)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrChampionshipNotFound
		}
		return nil, result.Error
	}

	return &championship, nil
}

func (s *ChampionshipService) GetAllChampionships(ctx context.Context, page, pageSize int, format *string) (*models.PaginatedChampionshipsResponse, error) {
	var championships []models.Championship
	var total int64

	query := s.db.WithContext(ctx).Model(&models.Championship{})

	if format != nil {
		query = query.Where("format = ?", *format)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, err
	}

	offset := (page - 1) * pageSize

	if err := query.
		Order("created_at DESC").
		Order("id DESC").
		Offset(offset).
		Limit(pageSize).
		Find(&championships).Error; err != nil {
		return nil, err
	}

	totalPages := int((total + int64(pageSize) - 1) / int64(pageSize))

	return &models.PaginatedChampionshipsResponse{
		Data:       championships,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	}, nil
}

func (s *ChampionshipService) UpdateChampionship(ctx context.Context, id uint, req models.UpdateChampionshipRequest) (*models.Championship, error) {
	if _, err := s.GetChampionshipByID(ctx, id); err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, ErrChampionshipName
		}
		updates["name"] = name
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}

	if len(updates) > 0 {
		if err := s.db.WithContext(ctx).Model(&models.Championship{}).Where("id = ?", id).Updates(updates).Error; err != nil {
			return nil, err
		}
	}

	return s.GetChampionshipByID(ctx, id)
}

// DeleteChampionship removes the championship together with its teams,
// matches and bracket.
func (s *ChampionshipService) DeleteChampionship(ctx context.Context, id uint) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Delete(&models.Championship{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrChampionshipNotFound
		}

		if err := tx.Where("championship_id = ?", id).Delete(&models.Team{}).Error; err != nil {
			return fmt.Errorf("deleting teams: %w", err)
		}
		if err := tx.Where("championship_id = ?", id).Delete(&models.Match{}).Error; err != nil {
			return fmt.Errorf("deleting matches: %w", err)
		}
		if err := tx.Where("championship_id = ?", id).Delete(&models.KnockoutState{}).Error; err != nil {
			return fmt.Errorf("deleting knockout state: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.hub.Forget(id)
	return nil
}

func (s *ChampionshipService) generateSlug(name string) string {
	// "Grêmio" becomes "gremio" rather than "gr-mio".
	folded, _, err := transform.String(transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC), name)
	if err != nil {
		folded = name
	}

	slug := strings.ToLower(folded)
	slug = slugInvalid.ReplaceAllString(slug, "-")

	slug = strings.Trim(slug, "-")
	if slug == "" {
		slug = "championship"
	}

	return slug
}

// generateUniqueSlug appends -1, -2, ... to the base slug until no row,
// soft-deleted ones included, holds it.
func (s *ChampionshipService) generateUniqueSlug(ctx context.Context, name string) (string, error) {
	baseSlug := s.generateSlug(name)
	slug := baseSlug
	counter := 1

	for {
		var existing models.Championship
		err := s.db.WithContext(ctx).Unscoped().Where("slug = ?", slug).First(&existing).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return slug, nil
		}
		if err != nil {
			return "", fmt.Errorf("checking slug %q: %w", slug, err)
		}

		slug = fmt.Sprintf("%s-%d", baseSlug, counter)
		counter++
	}
}
