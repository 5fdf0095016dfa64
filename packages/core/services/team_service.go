package services

import (
	"context"
	"errors"
	"log"
	"sync"

	"futsim-api/packages/core/events"
	"futsim-api/packages/core/forms"
	"futsim-api/packages/core/models"

	"gorm.io/gorm"
)

// TeamService is the store of team records. Every successful write
// publishes the championship's new team list on the hub.
type TeamService struct {
	db  *gorm.DB
	hub *events.Hub

	mu    sync.Mutex
	lists map[uint]*sync.Mutex
}

func NewTeamService(db *gorm.DB, hub *events.Hub) *TeamService {
	return &TeamService{
		db:    db,
		hub:   hub,
		lists: make(map[uint]*sync.Mutex),
	}
}

// listLock guards the read of a championship's list together with the
// revision it is paired with.
func (s *TeamService) listLock(championshipID uint) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.lists[championshipID]
	if !ok {
		l = &sync.Mutex{}
		s.lists[championshipID] = l
	}
	return l
}

var _ forms.TeamStore = (*TeamService)(nil)

func (s *TeamService) championshipExists(ctx context.Context, championshipID uint) error {
	var count int64
	if err := s.db.WithContext(ctx).Model(&models.Championship{}).Where("id = ?", championshipID).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return ErrChampionshipNotFound
	}
	return nil
}

// ListByChampionship returns the teams of a championship in store order
// (ascending id).
func (s *TeamService) ListByChampionship(ctx context.Context, championshipID uint) ([]models.Team, error) {
	if err := s.championshipExists(ctx, championshipID); err != nil {
		return nil, err
	}

	teams := []models.Team{}
	if err := s.db.WithContext(ctx).
		Where("championship_id = ?", championshipID).
		Order("id ASC").
		Find(&teams).Error; err != nil {
		return nil, err
	}

	return teams, nil
}

func (s *TeamService) GetTeamByID(ctx context.Context, championshipID, id uint) (*models.Team, error) {
	var team models.Team

	result := s.db.WithContext(ctx).Where("championship_id = ?", championshipID).First(&team, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrTeamNotFound
		}
		return nil, result.Error
	}

	return &team, nil
}

// FindByName returns the first team, in store order, whose name is exactly
// name. Names are not unique; later namesakes are unreachable through this
// lookup.
func (s *TeamService) FindByName(ctx context.Context, championshipID uint, name string) (*models.Team, error) {
	teams, err := s.ListByChampionship(ctx, championshipID)
	if err != nil {
		return nil, err
	}

	team, ok := forms.FirstByName(teams, name)
	if !ok {
		return nil, ErrTeamNotFound
	}
	return &team, nil
}

func (s *TeamService) Create(ctx context.Context, championshipID uint, in forms.TeamInput) (*models.Team, error) {
	if err := s.championshipExists(ctx, championshipID); err != nil {
		return nil, err
	}

	team := &models.Team{ChampionshipID: championshipID}
	in.Apply(team)

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(team).Error; err != nil {
			return err
		}
		return tx.Model(&models.Championship{}).Where("id = ?", championshipID).
			Update("nb_teams", gorm.Expr("nb_teams + 1")).Error
	})
	if err != nil {
		return nil, err
	}

	s.publish(ctx, championshipID)
	return team, nil
}

// Update replaces the editable fields of team in place. ID and championship
// are kept.
func (s *TeamService) Update(ctx context.Context, team models.Team, in forms.TeamInput) (*models.Team, error) {
	updates := map[string]interface{}{
		"name":          in.Name,
		"wins":          in.Wins,
		"draws":         in.Draws,
		"losses":        in.Losses,
		"goals_for":     in.GoalsFor,
		"goals_against": in.GoalsAgainst,
	}

	result := s.db.WithContext(ctx).Model(&models.Team{}).
		Where("id = ? AND championship_id = ?", team.ID, team.ChampionshipID).
		Updates(updates)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrTeamNotFound
	}

	updated, err := s.GetTeamByID(ctx, team.ChampionshipID, team.ID)
	if err != nil {
		return nil, err
	}

	s.publish(ctx, team.ChampionshipID)
	return updated, nil
}

func (s *TeamService) Delete(ctx context.Context, team models.Team) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Where("championship_id = ?", team.ChampionshipID).Delete(&models.Team{}, team.ID)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrTeamNotFound
		}
		if err := tx.Where("home_team_id = ? OR away_team_id = ?", team.ID, team.ID).Delete(&models.Match{}).Error; err != nil {
			return err
		}
		return tx.Model(&models.Championship{}).Where("id = ? AND nb_teams > 0", team.ChampionshipID).
			Update("nb_teams", gorm.Expr("nb_teams - 1")).Error
	})
	if err != nil {
		return err
	}

	s.publish(ctx, team.ChampionshipID)
	return nil
}

// Snapshot returns the current team list with the hub revision it matches.
// The list is never older than the one published under that revision.
func (s *TeamService) Snapshot(ctx context.Context, championshipID uint) (events.Snapshot, error) {
	l := s.listLock(championshipID)
	l.Lock()
	defer l.Unlock()

	teams, err := s.ListByChampionship(ctx, championshipID)
	if err != nil {
		return events.Snapshot{}, err
	}
	return events.Snapshot{
		ChampionshipID: championshipID,
		Revision:       s.hub.Revision(championshipID),
		Teams:          teams,
	}, nil
}

func (s *TeamService) Subscribe(championshipID uint) *events.Subscription {
	return s.hub.Subscribe(championshipID)
}

// publish reloads the team list after a committed write. A failed reload
// only costs subscribers one revision; the write itself already succeeded.
// Reload and Publish run under the championship's list lock, so a later
// revision always carries a list at least as new as an earlier one.
func (s *TeamService) publish(ctx context.Context, championshipID uint) {
	l := s.listLock(championshipID)
	l.Lock()
	defer l.Unlock()

	var teams []models.Team
	if err := s.db.WithContext(context.WithoutCancel(ctx)).
		Where("championship_id = ?", championshipID).
		Order("id ASC").
		Find(&teams).Error; err != nil {
		log.Printf("Error reloading teams of championship %d for subscribers: %v", championshipID, err)
		return
	}
	s.hub.Publish(championshipID, teams)
}
