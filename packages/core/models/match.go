package models

import (
	"time"

	"gorm.io/gorm"
)

// Match is a fixture or result inside a championship. It does not feed the
// team counters; those are edited directly.
type Match struct {
	ID             uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	ChampionshipID uint           `gorm:"not null;index;constraint:OnDelete:CASCADE" json:"championship_id"`
	Round          int            `gorm:"default:1" json:"round"`
	HomeTeamID     uint           `gorm:"not null" json:"home_team_id"`
	AwayTeamID     uint           `gorm:"not null" json:"away_team_id"`
	HomeGoals      *int           `json:"home_goals"`
	AwayGoals      *int           `json:"away_goals"`
	PlayedAt       *time.Time     `json:"played_at"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	HomeTeam Team `gorm:"foreignKey:HomeTeamID;references:ID" json:"home_team,omitempty"`
	AwayTeam Team `gorm:"foreignKey:AwayTeamID;references:ID" json:"away_team,omitempty"`
}

func (Match) TableName() string {
	return "matches"
}

// Played reports whether both scores are known.
func (m Match) Played() bool {
	return m.HomeGoals != nil && m.AwayGoals != nil
}

type CreateMatchRequest struct {
	Round      int  `json:"round,omitempty"`
	HomeTeamID uint `json:"home_team_id" binding:"required"`
	AwayTeamID uint `json:"away_team_id" binding:"required"`
	HomeGoals  *int `json:"home_goals,omitempty" binding:"omitempty,min=0"`
	AwayGoals  *int `json:"away_goals,omitempty" binding:"omitempty,min=0"`
}

type UpdateMatchScoreRequest struct {
	HomeGoals *int `json:"home_goals" binding:"required,min=0"`
	AwayGoals *int `json:"away_goals" binding:"required,min=0"`
}
