package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	FormatGroupStage = "group_stage"
	FormatRoundRobin = "round_robin"
	FormatKnockout   = "knockout"
)

type Championship struct {
	ID          uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string         `gorm:"size:255;not null" json:"name"`
	Slug        string         `gorm:"size:255;uniqueIndex;not null" json:"slug"`
	Format      string         `gorm:"size:20;not null;default:round_robin" json:"format"` // group_stage, round_robin, knockout
	Description string         `gorm:"type:text" json:"description"`
	NbTeams     int            `gorm:"default:0" json:"nb_teams"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Teams   []Team  `gorm:"foreignKey:ChampionshipID" json:"teams,omitempty"`
	Matches []Match `gorm:"foreignKey:ChampionshipID" json:"matches,omitempty"`
}

func (Championship) TableName() string {
	return "championships"
}

// DTOs

type CreateChampionshipRequest struct {
	Name        string `json:"name" binding:"required"`
	Format      string `json:"format" binding:"required,oneof=group_stage round_robin knockout"`
	Description string `json:"description,omitempty"`
}

type UpdateChampionshipRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
}

// Responses

type PaginatedChampionshipsResponse struct {
	Data       []Championship `json:"data"`
	Total      int64          `json:"total"`
	Page       int            `json:"page"`
	PageSize   int            `json:"pageSize"`
	TotalPages int            `json:"totalPages"`
}
