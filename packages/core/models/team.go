package models

import (
	"time"

	"gorm.io/gorm"
)

// Team holds one team's aggregate counters inside a championship.
// Points, games played and goal difference are never stored; they are
// derived from the counters on every read.
type Team struct {
	ID             uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	ChampionshipID uint           `gorm:"not null;index;constraint:OnDelete:CASCADE" json:"championship_id"`
	Name           string         `gorm:"size:255;not null" json:"name"`
	Wins           int            `gorm:"default:0" json:"wins"`
	Draws          int            `gorm:"default:0" json:"draws"`
	Losses         int            `gorm:"default:0" json:"losses"`
	GoalsFor       int            `gorm:"default:0" json:"goals_for"`
	GoalsAgainst   int            `gorm:"default:0" json:"goals_against"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Team) TableName() string {
	return "teams"
}

func (t Team) Points() int {
	return t.Wins*3 + t.Draws
}

func (t Team) GamesPlayed() int {
	return t.Wins + t.Draws + t.Losses
}

func (t Team) GoalDifference() int {
	return t.GoalsFor - t.GoalsAgainst
}

// TeamResponse is a Team with its derived fields filled in.
type TeamResponse struct {
	Team
	Points         int `json:"points"`
	GamesPlayed    int `json:"games_played"`
	GoalDifference int `json:"goal_difference"`
}

func NewTeamResponse(t Team) TeamResponse {
	return TeamResponse{
		Team:           t,
		Points:         t.Points(),
		GamesPlayed:    t.GamesPlayed(),
		GoalDifference: t.GoalDifference(),
	}
}

// TeamFormRequest carries the add/edit form exactly as typed. Numbers are
// strings on purpose: parsing them is part of validation.
type TeamFormRequest struct {
	Name         string `json:"name"`
	Wins         string `json:"wins"`
	Draws        string `json:"draws"`
	Losses       string `json:"losses"`
	GoalsFor     string `json:"goals_for"`
	GoalsAgainst string `json:"goals_against"`
}

type TeamListResponse struct {
	ChampionshipID uint           `json:"championship_id"`
	Revision       uint64         `json:"revision"`
	Data           []TeamResponse `json:"data"`
}
