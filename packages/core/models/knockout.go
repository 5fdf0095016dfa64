package models

import (
	"time"

	"gorm.io/datatypes"
)

// KnockoutState stores the bracket of a championship as a JSON document.
// There is at most one per championship.
type KnockoutState struct {
	ID             uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	ChampionshipID uint           `gorm:"not null;uniqueIndex;constraint:OnDelete:CASCADE" json:"championship_id"`
	Rounds         datatypes.JSON `json:"rounds" swaggertype:"array,object"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
}

func (KnockoutState) TableName() string {
	return "knockout_states"
}

type KnockoutTie struct {
	Home      string `json:"home"`
	Away      string `json:"away"`
	HomeGoals *int   `json:"home_goals,omitempty"`
	AwayGoals *int   `json:"away_goals,omitempty"`
}

// Winner returns the name of the side with more goals, or "" while the tie
// is undecided or level.
func (t KnockoutTie) Winner() string {
	if t.HomeGoals == nil || t.AwayGoals == nil {
		return ""
	}
	switch {
	case *t.HomeGoals > *t.AwayGoals:
		return t.Home
	case *t.AwayGoals > *t.HomeGoals:
		return t.Away
	}
	return ""
}

type KnockoutRound struct {
	Name string        `json:"name"`
	Ties []KnockoutTie `json:"ties"`
}

type SaveKnockoutRequest struct {
	Rounds []KnockoutRound `json:"rounds" binding:"required"`
}

type KnockoutResponse struct {
	ChampionshipID uint            `json:"championship_id"`
	Rounds         []KnockoutRound `json:"rounds"`
	UpdatedAt      time.Time       `json:"updated_at"`
}
