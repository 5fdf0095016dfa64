package services

import "errors"

var (
	ErrChampionshipNotFound = errors.New("championship not found")
	ErrTeamNotFound         = errors.New("team not found")
	ErrMatchNotFound        = errors.New("match not found")
	ErrKnockoutNotFound     = errors.New("knockout state not found")
	ErrNoStandings          = errors.New("championship has no standings table")
	ErrInvalidMatch         = errors.New("invalid match")
	ErrInvalidBracket       = errors.New("invalid knockout bracket")
	ErrChampionshipName     = errors.New("championship name is required")
)
