package models

type Stats struct {
	TotalChampionships    int64            `json:"total_championships"`
	TotalTeams            int64            `json:"total_teams"`
	TotalMatches          int64            `json:"total_matches"`
	ChampionshipsByFormat map[string]int64 `json:"championships_by_format"`
}
