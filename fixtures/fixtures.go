package fixtures

import (
	"context"
	"fmt"
	"log"
	"math/rand"

	"futsim-api/packages/core/events"
	"futsim-api/packages/core/forms"
	"futsim-api/packages/core/models"
	"futsim-api/packages/core/services"

	"gorm.io/gorm"
)

type Fixtures struct {
	db *gorm.DB
}

func NewFixtures(db *gorm.DB) *Fixtures {
	return &Fixtures{db: db}
}

type teamDef struct {
	name                   string
	wins, draws, losses    int
	goalsFor, goalsAgainst int
}

var brasileirao = []teamDef{
	{"Palmeiras", 12, 2, 5, 30, 15},
	{"Flamengo", 11, 3, 5, 28, 18},
	{"Botafogo", 11, 3, 5, 27, 17},
	{"Fortaleza", 10, 5, 4, 24, 18},
	{"São Paulo", 9, 5, 5, 25, 18},
	{"Internacional", 8, 6, 5, 24, 20},
	{"Bahia", 8, 4, 7, 26, 24},
	{"Cruzeiro", 7, 6, 6, 22, 20},
	{"Grêmio", 6, 3, 10, 19, 26},
	{"Vasco da Gama", 5, 5, 9, 17, 29},
}

var grupoA = []teamDef{
	{"Argentina", 3, 0, 0, 5, 0},
	{"Canadá", 1, 1, 1, 2, 3},
	{"Chile", 0, 2, 1, 0, 1},
	{"Peru", 0, 1, 2, 0, 3},
}

// GenerateTestData seeds a round robin league, a group stage and a knockout
// bracket.
func (f *Fixtures) GenerateTestData() error {
	log.Println("Starting fixtures generation...")

	ctx := context.Background()
	hub := events.NewHub()
	championships := services.NewChampionshipService(f.db, hub)
	teams := services.NewTeamService(f.db, hub)
	matches := services.NewMatchService(f.db)
	knockout := services.NewKnockoutService(f.db)

	league, err := championships.CreateChampionship(ctx, models.CreateChampionshipRequest{
		Name:        "Brasileirão Série A",
		Format:      models.FormatRoundRobin,
		Description: "Pontos corridos, turno e returno",
	})
	if err != nil {
		return fmt.Errorf("failed to create league: %w", err)
	}
	leagueTeams, err := f.generateTeams(ctx, teams, league.ID, brasileirao)
	if err != nil {
		return fmt.Errorf("failed to generate league teams: %w", err)
	}
	nbMatches, err := f.generateRound(ctx, matches, league.ID, leagueTeams)
	if err != nil {
		return fmt.Errorf("failed to generate league matches: %w", err)
	}

	group, err := championships.CreateChampionship(ctx, models.CreateChampionshipRequest{
		Name:        "Copa América Grupo A",
		Format:      models.FormatGroupStage,
		Description: "Fase de grupos",
	})
	if err != nil {
		return fmt.Errorf("failed to create group stage: %w", err)
	}
	groupTeams, err := f.generateTeams(ctx, teams, group.ID, grupoA)
	if err != nil {
		return fmt.Errorf("failed to generate group teams: %w", err)
	}

	cup, err := championships.CreateChampionship(ctx, models.CreateChampionshipRequest{
		Name:        "Copa do Brasil",
		Format:      models.FormatKnockout,
		Description: "Mata-mata",
	})
	if err != nil {
		return fmt.Errorf("failed to create cup: %w", err)
	}
	if _, err := knockout.SaveKnockout(ctx, cup.ID, cupBracket()); err != nil {
		return fmt.Errorf("failed to save cup bracket: %w", err)
	}

	log.Println("Fixtures generated successfully!")
	log.Printf("Created 3 championships, %d teams and %d matches", len(leagueTeams)+len(groupTeams), nbMatches)
	return nil
}

func (f *Fixtures) generateTeams(ctx context.Context, teams *services.TeamService, championshipID uint, defs []teamDef) ([]models.Team, error) {
	created := make([]models.Team, 0, len(defs))
	for _, d := range defs {
		team, err := teams.Create(ctx, championshipID, forms.TeamInput{
			Name:         d.name,
			Wins:         d.wins,
			Draws:        d.draws,
			Losses:       d.losses,
			GoalsFor:     d.goalsFor,
			GoalsAgainst: d.goalsAgainst,
		})
		if err != nil {
			return nil, err
		}
		created = append(created, *team)
	}
	return created, nil
}

// generateRound pairs the teams two by two for round 1. The first half of
// the pairs is played, the rest stays scheduled.
func (f *Fixtures) generateRound(ctx context.Context, matches *services.MatchService, championshipID uint, teams []models.Team) (int, error) {
	rng := rand.New(rand.NewSource(2024)) // #nosec G404

	count := 0
	pairs := len(teams) / 2
	for i := 0; i < pairs; i++ {
		req := models.CreateMatchRequest{
			Round:      1,
			HomeTeamID: teams[i].ID,
			AwayTeamID: teams[len(teams)-1-i].ID,
		}
		if i < pairs/2+1 {
			home, away := rng.Intn(4), rng.Intn(3)
			req.HomeGoals = &home
			req.AwayGoals = &away
		}
		if _, err := matches.CreateMatch(ctx, championshipID, req); err != nil {
			return count, err
		}
		count++
	}
	return count, nil
}

func cupBracket() []models.KnockoutRound {
	score := func(v int) *int { return &v }
	return []models.KnockoutRound{
		{
			Name: "Semifinal",
			Ties: []models.KnockoutTie{
				{Home: "Flamengo", Away: "Corinthians", HomeGoals: score(1), AwayGoals: score(0)},
				{Home: "Atlético Mineiro", Away: "Vasco da Gama", HomeGoals: score(2), AwayGoals: score(1)},
			},
		},
		{
			Name: "Final",
			Ties: []models.KnockoutTie{
				{Home: "Flamengo", Away: "Atlético Mineiro"},
			},
		},
	}
}

// ClearAllData hard-deletes every championship row.
func (f *Fixtures) ClearAllData() error {
	log.Println("Clearing all fixture data...")

	// Delete in correct order due to foreign key constraints
	tables := []interface{}{
		&models.KnockoutState{},
		&models.Match{},
		&models.Team{},
		&models.Championship{},
	}

	for _, table := range tables {
		if err := f.db.Unscoped().Where("1 = 1").Delete(table).Error; err != nil {
			return fmt.Errorf("failed to clear table %T: %w", table, err)
		}
	}

	// Reset auto-increment sequences to start from 1
	if f.db.Dialector.Name() == "postgres" {
		sequences := []string{
			"ALTER SEQUENCE championships_id_seq RESTART WITH 1",
			"ALTER SEQUENCE teams_id_seq RESTART WITH 1",
			"ALTER SEQUENCE matches_id_seq RESTART WITH 1",
			"ALTER SEQUENCE knockout_states_id_seq RESTART WITH 1",
		}
		for _, seq := range sequences {
			f.db.Exec(seq)
		}
	}

	log.Println("All fixture data cleared!")
	return nil
}
