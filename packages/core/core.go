// Package core wires the championship services, their HTTP handlers and the
// background jobs together.
package core

import (
	"log"
	"time"

	"futsim-api/packages/core/cron"
	"futsim-api/packages/core/events"
	"futsim-api/packages/core/handlers"
	"futsim-api/packages/core/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type Options struct {
	PurgeSchedule  string
	PurgeRetention time.Duration
}

type Module struct {
	ChampionshipHandler *handlers.ChampionshipHandler
	ChampionshipService *services.ChampionshipService
	TeamHandler         *handlers.TeamHandler
	TeamService         *services.TeamService
	StandingsHandler    *handlers.StandingsHandler
	StandingsService    *services.StandingsService
	MatchHandler        *handlers.MatchHandler
	MatchService        *services.MatchService
	KnockoutHandler     *handlers.KnockoutHandler
	KnockoutService     *services.KnockoutService
	ScreenHandler       *handlers.ScreenHandler
	StatsHandler        *handlers.StatsHandler
	StatsService        *services.StatsService
	PurgeService        *services.PurgeService
	Scheduler           *cron.Scheduler
}

func NewModule(db *gorm.DB, opts Options) *Module {
	hub := events.NewHub()

	championshipService := services.NewChampionshipService(db, hub)
	championshipHandler := handlers.NewChampionshipHandler(championshipService)

	teamService := services.NewTeamService(db, hub)
	teamHandler := handlers.NewTeamHandler(teamService)

	standingsService := services.NewStandingsService(championshipService, teamService)
	standingsHandler := handlers.NewStandingsHandler(standingsService)

	matchService := services.NewMatchService(db)
	matchHandler := handlers.NewMatchHandler(matchService)

	knockoutService := services.NewKnockoutService(db)
	knockoutHandler := handlers.NewKnockoutHandler(knockoutService)

	screenHandler := handlers.NewScreenHandler(championshipService, standingsService, knockoutService)

	statsService := services.NewStatsService(db)
	statsHandler := handlers.NewStatsHandler(statsService)

	purgeService := services.NewPurgeService(db, opts.PurgeRetention)
	scheduler := cron.NewScheduler(purgeService, opts.PurgeSchedule)

	return &Module{
		ChampionshipHandler: championshipHandler,
		ChampionshipService: championshipService,
		TeamHandler:         teamHandler,
		TeamService:         teamService,
		StandingsHandler:    standingsHandler,
		StandingsService:    standingsService,
		MatchHandler:        matchHandler,
		MatchService:        matchService,
		KnockoutHandler:     knockoutHandler,
		KnockoutService:     knockoutService,
		ScreenHandler:       screenHandler,
		StatsHandler:        statsHandler,
		StatsService:        statsService,
		PurgeService:        purgeService,
		Scheduler:           scheduler,
	}
}

func (m *Module) SetupRoutes(r *gin.Engine) {
	championships := r.Group("/championships")
	{
		championships.GET("", m.ChampionshipHandler.GetAllChampionships)
		championships.POST("", m.ChampionshipHandler.CreateChampionship)
		championships.GET("/slug/:slug", m.ChampionshipHandler.GetChampionshipBySlug)
		championships.GET("/:id", m.ChampionshipHandler.GetChampionship)
		championships.PUT("/:id", m.ChampionshipHandler.UpdateChampionship)
		championships.DELETE("/:id", m.ChampionshipHandler.DeleteChampionship)

		championships.GET("/:id/teams", m.TeamHandler.ListTeams)
		championships.POST("/:id/teams", m.TeamHandler.AddTeam)
		championships.PUT("/:id/teams/:teamId", m.TeamHandler.UpdateTeam)
		championships.DELETE("/:id/teams/:teamId", m.TeamHandler.DeleteTeam)
		championships.PUT("/:id/teams/by-name/:name", m.TeamHandler.UpdateTeamByName)
		championships.DELETE("/:id/teams/by-name/:name", m.TeamHandler.DeleteTeamByName)
		championships.GET("/:id/events", m.TeamHandler.StreamTeams)

		championships.GET("/:id/standings", m.StandingsHandler.GetStandings)

		championships.GET("/:id/matches", m.MatchHandler.GetMatches)
		championships.POST("/:id/matches", m.MatchHandler.CreateMatch)

		championships.GET("/:id/knockout", m.KnockoutHandler.GetKnockout)
		championships.PUT("/:id/knockout", m.KnockoutHandler.SaveKnockout)
		championships.DELETE("/:id/knockout", m.KnockoutHandler.DeleteKnockout)
	}

	matches := r.Group("/matches")
	{
		matches.PUT("/:id", m.MatchHandler.UpdateMatchScore)
		matches.DELETE("/:id", m.MatchHandler.DeleteMatch)
	}

	r.GET("/screens/*route", m.ScreenHandler.GetScreen)
	r.GET("/stats", m.StatsHandler.GetStats)
}

// StartScheduler starts the cron scheduler for the purge job
func (m *Module) StartScheduler() error {
	log.Println("Starting core module scheduler...")
	return m.Scheduler.Start()
}

// StopScheduler stops the cron scheduler
func (m *Module) StopScheduler() {
	log.Println("Stopping core module scheduler...")
	m.Scheduler.Stop()
}

// RunPurgeNow manually triggers the purge job
func (m *Module) RunPurgeNow() {
	log.Println("Manually triggering purge...")
	m.Scheduler.RunNow()
}
