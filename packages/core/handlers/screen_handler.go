package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"

	"futsim-api/packages/core/models"
	"futsim-api/packages/core/navigation"
	"futsim-api/packages/core/services"
	"futsim-api/packages/core/standings"

	"github.com/gin-gonic/gin"
)

// ScreenHandler resolves a navigation path to the data its screen shows.
type ScreenHandler struct {
	championshipService *services.ChampionshipService
	standingsService    *services.StandingsService
	knockoutService     *services.KnockoutService
}

func NewScreenHandler(
	championshipService *services.ChampionshipService,
	standingsService *services.StandingsService,
	knockoutService *services.KnockoutService,
) *ScreenHandler {
	return &ScreenHandler{
		championshipService: championshipService,
		standingsService:    standingsService,
		knockoutService:     knockoutService,
	}
}

type ScreenResponse struct {
	Screen string      `json:"screen" example:"round-robin/1"`
	Data   interface{} `json:"data"`
}

var homeLinks = []string{
	navigation.Championships{}.Path(),
	navigation.CreateChampionship{}.Path(),
}

var championshipFormats = []string{
	models.FormatGroupStage,
	models.FormatRoundRobin,
	models.FormatKnockout,
}

// GetScreen resolves a screen route
// @Summary Resolve a screen
// @Description Accepts canonical paths (home, championships, championships/new, groups, group/{id}, round-robin/{id}, knockout/{id}) and the legacy route names.
// @Description A missing or non-numeric championship id is rejected with 404.
// @Tags screens
// @Produce json
// @Param route path string true "Screen path"
// @Success 200 {object} ScreenResponse
// @Failure 404 {object} map[string]string
// @Router /screens/{route} [get]
func (h *ScreenHandler) GetScreen(c *gin.Context) {
	route, err := navigation.Parse(c.Param("route"))
	if err != nil {
		log.Printf("Rejected screen route %q: %v", c.Param("route"), err)
		c.JSON(http.StatusNotFound, gin.H{"error": "screen not found"})
		return
	}

	data, err := h.load(c, route)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrChampionshipNotFound):
			log.Printf("Screen %s: %v", route.Path(), err)
			c.JSON(http.StatusNotFound, gin.H{"error": "screen not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, ScreenResponse{Screen: route.Path(), Data: data})
}

func (h *ScreenHandler) load(c *gin.Context, route navigation.Route) (interface{}, error) {
	switch r := route.(type) {
	case navigation.Home:
		return gin.H{"links": homeLinks}, nil
	case navigation.Championships:
		page, pageSize := pagination(c)
		return h.championshipService.GetAllChampionships(c.Request.Context(), page, pageSize, nil)
	case navigation.CreateChampionship:
		return gin.H{"formats": championshipFormats}, nil
	case navigation.GroupStages:
		page, pageSize := pagination(c)
		format := models.FormatGroupStage
		return h.championshipService.GetAllChampionships(c.Request.Context(), page, pageSize, &format)
	case navigation.GroupStage:
		p := standings.GroupStage
		return h.standingsService.GetTable(c.Request.Context(), r.ChampionshipID, &p)
	case navigation.RoundRobin:
		p := standings.RoundRobin
		return h.standingsService.GetTable(c.Request.Context(), r.ChampionshipID, &p)
	case navigation.Knockout:
		return h.knockout(c.Request.Context(), r.ChampionshipID)
	}
	return nil, navigation.ErrUnknownRoute
}

// knockout returns the stored bracket, or an empty one when nothing has been
// saved yet.
func (h *ScreenHandler) knockout(ctx context.Context, championshipID uint) (*models.KnockoutResponse, error) {
	championship, err := h.championshipService.GetChampionshipByID(ctx, championshipID)
	if err != nil {
		return nil, err
	}

	bracket, err := h.knockoutService.GetKnockout(ctx, championship.ID)
	if errors.Is(err, services.ErrKnockoutNotFound) {
		return &models.KnockoutResponse{
			ChampionshipID: championship.ID,
			Rounds:         []models.KnockoutRound{},
			UpdatedAt:      championship.UpdatedAt,
		}, nil
	}
	return bracket, err
}
