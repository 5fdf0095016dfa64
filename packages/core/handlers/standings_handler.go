package handlers

import (
	"errors"
	"net/http"

	"futsim-api/packages/core/services"
	"futsim-api/packages/core/standings"

	"github.com/gin-gonic/gin"
)

type StandingsHandler struct {
	standingsService *services.StandingsService
}

func NewStandingsHandler(standingsService *services.StandingsService) *StandingsHandler {
	return &StandingsHandler{
		standingsService: standingsService,
	}
}

// GetStandings ranks the teams of a championship
// @Summary Get the standings table
// @Description Rank the teams with the policy of the championship format, or the one given in the query.
// @Description group_stage orders by points, goal difference, goals for. round_robin orders by points, wins, goal difference, goals for.
// @Tags standings
// @Produce json
// @Param id path int true "Championship ID"
// @Param policy query string false "Ranking policy" Enums(group_stage, round_robin)
// @Success 200 {object} services.Table
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /championships/{id}/standings [get]
func (h *StandingsHandler) GetStandings(c *gin.Context) {
	championshipID, ok := uintParam(c, "id", "championship")
	if !ok {
		return
	}

	var policy *standings.Policy
	if raw := c.Query("policy"); raw != "" {
		p, err := standings.ParsePolicy(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		policy = &p
	}

	table, err := h.standingsService.GetTable(c.Request.Context(), championshipID, policy)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrChampionshipNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, services.ErrNoStandings):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, table)
}
