package handlers

import (
	"errors"
	"net/http"

	"futsim-api/packages/core/models"
	"futsim-api/packages/core/services"

	"github.com/gin-gonic/gin"
)

type MatchHandler struct {
	matchService *services.MatchService
}

func NewMatchHandler(matchService *services.MatchService) *MatchHandler {
	return &MatchHandler{
		matchService: matchService,
	}
}

// CreateMatch schedules a match or records a played one
// @Summary Create a match
// @Description Both teams must belong to the championship. Give both scores for a played match or none for a fixture.
// @Tags matches
// @Accept json
// @Produce json
// @Param id path int true "Championship ID"
// @Param match body models.CreateMatchRequest true "Match data"
// @Success 201 {object} models.Match
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /championships/{id}/matches [post]
func (h *MatchHandler) CreateMatch(c *gin.Context) {
	championshipID, ok := uintParam(c, "id", "championship")
	if !ok {
		return
	}

	var req models.CreateMatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	match, err := h.matchService.CreateMatch(c.Request.Context(), championshipID, req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrChampionshipNotFound), errors.Is(err, services.ErrTeamNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, services.ErrInvalidMatch):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusCreated, match)
}

// GetMatches lists the matches of a championship
// @Summary List championship matches
// @Tags matches
// @Produce json
// @Param id path int true "Championship ID"
// @Success 200 {array} models.Match
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /championships/{id}/matches [get]
func (h *MatchHandler) GetMatches(c *gin.Context) {
	championshipID, ok := uintParam(c, "id", "championship")
	if !ok {
		return
	}

	matches, err := h.matchService.GetMatchesByChampionship(c.Request.Context(), championshipID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, matches)
}

// UpdateMatchScore records the score of a match
// @Summary Update match score
// @Description Team counters are not touched; they are edited through the team form.
// @Tags matches
// @Accept json
// @Produce json
// @Param id path int true "Match ID"
// @Param score body models.UpdateMatchScoreRequest true "Final score"
// @Success 200 {object} models.Match
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /matches/{id} [put]
func (h *MatchHandler) UpdateMatchScore(c *gin.Context) {
	id, ok := uintParam(c, "id", "match")
	if !ok {
		return
	}

	var req models.UpdateMatchScoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	match, err := h.matchService.UpdateMatchScore(c.Request.Context(), id, req)
	if err != nil {
		if errors.Is(err, services.ErrMatchNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, match)
}

// DeleteMatch deletes a match
// @Summary Delete match
// @Tags matches
// @Produce json
// @Param id path int true "Match ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /matches/{id} [delete]
func (h *MatchHandler) DeleteMatch(c *gin.Context) {
	id, ok := uintParam(c, "id", "match")
	if !ok {
		return
	}

	if err := h.matchService.DeleteMatch(c.Request.Context(), id); err != nil {
		if errors.Is(err, services.ErrMatchNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Match deleted successfully"})
}
