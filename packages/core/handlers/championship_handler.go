package handlers

import (
	"errors"
	"net/http"

	"futsim-api/packages/core/models"
	"futsim-api/packages/core/services"

	"github.com/gin-gonic/gin"
)

type ChampionshipHandler struct {
	championshipService *services.ChampionshipService
}

func NewChampionshipHandler(championshipService *services.ChampionshipService) *ChampionshipHandler {
	return &ChampionshipHandler{
		championshipService: championshipService,
	}
}

// CreateChampionship creates a new championship
// @Summary Create a new championship
// @Description Create a championship in one of the three formats
// @Tags championships
// @Accept json
// @Produce json
// @Param championship body models.CreateChampionshipRequest true "Championship data"
// @Success 201 {object} models.Championship
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /championships [post]
func (h *ChampionshipHandler) CreateChampionship(c *gin.Context) {
	var req models.CreateChampionshipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	championship, err := h.championshipService.CreateChampionship(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, services.ErrChampionshipName) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusCreated, championship)
}

// GetChampionship gets a championship by ID
// @Summary Get championship by ID
// @Tags championships
// @Produce json
// @Param id path int true "Championship ID"
// @Success 200 {object} models.Championship
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /championships/{id} [get]
func (h *ChampionshipHandler) GetChampionship(c *gin.Context) {
	id, ok := uintParam(c, "id", "championship")
	if !ok {
		return
	}

	championship, err := h.championshipService.GetChampionshipByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrChampionshipNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, championship)
}

// GetChampionshipBySlug gets a championship by its slug
// @Summary Get championship by slug
// @Tags championships
// @Produce json
// @Param slug path string true "Championship slug"
// @Success 200 {object} models.Championship
// @Failure 404 {object} map[string]string
// @Router /championships/slug/{slug} [get]
func (h *ChampionshipHandler) GetChampionshipBySlug(c *gin.Context) {
	championship, err := h.championshipService.GetChampionshipBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		if errors.Is(err, services.ErrChampionshipNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, championship)
}

// GetAllChampionships lists championships with pagination
// @Summary Get all championships
// @Description Get all championships, newest first, with an optional format filter
// @Tags championships
// @Produce json
// @Param page query int false "Page number (default: 1)"
// @Param pageSize query int false "Items per page (default: 10, max: 100)"
// @Param format query string false "Filter by format" Enums(group_stage, round_robin, knockout)
// @Success 200 {object} models.PaginatedChampionshipsResponse
// @Failure 500 {object} map[string]string
// @Router /championships [get]
func (h *ChampionshipHandler) GetAllChampionships(c *gin.Context) {
	page, pageSize := pagination(c)

	var format *string
	if f := c.Query("format"); f != "" {
		format = &f
	}

	result, err := h.championshipService.GetAllChampionships(c.Request.Context(), page, pageSize, format)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}

// UpdateChampionship updates a championship
// @Summary Update championship
// @Description Update championship name or description
// @Tags championships
// @Accept json
// @Produce json
// @Param id path int true "Championship ID"
// @Param championship body models.UpdateChampionshipRequest true "Championship update data"
// @Success 200 {object} models.Championship
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /championships/{id} [put]
func (h *ChampionshipHandler) UpdateChampionship(c *gin.Context) {
	id, ok := uintParam(c, "id", "championship")
	if !ok {
		return
	}

	var req models.UpdateChampionshipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	championship, err := h.championshipService.UpdateChampionship(c.Request.Context(), id, req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrChampionshipNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, services.ErrChampionshipName):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, championship)
}

// DeleteChampionship deletes a championship
// @Summary Delete championship
// @Description Delete a championship together with its teams, matches and bracket
// @Tags championships
// @Produce json
// @Param id path int true "Championship ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /championships/{id} [delete]
func (h *ChampionshipHandler) DeleteChampionship(c *gin.Context) {
	id, ok := uintParam(c, "id", "championship")
	if !ok {
		return
	}

	if err := h.championshipService.DeleteChampionship(c.Request.Context(), id); err != nil {
		if errors.Is(err, services.ErrChampionshipNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Championship deleted successfully"})
}
