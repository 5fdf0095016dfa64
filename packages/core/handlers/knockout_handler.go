package handlers

import (
	"errors"
	"net/http"

	"futsim-api/packages/core/models"
	"futsim-api/packages/core/services"

	"github.com/gin-gonic/gin"
)

type KnockoutHandler struct {
	knockoutService *services.KnockoutService
}

func NewKnockoutHandler(knockoutService *services.KnockoutService) *KnockoutHandler {
	return &KnockoutHandler{
		knockoutService: knockoutService,
	}
}

// GetKnockout returns the stored bracket
// @Summary Get knockout bracket
// @Tags knockout
// @Produce json
// @Param id path int true "Championship ID"
// @Success 200 {object} models.KnockoutResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /championships/{id}/knockout [get]
func (h *KnockoutHandler) GetKnockout(c *gin.Context) {
	championshipID, ok := uintParam(c, "id", "championship")
	if !ok {
		return
	}

	bracket, err := h.knockoutService.GetKnockout(c.Request.Context(), championshipID)
	if err != nil {
		if errors.Is(err, services.ErrKnockoutNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, bracket)
}

// SaveKnockout replaces the stored bracket
// @Summary Save knockout bracket
// @Description Store the rounds as entered. Every tie needs two team names and scores cannot be negative.
// @Tags knockout
// @Accept json
// @Produce json
// @Param id path int true "Championship ID"
// @Param bracket body models.SaveKnockoutRequest true "Bracket rounds"
// @Success 200 {object} models.KnockoutResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /championships/{id}/knockout [put]
func (h *KnockoutHandler) SaveKnockout(c *gin.Context) {
	championshipID, ok := uintParam(c, "id", "championship")
	if !ok {
		return
	}

	var req models.SaveKnockoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	bracket, err := h.knockoutService.SaveKnockout(c.Request.Context(), championshipID, req.Rounds)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidBracket):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, services.ErrChampionshipNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, bracket)
}

// DeleteKnockout resets the bracket
// @Summary Reset knockout bracket
// @Tags knockout
// @Produce json
// @Param id path int true "Championship ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /championships/{id}/knockout [delete]
func (h *KnockoutHandler) DeleteKnockout(c *gin.Context) {
	championshipID, ok := uintParam(c, "id", "championship")
	if !ok {
		return
	}

	if err := h.knockoutService.DeleteKnockout(c.Request.Context(), championshipID); err != nil {
		if errors.Is(err, services.ErrKnockoutNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Knockout bracket reset successfully"})
}
