package handlers

import (
	"errors"
	"log"
	"net/http"

	"futsim-api/packages/core/events"
	"futsim-api/packages/core/forms"
	"futsim-api/packages/core/models"
	"futsim-api/packages/core/services"

	"github.com/gin-gonic/gin"
)

type TeamHandler struct {
	teamService *services.TeamService
}

func NewTeamHandler(teamService *services.TeamService) *TeamHandler {
	return &TeamHandler{
		teamService: teamService,
	}
}

// TeamFormResponse is returned by the add, edit and delete endpoints.
type TeamFormResponse struct {
	Team         *models.TeamResponse `json:"team,omitempty"`
	Notification forms.Notification   `json:"notification"`
}

// TeamFormError is returned when the submitted form does not validate.
type TeamFormError struct {
	Error        string             `json:"error" example:"invalid team form"`
	Notification forms.Notification `json:"notification"`
}

func teamList(snap events.Snapshot) models.TeamListResponse {
	data := make([]models.TeamResponse, 0, len(snap.Teams))
	for _, t := range snap.Teams {
		data = append(data, models.NewTeamResponse(t))
	}
	return models.TeamListResponse{
		ChampionshipID: snap.ChampionshipID,
		Revision:       snap.Revision,
		Data:           data,
	}
}

// ListTeams lists the teams of a championship
// @Summary List championship teams
// @Description Teams in insertion order with their derived points, games played and goal difference
// @Tags teams
// @Produce json
// @Param id path int true "Championship ID"
// @Success 200 {object} models.TeamListResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /championships/{id}/teams [get]
func (h *TeamHandler) ListTeams(c *gin.Context) {
	championshipID, ok := uintParam(c, "id", "championship")
	if !ok {
		return
	}

	snap, err := h.teamService.Snapshot(c.Request.Context(), championshipID)
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, teamList(snap))
}

// AddTeam adds a team from the raw form
// @Summary Add a team
// @Description Validate the six form fields and insert a new team. Numbers are sent as typed text.
// @Tags teams
// @Accept json
// @Produce json
// @Param id path int true "Championship ID"
// @Param team body models.TeamFormRequest true "Form fields"
// @Success 201 {object} TeamFormResponse
// @Failure 400 {object} TeamFormError
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /championships/{id}/teams [post]
func (h *TeamHandler) AddTeam(c *gin.Context) {
	championshipID, ok := uintParam(c, "id", "championship")
	if !ok {
		return
	}

	var req models.TeamFormRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	editor := forms.NewEditor(championshipID, h.teamService)
	editor.Form = forms.FromRequest(req)
	h.submit(c, editor, http.StatusCreated)
}

// UpdateTeam edits a team from the raw form
// @Summary Edit a team
// @Description Validate the form and overwrite every field of the team
// @Tags teams
// @Accept json
// @Produce json
// @Param id path int true "Championship ID"
// @Param teamId path int true "Team ID"
// @Param team body models.TeamFormRequest true "Form fields"
// @Success 200 {object} TeamFormResponse
// @Failure 400 {object} TeamFormError
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /championships/{id}/teams/{teamId} [put]
func (h *TeamHandler) UpdateTeam(c *gin.Context) {
	editor, ok := h.selectByID(c)
	if !ok {
		return
	}
	h.update(c, editor)
}

// UpdateTeamByName edits the first team with the given name
// @Summary Edit a team by name
// @Description Names are not unique: the earliest team with this exact name is edited
// @Tags teams
// @Accept json
// @Produce json
// @Param id path int true "Championship ID"
// @Param name path string true "Team name"
// @Param team body models.TeamFormRequest true "Form fields"
// @Success 200 {object} TeamFormResponse
// @Failure 400 {object} TeamFormError
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /championships/{id}/teams/by-name/{name} [put]
func (h *TeamHandler) UpdateTeamByName(c *gin.Context) {
	editor, ok := h.selectByName(c)
	if !ok {
		return
	}
	h.update(c, editor)
}

// DeleteTeam deletes a team
// @Summary Delete a team
// @Tags teams
// @Produce json
// @Param id path int true "Championship ID"
// @Param teamId path int true "Team ID"
// @Success 200 {object} TeamFormResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /championships/{id}/teams/{teamId} [delete]
func (h *TeamHandler) DeleteTeam(c *gin.Context) {
	editor, ok := h.selectByID(c)
	if !ok {
		return
	}
	h.confirmDelete(c, editor)
}

// DeleteTeamByName deletes the first team with the given name
// @Summary Delete a team by name
// @Description Names are not unique: the earliest team with this exact name is deleted
// @Tags teams
// @Produce json
// @Param id path int true "Championship ID"
// @Param name path string true "Team name"
// @Success 200 {object} TeamFormResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /championships/{id}/teams/by-name/{name} [delete]
func (h *TeamHandler) DeleteTeamByName(c *gin.Context) {
	editor, ok := h.selectByName(c)
	if !ok {
		return
	}
	h.confirmDelete(c, editor)
}

// StreamTeams pushes the team list each time it changes
// @Summary Stream team list revisions
// @Description Server-sent events. The current list is sent first, then one "teams" event per new revision.
// @Tags teams
// @Produce text/event-stream
// @Param id path int true "Championship ID"
// @Success 200 {object} models.TeamListResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /championships/{id}/events [get]
func (h *TeamHandler) StreamTeams(c *gin.Context) {
	championshipID, ok := uintParam(c, "id", "championship")
	if !ok {
		return
	}

	ctx := c.Request.Context()

	// Subscribe before reading so no revision falls between the two.
	sub := h.teamService.Subscribe(championshipID)
	defer sub.Close()

	snap, err := h.teamService.Snapshot(ctx, championshipID)
	if err != nil {
		h.fail(c, err)
		return
	}

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Status(http.StatusOK)

	last := snap.Revision
	c.SSEvent("teams", teamList(snap))
	c.Writer.Flush()

	for {
		select {
		case <-ctx.Done():
			return
		case next, open := <-sub.C():
			if !open {
				return
			}
			if next.Revision <= last {
				continue
			}
			last = next.Revision
			c.SSEvent("teams", teamList(next))
			c.Writer.Flush()
		}
	}
}

func (h *TeamHandler) selectByID(c *gin.Context) (*forms.Editor, bool) {
	championshipID, ok := uintParam(c, "id", "championship")
	if !ok {
		return nil, false
	}
	teamID, ok := uintParam(c, "teamId", "team")
	if !ok {
		return nil, false
	}

	team, err := h.teamService.GetTeamByID(c.Request.Context(), championshipID, teamID)
	if err != nil {
		h.fail(c, err)
		return nil, false
	}

	editor := forms.NewEditor(championshipID, h.teamService)
	editor.Select(*team)
	return editor, true
}

func (h *TeamHandler) selectByName(c *gin.Context) (*forms.Editor, bool) {
	championshipID, ok := uintParam(c, "id", "championship")
	if !ok {
		return nil, false
	}

	team, err := h.teamService.FindByName(c.Request.Context(), championshipID, c.Param("name"))
	if err != nil {
		h.fail(c, err)
		return nil, false
	}

	editor := forms.NewEditor(championshipID, h.teamService)
	editor.Select(*team)
	return editor, true
}

func (h *TeamHandler) update(c *gin.Context, editor *forms.Editor) {
	var req models.TeamFormRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	editor.Form = forms.FromRequest(req)
	h.submit(c, editor, http.StatusOK)
}

func (h *TeamHandler) submit(c *gin.Context, editor *forms.Editor, status int) {
	team, note, err := editor.Submit(c.Request.Context())
	if err != nil {
		if errors.Is(err, forms.ErrInvalidTeamForm) {
			c.JSON(http.StatusBadRequest, TeamFormError{Error: err.Error(), Notification: note})
			return
		}
		h.fail(c, err)
		return
	}

	resp := models.NewTeamResponse(*team)
	c.JSON(status, TeamFormResponse{Team: &resp, Notification: note})
}

func (h *TeamHandler) confirmDelete(c *gin.Context, editor *forms.Editor) {
	note, err := editor.ConfirmDelete(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, TeamFormResponse{Notification: note})
}

func (h *TeamHandler) fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrChampionshipNotFound), errors.Is(err, services.ErrTeamNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		log.Printf("Team store error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
