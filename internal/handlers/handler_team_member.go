package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/juruweb/epms_backend/internal/apperrors"
	portssvc "github.com/juruweb/epms_backend/internal/core/ports/services"
	"github.com/juruweb/epms_backend/internal/dto"
	"github.com/juruweb/epms_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// teamMemberHandler handles HTTP requests related to team members and
// per-project rate overrides.
type teamMemberHandler struct {
	teamService portssvc.TeamSvcFacade
}

func newTeamMemberHandler(ts portssvc.TeamSvcFacade) *teamMemberHandler {
	return &teamMemberHandler{teamService: ts}
}

// registerTeamMemberRoutes registers routes related to team members.
func registerTeamMemberRoutes(rg *gin.RouterGroup, teamService portssvc.TeamSvcFacade) {
	h := newTeamMemberHandler(teamService)

	members := rg.Group("/team-members")
	{
		members.POST("", h.createTeamMember)
		members.GET("", h.listTeamMembers)
		members.GET("/:teamMemberID", h.getTeamMember)
		members.PUT("/:teamMemberID", h.updateTeamMember)
	}

	rates := rg.Group("/project-rates")
	{
		rates.PUT("", h.setProjectRate)
		rates.GET("/:projectID", h.listProjectRates)
	}
}

// createTeamMember godoc
// @Summary Add a team member
// @Description Creates a team member with an optional personal hourly rate
// @Tags team members
// @Accept json
// @Produce json
// @Param member body dto.CreateTeamMemberRequest true "Team member details"
// @Success 201 {object} dto.TeamMemberResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /team-members [post]
func (h *teamMemberHandler) createTeamMember(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateTeamMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateTeamMember", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	creatorID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	member, err := h.teamService.CreateTeamMember(c.Request.Context(), req, creatorID)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		} else if errors.Is(err, apperrors.ErrDuplicate) {
			c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
		} else {
			logger.Error("Failed to create team member", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to create team member"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToTeamMemberResponse(member))
}

// listTeamMembers godoc
// @Summary List team members
// @Description Returns all team members
// @Tags team members
// @Produce json
// @Success 200 {array} dto.TeamMemberResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /team-members [get]
func (h *teamMemberHandler) listTeamMembers(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	members, err := h.teamService.ListTeamMembers(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list team members", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list team members"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListTeamMemberResponse(members))
}

// getTeamMember godoc
// @Summary Get a team member
// @Description Retrieves a team member by ID
// @Tags team members
// @Produce json
// @Param teamMemberID path string true "Team member ID"
// @Success 200 {object} dto.TeamMemberResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /team-members/{teamMemberID} [get]
func (h *teamMemberHandler) getTeamMember(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	teamMemberID := c.Param("teamMemberID")

	member, err := h.teamService.GetTeamMemberByID(c.Request.Context(), teamMemberID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Team member not found"})
			return
		}
		logger.Error("Failed to get team member", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve team member"})
		return
	}

	c.JSON(http.StatusOK, dto.ToTeamMemberResponse(member))
}

// updateTeamMember godoc
// @Summary Update a team member
// @Description Updates the mutable fields of a team member
// @Tags team members
// @Accept json
// @Produce json
// @Param teamMemberID path string true "Team member ID"
// @Param member body dto.UpdateTeamMemberRequest true "Fields to update"
// @Success 200 {object} dto.TeamMemberResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /team-members/{teamMemberID} [put]
func (h *teamMemberHandler) updateTeamMember(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	teamMemberID := c.Param("teamMemberID")

	var req dto.UpdateTeamMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	updaterID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	member, err := h.teamService.UpdateTeamMember(c.Request.Context(), teamMemberID, req, updaterID)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		} else if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Team member not found"})
		} else {
			logger.Error("Failed to update team member", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to update team member"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToTeamMemberResponse(member))
}

// setProjectRate godoc
// @Summary Set a project rate override
// @Description Sets the hourly rate a team member bills on one project, overriding their personal rate
// @Tags team members
// @Accept json
// @Produce json
// @Param rate body dto.SetProjectRateRequest true "Rate override"
// @Success 200 {object} dto.ProjectRateResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /project-rates [put]
func (h *teamMemberHandler) setProjectRate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.SetProjectRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	updaterID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	rate, err := h.teamService.SetProjectRate(c.Request.Context(), req, updaterID)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) || errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		} else {
			logger.Error("Failed to set project rate", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to set project rate"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToProjectRateResponse(rate))
}

// listProjectRates godoc
// @Summary List project rate overrides
// @Description Returns the hourly rate overrides for one project
// @Tags team members
// @Produce json
// @Param projectID path string true "Project ID"
// @Success 200 {array} dto.ProjectRateResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /project-rates/{projectID} [get]
func (h *teamMemberHandler) listProjectRates(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	projectID := c.Param("projectID")

	rates, err := h.teamService.ListProjectRates(c.Request.Context(), projectID)
	if err != nil {
		logger.Error("Failed to list project rates", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list project rates"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListProjectRateResponse(rates))
}
