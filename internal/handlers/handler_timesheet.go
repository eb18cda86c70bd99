package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/juruweb/epms_backend/internal/apperrors"
	portssvc "github.com/juruweb/epms_backend/internal/core/ports/services"
	"github.com/juruweb/epms_backend/internal/dto"
	"github.com/juruweb/epms_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// timesheetHandler handles HTTP requests related to timesheets.
type timesheetHandler struct {
	timesheetService portssvc.TimesheetSvcFacade
}

func newTimesheetHandler(ts portssvc.TimesheetSvcFacade) *timesheetHandler {
	return &timesheetHandler{timesheetService: ts}
}

// registerTimesheetRoutes registers routes related to timesheets.
func registerTimesheetRoutes(rg *gin.RouterGroup, timesheetService portssvc.TimesheetSvcFacade) {
	h := newTimesheetHandler(timesheetService)

	timesheets := rg.Group("/timesheets")
	{
		timesheets.POST("", h.logTimesheet)
		timesheets.GET("", h.listTimesheets)
		timesheets.DELETE("/:timesheetID", h.deleteTimesheet)
	}

	// Project-scoped listing sits under the projects group path.
	rg.GET("/projects/:projectID/timesheets", h.listTimesheetsByProject)
}

// logTimesheet godoc
// @Summary Log hours
// @Description Records hours worked by an engineer against a project
// @Tags timesheets
// @Accept json
// @Produce json
// @Param timesheet body dto.CreateTimesheetRequest true "Timesheet entry"
// @Success 201 {object} dto.TimesheetResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /timesheets [post]
func (h *timesheetHandler) logTimesheet(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateTimesheetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for LogTimesheet", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	creatorID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	ts, err := h.timesheetService.LogTimesheet(c.Request.Context(), req, creatorID)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) || errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		} else {
			logger.Error("Failed to log timesheet", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to log timesheet"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToTimesheetResponse(ts))
}

// listTimesheets godoc
// @Summary List timesheets
// @Description Returns timesheet entries, optionally bounded by work date
// @Tags timesheets
// @Produce json
// @Param from query string false "Start date (RFC 3339)"
// @Param to query string false "End date (RFC 3339)"
// @Success 200 {array} dto.TimesheetResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /timesheets [get]
func (h *timesheetHandler) listTimesheets(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var from, to *time.Time
	if fromStr := c.Query("from"); fromStr != "" {
		parsed, err := time.Parse(time.RFC3339, fromStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid from date"})
			return
		}
		from = &parsed
	}
	if toStr := c.Query("to"); toStr != "" {
		parsed, err := time.Parse(time.RFC3339, toStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid to date"})
			return
		}
		to = &parsed
	}

	timesheets, err := h.timesheetService.ListTimesheets(c.Request.Context(), from, to)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		logger.Error("Failed to list timesheets", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list timesheets"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListTimesheetResponse(timesheets))
}

// listTimesheetsByProject godoc
// @Summary List timesheets for a project
// @Description Returns all entries logged against one project
// @Tags timesheets
// @Produce json
// @Param projectID path string true "Project ID"
// @Success 200 {array} dto.TimesheetResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /projects/{projectID}/timesheets [get]
func (h *timesheetHandler) listTimesheetsByProject(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	projectID := c.Param("projectID")

	timesheets, err := h.timesheetService.ListTimesheetsByProject(c.Request.Context(), projectID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Project not found"})
			return
		}
		logger.Error("Failed to list timesheets by project", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list timesheets"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListTimesheetResponse(timesheets))
}

// deleteTimesheet godoc
// @Summary Delete a timesheet entry
// @Description Removes a timesheet entry
// @Tags timesheets
// @Produce json
// @Param timesheetID path string true "Timesheet ID"
// @Success 204 "No Content"
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /timesheets/{timesheetID} [delete]
func (h *timesheetHandler) deleteTimesheet(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	timesheetID := c.Param("timesheetID")

	err := h.timesheetService.DeleteTimesheet(c.Request.Context(), timesheetID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Timesheet not found"})
			return
		}
		logger.Error("Failed to delete timesheet", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to delete timesheet"})
		return
	}

	c.Status(http.StatusNoContent)
}
