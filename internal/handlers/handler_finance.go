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

// financeHandler exposes the cash-tracking overview and the separate
// profitability calculation path.
type financeHandler struct {
	financeService       portssvc.FinanceSvcFacade
	profitabilityService portssvc.ProfitabilitySvcFacade
}

func newFinanceHandler(fs portssvc.FinanceSvcFacade, ps portssvc.ProfitabilitySvcFacade) *financeHandler {
	return &financeHandler{
		financeService:       fs,
		profitabilityService: ps,
	}
}

// registerFinanceRoutes registers the reporting routes.
func registerFinanceRoutes(rg *gin.RouterGroup, financeService portssvc.FinanceSvcFacade, profitabilityService portssvc.ProfitabilitySvcFacade) {
	h := newFinanceHandler(financeService, profitabilityService)

	finance := rg.Group("/finance")
	{
		finance.GET("/overview", h.overview)
		finance.GET("/profitability", h.allProjectProfitability)
		finance.GET("/profitability/:projectID", h.projectProfitability)
	}
}

// overview godoc
// @Summary Finance overview
// @Description Returns one finance summary per project plus portfolio totals, all in MYR at the fixed labour rate
// @Tags finance
// @Produce json
// @Param showOriginal query bool false "Include original-currency breakdowns in the formatted totals"
// @Success 200 {object} dto.FinanceOverviewResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /finance/overview [get]
func (h *financeHandler) overview(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	showOriginal := c.Query("showOriginal") == "true"

	overview, err := h.financeService.Overview(c.Request.Context())
	if err != nil {
		logger.Error("Failed to build finance overview", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to build finance overview"})
		return
	}

	c.JSON(http.StatusOK, dto.ToFinanceOverviewResponse(overview, showOriginal))
}

// allProjectProfitability godoc
// @Summary Profitability for all projects
// @Description Returns revenue, labour cost, profit, and margin per project using custom rates where set
// @Tags finance
// @Produce json
// @Success 200 {array} dto.ProjectProfitabilityResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /finance/profitability [get]
func (h *financeHandler) allProjectProfitability(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	items, err := h.profitabilityService.AllProjectProfitability(c.Request.Context())
	if err != nil {
		logger.Error("Failed to compute profitability", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to compute profitability"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListProjectProfitabilityResponse(items))
}

// projectProfitability godoc
// @Summary Profitability for one project
// @Description Returns revenue, labour cost, profit, and margin for a single project
// @Tags finance
// @Produce json
// @Param projectID path string true "Project ID"
// @Success 200 {object} dto.ProjectProfitabilityResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /finance/profitability/{projectID} [get]
func (h *financeHandler) projectProfitability(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	projectID := c.Param("projectID")

	item, err := h.profitabilityService.ProjectProfitability(c.Request.Context(), projectID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Project not found"})
			return
		}
		logger.Error("Failed to compute project profitability", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to compute project profitability"})
		return
	}

	c.JSON(http.StatusOK, dto.ToProjectProfitabilityResponse(item))
}
