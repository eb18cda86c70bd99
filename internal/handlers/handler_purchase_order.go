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

// purchaseOrderHandler handles HTTP requests related to purchase orders.
type purchaseOrderHandler struct {
	poService portssvc.PurchaseOrderSvcFacade
}

func newPurchaseOrderHandler(ps portssvc.PurchaseOrderSvcFacade) *purchaseOrderHandler {
	return &purchaseOrderHandler{poService: ps}
}

// registerPurchaseOrderRoutes registers routes related to purchase orders.
func registerPurchaseOrderRoutes(rg *gin.RouterGroup, poService portssvc.PurchaseOrderSvcFacade) {
	h := newPurchaseOrderHandler(poService)

	pos := rg.Group("/purchase-orders")
	{
		pos.POST("", h.createPurchaseOrder)
		pos.GET("", h.listPurchaseOrders)
		pos.GET("/:poID", h.getPurchaseOrder)
		pos.PUT("/:poID", h.updatePurchaseOrder)
		pos.DELETE("/:poID", h.deactivatePurchaseOrder)
	}
}

// createPurchaseOrder godoc
// @Summary Record a received purchase order
// @Description Records a PO and converts its amount to MYR at entry time
// @Tags purchase orders
// @Accept json
// @Produce json
// @Param po body dto.CreatePurchaseOrderRequest true "Purchase order details"
// @Success 201 {object} dto.PurchaseOrderResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /purchase-orders [post]
func (h *purchaseOrderHandler) createPurchaseOrder(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreatePurchaseOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreatePurchaseOrder", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	creatorID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	po, err := h.poService.CreatePurchaseOrder(c.Request.Context(), req, creatorID)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		} else if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		} else if errors.Is(err, apperrors.ErrDuplicate) {
			c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
		} else {
			logger.Error("Failed to create purchase order", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to create purchase order"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToPurchaseOrderResponse(po))
}

// listPurchaseOrders godoc
// @Summary List purchase orders
// @Description Returns purchase orders, active-only by default
// @Tags purchase orders
// @Produce json
// @Param includeInactive query bool false "Include soft-deleted POs"
// @Success 200 {array} dto.PurchaseOrderResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /purchase-orders [get]
func (h *purchaseOrderHandler) listPurchaseOrders(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	includeInactive := c.Query("includeInactive") == "true"

	pos, err := h.poService.ListPurchaseOrders(c.Request.Context(), includeInactive)
	if err != nil {
		logger.Error("Failed to list purchase orders", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list purchase orders"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListPurchaseOrderResponse(pos))
}

// getPurchaseOrder godoc
// @Summary Get a purchase order
// @Description Retrieves a purchase order by ID, active or not
// @Tags purchase orders
// @Produce json
// @Param poID path string true "Purchase order ID"
// @Success 200 {object} dto.PurchaseOrderResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /purchase-orders/{poID} [get]
func (h *purchaseOrderHandler) getPurchaseOrder(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	poID := c.Param("poID")

	po, err := h.poService.GetPurchaseOrderByID(c.Request.Context(), poID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Purchase order not found"})
			return
		}
		logger.Error("Failed to get purchase order", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve purchase order"})
		return
	}

	c.JSON(http.StatusOK, dto.ToPurchaseOrderResponse(po))
}

// updatePurchaseOrder godoc
// @Summary Update a purchase order
// @Description Adjusts the PO number, MYR override, or received date of an active PO
// @Tags purchase orders
// @Accept json
// @Produce json
// @Param poID path string true "Purchase order ID"
// @Param po body dto.UpdatePurchaseOrderRequest true "Fields to update"
// @Success 200 {object} dto.PurchaseOrderResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /purchase-orders/{poID} [put]
func (h *purchaseOrderHandler) updatePurchaseOrder(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	poID := c.Param("poID")

	var req dto.UpdatePurchaseOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	updaterID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	po, err := h.poService.UpdatePurchaseOrder(c.Request.Context(), poID, req, updaterID)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		} else if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Purchase order not found"})
		} else {
			logger.Error("Failed to update purchase order", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to update purchase order"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToPurchaseOrderResponse(po))
}

// deactivatePurchaseOrder godoc
// @Summary Deactivate a purchase order
// @Description Soft-deletes a PO; it stays on record but drops out of every aggregation
// @Tags purchase orders
// @Produce json
// @Param poID path string true "Purchase order ID"
// @Success 204 "No Content"
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /purchase-orders/{poID} [delete]
func (h *purchaseOrderHandler) deactivatePurchaseOrder(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	poID := c.Param("poID")

	updaterID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	err := h.poService.DeactivatePurchaseOrder(c.Request.Context(), poID, updaterID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Purchase order not found"})
			return
		}
		logger.Error("Failed to deactivate purchase order", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to deactivate purchase order"})
		return
	}

	c.Status(http.StatusNoContent)
}
