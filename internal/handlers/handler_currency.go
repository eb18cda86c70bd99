package handlers

import (
	"net/http"

	portssvc "github.com/juruweb/epms_backend/internal/core/ports/services"
	"github.com/juruweb/epms_backend/internal/dto"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// currencyHandler exposes the currency normalizer over HTTP.
type currencyHandler struct {
	converterService portssvc.ConverterSvcFacade
}

func newCurrencyHandler(cs portssvc.ConverterSvcFacade) *currencyHandler {
	return &currencyHandler{converterService: cs}
}

// registerCurrencyRoutes registers routes related to currency conversion.
func registerCurrencyRoutes(rg *gin.RouterGroup, converterService portssvc.ConverterSvcFacade) {
	h := newCurrencyHandler(converterService)

	currency := rg.Group("/currency")
	{
		currency.GET("/convert", h.convert)
	}
}

// convert godoc
// @Summary Convert an amount to MYR
// @Description Converts an amount from any currency to MYR. A fetch failure never errors; it falls back to a 1.0 rate flagged as fallback.
// @Tags currency
// @Produce json
// @Param amount query string true "Amount to convert"
// @Param currency query string true "Source currency code (3 letters)"
// @Param rate query string false "Custom rate to use instead of the live rate"
// @Success 200 {object} dto.ConversionResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /currency/convert [get]
func (h *currencyHandler) convert(c *gin.Context) {
	amountStr := c.Query("amount")
	currencyCode := c.Query("currency")
	if amountStr == "" || len(currencyCode) != 3 {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "amount and a 3-letter currency are required"})
		return
	}

	amount, err := decimal.NewFromString(amountStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid amount"})
		return
	}

	var customRate *decimal.Decimal
	if rateStr := c.Query("rate"); rateStr != "" {
		parsed, err := decimal.NewFromString(rateStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid rate"})
			return
		}
		customRate = &parsed
	}

	result := h.converterService.Convert(c.Request.Context(), amount, currencyCode, customRate)
	c.JSON(http.StatusOK, dto.ToConversionResponse(currencyCode, result))
}
