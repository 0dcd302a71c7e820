package api

import (
	"errors"
	"net/http"

	"storefront-rules/internal/domain/pricing"
	resdto "storefront-rules/internal/handler/dto/response"
	"storefront-rules/internal/handler/httperr"
	"storefront-rules/internal/handler/middleware"
	"storefront-rules/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type PricingHandler struct {
	queries queries.PricingQueries
}

func NewPricingHandler(q queries.PricingQueries) *PricingHandler {
	return &PricingHandler{queries: q}
}

// @Summary Quote product price
// @Description Evaluate the loyalty price for a product. Authenticated shoppers
// @Description get their reward balance applied; anonymous visitors quote at zero points.
// @Tags products
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} resdto.QuoteResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /products/{id}/quote [get]
func (h *PricingHandler) GetQuote(c *gin.Context) {
	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid product ID", nil)
		return
	}

	var shopperID *uuid.UUID
	if id, ok := middleware.GetUserID(c); ok {
		shopperID = &id
	}

	quote, err := h.queries.GetQuote(c.Request.Context(), productID, shopperID)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrQuoteProductNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Product not found", nil)
		case errors.Is(err, queries.ErrQuoteShopperNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Shopper not found", nil)
		case errors.Is(err, pricing.ErrInvalidPrice),
			errors.Is(err, pricing.ErrInvalidBalance),
			errors.Is(err, pricing.ErrNegativeMoney):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Product cannot be quoted", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to quote product", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromQuote(quote))
}
