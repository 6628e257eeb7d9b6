package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h *Handler) ListCurrencies(c *gin.Context) {
	currencies, err := h.service.Currency.List()
	if err != nil {
		newErrorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}

	wrapOkJSON(c, map[string]interface{}{
		"data": currencies,
	})
}

// GetConversionRate returns the current reference-relative rate for one
// symbol. Provider failures surface as 502; the rate itself is never stored.
func (h *Handler) GetConversionRate(c *gin.Context) {
	rate, err := h.service.Rates.GetConversionRate(c.Param("symbol"))
	if err != nil {
		newErrorResponse(c, http.StatusBadGateway, "conversion rate unavailable")
		return
	}

	wrapOkJSON(c, map[string]interface{}{
		"rate": rate,
	})
}
