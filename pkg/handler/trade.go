package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"spot_trading_back/models"
)

// Quote returns the derived settled amount for the current form state. An
// empty total_value means the derivation is pending, not that it failed.
func (h *Handler) Quote(c *gin.Context) {
	var req models.QuoteRequest
	if err := c.BindJSON(&req); err != nil {
		newErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	quote, err := h.service.Trade.Quote(req)
	if err != nil {
		newErrorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}

	wrapOkJSON(c, map[string]interface{}{
		"data": quote,
	})
}

// Trade submits one conversion. The rate is fetched fresh for the traded
// symbol here, so the coordinator settles against a value no older than the
// cache TTL. Rejections come back 422 with the reason on the receipt;
// collaborator failures come back 502.
func (h *Handler) Trade(c *gin.Context) {
	var req models.TradeRequest
	if err := c.BindJSON(&req); err != nil {
		newErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	rate, err := h.service.Rates.GetConversionRate(tradedSymbol(req))
	if err != nil {
		newErrorResponse(c, http.StatusBadGateway, "conversion rate unavailable")
		return
	}

	receipt, _ := h.service.Trade.Execute(req, rate)
	switch receipt.Status {
	case models.TradeApplied:
		wrapOkJSON(c, map[string]interface{}{
			"data": receipt,
		})
	case models.TradeRejected:
		c.JSON(http.StatusUnprocessableEntity, map[string]interface{}{
			"data": receipt,
		})
	default:
		c.JSON(http.StatusBadGateway, map[string]interface{}{
			"data": receipt,
		})
	}
}

func (h *Handler) ListTransactions(c *gin.Context) {
	transactions, err := h.service.Trade.Transactions(c.Query("symbol"))
	if err != nil {
		newErrorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}

	wrapOkJSON(c, map[string]interface{}{
		"data": transactions,
	})
}

// tradedSymbol picks the non-reference side of the pair, the one rates are
// quoted for.
func tradedSymbol(req models.TradeRequest) string {
	if strings.EqualFold(req.CurrencyFrom, models.ReferenceSymbol) {
		return req.CurrencyTo
	}
	return req.CurrencyFrom
}
