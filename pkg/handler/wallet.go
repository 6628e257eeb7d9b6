package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"

	"spot_trading_back/models"
	"spot_trading_back/pkg/repository"
)

func (h *Handler) ListWallets(c *gin.Context) {
	wallets, err := h.service.Wallet.List()
	if err != nil {
		newErrorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}

	wrapOkJSON(c, map[string]interface{}{
		"data": wallets,
	})
}

// GetWalletByCurrency returns the wallet holding the given currency. 404
// means the currency was never held, which the client treats as balance 0.
func (h *Handler) GetWalletByCurrency(c *gin.Context) {
	currencyID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		newErrorResponse(c, http.StatusBadRequest, "invalid currency id")
		return
	}

	wallet, err := h.service.Wallet.GetByCurrency(currencyID)
	if errors.Is(err, repository.ErrWalletNotFound) {
		newErrorResponse(c, http.StatusNotFound, "wallet not found")
		return
	}
	if err != nil {
		newErrorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}

	wrapOkJSON(c, map[string]interface{}{
		"data": wallet,
	})
}

func (h *Handler) CreateWallet(c *gin.Context) {
	var input models.CreateWalletInput
	if err := c.BindJSON(&input); err != nil {
		newErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	wallet, err := h.service.Wallet.Create(input)
	if errors.Is(err, repository.ErrWalletExists) {
		newErrorResponse(c, http.StatusConflict, "wallet already exists for currency")
		return
	}
	if err != nil {
		newErrorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}

	wrapOkJSON(c, map[string]interface{}{
		"data": wallet,
	})
}
