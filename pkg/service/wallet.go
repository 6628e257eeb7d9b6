package service

import (
	"github.com/pkg/errors"

	"spot_trading_back/models"
	"spot_trading_back/pkg/repository"
)

type WalletService struct {
	repos repository.Wallet
}

func NewWalletService(repos repository.Wallet) *WalletService {
	return &WalletService{repos: repos}
}

func (s *WalletService) List() ([]models.Wallet, error) {
	return s.repos.List()
}

func (s *WalletService) GetByCurrency(currencyID int64) (models.Wallet, error) {
	return s.repos.GetByCurrency(currencyID)
}

func (s *WalletService) Create(input models.CreateWalletInput) (models.Wallet, error) {
	if input.Balance.IsNegative() {
		return models.Wallet{}, errors.New("wallet balance cannot be negative")
	}
	return s.repos.Create(input.CurrencyID, input.Balance)
}
