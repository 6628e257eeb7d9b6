package service

import (
	"spot_trading_back/models"
	"spot_trading_back/pkg/repository"
)

type CurrencyService struct {
	repos repository.Currency
}

func NewCurrencyService(repos repository.Currency) *CurrencyService {
	return &CurrencyService{repos: repos}
}

func (s *CurrencyService) List() ([]models.Currency, error) {
	return s.repos.List()
}

func (s *CurrencyService) GetBySymbol(symbol string) (models.Currency, error) {
	return s.repos.GetBySymbol(symbol)
}
