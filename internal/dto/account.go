package dto

import (
	"time"

	"github.com/likhilliki/ATM-Simulator/internal/domain"
)

type BalanceResponseDTO struct {
	Balance         string    `json:"balance" example:"2547.63"`
	AvailableCredit string    `json:"availableCredit" example:"5000.00"`
	WithdrawalLimit string    `json:"withdrawalLimit" example:"1000.00"`
	LastUpdated     time.Time `json:"lastUpdated" example:"2024-05-01T10:00:00Z"`
}

type DetailsResponseDTO struct {
	BalanceResponseDTO
	CardNumber string `json:"cardNumber" example:"****-****-****-1234"`
}

func NewBalance(account domain.Account) BalanceResponseDTO {
	return BalanceResponseDTO{
		Balance:         account.Balance.StringFixed(2),
		AvailableCredit: account.AvailableCredit.StringFixed(2),
		WithdrawalLimit: account.WithdrawalLimit.StringFixed(2),
		LastUpdated:     account.LastUpdated,
	}
}

func NewDetails(details domain.AccountDetails) DetailsResponseDTO {
	return DetailsResponseDTO{
		BalanceResponseDTO: NewBalance(details.Account),
		CardNumber:         details.CardNumber,
	}
}
