package validate

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/likhilliki/ATM-Simulator/internal/domain"
)

var (
	MaxWithdrawal  = decimal.NewFromInt(1000)
	WithdrawalStep = decimal.NewFromInt(20)
	MaxDeposit     = decimal.NewFromInt(10000)
)

// maxExponent bounds the decimal exponent accepted from clients. Rescaling a
// value with a huge exponent allocates a 10^exp big.Int, so the bound is
// checked before any arithmetic.
const maxExponent = 8

func boundedExponent(amount decimal.Decimal) bool {
	exp := amount.Exponent()
	return exp >= -maxExponent && exp <= maxExponent
}

func WithdrawalAmount(amount decimal.Decimal) error {
	if !boundedExponent(amount) || !amount.IsPositive() || !amount.Mod(WithdrawalStep).IsZero() || amount.GreaterThan(MaxWithdrawal) {
		return fmt.Errorf("%w: amount must be positive, a multiple of $20, and at most $1000", domain.ErrInvalidInput)
	}
	return nil
}

func DepositAmount(amount decimal.Decimal) error {
	if !boundedExponent(amount) || !amount.IsPositive() || amount.GreaterThan(MaxDeposit) || !amount.Equal(amount.Round(2)) {
		return fmt.Errorf("%w: amount must be positive and at most $10000", domain.ErrInvalidInput)
	}
	return nil
}
