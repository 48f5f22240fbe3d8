package domain

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidInput      = errors.New("invalid input")
	ErrUnauthorized      = errors.New("unauthorized")
	ErrNotFound          = errors.New("not found")
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrLimitExceeded     = errors.New("amount exceeds daily withdrawal limit")

	// ErrNoCard is an ErrInvalidInput raised when a PIN arrives before a card.
	ErrNoCard = fmt.Errorf("%w: no card inserted", ErrInvalidInput)
)
