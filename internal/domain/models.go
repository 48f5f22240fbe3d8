package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type TransactionType string

const (
	TransactionWithdrawal TransactionType = "withdrawal"
	TransactionDeposit    TransactionType = "deposit"
	TransactionPayment    TransactionType = "payment"
)

type User struct {
	ID         int    `db:"id"`
	Username   string `db:"username"`
	PinHash    string `db:"pin_hash"`
	CardNumber string `db:"card_number"`
}

// MaskedCardNumber hides every digit except the last four, grouped by four.
func (u *User) MaskedCardNumber() string {
	return MaskCardNumber(u.CardNumber)
}

type Account struct {
	ID              int             `db:"id"`
	UserID          int             `db:"user_id"`
	Balance         decimal.Decimal `db:"balance"`
	AvailableCredit decimal.Decimal `db:"available_credit"`
	WithdrawalLimit decimal.Decimal `db:"withdrawal_limit"`
	LastUpdated     time.Time       `db:"last_updated"`
}

type Transaction struct {
	ID            int             `db:"id"`
	AccountID     int             `db:"account_id"`
	Type          TransactionType `db:"type"`
	Amount        decimal.Decimal `db:"amount"`
	Description   string          `db:"description"`
	Timestamp     time.Time       `db:"timestamp"`
	TransactionID string          `db:"transaction_id"`
}

type AccountDetails struct {
	Account    Account
	CardNumber string
}

type History struct {
	Account      Account
	Transactions []Transaction
}

type Receipt struct {
	Transaction Transaction
	NewBalance  decimal.Decimal
}

// Session is the server-held state of one client. A zero UserID with a card
// number means the card was presented but the PIN has not been verified yet.
type Session struct {
	ID            string    `json:"id"`
	CardNumber    string    `json:"cardNumber,omitempty"`
	UserID        int       `json:"userId,omitempty"`
	Authenticated bool      `json:"authenticated"`
	LastActive    time.Time `json:"lastActive"`
}

// Expired reports whether the session has been idle for longer than ttl.
func (s *Session) Expired(now time.Time, ttl time.Duration) bool {
	return now.Sub(s.LastActive) > ttl
}

func MaskCardNumber(cardNumber string) string {
	digits := make([]byte, 0, len(cardNumber))
	for i := 0; i < len(cardNumber); i++ {
		if c := cardNumber[i]; c >= '0' && c <= '9' {
			digits = append(digits, c)
		}
	}
	if len(digits) <= 4 {
		return string(digits)
	}

	var sb strings.Builder
	for i, c := range digits {
		if i > 0 && (len(digits)-i)%4 == 0 {
			sb.WriteByte('-')
		}
		if i < len(digits)-4 {
			sb.WriteByte('*')
		} else {
			sb.WriteByte(c)
		}
	}
	return sb.String()
}

type SessionStatus struct {
	Authenticated    bool
	SecondsRemaining int
}
