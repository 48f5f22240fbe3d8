package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/likhilliki/ATM-Simulator/internal/domain"
)

// AmountRequestDTO accepts the amount as a JSON number or a numeric string.
type AmountRequestDTO struct {
	Amount decimal.Decimal `json:"amount" swaggertype:"string" example:"100"`
}

type TransactionDTO struct {
	ID            int       `json:"id" example:"5"`
	TransactionID string    `json:"transactionId" example:"TRX-48213370"`
	Type          string    `json:"type" example:"withdrawal"`
	Amount        string    `json:"amount" example:"-100.00"`
	Description   string    `json:"description" example:"Cash Withdrawal"`
	Timestamp     time.Time `json:"timestamp" example:"2024-05-01T10:00:00Z"`
}

type ReceiptResponseDTO struct {
	Message     string         `json:"message" example:"Withdrawal successful"`
	Transaction TransactionDTO `json:"transaction"`
	NewBalance  string         `json:"newBalance" example:"2447.63"`
}

type HistoryAccountDTO struct {
	Balance         string `json:"balance" example:"2547.63"`
	AvailableCredit string `json:"availableCredit" example:"5000.00"`
}

type HistoryResponseDTO struct {
	Transactions   []TransactionDTO  `json:"transactions"`
	AccountDetails HistoryAccountDTO `json:"accountDetails"`
}

func NewTransaction(txn domain.Transaction) TransactionDTO {
	return TransactionDTO{
		ID:            txn.ID,
		TransactionID: txn.TransactionID,
		Type:          string(txn.Type),
		Amount:        txn.Amount.StringFixed(2),
		Description:   txn.Description,
		Timestamp:     txn.Timestamp,
	}
}

func NewReceipt(message string, receipt domain.Receipt) ReceiptResponseDTO {
	return ReceiptResponseDTO{
		Message:     message,
		Transaction: NewTransaction(receipt.Transaction),
		NewBalance:  receipt.NewBalance.StringFixed(2),
	}
}

func NewHistory(history domain.History) HistoryResponseDTO {
	transactions := make([]TransactionDTO, len(history.Transactions))
	for i, txn := range history.Transactions {
		transactions[i] = NewTransaction(txn)
	}
	return HistoryResponseDTO{
		Transactions: transactions,
		AccountDetails: HistoryAccountDTO{
			Balance:         history.Account.Balance.StringFixed(2),
			AvailableCredit: history.Account.AvailableCredit.StringFixed(2),
		},
	}
}
