package transactionrepo

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/likhilliki/ATM-Simulator/internal/domain"
	"github.com/likhilliki/ATM-Simulator/internal/pg"
)

const (
	createQuery = `
		INSERT INTO transactions (account_id, type, amount, description, timestamp, transaction_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`
	listByAccountIDQuery = `
		SELECT id, account_id, type, amount::text, description, timestamp, transaction_id
		FROM transactions
		WHERE account_id = $1
		ORDER BY timestamp DESC, id DESC
		LIMIT $2
	`
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) Create(ctx context.Context, txn *domain.Transaction) (*domain.Transaction, error) {
	err := r.db.QueryRow(ctx, createQuery,
		txn.AccountID,
		string(txn.Type),
		txn.Amount.StringFixed(2),
		txn.Description,
		txn.Timestamp,
		txn.TransactionID,
	).Scan(&txn.ID)
	if err != nil {
		zap.L().Error("can't save transaction", zap.String("transactionID", txn.TransactionID), zap.Error(err))
		return nil, err
	}
	return txn, nil
}

// ListByAccountID returns at most limit transactions, newest first.
func (r *Repository) ListByAccountID(ctx context.Context, accountID int, limit int) ([]domain.Transaction, error) {
	rows, err := r.db.Query(ctx, listByAccountIDQuery, accountID, limit)
	if err != nil {
		zap.L().Error("failed to fetch transactions", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	transactions := make([]domain.Transaction, 0, limit)
	for rows.Next() {
		var (
			txn     domain.Transaction
			txnType string
			amount  string
		)
		err := rows.Scan(&txn.ID, &txn.AccountID, &txnType, &amount, &txn.Description, &txn.Timestamp, &txn.TransactionID)
		if err != nil {
			zap.L().Error("failed to scan transaction row", zap.Error(err))
			return nil, err
		}
		txn.Type = domain.TransactionType(txnType)
		if txn.Amount, err = decimal.NewFromString(amount); err != nil {
			return nil, fmt.Errorf("invalid amount %q: %w", amount, err)
		}
		transactions = append(transactions, txn)
	}
	if err := rows.Err(); err != nil {
		zap.L().Error("failed to iterate transactions", zap.Error(err))
		return nil, err
	}

	return transactions, nil
}
