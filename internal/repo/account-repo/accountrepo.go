package accountrepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/likhilliki/ATM-Simulator/internal/domain"
	"github.com/likhilliki/ATM-Simulator/internal/pg"
)

const (
	accountColumns = `id, user_id, balance::text, available_credit::text, withdrawal_limit::text, last_updated`

	getByUserIDQuery          = `SELECT ` + accountColumns + ` FROM accounts WHERE user_id = $1`
	getByUserIDForUpdateQuery = `SELECT ` + accountColumns + ` FROM accounts WHERE user_id = $1 FOR UPDATE`
	createQuery               = `
		INSERT INTO accounts (user_id, balance, available_credit, withdrawal_limit, last_updated)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + accountColumns
	updateBalanceQuery = `
		UPDATE accounts
		SET balance = $1, last_updated = $2
		WHERE id = $3
		RETURNING ` + accountColumns
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) GetByUserID(ctx context.Context, userID int) (*domain.Account, error) {
	account, err := scanAccount(r.db.QueryRow(ctx, getByUserIDQuery, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("failed to get account", zap.Int("userID", userID), zap.Error(err))
		return nil, err
	}
	return account, nil
}

// GetByUserIDForUpdate locks the account row until the surrounding transaction ends.
func (r *Repository) GetByUserIDForUpdate(ctx context.Context, userID int) (*domain.Account, error) {
	account, err := scanAccount(r.db.QueryRow(ctx, getByUserIDForUpdateQuery, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("failed to lock account", zap.Int("userID", userID), zap.Error(err))
		return nil, err
	}
	return account, nil
}

func (r *Repository) Create(ctx context.Context, account *domain.Account) (*domain.Account, error) {
	row := r.db.QueryRow(ctx, createQuery,
		account.UserID,
		account.Balance.StringFixed(2),
		account.AvailableCredit.StringFixed(2),
		account.WithdrawalLimit.StringFixed(2),
		account.LastUpdated,
	)
	created, err := scanAccount(row)
	if err != nil {
		zap.L().Error("failed to create account", zap.Error(err))
		return nil, err
	}
	return created, nil
}

func (r *Repository) UpdateBalance(ctx context.Context, accountID int, balance decimal.Decimal, updatedAt time.Time) (*domain.Account, error) {
	updated, err := scanAccount(r.db.QueryRow(ctx, updateBalanceQuery, balance.StringFixed(2), updatedAt, accountID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: account %d", domain.ErrNotFound, accountID)
		}
		zap.L().Error("failed to update account balance", zap.Int("accountID", accountID), zap.Error(err))
		return nil, err
	}
	return updated, nil
}

func scanAccount(row pgx.Row) (*domain.Account, error) {
	var (
		account                         domain.Account
		balance, credit, withdrawalLimit string
	)
	if err := row.Scan(&account.ID, &account.UserID, &balance, &credit, &withdrawalLimit, &account.LastUpdated); err != nil {
		return nil, err
	}

	var err error
	if account.Balance, err = decimal.NewFromString(balance); err != nil {
		return nil, fmt.Errorf("invalid balance %q: %w", balance, err)
	}
	if account.AvailableCredit, err = decimal.NewFromString(credit); err != nil {
		return nil, fmt.Errorf("invalid available credit %q: %w", credit, err)
	}
	if account.WithdrawalLimit, err = decimal.NewFromString(withdrawalLimit); err != nil {
		return nil, fmt.Errorf("invalid withdrawal limit %q: %w", withdrawalLimit, err)
	}
	return &account, nil
}
