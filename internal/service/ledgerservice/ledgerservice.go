package ledgerservice

//go:generate mockgen -source=ledgerservice.go -destination=mock_repo.go -package=ledgerservice

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/likhilliki/ATM-Simulator/internal/domain"
	"github.com/likhilliki/ATM-Simulator/internal/pg"
	"github.com/likhilliki/ATM-Simulator/pkg/validate"
)

const (
	DefaultHistoryLimit = 10
	MaxHistoryLimit     = 100
)

type UserRepo interface {
	FindByID(ctx context.Context, id int) (*domain.User, error)
}

type AccountRepo interface {
	GetByUserID(ctx context.Context, userID int) (*domain.Account, error)
	GetByUserIDForUpdate(ctx context.Context, userID int) (*domain.Account, error)
	UpdateBalance(ctx context.Context, accountID int, balance decimal.Decimal, updatedAt time.Time) (*domain.Account, error)
}

type TransactionRepo interface {
	Create(ctx context.Context, txn *domain.Transaction) (*domain.Transaction, error)
	ListByAccountID(ctx context.Context, accountID int, limit int) ([]domain.Transaction, error)
}

type Service struct {
	users        UserRepo
	accounts     AccountRepo
	transactions TransactionRepo
	txManager    pg.TXManager
	trxIDs       *TrxIDGenerator
	now          func() time.Time
}

func New(users UserRepo, accounts AccountRepo, transactions TransactionRepo, txManager pg.TXManager) *Service {
	return &Service{
		users:        users,
		accounts:     accounts,
		transactions: transactions,
		txManager:    txManager,
		trxIDs:       NewTrxIDGenerator(),
		now:          time.Now,
	}
}

func (s *Service) GetDetails(ctx context.Context, userID int) (*domain.AccountDetails, error) {
	var (
		user    *domain.User
		account *domain.Account
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		user, err = s.users.FindByID(gctx, userID)
		return err
	})
	g.Go(func() error {
		var err error
		account, err = s.accounts.GetByUserID(gctx, userID)
		return err
	})
	if err := g.Wait(); err != nil {
		zap.L().Error("failed to load account details", zap.Int("userID", userID), zap.Error(err))
		return nil, err
	}
	if account == nil || user == nil {
		return nil, fmt.Errorf("%w: account not found", domain.ErrNotFound)
	}
	return &domain.AccountDetails{
		Account:    *account,
		CardNumber: user.MaskedCardNumber(),
	}, nil
}

func (s *Service) GetBalance(ctx context.Context, userID int) (*domain.Account, error) {
	account, err := s.accounts.GetByUserID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to get account", zap.Int("userID", userID), zap.Error(err))
		return nil, err
	}
	if account == nil {
		return nil, fmt.Errorf("%w: account not found", domain.ErrNotFound)
	}
	return account, nil
}

// GetHistory returns the account with its most recent transactions first.
// A non-positive limit selects DefaultHistoryLimit; larger ones are capped.
func (s *Service) GetHistory(ctx context.Context, userID int, limit int) (*domain.History, error) {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	if limit > MaxHistoryLimit {
		limit = MaxHistoryLimit
	}

	account, err := s.GetBalance(ctx, userID)
	if err != nil {
		return nil, err
	}
	transactions, err := s.transactions.ListByAccountID(ctx, account.ID, limit)
	if err != nil {
		zap.L().Error("failed to list transactions", zap.Int("accountID", account.ID), zap.Error(err))
		return nil, err
	}
	return &domain.History{
		Account:      *account,
		Transactions: transactions,
	}, nil
}

func (s *Service) Withdraw(ctx context.Context, userID int, amount decimal.Decimal) (*domain.Receipt, error) {
	if err := validate.WithdrawalAmount(amount); err != nil {
		return nil, err
	}
	return s.post(ctx, userID, domain.TransactionWithdrawal, amount.Neg(), "Cash Withdrawal", func(account *domain.Account) error {
		if amount.GreaterThan(account.Balance) {
			return domain.ErrInsufficientFunds
		}
		if amount.GreaterThan(account.WithdrawalLimit) {
			return domain.ErrLimitExceeded
		}
		return nil
	})
}

func (s *Service) Deposit(ctx context.Context, userID int, amount decimal.Decimal) (*domain.Receipt, error) {
	if err := validate.DepositAmount(amount); err != nil {
		return nil, err
	}
	return s.post(ctx, userID, domain.TransactionDeposit, amount, "Cash Deposit", nil)
}

// post applies a signed amount to the user's account and appends the matching
// ledger row in one storage transaction. check runs against the locked account.
func (s *Service) post(
	ctx context.Context,
	userID int,
	kind domain.TransactionType,
	signed decimal.Decimal,
	description string,
	check func(account *domain.Account) error,
) (*domain.Receipt, error) {
	var receipt domain.Receipt
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		account, err := s.accounts.GetByUserIDForUpdate(ctx, userID)
		if err != nil {
			return err
		}
		if account == nil {
			return fmt.Errorf("%w: account not found", domain.ErrNotFound)
		}
		if check != nil {
			if err := check(account); err != nil {
				return err
			}
		}

		now := s.now()
		updated, err := s.accounts.UpdateBalance(ctx, account.ID, account.Balance.Add(signed), now)
		if err != nil {
			return err
		}
		txn, err := s.transactions.Create(ctx, &domain.Transaction{
			AccountID:     account.ID,
			Type:          kind,
			Amount:        signed,
			Description:   description,
			Timestamp:     now,
			TransactionID: s.trxIDs.Next(),
		})
		if err != nil {
			return err
		}

		receipt = domain.Receipt{
			Transaction: *txn,
			NewBalance:  updated.Balance,
		}
		return nil
	})
	if err != nil {
		zap.L().Info("transaction rejected", zap.Int("userID", userID), zap.String("type", string(kind)), zap.Error(err))
		return nil, err
	}

	zap.L().Info("transaction posted",
		zap.Int("userID", userID),
		zap.String("type", string(kind)),
		zap.String("amount", signed.StringFixed(2)),
		zap.String("transactionID", receipt.Transaction.TransactionID),
	)
	return &receipt, nil
}
