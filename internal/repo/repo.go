package repo

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/likhilliki/ATM-Simulator/internal/domain"
	"github.com/likhilliki/ATM-Simulator/internal/pg"
	accountrepo "github.com/likhilliki/ATM-Simulator/internal/repo/account-repo"
	"github.com/likhilliki/ATM-Simulator/internal/repo/memstore"
	transactionrepo "github.com/likhilliki/ATM-Simulator/internal/repo/transaction-repo"
	userrepo "github.com/likhilliki/ATM-Simulator/internal/repo/user-repo"
)

type UserRepo interface {
	FindByID(ctx context.Context, id int) (*domain.User, error)
	FindByCardNumber(ctx context.Context, cardNumber string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}

type AccountRepo interface {
	GetByUserID(ctx context.Context, userID int) (*domain.Account, error)
	GetByUserIDForUpdate(ctx context.Context, userID int) (*domain.Account, error)
	UpdateBalance(ctx context.Context, accountID int, balance decimal.Decimal, updatedAt time.Time) (*domain.Account, error)
	Create(ctx context.Context, account *domain.Account) (*domain.Account, error)
}

type TransactionRepo interface {
	Create(ctx context.Context, txn *domain.Transaction) (*domain.Transaction, error)
	ListByAccountID(ctx context.Context, accountID int, limit int) ([]domain.Transaction, error)
}

type Repositories struct {
	UserRepo        UserRepo
	AccountRepo     AccountRepo
	TransactionRepo TransactionRepo
	TxManager       pg.TXManager
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	return &Repositories{
		UserRepo:        userrepo.New(conn),
		AccountRepo:     accountrepo.New(conn),
		TransactionRepo: transactionrepo.New(conn),
		TxManager:       txManager,
	}
}

// NewInMemory backs every repository with one process-local store.
func NewInMemory() *Repositories {
	store := memstore.New()
	return &Repositories{
		UserRepo:        store.Users(),
		AccountRepo:     store.Accounts(),
		TransactionRepo: store.Transactions(),
		TxManager:       store,
	}
}
