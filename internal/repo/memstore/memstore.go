// Package memstore keeps users, accounts and the transaction ledger in process
// memory. It satisfies the same repository contracts as the Postgres store and
// acts as its own transaction manager: a transactional closure runs under the
// store write lock and its writes are rolled back if it fails.
package memstore

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/likhilliki/ATM-Simulator/internal/domain"
	"github.com/likhilliki/ATM-Simulator/internal/pg"
)

type txKey struct{}

type Store struct {
	mu           sync.RWMutex
	users        map[int]domain.User
	accounts     map[int]domain.Account
	transactions []domain.Transaction

	nextUserID    int
	nextAccountID int
	nextTxnID     int
}

func New() *Store {
	return &Store{
		users:         make(map[int]domain.User),
		accounts:      make(map[int]domain.Account),
		nextUserID:    1,
		nextAccountID: 1,
		nextTxnID:     1,
	}
}

type snapshot struct {
	users         map[int]domain.User
	accounts      map[int]domain.Account
	txnCount      int
	nextUserID    int
	nextAccountID int
	nextTxnID     int
}

func (s *Store) snapshot() snapshot {
	snap := snapshot{
		users:         make(map[int]domain.User, len(s.users)),
		accounts:      make(map[int]domain.Account, len(s.accounts)),
		txnCount:      len(s.transactions),
		nextUserID:    s.nextUserID,
		nextAccountID: s.nextAccountID,
		nextTxnID:     s.nextTxnID,
	}
	for id, u := range s.users {
		snap.users[id] = u
	}
	for id, a := range s.accounts {
		snap.accounts[id] = a
	}
	return snap
}

func (s *Store) restore(snap snapshot) {
	s.users = snap.users
	s.accounts = snap.accounts
	s.transactions = s.transactions[:snap.txnCount]
	s.nextUserID = snap.nextUserID
	s.nextAccountID = snap.nextAccountID
	s.nextTxnID = snap.nextTxnID
}

// Begin implements pg.TXManager. Nested calls join the outer transaction.
func (s *Store) Begin(ctx context.Context, fn pg.TransactionalFn) error {
	if inTx(ctx) {
		return fn(ctx)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	snap := s.snapshot()
	if err := fn(context.WithValue(ctx, txKey{}, s)); err != nil {
		s.restore(snap)
		return err
	}
	return nil
}

func inTx(ctx context.Context) bool {
	_, ok := ctx.Value(txKey{}).(*Store)
	return ok
}

func (s *Store) readLock(ctx context.Context) func() {
	if inTx(ctx) {
		return func() {}
	}
	s.mu.RLock()
	return s.mu.RUnlock
}

func (s *Store) writeLock(ctx context.Context) func() {
	if inTx(ctx) {
		return func() {}
	}
	s.mu.Lock()
	return s.mu.Unlock
}

func (s *Store) Users() *UserRepo {
	return &UserRepo{store: s}
}

func (s *Store) Accounts() *AccountRepo {
	return &AccountRepo{store: s}
}

func (s *Store) Transactions() *TransactionRepo {
	return &TransactionRepo{store: s}
}

type UserRepo struct {
	store *Store
}

func (r *UserRepo) FindByCardNumber(ctx context.Context, cardNumber string) (*domain.User, error) {
	defer r.store.readLock(ctx)()
	for _, u := range r.store.users {
		if u.CardNumber == cardNumber {
			return &u, nil
		}
	}
	return nil, nil
}

func (r *UserRepo) FindByID(ctx context.Context, id int) (*domain.User, error) {
	defer r.store.readLock(ctx)()
	u, ok := r.store.users[id]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (r *UserRepo) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	defer r.store.writeLock(ctx)()
	for _, u := range r.store.users {
		if u.CardNumber == user.CardNumber || u.Username == user.Username {
			return nil, fmt.Errorf("user %q or card already exists", user.Username)
		}
	}
	user.ID = r.store.nextUserID
	r.store.nextUserID++
	r.store.users[user.ID] = *user
	return user, nil
}

type AccountRepo struct {
	store *Store
}

func (r *AccountRepo) GetByUserID(ctx context.Context, userID int) (*domain.Account, error) {
	defer r.store.readLock(ctx)()
	return r.store.accountByUser(userID), nil
}

// GetByUserIDForUpdate reads the account; serialization comes from Begin holding the write lock.
func (r *AccountRepo) GetByUserIDForUpdate(ctx context.Context, userID int) (*domain.Account, error) {
	return r.GetByUserID(ctx, userID)
}

func (r *AccountRepo) Create(ctx context.Context, account *domain.Account) (*domain.Account, error) {
	defer r.store.writeLock(ctx)()
	if _, ok := r.store.users[account.UserID]; !ok {
		return nil, fmt.Errorf("%w: user %d", domain.ErrNotFound, account.UserID)
	}
	if r.store.accountByUser(account.UserID) != nil {
		return nil, fmt.Errorf("account for user %d already exists", account.UserID)
	}
	account.ID = r.store.nextAccountID
	r.store.nextAccountID++
	if account.LastUpdated.IsZero() {
		account.LastUpdated = time.Now()
	}
	r.store.accounts[account.ID] = *account
	created := *account
	return &created, nil
}

func (r *AccountRepo) UpdateBalance(ctx context.Context, accountID int, balance decimal.Decimal, updatedAt time.Time) (*domain.Account, error) {
	defer r.store.writeLock(ctx)()
	account, ok := r.store.accounts[accountID]
	if !ok {
		return nil, fmt.Errorf("%w: account %d", domain.ErrNotFound, accountID)
	}
	account.Balance = balance.Round(2)
	account.LastUpdated = updatedAt
	r.store.accounts[accountID] = account
	return &account, nil
}

func (s *Store) accountByUser(userID int) *domain.Account {
	for _, a := range s.accounts {
		if a.UserID == userID {
			return &a
		}
	}
	return nil
}

type TransactionRepo struct {
	store *Store
}

func (r *TransactionRepo) Create(ctx context.Context, txn *domain.Transaction) (*domain.Transaction, error) {
	defer r.store.writeLock(ctx)()
	if _, ok := r.store.accounts[txn.AccountID]; !ok {
		return nil, fmt.Errorf("%w: account %d", domain.ErrNotFound, txn.AccountID)
	}
	txn.ID = r.store.nextTxnID
	r.store.nextTxnID++
	if txn.Timestamp.IsZero() {
		txn.Timestamp = time.Now()
	}
	r.store.transactions = append(r.store.transactions, *txn)
	created := *txn
	return &created, nil
}

// ListByAccountID orders by timestamp descending, breaking ties by insertion order.
func (r *TransactionRepo) ListByAccountID(ctx context.Context, accountID int, limit int) ([]domain.Transaction, error) {
	defer r.store.readLock(ctx)()
	result := make([]domain.Transaction, 0, limit)
	for _, txn := range r.store.transactions {
		if txn.AccountID == accountID {
			result = append(result, txn)
		}
	}
	sort.SliceStable(result, func(i, j int) bool {
		if !result[i].Timestamp.Equal(result[j].Timestamp) {
			return result[i].Timestamp.After(result[j].Timestamp)
		}
		return result[i].ID > result[j].ID
	})
	if limit >= 0 && len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}
