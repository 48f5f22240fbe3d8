package accountrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/likhilliki/ATM-Simulator/internal/domain"
)

var accountRowColumns = []string{"id", "user_id", "balance", "available_credit", "withdrawal_limit", "last_updated"}

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	t.Cleanup(mockDB.Close)

	return repo, mockDB
}

func TestRepository_GetByUserID(t *testing.T) {
	repo, mock := NewMock(t)
	updated := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		userID    int
		mockSetup func()
		expectErr bool
		result    *domain.Account
	}{
		{
			name:   "Valid userID returns account",
			userID: 1,
			mockSetup: func() {
				rows := pgxmock.NewRows(accountRowColumns).
					AddRow(1, 1, "2547.63", "5000.00", "1000.00", updated)
				mock.ExpectQuery(regexp.QuoteMeta(getByUserIDQuery)).
					WithArgs(1).
					WillReturnRows(rows)
			},
			result: &domain.Account{
				ID:              1,
				UserID:          1,
				Balance:         decimal.RequireFromString("2547.63"),
				AvailableCredit: decimal.RequireFromString("5000.00"),
				WithdrawalLimit: decimal.RequireFromString("1000.00"),
				LastUpdated:     updated,
			},
		},
		{
			name:   "Non-existing userID returns nil",
			userID: 99,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(getByUserIDQuery)).
					WithArgs(99).
					WillReturnError(pgx.ErrNoRows)
			},
		},
		{
			name:   "Database error",
			userID: 1,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(getByUserIDQuery)).
					WithArgs(1).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
		{
			name:   "Corrupt numeric value",
			userID: 1,
			mockSetup: func() {
				rows := pgxmock.NewRows(accountRowColumns).
					AddRow(1, 1, "abc", "5000.00", "1000.00", updated)
				mock.ExpectQuery(regexp.QuoteMeta(getByUserIDQuery)).
					WithArgs(1).
					WillReturnRows(rows)
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.GetByUserID(context.Background(), tt.userID)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}

			if tt.result == nil {
				assert.Nil(t, result)
			} else {
				assert.NotNil(t, result)
				assert.True(t, tt.result.Balance.Equal(result.Balance))
				assert.True(t, tt.result.AvailableCredit.Equal(result.AvailableCredit))
				assert.True(t, tt.result.WithdrawalLimit.Equal(result.WithdrawalLimit))
				assert.Equal(t, tt.result.ID, result.ID)
				assert.Equal(t, tt.result.LastUpdated, result.LastUpdated)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_GetByUserIDForUpdate(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectQuery(regexp.QuoteMeta(getByUserIDForUpdateQuery)).
		WithArgs(1).
		WillReturnRows(pgxmock.NewRows(accountRowColumns).AddRow(1, 1, "10.00", "0.00", "1000.00", time.Now()))

	account, err := repo.GetByUserIDForUpdate(context.Background(), 1)
	assert.NoError(t, err)
	assert.Equal(t, "10.00", account.Balance.StringFixed(2))

	mock.ExpectQuery(regexp.QuoteMeta(getByUserIDForUpdateQuery)).
		WithArgs(2).
		WillReturnError(pgx.ErrNoRows)

	account, err = repo.GetByUserIDForUpdate(context.Background(), 2)
	assert.NoError(t, err)
	assert.Nil(t, account)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta(createQuery)).
		WithArgs(1, "2547.63", "5000.00", "1000.00", now).
		WillReturnRows(pgxmock.NewRows(accountRowColumns).AddRow(1, 1, "2547.63", "5000.00", "1000.00", now))

	account, err := repo.Create(context.Background(), &domain.Account{
		UserID:          1,
		Balance:         decimal.RequireFromString("2547.63"),
		AvailableCredit: decimal.NewFromInt(5000),
		WithdrawalLimit: decimal.NewFromInt(1000),
		LastUpdated:     now,
	})

	assert.NoError(t, err)
	assert.Equal(t, 1, account.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_UpdateBalance(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name        string
		mockSetup   func()
		expectErr   error
		anyErr      bool
		expectedBal string
	}{
		{
			name: "Successfully updates balance",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(updateBalanceQuery)).
					WithArgs("2047.63", now, 1).
					WillReturnRows(pgxmock.NewRows(accountRowColumns).AddRow(1, 1, "2047.63", "5000.00", "1000.00", now))
			},
			expectedBal: "2047.63",
		},
		{
			name: "Account vanished",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(updateBalanceQuery)).
					WithArgs("2047.63", now, 1).
					WillReturnError(pgx.ErrNoRows)
			},
			expectErr: domain.ErrNotFound,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(updateBalanceQuery)).
					WithArgs("2047.63", now, 1).
					WillReturnError(errors.New("database error"))
			},
			anyErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			result, err := repo.UpdateBalance(context.Background(), 1, decimal.RequireFromString("2047.63"), now)

			switch {
			case tt.expectErr != nil:
				assert.ErrorIs(t, err, tt.expectErr)
				assert.Nil(t, result)
			case tt.anyErr:
				assert.Error(t, err)
				assert.Nil(t, result)
			default:
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedBal, result.Balance.StringFixed(2))
				assert.Equal(t, now, result.LastUpdated)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
