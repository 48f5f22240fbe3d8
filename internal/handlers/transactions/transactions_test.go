package transactions

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/likhilliki/ATM-Simulator/internal/domain"
	"github.com/likhilliki/ATM-Simulator/internal/dto"
	"github.com/likhilliki/ATM-Simulator/pkg/auth"
	"github.com/likhilliki/ATM-Simulator/pkg/utils"
)

var posted = time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

func NewMock(t *testing.T) (*TransactionsHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	return New(service), service
}

func authed(method, target, body string) *http.Request {
	r := httptest.NewRequest(method, target, bytes.NewBufferString(body))
	return r.WithContext(context.WithValue(r.Context(), auth.UserIDKey, 1))
}

type decimalMatcher struct {
	want decimal.Decimal
}

func amountOf(s string) gomock.Matcher {
	return decimalMatcher{want: decimal.RequireFromString(s)}
}

func (m decimalMatcher) Matches(x any) bool {
	got, ok := x.(decimal.Decimal)
	return ok && got.Equal(m.want)
}

func (m decimalMatcher) String() string {
	return "equals " + m.want.String()
}

func receipt(kind domain.TransactionType, amount, balance string) *domain.Receipt {
	return &domain.Receipt{
		Transaction: domain.Transaction{
			ID:            5,
			AccountID:     1,
			Type:          kind,
			Amount:        decimal.RequireFromString(amount),
			Description:   "Cash Withdrawal",
			Timestamp:     posted,
			TransactionID: "TRX-12345678",
		},
		NewBalance: decimal.RequireFromString(balance),
	}
}

func TestGetHistoryHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		target       string
		prepareMock  func()
		expectedCode int
	}{
		{
			name:   "Default limit",
			target: "/api/transactions/history",
			prepareMock: func() {
				service.EXPECT().GetHistory(gomock.Any(), 1, 0).Return(&domain.History{
					Account: domain.Account{Balance: decimal.RequireFromString("2047.63"), AvailableCredit: decimal.NewFromInt(5000)},
					Transactions: []domain.Transaction{
						{ID: 5, Type: domain.TransactionWithdrawal, Amount: decimal.NewFromInt(-500), Timestamp: posted},
					},
				}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:   "Explicit limit",
			target: "/api/transactions/history?limit=3",
			prepareMock: func() {
				service.EXPECT().GetHistory(gomock.Any(), 1, 3).Return(&domain.History{}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "Bad limit",
			target:       "/api/transactions/history?limit=abc",
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "Zero limit",
			target:       "/api/transactions/history?limit=0",
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:   "No account",
			target: "/api/transactions/history",
			prepareMock: func() {
				service.EXPECT().GetHistory(gomock.Any(), 1, 0).Return(nil, domain.ErrNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name:   "Internal error",
			target: "/api/transactions/history",
			prepareMock: func() {
				service.EXPECT().GetHistory(gomock.Any(), 1, 0).Return(nil, errors.New("db error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			w := httptest.NewRecorder()
			handler.GetHistory(w, authed(http.MethodGet, tt.target, ""))
			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}

func TestGetHistoryHandler_Body(t *testing.T) {
	handler, service := NewMock(t)
	service.EXPECT().GetHistory(gomock.Any(), 1, 0).Return(&domain.History{
		Account: domain.Account{Balance: decimal.RequireFromString("2047.63"), AvailableCredit: decimal.NewFromInt(5000)},
		Transactions: []domain.Transaction{
			{ID: 5, Type: domain.TransactionWithdrawal, Amount: decimal.NewFromInt(-500), Description: "Cash Withdrawal", Timestamp: posted, TransactionID: "TRX-12345678"},
		},
	}, nil)

	w := httptest.NewRecorder()
	handler.GetHistory(w, authed(http.MethodGet, "/api/transactions/history", ""))

	var body dto.HistoryResponseDTO
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	assert.Equal(t, "2047.63", body.AccountDetails.Balance)
	assert.Equal(t, "5000.00", body.AccountDetails.AvailableCredit)
	require.Len(t, body.Transactions, 1)
	assert.Equal(t, "-500.00", body.Transactions[0].Amount)
	assert.Equal(t, "TRX-12345678", body.Transactions[0].TransactionID)
}

func TestWithdrawHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name            string
		body            string
		prepareMock     func()
		expectedCode    int
		expectedMessage string
	}{
		{
			name: "Successful withdrawal",
			body: `{"amount":500}`,
			prepareMock: func() {
				service.EXPECT().Withdraw(gomock.Any(), 1, amountOf("500")).
					Return(receipt(domain.TransactionWithdrawal, "-500", "2047.63"), nil)
			},
			expectedCode:    http.StatusOK,
			expectedMessage: "Withdrawal successful",
		},
		{
			name: "Amount as string",
			body: `{"amount":"40"}`,
			prepareMock: func() {
				service.EXPECT().Withdraw(gomock.Any(), 1, amountOf("40")).
					Return(receipt(domain.TransactionWithdrawal, "-40", "100"), nil)
			},
			expectedCode:    http.StatusOK,
			expectedMessage: "Withdrawal successful",
		},
		{
			name:            "Invalid request body",
			body:            `{"amount":invalid}`,
			prepareMock:     func() {},
			expectedCode:    http.StatusBadRequest,
			expectedMessage: invalidWithdrawalMessage,
		},
		{
			name: "Invalid amount",
			body: `{"amount":15}`,
			prepareMock: func() {
				service.EXPECT().Withdraw(gomock.Any(), 1, amountOf("15")).Return(nil, domain.ErrInvalidInput)
			},
			expectedCode:    http.StatusBadRequest,
			expectedMessage: invalidWithdrawalMessage,
		},
		{
			name: "Insufficient funds",
			body: `{"amount":20}`,
			prepareMock: func() {
				service.EXPECT().Withdraw(gomock.Any(), 1, amountOf("20")).Return(nil, domain.ErrInsufficientFunds)
			},
			expectedCode:    http.StatusBadRequest,
			expectedMessage: "Insufficient funds",
		},
		{
			name: "Limit exceeded",
			body: `{"amount":1000}`,
			prepareMock: func() {
				service.EXPECT().Withdraw(gomock.Any(), 1, amountOf("1000")).Return(nil, domain.ErrLimitExceeded)
			},
			expectedCode:    http.StatusBadRequest,
			expectedMessage: "Amount exceeds daily withdrawal limit",
		},
		{
			name: "No account",
			body: `{"amount":20}`,
			prepareMock: func() {
				service.EXPECT().Withdraw(gomock.Any(), 1, amountOf("20")).Return(nil, domain.ErrNotFound)
			},
			expectedCode:    http.StatusNotFound,
			expectedMessage: "Account not found",
		},
		{
			name: "Internal error",
			body: `{"amount":20}`,
			prepareMock: func() {
				service.EXPECT().Withdraw(gomock.Any(), 1, amountOf("20")).Return(nil, errors.New("db error"))
			},
			expectedCode:    http.StatusInternalServerError,
			expectedMessage: "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			w := httptest.NewRecorder()
			handler.Withdraw(w, authed(http.MethodPost, "/api/transactions/withdraw", tt.body))

			assert.Equal(t, tt.expectedCode, w.Code)
			var body utils.Response
			require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
			assert.Equal(t, tt.expectedMessage, body.Message)
		})
	}
}

func TestWithdrawHandler_Receipt(t *testing.T) {
	handler, service := NewMock(t)
	service.EXPECT().Withdraw(gomock.Any(), 1, amountOf("500")).
		Return(receipt(domain.TransactionWithdrawal, "-500", "2047.63"), nil)

	w := httptest.NewRecorder()
	handler.Withdraw(w, authed(http.MethodPost, "/api/transactions/withdraw", `{"amount":500}`))

	var body dto.ReceiptResponseDTO
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	assert.Equal(t, "2047.63", body.NewBalance)
	assert.Equal(t, "-500.00", body.Transaction.Amount)
	assert.Equal(t, "withdrawal", body.Transaction.Type)
	assert.Equal(t, "TRX-12345678", body.Transaction.TransactionID)
}

func TestDepositHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name            string
		body            string
		prepareMock     func()
		expectedCode    int
		expectedMessage string
	}{
		{
			name: "Successful deposit",
			body: `{"amount":12.34}`,
			prepareMock: func() {
				service.EXPECT().Deposit(gomock.Any(), 1, amountOf("12.34")).
					Return(receipt(domain.TransactionDeposit, "12.34", "2559.97"), nil)
			},
			expectedCode:    http.StatusOK,
			expectedMessage: "Deposit successful",
		},
		{
			name:            "Invalid request body",
			body:            `{`,
			prepareMock:     func() {},
			expectedCode:    http.StatusBadRequest,
			expectedMessage: invalidDepositMessage,
		},
		{
			name: "Over the limit",
			body: `{"amount":10000.01}`,
			prepareMock: func() {
				service.EXPECT().Deposit(gomock.Any(), 1, amountOf("10000.01")).Return(nil, domain.ErrInvalidInput)
			},
			expectedCode:    http.StatusBadRequest,
			expectedMessage: invalidDepositMessage,
		},
		{
			name: "No account",
			body: `{"amount":1}`,
			prepareMock: func() {
				service.EXPECT().Deposit(gomock.Any(), 1, amountOf("1")).Return(nil, domain.ErrNotFound)
			},
			expectedCode:    http.StatusNotFound,
			expectedMessage: "Account not found",
		},
		{
			name: "Internal error",
			body: `{"amount":1}`,
			prepareMock: func() {
				service.EXPECT().Deposit(gomock.Any(), 1, amountOf("1")).Return(nil, errors.New("db error"))
			},
			expectedCode:    http.StatusInternalServerError,
			expectedMessage: "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			w := httptest.NewRecorder()
			handler.Deposit(w, authed(http.MethodPost, "/api/transactions/deposit", tt.body))

			assert.Equal(t, tt.expectedCode, w.Code)
			var body utils.Response
			require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
			assert.Equal(t, tt.expectedMessage, body.Message)
		})
	}
}
