package transactions

//go:generate mockgen -source=transactions.go -destination=mock_service.go -package=transactions

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/likhilliki/ATM-Simulator/internal/domain"
	"github.com/likhilliki/ATM-Simulator/internal/dto"
	"github.com/likhilliki/ATM-Simulator/pkg/auth"
	"github.com/likhilliki/ATM-Simulator/pkg/utils"
)

const (
	invalidWithdrawalMessage = "Invalid amount. Amount must be positive, in multiples of $20, and maximum $1000."
	invalidDepositMessage    = "Invalid amount. Amount must be positive and maximum $10,000."
)

type Service interface {
	GetHistory(ctx context.Context, userID int, limit int) (*domain.History, error)
	Withdraw(ctx context.Context, userID int, amount decimal.Decimal) (*domain.Receipt, error)
	Deposit(ctx context.Context, userID int, amount decimal.Decimal) (*domain.Receipt, error)
}

type TransactionsHandler struct {
	ledgerService Service
}

func New(ledgerService Service) *TransactionsHandler {
	return &TransactionsHandler{
		ledgerService: ledgerService,
	}
}

// GetHistory godoc
//
//	@Summary		Recent transactions
//	@Description	Most recent transactions first, with the current balance and available credit.
//	@Tags			Transactions
//	@Produce		json
//	@Param			limit	query		int	false	"Rows to return (default 10, max 100)"
//	@Success		200		{object}	dto.HistoryResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid limit"
//	@Failure		401		{object}	utils.Response	"Unauthorized"
//	@Failure		404		{object}	utils.Response	"Account not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/transactions/history [get]
func (h *TransactionsHandler) GetHistory(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			utils.RespondWithError(w, http.StatusBadRequest, "Invalid limit")
			return
		}
		limit = n
	}

	history, err := h.ledgerService.GetHistory(r.Context(), userID, limit)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, "Account not found")
			return
		}
		zap.L().Error("history lookup failed", zap.Error(err))
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewHistory(*history))
}

// Withdraw godoc
//
//	@Summary		Withdraw cash
//	@Description	Debit a positive multiple of $20, at most $1000, within balance and withdrawal limit.
//	@Tags			Transactions
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.AmountRequestDTO	true	"Amount"
//	@Success		200		{object}	dto.ReceiptResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid amount, insufficient funds or limit exceeded"
//	@Failure		401		{object}	utils.Response	"Unauthorized"
//	@Failure		404		{object}	utils.Response	"Account not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/transactions/withdraw [post]
func (h *TransactionsHandler) Withdraw(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.AmountRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, invalidWithdrawalMessage)
		return
	}

	receipt, err := h.ledgerService.Withdraw(r.Context(), userID, req.Amount)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			utils.RespondWithError(w, http.StatusBadRequest, invalidWithdrawalMessage)
		case errors.Is(err, domain.ErrInsufficientFunds):
			utils.RespondWithError(w, http.StatusBadRequest, "Insufficient funds")
		case errors.Is(err, domain.ErrLimitExceeded):
			utils.RespondWithError(w, http.StatusBadRequest, "Amount exceeds daily withdrawal limit")
		case errors.Is(err, domain.ErrNotFound):
			utils.RespondWithError(w, http.StatusNotFound, "Account not found")
		default:
			zap.L().Error("withdrawal failed", zap.Error(err))
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewReceipt("Withdrawal successful", *receipt))
}

// Deposit godoc
//
//	@Summary		Deposit cash
//	@Description	Credit a positive amount of at most $10000 in cent steps.
//	@Tags			Transactions
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.AmountRequestDTO	true	"Amount"
//	@Success		200		{object}	dto.ReceiptResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid amount"
//	@Failure		401		{object}	utils.Response	"Unauthorized"
//	@Failure		404		{object}	utils.Response	"Account not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/transactions/deposit [post]
func (h *TransactionsHandler) Deposit(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.AmountRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, invalidDepositMessage)
		return
	}

	receipt, err := h.ledgerService.Deposit(r.Context(), userID, req.Amount)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			utils.RespondWithError(w, http.StatusBadRequest, invalidDepositMessage)
		case errors.Is(err, domain.ErrNotFound):
			utils.RespondWithError(w, http.StatusNotFound, "Account not found")
		default:
			zap.L().Error("deposit failed", zap.Error(err))
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewReceipt("Deposit successful", *receipt))
}
