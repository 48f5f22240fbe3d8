package accounts

//go:generate mockgen -source=accounts.go -destination=mock_service.go -package=accounts

import (
	"context"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/likhilliki/ATM-Simulator/internal/domain"
	"github.com/likhilliki/ATM-Simulator/internal/dto"
	"github.com/likhilliki/ATM-Simulator/pkg/auth"
	"github.com/likhilliki/ATM-Simulator/pkg/utils"
)

type Service interface {
	GetBalance(ctx context.Context, userID int) (*domain.Account, error)
	GetDetails(ctx context.Context, userID int) (*domain.AccountDetails, error)
}

type AccountsHandler struct {
	ledgerService Service
}

func New(ledgerService Service) *AccountsHandler {
	return &AccountsHandler{
		ledgerService: ledgerService,
	}
}

// GetBalance godoc
//
//	@Summary		Get account balance
//	@Description	Balance, available credit and withdrawal limit of the authenticated cardholder.
//	@Tags			Accounts
//	@Produce		json
//	@Success		200	{object}	dto.BalanceResponseDTO
//	@Failure		401	{object}	utils.Response	"Unauthorized"
//	@Failure		404	{object}	utils.Response	"Account not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/accounts/balance [get]
func (h *AccountsHandler) GetBalance(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	account, err := h.ledgerService.GetBalance(r.Context(), userID)
	if err != nil {
		respondWithLedgerError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewBalance(*account))
}

// GetDetails godoc
//
//	@Summary		Get account details
//	@Description	Balance fields plus the masked card number.
//	@Tags			Accounts
//	@Produce		json
//	@Success		200	{object}	dto.DetailsResponseDTO
//	@Failure		401	{object}	utils.Response	"Unauthorized"
//	@Failure		404	{object}	utils.Response	"Account not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/accounts/details [get]
func (h *AccountsHandler) GetDetails(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	details, err := h.ledgerService.GetDetails(r.Context(), userID)
	if err != nil {
		respondWithLedgerError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewDetails(*details))
}

func respondWithLedgerError(w http.ResponseWriter, err error) {
	if errors.Is(err, domain.ErrNotFound) {
		utils.RespondWithError(w, http.StatusNotFound, "Account not found")
		return
	}
	zap.L().Error("account lookup failed", zap.Error(err))
	utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
}
