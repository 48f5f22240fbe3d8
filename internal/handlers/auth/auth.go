package auth

//go:generate mockgen -source=auth.go -destination=mock_service.go -package=auth

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/likhilliki/ATM-Simulator/internal/domain"
	"github.com/likhilliki/ATM-Simulator/internal/dto"
	pkgauth "github.com/likhilliki/ATM-Simulator/pkg/auth"
	"github.com/likhilliki/ATM-Simulator/pkg/utils"
)

type Service interface {
	VerifyCard(ctx context.Context, sessionID, cardNumber string) (string, error)
	VerifyPin(ctx context.Context, sessionID, pin string) error
	Logout(ctx context.Context, sessionID string) error
}

type AuthHandler struct {
	sessionService Service
	cookies        *pkgauth.SessionCookie
}

func New(sessionService Service, cookies *pkgauth.SessionCookie) *AuthHandler {
	return &AuthHandler{
		sessionService: sessionService,
		cookies:        cookies,
	}
}

// VerifyCard godoc
//
//	@Summary		Insert a card
//	@Description	Start a new session for a known card number. The session cookie is (re)issued.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.VerifyCardRequestDTO	true	"Card number"
//	@Success		200		{object}	dto.MessageResponseDTO
//	@Failure		400		{object}	utils.Response	"Card number is required"
//	@Failure		404		{object}	utils.Response	"Card not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/auth/verify-card [post]
func (h *AuthHandler) VerifyCard(w http.ResponseWriter, r *http.Request) {
	var req dto.VerifyCardRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.CardNumber == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Card number is required")
		return
	}

	sessionID, err := h.sessionService.VerifyCard(r.Context(), h.cookies.SessionID(r), req.CardNumber)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			utils.RespondWithError(w, http.StatusBadRequest, "Card number is required")
		case errors.Is(err, domain.ErrNotFound):
			utils.RespondWithError(w, http.StatusNotFound, "Card not found")
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	if err := h.cookies.Set(w, sessionID); err != nil {
		zap.L().Error("can't issue session cookie", zap.Error(err))
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.MessageResponseDTO{Message: "Card verified"})
}

// VerifyPin godoc
//
//	@Summary		Enter the PIN
//	@Description	Authenticate the session started by verify-card. Wrong PINs may be retried.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.VerifyPinRequestDTO	true	"Four digit PIN"
//	@Success		200		{object}	dto.MessageResponseDTO
//	@Failure		400		{object}	utils.Response	"No card inserted or invalid PIN format"
//	@Failure		401		{object}	utils.Response	"Invalid PIN"
//	@Failure		404		{object}	utils.Response	"User not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/auth/verify-pin [post]
func (h *AuthHandler) VerifyPin(w http.ResponseWriter, r *http.Request) {
	sessionID := h.cookies.SessionID(r)

	var req dto.VerifyPinRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid PIN format")
		return
	}

	err := h.sessionService.VerifyPin(r.Context(), sessionID, req.Pin)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNoCard):
			utils.RespondWithError(w, http.StatusBadRequest, "No card inserted")
		case errors.Is(err, domain.ErrInvalidInput):
			utils.RespondWithError(w, http.StatusBadRequest, "Invalid PIN format")
		case errors.Is(err, domain.ErrUnauthorized):
			utils.RespondWithError(w, http.StatusUnauthorized, "Invalid PIN")
		case errors.Is(err, domain.ErrNotFound):
			utils.RespondWithError(w, http.StatusNotFound, "User not found")
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	if err := h.cookies.Set(w, sessionID); err != nil {
		zap.L().Error("can't refresh session cookie", zap.Error(err))
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.MessageResponseDTO{Message: "PIN verified"})
}

// Logout godoc
//
//	@Summary		End the session
//	@Description	Forget the session and clear the cookie. Always succeeds.
//	@Tags			Auth
//	@Produce		json
//	@Success		200	{object}	dto.MessageResponseDTO
//	@Router			/api/auth/logout [post]
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.sessionService.Logout(r.Context(), h.cookies.SessionID(r)); err != nil {
		zap.L().Warn("logout failed, clearing cookie anyway", zap.Error(err))
	}
	h.cookies.Clear(w)
	utils.RespondWithJSON(w, http.StatusOK, dto.MessageResponseDTO{Message: "Logged out successfully"})
}

