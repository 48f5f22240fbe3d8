package session

//go:generate mockgen -source=session.go -destination=mock_service.go -package=session

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
	Status(ctx context.Context, sessionID string) domain.SessionStatus
	Refresh(ctx context.Context, sessionID string) error
}

type SessionHandler struct {
	sessionService Service
	cookies        *auth.SessionCookie
}

func New(sessionService Service, cookies *auth.SessionCookie) *SessionHandler {
	return &SessionHandler{
		sessionService: sessionService,
		cookies:        cookies,
	}
}

// Status godoc
//
//	@Summary		Session countdown
//	@Description	Report whether the caller is authenticated and how many seconds of inactivity remain. Does not extend the session.
//	@Tags			Session
//	@Produce		json
//	@Success		200	{object}	dto.SessionStatusResponseDTO
//	@Router			/api/session/status [get]
func (h *SessionHandler) Status(w http.ResponseWriter, r *http.Request) {
	status := h.sessionService.Status(r.Context(), h.cookies.SessionID(r))
	utils.RespondWithJSON(w, http.StatusOK, dto.NewSessionStatus(status))
}

// Refresh godoc
//
//	@Summary		Keep the session alive
//	@Description	Reset the inactivity countdown of an authenticated session.
//	@Tags			Session
//	@Produce		json
//	@Success		200	{object}	dto.MessageResponseDTO
//	@Failure		401	{object}	utils.Response	"Unauthorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/session/refresh [post]
func (h *SessionHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	sessionID := h.cookies.SessionID(r)
	if err := h.sessionService.Refresh(r.Context(), sessionID); err != nil {
		if errors.Is(err, domain.ErrUnauthorized) {
			h.cookies.Clear(w)
			utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}
		zap.L().Error("can't refresh session", zap.Error(err))
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if err := h.cookies.Set(w, sessionID); err != nil {
		zap.L().Error("can't refresh session cookie", zap.Error(err))
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.MessageResponseDTO{Message: "Session refreshed"})
}
