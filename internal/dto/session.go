package dto

import "github.com/likhilliki/ATM-Simulator/internal/domain"

type SessionStatusResponseDTO struct {
	Authenticated bool `json:"authenticated" example:"true"`
	TimeRemaining int  `json:"timeRemaining" example:"87"`
}

func NewSessionStatus(status domain.SessionStatus) SessionStatusResponseDTO {
	return SessionStatusResponseDTO{
		Authenticated: status.Authenticated,
		TimeRemaining: status.SecondsRemaining,
	}
}
