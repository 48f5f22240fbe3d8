package service

import (
	"context"
	"time"

	accountshandlers "github.com/likhilliki/ATM-Simulator/internal/handlers/accounts"
	authhandlers "github.com/likhilliki/ATM-Simulator/internal/handlers/auth"
	sessionhandlers "github.com/likhilliki/ATM-Simulator/internal/handlers/session"
	transactionshandlers "github.com/likhilliki/ATM-Simulator/internal/handlers/transactions"
	"github.com/likhilliki/ATM-Simulator/internal/repo"
	"github.com/likhilliki/ATM-Simulator/internal/service/ledgerservice"
	"github.com/likhilliki/ATM-Simulator/internal/service/sessionservice"
	pkgauth "github.com/likhilliki/ATM-Simulator/pkg/auth"
)

// SessionService is everything the HTTP layer and the sweeper need from the session guard.
type SessionService interface {
	authhandlers.Service
	sessionhandlers.Service
	pkgauth.Gatekeeper
	Sweep(ctx context.Context) (int, error)
}

type LedgerService interface {
	accountshandlers.Service
	transactionshandlers.Service
}

type Services struct {
	SessionService SessionService
	LedgerService  LedgerService
}

func New(repos *repo.Repositories, sessions sessionservice.SessionStore, pins pkgauth.HashServiceInterface, ttl time.Duration) *Services {
	return &Services{
		SessionService: sessionservice.New(repos.UserRepo, sessions, pins, ttl),
		LedgerService:  ledgerservice.New(repos.UserRepo, repos.AccountRepo, repos.TransactionRepo, repos.TxManager),
	}
}
