package handlers

//go:generate mockgen -source=handlers.go -destination=mock_handlers.go -package=handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/likhilliki/ATM-Simulator/docs"
	accountshandlers "github.com/likhilliki/ATM-Simulator/internal/handlers/accounts"
	authhandlers "github.com/likhilliki/ATM-Simulator/internal/handlers/auth"
	sessionhandlers "github.com/likhilliki/ATM-Simulator/internal/handlers/session"
	transactionshandlers "github.com/likhilliki/ATM-Simulator/internal/handlers/transactions"
	"github.com/likhilliki/ATM-Simulator/internal/service"
	"github.com/likhilliki/ATM-Simulator/pkg/auth"
)

type AuthHandler interface {
	VerifyCard(w http.ResponseWriter, r *http.Request)
	VerifyPin(w http.ResponseWriter, r *http.Request)
	Logout(w http.ResponseWriter, r *http.Request)
}

type SessionHandler interface {
	Status(w http.ResponseWriter, r *http.Request)
	Refresh(w http.ResponseWriter, r *http.Request)
}

type AccountsHandler interface {
	GetBalance(w http.ResponseWriter, r *http.Request)
	GetDetails(w http.ResponseWriter, r *http.Request)
}

type TransactionsHandler interface {
	GetHistory(w http.ResponseWriter, r *http.Request)
	Withdraw(w http.ResponseWriter, r *http.Request)
	Deposit(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler         AuthHandler
	SessionHandler      SessionHandler
	AccountsHandler     AccountsHandler
	TransactionsHandler TransactionsHandler

	gate func(http.Handler) http.Handler
}

func New(s *service.Services, cookies *auth.SessionCookie) *Handlers {
	return &Handlers{
		AuthHandler:         authhandlers.New(s.SessionService, cookies),
		SessionHandler:      sessionhandlers.New(s.SessionService, cookies),
		AccountsHandler:     accountshandlers.New(s.LedgerService),
		TransactionsHandler: transactionshandlers.New(s.LedgerService),
		gate:                auth.SessionMiddleware(s.SessionService, cookies),
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RequestID,
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/verify-card", h.AuthHandler.VerifyCard)
			r.Post("/verify-pin", h.AuthHandler.VerifyPin)
			r.Post("/logout", h.AuthHandler.Logout)
		})
		r.Route("/session", func(r chi.Router) {
			r.Get("/status", h.SessionHandler.Status)
			r.Post("/refresh", h.SessionHandler.Refresh)
		})

		r.Group(func(r chi.Router) {
			r.Use(h.gate)
			r.Route("/accounts", func(r chi.Router) {
				r.Get("/balance", h.AccountsHandler.GetBalance)
				r.Get("/details", h.AccountsHandler.GetDetails)
			})
			r.Route("/transactions", func(r chi.Router) {
				r.Get("/history", h.TransactionsHandler.GetHistory)
				r.Post("/withdraw", h.TransactionsHandler.Withdraw)
				r.Post("/deposit", h.TransactionsHandler.Deposit)
			})
		})
	})

	return r
}
