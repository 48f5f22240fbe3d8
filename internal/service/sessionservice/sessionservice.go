package sessionservice

//go:generate mockgen -source=sessionservice.go -destination=mock_repo.go -package=sessionservice

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/likhilliki/ATM-Simulator/internal/domain"
	"github.com/likhilliki/ATM-Simulator/pkg/auth"
	"github.com/likhilliki/ATM-Simulator/pkg/validate"
)

type UserRepo interface {
	FindByCardNumber(ctx context.Context, cardNumber string) (*domain.User, error)
}

type SessionStore interface {
	Get(ctx context.Context, id string) (*domain.Session, error)
	Save(ctx context.Context, session *domain.Session) error
	// Touch overwrites the session only if it still exists and reports whether it did.
	Touch(ctx context.Context, session *domain.Session) (bool, error)
	Delete(ctx context.Context, id string) error
	DeleteExpired(ctx context.Context, cutoff time.Time) (int, error)
}

type Service struct {
	users    UserRepo
	sessions SessionStore
	pins     auth.HashServiceInterface
	ttl      time.Duration

	now   func() time.Time
	newID func() string
}

func New(users UserRepo, sessions SessionStore, pins auth.HashServiceInterface, ttl time.Duration) *Service {
	return &Service{
		users:    users,
		sessions: sessions,
		pins:     pins,
		ttl:      ttl,
		now:      time.Now,
		newID:    uuid.NewString,
	}
}

// VerifyCard binds a known card to a fresh session and returns its id. Any
// session previously held under sessionID, authenticated or not, is discarded.
func (s *Service) VerifyCard(ctx context.Context, sessionID, cardNumber string) (string, error) {
	card, err := validate.CardNumber(cardNumber)
	if err != nil {
		return "", err
	}

	user, err := s.users.FindByCardNumber(ctx, card)
	if err != nil {
		zap.L().Error("can't find card", zap.Error(err))
		return "", err
	}
	if user == nil {
		zap.L().Info("unknown card presented", zap.String("card", domain.MaskCardNumber(card)))
		return "", fmt.Errorf("%w: card not found", domain.ErrNotFound)
	}

	if sessionID != "" {
		if err := s.sessions.Delete(ctx, sessionID); err != nil {
			return "", err
		}
	}

	session := &domain.Session{
		ID:         s.newID(),
		CardNumber: card,
		LastActive: s.now(),
	}
	if err := s.sessions.Save(ctx, session); err != nil {
		zap.L().Error("can't save session", zap.Error(err))
		return "", err
	}
	zap.L().Info("card verified", zap.String("card", user.MaskedCardNumber()))
	return session.ID, nil
}

func (s *Service) VerifyPin(ctx context.Context, sessionID, pin string) error {
	session, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return err
	}
	now := s.now()
	if session == nil || session.CardNumber == "" {
		return domain.ErrNoCard
	}
	if session.Expired(now, s.ttl) {
		if err := s.sessions.Delete(ctx, session.ID); err != nil {
			return err
		}
		return domain.ErrNoCard
	}

	if err := validate.Pin(pin); err != nil {
		return err
	}

	user, err := s.users.FindByCardNumber(ctx, session.CardNumber)
	if err != nil {
		zap.L().Error("can't find user by card", zap.Error(err))
		return err
	}
	if user == nil {
		return fmt.Errorf("%w: user not found", domain.ErrNotFound)
	}
	if !s.pins.ComparePin(user.PinHash, pin) {
		zap.L().Info("invalid PIN", zap.String("card", user.MaskedCardNumber()))
		return fmt.Errorf("%w: invalid PIN", domain.ErrUnauthorized)
	}

	session.UserID = user.ID
	session.Authenticated = true
	session.LastActive = now
	if err := s.sessions.Save(ctx, session); err != nil {
		zap.L().Error("can't save session", zap.Error(err))
		return err
	}
	zap.L().Info("PIN verified", zap.Int("userID", user.ID))
	return nil
}

// RequireAuthenticated returns the user bound to an authenticated, unexpired
// session and slides its inactivity deadline to now + TTL.
func (s *Service) RequireAuthenticated(ctx context.Context, sessionID string) (int, error) {
	if sessionID == "" {
		return 0, domain.ErrUnauthorized
	}
	session, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return 0, err
	}
	if session == nil || !session.Authenticated {
		return 0, domain.ErrUnauthorized
	}

	now := s.now()
	if session.Expired(now, s.ttl) {
		zap.L().Info("session expired", zap.String("sessionID", sessionID))
		if err := s.sessions.Delete(ctx, sessionID); err != nil {
			return 0, err
		}
		return 0, domain.ErrUnauthorized
	}

	session.LastActive = now
	ok, err := s.sessions.Touch(ctx, session)
	if err != nil {
		zap.L().Error("can't refresh session", zap.Error(err))
		return 0, err
	}
	if !ok {
		zap.L().Info("session ended during request", zap.String("sessionID", sessionID))
		return 0, domain.ErrUnauthorized
	}
	return session.UserID, nil
}

func (s *Service) Refresh(ctx context.Context, sessionID string) error {
	_, err := s.RequireAuthenticated(ctx, sessionID)
	return err
}

func (s *Service) Logout(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}
	if err := s.sessions.Delete(ctx, sessionID); err != nil {
		zap.L().Error("can't delete session", zap.Error(err))
		return err
	}
	return nil
}

// Status reports the remaining inactivity window without touching it.
func (s *Service) Status(ctx context.Context, sessionID string) domain.SessionStatus {
	if sessionID == "" {
		return domain.SessionStatus{}
	}
	session, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		zap.L().Warn("can't read session status", zap.Error(err))
		return domain.SessionStatus{}
	}
	if session == nil || !session.Authenticated {
		return domain.SessionStatus{}
	}

	now := s.now()
	if session.Expired(now, s.ttl) {
		return domain.SessionStatus{}
	}
	remaining := s.ttl - now.Sub(session.LastActive)
	return domain.SessionStatus{
		Authenticated:    true,
		SecondsRemaining: int(remaining / time.Second),
	}
}

// Sweep reclaims sessions idle for longer than the TTL.
func (s *Service) Sweep(ctx context.Context) (int, error) {
	return s.sessions.DeleteExpired(ctx, s.now().Add(-s.ttl))
}
