package sessionservice

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"github.com/likhilliki/ATM-Simulator/internal/domain"
	sessionrepo "github.com/likhilliki/ATM-Simulator/internal/repo/session-repo"
	"github.com/likhilliki/ATM-Simulator/pkg/auth"
)

const (
	demoCard = "4111111111111234"
	ttl      = 120 * time.Second
)

type clock struct {
	now time.Time
}

func (c *clock) Now() time.Time { return c.now }

func (c *clock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func demoUser(t *testing.T) *domain.User {
	t.Helper()
	hashes := &auth.HashService{Cost: bcrypt.MinCost}
	hash, err := hashes.HashPin("1234")
	require.NoError(t, err)
	return &domain.User{ID: 1, Username: "demo_user", PinHash: hash, CardNumber: demoCard}
}

// NewMock wires the service to a mocked user repo and a real in-memory session store.
func NewMock(t *testing.T) (*Service, *MockUserRepo, *sessionrepo.MemoryStore, *clock) {
	ctrl := gomock.NewController(t)
	users := NewMockUserRepo(ctrl)
	store := sessionrepo.NewMemoryStore()
	c := &clock{now: time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)}

	service := New(users, store, &auth.HashService{Cost: bcrypt.MinCost}, ttl)
	service.now = c.Now
	ids := 0
	service.newID = func() string {
		ids++
		return fmt.Sprintf("sid-%d", ids)
	}
	return service, users, store, c
}

func login(t *testing.T, service *Service, users *MockUserRepo) string {
	t.Helper()
	user := demoUser(t)
	users.EXPECT().FindByCardNumber(gomock.Any(), demoCard).Return(user, nil).Times(2)

	sid, err := service.VerifyCard(context.Background(), "", demoCard)
	require.NoError(t, err)
	require.NoError(t, service.VerifyPin(context.Background(), sid, "1234"))
	return sid
}

func TestVerifyCard(t *testing.T) {
	tests := []struct {
		name        string
		card        string
		prepareMock func(users *MockUserRepo)
		expectedErr error
	}{
		{
			name:        "Empty card",
			card:        "",
			expectedErr: domain.ErrInvalidInput,
		},
		{
			name: "Unknown card",
			card: "4000 0000 0000 0000",
			prepareMock: func(users *MockUserRepo) {
				users.EXPECT().FindByCardNumber(gomock.Any(), "4000000000000000").Return(nil, nil)
			},
			expectedErr: domain.ErrNotFound,
		},
		{
			name: "Repository failure",
			card: demoCard,
			prepareMock: func(users *MockUserRepo) {
				users.EXPECT().FindByCardNumber(gomock.Any(), demoCard).Return(nil, errors.New("db error"))
			},
			expectedErr: errors.New("db error"),
		},
		{
			name: "Known card",
			card: "4111-1111-1111-1234",
			prepareMock: func(users *MockUserRepo) {
				users.EXPECT().FindByCardNumber(gomock.Any(), demoCard).Return(&domain.User{ID: 1, CardNumber: demoCard}, nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, users, store, _ := NewMock(t)
			if tt.prepareMock != nil {
				tt.prepareMock(users)
			}

			sid, err := service.VerifyCard(context.Background(), "", tt.card)
			if tt.expectedErr != nil {
				assert.Error(t, err)
				if errors.Is(tt.expectedErr, domain.ErrInvalidInput) || errors.Is(tt.expectedErr, domain.ErrNotFound) {
					assert.ErrorIs(t, err, tt.expectedErr)
				} else {
					assert.Equal(t, tt.expectedErr.Error(), err.Error())
				}
				assert.Empty(t, sid)
				return
			}
			assert.NoError(t, err)
			session, _ := store.Get(context.Background(), sid)
			require.NotNil(t, session)
			assert.Equal(t, demoCard, session.CardNumber)
			assert.False(t, session.Authenticated)
		})
	}
}

func TestVerifyCard_ResetsAuthentication(t *testing.T) {
	service, users, store, _ := NewMock(t)
	sid := login(t, service, users)

	users.EXPECT().FindByCardNumber(gomock.Any(), demoCard).Return(demoUser(t), nil)
	newSid, err := service.VerifyCard(context.Background(), sid, demoCard)
	require.NoError(t, err)
	assert.NotEqual(t, sid, newSid)

	old, _ := store.Get(context.Background(), sid)
	assert.Nil(t, old)

	_, err = service.RequireAuthenticated(context.Background(), newSid)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestVerifyPin(t *testing.T) {
	ctx := context.Background()

	t.Run("No card inserted", func(t *testing.T) {
		service, _, _, _ := NewMock(t)
		err := service.VerifyPin(ctx, "unknown", "1234")
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
		assert.Contains(t, err.Error(), "no card inserted")
	})

	t.Run("Bad PIN format", func(t *testing.T) {
		service, users, _, _ := NewMock(t)
		users.EXPECT().FindByCardNumber(gomock.Any(), demoCard).Return(demoUser(t), nil)
		sid, err := service.VerifyCard(ctx, "", demoCard)
		require.NoError(t, err)

		assert.ErrorIs(t, service.VerifyPin(ctx, sid, "12a4"), domain.ErrInvalidInput)
	})

	t.Run("User vanished", func(t *testing.T) {
		service, users, _, _ := NewMock(t)
		users.EXPECT().FindByCardNumber(gomock.Any(), demoCard).Return(demoUser(t), nil)
		sid, err := service.VerifyCard(ctx, "", demoCard)
		require.NoError(t, err)

		users.EXPECT().FindByCardNumber(gomock.Any(), demoCard).Return(nil, nil)
		assert.ErrorIs(t, service.VerifyPin(ctx, sid, "1234"), domain.ErrNotFound)
	})

	t.Run("Card presented too long ago", func(t *testing.T) {
		service, users, store, c := NewMock(t)
		users.EXPECT().FindByCardNumber(gomock.Any(), demoCard).Return(demoUser(t), nil)
		sid, err := service.VerifyCard(ctx, "", demoCard)
		require.NoError(t, err)

		c.Advance(ttl + time.Second)
		assert.ErrorIs(t, service.VerifyPin(ctx, sid, "1234"), domain.ErrInvalidInput)
		session, _ := store.Get(ctx, sid)
		assert.Nil(t, session)
	})

	t.Run("Three wrong PINs then the right one", func(t *testing.T) {
		service, users, store, _ := NewMock(t)
		user := demoUser(t)
		users.EXPECT().FindByCardNumber(gomock.Any(), demoCard).Return(user, nil).Times(5)
		sid, err := service.VerifyCard(ctx, "", demoCard)
		require.NoError(t, err)

		for _, pin := range []string{"0000", "1111", "9999"} {
			assert.ErrorIs(t, service.VerifyPin(ctx, sid, pin), domain.ErrUnauthorized)
			session, _ := store.Get(ctx, sid)
			require.NotNil(t, session)
			assert.False(t, session.Authenticated)
		}

		require.NoError(t, service.VerifyPin(ctx, sid, "1234"))
		userID, err := service.RequireAuthenticated(ctx, sid)
		assert.NoError(t, err)
		assert.Equal(t, user.ID, userID)
	})
}

func TestRequireAuthenticated_Expiry(t *testing.T) {
	ctx := context.Background()
	service, users, store, c := NewMock(t)
	sid := login(t, service, users)

	c.Advance(ttl - time.Second)
	_, err := service.RequireAuthenticated(ctx, sid)
	require.NoError(t, err)

	c.Advance(ttl - time.Second)
	_, err = service.RequireAuthenticated(ctx, sid)
	require.NoError(t, err, "activity slides the deadline")

	c.Advance(ttl + time.Second)
	_, err = service.RequireAuthenticated(ctx, sid)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	session, _ := store.Get(ctx, sid)
	assert.Nil(t, session)
	assert.Equal(t, domain.SessionStatus{}, service.Status(ctx, sid))
}

func TestRequireAuthenticated_ExactlyTTL(t *testing.T) {
	ctx := context.Background()
	service, users, _, c := NewMock(t)
	sid := login(t, service, users)

	c.Advance(ttl)
	assert.Equal(t, domain.SessionStatus{Authenticated: true, SecondsRemaining: 0}, service.Status(ctx, sid))
	_, err := service.RequireAuthenticated(ctx, sid)
	require.NoError(t, err)
	assert.Equal(t, 120, service.Status(ctx, sid).SecondsRemaining)
}

func TestRequireAuthenticated_Anonymous(t *testing.T) {
	service, _, _, _ := NewMock(t)

	_, err := service.RequireAuthenticated(context.Background(), "")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
	_, err = service.RequireAuthenticated(context.Background(), "nope")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
	assert.ErrorIs(t, service.Refresh(context.Background(), "nope"), domain.ErrUnauthorized)
}

func TestStatus_Countdown(t *testing.T) {
	ctx := context.Background()
	service, users, _, c := NewMock(t)
	sid := login(t, service, users)

	previous := service.Status(ctx, sid)
	assert.Equal(t, domain.SessionStatus{Authenticated: true, SecondsRemaining: 120}, previous)

	for i := 0; i < 130; i++ {
		c.Advance(time.Second)
		status := service.Status(ctx, sid)
		assert.LessOrEqual(t, status.SecondsRemaining, previous.SecondsRemaining)
		assert.GreaterOrEqual(t, status.SecondsRemaining, 0)
		previous = status
	}
	assert.False(t, previous.Authenticated)
}

func TestStatus_RefreshResetsWindow(t *testing.T) {
	ctx := context.Background()
	service, users, _, c := NewMock(t)
	sid := login(t, service, users)

	c.Advance(90 * time.Second)
	assert.Equal(t, 30, service.Status(ctx, sid).SecondsRemaining)

	require.NoError(t, service.Refresh(ctx, sid))
	assert.Equal(t, 120, service.Status(ctx, sid).SecondsRemaining)
}

func TestStatus_StoreFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := NewMockSessionStore(ctrl)
	service := New(NewMockUserRepo(ctrl), store, &auth.HashService{}, ttl)

	store.EXPECT().Get(gomock.Any(), "sid").Return(nil, errors.New("redis down"))
	assert.Equal(t, domain.SessionStatus{}, service.Status(context.Background(), "sid"))
}

func TestLogout(t *testing.T) {
	ctx := context.Background()
	service, users, _, _ := NewMock(t)
	sid := login(t, service, users)

	require.NoError(t, service.Logout(ctx, sid))
	require.NoError(t, service.Logout(ctx, sid))
	require.NoError(t, service.Logout(ctx, ""))

	_, err := service.RequireAuthenticated(ctx, sid)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
	assert.False(t, service.Status(ctx, sid).Authenticated)
}

// logoutDuringRequest ends the session right after it has been read,
// as a logout racing an in-flight gated request would.
type logoutDuringRequest struct {
	*sessionrepo.MemoryStore
}

func (s logoutDuringRequest) Get(ctx context.Context, id string) (*domain.Session, error) {
	session, err := s.MemoryStore.Get(ctx, id)
	if err == nil && session != nil {
		_ = s.MemoryStore.Delete(ctx, id)
	}
	return session, err
}

func TestRequireAuthenticated_LogoutMidRequest(t *testing.T) {
	ctx := context.Background()
	service, users, store, _ := NewMock(t)
	sid := login(t, service, users)

	service.sessions = logoutDuringRequest{store}
	_, err := service.RequireAuthenticated(ctx, sid)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	session, err := store.Get(ctx, sid)
	require.NoError(t, err)
	assert.Nil(t, session, "a finished request must not resurrect a deleted session")
}

func TestRequireAuthenticated_TouchFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := NewMockSessionStore(ctrl)
	service := New(NewMockUserRepo(ctrl), store, &auth.HashService{}, ttl)

	store.EXPECT().Get(gomock.Any(), "sid").Return(&domain.Session{ID: "sid", UserID: 1, Authenticated: true, LastActive: time.Now()}, nil)
	store.EXPECT().Touch(gomock.Any(), gomock.Any()).Return(false, errors.New("redis down"))

	_, err := service.RequireAuthenticated(context.Background(), "sid")
	assert.EqualError(t, err, "redis down")
}

func TestSweep(t *testing.T) {
	ctx := context.Background()
	service, users, store, c := NewMock(t)
	sid := login(t, service, users)

	removed, err := service.Sweep(ctx)
	require.NoError(t, err)
	assert.Zero(t, removed)

	c.Advance(ttl)
	removed, err = service.Sweep(ctx)
	require.NoError(t, err)
	assert.Zero(t, removed, "idle for exactly the TTL is still live")

	c.Advance(time.Second)
	removed, err = service.Sweep(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, removed)

	session, _ := store.Get(ctx, sid)
	assert.Nil(t, session)
}
