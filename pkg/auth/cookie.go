package auth

import (
	"net/http"
	"time"

	"go.uber.org/zap"
)

const SessionCookieName = "atm.sid"

type SessionCookie struct {
	tokens TokenServiceInterface
	ttl    time.Duration
	secure bool
}

func NewSessionCookie(tokens TokenServiceInterface, ttl time.Duration, secure bool) *SessionCookie {
	return &SessionCookie{
		tokens: tokens,
		ttl:    ttl,
		secure: secure,
	}
}

// SessionID returns the session id carried by the request cookie, or "" when
// the cookie is missing or was not signed by us.
func (c *SessionCookie) SessionID(r *http.Request) string {
	cookie, err := r.Cookie(SessionCookieName)
	if err != nil || cookie.Value == "" {
		return ""
	}
	sessionID, err := c.tokens.Parse(cookie.Value)
	if err != nil {
		zap.L().Debug("rejected session cookie", zap.Error(err))
		return ""
	}
	return sessionID
}

func (c *SessionCookie) Set(w http.ResponseWriter, sessionID string) error {
	token, err := c.tokens.Sign(sessionID)
	if err != nil {
		return err
	}
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(c.ttl / time.Second),
		Expires:  time.Now().Add(c.ttl),
		HttpOnly: true,
		Secure:   c.secure,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

func (c *SessionCookie) Clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
		Secure:   c.secure,
		SameSite: http.SameSiteLaxMode,
	})
}
