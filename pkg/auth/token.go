package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt"
)

const issuer = "atm-simulator"

type TokenServiceInterface interface {
	Sign(sessionID string) (string, error)
	Parse(token string) (string, error)
}

// SessionClaims wraps the opaque session id. Expiry is tracked server-side,
// so the token itself carries no exp claim.
type SessionClaims struct {
	SessionID string `json:"sid"`
	jwt.StandardClaims
}

type TokenService struct {
	secret []byte
}

func NewTokenService(secret string) *TokenService {
	return &TokenService{secret: []byte(secret)}
}

func (s *TokenService) Sign(sessionID string) (string, error) {
	if sessionID == "" {
		return "", errors.New("session id cannot be empty")
	}
	claims := SessionClaims{
		SessionID: sessionID,
		StandardClaims: jwt.StandardClaims{
			IssuedAt: time.Now().Unix(),
			Issuer:   issuer,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

func (s *TokenService) Parse(tokenString string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return "", errors.New("invalid token")
	}
	claims, ok := token.Claims.(*SessionClaims)
	if !ok || claims.SessionID == "" || claims.Issuer != issuer {
		return "", errors.New("invalid token claims")
	}

	return claims.SessionID, nil
}
