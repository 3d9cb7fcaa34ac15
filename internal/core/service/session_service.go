package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/synchome/apartment-system/internal/core/domain"
	"github.com/synchome/apartment-system/internal/core/ports"
)

// SessionService mints and verifies HS256 session tokens. It never touches
// persistent storage: issuance embeds the login payload, verification is a
// signature plus clock check.
type SessionService struct {
	secret   string
	tokenTTL time.Duration
}

func NewSessionService(secret string, tokenTTL time.Duration) *SessionService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &SessionService{secret: secret, tokenTTL: tokenTTL}
}

func (s *SessionService) Issue(payload map[string]any) (string, error) {
	if email, _ := payload["email"].(string); email == "" {
		return "", domain.ErrMissingEmail
	}

	now := time.Now()
	claims := jwt.MapClaims{}
	for k, v := range payload {
		claims[k] = v
	}
	claims["iat"] = now.Unix()
	claims["exp"] = now.Add(s.tokenTTL).Unix()

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.secret))
}

// Verify collapses every failure mode into ErrUnauthorized: an expired or
// tampered token must be indistinguishable from an absent one.
func (s *SessionService) Verify(token string) (ports.Claims, error) {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return []byte(s.secret), nil
	})
	if err != nil || !tkn.Valid {
		return nil, domain.ErrUnauthorized
	}

	return ports.Claims(claims), nil
}
