package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/roomdesk/booking-api/internal/core/domain"
	"github.com/roomdesk/booking-api/internal/core/ports"
)

const defaultTokenTTL = 30 * 24 * time.Hour

// TokenService mints and verifies HS256 JWTs. The signing secret is fixed
// for the process lifetime; rotating it invalidates every outstanding token.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenService(secret string, ttl time.Duration) *TokenService {
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	return &TokenService{secret: []byte(secret), ttl: ttl}
}

// Issue signs a token carrying the subject id, username, and role.
// Expiry is always set; a non-expiring token is treated as a bug.
func (s *TokenService) Issue(user *domain.User) (string, error) {
	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"sub":      user.ID,
		"username": user.Username,
		"role":     user.Role,
		"iat":      now.Unix(),
		"exp":      now.Add(s.ttl).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(s.secret)
}

// Verify decodes and checks a token against the current secret. It is pure:
// no I/O, no clock state beyond the expiry comparison. Tokens without an
// exp claim are rejected as malformed.
func (s *TokenService) Verify(raw string) (ports.TokenClaims, error) {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(raw, claims, func(token *jwt.Token) (interface{}, error) {
		if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	}, jwt.WithExpirationRequired())
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return ports.TokenClaims{}, domain.ErrTokenExpired
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return ports.TokenClaims{}, domain.ErrTokenSignatureInvalid
		default:
			return ports.TokenClaims{}, domain.ErrTokenMalformed
		}
	}
	if !tkn.Valid {
		return ports.TokenClaims{}, domain.ErrTokenSignatureInvalid
	}

	sub, _ := claims["sub"].(string)
	if sub == "" {
		return ports.TokenClaims{}, domain.ErrTokenMalformed
	}
	username, _ := claims["username"].(string)
	role, _ := claims["role"].(string)

	return ports.TokenClaims{SubjectID: sub, Username: username, Role: role}, nil
}
