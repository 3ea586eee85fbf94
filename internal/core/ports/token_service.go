package ports

import "github.com/roomdesk/booking-api/internal/core/domain"

// TokenClaims is the identity a verified token resolves to.
type TokenClaims struct {
	SubjectID string
	Username  string
	Role      string
}

// TokenService mints and verifies signed bearer tokens. Verify is a pure
// function of the token string and the signing secret; it performs no I/O.
type TokenService interface {
	Issue(user *domain.User) (string, error)
	Verify(raw string) (TokenClaims, error)
}
