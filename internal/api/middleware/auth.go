package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/roomdesk/booking-api/internal/api/metrics"
	"github.com/roomdesk/booking-api/internal/core/domain"
	"github.com/roomdesk/booking-api/internal/core/ports"
)

// Auth extracts the bearer token, verifies it, and resolves it to an
// identity stored in the echo context (user_id, username, role).
//
// When users is non-nil the subject is re-fetched from the credential
// store, so deleting an account revokes its outstanding tokens on the next
// request. Passing a nil repository trusts the embedded claims instead and
// skips the store round-trip; deleted users are then served until expiry.
func Auth(tokens ports.TokenService, users ports.UserRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				metrics.AuthFailuresTotal.WithLabelValues("missing_header").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			// Bare tokens are rejected, not normalized.
			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				metrics.AuthFailuresTotal.WithLabelValues("invalid_header").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			claims, err := tokens.Verify(parts[1])
			if err != nil {
				switch {
				case errors.Is(err, domain.ErrTokenExpired):
					metrics.AuthFailuresTotal.WithLabelValues("expired").Inc()
					return echo.NewHTTPError(http.StatusUnauthorized, "token expired")
				case errors.Is(err, domain.ErrTokenSignatureInvalid):
					metrics.AuthFailuresTotal.WithLabelValues("bad_signature").Inc()
					return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
				default:
					metrics.AuthFailuresTotal.WithLabelValues("malformed").Inc()
					return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
				}
			}

			username := claims.Username
			role := claims.Role

			if users != nil {
				// The only blocking step in the pipeline. It must complete
				// before RBAC runs so a request never carries a
				// partially-resolved identity.
				user, err := users.FindByID(c.Request().Context(), claims.SubjectID)
				if err != nil {
					if errors.Is(err, domain.ErrUserNotFound) || errors.Is(err, domain.ErrInvalidID) {
						metrics.AuthFailuresTotal.WithLabelValues("unknown_subject").Inc()
						return echo.NewHTTPError(http.StatusUnauthorized, "unknown subject")
					}
					return err
				}
				// The store is authoritative over stale token claims.
				username = user.Username
				role = user.Role
			}

			c.Set("user_id", claims.SubjectID)
			c.Set("username", username)
			c.Set("role", role)

			return next(c)
		}
	}
}
