package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/hobbyhub/community-platform/internal/api/metrics"
	"github.com/hobbyhub/community-platform/internal/core/domain"
	"github.com/hobbyhub/community-platform/internal/core/ports"
)

// principalKey is the context key the authenticated principal is stored under.
const principalKey = "principal"

// Auth extracts the bearer token, verifies it, resolves the current
// principal record and injects it into the request context. The principal
// is re-fetched on every request — role and moderated-set must never be a
// stale snapshot from token-issuance time.
func Auth(auth ports.AuthService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				metrics.AuthFailuresTotal.WithLabelValues("missing_header").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				metrics.AuthFailuresTotal.WithLabelValues("bad_header").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			principal, err := auth.Authenticate(c.Request().Context(), parts[1])
			if err != nil {
				if reason, ok := failureReason(err); ok {
					metrics.AuthFailuresTotal.WithLabelValues(reason).Inc()
					// One message for every kind; the kinds stay
					// distinguishable in metrics and logs only.
					return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
				}
				// Storage failure, not an authentication decision.
				return err
			}

			c.Set(principalKey, principal)
			return next(c)
		}
	}
}

func failureReason(err error) (string, bool) {
	switch {
	case errors.Is(err, domain.ErrTokenSignature):
		return "signature", true
	case errors.Is(err, domain.ErrTokenMalformed):
		return "malformed", true
	case errors.Is(err, domain.ErrTokenExpired):
		return "expired", true
	case errors.Is(err, domain.ErrInvalidCredentials):
		return "unknown_subject", true
	}
	return "", false
}

// Principal returns the authenticated principal injected by Auth.
func Principal(c echo.Context) (*domain.User, error) {
	principal, _ := c.Get(principalKey).(*domain.User)
	if principal == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return principal, nil
}
