package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"legalconnect/internal/entity"
	"legalconnect/internal/service"
	"legalconnect/internal/utils"

	"github.com/labstack/echo/v4"
)

// AccountLoader rehydrates an account from a verified {id, role} pair.
type AccountLoader interface {
	LoadByRef(ctx context.Context, ref entity.AccountRef) (entity.Account, error)
}

// AuthMiddleware is the per-request gate: extract the bearer token,
// verify signature and expiry, load the account from the collection the
// role names, then attach it to the context. Every failure short-circuits
// with a specific reason.
type AuthMiddleware struct {
	JWT      *utils.JWTManager
	Accounts AccountLoader
}

func (m AuthMiddleware) RequireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token := extractBearerToken(c.Request())
		if token == "" {
			return echo.NewHTTPError(http.StatusUnauthorized, "Not authorized, no token provided")
		}

		ref, err := m.JWT.Parse(token)
		if err != nil {
			switch {
			case errors.Is(err, utils.ErrTokenExpired):
				return echo.NewHTTPError(http.StatusUnauthorized, "Not authorized, token expired")
			case errors.Is(err, utils.ErrTokenMalformed):
				return echo.NewHTTPError(http.StatusUnauthorized, "Not authorized, token malformed")
			default:
				return echo.NewHTTPError(http.StatusUnauthorized, "Not authorized, invalid token")
			}
		}

		account, err := m.Accounts.LoadByRef(c.Request().Context(), ref)
		if err != nil {
			switch {
			case errors.Is(err, service.ErrUnknownRole):
				return echo.NewHTTPError(http.StatusUnauthorized, "Not authorized, unknown role in token")
			case errors.Is(err, service.ErrAccountNotFound):
				return echo.NewHTTPError(http.StatusUnauthorized, "Not authorized, user/lawyer not found")
			default:
				return err
			}
		}

		SetAccount(c, account)
		return next(c)
	}
}

func extractBearerToken(r *http.Request) string {
	authorization := r.Header.Get("Authorization")
	if authorization == "" {
		return ""
	}
	parts := strings.SplitN(authorization, " ", 2)
	if len(parts) != 2 {
		return ""
	}
	if !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
