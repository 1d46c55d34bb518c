package middleware

import (
	"net/http"
	"strings"

	deliverycontext "tienda/internal/delivery/context"
	"tienda/internal/delivery/http/response"
	domainerrors "tienda/internal/domain/errors"
	"tienda/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AuthMiddleware resolves the caller identity from the bearer token.
type AuthMiddleware struct {
	authUc usecase.AuthUsecase
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(authUc usecase.AuthUsecase) *AuthMiddleware {
	return &AuthMiddleware{authUc: authUc}
}

// Authenticate validates the access token and stores the resolved identity
// on the request context. Inactive delivery agents are rejected here with a
// 403 before any route logic runs.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return response.Unauthorized(c, "MISSING_TOKEN", "Authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return response.Unauthorized(c, "INVALID_TOKEN_FORMAT", "Invalid token format, must be Bearer token")
		}

		identity, err := m.authUc.ResolveIdentity(c.Request().Context(), tokenString)
		if err != nil {
			var appErr domainerrors.AppError
			if errors.As(err, &appErr) && appErr.HTTPCode() == http.StatusForbidden {
				return response.Forbidden(c, appErr.ErrorCode(), appErr.Message())
			}

			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid or expired token")
		}

		deliverycontext.SetIdentity(c, identity)

		return next(c)
	}
}

// RequireAdmin rejects callers that are not plain administrator accounts.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		identity := deliverycontext.GetIdentity(c)
		if identity == nil || !identity.IsAdmin() {
			return response.Forbidden(c, "FORBIDDEN", "Permission denied: administrator role required")
		}

		return next(c)
	}
}
