package middleware

import (
	"strings"

	deliverycontext "scout/internal/delivery/context"
	"scout/internal/delivery/http/response"
	domainerrors "scout/internal/domain/errors"
	"scout/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// AuthMiddleware is the request-level authentication gate. It extracts and
// verifies the bearer token, attaches the verified identity to the request
// and otherwise rejects the request before the handler runs. It never
// touches the store.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the session token carried in the Authorization
// header. A missing header maps to no_token; a present but unverifiable
// token (bad signature, malformed, expired) maps to bad_token.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return response.AppError(c, domainerrors.ErrNoToken)
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader || tokenString == "" {
			return response.AppError(c, domainerrors.ErrBadToken)
		}

		userID, err := m.tokenSvc.Verify(tokenString)
		if err != nil {
			return response.AppError(c, domainerrors.ErrBadToken)
		}

		// Make the identity available both to handlers (echo context) and
		// to the service layer (request context).
		deliverycontext.SetUserID(c, userID)

		return next(c)
	}
}
