package middleware

import (
	"log/slog"
	"strings"

	"promopush/internal/delivery/api/response"
	deliverycontext "promopush/internal/delivery/context"
	"promopush/internal/domain/service"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const bearerPrefix = "Bearer "

// AuthMiddlewareParams holds dependencies for AuthMiddleware, injected by Fx.
type AuthMiddlewareParams struct {
	fx.In

	TokenSvc   service.TokenService
	Authorizer service.Authorizer
	Logger     *slog.Logger
}

// AuthMiddleware validates bearer tokens and guards admin routes.
type AuthMiddleware struct {
	tokenSvc   service.TokenService
	authorizer service.Authorizer
	logger     *slog.Logger
}

func NewAuthMiddleware(params AuthMiddlewareParams) *AuthMiddleware {
	return &AuthMiddleware{
		tokenSvc:   params.TokenSvc,
		authorizer: params.Authorizer,
		logger:     params.Logger,
	}
}

// Authenticate validates the access token and stores the caller on the context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return response.Unauthorized(c, "MISSING_TOKEN", "Authorization header is missing")
		}

		tokenString, found := strings.CutPrefix(authHeader, bearerPrefix)
		if !found || tokenString == "" {
			return response.Unauthorized(c, "INVALID_TOKEN_FORMAT", "Invalid token format, must be Bearer token")
		}

		claims, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil {
			deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger).Debug("Rejected access token",
				slog.Any("error", err),
			)

			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid or expired token")
		}

		deliverycontext.SetActor(c, claims.Subject, claims.Roles)

		return next(c)
	}
}

// RequireAdmin rejects callers the authorizer does not recognise as admins.
// It must be used after Authenticate.
func (m *AuthMiddleware) RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		actor, ok := deliverycontext.GetActor(c)
		if !ok {
			return response.Unauthorized(c, "UNAUTHORIZED", "Authentication is required")
		}

		if !m.authorizer.IsAdmin(c.Request().Context(), actor) {
			return response.Forbidden(c, "FORBIDDEN", "Admin permission is required")
		}

		return next(c)
	}
}
