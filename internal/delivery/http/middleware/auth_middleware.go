package middleware

import (
	"strings"

	"subul/internal/domain/entity"
	domainerrors "subul/internal/domain/errors"
	"subul/internal/domain/service"
	"subul/internal/infra/auth"

	"github.com/labstack/echo/v4"
)

// identityContextKey is where Authenticate stores the verified identity.
const identityContextKey = "identity"

// AuthMiddleware provides middleware for JWT authentication and authorization.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the bearer token and stores the verified identity on
// the request context. Missing, malformed, and expired tokens are all 401;
// verification is stateless, so no account lookup happens here.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return unauthorized(c, "Authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return unauthorized(c, "Invalid token format, must be Bearer token")
		}

		claims, err := m.tokenSvc.Verify(tokenString)
		if err != nil {
			return unauthorized(c, "Invalid or expired token")
		}

		identity, err := claims.Identity()
		if err != nil {
			return unauthorized(c, "Invalid identity in token")
		}

		c.Set(identityContextKey, identity)

		return next(c)
	}
}

// RequireRole is a middleware factory gating a route group to the given
// roles. It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireRole(roles ...entity.Role) echo.MiddlewareFunc {
	allowed := entity.Roles(roles)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			identity, ok := IdentityFrom(c)
			if !ok {
				return unauthorized(c, "Authentication required")
			}

			if err := auth.Authorize(identity, allowed); err != nil {
				return err
			}

			return next(c)
		}
	}
}

// IdentityFrom returns the verified identity stored by Authenticate.
func IdentityFrom(c echo.Context) (service.Identity, bool) {
	identity, ok := c.Get(identityContextKey).(service.Identity)

	return identity, ok
}

func unauthorized(_ echo.Context, details string) error {
	return domainerrors.ErrUnauthenticated.WithDetails(details)
}
