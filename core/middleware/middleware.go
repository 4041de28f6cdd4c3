package middleware

import (
	"strings"

	"mentorhub/core/cache"
	"mentorhub/core/constants"
	"mentorhub/core/controller"
	"mentorhub/core/errors"
	"mentorhub/core/logger"
	"mentorhub/core/utils"

	"github.com/labstack/echo/v4"
)

// Middleware bundles the request middlewares that need shared dependencies
type Middleware struct {
	cache cache.Cache
}

func NewMiddleware(c cache.Cache) *Middleware {
	return &Middleware{cache: c}
}

// AuthMiddleware validates the bearer token and stores its claims on the
// request context under constants.ContextTokenData
func (m *Middleware) AuthMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			header := ctx.Request().Header.Get("Authorization")
			if header == "" {
				return controller.NewErrorResponse(401, errors.ErrMissingAuthorizationHeader, "Missing authorization header")
			}

			token := strings.TrimPrefix(header, "Bearer ")
			if token == header || token == "" {
				return controller.NewErrorResponse(401, errors.ErrInvalidTokenFormat, "Invalid authorization header format")
			}

			blacklisted, err := m.cache.IsTokenBlacklisted(ctx.Request().Context(), token)
			if err != nil {
				logger.Error("Middleware:AuthMiddleware:IsTokenBlacklisted:Error:", err)
				return controller.NewErrorResponse(500, errors.ErrInternalServer, "Failed to verify token")
			}
			if blacklisted {
				return controller.NewErrorResponse(401, errors.ErrUnauthorized, "Token has been revoked")
			}

			claims, err := utils.ValidateAndParseToken(token)
			if err != nil {
				logger.Warn("Middleware:AuthMiddleware:ValidateAndParseToken:Error:", err)
				return controller.NewErrorResponse(401, errors.ErrUnauthorized, "Invalid or expired token")
			}

			if claims.Scope != constants.ScopeTokenAccess {
				return controller.NewErrorResponse(401, errors.ErrUnauthorized, "Token scope not allowed")
			}

			ctx.Set(constants.ContextTokenData, claims)
			return next(ctx)
		}
	}
}

// RequireUserType rejects callers whose role is not in the allowed set.
// Must run after AuthMiddleware.
func (m *Middleware) RequireUserType(userTypes ...string) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(userTypes))
	for _, t := range userTypes {
		allowed[t] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			tokenData := ctx.Get(constants.ContextTokenData)
			claims, ok := tokenData.(*utils.TokenClaims)
			if !ok || claims == nil {
				return controller.NewErrorResponse(401, errors.ErrUnauthorized, "User not authenticated")
			}

			if _, ok := allowed[claims.UserType]; !ok {
				return controller.NewErrorResponse(403, errors.ErrForbidden, "Access denied for this role")
			}

			return next(ctx)
		}
	}
}

// RequestID attaches a short id to every request for log correlation
func (m *Middleware) RequestID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			id := ctx.Request().Header.Get("X-Request-ID")
			if id == "" {
				id = utils.GenerateID()
			}
			ctx.Set(constants.ContextRequestID, id)
			ctx.Response().Header().Set("X-Request-ID", id)
			return next(ctx)
		}
	}
}
