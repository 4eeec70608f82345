package middleware

import (
	"errors"

	"github.com/gin-gonic/gin"
	jwt "github.com/golang-jwt/jwt/v5"

	"portfolio_backend/internal/auth"
	"portfolio_backend/internal/logger"
	"portfolio_backend/internal/models"
	"portfolio_backend/internal/repositories"
	"portfolio_backend/pkg/apperrors"
)

const userIDKey = "userID"

// AuthMiddleware validates the JWT from the Authorization header or the
// token cookie and stores the subject user ID in the request context.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr, ok := auth.TokenFromRequest(c)
		if !ok {
			apperrors.HandleError(c, apperrors.NewUnauthorizedError("Authentication required"))
			c.Abort()
			return
		}

		claims, err := auth.ParseToken(tokenStr)
		if err != nil {
			if errors.Is(err, jwt.ErrTokenExpired) {
				apperrors.HandleError(c, apperrors.ErrTokenExpired)
			} else {
				apperrors.HandleError(c, apperrors.ErrInvalidToken)
			}
			c.Abort()
			return
		}

		c.Set(userIDKey, claims.UserID)
		ctx := logger.WithUserID(c.Request.Context(), claims.UserID)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

// AdminMiddleware loads the authenticated user and rejects non-admins.
// Role is read from the database, not the token, so a demoted user loses
// access as soon as the record changes.
func AdminMiddleware(users repositories.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := GetUserID(c)
		if userID == "" {
			apperrors.HandleError(c, apperrors.NewUnauthorizedError("Authentication required"))
			c.Abort()
			return
		}

		user, err := users.FindByID(c.Request.Context(), userID)
		if err != nil {
			apperrors.HandleError(c, apperrors.NewUnauthorizedError("Authentication required"))
			c.Abort()
			return
		}

		if user.Role != models.UserRoleAdmin {
			apperrors.HandleError(c, apperrors.NewForbiddenError("Admin access required"))
			c.Abort()
			return
		}

		c.Next()
	}
}

// AdminOnly composes authentication and the admin check into the single
// guard applied to every mutating route group.
func AdminOnly(users repositories.UserRepository) []gin.HandlerFunc {
	return []gin.HandlerFunc{AuthMiddleware(), AdminMiddleware(users)}
}

// GetUserID returns the authenticated user ID stored by AuthMiddleware.
func GetUserID(c *gin.Context) string {
	val, exists := c.Get(userIDKey)
	if !exists {
		return ""
	}
	id, ok := val.(string)
	if !ok {
		return ""
	}
	return id
}
