package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/campusdesk/planner-api/internal/models"
	appErrors "github.com/campusdesk/planner-api/pkg/errors"
	"github.com/campusdesk/planner-api/pkg/response"
)

// RequireRoles restricts a route to users holding one of the given roles.
func RequireRoles(roles ...models.UserRole) gin.HandlerFunc {
	allowed := make(map[models.UserRole]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}

	return func(c *gin.Context) {
		claimsValue, exists := c.Get(ContextUserKey)
		if !exists {
			response.Error(c, appErrors.ErrUnauthorized)
			c.Abort()
			return
		}
		claims := claimsValue.(*models.JWTClaims)

		if _, ok := allowed[claims.Role]; ok {
			c.Next()
			return
		}

		response.Error(c, appErrors.ErrForbidden)
		c.Abort()
	}
}
