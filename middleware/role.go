// Package middleware file: middleware/role.go
package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-ultimate-hub/logger"
	"go-ultimate-hub/models"
)

// RoleRequired lets the request through only when the current user holds one of roles.
// It must run after AuthRequired. Roles are client-chosen, so this is a view filter only.
func RoleRequired(roles ...models.Role) gin.HandlerFunc {
	allowed := make(map[models.Role]bool, len(roles))
	for _, r := range roles {
		allowed[r] = true
	}

	return func(c *gin.Context) {
		user, ok := CurrentUser(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "no user logged in"})
			return
		}
		if !allowed[user.Role()] {
			logger.Warn.Printf("[RoleRequired] %s (%s) blocked from %s", user.ID, user.Role(), c.FullPath())
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "this page is not available for your role"})
			return
		}
		c.Next()
	}
}
