// Package middleware provides request filters for the hub's HTTP surface.
// File: middleware/auth.go
package middleware

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"go-ultimate-hub/logger"
	"go-ultimate-hub/models"
	"go-ultimate-hub/services"
)

// currentUserKey is the gin context key the rehydrated user is stored under.
const currentUserKey = "currentUser"

// -------------- authentication middleware --------------

// AuthRequired rehydrates the current user from the session cookie and stores it on the
// context. Requests without a user get 401.
func AuthRequired(auth services.AuthServiceInterface) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := auth.Current(sessions.Default(c))
		if !ok {
			logger.Warn.Printf("[AuthRequired] No current user for %s %s", c.Request.Method, c.Request.URL.Path)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": services.ErrNotLoggedIn.Error()})
			return
		}

		c.Set(currentUserKey, user)
		logger.Debug.Printf("[AuthRequired] %s (%s) authenticated - proceeding with request", user.ID, user.Role())
		c.Next()
	}
}

// CurrentUser returns the user AuthRequired stored on the context.
func CurrentUser(c *gin.Context) (models.User, bool) {
	v, ok := c.Get(currentUserKey)
	if !ok {
		return models.User{}, false
	}
	user, ok := v.(models.User)
	return user, ok
}
