// file: middleware/auth_test.go
package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-ultimate-hub/data"
	"go-ultimate-hub/models"
	"go-ultimate-hub/services"
)

// Helper function to create a test router with session middleware and a login helper route.
func setupAuthTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	store := cookie.NewStore([]byte("secret"))
	router.Use(sessions.Sessions("testsession", store))

	auth := services.NewAuthService(services.NewAppStore(data.Seed(), nil))
	router.GET("/test-login/:role", func(c *gin.Context) {
		if _, err := auth.Login(sessions.Default(c), models.Role(c.Param("role"))); err != nil {
			c.String(http.StatusBadRequest, err.Error())
			return
		}
		c.String(http.StatusOK, "ok")
	})
	router.GET("/test-garbage", func(c *gin.Context) {
		s := sessions.Default(c)
		s.Set(services.CurrentUserKey, "{broken")
		_ = s.Save()
		c.String(http.StatusOK, "ok")
	})

	protected := router.Group("/", AuthRequired(auth))
	protected.GET("/protected", func(c *gin.Context) {
		user, _ := CurrentUser(c)
		c.String(http.StatusOK, "Welcome "+user.Name)
	})
	protected.GET("/admin-only", RoleRequired(models.RoleAdmin), func(c *gin.Context) {
		c.String(http.StatusOK, "Welcome, admin!")
	})
	protected.GET("/welfare", RoleRequired(models.RoleAdmin, models.RoleCoach), func(c *gin.Context) {
		c.String(http.StatusOK, "welfare")
	})
	return router
}

// loginCookie performs a role login and returns the session cookie.
func loginCookie(t *testing.T, router *gin.Engine, path string) *http.Cookie {
	t.Helper()
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", path, nil))
	require.Equal(t, http.StatusOK, w.Code)
	for _, c := range w.Result().Cookies() {
		if c.Name == "testsession" {
			return c
		}
	}
	t.Fatal("no session cookie set")
	return nil
}

func get(router *gin.Engine, path string, cookie *http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest("GET", path, nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestAuthRequired_Unauthenticated(t *testing.T) {
	router := setupAuthTestRouter()

	w := get(router, "/protected", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "no user logged in")
}

func TestAuthRequired_Authenticated(t *testing.T) {
	router := setupAuthTestRouter()
	cookie := loginCookie(t, router, "/test-login/Participant")

	w := get(router, "/protected", cookie)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Welcome Jane Doe", w.Body.String())
}

func TestAuthRequired_MalformedSession(t *testing.T) {
	router := setupAuthTestRouter()
	cookie := loginCookie(t, router, "/test-garbage")

	w := get(router, "/protected", cookie)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
