// file: controllers/helpers_test.go
package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/skip2/go-qrcode"
	"github.com/stretchr/testify/require"

	"go-ultimate-hub/data"
	"go-ultimate-hub/forms"
	"go-ultimate-hub/models"
	"go-ultimate-hub/services"
)

const testSessionName = "testsession"

// testApp is a fully wired router over freshly seeded state.
type testApp struct {
	router  *gin.Engine
	store   *services.AppStore
	scanner *services.Scanner
}

func fakeEncoder(content string, _ qrcode.RecoveryLevel, _ int) ([]byte, error) {
	return []byte("qr:" + content), nil
}

// setupTestApp builds the API with cookie sessions. mapsKey "" leaves maps unconfigured.
func setupTestApp(t *testing.T, mapsKey string) *testApp {
	t.Helper()
	gin.SetMode(gin.TestMode)
	forms.Register()

	ds := data.Seed()
	store := services.NewAppStore(ds, nil)
	scanner := services.NewScanner(store, nil, time.Hour)
	t.Cleanup(scanner.Close)

	router := gin.New()
	router.Use(sessions.Sessions(testSessionName, cookie.NewStore([]byte("test-secret"))))

	RegisterRoutes(router, Deps{
		Store:       store,
		Auth:        services.NewAuthService(store),
		Scanner:     scanner,
		Gallery:     services.NewGalleryService(store, ds.PlaceholderImages, 0, nil),
		Dashboards:  services.NewDashboardService(store),
		Leaderboard: services.NewLeaderboardService(ds.Teams, ds.Players),
		Reports:     services.NewReportService(store),
		Maps:        services.NewMapService(mapsKey, store),
		Pages:       NewPageController("http://localhost:8080", "ws://localhost:8080/ws"),
		Encoder:     fakeEncoder,
	})
	return &testApp{router: router, store: store, scanner: scanner}
}

// do sends a request with an optional JSON body and session cookie.
func (a *testApp) do(method, path string, body interface{}, cookie *http.Cookie) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if cookie != nil {
		req.AddCookie(cookie)
	}
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

// login selects a role and returns the session cookie.
func (a *testApp) login(t *testing.T, role models.Role) *http.Cookie {
	t.Helper()
	w := a.do("POST", "/auth/login", gin.H{"role": role}, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	return sessionCookie(t, w)
}

func sessionCookie(t *testing.T, w *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range w.Result().Cookies() {
		if c.Name == testSessionName {
			return c
		}
	}
	t.Fatal("no session cookie set")
	return nil
}

// decode unmarshals the response body into v.
func decode(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), v), w.Body.String())
}
