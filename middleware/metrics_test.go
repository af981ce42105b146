// file: middleware/metrics_test.go
package middleware

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"go-ultimate-hub/metrics"
)

func TestMetrics_RecordsRoutePattern(t *testing.T) {
	gin.SetMode(gin.TestMode)
	reg := metrics.NewRegistry()

	router := gin.New()
	router.Use(RequestID(), Metrics(reg))
	router.GET("/api/events/:id", func(c *gin.Context) { c.Status(http.StatusOK) })

	for _, path := range []string{"/api/events/1", "/api/events/2", "/missing"} {
		router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", path, nil))
	}

	w := httptest.NewRecorder()
	reg.Handler().ServeHTTP(w, httptest.NewRequest("GET", "/metrics", nil))
	body, _ := io.ReadAll(w.Body)

	assert.Contains(t, string(body), `ultimate_hub_http_requests_total{endpoint="/api/events/:id",method="GET",status_code="200"} 2`)
	assert.Contains(t, string(body), `ultimate_hub_http_requests_total{endpoint="unknown",method="GET",status_code="404"} 1`)
}

func TestRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(RequestID())
	router.GET("/", func(c *gin.Context) { c.String(http.StatusOK, c.GetString("requestId")) })

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/", nil))
	generated := w.Header().Get(RequestIDHeader)
	assert.Len(t, generated, 36)
	assert.Equal(t, generated, w.Body.String())

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set(RequestIDHeader, "req-42")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, "req-42", w.Header().Get(RequestIDHeader))
}
