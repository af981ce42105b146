// file: controllers/checkin_controller_test.go
package controllers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"go-ultimate-hub/models"
	"go-ultimate-hub/services"
)

type scanResponse struct {
	Result services.CheckInResult `json:"result"`
}

func TestScan_SuccessThenBusy(t *testing.T) {
	app := setupTestApp(t, "")

	w := app.do("POST", "/api/checkin/scan", gin.H{"payload": `{"eventId":1,"userName":"Jane"}`, "station": "gate-a"}, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var resp scanResponse
	decode(t, w, &resp)
	assert.True(t, resp.Result.Success)
	assert.Equal(t, "Delhi Ultimate Open", resp.Result.EventName)
	assert.Equal(t, "Jane", resp.Result.UserName)

	w = app.do("POST", "/api/checkin/scan", gin.H{"payload": "1", "station": "gate-a"}, nil)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)

	records := app.do("GET", "/api/checkins", nil, app.login(t, models.RoleAdmin))
	require.Equal(t, http.StatusOK, records.Code)
	var list struct {
		CheckIns []models.CheckInRecord `json:"checkIns"`
	}
	decode(t, records, &list)
	require.Len(t, list.CheckIns, 1)
	assert.Equal(t, "gate-a", list.CheckIns[0].Station)
}

func TestScan_FailureIsAnOutcome(t *testing.T) {
	app := setupTestApp(t, "")

	for station, payload := range map[string]string{"s1": "999", "s2": "", "s3": "not a code"} {
		w := app.do("POST", "/api/checkin/scan", gin.H{"payload": payload, "station": station}, nil)
		require.Equal(t, http.StatusOK, w.Code, payload)
		var resp scanResponse
		decode(t, w, &resp)
		assert.False(t, resp.Result.Success, payload)
		assert.Equal(t, "Invalid QR code or event not found", resp.Result.Message)
	}
	assert.Empty(t, app.store.CheckIns())
}

type mockScanner struct {
	mock.Mock
}

func (m *mockScanner) Scan(stationID, payload string) (services.CheckInResult, error) {
	args := m.Called(stationID, payload)
	return args.Get(0).(services.CheckInResult), args.Error(1)
}

func TestScan_ClosedScanner(t *testing.T) {
	gin.SetMode(gin.TestMode)
	scanner := new(mockScanner)
	scanner.On("Scan", "", "1").Return(services.CheckInResult{}, services.ErrScannerClosed).Once()

	router := gin.New()
	router.POST("/scan", NewCheckInController(scanner, nil).Scan)

	app := &testApp{router: router}
	w := app.do("POST", "/scan", gin.H{"payload": "1"}, nil)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	scanner.AssertExpectations(t)
}
