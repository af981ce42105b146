// file: services/checkin_service_test.go
package services_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"go-ultimate-hub/data"
	"go-ultimate-hub/models"
	"go-ultimate-hub/services"
)

// countingLookup records how many lookups Match performs.
type countingLookup struct {
	mock.Mock
}

func (c *countingLookup) Event(id models.EventID) (models.Event, error) {
	args := c.Called(id)
	return args.Get(0).(models.Event), args.Error(1)
}

func TestMatch_JSONTicket(t *testing.T) {
	store := services.NewAppStore(data.Seed(), nil)

	res, err := services.Match(store, `{"eventId":1,"userName":"Jane"}`)
	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.Equal(t, models.EventID(1), res.EventID)
	assert.Equal(t, "Delhi Ultimate Open", res.EventName)
	assert.Equal(t, "Jane", res.UserName)
}

func TestMatch_BareDecimalID(t *testing.T) {
	store := services.NewAppStore(data.Seed(), nil)

	res, err := services.Match(store, " 3 ")
	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.Equal(t, "Community Hat Meetup", res.EventName)
	assert.Empty(t, res.UserName)
}

func TestMatch_UnknownEvent(t *testing.T) {
	store := services.NewAppStore(data.Seed(), nil)

	res, err := services.Match(store, "999")
	assert.ErrorIs(t, err, services.ErrEventNotFound)
	assert.False(t, res.Success)
	assert.Equal(t, "Invalid QR code or event not found", res.Message)
}

func TestMatch_EmptyPayloadSkipsLookup(t *testing.T) {
	lookup := new(countingLookup)

	for _, payload := range []string{"", "   "} {
		res, err := services.Match(lookup, payload)
		assert.ErrorIs(t, err, services.ErrInvalidCode)
		assert.False(t, res.Success)
	}
	lookup.AssertNotCalled(t, "Event", mock.Anything)
}

func TestMatch_InvalidCodes(t *testing.T) {
	lookup := new(countingLookup)

	for _, payload := range []string{"abc", "-1", "+2", "1.5", `{"userName":"Jane"}`, `{"eventId":"1"}`, "http://example.com"} {
		res, err := services.Match(lookup, payload)
		assert.ErrorIs(t, err, services.ErrInvalidCode, payload)
		assert.False(t, res.Success)
		assert.True(t, services.IsCheckInFailure(err))
	}
	lookup.AssertNotCalled(t, "Event", mock.Anything)
}

func TestScanner_RecordsAndNotifies(t *testing.T) {
	store := services.NewAppStore(data.Seed(), nil)
	n := new(services.MockNotifier)
	n.On("Notify", services.ActionCheckIn, mock.MatchedBy(func(p map[string]interface{}) bool {
		return p["eventId"] == 1 && p["userName"] == "Jane" && p["station"] == "gate-a"
	})).Return().Once()

	scanner := services.NewScanner(store, n, time.Hour)
	defer scanner.Close()

	res, err := scanner.Scan("gate-a", `{"eventId":1,"userName":"Jane"}`)
	require.NoError(t, err)
	assert.True(t, res.Success)

	recs := store.CheckIns()
	require.Len(t, recs, 1)
	assert.Equal(t, "gate-a", recs[0].Station)
	assert.Equal(t, "Delhi Ultimate Open", recs[0].EventName)
	n.AssertExpectations(t)
}

func TestScanner_BusyUntilReset(t *testing.T) {
	store := services.NewAppStore(data.Seed(), nil)
	scanner := services.NewScanner(store, nil, 50*time.Millisecond)
	defer scanner.Close()

	_, err := scanner.Scan("gate-a", "999")
	assert.ErrorIs(t, err, services.ErrEventNotFound)
	assert.False(t, scanner.Armed("gate-a"))

	// failure also disarms the station
	_, err = scanner.Scan("gate-a", "1")
	assert.ErrorIs(t, err, services.ErrScannerBusy)

	// other stations are independent
	_, err = scanner.Scan("gate-b", "1")
	assert.NoError(t, err)

	assert.Eventually(t, func() bool { return scanner.Armed("gate-a") }, time.Second, 10*time.Millisecond)

	_, err = scanner.Scan("gate-a", "1")
	assert.NoError(t, err)
	assert.Len(t, store.CheckIns(), 2)
}

func TestScanner_Close(t *testing.T) {
	store := services.NewAppStore(data.Seed(), nil)
	scanner := services.NewScanner(store, nil, 20*time.Millisecond)

	_, err := scanner.Scan("", "1")
	require.NoError(t, err)
	scanner.Close()

	time.Sleep(50 * time.Millisecond)
	assert.False(t, scanner.Armed("default"))
	_, err = scanner.Scan("default", "1")
	assert.ErrorIs(t, err, services.ErrScannerClosed)
}
