// file: metrics/metrics_test.go
package metrics

import (
	"errors"
	"io"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/cloudwatch"
	"github.com/aws/aws-sdk-go/service/cloudwatch/cloudwatchiface"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-ultimate-hub/services"
)

func scrape(t *testing.T, r *Registry) string {
	t.Helper()
	w := httptest.NewRecorder()
	r.Handler().ServeHTTP(w, httptest.NewRequest("GET", "/metrics", nil))
	require.Equal(t, 200, w.Code)
	body, err := io.ReadAll(w.Body)
	require.NoError(t, err)
	return string(body)
}

func TestRegistry_CountsActions(t *testing.T) {
	r := NewRegistry()
	r.Notify(services.ActionCheckIn, nil)
	r.Notify(services.ActionCheckIn, nil)
	r.Notify(services.ActionCheckInRejected, nil)
	r.Notify(services.ActionEventAdded, nil)
	r.LiveConnections.Set(3)

	body := scrape(t, r)
	assert.Contains(t, body, `ultimate_hub_actions_total{action="checkIn"} 2`)
	assert.Contains(t, body, `ultimate_hub_actions_total{action="eventAdded"} 1`)
	assert.Contains(t, body, `ultimate_hub_checkins_total{outcome="success"} 2`)
	assert.Contains(t, body, `ultimate_hub_checkins_total{outcome="rejected"} 1`)
	assert.Contains(t, body, `ultimate_hub_live_connections 3`)
	assert.Contains(t, body, "go_goroutines")
}

func TestRegistry_Independent(t *testing.T) {
	a, b := NewRegistry(), NewRegistry()
	a.Notify(services.ActionUserAdded, nil)

	assert.Contains(t, scrape(t, a), `ultimate_hub_actions_total{action="userAdded"} 1`)
	assert.NotContains(t, scrape(t, b), `action="userAdded"`)
}

// fakeCloudWatch records PutMetricData calls.
type fakeCloudWatch struct {
	cloudwatchiface.CloudWatchAPI
	mu    sync.Mutex
	calls []*cloudwatch.PutMetricDataInput
	err   error
}

func (f *fakeCloudWatch) PutMetricData(in *cloudwatch.PutMetricDataInput) (*cloudwatch.PutMetricDataOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, in)
	return &cloudwatch.PutMetricDataOutput{}, f.err
}

func TestCloudWatchPublisher_PublishesTrackedActions(t *testing.T) {
	fake := &fakeCloudWatch{}
	p := NewCloudWatchPublisher(fake)

	p.Notify(services.ActionCheckIn, map[string]interface{}{"eventId": 1, "station": "gate-a"})
	p.Notify(services.ActionImageAdded, map[string]interface{}{"eventId": 1})
	p.Flush()

	require.Len(t, fake.calls, 1)
	in := fake.calls[0]
	assert.Equal(t, CloudWatchNamespace, aws.StringValue(in.Namespace))
	datum := in.MetricData[0]
	assert.Equal(t, "CheckIns", aws.StringValue(datum.MetricName))
	assert.Equal(t, 1.0, aws.Float64Value(datum.Value))

	dims := map[string]string{}
	for _, d := range datum.Dimensions {
		dims[aws.StringValue(d.Name)] = aws.StringValue(d.Value)
	}
	assert.Equal(t, map[string]string{"EventId": "1", "Station": "gate-a"}, dims)
}

func TestCloudWatchPublisher_ErrorsAreLoggedOnly(t *testing.T) {
	fake := &fakeCloudWatch{err: errors.New("throttled")}
	p := NewCloudWatchPublisher(fake)

	p.PublishLiveConnections(4)
	p.Flush()

	require.Len(t, fake.calls, 1)
	assert.Equal(t, "LiveConnections", aws.StringValue(fake.calls[0].MetricData[0].MetricName))
	assert.Equal(t, 4.0, aws.Float64Value(fake.calls[0].MetricData[0].Value))
}
