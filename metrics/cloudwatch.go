// file: metrics/cloudwatch.go
package metrics

import (
	"fmt"
	"sync"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/cloudwatch"
	"github.com/aws/aws-sdk-go/service/cloudwatch/cloudwatchiface"
	"github.com/aws/aws-xray-sdk-go/xray"

	"go-ultimate-hub/logger"
	"go-ultimate-hub/services"
)

// CloudWatchNamespace groups every metric the hub publishes.
const CloudWatchNamespace = "UltimateHub"

// NewCloudWatchClient builds a client from the default AWS credential chain. With traced set,
// calls are recorded as X-Ray subsegments.
func NewCloudWatchClient(traced bool) (*cloudwatch.CloudWatch, error) {
	sess, err := session.NewSession()
	if err != nil {
		return nil, fmt.Errorf("aws session: %w", err)
	}
	client := cloudwatch.New(sess)
	if traced {
		xray.AWS(client.Client)
	}
	return client, nil
}

// CloudWatchPublisher mirrors business events to CloudWatch. Calls run in the background so
// Notify never blocks a request.
type CloudWatchPublisher struct {
	client    cloudwatchiface.CloudWatchAPI
	namespace string
	now       func() time.Time
	wg        sync.WaitGroup
}

// Ensure CloudWatchPublisher implements services.Notifier
var _ services.Notifier = (*CloudWatchPublisher)(nil)

// NewCloudWatchPublisher wraps client.
func NewCloudWatchPublisher(client cloudwatchiface.CloudWatchAPI) *CloudWatchPublisher {
	return &CloudWatchPublisher{client: client, namespace: CloudWatchNamespace, now: time.Now}
}

// Notify publishes the subset of actions worth tracking in CloudWatch.
func (p *CloudWatchPublisher) Notify(action string, payload map[string]interface{}) {
	var name string
	switch action {
	case services.ActionCheckIn:
		name = "CheckIns"
	case services.ActionCheckInRejected:
		name = "CheckInsRejected"
	case services.ActionRegistrationToggled:
		name = "RegistrationToggles"
	case services.ActionEnrollmentToggled:
		name = "EnrollmentToggles"
	default:
		return
	}

	dims := map[string]string{}
	if id, ok := payload["eventId"]; ok {
		dims["EventId"] = fmt.Sprint(id)
	}
	if st, ok := payload["station"].(string); ok && st != "" {
		dims["Station"] = st
	}
	p.publish(name, 1, cloudwatch.StandardUnitCount, dims)
}

// PublishLiveConnections pushes the current live feed connection count.
func (p *CloudWatchPublisher) PublishLiveConnections(count int) {
	p.publish("LiveConnections", float64(count), cloudwatch.StandardUnitCount, nil)
}

// Flush waits for in-flight publishes.
func (p *CloudWatchPublisher) Flush() {
	p.wg.Wait()
}

func (p *CloudWatchPublisher) publish(name string, value float64, unit string, dims map[string]string) {
	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		p.putMetric(name, value, unit, dims)
	}()
}

// -----------------------------------------------------------
// internal helper function to package up CloudWatch calls
// -----------------------------------------------------------
func (p *CloudWatchPublisher) putMetric(name string, value float64, unit string, dims map[string]string) {
	datum := &cloudwatch.MetricDatum{
		MetricName: aws.String(name),
		Timestamp:  aws.Time(p.now()),
		Value:      aws.Float64(value),
		Unit:       aws.String(unit),
	}
	for k, v := range dims {
		datum.Dimensions = append(datum.Dimensions, &cloudwatch.Dimension{
			Name:  aws.String(k),
			Value: aws.String(v),
		})
	}

	_, err := p.client.PutMetricData(&cloudwatch.PutMetricDataInput{
		Namespace:  aws.String(p.namespace),
		MetricData: []*cloudwatch.MetricDatum{datum},
	})
	if err != nil {
		logger.Error.Printf("[putMetric] CloudWatch metric failed (%s): %v", name, err)
	}
}
