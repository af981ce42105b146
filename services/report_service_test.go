// file: services/report_service_test.go
package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-ultimate-hub/data"
	"go-ultimate-hub/models"
	"go-ultimate-hub/services"
)

func TestReport_EventSeries(t *testing.T) {
	report := services.NewReportService(services.NewAppStore(data.Seed(), nil)).Build()

	assert.Equal(t, []services.CountPoint{
		{Label: "Tournament", Count: 2},
		{Label: "Workshop", Count: 1},
		{Label: "Meetup", Count: 1},
	}, report.EventsByType)

	assert.Equal(t, []services.CountPoint{
		{Label: "2024-08", Count: 1},
		{Label: "2024-11", Count: 1},
		{Label: "2027-02", Count: 1},
		{Label: "2027-03", Count: 1},
	}, report.EventsPerMonth)

	require.Len(t, report.RegistrationsPerEvent, 4)
	assert.Equal(t, services.CountPoint{Label: "Delhi Ultimate Open", Count: 2}, report.RegistrationsPerEvent[0])
	assert.Equal(t, 1, report.EnrollmentsPerCenter[0].Count)
}

func TestReport_Assessments(t *testing.T) {
	report := services.NewReportService(services.NewAppStore(data.Seed(), nil)).Build()
	a := report.Assessments

	assert.Equal(t, 2, a.Baseline.Count)
	assert.InDelta(t, 4.5, a.Baseline.Teamwork, 0.001)
	assert.InDelta(t, 4.0, a.Baseline.Confidence, 0.001)
	assert.Equal(t, 1, a.Endline.Count)
	assert.InDelta(t, 2.5, a.Improvement.Teamwork, 0.001)
	assert.InDelta(t, 3.5, a.Improvement.Communication, 0.001)

	require.Len(t, report.ChildProgress, 1)
	assert.Equal(t, services.ChildProgress{ChildID: "c1", Name: "Aarav", BaselineTotal: 12, EndlineTotal: 21, Improvement: 9}, report.ChildProgress[0])
}

func TestReport_ProgressIncludesNewEndline(t *testing.T) {
	store := services.NewAppStore(data.Seed(), nil)
	_, err := store.AddAssessment(services.AssessmentInput{
		ChildID: "c4",
		Date:    models.MustDate("2025-01-10"),
		Type:    models.AssessmentEndline,
		Score:   models.Score{Teamwork: 6, Confidence: 6, Communication: 6},
	})
	require.NoError(t, err)

	report := services.NewReportService(store).Build()
	require.Len(t, report.ChildProgress, 2)
	assert.Equal(t, models.ChildID("c4"), report.ChildProgress[1].ChildID)
	assert.Equal(t, 4, report.ChildProgress[1].Improvement)
}

func TestReport_AttendanceAndVisits(t *testing.T) {
	report := services.NewReportService(services.NewAppStore(data.Seed(), nil)).Build()

	require.Len(t, report.AttendanceByCommunity, 3)
	assert.Equal(t, "Govindpuri", report.AttendanceByCommunity[0].Community)
	assert.InDelta(t, 100.0, report.AttendanceByCommunity[0].Percent, 0.001)
	sundar := report.AttendanceByCommunity[2]
	assert.Equal(t, "Sundar Nagar", sundar.Community)
	assert.Equal(t, 1, sundar.Sessions)
	assert.InDelta(t, 66.67, sundar.Percent, 0.001)

	require.Len(t, report.HomeVisitsPerChild, 7)
	assert.Equal(t, services.CountPoint{Label: "Aarav", Count: 1}, report.HomeVisitsPerChild[0])
	assert.Equal(t, services.CountPoint{Label: "Diya", Count: 0}, report.HomeVisitsPerChild[1])
}
