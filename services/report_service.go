// Package services file: services/report_service.go
package services

import (
	"math"
	"sort"

	"go-ultimate-hub/models"
)

// CountPoint is one labelled bar of a chart.
type CountPoint struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// SkillAverages are mean ratings for one assessment round.
type SkillAverages struct {
	Teamwork      float64 `json:"teamwork"`
	Confidence    float64 `json:"confidence"`
	Communication float64 `json:"communication"`
	Count         int     `json:"count"`
}

// AssessmentSummary compares baseline and endline rounds.
type AssessmentSummary struct {
	Baseline    SkillAverages `json:"baseline"`
	Endline     SkillAverages `json:"endline"`
	Improvement SkillAverages `json:"improvement"`
}

// ChildProgress is the endline minus baseline total of one child.
type ChildProgress struct {
	ChildID       models.ChildID `json:"childId"`
	Name          string         `json:"name"`
	BaselineTotal int            `json:"baselineTotal"`
	EndlineTotal  int            `json:"endlineTotal"`
	Improvement   int            `json:"improvement"`
}

// CommunityAttendance sums completed-session attendance for one community.
type CommunityAttendance struct {
	Community string  `json:"community"`
	Sessions  int     `json:"sessions"`
	Attended  int     `json:"attended"`
	Expected  int     `json:"expected"`
	Percent   float64 `json:"percent"`
}

// Report is the analytics page.
type Report struct {
	EventsByType          []CountPoint          `json:"eventsByType"`
	RegistrationsPerEvent []CountPoint          `json:"registrationsPerEvent"`
	EventsPerMonth        []CountPoint          `json:"eventsPerMonth"`
	EnrollmentsPerCenter  []CountPoint          `json:"enrollmentsPerCenter"`
	Assessments           AssessmentSummary     `json:"assessments"`
	ChildProgress         []ChildProgress       `json:"childProgress"`
	AttendanceByCommunity []CommunityAttendance `json:"attendanceByCommunity"`
	HomeVisitsPerChild    []CountPoint          `json:"homeVisitsPerChild"`
}

// ReportService aggregates the store into chart series.
type ReportService struct {
	store *AppStore
}

// NewReportService builds a ReportService.
func NewReportService(store *AppStore) *ReportService {
	return &ReportService{store: store}
}

// Build computes every series from one snapshot.
func (r *ReportService) Build() Report {
	snap := r.store.Snapshot()
	return Report{
		EventsByType:          eventsByType(snap.Events),
		RegistrationsPerEvent: registrationsPerEvent(snap.Events),
		EventsPerMonth:        eventsPerMonth(snap.Events),
		EnrollmentsPerCenter:  enrollmentsPerCenter(snap.CoachingCenters),
		Assessments:           summarizeAssessments(snap.Assessments),
		ChildProgress:         childProgress(snap.Children, snap.Assessments),
		AttendanceByCommunity: attendanceByCommunity(snap.Children, snap.Sessions),
		HomeVisitsPerChild:    homeVisitsPerChild(snap.Children, snap.HomeVisits),
	}
}

func eventsByType(events []models.Event) []CountPoint {
	counts := map[models.EventType]int{}
	for _, e := range events {
		counts[e.Type]++
	}
	out := make([]CountPoint, 0, len(models.EventTypes))
	for _, t := range models.EventTypes {
		out = append(out, CountPoint{Label: string(t), Count: counts[t]})
	}
	return out
}

func registrationsPerEvent(events []models.Event) []CountPoint {
	out := make([]CountPoint, 0, len(events))
	for _, e := range events {
		out = append(out, CountPoint{Label: e.Name, Count: len(e.Participants)})
	}
	return out
}

// eventsPerMonth buckets by "2006-01", oldest month first.
func eventsPerMonth(events []models.Event) []CountPoint {
	counts := map[string]int{}
	for _, e := range events {
		counts[e.Date.Format("2006-01")]++
	}
	months := make([]string, 0, len(counts))
	for m := range counts {
		months = append(months, m)
	}
	sort.Strings(months)

	out := make([]CountPoint, 0, len(months))
	for _, m := range months {
		out = append(out, CountPoint{Label: m, Count: counts[m]})
	}
	return out
}

func enrollmentsPerCenter(centers []models.CoachingCenter) []CountPoint {
	out := make([]CountPoint, 0, len(centers))
	for _, c := range centers {
		out = append(out, CountPoint{Label: c.Name, Count: len(c.Participants)})
	}
	return out
}

func summarizeAssessments(list []models.Assessment) AssessmentSummary {
	var base, end []models.Score
	for _, a := range list {
		switch a.Type {
		case models.AssessmentBaseline:
			base = append(base, a.Score)
		case models.AssessmentEndline:
			end = append(end, a.Score)
		}
	}
	s := AssessmentSummary{Baseline: averageScores(base), Endline: averageScores(end)}
	s.Improvement = SkillAverages{
		Teamwork:      round2(s.Endline.Teamwork - s.Baseline.Teamwork),
		Confidence:    round2(s.Endline.Confidence - s.Baseline.Confidence),
		Communication: round2(s.Endline.Communication - s.Baseline.Communication),
	}
	return s
}

func averageScores(scores []models.Score) SkillAverages {
	if len(scores) == 0 {
		return SkillAverages{}
	}
	var tw, cf, cm int
	for _, s := range scores {
		tw += s.Teamwork
		cf += s.Confidence
		cm += s.Communication
	}
	n := float64(len(scores))
	return SkillAverages{
		Teamwork:      round2(float64(tw) / n),
		Confidence:    round2(float64(cf) / n),
		Communication: round2(float64(cm) / n),
		Count:         len(scores),
	}
}

// childProgress lists children with both rounds recorded, in child order.
func childProgress(children []models.Child, list []models.Assessment) []ChildProgress {
	type rounds struct{ base, end *models.Score }
	byChild := map[models.ChildID]*rounds{}
	for i := range list {
		a := list[i]
		r, ok := byChild[a.ChildID]
		if !ok {
			r = &rounds{}
			byChild[a.ChildID] = r
		}
		score := a.Score
		switch a.Type {
		case models.AssessmentBaseline:
			r.base = &score
		case models.AssessmentEndline:
			r.end = &score
		}
	}

	out := []ChildProgress{}
	for _, c := range children {
		r, ok := byChild[c.ID]
		if !ok || r.base == nil || r.end == nil {
			continue
		}
		out = append(out, ChildProgress{
			ChildID:       c.ID,
			Name:          c.Name,
			BaselineTotal: r.base.Total(),
			EndlineTotal:  r.end.Total(),
			Improvement:   r.end.Total() - r.base.Total(),
		})
	}
	return out
}

func attendanceByCommunity(children []models.Child, sessions []models.Session) []CommunityAttendance {
	size := map[string]int{}
	for _, c := range children {
		size[c.Community]++
	}

	byCommunity := map[string]*CommunityAttendance{}
	var order []string
	for _, s := range sessions {
		if s.Status != models.SessionCompleted {
			continue
		}
		ca, ok := byCommunity[s.Community]
		if !ok {
			ca = &CommunityAttendance{Community: s.Community}
			byCommunity[s.Community] = ca
			order = append(order, s.Community)
		}
		ca.Sessions++
		ca.Attended += len(s.Participants)
		ca.Expected += size[s.Community]
	}
	sort.Strings(order)

	out := make([]CommunityAttendance, 0, len(order))
	for _, name := range order {
		ca := byCommunity[name]
		ca.Percent = attendancePercent(ca.Attended, ca.Expected)
		out = append(out, *ca)
	}
	return out
}

func homeVisitsPerChild(children []models.Child, visits []models.HomeVisit) []CountPoint {
	counts := map[models.ChildID]int{}
	for _, v := range visits {
		counts[v.ChildID]++
	}
	out := make([]CountPoint, 0, len(children))
	for _, c := range children {
		out = append(out, CountPoint{Label: c.Name, Count: counts[c.ID]})
	}
	return out
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
