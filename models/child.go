// Package models file: models/child.go
package models

import (
	"fmt"
	"time"
)

// Child is a program beneficiary. Children are not platform accounts.
type Child struct {
	ID        ChildID `json:"id"`
	Name      string  `json:"name"`
	Gender    string  `json:"gender"`
	Age       int     `json:"age"`
	Community string  `json:"community"`
	School    string  `json:"school"`
}

// SessionStatus is the lifecycle state of a coaching session.
type SessionStatus string

const (
	SessionCompleted SessionStatus = "completed"
	SessionUpcoming  SessionStatus = "upcoming"
)

// Session is one coaching occurrence for a community.
// Coach is the display name; CoachID links to the coach account when known.
type Session struct {
	ID           SessionID     `json:"id"`
	Date         time.Time     `json:"date"`
	Community    string        `json:"community"`
	Coach        string        `json:"coach"`
	CoachID      UserID        `json:"coachId,omitempty"`
	Participants []ChildID     `json:"participants"`
	Status       SessionStatus `json:"status"`
}

// HasParticipant reports whether the child attended the session.
func (s Session) HasParticipant(id ChildID) bool {
	for _, p := range s.Participants {
		if p == id {
			return true
		}
	}
	return false
}

// Clone returns a copy that shares no slices with s.
func (s Session) Clone() Session {
	s.Participants = append([]ChildID{}, s.Participants...)
	return s
}

// AssessmentType is the round of an assessment.
type AssessmentType string

const (
	AssessmentBaseline AssessmentType = "Baseline"
	AssessmentEndline  AssessmentType = "Endline"
)

// ParseAssessmentType validates an assessment round name.
func ParseAssessmentType(s string) (AssessmentType, error) {
	switch AssessmentType(s) {
	case AssessmentBaseline, AssessmentEndline:
		return AssessmentType(s), nil
	}
	return "", fmt.Errorf("unknown assessment type %q", s)
}

// Score values are on a 1..10 scale.
const (
	MinScore = 1
	MaxScore = 10
)

// Score holds the three life-skill ratings of an assessment.
type Score struct {
	Teamwork      int `json:"teamwork"`
	Confidence    int `json:"confidence"`
	Communication int `json:"communication"`
}

// Validate checks every rating is within MinScore..MaxScore.
func (s Score) Validate() error {
	for name, v := range map[string]int{
		"teamwork":      s.Teamwork,
		"confidence":    s.Confidence,
		"communication": s.Communication,
	} {
		if v < MinScore || v > MaxScore {
			return fmt.Errorf("%s score %d out of range %d-%d", name, v, MinScore, MaxScore)
		}
	}
	return nil
}

// Total sums the three ratings.
func (s Score) Total() int {
	return s.Teamwork + s.Confidence + s.Communication
}

// Assessment is a scored evaluation of a child's skills.
type Assessment struct {
	ID      AssessmentID   `json:"id"`
	ChildID ChildID        `json:"childId"`
	Date    time.Time      `json:"date"`
	Type    AssessmentType `json:"type"`
	Score   Score          `json:"score"`
}

// HomeVisit records a welfare visit to a child's home.
type HomeVisit struct {
	ID      HomeVisitID `json:"id"`
	ChildID ChildID     `json:"childId"`
	Date    time.Time   `json:"date"`
	Notes   string      `json:"notes"`
}

// AlertSeverity ranks welfare alerts.
type AlertSeverity string

const (
	AlertLow    AlertSeverity = "low"
	AlertMedium AlertSeverity = "medium"
	AlertHigh   AlertSeverity = "high"
)

// Alert flags a welfare concern about a child.
type Alert struct {
	ID       AlertID       `json:"id"`
	ChildID  ChildID       `json:"childId"`
	Severity AlertSeverity `json:"severity"`
	Message  string        `json:"message"`
	Date     time.Time     `json:"date"`
}
