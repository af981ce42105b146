// Package services file: services/notifier.go
package services

// Change notifications published after state mutations.
const (
	ActionEventAdded          = "eventAdded"
	ActionRegistrationToggled = "registrationToggled"
	ActionEnrollmentToggled   = "enrollmentToggled"
	ActionOrganizationAdded   = "organizationAdded"
	ActionCoachingCenterAdded = "coachingCenterAdded"
	ActionUserAdded           = "userAdded"
	ActionHomeVisitAdded      = "homeVisitAdded"
	ActionAssessmentAdded     = "assessmentAdded"
	ActionAttendanceMarked    = "attendanceMarked"
	ActionCheckIn             = "checkIn"
	ActionCheckInRejected     = "checkInRejected"
	ActionImageAdded          = "imageAdded"
	ActionImageDeleted        = "imageDeleted"
)

// Notifier receives a message for every state change. Implementations must not block.
type Notifier interface {
	Notify(action string, payload map[string]interface{})
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(action string, payload map[string]interface{})

// Notify calls f.
func (f NotifierFunc) Notify(action string, payload map[string]interface{}) {
	f(action, payload)
}

// MultiNotifier fans one notification out to several listeners.
type MultiNotifier []Notifier

// Notify forwards to every non-nil listener in order.
func (m MultiNotifier) Notify(action string, payload map[string]interface{}) {
	for _, n := range m {
		if n != nil {
			n.Notify(action, payload)
		}
	}
}

type noopNotifier struct{}

func (noopNotifier) Notify(string, map[string]interface{}) {}
