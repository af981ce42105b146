// Package services file: services/app_store.go
package services

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"go-ultimate-hub/data"
	"go-ultimate-hub/logger"
	"go-ultimate-hub/models"
)

// ---------------- inputs ----------------

// EventInput carries the fields of a new event.
type EventInput struct {
	Name           string
	Date           time.Time
	Description    string
	VenueID        models.VenueID
	OrganizationID models.OrganizationID
	Type           models.EventType
	Winners        *models.Winners
	Highlights     string
	CreatedBy      models.UserID
}

// OrganizationInput carries the fields of a new organization.
type OrganizationInput struct {
	Name       string
	Organizers []models.UserID
}

// CoachingCenterInput carries the fields of a new coaching center.
type CoachingCenterInput struct {
	Name        string
	Specialty   string
	Location    string
	Lat, Lng    float64
	Description string
	Fee         float64
	Schedule    string
}

// ParticipantInput carries the participant registration form.
type ParticipantInput struct {
	Name, Email, Phone, Location string
}

// OrganizerInput carries the organizer registration form.
type OrganizerInput struct {
	Name, Email, OrgName string
}

// CoachInput carries the coach registration form.
type CoachInput struct {
	Name, Email string
	Communities []string
}

// HomeVisitInput carries a new home visit.
type HomeVisitInput struct {
	ChildID models.ChildID
	Date    time.Time
	Notes   string
}

// AssessmentInput carries a new assessment.
type AssessmentInput struct {
	ChildID models.ChildID
	Date    time.Time
	Type    models.AssessmentType
	Score   models.Score
}

// ---------------- store ----------------

// Snapshot is a consistent copy of every mutable collection.
type Snapshot struct {
	Users           []models.User
	Venues          []models.Venue
	Organizations   []models.Organization
	Events          []models.Event
	CoachingCenters []models.CoachingCenter
	Children        []models.Child
	Sessions        []models.Session
	Assessments     []models.Assessment
	HomeVisits      []models.HomeVisit
	Alerts          []models.Alert
	CheckIns        []models.CheckInRecord
}

// AppStore holds the hub's mutable collections. Every method is safe for concurrent use;
// readers always receive copies.
type AppStore struct {
	mu sync.RWMutex

	users           []models.User
	venues          []models.Venue
	organizations   []models.Organization
	events          []models.Event
	coachingCenters []models.CoachingCenter
	children        []models.Child
	sessions        []models.Session
	assessments     []models.Assessment
	homeVisits      []models.HomeVisit
	alerts          []models.Alert
	checkIns        []models.CheckInRecord

	ids      *idGenerator
	notifier Notifier
}

// NewAppStore seeds a store from ds. A nil notifier discards change notifications.
func NewAppStore(ds data.Dataset, notifier Notifier) *AppStore {
	if notifier == nil {
		notifier = noopNotifier{}
	}
	s := &AppStore{
		users:           ds.Users,
		venues:          ds.Venues,
		organizations:   ds.Organizations,
		events:          ds.Events,
		coachingCenters: ds.CoachingCenters,
		children:        ds.Children,
		sessions:        ds.Sessions,
		assessments:     ds.Assessments,
		homeVisits:      ds.HomeVisits,
		alerts:          ds.Alerts,
		ids:             newIDGenerator(time.Now),
		notifier:        notifier,
	}
	logger.Info.Printf("[NewAppStore] Seeded %d users, %d events, %d coaching centers, %d children",
		len(s.users), len(s.events), len(s.coachingCenters), len(s.children))
	return s
}

// ---------------- events ----------------

// AddEvent appends a new event with id max(existing)+1 (1 when none exist) and no participants.
func (s *AppStore) AddEvent(in EventInput) (models.Event, error) {
	s.mu.Lock()
	if s.venueIndex(in.VenueID) < 0 {
		s.mu.Unlock()
		return models.Event{}, fmt.Errorf("%w: %s", ErrVenueNotFound, in.VenueID)
	}
	oi := s.organizationIndex(in.OrganizationID)
	if oi < 0 {
		s.mu.Unlock()
		return models.Event{}, fmt.Errorf("%w: %s", ErrOrganizationNotFound, in.OrganizationID)
	}
	// organizers may only create events for organizations they run
	if i := s.userIndex(in.CreatedBy); i >= 0 && s.users[i].Role() == models.RoleOrganizer &&
		!s.organizations[oi].HasOrganizer(in.CreatedBy) {
		s.mu.Unlock()
		return models.Event{}, fmt.Errorf("%w: %s does not organize %s", ErrNotOrganizer, in.CreatedBy, in.OrganizationID)
	}

	var maxID models.EventID
	for _, e := range s.events {
		if e.ID > maxID {
			maxID = e.ID
		}
	}

	ev := models.Event{
		ID:             maxID + 1,
		Name:           in.Name,
		Date:           in.Date,
		Description:    in.Description,
		VenueID:        in.VenueID,
		OrganizationID: in.OrganizationID,
		Type:           in.Type,
		Participants:   []models.UserID{},
		Winners:        in.Winners,
		Highlights:     in.Highlights,
	}
	s.events = append(s.events, ev)

	if i := s.userIndex(in.CreatedBy); i >= 0 {
		if p, ok := s.users[i].Profile.(models.OrganizerProfile); ok {
			p.Events = append(append([]models.EventID{}, p.Events...), ev.ID)
			s.users[i].Profile = p
		}
	}
	s.mu.Unlock()

	logger.Info.Printf("[AddEvent] Created event id=%d name=%q type=%s", ev.ID, ev.Name, ev.Type)
	s.notifier.Notify(ActionEventAdded, map[string]interface{}{"eventId": int(ev.ID), "name": ev.Name})
	return ev.Clone(), nil
}

// ToggleRegistration removes userID from the event's participants if present, otherwise
// appends it. Calling it twice restores the original list. It reports whether the user
// is registered afterwards.
func (s *AppStore) ToggleRegistration(eventID models.EventID, userID models.UserID) (bool, error) {
	s.mu.Lock()
	i := s.eventIndex(eventID)
	if i < 0 {
		s.mu.Unlock()
		logger.Warn.Printf("[ToggleRegistration] No event id=%d; ignoring", eventID)
		return false, fmt.Errorf("%w: %d", ErrEventNotFound, eventID)
	}

	ev := &s.events[i]
	var registered bool
	ev.Participants, registered = toggleID(ev.Participants, userID)

	if u := s.userIndex(userID); u >= 0 {
		if p, ok := s.users[u].Profile.(models.ParticipantProfile); ok {
			p.RegisteredEvents, _ = toggleID(p.RegisteredEvents, eventID)
			s.users[u].Profile = p
		}
	}
	s.mu.Unlock()

	logger.Info.Printf("[ToggleRegistration] user=%s event=%d registered=%v", userID, eventID, registered)
	s.notifier.Notify(ActionRegistrationToggled, map[string]interface{}{
		"eventId":    int(eventID),
		"userId":     string(userID),
		"registered": registered,
	})
	return registered, nil
}

// Events returns every event in insertion order.
func (s *AppStore) Events() []models.Event {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneEvents(s.events)
}

// Event looks up one event by id.
func (s *AppStore) Event(id models.EventID) (models.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i := s.eventIndex(id); i >= 0 {
		return s.events[i].Clone(), nil
	}
	return models.Event{}, fmt.Errorf("%w: %d", ErrEventNotFound, id)
}

// ---------------- coaching centers ----------------

// ToggleCoachingCenterRegistration enrolls or un-enrolls userID at the center.
func (s *AppStore) ToggleCoachingCenterRegistration(centerID models.CenterID, userID models.UserID) (bool, error) {
	s.mu.Lock()
	i := s.centerIndex(centerID)
	if i < 0 {
		s.mu.Unlock()
		logger.Warn.Printf("[ToggleCoachingCenterRegistration] No center id=%s; ignoring", centerID)
		return false, fmt.Errorf("%w: %s", ErrCenterNotFound, centerID)
	}
	var enrolled bool
	s.coachingCenters[i].Participants, enrolled = toggleID(s.coachingCenters[i].Participants, userID)
	s.mu.Unlock()

	logger.Info.Printf("[ToggleCoachingCenterRegistration] user=%s center=%s enrolled=%v", userID, centerID, enrolled)
	s.notifier.Notify(ActionEnrollmentToggled, map[string]interface{}{
		"centerId": string(centerID),
		"userId":   string(userID),
		"enrolled": enrolled,
	})
	return enrolled, nil
}

// AddCoachingCenter appends a new center with no participants.
func (s *AppStore) AddCoachingCenter(in CoachingCenterInput) (models.CoachingCenter, error) {
	if in.Fee < 0 {
		return models.CoachingCenter{}, fmt.Errorf("%w: fee must not be negative", ErrInvalidInput)
	}
	cc := models.CoachingCenter{
		ID:           models.CenterID(s.ids.next(prefixCenter)),
		Name:         in.Name,
		Specialty:    in.Specialty,
		Location:     in.Location,
		Lat:          in.Lat,
		Lng:          in.Lng,
		Participants: []models.UserID{},
		Description:  in.Description,
		Fee:          in.Fee,
		Schedule:     in.Schedule,
	}

	s.mu.Lock()
	s.coachingCenters = append(s.coachingCenters, cc)
	s.mu.Unlock()

	logger.Info.Printf("[AddCoachingCenter] Created center id=%s name=%q", cc.ID, cc.Name)
	s.notifier.Notify(ActionCoachingCenterAdded, map[string]interface{}{"centerId": string(cc.ID), "name": cc.Name})
	return cc.Clone(), nil
}

// CoachingCenters returns every center.
func (s *AppStore) CoachingCenters() []models.CoachingCenter {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.CoachingCenter, len(s.coachingCenters))
	for i, c := range s.coachingCenters {
		out[i] = c.Clone()
	}
	return out
}

// CoachingCenter looks up one center by id.
func (s *AppStore) CoachingCenter(id models.CenterID) (models.CoachingCenter, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i := s.centerIndex(id); i >= 0 {
		return s.coachingCenters[i].Clone(), nil
	}
	return models.CoachingCenter{}, fmt.Errorf("%w: %s", ErrCenterNotFound, id)
}

// ---------------- organizations ----------------

// AddOrganization appends a new organization.
func (s *AppStore) AddOrganization(in OrganizationInput) (models.Organization, error) {
	org := models.Organization{
		ID:         models.OrganizationID(s.ids.next(prefixOrganization)),
		Name:       in.Name,
		Organizers: dedupeIDs(in.Organizers),
	}

	s.mu.Lock()
	s.organizations = append(s.organizations, org)
	s.mu.Unlock()

	logger.Info.Printf("[AddOrganization] Created organization id=%s name=%q", org.ID, org.Name)
	s.notifier.Notify(ActionOrganizationAdded, map[string]interface{}{"organizationId": string(org.ID), "name": org.Name})
	return org.Clone(), nil
}

// Organizations returns every organization.
func (s *AppStore) Organizations() []models.Organization {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Organization, len(s.organizations))
	for i, o := range s.organizations {
		out[i] = o.Clone()
	}
	return out
}

// ---------------- users ----------------

// AddUser appends u, generating an id from its role when u.ID is empty.
func (s *AppStore) AddUser(u models.User) (models.User, error) {
	if u.Profile == nil {
		return models.User{}, fmt.Errorf("%w: user has no role", ErrUnknownRole)
	}
	if u.ID == "" {
		u.ID = models.UserID(s.ids.next(rolePrefix(u.Role())))
	}
	if p, ok := u.Profile.(models.ParticipantProfile); ok && p.QRCode == "" {
		p.QRCode = string(u.ID)
		u.Profile = p
	}
	u = u.Clone()

	s.mu.Lock()
	s.users = append(s.users, u)
	s.mu.Unlock()

	logger.Info.Printf("[AddUser] Created %s id=%s", u.Role(), u.ID)
	s.notifier.Notify(ActionUserAdded, map[string]interface{}{"userId": string(u.ID), "role": string(u.Role())})
	return u.Clone(), nil
}

// AddParticipant creates a participant account.
func (s *AppStore) AddParticipant(in ParticipantInput) (models.User, error) {
	return s.AddUser(models.User{
		Name:  in.Name,
		Email: in.Email,
		Profile: models.ParticipantProfile{
			Phone:            in.Phone,
			Location:         in.Location,
			RegisteredEvents: []models.EventID{},
		},
	})
}

// AddOrganizer creates an organizer account.
func (s *AppStore) AddOrganizer(in OrganizerInput) (models.User, error) {
	return s.AddUser(models.User{
		Name:    in.Name,
		Email:   in.Email,
		Profile: models.OrganizerProfile{OrgName: in.OrgName, Events: []models.EventID{}},
	})
}

// AddCoach creates a coach account.
func (s *AppStore) AddCoach(in CoachInput) (models.User, error) {
	return s.AddUser(models.User{
		Name:    in.Name,
		Email:   in.Email,
		Profile: models.CoachProfile{Communities: in.Communities, Sessions: []models.SessionID{}},
	})
}

// Users returns every user.
func (s *AppStore) Users() []models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.User, len(s.users))
	for i, u := range s.users {
		out[i] = u.Clone()
	}
	return out
}

// User looks up one user by id.
func (s *AppStore) User(id models.UserID) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i := s.userIndex(id); i >= 0 {
		return s.users[i].Clone(), nil
	}
	return models.User{}, fmt.Errorf("%w: %s", ErrUserNotFound, id)
}

// FirstUserWithRole returns the first user, in seed order, holding role.
func (s *AppStore) FirstUserWithRole(role models.Role) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.Role() == role {
			return u.Clone(), nil
		}
	}
	return models.User{}, fmt.Errorf("%w: no user with role %s", ErrUserNotFound, role)
}

// ---------------- child welfare ----------------

// MarkSessionAttendance adds childID to the session's participants unless already present.
// It reports whether the list changed.
func (s *AppStore) MarkSessionAttendance(sessionID models.SessionID, childID models.ChildID) (bool, error) {
	s.mu.Lock()
	i := s.sessionIndex(sessionID)
	if i < 0 {
		s.mu.Unlock()
		return false, fmt.Errorf("%w: %s", ErrSessionNotFound, sessionID)
	}
	if s.childIndex(childID) < 0 {
		s.mu.Unlock()
		return false, fmt.Errorf("%w: %s", ErrChildNotFound, childID)
	}

	sess := &s.sessions[i]
	if sess.HasParticipant(childID) {
		s.mu.Unlock()
		logger.Debug.Printf("[MarkSessionAttendance] child=%s already marked for session=%s", childID, sessionID)
		return false, nil
	}
	sess.Participants = append(sess.Participants, childID)
	s.mu.Unlock()

	logger.Info.Printf("[MarkSessionAttendance] child=%s marked present for session=%s", childID, sessionID)
	s.notifier.Notify(ActionAttendanceMarked, map[string]interface{}{
		"sessionId": string(sessionID),
		"childId":   string(childID),
	})
	return true, nil
}

// AddHomeVisit appends a home visit for an existing child.
func (s *AppStore) AddHomeVisit(in HomeVisitInput) (models.HomeVisit, error) {
	hv := models.HomeVisit{
		ID:      models.HomeVisitID(s.ids.next(prefixHomeVisit)),
		ChildID: in.ChildID,
		Date:    in.Date,
		Notes:   strings.TrimSpace(in.Notes),
	}

	s.mu.Lock()
	if s.childIndex(in.ChildID) < 0 {
		s.mu.Unlock()
		return models.HomeVisit{}, fmt.Errorf("%w: %s", ErrChildNotFound, in.ChildID)
	}
	s.homeVisits = append(s.homeVisits, hv)
	s.mu.Unlock()

	logger.Info.Printf("[AddHomeVisit] Recorded visit id=%s child=%s", hv.ID, hv.ChildID)
	s.notifier.Notify(ActionHomeVisitAdded, map[string]interface{}{"homeVisitId": string(hv.ID), "childId": string(hv.ChildID)})
	return hv, nil
}

// AddAssessment appends an assessment. Each child has at most one assessment per round.
func (s *AppStore) AddAssessment(in AssessmentInput) (models.Assessment, error) {
	if _, err := models.ParseAssessmentType(string(in.Type)); err != nil {
		return models.Assessment{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if err := in.Score.Validate(); err != nil {
		return models.Assessment{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	a := models.Assessment{
		ID:      models.AssessmentID(s.ids.next(prefixAssessment)),
		ChildID: in.ChildID,
		Date:    in.Date,
		Type:    in.Type,
		Score:   in.Score,
	}

	s.mu.Lock()
	if s.childIndex(in.ChildID) < 0 {
		s.mu.Unlock()
		return models.Assessment{}, fmt.Errorf("%w: %s", ErrChildNotFound, in.ChildID)
	}
	for _, existing := range s.assessments {
		if existing.ChildID == in.ChildID && existing.Type == in.Type {
			s.mu.Unlock()
			return models.Assessment{}, fmt.Errorf("%w: %s %s", ErrDuplicateAssessment, in.ChildID, in.Type)
		}
	}
	s.assessments = append(s.assessments, a)
	s.mu.Unlock()

	logger.Info.Printf("[AddAssessment] Recorded %s assessment id=%s child=%s", a.Type, a.ID, a.ChildID)
	s.notifier.Notify(ActionAssessmentAdded, map[string]interface{}{
		"assessmentId": string(a.ID),
		"childId":      string(a.ChildID),
		"type":         string(a.Type),
	})
	return a, nil
}

// Children returns every child.
func (s *AppStore) Children() []models.Child {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Child{}, s.children...)
}

// Sessions returns every coaching session.
func (s *AppStore) Sessions() []models.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Session, len(s.sessions))
	for i, sess := range s.sessions {
		out[i] = sess.Clone()
	}
	return out
}

// Assessments returns every assessment in insertion order.
func (s *AppStore) Assessments() []models.Assessment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Assessment{}, s.assessments...)
}

// HomeVisits returns every home visit in insertion order.
func (s *AppStore) HomeVisits() []models.HomeVisit {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.HomeVisit{}, s.homeVisits...)
}

// Alerts returns the welfare alerts.
func (s *AppStore) Alerts() []models.Alert {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Alert{}, s.alerts...)
}

// ---------------- venues & check-ins ----------------

// Venues returns every venue.
func (s *AppStore) Venues() []models.Venue {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Venue{}, s.venues...)
}

// Venue looks up one venue by id.
func (s *AppStore) Venue(id models.VenueID) (models.Venue, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i := s.venueIndex(id); i >= 0 {
		return s.venues[i], nil
	}
	return models.Venue{}, fmt.Errorf("%w: %s", ErrVenueNotFound, id)
}

// RecordCheckIn appends a successful check-in to the log.
func (s *AppStore) RecordCheckIn(rec models.CheckInRecord) {
	s.mu.Lock()
	s.checkIns = append(s.checkIns, rec)
	s.mu.Unlock()
}

// CheckIns returns the check-in log, oldest first.
func (s *AppStore) CheckIns() []models.CheckInRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.CheckInRecord{}, s.checkIns...)
}

// Snapshot copies every collection under a single read lock.
func (s *AppStore) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := Snapshot{
		Users:           make([]models.User, len(s.users)),
		Venues:          append([]models.Venue{}, s.venues...),
		Organizations:   make([]models.Organization, len(s.organizations)),
		Events:          cloneEvents(s.events),
		CoachingCenters: make([]models.CoachingCenter, len(s.coachingCenters)),
		Children:        append([]models.Child{}, s.children...),
		Sessions:        make([]models.Session, len(s.sessions)),
		Assessments:     append([]models.Assessment{}, s.assessments...),
		HomeVisits:      append([]models.HomeVisit{}, s.homeVisits...),
		Alerts:          append([]models.Alert{}, s.alerts...),
		CheckIns:        append([]models.CheckInRecord{}, s.checkIns...),
	}
	for i, u := range s.users {
		snap.Users[i] = u.Clone()
	}
	for i, o := range s.organizations {
		snap.Organizations[i] = o.Clone()
	}
	for i, c := range s.coachingCenters {
		snap.CoachingCenters[i] = c.Clone()
	}
	for i, sess := range s.sessions {
		snap.Sessions[i] = sess.Clone()
	}
	return snap
}

// ---------------- helpers (callers hold the lock) ----------------

func (s *AppStore) eventIndex(id models.EventID) int {
	for i := range s.events {
		if s.events[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *AppStore) userIndex(id models.UserID) int {
	for i := range s.users {
		if s.users[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *AppStore) venueIndex(id models.VenueID) int {
	for i := range s.venues {
		if s.venues[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *AppStore) organizationIndex(id models.OrganizationID) int {
	for i := range s.organizations {
		if s.organizations[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *AppStore) centerIndex(id models.CenterID) int {
	for i := range s.coachingCenters {
		if s.coachingCenters[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *AppStore) sessionIndex(id models.SessionID) int {
	for i := range s.sessions {
		if s.sessions[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *AppStore) childIndex(id models.ChildID) int {
	for i := range s.children {
		if s.children[i].ID == id {
			return i
		}
	}
	return -1
}

func cloneEvents(in []models.Event) []models.Event {
	out := make([]models.Event, len(in))
	for i, e := range in {
		out[i] = e.Clone()
	}
	return out
}

// toggleID removes id from list if present, otherwise appends it. The returned bool
// reports whether id is in the resulting list. The input slice is never modified in place.
func toggleID[T comparable](list []T, id T) ([]T, bool) {
	out := make([]T, 0, len(list)+1)
	found := false
	for _, v := range list {
		if v == id {
			found = true
			continue
		}
		out = append(out, v)
	}
	if found {
		return out, false
	}
	return append(out, id), true
}

func dedupeIDs(in []models.UserID) []models.UserID {
	seen := make(map[models.UserID]bool, len(in))
	out := make([]models.UserID, 0, len(in))
	for _, id := range in {
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}

func rolePrefix(r models.Role) string {
	switch r {
	case models.RoleAdmin:
		return prefixAdmin
	case models.RoleOrganizer:
		return prefixOrganizer
	case models.RoleCoach:
		return prefixCoach
	default:
		return prefixParticipant
	}
}
