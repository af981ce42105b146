// Package services file: services/checkin_service.go
package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"go-ultimate-hub/logger"
	"go-ultimate-hub/models"
)

// DefaultResetDelay re-arms a station after each scan.
const DefaultResetDelay = 3 * time.Second

// checkInFailureMessage is shown for every failed scan.
const checkInFailureMessage = "Invalid QR code or event not found"

// EventLookup resolves events by id.
type EventLookup interface {
	Event(id models.EventID) (models.Event, error)
}

// CheckInStore is what the scanner reads from and records into.
type CheckInStore interface {
	EventLookup
	RecordCheckIn(rec models.CheckInRecord)
}

// TicketPayload is the JSON encoded in a ticket QR code.
type TicketPayload struct {
	EventID  *models.EventID `json:"eventId"`
	UserName string          `json:"userName,omitempty"`
}

// CheckInResult is the outcome of matching one scanned payload.
type CheckInResult struct {
	Success   bool           `json:"success"`
	EventID   models.EventID `json:"eventId,omitempty"`
	EventName string         `json:"eventName,omitempty"`
	UserName  string         `json:"userName,omitempty"`
	Message   string         `json:"message"`
}

// Match resolves a scanned payload against the event registry. Accepted forms are a JSON
// ticket {"eventId":N,"userName":"..."} or a bare decimal event id. An empty payload fails
// without consulting events.
func Match(events EventLookup, payload string) (CheckInResult, error) {
	payload = strings.TrimSpace(payload)
	if payload == "" {
		return failedCheckIn(), fmt.Errorf("%w: empty payload", ErrInvalidCode)
	}

	id, userName, err := parsePayload(payload)
	if err != nil {
		return failedCheckIn(), err
	}

	ev, err := events.Event(id)
	if err != nil {
		return failedCheckIn(), err
	}

	msg := fmt.Sprintf("Checked in to %s", ev.Name)
	if userName != "" {
		msg = fmt.Sprintf("Welcome %s! Checked in to %s", userName, ev.Name)
	}
	return CheckInResult{
		Success:   true,
		EventID:   ev.ID,
		EventName: ev.Name,
		UserName:  userName,
		Message:   msg,
	}, nil
}

func parsePayload(payload string) (models.EventID, string, error) {
	var ticket TicketPayload
	if err := json.Unmarshal([]byte(payload), &ticket); err == nil && ticket.EventID != nil {
		return *ticket.EventID, ticket.UserName, nil
	}

	for _, r := range payload {
		if r < '0' || r > '9' {
			return 0, "", fmt.Errorf("%w: %q", ErrInvalidCode, payload)
		}
	}
	id, err := models.ParseEventID(payload)
	if err != nil {
		return 0, "", fmt.Errorf("%w: %v", ErrInvalidCode, err)
	}
	return id, "", nil
}

func failedCheckIn() CheckInResult {
	return CheckInResult{Success: false, Message: checkInFailureMessage}
}

// ---------------- scanner ----------------

type station struct {
	armed bool
	timer *time.Timer
}

// Scanner gates scans per station. Every attempt disarms the station until the reset
// delay elapses.
type Scanner struct {
	mu       sync.Mutex
	stations map[string]*station
	closed   bool

	store    CheckInStore
	notifier Notifier
	delay    time.Duration
	now      func() time.Time
}

// NewScanner builds a scanner. A non-positive delay uses DefaultResetDelay.
func NewScanner(store CheckInStore, notifier Notifier, delay time.Duration) *Scanner {
	if delay <= 0 {
		delay = DefaultResetDelay
	}
	if notifier == nil {
		notifier = noopNotifier{}
	}
	return &Scanner{
		stations: make(map[string]*station),
		store:    store,
		notifier: notifier,
		delay:    delay,
		now:      time.Now,
	}
}

// Scan matches payload at stationID. It returns ErrScannerBusy while the station is still
// resetting from its previous attempt.
func (s *Scanner) Scan(stationID, payload string) (CheckInResult, error) {
	if stationID == "" {
		stationID = "default"
	}

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return CheckInResult{}, ErrScannerClosed
	}
	st, ok := s.stations[stationID]
	if !ok {
		st = &station{armed: true}
		s.stations[stationID] = st
	}
	if !st.armed {
		s.mu.Unlock()
		logger.Debug.Printf("[Scan] Station %s busy; scan dropped", stationID)
		return CheckInResult{}, ErrScannerBusy
	}
	st.armed = false
	st.timer = time.AfterFunc(s.delay, func() { s.rearm(stationID) })
	s.mu.Unlock()

	result, err := Match(s.store, payload)
	if err != nil {
		logger.Warn.Printf("[Scan] Station %s rejected payload: %v", stationID, err)
		s.notifier.Notify(ActionCheckInRejected, map[string]interface{}{"station": stationID})
		return result, err
	}

	s.store.RecordCheckIn(models.CheckInRecord{
		EventID:   result.EventID,
		EventName: result.EventName,
		UserName:  result.UserName,
		Station:   stationID,
		At:        s.now(),
	})
	logger.Info.Printf("[Scan] Station %s checked in %q to event %d", stationID, result.UserName, result.EventID)
	s.notifier.Notify(ActionCheckIn, map[string]interface{}{
		"eventId":   int(result.EventID),
		"eventName": result.EventName,
		"userName":  result.UserName,
		"station":   stationID,
	})
	return result, nil
}

// Armed reports whether stationID would accept a scan now.
func (s *Scanner) Armed(stationID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	st, ok := s.stations[stationID]
	return !s.closed && (!ok || st.armed)
}

func (s *Scanner) rearm(stationID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if st, ok := s.stations[stationID]; ok && !s.closed {
		st.armed = true
		st.timer = nil
	}
}

// Close stops every pending reset timer. Later scans fail with ErrScannerClosed.
func (s *Scanner) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	for id, st := range s.stations {
		if st.timer != nil {
			st.timer.Stop()
			st.timer = nil
		}
		delete(s.stations, id)
	}
	logger.Info.Println("[Scanner.Close] Stopped all station timers")
}

// IsCheckInFailure reports whether err is a matching failure rather than a gate condition.
func IsCheckInFailure(err error) bool {
	return errors.Is(err, ErrInvalidCode) || errors.Is(err, ErrEventNotFound)
}
