// Package services holds the hub's in-memory state and the rules that mutate and read it.
// File: services/errors.go
package services

import "errors"

// Not-found conditions; callers render these as an empty or fallback state.
var (
	ErrEventNotFound        = errors.New("event not found")
	ErrUserNotFound         = errors.New("user not found")
	ErrVenueNotFound        = errors.New("venue not found")
	ErrOrganizationNotFound = errors.New("organization not found")
	ErrCenterNotFound       = errors.New("coaching center not found")
	ErrChildNotFound        = errors.New("child not found")
	ErrSessionNotFound      = errors.New("session not found")
	ErrImageNotFound        = errors.New("image not found")
)

// Validation and conflict conditions.
var (
	ErrUnknownRole          = errors.New("unknown role")
	ErrInvalidInput         = errors.New("invalid input")
	ErrDuplicateAssessment  = errors.New("assessment of this type already recorded for child")
	ErrNotLoggedIn          = errors.New("no user logged in")
	ErrNotRegistered        = errors.New("user is not registered for this event")
	ErrNotOrganizer         = errors.New("user does not organize this organization")
	ErrScannerBusy          = errors.New("scanner is resetting, try again shortly")
	ErrScannerClosed        = errors.New("scanner is closed")
	ErrInvalidCode          = errors.New("invalid check-in code")
	ErrMapsNotConfigured    = errors.New("maps API key is not configured")
	ErrUnknownLeaderboardBy = errors.New("unknown leaderboard statistic")
)
