// Package services file: services/ids.go
package services

import (
	"strconv"
	"sync"
	"time"
)

// id prefixes for generated identifiers
const (
	prefixAdmin        = "A"
	prefixOrganizer    = "O"
	prefixParticipant  = "P"
	prefixCoach        = "C"
	prefixOrganization = "ORG"
	prefixCenter       = "CC"
	prefixHomeVisit    = "HV"
	prefixAssessment   = "AS"
)

// idGenerator produces ids of the form <prefix><base36 millis>. The millisecond
// component never repeats within a process, so two calls in the same tick still differ.
type idGenerator struct {
	mu   sync.Mutex
	last int64
	now  func() time.Time
}

func newIDGenerator(now func() time.Time) *idGenerator {
	return &idGenerator{now: now}
}

func (g *idGenerator) next(prefix string) string {
	g.mu.Lock()
	defer g.mu.Unlock()

	ms := g.now().UnixMilli()
	if ms <= g.last {
		ms = g.last + 1
	}
	g.last = ms
	return prefix + strconv.FormatInt(ms, 36)
}
