// file: heartbeat.go
package main

import (
	"context"
	"net/http"
	"sort"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"go-ultimate-hub/controllers"
	"go-ultimate-hub/logger"
	"go-ultimate-hub/services"
)

// StationStatus is the last time a check-in station was heard from.
type StationStatus struct {
	Station  string    `json:"station"`
	LastSeen time.Time `json:"lastSeen"`
}

// StationMonitor tracks active check-in stations. Stations report with explicit
// heartbeats, and every scan counts as one.
type StationMonitor struct {
	activeStations map[string]time.Time
	mu             sync.Mutex
	now            func() time.Time
}

// NewStationMonitor initializes a heartbeat tracker
func NewStationMonitor() *StationMonitor {
	return &StationMonitor{
		activeStations: make(map[string]time.Time),
		now:            time.Now,
	}
}

// UpdateHeartbeat marks a station as active
func (h *StationMonitor) UpdateHeartbeat(station string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.activeStations[station] = h.now()
	logger.Debug.Printf("[StationMonitor.UpdateHeartbeat] Station=%s updated", station)
}

// Active lists known stations by name.
func (h *StationMonitor) Active() []StationStatus {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]StationStatus, 0, len(h.activeStations))
	for id, seen := range h.activeStations {
		out = append(out, StationStatus{Station: id, LastSeen: seen})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Station < out[j].Station })
	return out
}

// removeInactive drops stations silent for longer than timeout.
func (h *StationMonitor) removeInactive(timeout time.Duration) {
	h.mu.Lock()
	defer h.mu.Unlock()
	now := h.now()
	for id, lastSeen := range h.activeStations {
		if now.Sub(lastSeen) > timeout {
			logger.Info.Printf("[StationMonitor] Removing inactive station=%s (timeout=%v)", id, timeout)
			delete(h.activeStations, id)
		}
	}
}

// CleanupInactiveStations sweeps every interval until ctx is done.
func (h *StationMonitor) CleanupInactiveStations(ctx context.Context, interval, timeout time.Duration) {
	ticker := time.NewTicker(interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				h.removeInactive(timeout)
			case <-ctx.Done():
				return
			}
		}
	}()
}

// HeartbeatHandler records a heartbeat for the :station path parameter.
func (h *StationMonitor) HeartbeatHandler(c *gin.Context) {
	station := c.Param("station")
	if station == "" {
		logger.Warn.Println("[HeartbeatHandler] Missing station id")
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing station id"})
		return
	}
	h.UpdateHeartbeat(station)
	c.Status(http.StatusNoContent)
}

// StationsHandler lists active stations.
func (h *StationMonitor) StationsHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"stations": h.Active()})
}

// monitoredScanner counts every scan as a heartbeat of its station.
type monitoredScanner struct {
	scanner  controllers.CheckInScanner
	stations *StationMonitor
}

func (m monitoredScanner) Scan(stationID, payload string) (services.CheckInResult, error) {
	if stationID == "" {
		stationID = "default"
	}
	m.stations.UpdateHeartbeat(stationID)
	return m.scanner.Scan(stationID, payload)
}
