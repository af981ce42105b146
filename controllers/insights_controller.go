// Package controllers file: controllers/insights_controller.go
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-ultimate-hub/middleware"
	"go-ultimate-hub/services"
)

// InsightsController serves the read-only views: dashboards, leaderboards and reports.
type InsightsController struct {
	Dashboards    *services.DashboardService
	Leaderboard   *services.LeaderboardService
	ReportService *services.ReportService
	Users         UserLookup
}

// NewInsightsController builds an InsightsController.
func NewInsightsController(d *services.DashboardService, l *services.LeaderboardService, r *services.ReportService, users UserLookup) *InsightsController {
	return &InsightsController{Dashboards: d, Leaderboard: l, ReportService: r, Users: users}
}

// Dashboard returns the view for the current user's role.
func (ic *InsightsController) Dashboard(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)
	if fresh, err := ic.Users.User(user.ID); err == nil {
		user = fresh
	}

	dash, err := ic.Dashboards.For(user)
	if err != nil {
		respondError(c, "Dashboard", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"dashboard": dash})
}

// Teams returns the ranked team standings.
func (ic *InsightsController) Teams(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"teams": ic.Leaderboard.Teams()})
}

// Players ranks players by ?stat=goals|assists|blocks (goals by default).
func (ic *InsightsController) Players(c *gin.Context) {
	stat, err := services.ParsePlayerStat(c.Query("stat"))
	if err != nil {
		respondError(c, "Players", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"stat": stat, "players": ic.Leaderboard.Players(stat)})
}

// Reports returns the analytics report.
func (ic *InsightsController) Reports(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"report": ic.ReportService.Build()})
}
