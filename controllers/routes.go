// Package controllers file: controllers/routes.go
package controllers

import (
	"github.com/gin-gonic/gin"

	"go-ultimate-hub/middleware"
	"go-ultimate-hub/models"
	"go-ultimate-hub/services"
)

// Deps is everything the API routes are built from.
type Deps struct {
	Store       *services.AppStore
	Auth        services.AuthServiceInterface
	Scanner     CheckInScanner
	Gallery     *services.GalleryService
	Dashboards  *services.DashboardService
	Leaderboard *services.LeaderboardService
	Reports     *services.ReportService
	Maps        *services.MapService
	Pages       *PageController

	// Encoder overrides QR rendering; nil uses go-qrcode.
	Encoder services.QRCodeEncoder
	// ScanLimiter throttles the scan endpoint; nil disables throttling.
	ScanLimiter *middleware.RateLimiter
}

// RegisterRoutes mounts the health check, auth endpoints and the JSON API on router.
// Sessions must already be installed on router.
func RegisterRoutes(router *gin.Engine, d Deps) {
	authC := NewAuthController(d.Auth, d.Store)
	eventC := NewEventController(d.Store, d.Encoder)
	coachingC := NewCoachingController(d.Store)
	adminC := NewAdminController(d.Store)
	welfareC := NewWelfareController(d.Store)
	checkinC := NewCheckInController(d.Scanner, d.Store)
	galleryC := NewGalleryController(d.Gallery)
	insightsC := NewInsightsController(d.Dashboards, d.Leaderboard, d.Reports, d.Store)
	venueC := NewVenueController(d.Store, d.Maps)

	if d.Pages != nil {
		router.GET("/", d.Pages.Index)
		router.GET("/health", d.Pages.Health)
	}

	// Public routes
	auth := router.Group("/auth")
	{
		auth.POST("/login", authC.Login)
		auth.POST("/logout", authC.Logout)
		auth.POST("/register/participant", authC.RegisterParticipant)
		auth.POST("/register/organizer", authC.RegisterOrganizer)
		auth.POST("/register/coach", authC.RegisterCoach)
		auth.GET("/me", middleware.AuthRequired(d.Auth), authC.Me)
	}

	public := router.Group("/api")
	{
		public.GET("/events", eventC.List)
		public.GET("/events/:id", eventC.Get)
		public.GET("/coaching-centers", coachingC.List)
		public.GET("/organizations", adminC.Organizations)
		public.GET("/gallery", galleryC.Albums)
		public.GET("/gallery/:eventId", galleryC.Album)
		public.GET("/leaderboard/teams", insightsC.Teams)
		public.GET("/leaderboard/players", insightsC.Players)
		public.GET("/venues", venueC.List)
		public.GET("/venues/:id/map", venueC.Map)
		public.GET("/venues/:id/directions", venueC.Directions)

		scan := []gin.HandlerFunc{checkinC.Scan}
		if d.ScanLimiter != nil {
			scan = append([]gin.HandlerFunc{d.ScanLimiter.Middleware()}, scan...)
		}
		public.POST("/checkin/scan", scan...)
	}

	// Protected routes
	protected := router.Group("/api", middleware.AuthRequired(d.Auth))
	{
		protected.GET("/dashboard", insightsC.Dashboard)
		protected.GET("/reports", insightsC.Reports)
		protected.GET("/checkins", checkinC.List)

		protected.POST("/events/:id/registration", eventC.ToggleRegistration)
		protected.GET("/events/:id/ticket.png", eventC.Ticket)
		protected.POST("/coaching-centers/:id/registration", coachingC.ToggleRegistration)
		protected.POST("/gallery/:eventId/images", galleryC.AddImage)
		protected.DELETE("/gallery/:eventId/images/:imageId", galleryC.DeleteImage)

		protected.POST("/events", middleware.RoleRequired(models.RoleAdmin, models.RoleOrganizer), eventC.Create)
	}

	admin := protected.Group("", middleware.RoleRequired(models.RoleAdmin))
	{
		admin.POST("/coaching-centers", coachingC.Create)
		admin.POST("/organizations", adminC.CreateOrganization)
		admin.GET("/users", adminC.Users)
	}

	welfare := protected.Group("", middleware.RoleRequired(models.RoleAdmin, models.RoleCoach))
	{
		welfare.GET("/children", welfareC.Children)
		welfare.GET("/sessions", welfareC.Sessions)
		welfare.POST("/sessions/:id/attendance", welfareC.MarkAttendance)
		welfare.GET("/assessments", welfareC.Assessments)
		welfare.POST("/assessments", welfareC.AddAssessment)
		welfare.GET("/home-visits", welfareC.HomeVisits)
		welfare.POST("/home-visits", welfareC.AddHomeVisit)
		welfare.GET("/alerts", welfareC.Alerts)
	}
}
