// main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aws/aws-xray-sdk-go/xray"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"

	"go-ultimate-hub/config"
	"go-ultimate-hub/controllers"
	"go-ultimate-hub/data"
	"go-ultimate-hub/forms"
	"go-ultimate-hub/logger"
	"go-ultimate-hub/metrics"
	"go-ultimate-hub/middleware"
	"go-ultimate-hub/services"
	"go-ultimate-hub/websocket"
)

const (
	sessionName          = "ultimatehub"
	stationSweepInterval = 30 * time.Second
	stationTimeout       = 5 * time.Minute
	shutdownTimeout      = 10 * time.Second
	scanClientSweep      = time.Minute
	scanClientIdle       = 10 * time.Minute
)

// application is the wired hub: router plus the background pieces that need stopping.
type application struct {
	handler  http.Handler
	router   *gin.Engine
	store    *services.AppStore
	hub      *websocket.Hub
	scanner  *services.Scanner
	stations *StationMonitor
	registry *metrics.Registry
	cw       *metrics.CloudWatchPublisher
	cancel   context.CancelFunc
}

// newApplication builds every service over freshly seeded state and starts the live feed.
func newApplication(cfg *config.Config) (*application, error) {
	forms.Register()

	registry := metrics.NewRegistry()
	hub := websocket.NewHub()
	hub.AllowedOrigins = []string{cfg.ApplicationURL}

	notifiers := services.MultiNotifier{hub, registry}

	var cw *metrics.CloudWatchPublisher
	if cfg.CloudWatchEnabled {
		client, err := metrics.NewCloudWatchClient(cfg.XRayEnabled)
		if err != nil {
			return nil, err
		}
		cw = metrics.NewCloudWatchPublisher(client)
		notifiers = append(notifiers, cw)
		logger.Info.Println("[newApplication] CloudWatch publishing enabled")
	}

	hub.OnConnectionsChanged = func(n int) {
		registry.LiveConnections.Set(float64(n))
		if cw != nil {
			cw.PublishLiveConnections(n)
		}
	}

	ds := data.Seed()
	store := services.NewAppStore(ds, notifiers)
	scanner := services.NewScanner(store, notifiers, cfg.CheckInResetDelay)
	stations := NewStationMonitor()

	ctx, cancel := context.WithCancel(context.Background())
	stations.CleanupInactiveStations(ctx, stationSweepInterval, stationTimeout)

	scanLimiter := middleware.NewRateLimiter(cfg.ScanRateLimit, cfg.ScanRateBurst)
	scanLimiter.CleanupIdleClients(ctx, scanClientSweep, scanClientIdle)

	router := gin.New()
	// forwarding headers only count when they come from a configured proxy
	if err := router.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		cancel()
		return nil, fmt.Errorf("invalid TRUSTED_PROXIES: %w", err)
	}
	router.Use(gin.Recovery(), middleware.RequestID(), middleware.Metrics(registry))

	// Initialize session store
	sessionStore := cookie.NewStore([]byte(cfg.SessionSecret))
	sessionStore.Options(sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7, // 7 days
		HttpOnly: true,
		Secure:   cfg.IsProduction(),
		SameSite: http.SameSiteLaxMode,
	})
	router.Use(sessions.Sessions(sessionName, sessionStore))

	controllers.RegisterRoutes(router, controllers.Deps{
		Store:       store,
		Auth:        services.NewAuthService(store),
		Scanner:     monitoredScanner{scanner: scanner, stations: stations},
		Gallery:     services.NewGalleryService(store, ds.PlaceholderImages, cfg.GalleryImageTTL, notifiers),
		Dashboards:  services.NewDashboardService(store),
		Leaderboard: services.NewLeaderboardService(ds.Teams, ds.Players),
		Reports:     services.NewReportService(store),
		Maps:        services.NewMapService(cfg.MapsAPIKey, store),
		Pages:       controllers.NewPageController(cfg.ApplicationURL, cfg.WebsocketURL),
		ScanLimiter: scanLimiter,
	})

	router.GET("/metrics", gin.WrapH(registry.Handler()))
	router.GET("/ws", gin.WrapF(hub.ServeWs))
	router.POST("/api/checkin/stations/:station/heartbeat", stations.HeartbeatHandler)
	router.GET("/api/checkin/stations", stations.StationsHandler)

	go hub.Run()

	var handler http.Handler = router
	if cfg.XRayEnabled {
		handler = xray.Handler(xray.NewFixedSegmentNamer("ultimate-hub"), router)
		logger.Info.Println("[newApplication] X-Ray tracing enabled")
	}

	return &application{
		handler:  handler,
		router:   router,
		store:    store,
		hub:      hub,
		scanner:  scanner,
		stations: stations,
		registry: registry,
		cw:       cw,
		cancel:   cancel,
	}, nil
}

// close stops background work. Pending CloudWatch calls are flushed.
func (a *application) close() {
	a.cancel()
	a.scanner.Close()
	a.hub.Stop()
	if a.cw != nil {
		a.cw.Flush()
	}
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := logger.InitLogger(cfg.AppEnv, cfg.LogDir); err != nil {
		log.Fatalf("Failed to initialise logger: %v", err)
	}
	logger.SetLogLevel(cfg.AppEnv)
	defer logger.Sync()

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	app, err := newApplication(cfg)
	if err != nil {
		logger.Error.Printf("[main] Failed to build application: %v", err)
		os.Exit(1)
	}

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           app.handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info.Printf("[main] Listening on %s (%s)", cfg.Addr(), cfg.AppEnv)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error.Printf("[main] Server stopped: %v", err)
			os.Exit(1)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	logger.Info.Println("[main] Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error.Printf("[main] Graceful shutdown failed: %v", err)
	}
	app.close()
}
