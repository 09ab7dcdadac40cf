package metrotracker

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Server owns the http.Server and the middleware chain around the App's
// handlers.
type Server struct {
	app  *App
	http *http.Server
}

// NewServer builds the server with its routes and middleware.
func NewServer(app *App) *Server {
	var handler http.Handler = app.routesMux()
	handler = newRateLimiter(app.cfg.Server.RateLimitPerSec, app.cfg.Server.RateLimitBurst, app.clk, app.mx).wrap(handler)
	handler = withRequestMetrics(app.mx, handler)

	return &Server{
		app: app,
		http: &http.Server{
			Addr:              fmt.Sprintf(":%d", app.cfg.Server.Port),
			Handler:           handler,
			ReadHeaderTimeout: 5 * time.Second,
			ReadTimeout:       10 * time.Second,
			WriteTimeout:      30 * time.Second,
			IdleTimeout:       60 * time.Second,
		},
	}
}

// routesMux maps the API surface onto the App's handlers.
func (a *App) routesMux() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/health", a.handleHealth)
	mux.HandleFunc("/api/vehicles", a.handleVehicles)
	mux.HandleFunc("/api/routes", a.handleRoutes)
	mux.HandleFunc("/api/nearby", a.handleNearby)
	mux.HandleFunc("/api/stops", a.handleStops)
	mux.HandleFunc("/api/stop/closest", a.handleClosestStop)
	mux.HandleFunc("/api/stop/{id}/times", a.handleStopTimes)
	mux.HandleFunc("/api/alerts", a.handleAlerts)
	mux.HandleFunc("/api/plan", a.handlePlan)
	mux.HandleFunc("/api/status", a.handleStatus)
	mux.Handle("/metrics", promhttp.HandlerFor(a.mx.Registry, promhttp.HandlerOpts{}))
	return mux
}

// Start begins serving in the background.
func (s *Server) Start() {
	go func() {
		if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()
	log.Printf("server listening on %s", s.http.Addr)
}

// Shutdown drains in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}

// WaitForShutdown blocks until SIGINT or SIGTERM, then drains the server
// within the configured timeout.
func (s *Server) WaitForShutdown() {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	<-sigs
	log.Printf("shutdown signal received")

	timeout := time.Duration(s.app.cfg.Server.ShutdownTimeoutMS) * time.Millisecond
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if err := s.Shutdown(ctx); err != nil {
		log.Printf("server shutdown error: %v", err)
		return
	}
	log.Printf("server shut down successfully")
}
