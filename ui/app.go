package ui

import (
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"paypulse/adapters/report"
	"paypulse/app/chat"
	"paypulse/app/ingest"
	"paypulse/app/settings"
)

// App represents the HTTP application
type App struct {
	router   *chi.Mux
	ingest   *ingest.Service
	chat     *chat.Assistant
	settings *settings.Service
	report   *report.Generator
}

// Config holds HTTP application configuration
type Config struct {
	Port string
}

// NewApp wires the services into a router
func NewApp(ingestSvc *ingest.Service, settingsSvc *settings.Service, reportGen *report.Generator) *App {
	app := &App{
		router:   chi.NewRouter(),
		ingest:   ingestSvc,
		chat:     chat.NewAssistant(ingestSvc),
		settings: settingsSvc,
		report:   reportGen,
	}

	app.setupMiddleware()
	app.setupRoutes()

	return app
}

// setupMiddleware configures HTTP middleware
func (a *App) setupMiddleware() {
	a.router.Use(middleware.Logger)
	a.router.Use(middleware.Recoverer)
	a.router.Use(middleware.Compress(5))
}

// setupRoutes configures the application routes
func (a *App) setupRoutes() {
	a.router.Post("/api/upload", a.handleUpload)
	a.router.Get("/api/dataset", a.handleDataset)
	a.router.Delete("/api/files", a.handleDeleteFile)
	a.router.Get("/api/history", a.handleHistory)

	a.router.Get("/api/aggregates", a.handleAggregates)
	a.router.Get("/api/salary", a.handleSalary)

	a.router.Post("/api/chat", a.handleChat)
	a.router.Post("/api/calculator/insurance", a.handleInsurance)
	a.router.Post("/api/calculator/roi", a.handleROI)

	a.router.Get("/api/settings", a.handleGetSettings)
	a.router.Put("/api/settings", a.handlePutSettings)
	a.router.Get("/api/notifications", a.handleListNotifications)
	a.router.Post("/api/notifications", a.handleCreateNotification)
	a.router.Post("/api/notifications/{id}/read", a.handleMarkNotificationRead)
	a.router.Delete("/api/notifications/{id}", a.handleDeleteNotification)

	a.router.Post("/api/reports/labor-cost", a.handleReport)

	a.router.Get("/health", a.handleHealth)
}

// Router exposes the configured router for tests and embedding
func (a *App) Router() http.Handler {
	return a.router
}

// Start begins serving HTTP requests
func (a *App) Start(config Config) error {
	server := &http.Server{
		Addr:         ":" + config.Port,
		Handler:      a.router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
	}
	log.Printf("[HTTP] Listening on port %s", config.Port)
	return server.ListenAndServe()
}

func (a *App) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
