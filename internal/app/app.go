package app

import (
	"database/sql"

	"github.com/thenoetrevino/cardstack/internal/events"
	"github.com/thenoetrevino/cardstack/internal/metrics"
	cardservice "github.com/thenoetrevino/cardstack/internal/services/card"
	columnservice "github.com/thenoetrevino/cardstack/internal/services/column"
)

// App holds all application services and provides dependency injection.
// This is the main application container that manages service lifecycles.
type App struct {
	db *sql.DB

	// Event bus for change notifications (always present)
	Bus *events.Bus

	// Counters for the current process
	Metrics *metrics.Metrics

	// Service layer (business logic)
	CardService   cardservice.Service
	ColumnService columnservice.Service
}

// New creates a new App with all services initialized.
// This is the single entry point for creating the application container.
func New(db *sql.DB, opts ...Option) *App {
	cfg := &appConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	bus := events.NewBus(cfg.eventBuffer)
	m := metrics.NewMetrics()

	var publisher events.Publisher = bus
	if cfg.publisher != nil {
		publisher = cfg.publisher
	}

	cardOpts := []cardservice.Option{
		cardservice.WithPublisher(publisher),
		cardservice.WithMetrics(m),
	}
	if cfg.shiftStrategy != "" {
		cardOpts = append(cardOpts, cardservice.WithShiftStrategy(cfg.shiftStrategy))
	}
	if cfg.tracerProvider != nil {
		cardOpts = append(cardOpts, cardservice.WithTracerProvider(cfg.tracerProvider))
	}

	return &App{
		db:            db,
		Bus:           bus,
		Metrics:       m,
		CardService:   cardservice.NewService(db, cardOpts...),
		ColumnService: columnservice.NewService(db),
	}
}

// DB returns the underlying pool for health checks and shutdown
func (a *App) DB() *sql.DB {
	return a.db
}

// Close releases the event bus. The database pool belongs to the caller.
func (a *App) Close() error {
	return a.Bus.Close()
}
