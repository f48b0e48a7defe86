package cli

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/thenoetrevino/cardstack/internal/app"
	"github.com/thenoetrevino/cardstack/internal/cli/styles"
	"github.com/thenoetrevino/cardstack/internal/config"
	"github.com/thenoetrevino/cardstack/internal/database"
	"github.com/thenoetrevino/cardstack/internal/logging"
)

// CLI represents the CLI application context
type CLI struct {
	App    *app.App // Application container with services
	Config *config.Config
	db     *sql.DB
	ctx    context.Context

	// borrowed is set when the app belongs to the caller (tests);
	// Close then leaves it open
	borrowed bool
}

// NewCLI loads configuration, sets up logging and opens the database
func NewCLI(ctx context.Context) (*CLI, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if err := logging.Init(cfg.Logging.Dir, cfg.Logging.Level); err != nil {
		return nil, fmt.Errorf("failed to initialize logging: %w", err)
	}

	styles.Init(cfg.Theme)

	db, err := database.InitDB(ctx, cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	application := app.New(db, app.WithShiftStrategy(cfg.Ordering.ShiftStrategy))

	slog.Debug("cli initialized",
		"db_path", cfg.Database.Path,
		"shift_strategy", cfg.Ordering.ShiftStrategy)

	return &CLI{
		App:    application,
		Config: cfg,
		db:     db,
		ctx:    ctx,
	}, nil
}

// Close cleans up CLI resources
func (c *CLI) Close() error {
	if c.borrowed {
		return nil
	}
	if err := c.App.Close(); err != nil {
		slog.Error("failed to close app", "error", err)
	}
	return c.db.Close()
}
