package cli

import (
	"context"

	"github.com/thenoetrevino/cardstack/internal/app"
	"github.com/thenoetrevino/cardstack/internal/cli/styles"
	"github.com/thenoetrevino/cardstack/internal/config"
	"github.com/thenoetrevino/cardstack/internal/testutil"
)

// GetCLIFromContext returns a CLI for the command.
// Tests inject an *app.App under testutil.TestAppKey; otherwise the real
// database is opened.
func GetCLIFromContext(ctx context.Context) (*CLI, error) {
	if testApp, ok := ctx.Value(testutil.TestAppKey).(*app.App); ok && testApp != nil {
		cfg := config.Default()
		styles.Init(cfg.Theme)
		return &CLI{
			App:      testApp,
			Config:   cfg,
			ctx:      ctx,
			borrowed: true,
		}, nil
	}

	return NewCLI(ctx)
}
