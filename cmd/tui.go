package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/FluidXR/tabletswitch/internal/config"
	"github.com/FluidXR/tabletswitch/internal/logging"
	"github.com/FluidXR/tabletswitch/internal/ui"
)

// runTUI shows the interactive view. Logs go to a file next to the config
// so they don't draw over the screen.
func runTUI(ctx context.Context) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if ctx == nil {
		ctx = context.Background()
	}
	if err := os.MkdirAll(config.ConfigDir(), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	log, logFile, err := logging.OpenFile(filepath.Join(config.ConfigDir(), "tabletswitch.log"), cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("open log: %w", err)
	}
	defer logFile.Close()

	a := newApp(cfg, log)
	a.openJournal()
	defer a.close()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	poller, err := a.start(ctx)
	if err != nil {
		return err
	}
	defer poller.Stop()

	return ui.Run(a.ctrl)
}
