package cmd

import (
	"errors"
	"os"

	"github.com/rs/zerolog"

	"github.com/FluidXR/tabletswitch/internal/config"
	"github.com/FluidXR/tabletswitch/internal/logging"
)

// errSilentExit makes Execute exit 1 without printing anything.
var errSilentExit = errors.New("")

// newCLILogger logs warnings and above to stderr for one-shot commands,
// unless a more verbose level was configured.
func newCLILogger(cfg *config.Config) zerolog.Logger {
	if logLevel != "" {
		return logging.New(os.Stderr, logLevel)
	}
	lvl, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil || lvl < zerolog.WarnLevel {
		return logging.New(os.Stderr, "warn")
	}
	return logging.New(os.Stderr, cfg.LogLevel)
}
