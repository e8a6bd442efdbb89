package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/FluidXR/tabletswitch/internal/logging"
	"github.com/FluidXR/tabletswitch/internal/notify"
)

var watchNoNotify bool

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch tablet connection in the background",
	Long: `Polls xsetwacom and logs every connect/disconnect. Desktop notifications
are sent over D-Bus unless disabled in the config or with --no-notify.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runWatch(cmd.Context())
	},
}

func runWatch(ctx context.Context) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	log := logging.New(os.Stderr, cfg.LogLevel)
	a := newApp(cfg, log)
	a.openJournal()
	defer a.close()

	if cfg.Notify && !watchNoNotify {
		n, err := notify.New()
		if err != nil {
			log.Warn().Err(err).Msg("desktop notifications disabled")
		} else {
			a.ctrl.SetPresenter(&notify.Presenter{Notifier: n, Log: log})
		}
	}

	poller, err := a.start(ctx)
	if err != nil {
		return err
	}
	log.Info().
		Str("tool", cfg.Tool).
		Dur("interval", cfg.PollInterval).
		Bool("connected", a.tracker.Connected()).
		Msg("watching tablet")

	<-ctx.Done()
	poller.Stop()
	log.Info().Msg("stopped")
	return nil
}

func init() {
	watchCmd.Flags().BoolVar(&watchNoNotify, "no-notify", false, "don't send desktop notifications")
	rootCmd.AddCommand(watchCmd)
}
