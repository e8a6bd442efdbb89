package cmd

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/FluidXR/tabletswitch/internal/config"
	"github.com/FluidXR/tabletswitch/internal/journal"
	"github.com/FluidXR/tabletswitch/internal/monitor"
	"github.com/FluidXR/tabletswitch/internal/remap"
	"github.com/FluidXR/tabletswitch/internal/xsetwacom"
)

// app holds the components shared by every command that talks to the tablet.
type app struct {
	cfg     *config.Config
	log     zerolog.Logger
	client  *xsetwacom.Client
	tracker *monitor.Tracker
	ctrl    *monitor.Controller
	journal *journal.DB
}

func newApp(cfg *config.Config, log zerolog.Logger) *app {
	client := xsetwacom.NewClient(cfg.Tool)
	tracker := monitor.NewTracker(client, log)
	executor := &remap.Executor{Mapper: client, Output: cfg.Output}
	return &app{
		cfg:     cfg,
		log:     log,
		client:  client,
		tracker: tracker,
		ctrl:    monitor.NewController(tracker, client, executor, log),
	}
}

// openJournal attaches the event journal when enabled. Failure to open it
// is logged and the app keeps running without one.
func (a *app) openJournal() {
	if !a.cfg.Journal {
		return
	}
	db, err := journal.Open(config.ConfigDir())
	if err != nil {
		a.log.Warn().Err(err).Msg("journal disabled")
		return
	}
	a.journal = db
	a.tracker.Subscribe(monitor.ListenerFunc(func(ev monitor.Event) {
		if err := db.RecordConnection(ev.At, ev.Connected, ev.Devices); err != nil {
			a.log.Warn().Err(err).Msg("record connection")
		}
	}))
	a.ctrl.SetRecorder(db)
}

// start establishes the initial state and begins polling.
func (a *app) start(ctx context.Context) (*monitor.Poller, error) {
	a.tracker.Init(ctx)
	poller := monitor.NewPoller(a.ctrl, a.cfg.PollInterval)
	if err := poller.Start(ctx); err != nil {
		return nil, err
	}
	return poller, nil
}

func (a *app) close() {
	if a.journal != nil {
		a.journal.Close()
	}
}
