package app

import (
	"context"
	"fmt"

	"github.com/hibeam-dev/chaski_client/internal/config"
	"github.com/hibeam-dev/chaski_client/internal/engine"
	"github.com/hibeam-dev/chaski_client/internal/event"
	"github.com/hibeam-dev/chaski_client/internal/history"
	"github.com/hibeam-dev/chaski_client/internal/i18n"
	"github.com/hibeam-dev/chaski_client/internal/session"
	"github.com/hibeam-dev/chaski_client/internal/util"
)

type App struct {
	ConfigFile string

	bus *event.Bus
}

func New(configFile string) *App {
	return &App{
		ConfigFile: configFile,
		bus:        event.NewBus(),
	}
}

// EventBus exposes the bus events are republished on, so outer surfaces
// (IPC, status commands) can subscribe by kind name.
func (a *App) EventBus() *event.Bus {
	return a.bus
}

// Run executes a single connect attempt and reports its terminal status.
// Retry policy belongs to whoever owns the agent; cancelling ctx asks the
// engine to unwind and Run returns once it has.
func (a *App) Run(ctx context.Context) error {
	cfg, err := config.Load(a.ConfigFile)
	if err != nil {
		return fmt.Errorf("%s", i18n.T("config_load_error", map[string]any{"Error": err}))
	}

	eng, err := engine.New(cfg)
	if err != nil {
		return err
	}

	defer a.bus.Close()

	sinks := []event.Sink{event.NewBusSink(a.bus)}

	var store *history.Store
	if cfg.History.Path != "" {
		store, err = history.Open(cfg.History.Path)
		if err != nil {
			return fmt.Errorf("%s", i18n.T("history_open_error", map[string]any{
				"Path":  cfg.History.Path,
				"Error": err,
			}))
		}
		defer func() {
			_ = store.Close()
		}()
		sinks = append(sinks, store)
	}

	sess := session.New(eng)
	if store != nil {
		store.BeginAttempt(sess.AttemptID())
	}

	logger := util.DefaultLogger.WithComponent("session").With("attempt_id", sess.AttemptID())
	listener := newLogListener(logger, event.NewMultiSink(sinks...))

	util.Info(i18n.T("connect_starting", map[string]any{"Attempt": sess.AttemptID()}), nil)
	status := sess.Connect(ctx, listener)
	util.Info(i18n.T("connect_finished", map[string]any{"Status": status.Status}), map[string]any{
		"status":  status.Status,
		"message": status.Message,
	})

	if store != nil {
		if err := store.Prune(cfg.History.Keep); err != nil {
			util.LogError("history prune failed", err, nil)
		}
	}

	if status.Err != nil && !util.IsExpectedError(status.Err) {
		return status.Err
	}
	return nil
}
