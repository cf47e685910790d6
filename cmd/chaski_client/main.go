package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"sync"

	"github.com/hibeam-dev/chaski_client/internal/app"
	"github.com/hibeam-dev/chaski_client/internal/config"
	"github.com/hibeam-dev/chaski_client/internal/daemon"
	"github.com/hibeam-dev/chaski_client/internal/engine"
	"github.com/hibeam-dev/chaski_client/internal/i18n"
	"github.com/hibeam-dev/chaski_client/internal/util"
)

var (
	writePid   = flag.Bool("pid", false, "")
	configFile = flag.String("config", "config.toml", "")
)

func init() {
	flag.Usage = func() {
		w := flag.CommandLine.Output()
		_, _ = fmt.Fprintf(w, "%s\n\n", i18n.T("usage_header", map[string]any{}))
		_, _ = fmt.Fprintf(w, "%s\n", i18n.T("usage_format", map[string]any{}))
		_, _ = fmt.Fprintf(w, "\n%s\n", i18n.T("options_header", map[string]any{}))

		_, _ = fmt.Fprintf(w, "  -pid\n    \t%s\n", i18n.T("flag_pid_desc", map[string]any{}))
		_, _ = fmt.Fprintf(w, "  -config %s\n    \t%s\n", "filename", i18n.T("flag_config_desc", map[string]any{}))
	}
}

func setupLogging(cfg config.Config) error {
	logLevel := util.ParseLogLevel(cfg.Logging.Level)

	if cfg.Logging.LogFile != "" {
		logFile, err := os.OpenFile(cfg.Logging.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		util.SetDefaultLogger(logLevel, logFile)
	} else {
		util.SetDefaultLogger(logLevel, os.Stderr)
	}

	return nil
}

func main() {
	util.InitDefaultLogger()

	if err := i18n.InitDefaultFS(); err != nil {
		// Can't use i18n.T here since i18n init failed
		util.Warn("Failed to initialize localization", map[string]any{"error": err})
	}

	engine.InitEngines()

	flag.Parse()

	if *writePid {
		if err := daemon.WritePidFile(); err != nil {
			util.LogError(i18n.T("pid_file_error", map[string]any{"Error": err}), err, nil)
		}
	}

	if cfg, err := config.Load(*configFile); err == nil {
		if setupErr := setupLogging(cfg); setupErr != nil {
			util.Warn("Failed to set up logging configuration", map[string]any{"error": setupErr})
		}
	}

	var running sync.WaitGroup
	running.Add(1)
	ctx := app.SetupTerminationHandler(context.Background(), &running)

	application := app.New(*configFile)
	err := application.Run(ctx)
	running.Done()
	if err != nil {
		if util.IsExpectedError(err) {
			util.Info(i18n.T("app_terminated", map[string]any{"Reason": err}), nil)
		} else {
			util.Error(i18n.T("app_error", map[string]any{"Error": err}), nil)
			os.Exit(1)
		}
	}
}
