package app

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/hibeam-dev/chaski_client/internal/i18n"
	"github.com/hibeam-dev/chaski_client/internal/util"
)

const gracefulTimeout = 5 * time.Second

// SetupTerminationHandler cancels the returned context on SIGINT/SIGTERM.
// Cancellation asks the engine to unwind; if running is not done inside the
// graceful window, the process exits hard.
func SetupTerminationHandler(parentCtx context.Context, running *sync.WaitGroup) context.Context {
	ctx, cancel := context.WithCancel(parentCtx)

	termCh := make(chan os.Signal, 1)
	signal.Notify(termCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-termCh
		util.Info(i18n.T("termination_signal", map[string]any{}), nil)
		cancel()

		if !util.WaitWithTimeout(running, gracefulTimeout) {
			util.Error(i18n.T("forced_exit", map[string]any{}), nil)
			os.Exit(1)
		}
	}()

	return ctx
}
