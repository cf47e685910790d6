package engine

import (
	"bufio"
	"io"
	"os/exec"
	"strconv"
	"sync"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/hibeam-dev/chaski_client/internal/config"
	"github.com/hibeam-dev/chaski_client/internal/event"
	"github.com/hibeam-dev/chaski_client/internal/i18n"
	"github.com/hibeam-dev/chaski_client/internal/session"
	"github.com/hibeam-dev/chaski_client/internal/util"
	"github.com/hibeam-dev/chaski_client/pkg/errors"
	"github.com/hibeam-dev/chaski_client/pkg/result"
)

const defaultBinary = "openvpn"

// ProcessEngine drives an external OpenVPN process. Every output line is
// forwarded as a log callback; recognized markers become lifecycle events.
type ProcessEngine struct {
	binary     string
	configFile string
	remoteHost string
	remotePort int
	proto      string

	mu      sync.Mutex
	cmd     *exec.Cmd
	stopped bool
}

type processFactory struct{}

func (processFactory) CreateEngine(cfg config.Config) (session.Engine, error) {
	binary := cfg.Engine.Binary
	if binary == "" {
		binary = defaultBinary
	}

	if _, err := exec.LookPath(binary); err != nil {
		return nil, errors.WrapWithBase(errors.ErrEngineUnavailable,
			i18n.T("engine_binary_missing", map[string]any{"Binary": binary}), err)
	}

	return &ProcessEngine{
		binary:     binary,
		configFile: cfg.Engine.ConfigFile,
		remoteHost: cfg.Remote.Host,
		remotePort: cfg.Remote.Port,
		proto:      cfg.Remote.Proto,
	}, nil
}

func (e *ProcessEngine) Run(recv session.Receiver) session.Status {
	cmd := exec.Command(e.binary,
		"--config", e.configFile,
		"--remote", e.remoteHost, strconv.Itoa(e.remotePort),
		"--proto", e.proto,
	)

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return session.Status{Status: "error", Err: util.WrapError("stdout pipe", err)}
	}
	stderr, err := cmd.StderrPipe()
	if err != nil {
		return session.Status{Status: "error", Err: util.WrapError("stderr pipe", err)}
	}

	if err := cmd.Start(); err != nil {
		util.Error(i18n.T("engine_start_error", map[string]any{"Error": err}), nil)
		return session.Status{
			Status: "error",
			Err:    errors.WrapWithBase(errors.ErrConnectionFailed, "engine process start", err),
		}
	}

	e.mu.Lock()
	e.cmd = cmd
	alreadyStopped := e.stopped
	e.mu.Unlock()

	if alreadyStopped {
		_ = cmd.Process.Signal(syscall.SIGTERM)
	}

	// The remote is resolved before anything else the process logs.
	recv.Event(event.NewResolve())

	state := newConnectState(e.remoteHost, strconv.Itoa(e.remotePort), e.proto)

	var parseMu sync.Mutex
	scan := func(pipe io.Reader) func() error {
		return func() error {
			scanner := bufio.NewScanner(pipe)
			for scanner.Scan() {
				line := scanner.Text()

				// Forwarding and parsing must not interleave between the
				// two pipes mid-event.
				parseMu.Lock()
				recv.Log(session.LogLine{Text: line})
				if ev := state.parseLine(line); ev != nil {
					recv.Event(ev)
				}
				parseMu.Unlock()
			}
			return scanner.Err()
		}
	}

	var g errgroup.Group
	g.Go(scan(stdout))
	g.Go(scan(stderr))
	_ = g.Wait()

	waitResult := func() result.Result[string] {
		if err := cmd.Wait(); err != nil {
			return result.Err[string](err)
		}
		return result.Ok("disconnected")
	}()

	var status session.Status
	waitResult.Match(
		func(outcome string) {
			status = session.Status{Status: outcome}
		},
		func(err error) {
			if e.wasStopped() {
				status = session.Status{Status: "stopped"}
				return
			}
			status = session.Status{
				Status: "error",
				Err:    errors.WrapWithBase(errors.ErrConnectionFailed, "engine process failed", err),
			}
		},
	)

	recv.Event(event.NewDisconnected())
	util.Info(i18n.T("engine_stopped", nil), map[string]any{"status": status.Status})

	return status
}

// Stop requests the process to unwind. Safe to call from any goroutine and
// before Run has started the process.
func (e *ProcessEngine) Stop() {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.stopped = true
	if e.cmd != nil && e.cmd.Process != nil {
		_ = e.cmd.Process.Signal(syscall.SIGTERM)
	}
}

func (e *ProcessEngine) wasStopped() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.stopped
}

var _ session.Engine = (*ProcessEngine)(nil)
