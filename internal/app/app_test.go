package app

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/hibeam-dev/chaski_client/internal/engine"
	"github.com/hibeam-dev/chaski_client/internal/event"
	"github.com/hibeam-dev/chaski_client/internal/history"
	"github.com/hibeam-dev/chaski_client/internal/session"
	"github.com/hibeam-dev/chaski_client/internal/util"
)

func TestLogListenerForwardsToSink(t *testing.T) {
	var delivered []*event.Event
	sink := event.SinkFunc(func(ev *event.Event) {
		delivered = append(delivered, ev)
	})

	listener := newLogListener(util.DefaultLogger.WithComponent("test"), sink)

	connecting := event.NewConnecting()
	authFailed := event.NewAuthFailed("bad credentials")
	listener.OnEvent(connecting)
	listener.OnEvent(authFailed)
	listener.OnLog(session.LogLine{Text: "some engine output"})

	if len(delivered) != 2 {
		t.Fatalf("Expected 2 events in sink, got %d", len(delivered))
	}
	if delivered[0] != connecting || delivered[1] != authFailed {
		t.Error("Events delivered to sink out of order")
	}
}

func TestAppRunMissingConfig(t *testing.T) {
	a := New("/nonexistent/config.toml")
	if err := a.Run(context.Background()); err == nil {
		t.Fatal("Expected error for missing config file")
	}
}

func TestAppRunSingleAttempt(t *testing.T) {
	engine.InitEngines()

	dir := t.TempDir()
	historyPath := filepath.Join(dir, "history.db")

	configPath := filepath.Join(dir, "config.toml")
	configContent := `
[remote]
host = "vpn.example.com"
port = 1194
proto = "udp"

[engine]
name = "openvpn"
binary = "echo"
configfile = "client.ovpn"

[history]
path = "` + historyPath + `"
keep = 100
`
	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	a := New(configPath)

	// The bus republishes every delivered event under its kind name.
	resolveSeen := make(chan struct{}, 1)
	unsub := a.EventBus().Subscribe("RESOLVE", func(msg event.Message) {
		select {
		case resolveSeen <- struct{}{}:
		default:
		}
	})
	defer unsub()

	if err := a.Run(context.Background()); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	select {
	case <-resolveSeen:
	case <-time.After(time.Second):
		t.Error("RESOLVE was not republished on the bus")
	}

	store, err := history.Open(historyPath)
	if err != nil {
		t.Fatalf("Failed to reopen history: %v", err)
	}
	defer func() {
		_ = store.Close()
	}()

	records, err := store.Recent(10)
	if err != nil {
		t.Fatalf("Recent failed: %v", err)
	}
	if len(records) < 2 {
		t.Fatalf("Expected at least RESOLVE and DISCONNECTED in history, got %d records", len(records))
	}
	if records[0].Name != "DISCONNECTED" {
		t.Errorf("Newest record = %q, want DISCONNECTED", records[0].Name)
	}
	if records[len(records)-1].Name != "RESOLVE" {
		t.Errorf("Oldest record = %q, want RESOLVE", records[len(records)-1].Name)
	}
	if records[0].AttemptID == "" {
		t.Error("History records missing the attempt ID")
	}
}
