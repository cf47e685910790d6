package daemon

import (
	"os"
	"path/filepath"
	"strconv"
	"testing"
)

func TestWriteAndRemovePidFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	if err := WritePidFile(); err != nil {
		t.Fatalf("WritePidFile failed: %v", err)
	}

	home, err := os.UserHomeDir()
	if err != nil {
		t.Fatalf("UserHomeDir failed: %v", err)
	}
	pidPath := filepath.Join(home, ".chaski_client", pidFileName)

	data, err := os.ReadFile(pidPath)
	if err != nil {
		t.Fatalf("Failed to read PID file: %v", err)
	}

	pid, err := strconv.Atoi(string(data))
	if err != nil {
		t.Fatalf("PID file does not contain a number: %q", string(data))
	}
	if pid != os.Getpid() {
		t.Errorf("PID file contains %d, want %d", pid, os.Getpid())
	}

	if err := RemovePidFile(); err != nil {
		t.Fatalf("RemovePidFile failed: %v", err)
	}
	if _, err := os.Stat(pidPath); !os.IsNotExist(err) {
		t.Error("PID file still exists after removal")
	}

	// Removing a missing file is not an error.
	if err := RemovePidFile(); err != nil {
		t.Errorf("RemovePidFile on missing file failed: %v", err)
	}
}
