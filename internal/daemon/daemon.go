package daemon

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/hibeam-dev/chaski_client/internal/i18n"
	"github.com/hibeam-dev/chaski_client/internal/util"
)

const pidFileName = "chaski_client.pid"

func pidFilePath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", util.WrapError(i18n.T("home_dir_error", map[string]any{}), err)
	}
	return filepath.Join(home, ".chaski_client", pidFileName), nil
}

func WritePidFile() error {
	pidPath, err := pidFilePath()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(pidPath), 0755); err != nil {
		return util.WrapError(i18n.T("pid_dir_create_error", map[string]any{}), err)
	}

	pid := os.Getpid()
	if err := os.WriteFile(pidPath, fmt.Appendf(nil, "%d", pid), 0644); err != nil {
		return util.WrapError(i18n.T("pid_file_write_error", map[string]any{}), err)
	}

	util.Info(i18n.T("pid_file_written", map[string]any{}), map[string]any{
		"path": pidPath,
		"pid":  pid,
	})

	return nil
}

func RemovePidFile() error {
	pidPath, err := pidFilePath()
	if err != nil {
		return err
	}

	if err := os.Remove(pidPath); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
