package statepath

import (
	"fmt"
	"os"
	"path/filepath"
)

const appName = "tabswitch"

// Dir returns the state directory holding the diagnostic log. Priority:
// 1) $XDG_STATE_HOME/tabswitch (if set)
// 2) $HOME/.local/state/tabswitch (if HOME is set)
// 3) /tmp/tabswitch-state-<uid>
// The directory is created when missing.
func Dir() (string, error) {
	var dir string
	switch {
	case os.Getenv("XDG_STATE_HOME") != "":
		dir = filepath.Join(os.Getenv("XDG_STATE_HOME"), appName)
	case os.Getenv("HOME") != "":
		dir = filepath.Join(os.Getenv("HOME"), ".local", "state", appName)
	default:
		dir = fmt.Sprintf("/tmp/%s-state-%d", appName, os.Getuid())
	}

	if err := os.MkdirAll(dir, 0700); err != nil {
		return "", fmt.Errorf("failed to create state dir: %w", err)
	}
	return dir, nil
}

// LogPath returns the diagnostic log path.
func LogPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, appName+".log"), nil
}
