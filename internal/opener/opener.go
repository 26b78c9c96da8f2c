// Package opener reveals folders and files in the user's desktop
// environment.
package opener

import (
	"fmt"
	"runtime"

	"github.com/projexts/projexts/internal/runner"
)

// Opener opens a path with the platform's file-opening facility.
type Opener interface {
	Open(path string) error
}

// Desktop opens paths via the platform opener command, or a
// user-configured override from the settings file.
type Desktop struct {
	runner  runner.Runner
	command string
}

// NewDesktop creates a Desktop opener. An empty command selects the
// platform default.
func NewDesktop(r runner.Runner, command string) *Desktop {
	if command == "" {
		command = platformOpener()
	}
	return &Desktop{runner: r, command: command}
}

// Ensure Desktop implements Opener
var _ Opener = (*Desktop)(nil)

// Open launches the opener command on path and waits for it to return.
func (d *Desktop) Open(path string) error {
	if err := d.runner.Run("", d.command, path); err != nil {
		return fmt.Errorf("opening %s: %w", path, err)
	}
	return nil
}

func platformOpener() string {
	switch runtime.GOOS {
	case "darwin":
		return "open"
	case "windows":
		return "explorer"
	default:
		return "xdg-open"
	}
}
