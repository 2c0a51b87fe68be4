//go:build !darwin

package launcher

import (
	"fmt"

	"ccprofile/internal/profile"
)

// OpenTerminalWindow is only supported on macOS. Callers should degrade to
// printing ShellCommand for manual execution.
func OpenTerminalWindow(p *profile.Profile, args []string) error {
	return fmt.Errorf("opening a new terminal window is not supported on this platform")
}
