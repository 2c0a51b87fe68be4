package launcher

import (
	"fmt"
	"os/exec"
	"strings"

	"ccprofile/internal/profile"
)

// OpenTerminalWindow opens a new Terminal.app window running the
// downstream command with the profile's environment applied.
func OpenTerminalWindow(p *profile.Profile, args []string) error {
	if _, err := exec.LookPath("osascript"); err != nil {
		return fmt.Errorf("osascript not found in PATH: %w", err)
	}

	shellCmd := ShellCommand(p, args)
	script := fmt.Sprintf(`tell application "Terminal"
	activate
	do script "%s"
end tell`, escapeAppleScript(shellCmd))

	cmd := exec.Command("osascript", "-")
	cmd.Stdin = strings.NewReader(script)
	output, err := cmd.CombinedOutput()
	if err != nil {
		trimmed := strings.TrimSpace(string(output))
		if trimmed != "" {
			return fmt.Errorf("osascript open terminal: %s", trimmed)
		}
		return fmt.Errorf("osascript open terminal: %w", err)
	}
	return nil
}

// escapeAppleScript escapes a string for embedding in a double-quoted
// AppleScript literal.
func escapeAppleScript(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	return strings.ReplaceAll(s, `"`, `\"`)
}
