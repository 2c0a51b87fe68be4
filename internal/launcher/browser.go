package launcher

import (
	"fmt"
	"os/exec"
	"runtime"
)

// OpenBrowser asks the OS to open url in the default browser. Failure is
// expected to be non-fatal: callers print the URL for manual use instead.
func OpenBrowser(url string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", url)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	default:
		cmd = exec.Command("xdg-open", url)
	}
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to open browser: %w", err)
	}
	return nil
}
