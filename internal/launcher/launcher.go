// Package launcher runs the downstream command with a profile's
// environment applied.
package launcher

import (
	"fmt"
	"os"
	"os/exec"
	"sort"
	"strings"

	"ccprofile/internal/profile"
)

// DefaultCommand is the downstream command launched with a profile's
// environment.
const DefaultCommand = "claude"

// MergedEnv returns the current process environment with the profile's env
// map applied on top, replacing any existing entries for the same keys.
func MergedEnv(p *profile.Profile, environ []string) []string {
	merged := make([]string, 0, len(environ)+len(p.Env))
	for _, kv := range environ {
		name, _, ok := strings.Cut(kv, "=")
		if ok {
			if _, overridden := p.Env[name]; overridden {
				continue
			}
		}
		merged = append(merged, kv)
	}

	keys := make([]string, 0, len(p.Env))
	for k := range p.Env {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		merged = append(merged, k+"="+p.Env[k])
	}
	return merged
}

// Run spawns the downstream command in the current terminal with the
// profile's environment merged in and standard streams inherited. The
// caller must have restored the terminal to normal input mode first. It
// returns the child's exit code (0 when unavailable).
func Run(p *profile.Profile, args []string) (int, error) {
	command := DefaultCommand
	if _, err := exec.LookPath(command); err != nil {
		return 1, fmt.Errorf("'%s' not found in PATH: %w", command, err)
	}

	cmd := exec.Command(command, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	cmd.Env = MergedEnv(p, os.Environ())

	if err := cmd.Run(); err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			return exitErr.ExitCode(), nil
		}
		return 1, fmt.Errorf("failed to run %s: %w", command, err)
	}
	return 0, nil
}

// ShellCommand builds the one-line shell command equivalent to Run: the
// profile's exports followed by the downstream command. It is used to seed
// a new terminal window and as the manual fallback on platforms without a
// supported terminal-spawning mechanism.
func ShellCommand(p *profile.Profile, args []string) string {
	var b strings.Builder
	keys := make([]string, 0, len(p.Env))
	for k := range p.Env {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(&b, "export %s=%s; ", k, shellQuote(p.Env[k]))
	}
	b.WriteString(DefaultCommand)
	for _, a := range args {
		b.WriteString(" ")
		b.WriteString(shellQuote(a))
	}
	return b.String()
}

// shellQuote single-quotes a value for POSIX shells, escaping embedded
// single quotes.
func shellQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}
