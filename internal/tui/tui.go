package tui

import (
	"fmt"
	"os"

	"ccprofile/internal/profile"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
)

// IsInteractive reports whether stdin and stdout are attached to a terminal.
func IsInteractive() bool {
	return isTerminal(os.Stdin.Fd()) && isTerminal(os.Stdout.Fd())
}

func isTerminal(fd uintptr) bool {
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// Run starts the full-screen menu and blocks until the user quits. It
// returns the profile selected for launch, or nil when the user quit
// without selecting one. Launching happens after the terminal has been
// restored, so the caller performs it.
func Run() (*profile.Profile, error) {
	store, err := profile.NewStore()
	if err != nil {
		return nil, fmt.Errorf("failed to open profile store: %w", err)
	}
	return RunWith(store)
}

// RunWith runs the menu against an explicit store.
func RunWith(store *profile.Store) (*profile.Profile, error) {
	p := tea.NewProgram(NewModel(store), tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return nil, fmt.Errorf("failed to run interface: %w", err)
	}
	m, ok := final.(Model)
	if !ok {
		return nil, nil
	}
	return m.LaunchProfile(), nil
}
