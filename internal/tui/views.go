package tui

import (
	"fmt"
	"strings"

	"ccprofile/internal/profile"
	"ccprofile/internal/utils"

	"github.com/charmbracelet/lipgloss"
)

// Styles for the TUI
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57")).
			Bold(true)

	configuredStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true)

	normalStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	messageStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	helpKeyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205"))

	separatorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("238"))

	sectionStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)

	maskedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243"))

	formLabelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Width(14)

	formFocusedStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("205")).
				Bold(true)

	formHintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true)
)

// getEffectiveWidth returns the rendering width, capped for readability
func (m Model) getEffectiveWidth(defaultWidth int) int {
	if m.width <= 0 {
		return defaultWidth
	}
	maxWidth := 80
	if m.width < maxWidth {
		return m.width - 2
	}
	return maxWidth
}

// truncateText truncates text to maxWidth, adding ellipsis if needed
func (m Model) truncateText(text string, maxWidth int) string {
	if maxWidth <= 3 {
		return "..."
	}
	if len(text) <= maxWidth {
		return text
	}
	return text[:maxWidth-3] + "..."
}

func (m Model) header(title string) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")
	b.WriteString(separatorStyle.Render(strings.Repeat("─", m.getEffectiveWidth(40))))
	b.WriteString("\n\n")
	return b.String()
}

func (m Model) footer(hints string) string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(separatorStyle.Render(strings.Repeat("─", m.getEffectiveWidth(40))))
	b.WriteString("\n")
	b.WriteString(m.renderNotices())
	b.WriteString(helpStyle.Render(hints))
	return b.String()
}

// renderNotices renders the transient error and status lines
func (m Model) renderNotices() string {
	var b strings.Builder
	if m.errorMsg != "" {
		b.WriteString(errorStyle.Render("✗ " + m.errorMsg))
		b.WriteString("\n")
	}
	if m.message != "" {
		b.WriteString(messageStyle.Render("✓ " + m.message))
		b.WriteString("\n")
	}
	return b.String()
}

// renderMenuView renders the main menu
func (m Model) renderMenuView() string {
	var b strings.Builder
	b.WriteString(m.header("ccprofile"))

	for i, entry := range menuEntries {
		cursor := "  "
		if i == m.menuCursor {
			cursor = "> "
		}
		line := fmt.Sprintf("%s%s", cursor, entry.Title)
		if i == m.menuCursor {
			b.WriteString(selectedStyle.Render(line))
			b.WriteString("  ")
			b.WriteString(dimStyle.Render(entry.Desc))
		} else {
			b.WriteString(normalStyle.Render(line))
		}
		b.WriteString("\n")
	}

	b.WriteString(m.footer(renderShortHelp()))
	return b.String()
}

// renderSwitchView renders the profile switch view
func (m Model) renderSwitchView() string {
	var b strings.Builder
	b.WriteString(m.header("Switch profile"))

	if len(m.profiles) == 0 {
		b.WriteString(dimStyle.Render("No profiles yet; use Configure to add one"))
		b.WriteString("\n")
	} else {
		for i := range m.profiles {
			b.WriteString(m.renderProfileLine(i, &m.profiles[i]))
			b.WriteString("\n")
		}
	}

	b.WriteString(m.footer("j/k: move │ Enter: launch │ Esc/q: back"))
	return b.String()
}

// renderProfileLine renders one row of the switch view
func (m Model) renderProfileLine(index int, p *profile.Profile) string {
	cursor := "  "
	if index == m.switchCursor {
		cursor = "> "
	}

	tokenMarker := "✗"
	if p.HasToken() {
		tokenMarker = "✓"
	}

	urlInfo := ""
	if p.BaseURL() != "" {
		urlInfo = fmt.Sprintf(" (%s)", m.truncateText(p.BaseURL(), 32))
	}

	content := fmt.Sprintf("%s%s %s [%s]%s", cursor, tokenMarker, p.Name, p.Provider, urlInfo)
	if index == m.switchCursor {
		return selectedStyle.Render(content)
	}
	return normalStyle.Render(content)
}

// renderConfigureView renders the provider configuration view
func (m Model) renderConfigureView() string {
	var b strings.Builder
	b.WriteString(m.header("Configure providers"))

	items := m.configureItems()
	for i, item := range items {
		cursor := "  "
		if i == m.configCursor {
			cursor = "> "
		}

		var content string
		if item.AddNew {
			content = cursor + "+ Add custom provider"
		} else {
			marker := "○"
			if item.Configured {
				marker = "●"
			}
			kind := ""
			if item.Provider.Custom {
				kind = " (custom)"
			}
			content = fmt.Sprintf("%s%s %s%s", cursor, marker, item.Provider.DisplayName, kind)
		}

		switch {
		case i == m.configCursor:
			b.WriteString(selectedStyle.Render(content))
		case !item.AddNew && item.Configured:
			b.WriteString(configuredStyle.Render(content))
		default:
			b.WriteString(normalStyle.Render(content))
		}

		if i == m.configCursor && !item.AddNew && item.Provider.Description != "" {
			b.WriteString("  ")
			b.WriteString(dimStyle.Render(item.Provider.Description))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render("● configured   ○ not configured"))
	b.WriteString(m.footer("j/k: move │ Enter: edit │ d: delete │ Esc/q: back"))
	return b.String()
}

// renderListView renders the read-only profile dump
func (m Model) renderListView() string {
	var b strings.Builder
	b.WriteString(m.header("Profiles"))

	if len(m.profiles) == 0 {
		b.WriteString(dimStyle.Render("No profiles yet"))
		b.WriteString("\n")
	} else {
		for i := range m.profiles {
			p := &m.profiles[i]
			tokenInfo := dimStyle.Render("(no token)")
			if p.HasToken() {
				tokenInfo = maskedStyle.Render(utils.MaskToken(p.AuthToken()))
			}
			b.WriteString(normalStyle.Render(fmt.Sprintf("  %s [%s]", p.Name, p.Provider)))
			b.WriteString("\n")
			b.WriteString(dimStyle.Render(fmt.Sprintf("    URL: %s", m.truncateText(p.BaseURL(), 48))))
			b.WriteString("\n")
			b.WriteString(dimStyle.Render(fmt.Sprintf("    Model: %s   Token: ", p.Model())))
			b.WriteString(tokenInfo)
			b.WriteString("\n")
		}
	}

	b.WriteString(m.footer("Enter/Esc/q: back"))
	return b.String()
}

// renderCurrentView renders the live environment match
func (m Model) renderCurrentView() string {
	var b strings.Builder
	b.WriteString(m.header("Current environment"))

	if m.currentMatch == nil {
		b.WriteString(dimStyle.Render("No saved profile matches this shell's environment"))
		b.WriteString("\n")
	} else {
		b.WriteString(sectionStyle.Render("Active profile"))
		b.WriteString("\n")
		b.WriteString(configuredStyle.Render("★ " + m.currentMatch.Name))
		b.WriteString("\n\n")
		b.WriteString(dimStyle.Render(fmt.Sprintf("Provider: %s", m.currentMatch.Provider)))
		b.WriteString("\n")
		b.WriteString(dimStyle.Render(fmt.Sprintf("URL: %s", m.truncateText(m.currentMatch.BaseURL(), 48))))
		b.WriteString("\n")
		b.WriteString(dimStyle.Render(fmt.Sprintf("Model: %s", m.currentMatch.Model())))
		b.WriteString("\n")
	}

	b.WriteString(m.footer("Enter/Esc/q: back"))
	return b.String()
}

// renderAuthMethodView renders the token entry method picker
func (m Model) renderAuthMethodView() string {
	var b strings.Builder
	b.WriteString(m.header("Authentication: " + m.confirmTarget.DisplayName))

	options := []string{
		"Enter a token directly",
		"Open " + m.truncateText(m.confirmTarget.AuthURL, 48) + " and paste a token",
	}
	for i, opt := range options {
		cursor := "  "
		if i == m.authCursor {
			cursor = "> "
		}
		if i == m.authCursor {
			b.WriteString(selectedStyle.Render(cursor + opt))
		} else {
			b.WriteString(normalStyle.Render(cursor + opt))
		}
		b.WriteString("\n")
	}

	if m.confirmTarget.Instructions != "" {
		b.WriteString("\n")
		b.WriteString(dimStyle.Render(m.confirmTarget.Instructions))
		b.WriteString("\n")
	}

	b.WriteString(m.footer("j/k: move │ Enter: select │ Esc/q: back"))
	return b.String()
}

// renderFormView renders the profile editor form
func (m Model) renderFormView() string {
	if m.form == nil {
		return ""
	}

	title := "Add profile"
	if m.form.Editing != nil {
		title = "Edit profile"
	}
	if m.form.Custom && m.form.Editing == nil {
		title = "Add custom provider"
	}

	var b strings.Builder
	b.WriteString(m.header(title))

	for i, input := range m.form.inputs {
		label := m.form.labels[i]
		if i == m.form.focus {
			b.WriteString(formFocusedStyle.Render(label))
		} else {
			b.WriteString(formLabelStyle.Render(label))
		}
		b.WriteString(" ")
		b.WriteString(input.View())
		b.WriteString("\n")

		// Hint only for the focused field
		if i == m.form.focus {
			b.WriteString(formLabelStyle.Render(""))
			b.WriteString(" ")
			b.WriteString(formHintStyle.Render(m.form.hints[i]))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	b.WriteString(m.footer("Tab/↓: next │ Shift+Tab/↑: previous │ Enter: save │ Esc: cancel"))
	return b.String()
}

// renderDeleteConfirm renders the provider removal confirmation dialog
func (m Model) renderDeleteConfirm() string {
	var b strings.Builder
	b.WriteString(m.header("Confirm removal"))

	b.WriteString(errorStyle.Render("⚠ This cannot be undone"))
	b.WriteString("\n\n")
	b.WriteString(normalStyle.Render("Remove all profiles for provider: "))
	b.WriteString(selectedStyle.Render(m.confirmTarget.DisplayName))
	b.WriteString("\n")

	count := 0
	for i := range m.profiles {
		if m.profiles[i].Provider == m.confirmTarget.ID {
			count++
		}
	}
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(fmt.Sprintf("%d profile(s) will be deleted", count)))
	b.WriteString("\n")

	b.WriteString(m.footer("y: confirm │ n/Esc: cancel"))
	return b.String()
}

// renderShortHelp renders the root key hints from the default bindings
func renderShortHelp() string {
	keys := DefaultKeyMap()
	hints := make([]string, 0, len(keys.ShortHelp()))
	for _, k := range keys.ShortHelp() {
		hints = append(hints, fmt.Sprintf("%s %s",
			helpKeyStyle.Render(k.Help().Key), helpStyle.Render(k.Help().Desc)))
	}
	return strings.Join(hints, helpStyle.Render(" │ "))
}
