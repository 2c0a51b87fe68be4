// Package tui provides the full-screen menu interface for ccprofile
package tui

import (
	"errors"
	"fmt"
	"os"
	"time"

	"ccprofile/internal/launcher"
	"ccprofile/internal/profile"
	"ccprofile/internal/providers"

	tea "github.com/charmbracelet/bubbletea"
)

// ViewState represents the current view state
type ViewState int

const (
	ViewMenu          ViewState = iota // Main menu
	ViewSwitch                         // Profile list, enter launches
	ViewConfigure                      // Provider list, enter edits
	ViewList                           // Read-only profile dump
	ViewCurrent                        // Live environment match
	ViewAuthMethod                     // Token entry method picker
	ViewForm                           // Profile editor form
	ViewDeleteConfirm                  // Provider removal confirmation
)

// escDebounce is the window within which a second escape at the root view
// quits the program.
const escDebounce = 800 * time.Millisecond

// menuEntry is one action on the main menu
type menuEntry struct {
	Title string
	Desc  string
}

var menuEntries = []menuEntry{
	{"Switch profile", "launch " + launcher.DefaultCommand + " with a saved profile"},
	{"Configure providers", "add or edit provider profiles"},
	{"List profiles", "show all saved profiles"},
	{"Current environment", "show which profile this shell matches"},
}

// configItem is one row of the configure view
type configItem struct {
	AddNew     bool
	Provider   providers.Provider
	Configured bool
}

// Model is the core state model for the TUI
type Model struct {
	store    *profile.Store
	profiles []profile.Profile

	viewState    ViewState
	menuCursor   int
	switchCursor int
	configCursor int
	authCursor   int

	form          *ProviderForm
	confirmTarget providers.Provider

	// Messages and errors
	message  string
	errorMsg string

	// Window size
	width  int
	height int

	// Double-escape quit state
	escArmed bool
	escAt    time.Time

	// Profile queued for launch after UI teardown
	launch *profile.Profile

	// Resolved on entering the current view
	currentMatch *profile.Profile
}

// NewModel creates a new TUI model
func NewModel(store *profile.Store) Model {
	return Model{
		store:     store,
		profiles:  []profile.Profile{},
		viewState: ViewMenu,
		width:     80,
		height:    24,
	}
}

// LaunchProfile returns the profile selected for launch, if any.
func (m Model) LaunchProfile() *profile.Profile {
	return m.launch
}

// Init initializes the model and returns initial commands
func (m Model) Init() tea.Cmd {
	return loadProfiles(m.store)
}

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		return m.handleKeyMsg(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case ProfilesLoadedMsg:
		m.profiles = msg.Profiles
		m.clampCursors()
		return m, nil

	case ProfileSavedMsg:
		if msg.Err != nil {
			m.errorMsg = msg.Err.Error()
			return m, nil
		}
		m.message = "Saved profile: " + msg.Profile.Name
		m.errorMsg = ""
		m.form = nil
		m.viewState = ViewConfigure
		return m, loadProfiles(m.store)

	case ProviderRemovedMsg:
		if msg.Err != nil {
			m.errorMsg = msg.Err.Error()
		} else if msg.Removed == 0 {
			m.message = "No profiles for provider: " + msg.ProviderID
		} else {
			m.message = fmt.Sprintf("Removed %d profile(s) for provider: %s", msg.Removed, msg.ProviderID)
		}
		m.viewState = ViewConfigure
		return m, loadProfiles(m.store)

	case BrowserOpenedMsg:
		if msg.Err != nil {
			m.message = "Could not open a browser; visit " + msg.URL + " and paste the token below"
		} else {
			m.message = "Opened " + msg.URL + " in your browser; paste the token below"
		}
		return m, nil

	case escExpiredMsg:
		if m.escArmed && time.Since(m.escAt) >= escDebounce {
			m.escArmed = false
			if m.message == escHint {
				m.message = ""
			}
		}
		return m, nil

	case errMsg:
		m.errorMsg = string(msg)
		return m, nil
	}

	return m, nil
}

const escHint = "Press Esc again to quit"

// handleKeyMsg routes keyboard input to the active view
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.viewState {
	case ViewMenu:
		return m.handleMenuKeys(msg)
	case ViewSwitch:
		return m.handleSwitchKeys(msg)
	case ViewConfigure:
		return m.handleConfigureKeys(msg)
	case ViewList, ViewCurrent:
		return m.handleStaticViewKeys(msg)
	case ViewAuthMethod:
		return m.handleAuthMethodKeys(msg)
	case ViewForm:
		return m.handleFormKeys(msg)
	case ViewDeleteConfirm:
		return m.handleDeleteConfirmKeys(msg)
	default:
		return m, nil
	}
}

// handleMenuKeys handles keyboard input on the main menu
func (m Model) handleMenuKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit

	case "esc":
		if m.escArmed && time.Since(m.escAt) <= escDebounce {
			return m, tea.Quit
		}
		m.escArmed = true
		m.escAt = time.Now()
		m.message = escHint
		return m, tea.Tick(escDebounce, func(time.Time) tea.Msg { return escExpiredMsg{} })

	case "j", "down":
		m.menuCursor = wrapCursor(m.menuCursor, 1, len(menuEntries))
		m.clearNotices()
		return m, nil

	case "k", "up":
		m.menuCursor = wrapCursor(m.menuCursor, -1, len(menuEntries))
		m.clearNotices()
		return m, nil

	case "enter", " ":
		m.clearNotices()
		switch m.menuCursor {
		case 0:
			m.viewState = ViewSwitch
		case 1:
			m.viewState = ViewConfigure
		case 2:
			m.viewState = ViewList
		case 3:
			m.currentMatch = profile.MatchCurrent(m.profiles, os.Getenv)
			m.viewState = ViewCurrent
		}
		return m, loadProfiles(m.store)
	}

	return m, nil
}

// handleSwitchKeys handles keyboard input in the switch view
func (m Model) handleSwitchKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc":
		m.viewState = ViewMenu
		m.clearNotices()
		return m, nil

	case "j", "down":
		m.switchCursor = wrapCursor(m.switchCursor, 1, len(m.profiles))
		m.clearNotices()
		return m, nil

	case "k", "up":
		m.switchCursor = wrapCursor(m.switchCursor, -1, len(m.profiles))
		m.clearNotices()
		return m, nil

	case "enter", " ":
		if len(m.profiles) == 0 {
			m.message = "No profiles yet; use Configure to add one"
			return m, nil
		}
		selected := m.profiles[m.switchCursor]
		if !selected.HasToken() {
			m.errorMsg = fmt.Sprintf("Profile '%s' has no token; configure it first", selected.Name)
			return m, nil
		}
		m.launch = &selected
		return m, tea.Quit
	}

	return m, nil
}

// configureItems builds the configure view rows: an add action, the
// catalog, then custom providers reconstructed from saved profiles.
func (m Model) configureItems() []configItem {
	items := []configItem{{AddNew: true}}

	configured := make(map[string]bool, len(m.profiles))
	for i := range m.profiles {
		configured[m.profiles[i].Provider] = true
	}

	for _, prov := range providers.Catalog() {
		items = append(items, configItem{Provider: prov, Configured: configured[prov.ID]})
	}

	seen := make(map[string]bool)
	for i := range m.profiles {
		p := &m.profiles[i]
		if providers.IsBuiltIn(p.Provider) || seen[p.Provider] {
			continue
		}
		seen[p.Provider] = true
		items = append(items, configItem{Provider: providers.FromProfile(p), Configured: true})
	}
	return items
}

// handleConfigureKeys handles keyboard input in the configure view
func (m Model) handleConfigureKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	items := m.configureItems()

	switch msg.String() {
	case "q", "esc":
		m.viewState = ViewMenu
		m.clearNotices()
		return m, nil

	case "j", "down":
		m.configCursor = wrapCursor(m.configCursor, 1, len(items))
		m.clearNotices()
		return m, nil

	case "k", "up":
		m.configCursor = wrapCursor(m.configCursor, -1, len(items))
		m.clearNotices()
		return m, nil

	case "enter", " ":
		if m.configCursor >= len(items) {
			return m, nil
		}
		m.clearNotices()
		item := items[m.configCursor]
		if item.AddNew {
			m.form = NewProviderForm(providers.Provider{Custom: true}, nil, true)
			m.viewState = ViewForm
			return m, nil
		}
		editing := m.profileForProvider(item.Provider.ID)
		if item.Provider.AuthURL != "" {
			m.confirmTarget = item.Provider
			m.authCursor = 0
			m.viewState = ViewAuthMethod
			return m, nil
		}
		m.form = NewProviderForm(item.Provider, editing, item.Provider.Custom)
		m.viewState = ViewForm
		return m, nil

	case "d":
		if m.configCursor >= len(items) {
			return m, nil
		}
		item := items[m.configCursor]
		if item.AddNew {
			return m, nil
		}
		if item.Provider.ID == providers.PrimaryID {
			m.errorMsg = "The built-in Claude provider cannot be removed"
			return m, nil
		}
		if !item.Configured {
			m.message = "No profiles for provider: " + item.Provider.DisplayName
			return m, nil
		}
		m.confirmTarget = item.Provider
		m.viewState = ViewDeleteConfirm
		m.clearNotices()
		return m, nil
	}

	return m, nil
}

// handleStaticViewKeys handles keyboard input in the read-only views
func (m Model) handleStaticViewKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc", "enter":
		m.viewState = ViewMenu
		m.clearNotices()
	}
	return m, nil
}

// handleAuthMethodKeys handles the token entry method picker
func (m Model) handleAuthMethodKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc":
		m.viewState = ViewConfigure
		m.clearNotices()
		return m, nil

	case "j", "down":
		m.authCursor = wrapCursor(m.authCursor, 1, 2)
		return m, nil

	case "k", "up":
		m.authCursor = wrapCursor(m.authCursor, -1, 2)
		return m, nil

	case "enter", " ":
		prov := m.confirmTarget
		editing := m.profileForProvider(prov.ID)
		m.form = NewProviderForm(prov, editing, prov.Custom)
		m.viewState = ViewForm
		if m.authCursor == 1 {
			m.form.Method = AuthBrowser
			return m, openBrowserCmd(prov.AuthURL)
		}
		m.form.Method = AuthDirect
		if prov.Instructions != "" {
			m.message = prov.Instructions + " (" + prov.AuthURL + ")"
		}
		return m, nil
	}

	return m, nil
}

// handleFormKeys handles keyboard input in the editor form
func (m Model) handleFormKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.form == nil {
		m.viewState = ViewConfigure
		return m, nil
	}

	switch msg.String() {
	case "esc":
		// Cancel the flow without saving
		m.form = nil
		m.viewState = ViewConfigure
		m.clearNotices()
		return m, nil

	case "tab", "down":
		m.form.Next()
		return m, nil

	case "shift+tab", "up":
		m.form.Prev()
		return m, nil

	case "enter":
		return m.submitForm()

	default:
		return m, m.form.Update(msg)
	}
}

// submitForm validates the editor form and saves the resulting profile
func (m Model) submitForm() (tea.Model, tea.Cmd) {
	data := m.form.Data()
	if err := m.form.Validate(data); err != nil {
		if errors.Is(err, ErrCancelled) {
			m.form = nil
			m.viewState = ViewConfigure
			m.errorMsg = ""
			m.message = "Cancelled, nothing saved"
			return m, nil
		}
		m.errorMsg = err.Error()
		return m, nil
	}

	prov := m.form.Provider
	if m.form.Custom {
		prov = providers.NewCustom(data.ProviderName, data.BaseURL, data.Model, data.AuthURL, data.Instructions)
	}

	name := data.Name
	if name == "" {
		name = prov.DisplayName
	}

	editing := m.form.Editing
	if existing, err := m.store.GetByName(name); err == nil && existing != nil {
		if editing == nil || existing.FileKey != editing.FileKey {
			m.errorMsg = fmt.Sprintf("profile name '%s' is already taken", name)
			return m, nil
		}
	}
	if editing == nil {
		if byKey, err := m.store.GetByFileKey(profile.Slugify(name)); err == nil && byKey != nil {
			m.errorMsg = fmt.Sprintf("a profile file for '%s' already exists", profile.Slugify(name))
			return m, nil
		}
	}

	p := profile.Profile{Name: name, Provider: prov.ID}
	if editing != nil {
		p.FileKey = editing.FileKey
		p.Env = make(map[string]string, len(editing.Env))
		for k, v := range editing.Env {
			p.Env[k] = v
		}
	}

	baseURL := data.BaseURL
	if baseURL == "" {
		baseURL = prov.BaseURL
	}
	model := data.Model
	if model == "" {
		model = prov.DefaultModel
	}
	timeout := data.Timeout
	if timeout == "" {
		timeout = profile.DefaultTimeoutMS
	}

	p.SetEnv(profile.EnvAuthToken, data.Token)
	p.SetEnv(profile.EnvBaseURL, baseURL)
	p.SetEnv(profile.EnvModel, model)
	p.SetEnv(profile.EnvTimeout, timeout)
	p.SetEnv(profile.EnvDisableTraffic, "1")
	if prov.Custom {
		p.SetEnv(profile.EnvProviderName, prov.DisplayName)
		p.SetEnv(profile.EnvProviderAuthURL, prov.AuthURL)
		p.SetEnv(profile.EnvProviderInstructions, prov.Instructions)
	}

	m.errorMsg = ""
	return m, saveProfileCmd(m.store, p)
}

// handleDeleteConfirmKeys handles the provider removal confirmation
func (m Model) handleDeleteConfirmKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		return m, removeProviderCmd(m.store, m.confirmTarget.ID)

	case "n", "N", "esc", "q":
		m.viewState = ViewConfigure
		m.clearNotices()
		return m, nil
	}

	return m, nil
}

// profileForProvider returns the saved profile for a provider id, nil when
// the provider is unconfigured.
func (m Model) profileForProvider(id string) *profile.Profile {
	for i := range m.profiles {
		if m.profiles[i].Provider == id {
			p := m.profiles[i]
			return &p
		}
	}
	return nil
}

// clearNotices clears the transient status and error lines
func (m *Model) clearNotices() {
	m.message = ""
	m.errorMsg = ""
	m.escArmed = false
}

// clampCursors keeps list cursors in bounds after a reload
func (m *Model) clampCursors() {
	if len(m.profiles) == 0 {
		m.switchCursor = 0
	} else if m.switchCursor >= len(m.profiles) {
		m.switchCursor = len(m.profiles) - 1
	}
	if n := len(m.configureItems()); m.configCursor >= n {
		m.configCursor = n - 1
	}
}

// wrapCursor moves a list cursor by delta with wraparound
func wrapCursor(cur, delta, n int) int {
	if n <= 0 {
		return 0
	}
	return (cur + delta + n) % n
}

// View renders the UI
func (m Model) View() string {
	switch m.viewState {
	case ViewSwitch:
		return m.renderSwitchView()
	case ViewConfigure:
		return m.renderConfigureView()
	case ViewList:
		return m.renderListView()
	case ViewCurrent:
		return m.renderCurrentView()
	case ViewAuthMethod:
		return m.renderAuthMethodView()
	case ViewForm:
		return m.renderFormView()
	case ViewDeleteConfirm:
		return m.renderDeleteConfirm()
	default:
		return m.renderMenuView()
	}
}

// loadProfiles creates a command to load profiles from the store
func loadProfiles(store *profile.Store) tea.Cmd {
	return func() tea.Msg {
		profiles, err := store.List()
		if err != nil {
			return errMsg(err.Error())
		}
		return ProfilesLoadedMsg{Profiles: profiles}
	}
}

// saveProfileCmd creates a command to persist a profile
func saveProfileCmd(store *profile.Store, p profile.Profile) tea.Cmd {
	return func() tea.Msg {
		err := store.Save(&p)
		return ProfileSavedMsg{Profile: p, Err: err}
	}
}

// removeProviderCmd creates a command to remove a provider's profiles
func removeProviderCmd(store *profile.Store, providerID string) tea.Cmd {
	return func() tea.Msg {
		removed, err := store.RemoveByProvider(providerID)
		return ProviderRemovedMsg{ProviderID: providerID, Removed: removed, Err: err}
	}
}

// openBrowserCmd creates a command to open the provider auth URL
func openBrowserCmd(url string) tea.Cmd {
	return func() tea.Msg {
		return BrowserOpenedMsg{URL: url, Err: launcher.OpenBrowser(url)}
	}
}
