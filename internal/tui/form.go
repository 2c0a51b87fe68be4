package tui

import (
	"errors"
	"strconv"
	"strings"

	"ccprofile/internal/profile"
	"ccprofile/internal/providers"
	"ccprofile/internal/utils"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// AuthMethod selects how the editor collects the token.
type AuthMethod int

const (
	AuthDirect  AuthMethod = iota // paste a token at the prompt
	AuthBrowser                   // open the provider's auth URL first
)

// ProviderForm is the multi-field editor for one profile. The same form
// serves creation and editing; a custom-provider form carries three extra
// leading fields for the provider's own metadata.
type ProviderForm struct {
	Provider providers.Provider
	Editing  *profile.Profile // nil when adding a new profile
	Custom   bool
	Method   AuthMethod

	inputs []textinput.Model
	labels []string
	hints  []string
	focus  int

	// field indices; -1 when the field is absent
	idxProvName int
	idxAuthURL  int
	idxInstr    int
	idxName     int
	idxBaseURL  int
	idxToken    int
	idxModel    int
	idxTimeout  int
}

// FormData is the raw field content collected on submit.
type FormData struct {
	ProviderName string
	AuthURL      string
	Instructions string
	Name         string
	BaseURL      string
	Token        string
	Model        string
	Timeout      string
}

func newInput(placeholder string, limit int) textinput.Model {
	in := textinput.New()
	in.Placeholder = placeholder
	in.CharLimit = limit
	in.Width = 40
	in.Prompt = ""
	return in
}

// NewProviderForm builds the editor form for a provider, prefilled with
// the provider's defaults or, when editing, the existing profile's values.
func NewProviderForm(prov providers.Provider, editing *profile.Profile, custom bool) *ProviderForm {
	f := &ProviderForm{
		Provider:    prov,
		Editing:     editing,
		Custom:      custom,
		idxProvName: -1,
		idxAuthURL:  -1,
		idxInstr:    -1,
	}

	add := func(label, hint string, input textinput.Model) int {
		f.labels = append(f.labels, label)
		f.hints = append(f.hints, hint)
		f.inputs = append(f.inputs, input)
		return len(f.inputs) - 1
	}

	if custom {
		provName := newInput("My Provider", 64)
		authURL := newInput("https://example.com/keys", 256)
		instr := newInput("How to obtain a token", 256)
		if editing != nil {
			provName.SetValue(prov.DisplayName)
			authURL.SetValue(prov.AuthURL)
			instr.SetValue(prov.Instructions)
		}
		f.idxProvName = add("Provider:", "Display name; the provider id is derived from it", provName)
		f.idxAuthURL = add("Auth URL:", "Where tokens are issued (optional)", authURL)
		f.idxInstr = add("Instructions:", "Shown at the token prompt (optional)", instr)
	}

	name := newInput(prov.DisplayName, 64)
	baseURL := newInput(prov.BaseURL, 256)
	token := newInput("paste token", 512)
	token.EchoMode = textinput.EchoPassword
	token.EchoCharacter = '•'
	model := newInput(prov.DefaultModel, 128)
	timeout := newInput(profile.DefaultTimeoutMS, 16)

	if editing != nil {
		name.SetValue(editing.Name)
		baseURL.SetValue(editing.BaseURL())
		token.SetValue(editing.AuthToken())
		model.SetValue(editing.Model())
		timeout.SetValue(editing.Env[profile.EnvTimeout])
	} else {
		name.SetValue(prov.DisplayName)
	}

	f.idxName = add("Name:", "Profile name; blank keeps the provider name", name)
	f.idxBaseURL = add("Base URL:", "Blank keeps the provider default", baseURL)
	f.idxToken = add("Token:", "Leave empty to cancel without saving", token)
	f.idxModel = add("Model:", "Blank keeps the provider default", model)
	f.idxTimeout = add("Timeout:", "Request timeout in ms; blank for "+profile.DefaultTimeoutMS, timeout)

	f.inputs[0].Focus()
	return f
}

// Next advances focus to the next field with wraparound.
func (f *ProviderForm) Next() {
	f.inputs[f.focus].Blur()
	f.focus = (f.focus + 1) % len(f.inputs)
	f.inputs[f.focus].Focus()
}

// Prev moves focus to the previous field with wraparound.
func (f *ProviderForm) Prev() {
	f.inputs[f.focus].Blur()
	f.focus--
	if f.focus < 0 {
		f.focus = len(f.inputs) - 1
	}
	f.inputs[f.focus].Focus()
}

// Update forwards a message to the focused input.
func (f *ProviderForm) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return cmd
}

func (f *ProviderForm) value(idx int) string {
	if idx < 0 {
		return ""
	}
	return strings.TrimSpace(f.inputs[idx].Value())
}

// Data extracts the trimmed field contents.
func (f *ProviderForm) Data() FormData {
	return FormData{
		ProviderName: f.value(f.idxProvName),
		AuthURL:      f.value(f.idxAuthURL),
		Instructions: f.value(f.idxInstr),
		Name:         f.value(f.idxName),
		BaseURL:      f.value(f.idxBaseURL),
		Token:        f.value(f.idxToken),
		Model:        f.value(f.idxModel),
		Timeout:      f.value(f.idxTimeout),
	}
}

// ErrCancelled reports that the user submitted an empty token, which
// aborts the flow without saving.
var ErrCancelled = errors.New("cancelled")

// Validate checks the form content. An empty token is cancellation, not a
// validation failure.
func (f *ProviderForm) Validate(data FormData) error {
	if data.Token == "" {
		return ErrCancelled
	}
	if f.Custom && data.ProviderName == "" {
		return errors.New("provider name cannot be empty")
	}
	if data.BaseURL != "" && !utils.ValidateURL(data.BaseURL) {
		return errors.New("invalid base URL format")
	}
	if data.AuthURL != "" && !utils.ValidateURL(data.AuthURL) {
		return errors.New("invalid auth URL format")
	}
	if data.Timeout != "" {
		if _, err := strconv.Atoi(data.Timeout); err != nil {
			return errors.New("timeout must be a number of milliseconds")
		}
	}
	return nil
}
