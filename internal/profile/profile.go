// Package profile defines the persisted profile record and its on-disk store.
package profile

// Environment variable names recognized inside a profile's env map.
const (
	EnvAuthToken      = "ANTHROPIC_AUTH_TOKEN"
	EnvBaseURL        = "ANTHROPIC_BASE_URL"
	EnvModel          = "ANTHROPIC_MODEL"
	EnvTimeout        = "API_TIMEOUT_MS"
	EnvDisableTraffic = "CLAUDE_CODE_DISABLE_NONESSENTIAL_TRAFFIC"

	// Custom-provider metadata carried inside the same env map so a custom
	// profile round-trips through one JSON shape.
	EnvProviderName         = "PROVIDER_NAME"
	EnvProviderAuthURL      = "PROVIDER_AUTH_URL"
	EnvProviderInstructions = "PROVIDER_AUTH_INSTRUCTIONS"
)

// DefaultTimeoutMS is the request timeout applied when the editor field is
// left blank (50 minutes, in milliseconds).
const DefaultTimeoutMS = "3000000"

// Profile is a named bundle of environment-variable overrides plus a
// provider reference.
type Profile struct {
	Name     string            `json:"name"`
	Provider string            `json:"provider"`
	Env      map[string]string `json:"env"`

	// FileKey is the storage slug, set from the file name on load. It is
	// not serialized so renaming a profile never renames its file.
	FileKey string `json:"-"`
}

// Key returns the slug used as the profile's file name.
func (p *Profile) Key() string {
	if p.FileKey != "" {
		return p.FileKey
	}
	return Slugify(p.Name)
}

// AuthToken returns the profile's auth token, if any.
func (p *Profile) AuthToken() string { return p.Env[EnvAuthToken] }

// BaseURL returns the profile's base URL, if any.
func (p *Profile) BaseURL() string { return p.Env[EnvBaseURL] }

// Model returns the profile's model name, if any.
func (p *Profile) Model() string { return p.Env[EnvModel] }

// HasToken reports whether the profile carries an auth token and is
// therefore launchable.
func (p *Profile) HasToken() bool { return p.Env[EnvAuthToken] != "" }

// SetEnv stores a value in the env map, allocating it if needed. Empty
// values are not stored.
func (p *Profile) SetEnv(key, value string) {
	if value == "" {
		return
	}
	if p.Env == nil {
		p.Env = make(map[string]string)
	}
	p.Env[key] = value
}
