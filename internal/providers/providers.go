// Package providers holds the static catalog of known API providers.
package providers

import (
	"ccprofile/internal/profile"
)

// Provider describes one vendor's default connection settings. Catalog
// entries are immutable at runtime; a custom provider is a Provider value
// synthesized from user input and never added back into the catalog.
type Provider struct {
	ID           string
	DisplayName  string
	Description  string
	BaseURL      string
	DefaultModel string
	AuthURL      string // optional; enables the browser-assisted auth path
	Instructions string // optional; shown alongside the token prompt
	Custom       bool   // synthesized from user input, not a catalog entry
}

// PrimaryID identifies the built-in provider that is protected from bulk
// removal.
const PrimaryID = "claude"

// catalog is the build-time provider list. Order is display order.
var catalog = []Provider{
	{
		ID:           PrimaryID,
		DisplayName:  "Claude",
		Description:  "Anthropic official API",
		BaseURL:      "https://api.anthropic.com",
		DefaultModel: "claude-sonnet-4-20250514",
		AuthURL:      "https://console.anthropic.com/settings/keys",
		Instructions: "Create an API key in the Anthropic console and paste it below.",
	},
	{
		ID:           "glm",
		DisplayName:  "GLM",
		Description:  "Zhipu GLM coding plan (Anthropic-compatible endpoint)",
		BaseURL:      "https://open.bigmodel.cn/api/anthropic",
		DefaultModel: "glm-4.6",
		AuthURL:      "https://open.bigmodel.cn/usercenter/proj-mgmt/apikeys",
		Instructions: "Create an API key in the Zhipu console and paste it below.",
	},
	{
		ID:           "minimax",
		DisplayName:  "MiniMax",
		Description:  "MiniMax M2 (Anthropic-compatible endpoint)",
		BaseURL:      "https://api.minimaxi.com/anthropic",
		DefaultModel: "MiniMax-M2",
		AuthURL:      "https://platform.minimaxi.com/user-center/basic-information/interface-key",
		Instructions: "Create an API key in the MiniMax platform and paste it below.",
	},
	{
		ID:           "openrouter",
		DisplayName:  "OpenRouter",
		Description:  "OpenRouter gateway to many model vendors",
		BaseURL:      "https://openrouter.ai/api",
		DefaultModel: "anthropic/claude-sonnet-4.5",
		AuthURL:      "https://openrouter.ai/keys",
		Instructions: "Create an API key on openrouter.ai and paste it below.",
	},
}

// Catalog returns a copy of the built-in provider list.
func Catalog() []Provider {
	out := make([]Provider, len(catalog))
	copy(out, catalog)
	return out
}

// Find returns the built-in provider with the given id.
func Find(id string) (Provider, bool) {
	for _, p := range catalog {
		if p.ID == id {
			return p, true
		}
	}
	return Provider{}, false
}

// IsBuiltIn reports whether id names a catalog entry.
func IsBuiltIn(id string) bool {
	_, ok := Find(id)
	return ok
}

// NewCustom synthesizes a custom provider from user-entered fields. The id
// is derived from the display name the same way profile file keys are.
func NewCustom(displayName, baseURL, defaultModel, authURL, instructions string) Provider {
	return Provider{
		ID:           profile.Slugify(displayName),
		DisplayName:  displayName,
		BaseURL:      baseURL,
		DefaultModel: defaultModel,
		AuthURL:      authURL,
		Instructions: instructions,
		Custom:       true,
	}
}

// FromProfile reconstructs a provider for an existing profile: the catalog
// entry when the profile references one, otherwise a custom provider
// rebuilt from the metadata the profile carries in its env map.
func FromProfile(p *profile.Profile) Provider {
	if builtin, ok := Find(p.Provider); ok {
		return builtin
	}
	display := p.Env[profile.EnvProviderName]
	if display == "" {
		display = p.Name
	}
	return Provider{
		ID:           p.Provider,
		DisplayName:  display,
		BaseURL:      p.BaseURL(),
		DefaultModel: p.Model(),
		AuthURL:      p.Env[profile.EnvProviderAuthURL],
		Instructions: p.Env[profile.EnvProviderInstructions],
		Custom:       true,
	}
}
