package tui

import (
	"ccprofile/internal/profile"
)

// ProfilesLoadedMsg is sent when profiles are loaded from the store
type ProfilesLoadedMsg struct {
	Profiles []profile.Profile
}

// ProfileSavedMsg is sent when the editor flow saves a profile
type ProfileSavedMsg struct {
	Profile profile.Profile
	Err     error
}

// ProviderRemovedMsg is sent when a provider's profiles are removed
type ProviderRemovedMsg struct {
	ProviderID string
	Removed    int
	Err        error
}

// BrowserOpenedMsg is sent after attempting to open the auth URL
type BrowserOpenedMsg struct {
	URL string
	Err error
}

// escExpiredMsg disarms the double-escape quit hint after the debounce
// window passes
type escExpiredMsg struct{}

// errMsg is an error message type
type errMsg string
