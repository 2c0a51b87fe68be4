package claude

import (
	"os"
	"path/filepath"
	"testing"

	"ccprofile/internal/profile"

	"github.com/tidwall/gjson"
)

func workProfile() *profile.Profile {
	return &profile.Profile{
		Name:     "Work",
		Provider: "claude",
		Env: map[string]string{
			profile.EnvAuthToken:      "tok-work",
			profile.EnvBaseURL:        "https://api.anthropic.com",
			profile.EnvModel:          "some-model",
			profile.EnvTimeout:        "3000000",
			profile.EnvDisableTraffic: "1",
		},
	}
}

func TestUpdateEnvField(t *testing.T) {
	t.Run("preserves unmanaged settings and env entries", func(t *testing.T) {
		original := `{
  "permissions": {"allow": ["Bash"]},
  "env": {
    "MY_CUSTOM_VAR": "keep-me",
    "ANTHROPIC_AUTH_TOKEN": "stale"
  },
  "alwaysThinkingEnabled": true
}`

		updated, err := UpdateEnvField(original, workProfile())
		if err != nil {
			t.Fatalf("UpdateEnvField() error = %v", err)
		}

		if gjson.Get(updated, "env.MY_CUSTOM_VAR").Str != "keep-me" {
			t.Error("unmanaged env entry was lost")
		}
		if gjson.Get(updated, "env.ANTHROPIC_AUTH_TOKEN").Str != "tok-work" {
			t.Error("managed env entry was not replaced")
		}
		if !gjson.Get(updated, "alwaysThinkingEnabled").Bool() {
			t.Error("top-level setting was lost")
		}
		if gjson.Get(updated, "permissions.allow.0").Str != "Bash" {
			t.Error("nested setting was lost")
		}
	})

	t.Run("removes managed keys the profile does not carry", func(t *testing.T) {
		original := `{"env": {"ANTHROPIC_MODEL": "stale-model"}}`
		p := &profile.Profile{
			Name: "Minimal",
			Env:  map[string]string{profile.EnvAuthToken: "tok"},
		}

		updated, err := UpdateEnvField(original, p)
		if err != nil {
			t.Fatalf("UpdateEnvField() error = %v", err)
		}
		if gjson.Get(updated, "env.ANTHROPIC_MODEL").Exists() {
			t.Error("stale managed key should have been removed")
		}
		if gjson.Get(updated, "env.ANTHROPIC_AUTH_TOKEN").Str != "tok" {
			t.Error("token was not written")
		}
	})

	t.Run("rejects non-object content", func(t *testing.T) {
		if _, err := UpdateEnvField(`[1,2,3]`, workProfile()); err == nil {
			t.Error("UpdateEnvField() should reject a non-object document")
		}
	})
}

func TestSyncSettings(t *testing.T) {
	t.Run("creates a settings file when none exists", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), ".claude", "settings.json")

		if err := SyncSettings(path, workProfile()); err != nil {
			t.Fatalf("SyncSettings() error = %v", err)
		}

		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("reading settings: %v", err)
		}
		if gjson.GetBytes(data, "env.ANTHROPIC_BASE_URL").Str != "https://api.anthropic.com" {
			t.Errorf("settings content = %s", data)
		}
	})

	t.Run("updates an existing file in place", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "settings.json")
		seed := `{"env": {"OTHER": "v"}, "model": "pinned"}`
		if err := os.WriteFile(path, []byte(seed), 0600); err != nil {
			t.Fatal(err)
		}

		if err := SyncSettings(path, workProfile()); err != nil {
			t.Fatalf("SyncSettings() error = %v", err)
		}

		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatal(err)
		}
		if gjson.GetBytes(data, "env.OTHER").Str != "v" {
			t.Error("foreign env entry was lost")
		}
		if gjson.GetBytes(data, "model").Str != "pinned" {
			t.Error("top-level setting was lost")
		}

		// No temp file debris.
		entries, err := os.ReadDir(dir)
		if err != nil {
			t.Fatal(err)
		}
		if len(entries) != 1 {
			t.Errorf("directory has %d entries, want 1", len(entries))
		}
	})
}
