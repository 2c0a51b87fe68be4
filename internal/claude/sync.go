// Package claude updates the env block of a Claude Code settings.json
// with a profile's environment, leaving every other setting untouched.
package claude

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"ccprofile/internal/profile"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// managedKeys are the env entries this tool owns inside settings.json.
// Everything else in the env object is preserved verbatim.
var managedKeys = []string{
	profile.EnvAuthToken,
	profile.EnvBaseURL,
	profile.EnvModel,
	profile.EnvTimeout,
	profile.EnvDisableTraffic,
}

// SettingsPath returns the default Claude Code settings location.
func SettingsPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}
	return filepath.Join(homeDir, ".claude", "settings.json"), nil
}

// UpdateEnvField rewrites the env object of the settings JSON: managed
// keys are replaced with the profile's values (or removed when the profile
// does not carry them), unmanaged keys are preserved.
func UpdateEnvField(originalContent string, p *profile.Profile) (string, error) {
	result := gjson.Parse(originalContent)
	if !result.IsObject() {
		return "", fmt.Errorf("settings content is not a JSON object")
	}

	updatedEnv := make(map[string]string)
	if envResult := result.Get("env"); envResult.Exists() {
		envResult.ForEach(func(key, value gjson.Result) bool {
			updatedEnv[key.Str] = value.Str
			return true
		})
	}

	for _, key := range managedKeys {
		if v, ok := p.Env[key]; ok && v != "" {
			updatedEnv[key] = v
		} else {
			delete(updatedEnv, key)
		}
	}

	envJSON, err := json.Marshal(updatedEnv)
	if err != nil {
		return "", fmt.Errorf("failed to marshal updated env: %w", err)
	}

	updatedContent, err := sjson.SetRaw(originalContent, "env", string(envJSON))
	if err != nil {
		return "", fmt.Errorf("failed to update env field: %w", err)
	}
	return updatedContent, nil
}

// SyncSettings applies the profile's env to the settings file at path,
// creating a minimal settings file when none exists. Writes go through a
// temp file plus rename.
func SyncSettings(path string, p *profile.Profile) error {
	content := "{}"
	if data, err := os.ReadFile(path); err == nil && len(data) > 0 {
		content = string(data)
	} else if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to read settings file: %w", err)
	}

	updated, err := UpdateEnvField(content, p)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create settings directory: %w", err)
	}

	tmpFile, err := os.CreateTemp(filepath.Dir(path), "settings.json.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temporary file: %w", err)
	}
	defer os.Remove(tmpFile.Name())

	if _, err := tmpFile.WriteString(updated); err != nil {
		tmpFile.Close()
		return fmt.Errorf("failed to write temporary file: %w", err)
	}
	tmpFile.Close()

	if err := os.Chmod(tmpFile.Name(), 0600); err != nil {
		return fmt.Errorf("failed to set permissions on temporary file: %w", err)
	}
	if err := os.Rename(tmpFile.Name(), path); err != nil {
		return fmt.Errorf("failed to rename temporary file: %w", err)
	}
	return nil
}
