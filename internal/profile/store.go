package profile

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const (
	profileExt    = ".json"
	exampleSuffix = ".example.json"
)

// Store persists profiles as individual JSON files in a single directory.
// There is no in-memory cache: every call re-reads the directory, so
// external edits are visible immediately.
type Store struct {
	dir string
}

// NewStore creates a Store rooted at the user-level config location
// (~/.config/ccprofile/profiles), creating the directory if needed.
func NewStore() (*Store, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve home directory: %w", err)
	}
	dir := filepath.Join(homeDir, ".config", "ccprofile", "profiles")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create profiles directory: %w", err)
	}
	return &Store{dir: dir}, nil
}

// NewStoreAt creates a Store rooted at an explicit directory.
func NewStoreAt(dir string) *Store {
	return &Store{dir: dir}
}

// Dir returns the profiles directory.
func (s *Store) Dir() string {
	return s.dir
}

// List returns all profiles in sorted-filename order. A missing directory
// is an empty profile set. Files with the reserved example suffix are
// skipped, and a file that fails to parse is skipped with a warning rather
// than aborting the listing.
func (s *Store) List() ([]Profile, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return []Profile{}, nil
		}
		return nil, fmt.Errorf("failed to read profiles directory: %w", err)
	}

	profiles := make([]Profile, 0, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, profileExt) {
			continue
		}
		if strings.HasSuffix(name, exampleSuffix) {
			continue
		}

		data, err := os.ReadFile(filepath.Join(s.dir, name))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to read profile %s: %v\n", name, err)
			continue
		}

		var p Profile
		if err := json.Unmarshal(data, &p); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: skipping malformed profile %s: %v\n", name, err)
			continue
		}
		p.FileKey = strings.TrimSuffix(name, profileExt)
		profiles = append(profiles, p)
	}
	return profiles, nil
}

// Get returns the first profile whose provider equals key or whose name
// case-insensitively equals key. When two profiles share a provider id or
// name the first in sorted-filename order wins; callers should treat that
// tie-break as a sharp edge, not a contract.
func (s *Store) Get(key string) (*Profile, error) {
	profiles, err := s.List()
	if err != nil {
		return nil, err
	}
	for i := range profiles {
		if profiles[i].Provider == key || strings.EqualFold(profiles[i].Name, key) {
			return &profiles[i], nil
		}
	}
	return nil, fmt.Errorf("profile '%s' not found", key)
}

// GetByName returns the profile with the given name (case-insensitive
// exact match), or nil when absent.
func (s *Store) GetByName(name string) (*Profile, error) {
	profiles, err := s.List()
	if err != nil {
		return nil, err
	}
	for i := range profiles {
		if strings.EqualFold(profiles[i].Name, name) {
			return &profiles[i], nil
		}
	}
	return nil, nil
}

// GetByFileKey returns the profile stored under the given file key, or nil
// when absent.
func (s *Store) GetByFileKey(key string) (*Profile, error) {
	profiles, err := s.List()
	if err != nil {
		return nil, err
	}
	for i := range profiles {
		if profiles[i].FileKey == key {
			return &profiles[i], nil
		}
	}
	return nil, nil
}

// Save writes the profile to <key>.json, overwriting any existing file at
// that path. This is the update path as well as the create path. The
// resolved file key is recorded on the profile.
func (s *Store) Save(p *Profile) error {
	if p.Name == "" {
		return fmt.Errorf("profile name cannot be empty")
	}
	key := p.Key()

	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return fmt.Errorf("failed to create profiles directory: %w", err)
	}

	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize profile: %w", err)
	}

	if err := atomicWrite(filepath.Join(s.dir, key+profileExt), data); err != nil {
		return err
	}
	p.FileKey = key
	return nil
}

// Delete resolves nameOrProvider via Get and deletes that single file.
// It reports whether a deletion occurred.
func (s *Store) Delete(nameOrProvider string) (bool, error) {
	p, err := s.Get(nameOrProvider)
	if err != nil {
		return false, nil
	}
	if err := os.Remove(filepath.Join(s.dir, p.Key()+profileExt)); err != nil {
		return false, fmt.Errorf("failed to delete profile: %w", err)
	}
	return true, nil
}

// RemoveByProvider deletes every profile file whose provider field equals
// the given id and returns the number removed. An unknown id is a no-op.
// The caller is responsible for protecting built-in providers.
func (s *Store) RemoveByProvider(providerID string) (int, error) {
	profiles, err := s.List()
	if err != nil {
		return 0, err
	}
	removed := 0
	for i := range profiles {
		if profiles[i].Provider != providerID {
			continue
		}
		if err := os.Remove(filepath.Join(s.dir, profiles[i].Key()+profileExt)); err != nil {
			return removed, fmt.Errorf("failed to delete profile %s: %w", profiles[i].Name, err)
		}
		removed++
	}
	return removed, nil
}

// atomicWrite writes data through a temp file plus rename so a crash never
// leaves a half-written profile behind.
func atomicWrite(path string, data []byte) error {
	tmpFile, err := os.CreateTemp(filepath.Dir(path), ".profile-*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temporary file: %w", err)
	}
	defer os.Remove(tmpFile.Name())

	if _, err := tmpFile.Write(data); err != nil {
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
