package profile

import (
	"os"
	"path/filepath"
	"testing"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	return NewStoreAt(t.TempDir())
}

func TestStoreSaveAndList(t *testing.T) {
	store := testStore(t)

	p := Profile{
		Name:     "Work Claude",
		Provider: "claude",
		Env: map[string]string{
			EnvAuthToken: "sk-ant-test",
			EnvBaseURL:   "https://api.anthropic.com",
		},
	}
	if err := store.Save(&p); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if p.FileKey != "work-claude" {
		t.Errorf("Save() FileKey = %q, want %q", p.FileKey, "work-claude")
	}

	profiles, err := store.List()
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(profiles) != 1 {
		t.Fatalf("List() returned %d profiles, want 1", len(profiles))
	}
	got := profiles[0]
	if got.Name != "Work Claude" || got.Provider != "claude" {
		t.Errorf("List() profile = %+v", got)
	}
	if got.AuthToken() != "sk-ant-test" {
		t.Errorf("AuthToken() = %q, want %q", got.AuthToken(), "sk-ant-test")
	}
	if got.FileKey != "work-claude" {
		t.Errorf("List() FileKey = %q, want %q", got.FileKey, "work-claude")
	}
}

func TestStoreListMissingDir(t *testing.T) {
	store := NewStoreAt(filepath.Join(t.TempDir(), "does-not-exist"))

	profiles, err := store.List()
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(profiles) != 0 {
		t.Errorf("List() returned %d profiles, want 0", len(profiles))
	}
}

func TestStoreListSkipsNonProfiles(t *testing.T) {
	dir := t.TempDir()
	store := NewStoreAt(dir)

	p := Profile{Name: "Real", Provider: "claude"}
	if err := store.Save(&p); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	// None of these should surface as profiles.
	files := map[string]string{
		"default.example.json": `{"name":"Example","provider":"claude"}`,
		"broken.json":          `{not json`,
		"notes.txt":            "unrelated",
	}
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0600); err != nil {
			t.Fatal(err)
		}
	}
	if err := os.Mkdir(filepath.Join(dir, "subdir.json"), 0755); err != nil {
		t.Fatal(err)
	}

	profiles, err := store.List()
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(profiles) != 1 || profiles[0].Name != "Real" {
		t.Errorf("List() = %+v, want only the real profile", profiles)
	}
}

func TestStoreGet(t *testing.T) {
	store := testStore(t)

	work := Profile{Name: "Work", Provider: "claude"}
	personal := Profile{Name: "Personal", Provider: "glm"}
	for _, p := range []*Profile{&work, &personal} {
		if err := store.Save(p); err != nil {
			t.Fatalf("Save() error = %v", err)
		}
	}

	t.Run("by provider id", func(t *testing.T) {
		p, err := store.Get("glm")
		if err != nil {
			t.Fatalf("Get() error = %v", err)
		}
		if p.Name != "Personal" {
			t.Errorf("Get(glm) = %q, want Personal", p.Name)
		}
	})

	t.Run("by name case-insensitive", func(t *testing.T) {
		p, err := store.Get("wOrK")
		if err != nil {
			t.Fatalf("Get() error = %v", err)
		}
		if p.Name != "Work" {
			t.Errorf("Get(wOrK) = %q, want Work", p.Name)
		}
	})

	t.Run("not found", func(t *testing.T) {
		if _, err := store.Get("missing"); err == nil {
			t.Error("Get(missing) should return an error")
		}
	})
}

func TestStoreGetByName(t *testing.T) {
	store := testStore(t)

	p := Profile{Name: "Work", Provider: "claude"}
	if err := store.Save(&p); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	found, err := store.GetByName("WORK")
	if err != nil {
		t.Fatalf("GetByName() error = %v", err)
	}
	if found == nil || found.Name != "Work" {
		t.Errorf("GetByName(WORK) = %v, want Work", found)
	}

	absent, err := store.GetByName("nothing")
	if err != nil {
		t.Fatalf("GetByName() error = %v", err)
	}
	if absent != nil {
		t.Errorf("GetByName(nothing) = %v, want nil", absent)
	}
}

func TestStoreSaveOverwritesByFileKey(t *testing.T) {
	store := testStore(t)

	p := Profile{Name: "Work", Provider: "claude", Env: map[string]string{EnvModel: "m1"}}
	if err := store.Save(&p); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	// Rename the profile but keep the file key: the same file is rewritten.
	p.Name = "Work Renamed"
	p.Env[EnvModel] = "m2"
	if err := store.Save(&p); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	profiles, err := store.List()
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(profiles) != 1 {
		t.Fatalf("List() returned %d profiles, want 1", len(profiles))
	}
	if profiles[0].Name != "Work Renamed" || profiles[0].Model() != "m2" {
		t.Errorf("List() = %+v, want renamed profile", profiles[0])
	}
	if profiles[0].FileKey != "work" {
		t.Errorf("FileKey = %q, want %q (rename must not move the file)", profiles[0].FileKey, "work")
	}
}

func TestStoreSaveRequiresName(t *testing.T) {
	store := testStore(t)
	p := Profile{Provider: "claude"}
	if err := store.Save(&p); err == nil {
		t.Error("Save() with empty name should return an error")
	}
}

func TestStoreDelete(t *testing.T) {
	store := testStore(t)

	p := Profile{Name: "Work", Provider: "claude"}
	if err := store.Save(&p); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	deleted, err := store.Delete("work")
	if err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if !deleted {
		t.Error("Delete(work) = false, want true")
	}

	deleted, err = store.Delete("work")
	if err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if deleted {
		t.Error("Delete() on missing profile = true, want false")
	}
}

func TestStoreRemoveByProvider(t *testing.T) {
	store := testStore(t)

	for _, p := range []Profile{
		{Name: "GLM One", Provider: "glm"},
		{Name: "GLM Two", Provider: "glm"},
		{Name: "Keep", Provider: "claude"},
	} {
		p := p
		if err := store.Save(&p); err != nil {
			t.Fatalf("Save() error = %v", err)
		}
	}

	removed, err := store.RemoveByProvider("glm")
	if err != nil {
		t.Fatalf("RemoveByProvider() error = %v", err)
	}
	if removed != 2 {
		t.Errorf("RemoveByProvider(glm) = %d, want 2", removed)
	}

	profiles, err := store.List()
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(profiles) != 1 || profiles[0].Provider != "claude" {
		t.Errorf("List() after removal = %+v, want only the claude profile", profiles)
	}

	removed, err = store.RemoveByProvider("unknown")
	if err != nil {
		t.Fatalf("RemoveByProvider() error = %v", err)
	}
	if removed != 0 {
		t.Errorf("RemoveByProvider(unknown) = %d, want 0", removed)
	}
}

func TestAtomicWriteLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	store := NewStoreAt(dir)

	p := Profile{Name: "Work", Provider: "claude"}
	if err := store.Save(&p); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	for _, e := range entries {
		if e.Name() != "work.json" {
			t.Errorf("unexpected file left behind: %s", e.Name())
		}
	}
}
