package providers

import (
	"testing"

	"ccprofile/internal/profile"
)

func TestCatalog(t *testing.T) {
	t.Run("contains the expected providers", func(t *testing.T) {
		want := []string{"claude", "glm", "minimax", "openrouter"}
		got := Catalog()
		if len(got) != len(want) {
			t.Fatalf("Catalog() has %d entries, want %d", len(got), len(want))
		}
		for i, id := range want {
			if got[i].ID != id {
				t.Errorf("Catalog()[%d].ID = %q, want %q", i, got[i].ID, id)
			}
			if got[i].BaseURL == "" || got[i].DefaultModel == "" {
				t.Errorf("Catalog()[%d] (%s) missing defaults: %+v", i, id, got[i])
			}
			if got[i].Custom {
				t.Errorf("Catalog()[%d] (%s) marked custom", i, id)
			}
		}
	})

	t.Run("returns an isolated copy", func(t *testing.T) {
		first := Catalog()
		first[0].DisplayName = "mutated"
		if Catalog()[0].DisplayName == "mutated" {
			t.Error("Catalog() exposes the internal slice")
		}
	})

	t.Run("primary id is in the catalog", func(t *testing.T) {
		if !IsBuiltIn(PrimaryID) {
			t.Errorf("IsBuiltIn(%q) = false", PrimaryID)
		}
	})
}

func TestFind(t *testing.T) {
	if p, ok := Find("glm"); !ok || p.DisplayName != "GLM" {
		t.Errorf("Find(glm) = %+v, %v", p, ok)
	}
	if _, ok := Find("nonsense"); ok {
		t.Error("Find(nonsense) should not match")
	}
}

func TestNewCustom(t *testing.T) {
	p := NewCustom("My Provider", "https://example.com/api", "some-model",
		"https://example.com/keys", "Get a key from the dashboard.")

	if p.ID != "my-provider" {
		t.Errorf("NewCustom() ID = %q, want %q", p.ID, "my-provider")
	}
	if !p.Custom {
		t.Error("NewCustom() should mark the provider custom")
	}
	if IsBuiltIn(p.ID) {
		t.Errorf("custom id %q collides with the catalog", p.ID)
	}
}

func TestFromProfile(t *testing.T) {
	t.Run("catalog entry wins", func(t *testing.T) {
		p := &profile.Profile{Name: "Whatever", Provider: "minimax"}
		got := FromProfile(p)
		if got.ID != "minimax" || got.Custom {
			t.Errorf("FromProfile() = %+v, want the catalog entry", got)
		}
	})

	t.Run("custom rebuilt from env metadata", func(t *testing.T) {
		p := &profile.Profile{
			Name:     "Mine",
			Provider: "my-provider",
			Env: map[string]string{
				profile.EnvBaseURL:              "https://example.com/api",
				profile.EnvModel:                "some-model",
				profile.EnvProviderName:         "My Provider",
				profile.EnvProviderAuthURL:      "https://example.com/keys",
				profile.EnvProviderInstructions: "Get a key.",
			},
		}
		got := FromProfile(p)
		if !got.Custom {
			t.Error("FromProfile() should mark a non-catalog provider custom")
		}
		if got.DisplayName != "My Provider" {
			t.Errorf("DisplayName = %q, want %q", got.DisplayName, "My Provider")
		}
		if got.BaseURL != "https://example.com/api" || got.AuthURL != "https://example.com/keys" {
			t.Errorf("FromProfile() = %+v", got)
		}
	})

	t.Run("display name falls back to profile name", func(t *testing.T) {
		p := &profile.Profile{Name: "Bare", Provider: "bare"}
		if got := FromProfile(p); got.DisplayName != "Bare" {
			t.Errorf("DisplayName = %q, want %q", got.DisplayName, "Bare")
		}
	})
}
