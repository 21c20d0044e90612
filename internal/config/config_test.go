package config

import (
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Family != "lorenz" {
		t.Errorf("expected family lorenz, got %s", cfg.Family)
	}
	if cfg.Step <= 0 {
		t.Error("step should be positive")
	}
	if cfg.Iterations <= 0 {
		t.Error("iterations should be positive")
	}
	if len(cfg.Params) != 3 {
		t.Errorf("expected 3 lorenz params, got %d", len(cfg.Params))
	}
	if len(cfg.Initial) != 3 {
		t.Errorf("expected 3 initial coordinates, got %d", len(cfg.Initial))
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")

	cfg := DefaultConfig()
	cfg.Family = "thomas"
	cfg.Method = "euler"
	cfg.Step = 0.05
	cfg.Iterations = 123
	cfg.Params = []float64{0.208186}

	if err := Save(path, cfg); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if loaded.Family != "thomas" || loaded.Method != "euler" {
		t.Errorf("family/method: got %s/%s", loaded.Family, loaded.Method)
	}
	if loaded.Step != 0.05 || loaded.Iterations != 123 {
		t.Errorf("step/iterations: got %f/%d", loaded.Step, loaded.Iterations)
	}
	if len(loaded.Params) != 1 || loaded.Params[0] != 0.208186 {
		t.Errorf("params: got %v", loaded.Params)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("lorenz", "classic")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.Params[1] != 28 {
		t.Errorf("expected rho 28, got %f", cfg.Params[1])
	}
}

func TestGetPreset_NotFound(t *testing.T) {
	if cfg := GetPreset("lorenz", "nonexistent"); cfg != nil {
		t.Error("expected nil for nonexistent preset")
	}
	if cfg := GetPreset("nonexistent", "classic"); cfg != nil {
		t.Error("expected nil for nonexistent family")
	}
}

func TestListPresets(t *testing.T) {
	if presets := ListPresets("thomas"); len(presets) == 0 {
		t.Error("expected presets for thomas")
	}
	if presets := ListPresets("nonexistent"); presets != nil {
		t.Error("expected nil for nonexistent family")
	}
}

func TestPresetArities(t *testing.T) {
	arities := map[string]int{
		"lorenz": 3, "chen": 3, "four_wing": 3, "thomas": 1,
	}
	for family, presets := range Presets {
		for name, cfg := range presets {
			if len(cfg.Params) != arities[family] {
				t.Errorf("%s/%s: %d params, want %d", family, name, len(cfg.Params), arities[family])
			}
			if cfg.Family != family {
				t.Errorf("%s/%s: family field %q", family, name, cfg.Family)
			}
		}
	}
}
