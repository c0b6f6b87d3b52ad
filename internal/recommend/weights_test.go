package recommend

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

func TestWeightsValidate(t *testing.T) {
	if err := DefaultWeights().Validate(); err != nil {
		t.Fatalf("default weights should validate: %v", err)
	}

	bad := Weights{Terrain: 0.5, Weather: 0.5, Capacity: 0.5}
	if err := bad.Validate(); err == nil {
		t.Fatal("expected error for weights not summing to 1.0")
	}

	negative := Weights{Terrain: 1.2, Weather: -0.2}
	if err := negative.Validate(); err == nil {
		t.Fatal("expected error for negative weight")
	}
}

func TestLoadWeights(t *testing.T) {
	w, err := LoadWeights("")
	if err != nil {
		t.Fatalf("empty path should return defaults: %v", err)
	}
	if w != DefaultWeights() {
		t.Fatalf("expected defaults, got %+v", w)
	}

	override := Weights{Terrain: 0.4, Weather: 0.1, Capacity: 0.2, Purpose: 0.2, Preference: 0.1}
	path := writeWeightsFile(t, override)
	w, err = LoadWeights(path)
	if err != nil {
		t.Fatalf("load weights: %v", err)
	}
	if w != override {
		t.Fatalf("expected %+v got %+v", override, w)
	}

	invalid := Weights{Terrain: 0.9}
	if _, err := LoadWeights(writeWeightsFile(t, invalid)); err == nil {
		t.Fatal("expected validation error for invalid weights file")
	}
}

func writeWeightsFile(t *testing.T, w Weights) string {
	t.Helper()
	data, err := json.Marshal(w)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	path := filepath.Join(t.TempDir(), "weights.json")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	return path
}
