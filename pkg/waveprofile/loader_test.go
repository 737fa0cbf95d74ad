package waveprofile

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

const testDir = "assets-test"

func TestLoadProfile(t *testing.T) {
	loader := NewLoader(testDir)
	p, err := loader.Load("calm")
	if err != nil {
		t.Fatalf("Failed to load profile: %v", err)
	}

	if p.Preset != "pierson-moskowitz" {
		t.Errorf("Expected preset 'pierson-moskowitz', got '%s'", p.Preset)
	}
	if p.WindSpeed == nil || *p.WindSpeed != 5 {
		t.Errorf("Expected wind speed 5, got %v", p.WindSpeed)
	}
	if len(p.Octaves) != 3 {
		t.Fatalf("Expected 3 octaves, got %d", len(p.Octaves))
	}
	if !p.Octaves[0].Enabled || p.Octaves[0].PowerLog != -4 {
		t.Errorf("Bare number octave should be enabled with power -4, got %+v", p.Octaves[0])
	}
	if p.Octaves[1].Enabled {
		t.Errorf("Expected octave 1 to be disabled")
	}
	if !p.Octaves[2].Enabled {
		t.Errorf("Octave without an enabled field should default to enabled")
	}
}

func TestLoadChildProfile(t *testing.T) {
	loader := NewLoader(testDir)
	p, err := loader.Load("storm")
	if err != nil {
		t.Fatalf("Failed to load profile: %v", err)
	}

	if *p.WindSpeed != 15 {
		t.Errorf("Expected own wind speed 15, got %v", *p.WindSpeed)
	}
	if p.Fetch == nil || *p.Fetch != 1000 {
		t.Errorf("Expected fetch inherited as 1000, got %v", p.Fetch)
	}
	if p.Preset != "jonswap" {
		t.Errorf("Expected own preset 'jonswap', got '%s'", p.Preset)
	}
	if len(p.Octaves) != 3 {
		t.Errorf("Expected octaves from parent, got %d", len(p.Octaves))
	}
}

func TestLoadErrors(t *testing.T) {
	loader := NewLoader(testDir)

	if _, err := loader.Load("missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
	if _, err := loader.Load("broken"); err == nil {
		t.Errorf("Expected an error for invalid json")
	}
	if _, err := loader.Load("loop_a"); err == nil {
		t.Errorf("Expected an error for a parent cycle")
	}
}

func TestCache(t *testing.T) {
	loader := NewLoader(testDir)
	p1, err := loader.Load("calm")
	if err != nil {
		t.Fatalf("Failed to load profile first time: %v", err)
	}
	p2, err := loader.Load("calm.json")
	if err != nil {
		t.Fatalf("Failed to load profile second time: %v", err)
	}
	if p1 != p2 {
		t.Errorf("Expected the same profile instance to be returned from cache")
	}
}

func TestSaveRoundTrip(t *testing.T) {
	dir := t.TempDir()
	loader := NewLoader(dir)

	in := &Profile{
		Preset:    "phillips",
		WindSpeed: Float(7.5),
		Seed:      Int(42),
		Octaves:   []Octave{{PowerLog: -2, Enabled: true}, {PowerLog: -6, Enabled: false}},
	}
	if err := loader.Save("saved", in); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	fresh := NewLoader(dir)
	out, err := fresh.Load("saved")
	if err != nil {
		t.Fatalf("Load after save failed: %v", err)
	}
	if *out.WindSpeed != 7.5 || *out.Seed != 42 || out.Preset != "phillips" {
		t.Errorf("Saved fields did not survive: %+v", out)
	}
	if len(out.Octaves) != 2 || out.Octaves[1].Enabled {
		t.Errorf("Saved octaves did not survive: %+v", out.Octaves)
	}
	if out.Fetch != nil {
		t.Errorf("Unset fetch should stay unset")
	}

	names, err := fresh.List()
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(names) != 1 || names[0] != "saved" {
		t.Errorf("List() = %v", names)
	}
}

func TestMain(m *testing.M) {
	os.MkdirAll(filepath.Join(testDir, "profiles"), 0755)

	writeTestFile("calm.json", `{
		"preset": "pierson-moskowitz",
		"windSpeed": 5,
		"fetch": 1000,
		"octaves": [ -4, { "powerLog": -3, "enabled": false }, { "powerLog": -2 } ]
	}`)
	writeTestFile("storm.json", `{
		"parent": "calm",
		"preset": "jonswap",
		"windSpeed": 15
	}`)
	writeTestFile("broken.json", `{ "windSpeed": `)
	writeTestFile("loop_a.json", `{ "parent": "loop_b" }`)
	writeTestFile("loop_b.json", `{ "parent": "loop_a" }`)

	exitCode := m.Run()
	os.RemoveAll(testDir)
	os.Exit(exitCode)
}

func writeTestFile(name, content string) {
	if err := os.WriteFile(filepath.Join(testDir, "profiles", name), []byte(content), 0644); err != nil {
		panic(err)
	}
}
