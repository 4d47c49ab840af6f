package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestNormalizeFillsDefaults(t *testing.T) {
	cfg := &Config{SubmitServiceURL: "https://timesheets.example.com:3001/"}
	cfg.Normalize()

	if cfg.SaveServiceURL != "http://localhost:3000" {
		t.Errorf("SaveServiceURL = %q", cfg.SaveServiceURL)
	}
	if cfg.SubmitServiceURL != "https://timesheets.example.com:3001" {
		t.Errorf("trailing slash not trimmed: %q", cfg.SubmitServiceURL)
	}
	if cfg.EmployeeID == "" || cfg.ProjectID == "" || cfg.TaskID == "" {
		t.Errorf("identity defaults missing: %+v", cfg)
	}
}

func TestLoadCreatesDefaultOnFirstRun(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hourkeep.yaml")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.SaveServiceURL != "http://localhost:3000" {
		t.Errorf("default SaveServiceURL = %q", cfg.SaveServiceURL)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("config file not created: %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0o600 {
		t.Errorf("config file perm = %o, want 600", perm)
	}
}

func TestLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hourkeep.yaml")

	want := Default()
	want.SaveServiceURL = "http://save.internal:3000"
	want.EmployeeID = "EMP-042"
	if err := Save(path, want); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got.SaveServiceURL != want.SaveServiceURL || got.EmployeeID != want.EmployeeID {
		t.Errorf("Load() = %+v, want %+v", got, want)
	}
}

func TestLoadRejectsGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hourkeep.yaml")
	if err := os.WriteFile(path, []byte("\tnot: [valid"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("Load() accepted malformed YAML")
	}
}

func TestLoadEmptyPath(t *testing.T) {
	if _, err := Load(""); err == nil {
		t.Error("Load(\"\") should fail")
	}
}
