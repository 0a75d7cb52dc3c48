package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ontoproxy/ontoproxy/pkg/orchestrator"
)

func TestParseConfigDefaults(t *testing.T) {
	cfg, ok, err := parseConfig(nil, os.Stderr)
	if err != nil || !ok {
		t.Fatalf("parseConfig: ok=%v err=%v", ok, err)
	}
	if cfg.Port != 3000 {
		t.Errorf("Port = %d, want 3000", cfg.Port)
	}
	if cfg.Address != "127.0.0.1" {
		t.Errorf("Address = %q, want 127.0.0.1", cfg.Address)
	}
	if cfg.Preference != orchestrator.PreferDownload {
		t.Errorf("Preference = %v, want PreferDownload", cfg.Preference)
	}
}

func TestParseConfigFlagsOverrideDefaults(t *testing.T) {
	cfg, ok, err := parseConfig([]string{"--port", "9090", "--prefere-conversion", "--verbose"}, os.Stderr)
	if err != nil || !ok {
		t.Fatalf("parseConfig: ok=%v err=%v", ok, err)
	}
	if cfg.Port != 9090 {
		t.Errorf("Port = %d, want 9090", cfg.Port)
	}
	if cfg.Preference != orchestrator.PreferConvert {
		t.Errorf("Preference = %v, want PreferConvert", cfg.Preference)
	}
	if !cfg.Verbose {
		t.Error("Verbose = false, want true")
	}
}

func TestParseConfigVersionStopsEarly(t *testing.T) {
	_, ok, err := parseConfig([]string{"--version"}, os.Stderr)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Fatal("expected ok=false for --version")
	}
}

func TestParseConfigFileSuppliesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ontoproxy.json")
	if err := os.WriteFile(path, []byte(`{"port": 8080, "address": "0.0.0.0", "prefere_conversion": true}`), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, ok, err := parseConfig([]string{"--config", path}, os.Stderr)
	if err != nil || !ok {
		t.Fatalf("parseConfig: ok=%v err=%v", ok, err)
	}
	if cfg.Port != 8080 {
		t.Errorf("Port = %d, want 8080 (from config file)", cfg.Port)
	}
	if cfg.Address != "0.0.0.0" {
		t.Errorf("Address = %q, want 0.0.0.0 (from config file)", cfg.Address)
	}
	if cfg.Preference != orchestrator.PreferConvert {
		t.Error("expected prefere_conversion from config file to take effect")
	}
}

func TestParseConfigFlagOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ontoproxy.json")
	if err := os.WriteFile(path, []byte(`{"port": 8080}`), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, ok, err := parseConfig([]string{"--config", path, "--port", "6000"}, os.Stderr)
	if err != nil || !ok {
		t.Fatalf("parseConfig: ok=%v err=%v", ok, err)
	}
	if cfg.Port != 6000 {
		t.Errorf("Port = %d, want 6000 (explicit flag must win over file)", cfg.Port)
	}
}

func TestParseConfigMissingFileIsError(t *testing.T) {
	_, ok, err := parseConfig([]string{"--config", filepath.Join(t.TempDir(), "missing.json")}, os.Stderr)
	if err == nil {
		t.Fatal("expected an error for a missing config file")
	}
	if ok {
		t.Fatal("expected ok=false alongside the error")
	}
}
