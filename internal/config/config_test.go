package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadSaveRoundTrip(t *testing.T) {
	// Use a temp dir to avoid touching the real config
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	cfg := &Config{
		OS:         "darwin",
		Arch:       "arm64",
		ExtraPaths: []string{"/opt/tools/bin", "/usr/local/bin"},
	}

	data, err := marshalConfig(cfg)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if err := os.WriteFile(configPath, data, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	loaded, err := loadFrom(configPath)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if loaded.OS != cfg.OS {
		t.Errorf("OS = %q, want %q", loaded.OS, cfg.OS)
	}
	if loaded.Arch != cfg.Arch {
		t.Errorf("Arch = %q, want %q", loaded.Arch, cfg.Arch)
	}
	if len(loaded.ExtraPaths) != 2 || loaded.ExtraPaths[0] != cfg.ExtraPaths[0] {
		t.Errorf("ExtraPaths = %v, want %v", loaded.ExtraPaths, cfg.ExtraPaths)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := loadFrom("/nonexistent/path/config.yaml")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestLoadEmptyFile(t *testing.T) {
	// An empty file is a valid config: everything autodetected.
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(configPath, nil, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := loadFrom(configPath)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.OS != "" || cfg.Arch != "" || len(cfg.ExtraPaths) != 0 {
		t.Errorf("empty config = %+v, want zero values", cfg)
	}
}

func TestSaveCreatesDirectory(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	if err := Save(Default()); err != nil {
		t.Fatalf("save: %v", err)
	}
	if !Exists() {
		t.Error("Exists() = false after Save()")
	}
}
