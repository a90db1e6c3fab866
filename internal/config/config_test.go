package config

import (
	"path/filepath"
	"testing"
	"time"
)

func TestConfig_GetWorkDir(t *testing.T) {
	tests := []struct {
		name     string
		config   *Config
		expected string
	}{
		{
			name:     "default",
			config:   &Config{WorkDir: "."},
			expected: ".",
		},
		{
			name: "relative flag joins the base dir",
			config: &Config{
				WorkDir: "/project",
				Flags:   Flags{WorkDir: "app"},
			},
			expected: "/project/app",
		},
		{
			name: "absolute flag wins",
			config: &Config{
				WorkDir: "/project",
				Flags:   Flags{WorkDir: "/elsewhere"},
			},
			expected: "/elsewhere",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.config.GetWorkDir(); got != tt.expected {
				t.Errorf("expected %s, got %s", tt.expected, got)
			}
		})
	}
}

func TestConfig_GetTimeout(t *testing.T) {
	cfg := New()
	if cfg.GetTimeout() != 0 {
		t.Errorf("expected zero (engine default), got %v", cfg.GetTimeout())
	}

	cfg.Flags.TimeoutMS = 1500
	if cfg.GetTimeout() != 1500*time.Millisecond {
		t.Errorf("expected 1.5s, got %v", cfg.GetTimeout())
	}
}

func TestConfig_GetOutputPath(t *testing.T) {
	cfg := New()
	cfg.WorkDir = t.TempDir()

	path := cfg.GetOutputPath()
	if !filepath.IsAbs(path) {
		t.Errorf("expected absolute path, got %s", path)
	}
	if filepath.Base(path) != DefaultOutputJSONFile {
		t.Errorf("expected %s, got %s", DefaultOutputJSONFile, filepath.Base(path))
	}
}

func TestNew(t *testing.T) {
	cfg := New()

	if cfg.WorkDir != DefaultWorkDir {
		t.Errorf("expected WorkDir %s, got %s", DefaultWorkDir, cfg.WorkDir)
	}
	if len(cfg.SkipDirs) != len(DefaultSkipDirs) {
		t.Errorf("expected %d skip dirs, got %d", len(DefaultSkipDirs), len(cfg.SkipDirs))
	}
	if cfg.MySQLDSN != "" {
		t.Error("expected MySQL store to be disabled by default")
	}
}
