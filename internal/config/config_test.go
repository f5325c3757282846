package config_test

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"

	"dorg/internal/config"
	"dorg/internal/faults"
)

func TestApplyEnvironmentOverridesLogging(t *testing.T) {
	cfg := config.Default()
	env := map[string]string{"DORG_LOG_LEVEL": " INFO ", "DORG_LOG_FORMAT": "json"}
	cfg.ApplyEnvironment(func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	})
	if cfg.Logging.Level != "info" {
		t.Fatalf("expected level from env, got %q", cfg.Logging.Level)
	}
	if cfg.Logging.Format != "json" {
		t.Fatalf("expected format from env, got %q", cfg.Logging.Format)
	}
}

func TestApplyEnvironmentKeepsVerboseFlag(t *testing.T) {
	cfg, err := config.ParseArgs([]string{"dorg", "dir", "-v"})
	if err != nil {
		t.Fatalf("ParseArgs returned error: %v", err)
	}
	t.Setenv("DORG_LOG_LEVEL", "error")
	cfg.ApplyEnvironment(nil)
	if cfg.Logging.Level != "debug" {
		t.Fatalf("expected -v to win over env, got %q", cfg.Logging.Level)
	}
}

func TestValidateRejectsUnknownValues(t *testing.T) {
	cfg := config.Default()
	cfg.BaseDir = "dir"
	cfg.Grouping = config.GroupingMode(9)
	if err := cfg.Validate(); !errors.Is(err, config.ErrInvalidMode) || !errors.Is(err, faults.ErrConfiguration) {
		t.Fatalf("expected invalid mode, got %v", err)
	}

	cfg = config.Default()
	cfg.BaseDir = "dir"
	cfg.Logging.Format = "xml"
	if err := cfg.Validate(); !errors.Is(err, faults.ErrConfiguration) {
		t.Fatalf("expected configuration error for log format, got %v", err)
	}

	cfg = config.Default()
	cfg.BaseDir = "dir"
	cfg.Logging.Level = "verbose"
	if err := cfg.Validate(); !errors.Is(err, faults.ErrConfiguration) || !strings.Contains(err.Error(), "log level") {
		t.Fatalf("expected configuration error for log level, got %v", err)
	}

	cfg = config.Default()
	if err := cfg.Validate(); !errors.Is(err, config.ErrMissingDirectory) {
		t.Fatalf("expected missing directory, got %v", err)
	}
}

func TestConfigTOMLUsesCanonicalNames(t *testing.T) {
	cfg, err := config.ParseArgs([]string{"dorg", "inbox", "mode=day", "sort=modified", "-r"})
	if err != nil {
		t.Fatalf("ParseArgs returned error: %v", err)
	}
	rendered, err := cfg.TOML()
	if err != nil {
		t.Fatalf("TOML returned error: %v", err)
	}
	for _, fragment := range []string{"directory = 'inbox'", "recursive = true", "mode = 'day'", "sort = 'modified'", "anchor = 'base'", "[logging]"} {
		if !strings.Contains(rendered, fragment) {
			t.Fatalf("expected %q in\n%s", fragment, rendered)
		}
	}

	var decoded config.Config
	if err := toml.Unmarshal([]byte(rendered), &decoded); err != nil {
		t.Fatalf("decode rendered config: %v", err)
	}
	if decoded != *cfg {
		t.Fatalf("decoded config mismatch: got %+v want %+v", decoded, *cfg)
	}
}

func TestAbsBaseDir(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	cfg, err := config.ParseArgs([]string{"dorg", "inbox"})
	if err != nil {
		t.Fatalf("ParseArgs returned error: %v", err)
	}
	abs, err := cfg.AbsBaseDir()
	if err != nil {
		t.Fatalf("AbsBaseDir returned error: %v", err)
	}
	if !filepath.IsAbs(abs) || filepath.Base(abs) != "inbox" {
		t.Fatalf("unexpected absolute base dir %q", abs)
	}
}
