package testsupport

import (
	"testing"

	"dorg/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*config.Config)

// NewConfig produces a config rooted at a fresh temp directory. It defaults
// common fields and applies any provided options.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	cfg := config.Default()
	cfg.BaseDir = t.TempDir()
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("test config invalid: %v", err)
	}
	return &cfg
}

// WithBaseDir points the config at an existing directory.
func WithBaseDir(dir string) ConfigOption {
	return func(c *config.Config) {
		c.BaseDir = dir
	}
}

// WithRecursive enables recursive traversal.
func WithRecursive() ConfigOption {
	return func(c *config.Config) {
		c.Recursive = true
	}
}

// WithGrouping sets the grouping mode.
func WithGrouping(mode config.GroupingMode) ConfigOption {
	return func(c *config.Config) {
		c.Grouping = mode
	}
}

// WithSource sets the timestamp source.
func WithSource(source config.TimestampSource) ConfigOption {
	return func(c *config.Config) {
		c.Source = source
	}
}

// WithAnchor sets the anchor policy.
func WithAnchor(policy config.AnchorPolicy) ConfigOption {
	return func(c *config.Config) {
		c.Anchor = policy
	}
}
