package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"dorg/internal/faults"
)

// GroupingMode selects how deep the date hierarchy goes.
type GroupingMode int

const (
	ByMonth GroupingMode = iota
	ByDay
)

func (m GroupingMode) String() string {
	switch m {
	case ByMonth:
		return "month"
	case ByDay:
		return "day"
	default:
		return fmt.Sprintf("GroupingMode(%d)", int(m))
	}
}

func (m GroupingMode) MarshalText() ([]byte, error) {
	switch m {
	case ByMonth, ByDay:
		return []byte(m.String()), nil
	default:
		return nil, fmt.Errorf("unknown grouping mode %d", int(m))
	}
}

func (m *GroupingMode) UnmarshalText(text []byte) error {
	parsed, err := parseGroupingMode(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// TimestampSource selects which file timestamp drives the grouping.
type TimestampSource int

const (
	Created TimestampSource = iota
	Modified
)

func (s TimestampSource) String() string {
	switch s {
	case Created:
		return "created"
	case Modified:
		return "modified"
	default:
		return fmt.Sprintf("TimestampSource(%d)", int(s))
	}
}

func (s TimestampSource) MarshalText() ([]byte, error) {
	switch s {
	case Created, Modified:
		return []byte(s.String()), nil
	default:
		return nil, fmt.Errorf("unknown timestamp source %d", int(s))
	}
}

func (s *TimestampSource) UnmarshalText(text []byte) error {
	parsed, err := parseTimestampSource(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// AnchorPolicy selects the directory under which the date hierarchy is built.
type AnchorPolicy int

const (
	// AnchorBase builds the hierarchy under the configured base directory.
	AnchorBase AnchorPolicy = iota
	// AnchorLegacy builds it under the first named component of each file's
	// own path, as releases before the base anchor did.
	AnchorLegacy
)

func (a AnchorPolicy) String() string {
	switch a {
	case AnchorBase:
		return "base"
	case AnchorLegacy:
		return "legacy"
	default:
		return fmt.Sprintf("AnchorPolicy(%d)", int(a))
	}
}

func (a AnchorPolicy) MarshalText() ([]byte, error) {
	switch a {
	case AnchorBase, AnchorLegacy:
		return []byte(a.String()), nil
	default:
		return nil, fmt.Errorf("unknown anchor policy %d", int(a))
	}
}

func (a *AnchorPolicy) UnmarshalText(text []byte) error {
	parsed, err := parseAnchorPolicy(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// Logging contains configuration for log output.
type Logging struct {
	Format string `toml:"format"`
	Level  string `toml:"level"`
}

// Config encapsulates everything one organizing run needs.
type Config struct {
	BaseDir   string          `toml:"directory"`
	Recursive bool            `toml:"recursive"`
	Grouping  GroupingMode    `toml:"mode"`
	Source    TimestampSource `toml:"sort"`
	Anchor    AnchorPolicy    `toml:"anchor"`
	Summary   bool            `toml:"summary"`
	Logging   Logging         `toml:"logging"`
}

// Default returns the configuration used when no flags are supplied.
func Default() Config {
	return Config{
		Grouping: ByMonth,
		Source:   Created,
		Anchor:   AnchorBase,
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}

const (
	defaultLogFormat = "console"
	defaultLogLevel  = "warn"

	envLogLevel  = "DORG_LOG_LEVEL"
	envLogFormat = "DORG_LOG_FORMAT"
)

// ApplyEnvironment overlays logging settings from the environment. Values set
// explicitly on the command line (for example -v) take precedence.
func (c *Config) ApplyEnvironment(lookup func(string) (string, bool)) {
	if lookup == nil {
		lookup = os.LookupEnv
	}
	if value, ok := lookup(envLogLevel); ok && strings.TrimSpace(value) != "" && c.Logging.Level == defaultLogLevel {
		c.Logging.Level = strings.ToLower(strings.TrimSpace(value))
	}
	if value, ok := lookup(envLogFormat); ok && strings.TrimSpace(value) != "" {
		c.Logging.Format = strings.ToLower(strings.TrimSpace(value))
	}
}

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.BaseDir) == "" {
		return faults.Wrap(faults.ErrConfiguration, "config", "validate", "base directory is empty", ErrMissingDirectory)
	}
	if _, err := c.Grouping.MarshalText(); err != nil {
		return faults.Wrap(faults.ErrConfiguration, "config", "validate", "", errors.Join(ErrInvalidMode, err))
	}
	if _, err := c.Source.MarshalText(); err != nil {
		return faults.Wrap(faults.ErrConfiguration, "config", "validate", "", errors.Join(ErrInvalidSortType, err))
	}
	if _, err := c.Anchor.MarshalText(); err != nil {
		return faults.Wrap(faults.ErrConfiguration, "config", "validate", "", errors.Join(ErrInvalidAnchor, err))
	}
	switch c.Logging.Format {
	case "console", "json":
	default:
		return faults.Wrap(faults.ErrConfiguration, "config", "validate", fmt.Sprintf("log format %q must be console or json", c.Logging.Format), nil)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "warning", "error":
	default:
		return faults.Wrap(faults.ErrConfiguration, "config", "validate", fmt.Sprintf("log level %q must be debug, info, warn or error", c.Logging.Level), nil)
	}
	return nil
}

// TOML renders the configuration for display.
func (c *Config) TOML() (string, error) {
	data, err := toml.Marshal(c)
	if err != nil {
		return "", fmt.Errorf("encode config: %w", err)
	}
	return string(data), nil
}

// AbsBaseDir returns the base directory as an absolute path.
func (c *Config) AbsBaseDir() (string, error) {
	absolute, err := filepath.Abs(c.BaseDir)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", c.BaseDir, err)
	}
	return absolute, nil
}

// expandHome expands a leading tilde and cleans the path. Relative paths stay
// relative so the legacy anchor policy sees the components the user typed.
func expandHome(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	return filepath.Clean(pathValue), nil
}
