package config

import (
	"errors"
	"fmt"
	"strings"

	"dorg/internal/faults"
)

// Argument errors. Each is returned wrapped with faults.ErrConfiguration.
var (
	ErrMissingDirectory = errors.New("directory not specified")
	ErrUnknownArgument  = errors.New("unknown argument")
	ErrInvalidMode      = errors.New("invalid mode")
	ErrInvalidSortType  = errors.New("invalid sort type")
	ErrInvalidAnchor    = errors.New("invalid anchor")
)

const (
	flagRecursive = "-r"
	flagVerbose   = "-v"
	flagSummary   = "--summary"

	keyMode    = "mode="
	keySorting = "sorting="
	keySort    = "sort="
	keyAnchor  = "anchor="
)

// ParseArgs builds a validated Config from a command-line token list. The
// first token is the program name and is ignored; the second is the base
// directory. Remaining tokens may appear in any order and the last occurrence
// of a repeated key wins.
func ParseArgs(tokens []string) (*Config, error) {
	cfg := Default()

	if len(tokens) < 2 {
		return nil, argumentError("", ErrMissingDirectory)
	}
	dir, err := expandHome(tokens[1])
	if err != nil {
		return nil, faults.Wrap(faults.ErrConfiguration, "arguments", "expand directory", "", err)
	}
	if strings.TrimSpace(dir) == "" {
		return nil, argumentError("", ErrMissingDirectory)
	}
	cfg.BaseDir = dir

	for _, token := range tokens[2:] {
		switch {
		case token == flagRecursive:
			cfg.Recursive = true
		case token == flagVerbose:
			cfg.Logging.Level = "debug"
		case token == flagSummary:
			cfg.Summary = true
		case strings.HasPrefix(token, keyMode):
			if cfg.Grouping, err = parseGroupingMode(strings.TrimPrefix(token, keyMode)); err != nil {
				return nil, err
			}
		case strings.HasPrefix(token, keySorting):
			if cfg.Grouping, err = parseGroupingMode(strings.TrimPrefix(token, keySorting)); err != nil {
				return nil, err
			}
		case strings.HasPrefix(token, keySort):
			if cfg.Source, err = parseTimestampSource(strings.TrimPrefix(token, keySort)); err != nil {
				return nil, err
			}
		case strings.HasPrefix(token, keyAnchor):
			if cfg.Anchor, err = parseAnchorPolicy(strings.TrimPrefix(token, keyAnchor)); err != nil {
				return nil, err
			}
		default:
			return nil, argumentError(fmt.Sprintf("%q", token), ErrUnknownArgument)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func parseGroupingMode(value string) (GroupingMode, error) {
	switch value {
	case "month":
		return ByMonth, nil
	case "day":
		return ByDay, nil
	default:
		return 0, argumentError(fmt.Sprintf("%q (want day or month)", value), ErrInvalidMode)
	}
}

func parseTimestampSource(value string) (TimestampSource, error) {
	switch value {
	case "created":
		return Created, nil
	case "modified":
		return Modified, nil
	default:
		return 0, argumentError(fmt.Sprintf("%q (want created or modified)", value), ErrInvalidSortType)
	}
}

func parseAnchorPolicy(value string) (AnchorPolicy, error) {
	switch value {
	case "base":
		return AnchorBase, nil
	case "legacy":
		return AnchorLegacy, nil
	default:
		return 0, argumentError(fmt.Sprintf("%q (want base or legacy)", value), ErrInvalidAnchor)
	}
}

func argumentError(detail string, kind error) error {
	if detail == "" {
		return fmt.Errorf("%w: arguments: %w", faults.ErrConfiguration, kind)
	}
	return fmt.Errorf("%w: arguments: %w: %s", faults.ErrConfiguration, kind, detail)
}
