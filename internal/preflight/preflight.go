package preflight

import (
	"context"
	"fmt"

	"dorg/internal/config"
	"dorg/internal/faults"
)

// Result reports the outcome of a single preflight check.
type Result struct {
	Name     string
	Passed   bool
	Required bool
	Detail   string
}

// RunAll executes all applicable preflight checks for the given config.
func RunAll(ctx context.Context, cfg *config.Config) []Result {
	if cfg == nil {
		return nil
	}

	var results []Result

	// Base directory (always checked)
	base := CheckDirectoryAccess("Base directory", cfg.BaseDir)
	base.Required = true
	results = append(results, base)
	if !base.Passed || ctx.Err() != nil {
		return results
	}

	results = append(results, CheckDirectoryWritable("Base directory write", cfg.BaseDir))

	if cfg.Source == config.Created {
		results = append(results, CheckCreationTime("Creation time", cfg.BaseDir))
	}

	return results
}

// Err converts the first failed required check into a fatal error.
func Err(results []Result) error {
	for _, r := range results {
		if r.Required && !r.Passed {
			return faults.Wrap(faults.ErrDirectoryRead, "preflight", r.Name, r.Detail, nil)
		}
	}
	return nil
}

// Warnings returns the details of failed advisory checks.
func Warnings(results []Result) []string {
	var warnings []string
	for _, r := range results {
		if !r.Required && !r.Passed {
			warnings = append(warnings, fmt.Sprintf("%s: %s", r.Name, r.Detail))
		}
	}
	return warnings
}
