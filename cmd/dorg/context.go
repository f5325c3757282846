package main

import (
	"os"
	"slices"

	"dorg/internal/config"
	"dorg/internal/organizer"
)

const programName = "dorg"

// commandContext carries the process-level inputs commands read, so tests can
// replace them.
type commandContext struct {
	lookupEnv func(string) (string, bool)
	getwd     func() (string, error)
	options   []organizer.Option
}

func newCommandContext() *commandContext {
	return &commandContext{
		lookupEnv: os.LookupEnv,
		getwd:     os.Getwd,
	}
}

// loadConfig parses the raw tokens that followed the command name and layers
// the environment on top.
func (c *commandContext) loadConfig(args []string) (*config.Config, error) {
	cfg, err := config.ParseArgs(append([]string{programName}, args...))
	if err != nil {
		return nil, err
	}
	cfg.ApplyEnvironment(c.lookupEnv)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func wantsHelp(args []string) bool {
	return slices.ContainsFunc(args, func(arg string) bool {
		return arg == "-h" || arg == "--help"
	})
}
