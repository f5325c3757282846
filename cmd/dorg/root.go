package main

import (
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"dorg/internal/config"
	"dorg/internal/faults"
	"dorg/internal/logging"
	"dorg/internal/organizer"
	"dorg/internal/preflight"
)

const rootLong = `Organize the files of a directory into year/month or year/month/day
subdirectories based on each file's creation or modification time.

Tokens after the directory may appear in any order; the last occurrence wins.
  -r                      descend into subdirectories
  mode=month|day          grouping depth (default month; sorting= is accepted too)
  sort=created|modified   timestamp source (default created)
  anchor=base|legacy      where the date tree is built (default base)
  -v                      debug logging on stderr
  --summary               print a summary table after the run

A directory named config or help must be written as ./config or ./help.

Environment:
  DORG_LOG_LEVEL          debug, info, warn or error (default warn)
  DORG_LOG_FORMAT         console or json (default console)`

func newRootCommand() *cobra.Command {
	return newRootCommandWithContext(newCommandContext())
}

func newRootCommandWithContext(ctx *commandContext) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:                "dorg <directory> [-r] [mode=day|month] [sort=created|modified] [anchor=base|legacy] [-v] [--summary]",
		Short:              "Organize files into dated directories",
		Long:               rootLong,
		Args:               cobra.ArbitraryArgs,
		DisableFlagParsing: true,
		SilenceUsage:       true,
		SilenceErrors:      true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if wantsHelp(args) {
				return cmd.Help()
			}
			return ctx.organize(cmd, args)
		},
	}
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.AddCommand(newConfigCommand(ctx))

	return rootCmd
}

func (c *commandContext) organize(cmd *cobra.Command, args []string) error {
	cfg, err := c.loadConfig(args)
	if err != nil {
		return err
	}
	stdout := cmd.OutOrStdout()
	stderr := cmd.ErrOrStderr()

	logger, err := logging.NewFromConfig(cfg, stderr)
	if err != nil {
		return faults.Wrap(faults.ErrConfiguration, "cli", "logging", "", err)
	}
	runCtx := faults.WithRunID(cmd.Context(), uuid.NewString())
	runLogger := logging.WithContext(runCtx, logger)

	checks := preflight.RunAll(runCtx, cfg)
	if err := preflight.Err(checks); err != nil {
		return err
	}
	for _, warning := range preflight.Warnings(checks) {
		logging.WarnWithContext(runLogger, "preflight check failed", "preflight_warning",
			logging.String("detail", warning),
			logging.String(logging.FieldImpact, "affected files will be skipped"),
		)
	}

	opts := []organizer.Option{organizer.WithReporter(newResultPrinter(stdout, stderr))}
	if cfg.Anchor == config.AnchorLegacy {
		workDir, err := c.getwd()
		if err != nil {
			return faults.Wrap(faults.ErrConfiguration, "cli", "working directory", "", err)
		}
		opts = append(opts, organizer.WithWorkDir(workDir))
	}
	opts = append(opts, c.options...)

	summary, err := organizer.New(cfg, logger, opts...).Run(runCtx)
	if err != nil {
		return err
	}
	if cfg.Summary {
		fmt.Fprintln(stdout, renderSummary(summary))
	}
	return nil
}

// resultPrinter writes one line per moved file to out and one per skipped
// file to errOut.
type resultPrinter struct {
	out         io.Writer
	errOut      io.Writer
	colorOut    bool
	colorErrOut bool
}

func newResultPrinter(out, errOut io.Writer) *resultPrinter {
	return &resultPrinter{
		out:         out,
		errOut:      errOut,
		colorOut:    shouldColorize(out),
		colorErrOut: shouldColorize(errOut),
	}
}

func (p *resultPrinter) Report(r organizer.Result) {
	switch r.Outcome {
	case organizer.OutcomeMoved:
		fmt.Fprintln(p.out, renderStatusLine(statusOK, r.Outcome.String(), r.Source+" -> "+r.Target, p.colorOut))
	case organizer.OutcomeSkipped:
		message := fmt.Sprintf("%s: %s: %v", r.Source, faults.Kind(r.Err), r.Err)
		fmt.Fprintln(p.errOut, renderStatusLine(statusWarn, r.Outcome.String(), message, p.colorErrOut))
	}
}
