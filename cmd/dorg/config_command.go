package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newConfigCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:                "config <directory> [tokens...]",
		Short:              "Print the configuration the given tokens resolve to",
		Long:               "Print, as TOML, the configuration dorg would run with for the same tokens. Nothing is read from or written to the directory.",
		Args:               cobra.ArbitraryArgs,
		DisableFlagParsing: true,
		SilenceUsage:       true,
		SilenceErrors:      true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if wantsHelp(args) {
				return cmd.Help()
			}
			cfg, err := ctx.loadConfig(args)
			if err != nil {
				return err
			}
			rendered, err := cfg.TOML()
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), rendered)
			return nil
		},
	}
}
