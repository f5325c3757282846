// Package main hosts the dorg CLI entrypoint and command graph.
//
// The root command organizes one directory per invocation. Its token grammar
// (`<directory> [-r] [mode=...] [sort=...] [anchor=...] [-v] [--summary]`) is
// owned by internal/config, so Cobra flag parsing is disabled and the raw
// tokens are handed to config.ParseArgs. The `config` subcommand prints the
// configuration the same tokens resolve to.
//
// Moved files are reported on stdout, skipped files on stderr. Structured
// logs also go to stderr and stay quiet below warn unless -v is given.
package main
