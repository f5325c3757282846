// Package config builds, normalizes, and validates the dorg run configuration.
//
// The configuration is assembled from the command-line token list (ParseArgs)
// and a small set of environment overrides for logging (ApplyEnvironment);
// there is no configuration file. It can be rendered as TOML for inspection.
//
// The base directory keeps the form the user typed, with a leading tilde
// expanded, so the legacy anchor policy can see its first component. Use
// AbsBaseDir when an absolute path is needed.
package config
