// Package config handles configuration for debrief.
// It defines the report verbosity ordinal with its environment policies,
// and loads runtime settings from embedded defaults, an optional user
// config file, and DEBRIEF_* environment variables.
package config
