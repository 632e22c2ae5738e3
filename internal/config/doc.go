// Package config loads the TOML configuration file, overlays VICMD_
// environment variables, and watches the file for live reload.
package config
