// Package config loads, validates, and normalizes nextrailer's TOML
// configuration. The zero configuration is usable apart from the TMDB API
// key, which may also be supplied through the TMDB_API_KEY environment
// variable.
package config
