// Package config loads and merges redline configuration from multiple
// sources.
//
// Precedence (highest to lowest):
//  1. CLI flags
//  2. Environment variables (OLLAMA_HOST, REDLINE_MODEL)
//  3. Config file (config.toml or config in the working directory, TOML)
//  4. Built-in defaults
//
// A malformed config file is not fatal: it is skipped with a warning
// and the remaining layers still apply.
package config
