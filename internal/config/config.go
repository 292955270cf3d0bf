package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/pelletier/go-toml/v2"

	"github.com/redline-cli/redline/internal/logging"
)

// Built-in defaults. These are process-wide constants, not mutable state.
const (
	DefaultOllamaURL       = "http://localhost:11434"
	DefaultModel           = "codellama"
	DefaultMaxContextFiles = 5
)

// fileNames are probed in order in the working directory. Both are
// parsed as TOML; the extensionless form exists for compatibility with
// older setups.
var fileNames = []string{"config.toml", "config"}

// Settings is the effective configuration for a run.
type Settings struct {
	OllamaURL       string `toml:"ollama_url"`
	Model           string `toml:"model"`
	MaxContextFiles int    `toml:"max_context_files"`
	RedactSecrets   bool   `toml:"redact_secrets"`
}

// Default returns Settings with all defaults applied.
func Default() Settings {
	return Settings{
		OllamaURL:       DefaultOllamaURL,
		Model:           DefaultModel,
		MaxContextFiles: DefaultMaxContextFiles,
		RedactSecrets:   true,
	}
}

// fileSettings mirrors the TOML schema. Pointer fields distinguish
// absent keys from zero values during the merge.
type fileSettings struct {
	OllamaURL       *string `toml:"ollama_url"`
	Model           *string `toml:"model"`
	MaxContextFiles *int    `toml:"max_context_files"`
	RedactSecrets   *bool   `toml:"redact_secrets"`
}

// Path returns the config file path for dir: the first of config.toml
// and config that exists, or config.toml when neither does.
func Path(dir string) string {
	for _, name := range fileNames {
		p := filepath.Join(dir, name)
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return filepath.Join(dir, fileNames[0])
}

// Load builds the effective settings by merging, lowest to highest
// precedence: defaults <- config file <- environment <- CLI overrides.
//
// A missing or malformed config file never fails the load; the file
// layer is skipped with a warning and the remaining layers still apply.
func Load(dir string, overrides map[string]string) Settings {
	cfg := Default()
	mergeFile(&cfg, dir)
	mergeEnv(&cfg)
	mergeOverrides(&cfg, overrides)
	return cfg
}

// FromFile returns defaults overlaid with the config file in dir, if
// any. Environment and CLI layers are not applied; this is the base
// for `config set` so shell state never gets baked into the file.
func FromFile(dir string) Settings {
	cfg := Default()
	mergeFile(&cfg, dir)
	return cfg
}

func mergeFile(cfg *Settings, dir string) {
	for _, name := range fileNames {
		path := filepath.Join(dir, name)
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		var fc fileSettings
		if err := toml.Unmarshal(data, &fc); err != nil {
			logger := logging.Component("config")
			logger.Warn().
				Str("path", path).
				Err(err).
				Msg("ignoring malformed config file, using defaults")
			return
		}
		if fc.OllamaURL != nil {
			cfg.OllamaURL = *fc.OllamaURL
		}
		if fc.Model != nil {
			cfg.Model = *fc.Model
		}
		if fc.MaxContextFiles != nil {
			cfg.MaxContextFiles = *fc.MaxContextFiles
		}
		if fc.RedactSecrets != nil {
			cfg.RedactSecrets = *fc.RedactSecrets
		}
		return
	}
}

func mergeEnv(cfg *Settings) {
	if v := os.Getenv("OLLAMA_HOST"); v != "" {
		cfg.OllamaURL = v
	}
	if v := os.Getenv("REDLINE_MODEL"); v != "" {
		cfg.Model = v
	}
}

func mergeOverrides(cfg *Settings, overrides map[string]string) {
	if overrides == nil {
		return
	}
	if v, ok := overrides["url"]; ok && v != "" {
		cfg.OllamaURL = v
	}
	if v, ok := overrides["model"]; ok && v != "" {
		cfg.Model = v
	}
	if v, ok := overrides["maxFiles"]; ok && v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.MaxContextFiles = n
		}
	}
	if v, ok := overrides["redact"]; ok && v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.RedactSecrets = b
		}
	}
}

// SetField sets a single settings field by its TOML key name. Returns
// an error if the key is unknown.
func SetField(cfg *Settings, key, value string) error {
	switch key {
	case "ollama_url":
		cfg.OllamaURL = value
	case "model":
		cfg.Model = value
	case "max_context_files":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("max_context_files must be an integer: %w", err)
		}
		cfg.MaxContextFiles = n
	case "redact_secrets":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("redact_secrets must be a boolean: %w", err)
		}
		cfg.RedactSecrets = b
	default:
		return fmt.Errorf("unknown config key: %s", key)
	}
	return nil
}

// Save writes the settings to the config file in dir.
func Save(dir string, cfg Settings) error {
	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	return os.WriteFile(Path(dir), data, 0o644)
}
