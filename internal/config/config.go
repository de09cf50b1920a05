package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/Tiliavir/timebox-tracker/internal/storage"
)

// Config is the root configuration for tbt, stored in ~/.tbt/config.json.
// The file supports single-line // comments for documentation purposes.
type Config struct {
	Storage StorageConfig `json:"storage"`
	List    ListConfig    `json:"list"`
	Log     LogConfig     `json:"log"`
}

// StorageConfig selects where and how time boxes are persisted.
type StorageConfig struct {
	// Dir is the data directory. Empty = the tbt home directory.
	Dir string `json:"dir"`
	// Backend is "json" or "sqlite".
	Backend string `json:"backend"`
	// JSONFormat is "pretty" or "compact"; only used by the json backend.
	JSONFormat string `json:"json_format"`
}

// ListConfig holds defaults for the list command.
type ListConfig struct {
	PageSize int    `json:"page_size"`
	Order    string `json:"order"`
}

// LogConfig holds logging defaults.
type LogConfig struct {
	Level string `json:"level"`
}

const (
	BackendJSON   = "json"
	BackendSQLite = "sqlite"

	FormatPretty  = "pretty"
	FormatCompact = "compact"

	DefaultPageSize = 25
	DefaultOrder    = "ascending"
	DefaultLevel    = "info"
)

// defaultConfig returns a Config pre-filled with sensible defaults.
func defaultConfig() Config {
	return Config{
		Storage: StorageConfig{
			Backend:    BackendJSON,
			JSONFormat: FormatPretty,
		},
		List: ListConfig{
			PageSize: DefaultPageSize,
			Order:    DefaultOrder,
		},
		Log: LogConfig{Level: DefaultLevel},
	}
}

// configTemplate is the annotated config written by tbt init.
// Lines whose trimmed content starts with // are stripped before JSON parsing,
// allowing human-readable documentation inside the file.
const configTemplate = `// tbt configuration – ~/.tbt/config.json
//
// All settings are optional; the built-in defaults shown below work out of
// the box. Command-line flags take precedence over this file.
{
  // ── Storage ──────────────────────────────────────────────────────────────
  "storage": {
    // Directory holding the time boxes. Empty = the directory of this file.
    // Can be overridden per invocation with: tbt --output <dir>
    "dir": "",

    // Persistence backend:
    // • "json"   – a single human-readable timeboxes.json (default)
    // • "sqlite" – a timeboxes.db SQLite database
    "backend": "json",

    // Layout of timeboxes.json: "pretty" (indented) or "compact".
    "json_format": "pretty"
  },

  // ── Listing ──────────────────────────────────────────────────────────────
  "list": {
    // Number of time boxes per page for: tbt list
    "page_size": 25,

    // "ascending" lists the oldest time boxes first, "descending" the newest.
    "order": "ascending"
  },

  // ── Logging ──────────────────────────────────────────────────────────────
  "log": {
    // One of "debug", "info", "warn", "error". Logs go to stderr.
    // TBT_LOG and --log-level take precedence.
    "level": "info"
  }
}
`

// FilePath returns the path to <tbt home>/config.json.
func FilePath() (string, error) {
	base, err := storage.BaseDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, "config.json"), nil
}

// stripLineComments removes lines whose leading non-whitespace content starts
// with //. Only full-line comments are handled; inline comments are not stripped.
func stripLineComments(data []byte) []byte {
	var out []byte
	for _, line := range bytes.Split(data, []byte("\n")) {
		if bytes.HasPrefix(bytes.TrimLeft(line, " \t"), []byte("//")) {
			continue
		}
		out = append(out, line...)
		out = append(out, '\n')
	}
	return out
}

// Load reads <tbt home>/config.json. A missing file yields the defaults.
func Load() (Config, error) {
	path, err := FilePath()
	if err != nil {
		return defaultConfig(), err
	}
	return LoadFrom(path)
}

// LoadFrom reads the config at path. A missing file yields the defaults and
// nothing is written. Lines starting with // are treated as comments and
// stripped before JSON parsing.
func LoadFrom(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		slog.Debug("no config file, using defaults", "path", path)
		return defaultConfig(), nil
	}
	if err != nil {
		return defaultConfig(), fmt.Errorf("reading config file %s: %w", path, err)
	}

	cleaned := stripLineComments(data)
	var cfg Config
	if err := json.Unmarshal(cleaned, &cfg); err != nil {
		return defaultConfig(), fmt.Errorf("parsing config file %s: %w\nTip: delete the file to regenerate defaults with: tbt init", path, err)
	}

	// Fill zero-value fields with built-in defaults so callers always get
	// a usable Config even if the user only partially fills in the file.
	def := defaultConfig()
	if cfg.Storage.Backend == "" {
		cfg.Storage.Backend = def.Storage.Backend
	}
	if cfg.Storage.JSONFormat == "" {
		cfg.Storage.JSONFormat = def.Storage.JSONFormat
	}
	if cfg.List.PageSize <= 0 {
		cfg.List.PageSize = def.List.PageSize
	}
	if cfg.List.Order == "" {
		cfg.List.Order = def.List.Order
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = def.Log.Level
	}

	if err := cfg.validate(); err != nil {
		return defaultConfig(), fmt.Errorf("invalid config file %s: %w", path, err)
	}
	return cfg, nil
}

// WriteTemplate writes the annotated default config to path unless a file
// exists there already. It reports whether a file was written.
func WriteTemplate(path string) (bool, error) {
	if _, err := os.Stat(path); err == nil {
		return false, nil
	} else if !os.IsNotExist(err) {
		return false, fmt.Errorf("reading config file %s: %w", path, err)
	}
	if err := writeDefault(path); err != nil {
		return false, err
	}
	slog.Debug("wrote config template", "path", path)
	return true, nil
}

func (c Config) validate() error {
	switch c.Storage.Backend {
	case BackendJSON, BackendSQLite:
	default:
		return fmt.Errorf("unknown storage backend %q", c.Storage.Backend)
	}
	switch c.Storage.JSONFormat {
	case FormatPretty, FormatCompact:
	default:
		return fmt.Errorf("unknown json_format %q", c.Storage.JSONFormat)
	}
	return nil
}

// writeDefault creates the config directory and writes the annotated default
// config template.
func writeDefault(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(configTemplate), 0o600); err != nil {
		return fmt.Errorf("writing default config: %w", err)
	}
	return nil
}
