package runtimeconfig

import (
	"errors"
	"time"
)

var (
	ErrStorageDriverUnknown    = errors.New("runtimeconfig: unknown storage driver")
	ErrStorageDSNRequired      = errors.New("runtimeconfig: storage dsn required")
	ErrLoggingProviderUnknown  = errors.New("runtimeconfig: unknown logging provider")
	ErrLoggingLevelInvalid     = errors.New("runtimeconfig: invalid logging level")
	ErrLoggingFormatInvalid    = errors.New("runtimeconfig: invalid logging format")
	ErrAutosaveDebounceInvalid = errors.New("runtimeconfig: autosave debounce must be positive when autosave is enabled")
	ErrHistoryDepthInvalid     = errors.New("runtimeconfig: history depth must be positive")
	ErrCacheRequiresStorage    = errors.New("runtimeconfig: repository cache requires database storage")
)

// StorageConfig selects the persistence backend for the layout document.
// The memory driver is the test and preview default; sqlite3 is the local
// production target; postgres is available for hosted deployments.
type StorageConfig struct {
	Driver string `json:"driver"`
	DSN    string `json:"dsn"`
}

// LoggingConfig mirrors the go-logger adapter options.
type LoggingConfig struct {
	Provider  string   `json:"provider"`
	Level     string   `json:"level"`
	Format    string   `json:"format"`
	AddSource bool     `json:"add_source"`
	Focus     []string `json:"focus,omitempty"`
}

// AutosaveConfig tunes the debounced persistence lifecycle.
type AutosaveConfig struct {
	Enabled  bool          `json:"enabled"`
	Debounce time.Duration `json:"debounce"`
}

// HistoryConfig tunes the undo/redo stacks and the audit trail.
type HistoryConfig struct {
	Depth      int `json:"depth"`
	TrailLimit int `json:"trail_limit"`
}

// Features toggles optional subsystems.
type Features struct {
	Templates  bool `json:"templates"`
	RemoteSync bool `json:"remote_sync"`
	Cache      bool `json:"cache"`
}

// Config is the storefront module configuration.
type Config struct {
	LayoutKey string         `json:"layout_key"`
	Storage   StorageConfig  `json:"storage"`
	Logging   LoggingConfig  `json:"logging"`
	Autosave  AutosaveConfig `json:"autosave"`
	History   HistoryConfig  `json:"history"`
	Features  Features       `json:"features"`
}

// DefaultConfig returns the configuration used when the host supplies none:
// in-memory storage, autosave with a one second quiet period, ten undo
// levels, and a fifty entry audit trail.
func DefaultConfig() Config {
	return Config{
		LayoutKey: "store-page-layout",
		Storage: StorageConfig{
			Driver: "memory",
		},
		Logging: LoggingConfig{
			Provider: "noop",
			Level:    "info",
			Format:   "json",
		},
		Autosave: AutosaveConfig{
			Enabled:  true,
			Debounce: time.Second,
		},
		History: HistoryConfig{
			Depth:      10,
			TrailLimit: 50,
		},
		Features: Features{
			Templates: true,
		},
	}
}

// Validate rejects configurations the container cannot honor.
func (c Config) Validate() error {
	switch c.Storage.Driver {
	case "", "memory":
		if c.Features.Cache {
			return ErrCacheRequiresStorage
		}
	case "sqlite3", "postgres":
		if c.Storage.DSN == "" {
			return ErrStorageDSNRequired
		}
	default:
		return ErrStorageDriverUnknown
	}

	switch c.Logging.Provider {
	case "", "noop", "gologger":
	default:
		return ErrLoggingProviderUnknown
	}
	switch c.Logging.Level {
	case "", "trace", "debug", "info", "warn", "warning", "error", "fatal":
	default:
		return ErrLoggingLevelInvalid
	}
	switch c.Logging.Format {
	case "", "json", "console", "pretty":
	default:
		return ErrLoggingFormatInvalid
	}

	if c.Autosave.Enabled && c.Autosave.Debounce <= 0 {
		return ErrAutosaveDebounceInvalid
	}
	if c.History.Depth < 0 {
		return ErrHistoryDepthInvalid
	}
	return nil
}
