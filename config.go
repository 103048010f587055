package storefront

import "github.com/goliatone/go-storefront/internal/runtimeconfig"

var (
	ErrStorageDriverUnknown    = runtimeconfig.ErrStorageDriverUnknown
	ErrStorageDSNRequired      = runtimeconfig.ErrStorageDSNRequired
	ErrLoggingProviderUnknown  = runtimeconfig.ErrLoggingProviderUnknown
	ErrLoggingLevelInvalid     = runtimeconfig.ErrLoggingLevelInvalid
	ErrLoggingFormatInvalid    = runtimeconfig.ErrLoggingFormatInvalid
	ErrAutosaveDebounceInvalid = runtimeconfig.ErrAutosaveDebounceInvalid
	ErrHistoryDepthInvalid     = runtimeconfig.ErrHistoryDepthInvalid
	ErrCacheRequiresStorage    = runtimeconfig.ErrCacheRequiresStorage
)

type (
	Config         = runtimeconfig.Config
	StorageConfig  = runtimeconfig.StorageConfig
	LoggingConfig  = runtimeconfig.LoggingConfig
	AutosaveConfig = runtimeconfig.AutosaveConfig
	HistoryConfig  = runtimeconfig.HistoryConfig
	Features       = runtimeconfig.Features
)

func DefaultConfig() Config {
	return runtimeconfig.DefaultConfig()
}
