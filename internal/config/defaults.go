package config

const (
	defaultDataDir           = "~/.local/share/lineage/data"
	defaultLogDir            = "~/.local/share/lineage/logs"
	defaultChunkSize         = 500
	defaultBatchDelaySeconds = 1
	defaultErrorDisplayLimit = 10
	defaultActor             = "bulk-import"
	defaultNtfyTimeout       = 10
	defaultLogFormat         = "console"
	defaultLogLevel          = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			DataDir: defaultDataDir,
			LogDir:  defaultLogDir,
		},
		Ingest: Ingest{
			ChunkSize:         defaultChunkSize,
			BatchDelaySeconds: defaultBatchDelaySeconds,
			ErrorDisplayLimit: defaultErrorDisplayLimit,
			DefaultActor:      defaultActor,
		},
		Notifications: Notifications{
			RequestTimeout: defaultNtfyTimeout,
			Imports:        true,
			Errors:         true,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
