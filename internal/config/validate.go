package config

import (
	"errors"
	"fmt"
)

// MaxChunkSize is the store's atomic batch-write limit; chunks above it
// would lose per-chunk failure atomicity.
const MaxChunkSize = 500

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validatePaths(); err != nil {
		return err
	}
	if err := c.validateIngest(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validatePaths() error {
	if c.Paths.DataDir == "" {
		return errors.New("paths.data_dir must be set")
	}
	if c.Paths.LogDir == "" {
		return errors.New("paths.log_dir must be set")
	}
	if c.Paths.DataDir == c.Paths.LogDir {
		return errors.New("paths.data_dir and paths.log_dir must differ")
	}
	return nil
}

func (c *Config) validateIngest() error {
	if c.Ingest.ChunkSize > MaxChunkSize {
		return fmt.Errorf("ingest.chunk_size must not exceed %d (the store's batch-write limit)", MaxChunkSize)
	}
	if c.Ingest.BatchDelaySeconds > 60 {
		return errors.New("ingest.batch_delay_seconds above 60 would make large imports unreasonably slow")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
		return nil
	}
	return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
}
