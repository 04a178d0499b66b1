package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/kelseyhightower/envconfig"
)

// Prefix of every environment variable read by FromEnv, e.g. SEXPR_FORMAT.
const Prefix = "sexpr"

// Output formats
const (
	FormatDescribe = "describe"
	FormatSource   = "source"
	FormatTree     = "tree"
	FormatDump     = "dump"
)

// Config holds the settings of the sexpr-read command.
type Config struct {
	Format         string `default:"describe"`
	Prompt         string `default:"sexpr> "`
	HistoryFile    string `split_words:"true"`
	AtomBufferSize int    `split_words:"true" default:"32"`
}

// FromEnv loads the configuration from SEXPR_* environment variables.
func FromEnv() (Config, error) {
	var c Config
	if err := envconfig.Process(Prefix, &c); err != nil {
		return Config{}, err
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	if c.HistoryFile == "" {
		if home, err := os.UserHomeDir(); err == nil {
			c.HistoryFile = filepath.Join(home, ".sexpr_history")
		}
	}
	return c, nil
}

// Validate checks values envconfig can't check by itself.
func (c Config) Validate() error {
	switch c.Format {
	case FormatDescribe, FormatSource, FormatTree, FormatDump:
	default:
		return fmt.Errorf("config: unknown format %q", c.Format)
	}
	if c.AtomBufferSize < 1 {
		return fmt.Errorf("config: atom buffer size must be positive, got %d", c.AtomBufferSize)
	}
	return nil
}

// Usage prints the environment variables FromEnv understands.
func Usage() error {
	var c Config
	return envconfig.Usage(Prefix, &c)
}
