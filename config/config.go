package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"
)

// Prefix is the environment variable prefix, e.g. NBADASH_DATA_PATH.
const Prefix = "nbadash"

// Config is the process configuration, read from NBADASH_* variables.
type Config struct {
	// Address is the listen address of the dashboard server.
	Address string `required:"true" split_words:"true" default:":8050"`

	// DataPath is the season standings CSV read once at startup. A relative
	// path is looked up next to the executable first; see DataFile.
	DataPath string `required:"true" split_words:"true" default:"../data/nba_standings_2021_2022_season_refined.csv"`

	// DevMode turns on trace logging and stack traces in panic recovery.
	DevMode bool `split_words:"true"`

	// LogJSONStdout logs raw JSON lines to stdout instead of pretty console output.
	LogJSONStdout bool `envconfig:"LOG_JSON_STDOUT"`

	// LogFile, when set, additionally writes JSON logs to a size-rotated file.
	LogFile string `split_words:"true"`

	// MetricsEnabled exposes Prometheus metrics at /metrics.
	MetricsEnabled bool `split_words:"true" default:"true"`

	// ShutdownTimeout bounds graceful shutdown of the HTTP server.
	ShutdownTimeout time.Duration `split_words:"true" default:"10s"`
}

// Parse loads an optional .env file and then the environment.
func Parse() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Debug().Err(err).Msg("no .env file loaded")
	}

	var conf Config
	if err := envconfig.Process(Prefix, &conf); err != nil {
		_ = envconfig.Usage(Prefix, &conf)
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}
	return &conf, nil
}

// DataFile resolves DataPath. Absolute paths are used as is. A relative path
// is taken relative to the executable's directory when a file exists there,
// and relative to the working directory otherwise.
func (c *Config) DataFile() string {
	if filepath.IsAbs(c.DataPath) {
		return c.DataPath
	}
	exe, err := os.Executable()
	if err != nil {
		return c.DataPath
	}
	if dir, err := filepath.EvalSymlinks(filepath.Dir(exe)); err == nil {
		candidate := filepath.Join(dir, c.DataPath)
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}
	return c.DataPath
}
