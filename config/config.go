// Package config resolves command-line defaults from the environment and an
// optional .env file found in the working directory or one of its parents.
// Process environment wins over the file; the file wins over built-in defaults.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/katalvlaran/gridsparse/memory"
	"github.com/sirupsen/logrus"
)

// ErrInvalidValue indicates a variable that cannot be parsed.
var ErrInvalidValue = errors.New("config: invalid value")

// Variable names.
const (
	EnvLogLevel   = "GRIDSPARSE_LOG_LEVEL"
	EnvOutDir     = "GRIDSPARSE_OUT_DIR"
	EnvCacheDir   = "GRIDSPARSE_CACHE_DIR"
	EnvSeed       = "GRIDSPARSE_SEED"
	EnvPEMemory   = "GRIDSPARSE_PE_MEMORY"
	EnvPEReserved = "GRIDSPARSE_PE_RESERVED"
)

// envSearchDepth is how many directories are tried for .env, starting at the working directory.
const envSearchDepth = 5

// Config holds the resolved settings.
type Config struct {
	LogLevel   logrus.Level
	OutDir     string // stream files
	CacheDir   string // generated matrices
	Seed       int64  // random matrix seed
	PEMemory   int    // bytes per processing element
	PEReserved int    // bytes reserved per processing element
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		LogLevel:   logrus.InfoLevel,
		OutDir:     ".",
		CacheDir:   ".",
		Seed:       0,
		PEMemory:   memory.DefaultMemory,
		PEReserved: memory.DefaultReserved,
	}
}

// Load resolves the configuration from the working directory.
func Load() (*Config, error) {
	dir, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("config.Load: %w", err)
	}

	return LoadFrom(dir)
}

// LoadFrom resolves the configuration, searching .env from dir upwards.
func LoadFrom(dir string) (*Config, error) {
	file, err := readEnvFile(dir)
	if err != nil {
		return nil, err
	}
	get := func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok && v != "" {
			return v, true
		}
		v, ok := file[key]

		return v, ok && v != ""
	}

	cfg := Default()
	if v, ok := get(EnvLogLevel); ok {
		if cfg.LogLevel, err = logrus.ParseLevel(v); err != nil {
			return nil, fmt.Errorf("%s=%q: %w: %w", EnvLogLevel, v, ErrInvalidValue, err)
		}
	}
	if v, ok := get(EnvOutDir); ok {
		cfg.OutDir = v
	}
	if v, ok := get(EnvCacheDir); ok {
		cfg.CacheDir = v
	}
	if v, ok := get(EnvSeed); ok {
		if cfg.Seed, err = strconv.ParseInt(v, 10, 64); err != nil {
			return nil, fmt.Errorf("%s=%q: %w: %w", EnvSeed, v, ErrInvalidValue, err)
		}
	}
	if cfg.PEMemory, err = positiveInt(get, EnvPEMemory, cfg.PEMemory); err != nil {
		return nil, err
	}
	if cfg.PEReserved, err = positiveInt(get, EnvPEReserved, cfg.PEReserved); err != nil {
		return nil, err
	}
	if cfg.PEReserved >= cfg.PEMemory {
		return nil, fmt.Errorf("%s=%d not below %s=%d: %w", EnvPEReserved, cfg.PEReserved, EnvPEMemory, cfg.PEMemory, ErrInvalidValue)
	}

	return cfg, nil
}

// Budget returns the per-element memory budget.
func (c *Config) Budget() memory.Budget {
	return memory.Budget{Memory: c.PEMemory, Reserved: c.PEReserved}
}

// NewLogger builds a text logger on stderr at the configured level.
func (c *Config) NewLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(os.Stderr)
	l.SetLevel(c.LogLevel)
	l.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})

	return l
}

func positiveInt(get func(string) (string, bool), key string, def int) (int, error) {
	v, ok := get(key)
	if !ok {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("%s=%q: %w", key, v, ErrInvalidValue)
	}

	return n, nil
}

// readEnvFile returns the variables of the nearest .env, or nil when none exists.
func readEnvFile(dir string) (map[string]string, error) {
	for i := 0; i < envSearchDepth; i++ {
		path := filepath.Join(dir, ".env")
		if _, err := os.Stat(path); err == nil {
			vars, err := godotenv.Read(path)
			if err != nil {
				return nil, fmt.Errorf("config: read %s: %w", path, err)
			}

			return vars, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return nil, nil
}
