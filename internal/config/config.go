// Package config provides functionality for managing configuration options
// for the application using command-line flags, an optional JSON file and
// environment variables.
package config

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/atinyakov/AccountKeeper/internal/repository"
	"github.com/atinyakov/AccountKeeper/internal/storage"
)

// Options holds the configuration values for the application.
type Options struct {
	// Port defines the server's listening address (ip:port).
	Port string `json:"port"`

	// Storage selects the key/value backend: file, memory, postgres or redis.
	Storage string `json:"storage"`

	// StoragePath is the file used by the file backend.
	StoragePath string `json:"storage_path"`

	// DatabaseDSN holds the database connection string for the postgres backend.
	DatabaseDSN string `json:"database_dsn"`

	// RedisAddr is the host:port of the redis backend.
	RedisAddr string `json:"redis_addr"`

	// StorageKey is the key the account collection is stored under.
	StorageKey string `json:"storage_key"`

	// LogLevel is the minimum zap level to log.
	LogLevel string `json:"log_level"`

	// Config is the path to the Config file.
	Config string `json:"-"`
}

// StorageConfig returns the storage.Open parameters described by o.
func (o *Options) StorageConfig() storage.Config {
	return storage.Config{
		Backend:     o.Storage,
		Path:        o.StoragePath,
		DatabaseDSN: o.DatabaseDSN,
		RedisAddr:   o.RedisAddr,
	}
}

// Parse reads args (without the program name), then the JSON config file if
// it exists, then environment variables; later sources win.
func Parse(name string, args []string) (*Options, error) {
	options := &Options{}

	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.StringVar(&options.Port, "a", "localhost:8080", "run on ip:port server")
	fs.StringVar(&options.Storage, "s", storage.BackendFile, "storage backend: file | memory | postgres | redis")
	fs.StringVar(&options.StoragePath, "f", "accounts.json", "path to the file backend")
	fs.StringVar(&options.DatabaseDSN, "d", "", "db address")
	fs.StringVar(&options.RedisAddr, "r", "localhost:6379", "redis address")
	fs.StringVar(&options.StorageKey, "k", repository.DefaultStorageKey, "storage key for the account collection")
	fs.StringVar(&options.LogLevel, "l", "info", "log level")
	fs.StringVar(&options.Config, "config", "config.json", "path to config file")
	fs.StringVar(&options.Config, "c", "config.json", "path to config file (shorthand)")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if configPath := os.Getenv("CONFIG"); configPath != "" {
		options.Config = configPath
	}

	if options.Config != "" {
		if _, err := os.Stat(options.Config); err == nil {
			data, err := os.ReadFile(options.Config)
			if err != nil {
				return nil, fmt.Errorf("error while reading config file: %w", err)
			}
			if err := json.Unmarshal(data, options); err != nil {
				return nil, fmt.Errorf("error while parsing config file: %w", err)
			}
		}
	}

	override(&options.Port, "SERVER_ADDRESS")
	override(&options.Storage, "STORAGE")
	override(&options.StoragePath, "STORAGE_PATH")
	override(&options.DatabaseDSN, "DATABASE_DSN")
	override(&options.RedisAddr, "REDIS_ADDR")
	override(&options.StorageKey, "STORAGE_KEY")
	override(&options.LogLevel, "LOG_LEVEL")

	if err := options.validate(); err != nil {
		return nil, err
	}
	return options, nil
}

func (o *Options) validate() error {
	switch o.Storage {
	case storage.BackendFile:
		if o.StoragePath == "" {
			return errors.New("file storage requires a path")
		}
	case storage.BackendMemory:
	case storage.BackendPostgres:
		if o.DatabaseDSN == "" {
			return errors.New("postgres storage requires a database DSN")
		}
	case storage.BackendRedis:
		if o.RedisAddr == "" {
			return errors.New("redis storage requires an address")
		}
	default:
		return fmt.Errorf("%w: %q", storage.ErrUnknownBackend, o.Storage)
	}
	return nil
}

func override(dst *string, env string) {
	if v := os.Getenv(env); v != "" {
		*dst = v
	}
}
