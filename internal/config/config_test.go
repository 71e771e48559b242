package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atinyakov/AccountKeeper/internal/repository"
	"github.com/atinyakov/AccountKeeper/internal/storage"
)

func noConfigFile(t *testing.T) string {
	return filepath.Join(t.TempDir(), "absent.json")
}

func TestParse_Defaults(t *testing.T) {
	opts, err := Parse("test", []string{"-c", noConfigFile(t)})
	require.NoError(t, err)

	assert.Equal(t, "localhost:8080", opts.Port)
	assert.Equal(t, storage.BackendFile, opts.Storage)
	assert.Equal(t, "accounts.json", opts.StoragePath)
	assert.Equal(t, repository.DefaultStorageKey, opts.StorageKey)
	assert.Equal(t, "info", opts.LogLevel)
}

func TestParse_Flags(t *testing.T) {
	opts, err := Parse("test", []string{"-c", noConfigFile(t), "-a", ":9000", "-s", "postgres", "-d", "postgres://x", "-k", "my.accounts.v1"})
	require.NoError(t, err)

	assert.Equal(t, ":9000", opts.Port)
	assert.Equal(t, storage.Config{Backend: "postgres", Path: "accounts.json", DatabaseDSN: "postgres://x", RedisAddr: "localhost:6379"}, opts.StorageConfig())
	assert.Equal(t, "my.accounts.v1", opts.StorageKey)
}

func TestParse_ConfigFileThenEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"storage":"redis","redis_addr":"cache:6379","log_level":"debug"}`), 0600))

	t.Setenv("CONFIG", path)
	t.Setenv("LOG_LEVEL", "warn")

	opts, err := Parse("test", nil)
	require.NoError(t, err)
	assert.Equal(t, "redis", opts.Storage)
	assert.Equal(t, "cache:6379", opts.RedisAddr)
	assert.Equal(t, "warn", opts.LogLevel)
}

func TestParse_Errors(t *testing.T) {
	badJSON := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(badJSON, []byte(`{`), 0600))

	tests := []struct {
		name string
		args []string
		is   error
	}{
		{name: "unknown flag", args: []string{"-c", noConfigFile(t), "-zzz"}},
		{name: "bad config file", args: []string{"-c", badJSON}},
		{name: "unknown backend", args: []string{"-c", noConfigFile(t), "-s", "etcd"}, is: storage.ErrUnknownBackend},
		{name: "postgres without dsn", args: []string{"-c", noConfigFile(t), "-s", "postgres"}},
		{name: "file without path", args: []string{"-c", noConfigFile(t), "-f", ""}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse("test", tt.args)
			require.Error(t, err)
			if tt.is != nil {
				assert.True(t, errors.Is(err, tt.is), "got %v", err)
			}
		})
	}
}
