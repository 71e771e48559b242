package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/atinyakov/AccountKeeper/internal/db"
)

// PostgresStore keeps values in the kv_store table.
type PostgresStore struct {
	// DB is the database handle for executing queries.
	DB *sql.DB
}

// NewPostgresStore wraps an open database whose schema is already migrated.
func NewPostgresStore(conn *sql.DB) *PostgresStore {
	return &PostgresStore{DB: conn}
}

// OpenPostgres connects to dsn and prepares the schema.
func OpenPostgres(dsn string) (*PostgresStore, error) {
	conn, err := db.InitPostgres(dsn)
	if err != nil {
		return nil, err
	}
	return NewPostgresStore(conn), nil
}

// Get returns the value stored under key.
func (s *PostgresStore) Get(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := s.DB.QueryRowContext(ctx, `SELECT value FROM kv_store WHERE key = $1`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("get key: %w", err)
	}
	return value, true, nil
}

// Set inserts or overwrites the value under key.
func (s *PostgresStore) Set(ctx context.Context, key, value string) error {
	_, err := s.DB.ExecContext(ctx, `
		INSERT INTO kv_store (key, value, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (key) DO UPDATE SET
			value = EXCLUDED.value,
			updated_at = EXCLUDED.updated_at
	`, key, value)
	if err != nil {
		return fmt.Errorf("set key: %w", err)
	}
	return nil
}

// Close closes the underlying connection pool.
func (s *PostgresStore) Close() error {
	return s.DB.Close()
}
