package storage

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func setupPostgresMock(t *testing.T) (*PostgresStore, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to open sqlmock database: %v", err)
	}
	store := NewPostgresStore(db)
	cleanup := func() { db.Close() }
	return store, mock, cleanup
}

func TestPostgresStore_Get_Found(t *testing.T) {
	store, mock, cleanup := setupPostgresMock(t)
	defer cleanup()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT value FROM kv_store WHERE key = $1`)).
		WithArgs("accounts").
		WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow(`[]`))

	v, found, err := store.Get(context.Background(), "accounts")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !found || v != `[]` {
		t.Errorf("Get = %q, %v; want %q, true", v, found, `[]`)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled expectations: %v", err)
	}
}

func TestPostgresStore_Get_Missing(t *testing.T) {
	store, mock, cleanup := setupPostgresMock(t)
	defer cleanup()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT value FROM kv_store WHERE key = $1`)).
		WithArgs("accounts").
		WillReturnRows(sqlmock.NewRows([]string{"value"}))

	_, found, err := store.Get(context.Background(), "accounts")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found {
		t.Error("expected key to be missing")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled expectations: %v", err)
	}
}

func TestPostgresStore_Get_Error(t *testing.T) {
	store, mock, cleanup := setupPostgresMock(t)
	defer cleanup()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT value FROM kv_store WHERE key = $1`)).
		WithArgs("accounts").
		WillReturnError(errors.New("query failed"))

	_, _, err := store.Get(context.Background(), "accounts")
	if err == nil || !regexp.MustCompile(`get key`).MatchString(err.Error()) {
		t.Errorf("expected get key error, got %v", err)
	}
}

func TestPostgresStore_Set(t *testing.T) {
	store, mock, cleanup := setupPostgresMock(t)
	defer cleanup()

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO kv_store (key, value, updated_at)`)).
		WithArgs("accounts", `[{"id":"1"}]`).
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := store.Set(context.Background(), "accounts", `[{"id":"1"}]`); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled expectations: %v", err)
	}
}

func TestPostgresStore_Set_Error(t *testing.T) {
	store, mock, cleanup := setupPostgresMock(t)
	defer cleanup()

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO kv_store (key, value, updated_at)`)).
		WithArgs("accounts", "x").
		WillReturnError(errors.New("disk full"))

	err := store.Set(context.Background(), "accounts", "x")
	if err == nil || !regexp.MustCompile(`set key`).MatchString(err.Error()) {
		t.Errorf("expected set key error, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled expectations: %v", err)
	}
}
