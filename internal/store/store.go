// Package store provides persistence for the song catalogue, backed by
// Postgres.
package store

import (
	"database/sql"
	"errors"
)

// ErrNotFound signals the requested row does not exist.
var ErrNotFound = errors.New("not found")

// Store provides persistence backed by Postgres.
type Store struct {
	db *sql.DB
}

// New sets up a Store using the provided database handle.
func New(db *sql.DB) *Store {
	return &Store{db: db}
}
