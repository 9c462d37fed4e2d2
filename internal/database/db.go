// Package database defines the narrow query surface the recommendation
// engine needs from the catalog store. The catalog is seeded by an external
// import process and is read-only here, so the interface carries no write or
// transaction methods.
package database

import "context"

type DB interface {
	Ping(ctx context.Context) error
	Close() error

	Query(ctx context.Context, query string, args ...any) (Rows, error)
	QueryRow(ctx context.Context, query string, args ...any) Row
}

type Rows interface {
	Close()
	Next() bool
	Scan(dest ...any) error
	Err() error
}

type Row interface {
	Scan(dest ...any) error
}
