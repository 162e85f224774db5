// Package remote writes table rows to the backend store and counts them.
package remote

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/olkkari/menuload/internal/logger"
	"github.com/olkkari/menuload/pkg/menuload/models"
)

// Backend kinds.
const (
	KindPostgREST = "postgrest"
	KindPostgres  = "postgres"
	KindSQLite    = "sqlite"
)

// ErrUnknownBackend is returned by Open for an unsupported kind.
var ErrUnknownBackend = errors.New("unknown backend")

// Backend stores table rows. Each Insert is a single bulk request.
type Backend interface {
	// Insert adds rows to table and returns how many were stored.
	Insert(ctx context.Context, table string, rows []models.Record) (int, error)
	// Count returns the number of rows in table.
	Count(ctx context.Context, table string) (int64, error)
	Close() error
}

// Settings selects and configures a backend.
type Settings struct {
	Kind string
	// URL and Key address the hosted PostgREST API.
	URL string
	Key string
	// DSN is the Postgres connection string.
	DSN string
	// SQLitePath is the local database file.
	SQLitePath string
	// Migrate creates the menu tables in the SQLite store first.
	Migrate bool
}

// Open returns the backend named by s.Kind.
func Open(ctx context.Context, s Settings) (Backend, error) {
	var (
		b   Backend
		err error
	)
	switch s.Kind {
	case "", KindPostgREST:
		b, err = NewPostgREST(s.URL, s.Key)
	case KindPostgres:
		b, err = NewPostgres(ctx, s.DSN)
	case KindSQLite:
		b, err = NewSQLite(s.SQLitePath, s.Migrate)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, s.Kind)
	}
	if err != nil {
		return nil, err
	}
	kind := s.Kind
	if kind == "" {
		kind = KindPostgREST
	}
	log := logger.FromContext(ctx)
	log.Debug().Str("backend", kind).Msg("backend opened")
	return b, nil
}

// plainValue converts decoded JSON numbers to Go numbers for SQL drivers.
func plainValue(v interface{}) interface{} {
	n, ok := v.(json.Number)
	if !ok {
		return v
	}
	if i, err := n.Int64(); err == nil {
		return i
	}
	if f, err := n.Float64(); err == nil {
		return f
	}
	return n.String()
}
