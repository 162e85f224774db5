package remote

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/olkkari/menuload/pkg/menuload/models"
)

// Postgres writes directly to the database behind the hosted API.
type Postgres struct {
	pool *pgxpool.Pool
}

// NewPostgres connects to dsn and checks the connection.
func NewPostgres(ctx context.Context, dsn string) (*Postgres, error) {
	if dsn == "" {
		return nil, fmt.Errorf("postgres: connection string is empty")
	}
	config, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("postgres: %w", err)
	}
	config.MaxConns = 2

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("postgres: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("postgres: connection failed: %w", err)
	}
	return &Postgres{pool: pool}, nil
}

// Insert copies all rows in one COPY. Columns follow the first row's fields.
func (p *Postgres) Insert(ctx context.Context, table string, rows []models.Record) (int, error) {
	if len(rows) == 0 {
		return 0, nil
	}
	columns := rows[0].Keys()
	values := make([][]interface{}, len(rows))
	for i, row := range rows {
		values[i] = make([]interface{}, len(columns))
		for j, col := range columns {
			v, _ := row.Get(col)
			values[i][j] = plainValue(v)
		}
	}

	n, err := p.pool.CopyFrom(ctx, pgx.Identifier{table}, columns, pgx.CopyFromRows(values))
	if err != nil {
		return 0, err
	}
	return int(n), nil
}

// Count runs SELECT count(*) on table.
func (p *Postgres) Count(ctx context.Context, table string) (int64, error) {
	var n int64
	query := "SELECT count(*) FROM " + pgx.Identifier{table}.Sanitize()
	if err := p.pool.QueryRow(ctx, query).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

func (p *Postgres) Close() error {
	p.pool.Close()
	return nil
}
