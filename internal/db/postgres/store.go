// Package postgres implements the catalog driver over a Postgres table via lib/pq.
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/lib/pq"

	"github.com/kailas-cloud/beautydex/internal/db"
	"github.com/kailas-cloud/beautydex/internal/domain/product"
)

// DefaultTable is the catalog table name.
const DefaultTable = "beauty_products"

// Compile-time check: Store implements db.Store.
var _ db.Store = (*Store)(nil)

// Config holds connection parameters for a Postgres store.
type Config struct {
	DSN   string
	Table string
	// MaxOpenConns caps the pool; zero keeps the database/sql default.
	MaxOpenConns int
}

// Store implements db.Store over a single products table.
type Store struct {
	conn  *sql.DB
	table string
}

// NewStore opens a connection pool. It does not contact the server; use WaitForReady.
func NewStore(cfg Config) (*Store, error) {
	if cfg.DSN == "" {
		return nil, fmt.Errorf("dsn is required")
	}
	conn, err := sql.Open("postgres", cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	if cfg.MaxOpenConns > 0 {
		conn.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	return NewStoreWithDB(conn, cfg.Table)
}

// NewStoreWithDB wraps an existing pool.
func NewStoreWithDB(conn *sql.DB, table string) (*Store, error) {
	if table == "" {
		table = DefaultTable
	}
	quoted, err := quoteTable(table)
	if err != nil {
		return nil, err
	}
	return &Store{conn: conn, table: quoted}, nil
}

// Ping checks connectivity.
func (s *Store) Ping(ctx context.Context) error {
	if err := s.conn.PingContext(ctx); err != nil {
		return wrapErr(db.OpPing, err)
	}
	return nil
}

// Close releases the pool.
func (s *Store) Close() {
	_ = s.conn.Close()
}

// WaitForReady polls Ping until the server responds or timeout expires.
func (s *Store) WaitForReady(ctx context.Context, timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return fmt.Errorf("timeout waiting for database: %w", ctx.Err())
		case <-ticker.C:
			if err := s.Ping(ctx); err == nil {
				return nil
			}
		}
	}
}

// FindByID returns one row or db.ErrKeyNotFound.
func (s *Store) FindByID(ctx context.Context, id string) (map[string]string, error) {
	query := fmt.Sprintf("SELECT %s FROM %s WHERE %s = $1 LIMIT 1",
		selectList(), s.table, pq.QuoteIdentifier(product.FieldID))
	fields, err := scanRow(s.conn.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, db.ErrKeyNotFound
	}
	if err != nil {
		return nil, wrapErr(db.OpSelect, err)
	}
	return fields, nil
}

// Search evaluates the predicate as a WHERE clause.
func (s *Store) Search(ctx context.Context, q *db.Query) (*db.SearchResult, error) {
	if q.Filters.MatchesNothing() {
		return &db.SearchResult{}, nil
	}
	query, args, err := buildSelect(s.table, q)
	if err != nil {
		return nil, err
	}

	rows, err := s.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, wrapErr(db.OpSelect, err)
	}
	defer func() { _ = rows.Close() }()

	res := &db.SearchResult{}
	for rows.Next() {
		fields, err := scanRow(rows)
		if err != nil {
			return nil, wrapErr(db.OpSelect, err)
		}
		res.Entries = append(res.Entries, db.SearchEntry{Key: fields[product.FieldID], Fields: fields})
	}
	if err := rows.Err(); err != nil {
		return nil, wrapErr(db.OpSelect, err)
	}
	res.Total = len(res.Entries)
	return res, nil
}

// Put upserts a product row keyed by product_id.
func (s *Store) Put(ctx context.Context, fields map[string]string) error {
	if fields[product.FieldID] == "" {
		return fmt.Errorf("%s is required", product.FieldID)
	}
	query, args := buildUpsert(s.table, fields)
	if _, err := s.conn.ExecContext(ctx, query, args...); err != nil {
		return wrapErr(db.OpInsert, err)
	}
	return nil
}

// wrapErr adds the Postgres condition name when the server reported one.
func wrapErr(op string, err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return &db.Error{Op: op, Err: fmt.Errorf("%s (%s): %w", pqErr.Code.Name(), pqErr.Code, err)}
	}
	return &db.Error{Op: op, Err: err}
}

// quoteTable quotes an optionally schema-qualified table name.
func quoteTable(name string) (string, error) {
	parts := strings.Split(name, ".")
	if len(parts) > 2 {
		return "", fmt.Errorf("invalid table name %q", name)
	}
	for i, p := range parts {
		if p == "" {
			return "", fmt.Errorf("invalid table name %q", name)
		}
		parts[i] = pq.QuoteIdentifier(p)
	}
	return strings.Join(parts, "."), nil
}
