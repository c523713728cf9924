// Package store wraps database access for the SUS hospital admission data.
// It speaks SQLAlchemy-style connection URIs so existing configs keep working.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"strings"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"
)

// Store holds an open connection plus the dialect it was opened with.
type Store struct {
	db      *sql.DB
	dialect string
	debug   bool
}

// TableInfo summarizes one table.
type TableInfo struct {
	Name        string
	RecordCount int64
	ColumnCount int64
}

// Summary describes every usable table in the database.
type Summary struct {
	Tables      []TableInfo
	TotalTables int
}

// parseURI maps a connection URI onto a database/sql driver name and DSN.
// Supported schemes: sqlite, postgres/postgresql and mysql. A bare path is
// treated as a SQLite file.
func parseURI(uri string) (driver, dsn string, err error) {
	uri = strings.TrimSpace(uri)
	if uri == "" {
		return "", "", fmt.Errorf("database URI is empty")
	}

	if !strings.Contains(uri, "://") {
		return "sqlite", uri, nil
	}

	switch {
	case strings.HasPrefix(uri, "sqlite://"):
		// sqlite:///relative.db has three slashes, sqlite:////abs/path.db four.
		path := strings.TrimPrefix(uri, "sqlite://")
		path = strings.TrimPrefix(path, "/")
		if path == "" {
			return "", "", fmt.Errorf("sqlite URI %q has no file path", uri)
		}
		return "sqlite", path, nil
	case strings.HasPrefix(uri, "postgres://"), strings.HasPrefix(uri, "postgresql://"):
		return "pgx", uri, nil
	case strings.HasPrefix(uri, "mysql://"):
		u, err := url.Parse(uri)
		if err != nil {
			return "", "", fmt.Errorf("failed to parse mysql URI: %w", err)
		}
		dbName := strings.TrimPrefix(u.Path, "/")
		dsn := fmt.Sprintf("tcp(%s)/%s", u.Host, dbName)
		if u.User != nil && u.User.String() != "" {
			dsn = u.User.String() + "@" + dsn
		}
		if u.RawQuery != "" {
			dsn += "?" + u.RawQuery
		}
		return "mysql", dsn, nil
	}

	scheme := uri[:strings.Index(uri, "://")]
	return "", "", fmt.Errorf("unsupported database scheme %q (expected sqlite, postgres or mysql)", scheme)
}

// dialectForDriver normalizes the driver name to the dialect used for
// metadata queries.
func dialectForDriver(driver string) string {
	if driver == "pgx" {
		return "postgres"
	}
	return driver
}

// Open connects to the database described by uri and verifies the connection.
func Open(ctx context.Context, uri string, debug bool) (*Store, error) {
	driver, dsn, err := parseURI(uri)
	if err != nil {
		return nil, err
	}

	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if debug {
		fmt.Printf("🗄️  Connected to %s database\n", dialectForDriver(driver))
	}

	return &Store{db: db, dialect: dialectForDriver(driver), debug: debug}, nil
}

// Close releases the underlying connection pool.
func (s *Store) Close() error {
	return s.db.Close()
}

// Dialect returns "sqlite", "postgres" or "mysql".
func (s *Store) Dialect() string {
	return s.dialect
}

// QueryCount runs a query expected to return a single numeric value.
func (s *Store) QueryCount(ctx context.Context, query string) (int64, error) {
	var count int64
	if err := s.db.QueryRowContext(ctx, query).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to execute count query: %w", err)
	}
	return count, nil
}

// QueryRows runs an arbitrary read query and renders every value as a string.
// NULL values come back as "NULL".
func (s *Store) QueryRows(ctx context.Context, query string) ([]string, [][]string, error) {
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to execute query: %w", err)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read columns: %w", err)
	}

	var results [][]string
	for rows.Next() {
		values := make([]sql.NullString, len(columns))
		scanTargets := make([]any, len(columns))
		for i := range values {
			scanTargets[i] = &values[i]
		}
		if err := rows.Scan(scanTargets...); err != nil {
			return nil, nil, fmt.Errorf("failed to scan row: %w", err)
		}

		row := make([]string, len(columns))
		for i, v := range values {
			if v.Valid {
				row[i] = v.String
			} else {
				row[i] = "NULL"
			}
		}
		results = append(results, row)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("failed to iterate rows: %w", err)
	}

	return columns, results, nil
}

// TableNames lists the usable tables for the current dialect.
func (s *Store) TableNames(ctx context.Context) ([]string, error) {
	var query string
	switch s.dialect {
	case "sqlite":
		query = "SELECT name FROM sqlite_master WHERE type = 'table' AND name NOT LIKE 'sqlite_%' ORDER BY name"
	case "postgres":
		query = "SELECT table_name FROM information_schema.tables WHERE table_schema = 'public' AND table_type = 'BASE TABLE' ORDER BY table_name"
	case "mysql":
		query = "SELECT table_name FROM information_schema.tables WHERE table_schema = DATABASE() ORDER BY table_name"
	default:
		return nil, fmt.Errorf("unsupported dialect %q", s.dialect)
	}

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list tables: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("failed to scan table name: %w", err)
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate tables: %w", err)
	}

	return names, nil
}

// ColumnCountSQL returns the dialect-specific query that counts the columns
// of a table. Exposed so canned answers can report the query they ran.
func (s *Store) ColumnCountSQL(table string) string {
	switch s.dialect {
	case "sqlite":
		return fmt.Sprintf("SELECT COUNT(*) FROM pragma_table_info('%s')", table)
	default:
		return fmt.Sprintf("SELECT COUNT(*) FROM information_schema.columns WHERE table_name = '%s'", table)
	}
}

// ColumnCount counts the columns of a table.
func (s *Store) ColumnCount(ctx context.Context, table string) (int64, error) {
	return s.QueryCount(ctx, s.ColumnCountSQL(table))
}

// RecordCount counts the rows of a table.
func (s *Store) RecordCount(ctx context.Context, table string) (int64, error) {
	return s.QueryCount(ctx, fmt.Sprintf("SELECT COUNT(*) FROM %s", table))
}

// TableInfo returns the record and column counts for one table.
func (s *Store) TableInfo(ctx context.Context, table string) (TableInfo, error) {
	records, err := s.RecordCount(ctx, table)
	if err != nil {
		return TableInfo{}, fmt.Errorf("failed to count records of %s: %w", table, err)
	}

	columns, err := s.ColumnCount(ctx, table)
	if err != nil {
		return TableInfo{}, fmt.Errorf("failed to count columns of %s: %w", table, err)
	}

	return TableInfo{Name: table, RecordCount: records, ColumnCount: columns}, nil
}

// DatabaseSummary collects the info of every table. Tables whose metadata
// cannot be read are skipped instead of failing the whole summary.
func (s *Store) DatabaseSummary(ctx context.Context) (Summary, error) {
	names, err := s.TableNames(ctx)
	if err != nil {
		return Summary{}, err
	}

	summary := Summary{TotalTables: len(names)}
	for _, name := range names {
		info, err := s.TableInfo(ctx, name)
		if err != nil {
			if s.debug {
				fmt.Printf("⚠️  Skipping table %s: %v\n", name, err)
			}
			continue
		}
		summary.Tables = append(summary.Tables, info)
	}

	return summary, nil
}

// SampleRows fetches up to limit rows from a table for display.
func (s *Store) SampleRows(ctx context.Context, table string, limit int) ([]string, [][]string, error) {
	if limit <= 0 {
		limit = 3
	}
	return s.QueryRows(ctx, fmt.Sprintf("SELECT * FROM %s LIMIT %d", table, limit))
}
