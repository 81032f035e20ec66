// Package sqldb provides the single database connection shared by the SQL
// tools. A postgres:// URL selects the pgx driver; anything else is treated
// as a SQLite file path.
package sqldb

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"
)

// Store wraps one database/sql handle. Execution in this runtime is strictly
// sequential, so no pooling tuning or locking is layered on top.
type Store struct {
	db     *sql.DB
	driver string
}

// Open connects to the database named by source.
func Open(source string) (*Store, error) {
	if strings.TrimSpace(source) == "" {
		return nil, fmt.Errorf("database source is empty")
	}
	driver := "sqlite"
	if strings.HasPrefix(source, "postgres://") || strings.HasPrefix(source, "postgresql://") {
		driver = "pgx"
	}
	db, err := sql.Open(driver, source)
	if err != nil {
		return nil, fmt.Errorf("open %s database: %w", driver, err)
	}
	return &Store{db: db, driver: driver}, nil
}

// Ping verifies the connection is usable.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Close releases the underlying handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// Query runs a SELECT-style statement and returns every row rendered as
// strings. NULLs render as "NULL"; byte slices as text.
func (s *Store) Query(ctx context.Context, query string) ([][]string, error) {
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	var result [][]string
	for rows.Next() {
		values := make([]any, len(columns))
		ptrs := make([]any, len(columns))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, err
		}
		row := make([]string, len(columns))
		for i, v := range values {
			row[i] = renderValue(v)
		}
		result = append(result, row)
	}
	return result, rows.Err()
}

// Exec runs a non-SELECT statement and returns the affected row count.
func (s *Store) Exec(ctx context.Context, stmt string) (int64, error) {
	res, err := s.db.ExecContext(ctx, stmt)
	if err != nil {
		return 0, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, nil
	}
	return affected, nil
}

// Tables lists the user tables in the connected database.
func (s *Store) Tables(ctx context.Context) ([]string, error) {
	query := `SELECT name FROM sqlite_master WHERE type = 'table' AND name NOT LIKE 'sqlite_%' ORDER BY name`
	if s.driver == "pgx" {
		query = `SELECT tablename FROM pg_tables WHERE schemaname = 'public' ORDER BY tablename`
	}
	rows, err := s.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(rows))
	for _, row := range rows {
		if len(row) > 0 {
			names = append(names, row[0])
		}
	}
	return names, nil
}

// CountRows returns the row count of a table previously returned by Tables.
func (s *Store) CountRows(ctx context.Context, table string) (int64, error) {
	var count int64
	err := s.db.QueryRowContext(ctx, fmt.Sprintf("SELECT COUNT(*) FROM %s", quoteIdent(table))).Scan(&count)
	return count, err
}

func quoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

func renderValue(v any) string {
	switch value := v.(type) {
	case nil:
		return "NULL"
	case []byte:
		return string(value)
	default:
		return fmt.Sprint(value)
	}
}
