package sqldb

import (
	"context"
	"fmt"
	"os"
	"strings"
)

// ExecScript reads a SQL script file and executes it one statement at a
// time, splitting on semicolons. It returns the number of statements run.
// Statements execute in file order; execution stops at the first failure.
func (s *Store) ExecScript(ctx context.Context, path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("read schema file: %w", err)
	}

	executed := 0
	for _, stmt := range strings.Split(string(data), ";") {
		stmt = strings.TrimSpace(stmt)
		if stmt == "" {
			continue
		}
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return executed, fmt.Errorf("execute statement %q: %w", truncateStmt(stmt), err)
		}
		executed++
	}
	return executed, nil
}

func truncateStmt(stmt string) string {
	const max = 70
	if len(stmt) <= max {
		return stmt
	}
	return stmt[:max] + "..."
}
