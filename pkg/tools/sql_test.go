package tools

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/reagent-labs/reagent/pkg/agent"
)

// stubQuerier serves canned rows and records the statements it received.
type stubQuerier struct {
	rows     [][]string
	queryErr error
	affected int64
	execErr  error
	queries  []string
	execs    []string
}

func (q *stubQuerier) Query(_ context.Context, query string) ([][]string, error) {
	q.queries = append(q.queries, query)
	if q.queryErr != nil {
		return nil, q.queryErr
	}
	return q.rows, nil
}

func (q *stubQuerier) Exec(_ context.Context, stmt string) (int64, error) {
	q.execs = append(q.execs, stmt)
	if q.execErr != nil {
		return 0, q.execErr
	}
	return q.affected, nil
}

func TestSQLToolScalarResult(t *testing.T) {
	db := &stubQuerier{rows: [][]string{{"4"}}}
	tool := &SQLQueryTool{DB: db}

	resp, err := tool.Invoke(context.Background(), agent.ToolRequest{Input: "SELECT COUNT(*) FROM users;"})
	if err != nil {
		t.Fatalf("Invoke: %v", err)
	}
	if resp.Content != "4" {
		t.Errorf("content = %q, want the bare scalar", resp.Content)
	}
}

func TestSQLToolStripsCodeFences(t *testing.T) {
	db := &stubQuerier{rows: [][]string{{"4"}}}
	tool := &SQLQueryTool{DB: db}

	if _, err := tool.Invoke(context.Background(), agent.ToolRequest{Input: "```sql\nSELECT COUNT(*) FROM users;\n```"}); err != nil {
		t.Fatalf("Invoke: %v", err)
	}
	if len(db.queries) != 1 {
		t.Fatalf("expected one query, got %v", db.queries)
	}
	if strings.Contains(db.queries[0], "```") {
		t.Errorf("fences not stripped: %q", db.queries[0])
	}
}

func TestSQLToolMultiRowResult(t *testing.T) {
	db := &stubQuerier{rows: [][]string{{"1", "Alice"}, {"2", "Bob"}}}
	tool := &SQLQueryTool{DB: db}

	resp, _ := tool.Invoke(context.Background(), agent.ToolRequest{Input: "SELECT id, name FROM users"})
	want := "(1, Alice), (2, Bob)"
	if resp.Content != want {
		t.Errorf("content = %q, want %q", resp.Content, want)
	}
}

func TestSQLToolEmptyResult(t *testing.T) {
	tool := &SQLQueryTool{DB: &stubQuerier{}}
	resp, _ := tool.Invoke(context.Background(), agent.ToolRequest{Input: "SELECT * FROM users WHERE 1=0"})
	if resp.Content != "No results found for the query." {
		t.Errorf("content = %q", resp.Content)
	}
}

func TestSQLToolQueryErrorIsObservation(t *testing.T) {
	tool := &SQLQueryTool{DB: &stubQuerier{queryErr: errors.New("no such table: users")}}
	resp, err := tool.Invoke(context.Background(), agent.ToolRequest{Input: "SELECT * FROM users"})
	if err != nil {
		t.Fatalf("SQL errors must surface as observations, got error %v", err)
	}
	if !strings.Contains(resp.Content, "no such table: users") {
		t.Errorf("content %q should embed the failure", resp.Content)
	}
	if !strings.Contains(resp.Content, "SELECT * FROM users") {
		t.Errorf("content %q should include the offending query", resp.Content)
	}
}

func TestSQLToolNonSelect(t *testing.T) {
	db := &stubQuerier{affected: 2}
	tool := &SQLQueryTool{DB: db}

	resp, _ := tool.Invoke(context.Background(), agent.ToolRequest{Input: "UPDATE users SET active = 1"})
	if !strings.Contains(resp.Content, "Query executed successfully") {
		t.Errorf("content = %q", resp.Content)
	}
	if !strings.Contains(resp.Content, "2 row(s) affected") {
		t.Errorf("content = %q should report rows affected", resp.Content)
	}
	if len(db.execs) != 1 || len(db.queries) != 0 {
		t.Errorf("non-SELECT should go through Exec, got queries=%v execs=%v", db.queries, db.execs)
	}
}
