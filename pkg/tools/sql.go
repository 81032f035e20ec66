package tools

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/reagent-labs/reagent/pkg/agent"
)

// Querier is the slice of the database store the SQL tools need.
type Querier interface {
	Query(ctx context.Context, query string) ([][]string, error)
	Exec(ctx context.Context, stmt string) (int64, error)
}

var sqlFenceRe = regexp.MustCompile("(?i)```sql|```")

// SQLQueryTool executes SQL statements against the shared database handle.
type SQLQueryTool struct {
	DB Querier
}

func (t *SQLQueryTool) Spec() agent.ToolSpec {
	return agent.ToolSpec{
		Name:        "run_sql",
		Description: "Executes SQL queries and retrieves results. Input should be a complete and valid SQL query string (e.g., 'SELECT * FROM users;').",
	}
}

func (t *SQLQueryTool) Invoke(ctx context.Context, req agent.ToolRequest) (agent.ToolResponse, error) {
	return agent.ToolResponse{Content: runSQL(ctx, t.DB, req.Input)}, nil
}

// runSQL cleans and executes a query, rendering the result the way the model
// consumes it. Errors render as observation text carrying the offending
// query so the model can correct itself.
func runSQL(ctx context.Context, db Querier, query string) string {
	query = strings.TrimSpace(sqlFenceRe.ReplaceAllString(query, ""))

	if strings.HasPrefix(strings.ToLower(query), "select") {
		rows, err := db.Query(ctx, query)
		if err != nil {
			return fmt.Sprintf("SQL execution error: %v for query: %s", err, query)
		}
		return renderRows(rows)
	}

	affected, err := db.Exec(ctx, query)
	if err != nil {
		return fmt.Sprintf("SQL execution error: %v for query: %s", err, query)
	}
	return fmt.Sprintf("Query executed successfully. Result: %d row(s) affected", affected)
}

// renderRows collapses a single scalar to its bare value and joins the rest
// with commas, mirroring how the result feeds back into the prompt.
func renderRows(rows [][]string) string {
	if len(rows) == 0 {
		return "No results found for the query."
	}
	if len(rows) == 1 && len(rows[0]) == 1 {
		return rows[0][0]
	}
	rendered := make([]string, 0, len(rows))
	for _, row := range rows {
		if len(row) == 1 {
			rendered = append(rendered, row[0])
			continue
		}
		rendered = append(rendered, "("+strings.Join(row, ", ")+")")
	}
	return strings.Join(rendered, ", ")
}

var _ agent.Tool = (*SQLQueryTool)(nil)
