package tools

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/reagent-labs/reagent/pkg/agent"
)

// QueryResultFileName is the fixed destination of write_query_result_to_file.
const QueryResultFileName = "db_result.txt"

var sqlInputRe = regexp.MustCompile(`(?is)SQL:\s*(SELECT.*)`)

// WriteQueryResultTool runs a SELECT and writes the result into
// db_result.txt under the output directory, creating the directory if absent
// and overwriting the file on every write.
type WriteQueryResultTool struct {
	DB        Querier
	OutputDir string
}

func (t *WriteQueryResultTool) Spec() agent.ToolSpec {
	return agent.ToolSpec{
		Name:        "write_query_result_to_file",
		Description: "Executes an SQL query and writes the result to 'db_result.txt'. The input MUST contain the SQL query prefixed with 'SQL:', e.g. \"SQL: SELECT COUNT(*) FROM users;\".",
	}
}

func (t *WriteQueryResultTool) Invoke(ctx context.Context, req agent.ToolRequest) (agent.ToolResponse, error) {
	match := sqlInputRe.FindStringSubmatch(req.Input)
	if match == nil {
		return agent.ToolResponse{
			Content: "Error: Input to write_query_result_to_file must start with 'SQL:' followed by the query.",
		}, nil
	}

	result := runSQL(ctx, t.DB, strings.TrimSpace(match[1]))

	if err := os.MkdirAll(t.OutputDir, 0o755); err != nil {
		return agent.ToolResponse{}, fmt.Errorf("create output directory: %w", err)
	}
	path := filepath.Join(t.OutputDir, QueryResultFileName)
	content := fmt.Sprintf("The number of users is: %s", result)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return agent.ToolResponse{}, fmt.Errorf("write query result: %w", err)
	}

	return agent.ToolResponse{
		Content:  fmt.Sprintf("Query result successfully written to %s. Result: %s", path, result),
		Metadata: map[string]string{"path": path},
	}, nil
}

// ReadFileTool reads a whole file by name from the output directory.
type ReadFileTool struct {
	BaseDir string
}

func (t *ReadFileTool) Spec() agent.ToolSpec {
	return agent.ToolSpec{
		Name:        "read_file",
		Description: "Reads the contents of a file. Input should be the exact file name (e.g., 'report.txt').",
	}
}

func (t *ReadFileTool) Invoke(_ context.Context, req agent.ToolRequest) (agent.ToolResponse, error) {
	name := strings.TrimSpace(req.Input)
	path := filepath.Join(t.BaseDir, name)

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return agent.ToolResponse{
			Content: fmt.Sprintf("Error: The file '%s' does not exist at '%s'.", name, path),
		}, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return agent.ToolResponse{}, fmt.Errorf("read file: %w", err)
	}
	return agent.ToolResponse{Content: string(data)}, nil
}

var (
	_ agent.Tool = (*WriteQueryResultTool)(nil)
	_ agent.Tool = (*ReadFileTool)(nil)
)
