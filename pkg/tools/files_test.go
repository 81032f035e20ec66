package tools

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/reagent-labs/reagent/pkg/agent"
)

func TestWriteQueryResultRoundTrip(t *testing.T) {
	dir := t.TempDir()
	db := &stubQuerier{rows: [][]string{{"4"}}}
	write := &WriteQueryResultTool{DB: db, OutputDir: dir}

	resp, err := write.Invoke(context.Background(), agent.ToolRequest{Input: "SQL: SELECT COUNT(*) FROM users;"})
	if err != nil {
		t.Fatalf("Invoke: %v", err)
	}
	if !strings.Contains(resp.Content, "successfully written") {
		t.Errorf("content = %q", resp.Content)
	}
	if !strings.Contains(resp.Content, "Result: 4") {
		t.Errorf("content = %q should carry the query result", resp.Content)
	}

	data, err := os.ReadFile(filepath.Join(dir, QueryResultFileName))
	if err != nil {
		t.Fatalf("read result file: %v", err)
	}
	if got := string(data); got != "The number of users is: 4" {
		t.Errorf("file body = %q", got)
	}

	read := &ReadFileTool{BaseDir: dir}
	resp, err = read.Invoke(context.Background(), agent.ToolRequest{Input: QueryResultFileName})
	if err != nil {
		t.Fatalf("read_file: %v", err)
	}
	if resp.Content != "The number of users is: 4" {
		t.Errorf("read_file content = %q", resp.Content)
	}
}

func TestWriteQueryResultRejectsMissingPrefix(t *testing.T) {
	write := &WriteQueryResultTool{DB: &stubQuerier{}, OutputDir: t.TempDir()}

	resp, err := write.Invoke(context.Background(), agent.ToolRequest{Input: "SELECT COUNT(*) FROM users;"})
	if err != nil {
		t.Fatalf("Invoke: %v", err)
	}
	if !strings.Contains(resp.Content, "must start with 'SQL:'") {
		t.Errorf("content = %q should explain the required format", resp.Content)
	}
}

func TestWriteQueryResultOverwrites(t *testing.T) {
	dir := t.TempDir()
	db := &stubQuerier{rows: [][]string{{"4"}}}
	write := &WriteQueryResultTool{DB: db, OutputDir: dir}

	for range 2 {
		if _, err := write.Invoke(context.Background(), agent.ToolRequest{Input: "SQL: SELECT COUNT(*) FROM users"}); err != nil {
			t.Fatalf("Invoke: %v", err)
		}
	}
	data, err := os.ReadFile(filepath.Join(dir, QueryResultFileName))
	if err != nil {
		t.Fatalf("read result file: %v", err)
	}
	if got := string(data); got != "The number of users is: 4" {
		t.Errorf("file body after rewrite = %q", got)
	}
}

func TestReadFileMissing(t *testing.T) {
	read := &ReadFileTool{BaseDir: t.TempDir()}

	resp, err := read.Invoke(context.Background(), agent.ToolRequest{Input: "nope.txt"})
	if err != nil {
		t.Fatalf("missing files are observations, got error %v", err)
	}
	if !strings.Contains(resp.Content, "'nope.txt' does not exist") {
		t.Errorf("content = %q", resp.Content)
	}
}
