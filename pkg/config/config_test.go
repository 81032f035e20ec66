package config

import (
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"LLM_PROVIDER", "LLM_MODEL", "GROQ_API_KEY", "DATABASE", "POSTGRES_URL", "GITHUB_TOKEN", "DB_SCHEMA", "AGENT_MAX_STEPS"} {
		t.Setenv(key, "")
	}

	cfg := Load()
	if cfg.Provider != "groq" {
		t.Errorf("Provider = %q, want groq", cfg.Provider)
	}
	if cfg.SchemaFile != "db_content.txt" {
		t.Errorf("SchemaFile = %q", cfg.SchemaFile)
	}
	if cfg.MaxSteps != 0 {
		t.Errorf("MaxSteps = %d, want 0", cfg.MaxSteps)
	}
}

func TestLoadReadsEnvironment(t *testing.T) {
	t.Setenv("LLM_PROVIDER", "ollama")
	t.Setenv("LLM_MODEL", "llama3")
	t.Setenv("GROQ_API_KEY", "  gsk_abc  ")
	t.Setenv("AGENT_MAX_STEPS", "7")

	cfg := Load()
	if cfg.Provider != "ollama" {
		t.Errorf("Provider = %q", cfg.Provider)
	}
	if cfg.Model != "llama3" {
		t.Errorf("Model = %q", cfg.Model)
	}
	if cfg.GroqAPIKey != "gsk_abc" {
		t.Errorf("GroqAPIKey = %q, want trimmed value", cfg.GroqAPIKey)
	}
	if cfg.MaxSteps != 7 {
		t.Errorf("MaxSteps = %d", cfg.MaxSteps)
	}
}

func TestDatabaseSourcePrefersPostgres(t *testing.T) {
	cfg := Config{Database: "app.db", PostgresURL: "postgres://u:p@localhost/db"}
	source, err := cfg.DatabaseSource()
	if err != nil {
		t.Fatalf("DatabaseSource: %v", err)
	}
	if source != "postgres://u:p@localhost/db" {
		t.Errorf("source = %q", source)
	}

	cfg.PostgresURL = ""
	source, err = cfg.DatabaseSource()
	if err != nil {
		t.Fatalf("DatabaseSource: %v", err)
	}
	if source != "app.db" {
		t.Errorf("source = %q", source)
	}

	cfg.Database = ""
	if _, err := cfg.DatabaseSource(); err == nil {
		t.Fatal("expected an error with neither source set")
	}
}

func TestOutputDir(t *testing.T) {
	cfg := Config{Database: filepath.Join("data", "app.db")}
	got := cfg.OutputDir()
	if filepath.Base(got) != "data" {
		t.Errorf("OutputDir = %q, want the database directory", got)
	}

	cfg.Database = ""
	if got := cfg.OutputDir(); got != "filepath" {
		t.Errorf("OutputDir = %q, want filepath", got)
	}
}

func TestKeyLooksValid(t *testing.T) {
	if !(Config{GroqAPIKey: "gsk_live_123"}).KeyLooksValid() {
		t.Error("gsk_ key should look valid")
	}
	if (Config{GroqAPIKey: "sk-other"}).KeyLooksValid() {
		t.Error("non-gsk_ key should not look valid")
	}
}
