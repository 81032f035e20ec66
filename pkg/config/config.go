// Package config builds the explicit configuration object the entry points
// pass down to the runner and tools. All behavior is driven by environment
// variables; a .env file in the working directory is honored when present.
package config

import (
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config carries everything the entry points need. It is constructed once in
// main and passed down; nothing reads the environment after Load returns.
type Config struct {
	// Provider selects the LLM backend; defaults to "groq".
	Provider string
	// Model is the model name for providers without a fallback chain.
	Model string
	// GroqAPIKey is required by the default provider.
	GroqAPIKey string
	// Database is a SQLite file path.
	Database string
	// PostgresURL overrides Database when set.
	PostgresURL string
	// GitHubToken authorizes the GitHub tools.
	GitHubToken string
	// SchemaFile is the SQL script consumed by dbinit.
	SchemaFile string
	// MaxSteps bounds the agent loop; 0 means the runner default.
	MaxSteps int
}

// Load reads the environment, after a best-effort .env load.
func Load() Config {
	_ = godotenv.Load()

	maxSteps, _ := strconv.Atoi(os.Getenv("AGENT_MAX_STEPS"))

	provider := strings.TrimSpace(os.Getenv("LLM_PROVIDER"))
	if provider == "" {
		provider = "groq"
	}
	schemaFile := strings.TrimSpace(os.Getenv("DB_SCHEMA"))
	if schemaFile == "" {
		schemaFile = "db_content.txt"
	}

	return Config{
		Provider:    provider,
		Model:       strings.TrimSpace(os.Getenv("LLM_MODEL")),
		GroqAPIKey:  strings.TrimSpace(os.Getenv("GROQ_API_KEY")),
		Database:    strings.TrimSpace(os.Getenv("DATABASE")),
		PostgresURL: strings.TrimSpace(os.Getenv("POSTGRES_URL")),
		GitHubToken: strings.TrimSpace(os.Getenv("GITHUB_TOKEN")),
		SchemaFile:  schemaFile,
		MaxSteps:    maxSteps,
	}
}

// DatabaseSource returns the connection source for sqldb.Open, preferring
// Postgres when both are configured.
func (c Config) DatabaseSource() (string, error) {
	if c.PostgresURL != "" {
		return c.PostgresURL, nil
	}
	if c.Database != "" {
		return c.Database, nil
	}
	return "", errors.New("neither POSTGRES_URL nor DATABASE is set")
}

// OutputDir is where the file tools read and write: the directory holding
// the SQLite database file, or ./filepath when running against Postgres.
func (c Config) OutputDir() string {
	if c.Database != "" {
		if abs, err := filepath.Abs(c.Database); err == nil {
			return filepath.Dir(abs)
		}
	}
	return "filepath"
}

// KeyLooksValid reports whether the Groq key carries the expected prefix.
// A mismatch is worth a warning, not a refusal.
func (c Config) KeyLooksValid() bool {
	return strings.HasPrefix(c.GroqAPIKey, "gsk_")
}
