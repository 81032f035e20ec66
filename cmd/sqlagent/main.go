// Command sqlagent runs the SQL/file agent: count the users in the database,
// write the result to db_result.txt, then read the file back through the
// agent with the first exchange carried as history.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/reagent-labs/reagent/pkg/agent"
	"github.com/reagent-labs/reagent/pkg/config"
	"github.com/reagent-labs/reagent/pkg/models"
	"github.com/reagent-labs/reagent/pkg/sqldb"
	"github.com/reagent-labs/reagent/pkg/tools"
)

const countUsersTask = "Find out how many users are in the database and write the result to a file. " +
	"The SQL query to count users is 'SELECT COUNT(*) FROM users;'. " +
	"Use the write_query_result_to_file tool with the format 'SQL: <your_sql_query>'."

func main() {
	logger, err := zap.NewDevelopment()
	if err != nil {
		fmt.Fprintln(os.Stderr, "logger init:", err)
		os.Exit(1)
	}
	defer logger.Sync()

	cfg := config.Load()
	ctx := context.Background()

	source, err := cfg.DatabaseSource()
	if err != nil {
		logger.Fatal("database configuration missing", zap.Error(err))
	}
	store, err := sqldb.Open(source)
	if err != nil {
		logger.Fatal("database connection failed", zap.Error(err))
	}
	defer store.Close()
	if err := store.Ping(ctx); err != nil {
		logger.Fatal("database unreachable", zap.Error(err))
	}

	model, err := models.NewLLMProvider(ctx, cfg.Provider, cfg.Model, "")
	if err != nil {
		logger.Fatal("LLM initialization failed", zap.Error(err))
	}

	outputDir := cfg.OutputDir()
	catalog, err := agent.NewCatalog(
		&tools.SQLQueryTool{DB: store},
		&tools.WriteQueryResultTool{DB: store, OutputDir: outputDir},
		&tools.ReadFileTool{BaseDir: outputDir},
	)
	if err != nil {
		logger.Fatal("tool registration failed", zap.Error(err))
	}

	runner, err := agent.NewRunner(agent.RunnerOptions{
		Model:    model,
		Catalog:  catalog,
		MaxSteps: cfg.MaxSteps,
		Logger:   logger,
	})
	if err != nil {
		logger.Fatal("runner setup failed", zap.Error(err))
	}

	sessionID := uuid.NewString()

	state, err := runner.Run(ctx, sessionID, countUsersTask)
	if errors.Is(err, agent.ErrMaxStepsExceeded) {
		fmt.Printf("Inconclusive after %d steps.\n", len(state.Steps))
		return
	}
	if err != nil {
		logger.Fatal("agent run failed", zap.Error(err))
	}
	fmt.Printf("Agent response for DB query: %s\n", state.Output())

	history := []agent.Message{
		{Role: "user", Content: countUsersTask},
		{Role: "assistant", Content: state.Output()},
	}
	readState, err := runner.RunWithHistory(ctx, sessionID, "Read the file 'db_result.txt'", history)
	if errors.Is(err, agent.ErrMaxStepsExceeded) {
		fmt.Printf("Inconclusive after %d steps.\n", len(readState.Steps))
		return
	}
	if err != nil {
		logger.Fatal("agent run failed", zap.Error(err))
	}
	fmt.Printf("Content of %s: %s\n", tools.QueryResultFileName, readState.Output())
}
