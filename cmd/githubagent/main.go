// Command githubagent runs the GitHub agent against a fixed compound task:
// search for a repository, fetch its details, then list its open issues.
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
	"github.com/reagent-labs/reagent/pkg/tools"
)

const githubTask = "First, search for GitHub repositories related to 'microsoft/vscode'. " +
	"From the search results, identify the main 'microsoft/vscode' repository. " +
	"Then, get detailed information about that specific 'microsoft/vscode' repository. " +
	"Finally, list the open issues for the 'microsoft/vscode' repository. " +
	"Please ensure you use the exact 'owner/repo_name' format when calling tools that require it."

func main() {
	logger, err := zap.NewDevelopment()
	if err != nil {
		fmt.Fprintln(os.Stderr, "logger init:", err)
		os.Exit(1)
	}
	defer logger.Sync()

	cfg := config.Load()
	ctx := context.Background()

	if cfg.GitHubToken == "" {
		logger.Fatal("GITHUB_TOKEN environment variable not set")
	}

	model, err := models.NewLLMProvider(ctx, cfg.Provider, cfg.Model, "")
	if err != nil {
		logger.Fatal("LLM initialization failed", zap.Error(err))
	}

	github := tools.NewGitHubClient(cfg.GitHubToken)
	catalog, err := agent.NewCatalog(
		&tools.SearchRepositoriesTool{GitHub: github},
		&tools.RepoDetailsTool{GitHub: github},
		&tools.CreateIssueTool{GitHub: github},
		&tools.ListIssuesTool{GitHub: github},
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

	state, err := runner.Run(ctx, uuid.NewString(), githubTask)
	switch {
	case errors.Is(err, agent.ErrMaxStepsExceeded):
		fmt.Printf("Inconclusive after %d steps.\n", len(state.Steps))
	case err != nil:
		logger.Fatal("agent run failed", zap.Error(err))
	default:
		fmt.Printf("Final result: %s\n", state.Output())
	}
}
