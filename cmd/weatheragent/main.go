// Command weatheragent runs the calculator/weather agent against two fixed
// example tasks. Behavior is driven entirely by environment variables; see
// pkg/config.
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

func main() {
	logger, err := zap.NewDevelopment()
	if err != nil {
		fmt.Fprintln(os.Stderr, "logger init:", err)
		os.Exit(1)
	}
	defer logger.Sync()

	cfg := config.Load()
	ctx := context.Background()

	if cfg.Provider == "groq" && !cfg.KeyLooksValid() {
		logger.Warn("GROQ_API_KEY does not start with 'gsk_'")
	}

	model, err := models.NewLLMProvider(ctx, cfg.Provider, cfg.Model, "")
	if err != nil {
		logger.Fatal("LLM initialization failed", zap.Error(err))
	}

	catalog, err := agent.NewCatalog(
		&tools.CalculatorTool{},
		tools.NewWeatherTool(),
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
	tasks := []string{
		"Calculate 15 * 7 + 23",
		"What's the weather in Lagos?",
	}

	for _, task := range tasks {
		state, err := runner.Run(ctx, sessionID, task)
		switch {
		case errors.Is(err, agent.ErrMaxStepsExceeded):
			fmt.Printf("Inconclusive after %d steps: %s\n", len(state.Steps), task)
		case err != nil:
			logger.Fatal("agent run failed", zap.String("task", task), zap.Error(err))
		default:
			fmt.Printf("%s\n=> %s\n\n", task, state.Output())
		}
	}
}
