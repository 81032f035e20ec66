package agent

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/reagent-labs/reagent/pkg/models"
)

// DefaultMaxSteps bounds the decide/execute loop. The model choosing to stop
// is the only natural terminator, so the runner enforces a ceiling.
const DefaultMaxSteps = 15

// ErrMaxStepsExceeded reports a run that hit the step ceiling before the
// model produced a final answer. The RunState returned alongside it holds the
// full transcript, so callers can render the run as inconclusive rather than
// failed.
var ErrMaxStepsExceeded = errors.New("agent: max steps exceeded without a final answer")

type loopPhase int

const (
	phaseDeciding loopPhase = iota
	phaseExecuting
	phaseDone
)

// Runner drives the ReAct loop: ask the model what should happen next,
// execute the tool it names, feed the observation back, repeat until the
// model emits a final answer.
type Runner struct {
	model        models.Agent
	catalog      *Catalog
	systemPrompt string
	maxSteps     int
	logger       *zap.Logger
}

// RunnerOptions configure a new Runner.
type RunnerOptions struct {
	Model        models.Agent
	Catalog      *Catalog
	SystemPrompt string
	MaxSteps     int
	Logger       *zap.Logger
}

// NewRunner creates a Runner with the provided options.
func NewRunner(opts RunnerOptions) (*Runner, error) {
	if opts.Model == nil {
		return nil, errors.New("runner requires a language model")
	}
	if opts.Catalog == nil {
		return nil, errors.New("runner requires a tool catalog")
	}
	maxSteps := opts.MaxSteps
	if maxSteps <= 0 {
		maxSteps = DefaultMaxSteps
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Runner{
		model:        opts.Model,
		catalog:      opts.Catalog,
		systemPrompt: opts.SystemPrompt,
		maxSteps:     maxSteps,
		logger:       logger,
	}, nil
}

// Run processes one task start to finish and returns the final run state.
// Tool-level failures (unknown tool name, tool errors) become observations
// and the loop continues; only model transport errors and the step ceiling
// abort the run.
func (r *Runner) Run(ctx context.Context, sessionID, input string) (RunState, error) {
	return r.RunWithHistory(ctx, sessionID, input, nil)
}

// RunWithHistory is Run with prior chat turns replayed into every prompt.
func (r *Runner) RunWithHistory(ctx context.Context, sessionID, input string, history []Message) (RunState, error) {
	state := RunState{Input: input, ChatHistory: history}
	if strings.TrimSpace(input) == "" {
		return state, errors.New("user input is empty")
	}

	var held *Action
	step := 0
	phase := phaseDeciding

	for {
		switch phase {
		case phaseDeciding:
			if err := ctx.Err(); err != nil {
				return state, err
			}
			if step >= r.maxSteps {
				return state, ErrMaxStepsExceeded
			}
			step++

			prompt := BuildPrompt(r.systemPrompt, r.catalog.Specs(), state)
			completion, err := r.model.Generate(ctx, prompt)
			if err != nil {
				return state, fmt.Errorf("model generate: %w", err)
			}
			raw := fmt.Sprint(completion)
			r.logger.Debug("model response",
				zap.String("session", sessionID),
				zap.Int("step", step),
				zap.String("response", raw),
			)

			decision := ParseDecision(raw)
			state.Outcome = &decision
			if decision.Finish != nil {
				phase = phaseDone
				break
			}
			held = decision.Action
			phase = phaseExecuting

		case phaseExecuting:
			// Always back to deciding: observations are re-offered to the
			// model before termination, even when the tool failed.
			observation := r.execute(ctx, sessionID, *held)
			state.Steps = append(state.Steps, Step{Action: *held, Observation: observation})
			r.logger.Debug("tool observation",
				zap.String("session", sessionID),
				zap.String("tool", held.Tool),
				zap.String("input", held.Input),
				zap.String("observation", observation),
			)
			held = nil
			phase = phaseDeciding

		case phaseDone:
			return state, nil
		}
	}
}

// execute resolves and invokes the named tool. Failures are converted to
// observation strings at this boundary; they never propagate.
func (r *Runner) execute(ctx context.Context, sessionID string, action Action) string {
	tool, spec, ok := r.catalog.Lookup(action.Tool)
	if !ok {
		return fmt.Sprintf("Error: unknown tool %q. Available tools: %s", action.Tool, r.catalog.Names())
	}
	response, err := tool.Invoke(ctx, ToolRequest{SessionID: sessionID, Input: action.Input})
	if err != nil {
		return fmt.Sprintf("Tool execution error for tool %q with input %q: %v", spec.Name, action.Input, err)
	}
	return response.Content
}

// Output returns the final answer if the run reached one.
func (s RunState) Output() string {
	if s.Outcome == nil || s.Outcome.Finish == nil {
		return ""
	}
	return s.Outcome.Finish.Output
}
