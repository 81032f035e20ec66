package models

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"
)

// GroqBaseURL is Groq's OpenAI-compatible chat completion endpoint.
const GroqBaseURL = "https://api.groq.com/openai/v1"

// GroqModelFallbacks are probed in order at construction time; the first
// model that answers is kept for the rest of the process.
var GroqModelFallbacks = []string{
	"llama3-8b-8192",
	"llama3-70b-8192",
	"gemma-7b-it",
}

const (
	defaultRequestTimeout = 60 * time.Second
	defaultMaxRetries     = 3
)

// OpenAILLM talks to any OpenAI-compatible chat completion API (OpenAI
// itself, or Groq via GroqBaseURL).
type OpenAILLM struct {
	Client       *openai.Client
	Model        string
	PromptPrefix string
	MaxRetries   int
}

// NewOpenAILLM constructs a client against the given base URL. An empty
// baseURL targets OpenAI.
func NewOpenAILLM(apiKey, baseURL, model, promptPrefix string) *OpenAILLM {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	cfg.HTTPClient = &http.Client{Timeout: defaultRequestTimeout}
	return &OpenAILLM{
		Client:       openai.NewClientWithConfig(cfg),
		Model:        model,
		PromptPrefix: promptPrefix,
		MaxRetries:   defaultMaxRetries,
	}
}

// NewGroqLLM probes the fallback model list against Groq and returns a client
// bound to the first model that responds. baseURL is overridable for tests;
// pass "" for the real endpoint.
func NewGroqLLM(ctx context.Context, apiKey, baseURL, promptPrefix string) (*OpenAILLM, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, errors.New("groq: missing API key")
	}
	if baseURL == "" {
		baseURL = GroqBaseURL
	}

	var probeErrs []string
	for _, model := range GroqModelFallbacks {
		llm := NewOpenAILLM(apiKey, baseURL, model, promptPrefix)
		if _, err := llm.Generate(ctx, "Hi"); err != nil {
			probeErrs = append(probeErrs, fmt.Sprintf("%s: %v", model, err))
			continue
		}
		return llm, nil
	}
	return nil, fmt.Errorf("groq: all models failed: %s", strings.Join(probeErrs, "; "))
}

func (o *OpenAILLM) Generate(ctx context.Context, prompt string) (any, error) {
	fullPrompt := prompt
	if o.PromptPrefix != "" {
		fullPrompt = o.PromptPrefix + "\n" + prompt
	}

	attempts := o.MaxRetries
	if attempts <= 0 {
		attempts = 1
	}

	var lastErr error
	for attempt := 0; attempt < attempts; attempt++ {
		resp, err := o.Client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
			Model:       o.Model,
			Temperature: 0,
			Messages: []openai.ChatCompletionMessage{{
				Role:    openai.ChatMessageRoleUser,
				Content: fullPrompt,
			}},
		})
		if err != nil {
			lastErr = err
			if ctx.Err() != nil {
				break
			}
			continue
		}
		if len(resp.Choices) == 0 {
			return nil, errors.New("no response from completion API")
		}
		return resp.Choices[0].Message.Content, nil
	}
	return nil, lastErr
}

var _ Agent = (*OpenAILLM)(nil)
