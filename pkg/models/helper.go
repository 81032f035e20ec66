package models

import (
	"context"
	"errors"
	"fmt"
	"os"
)

// ErrUnknownProvider reports a provider name outside the supported set.
var ErrUnknownProvider = errors.New("unknown provider")

// NewLLMProvider returns a concrete Agent for the named provider.
func NewLLMProvider(ctx context.Context, provider, model, promptPrefix string) (Agent, error) {
	switch provider {
	case "groq", "":
		return NewGroqLLM(ctx, os.Getenv("GROQ_API_KEY"), "", promptPrefix)
	case "openai":
		return NewOpenAILLM(os.Getenv("OPENAI_API_KEY"), "", model, promptPrefix), nil
	case "anthropic", "claude":
		return NewAnthropicLLM(model, promptPrefix), nil
	case "gemini", "google":
		return NewGeminiLLM(ctx, model, promptPrefix)
	case "ollama":
		return NewOllamaLLM(model, promptPrefix)
	case "dummy":
		return NewDummyLLM(promptPrefix), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownProvider, provider)
	}
}
