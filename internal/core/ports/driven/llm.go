package driven

import "context"

// LLMService provides text generation for grounded answering.
//
// Implementations may include:
//   - OpenAI (gpt-4o-mini and friends)
//   - Anthropic (Claude)
//   - Ollama (local models)
//
// The prompt contract is owned by the caller: services format the answer
// prompt (context block plus the user's original question) before calling
// Generate.
type LLMService interface {
	// Generate produces a text completion for the prompt.
	Generate(ctx context.Context, prompt string, opts GenerateOptions) (string, error)

	// ModelName returns the name of the model being used.
	ModelName() string

	// Close releases resources.
	Close() error
}

// GenerateOptions configures text generation behaviour.
type GenerateOptions struct {
	// MaxTokens is the maximum number of tokens to generate.
	MaxTokens int

	// Temperature controls randomness (0.0 = deterministic, 1.0 = creative).
	Temperature float64
}
