package driven

// PromptStore provides access to LLM prompt templates.
// Implementations may load prompts from files, embed them in the binary,
// or fetch them from a remote configuration service.
type PromptStore interface {
	// Load returns the prompt template for the given name.
	// If the prompt is not found, implementations should return a sensible
	// default or an error, depending on whether the prompt is required.
	Load(name string) (string, error)

	// Reload clears any cached prompts, forcing fresh loads on next access.
	Reload()
}

// Well-known prompt names used throughout the application.
const (
	// PromptAnswer is the grounded answer-generation prompt.
	// The template expects two %s placeholders: context, then question.
	// Its contract: answer only from the given context, reply with the
	// exact insufficient-information sentence when the context does not
	// contain the answer, keep answers to 2-4 sentences, and cite at most
	// one source.
	PromptAnswer = "answer"
)
