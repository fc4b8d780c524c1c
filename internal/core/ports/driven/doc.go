// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - EmbeddingService: turns text into vectors (the only retried collaborator)
//   - VectorStore: keyed nearest-neighbour persistence
//   - LLMService: answer generation from assembled context
//   - DocumentSource: supplies documents for ingestion
//
// # Optional Interfaces
//
//   - PromptStore: overrides the built-in answer prompt
//   - ConfigStore: application configuration persistence
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
