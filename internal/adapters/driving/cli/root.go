// Package cli implements the command-line driving adapter.
// Commands wire the driven adapters into the core services and expose the
// ingest and ask pipelines.
package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/docq-labs/docq-cli/internal/adapters/driven/ai"
	"github.com/docq-labs/docq-cli/internal/adapters/driven/config/file"
	"github.com/docq-labs/docq-cli/internal/adapters/driven/embedding/retrying"
	"github.com/docq-labs/docq-cli/internal/adapters/driven/storage/sqlite"
	"github.com/docq-labs/docq-cli/internal/chunker"
	"github.com/docq-labs/docq-cli/internal/core/domain"
	"github.com/docq-labs/docq-cli/internal/core/ports/driven"
	"github.com/docq-labs/docq-cli/internal/core/ports/driving"
	"github.com/docq-labs/docq-cli/internal/core/services"
	"github.com/docq-labs/docq-cli/internal/logger"
	"github.com/docq-labs/docq-cli/internal/retry"
)

// version is set at build time via ldflags.
var version = "dev"

// Services used by commands. Populated by ensureServices, or injected
// directly by tests.
var (
	ingestService   driving.Ingestor
	askService      driving.Answerer
	settingsService driving.SettingsService
	vectorStore     driven.VectorStore
)

var (
	verbose   bool
	configDir string
	dataDir   string

	// llmModelOverride is set by the ask command's --model flag before
	// services are wired.
	llmModelOverride string
)

var rootCmd = &cobra.Command{
	Use:   "docq",
	Short: "Ask questions about your documents",
	Long: `Docq is a local retrieval pipeline for plain text documents.

It chunks and embeds your .txt files into a vector store, then answers
questions grounded in the most relevant chunks, citing their sources.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose debug output")
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "config directory (default ~/.docq)")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "", "data directory (default ~/.docq/data)")
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// ensureServices wires the driven adapters into the core services.
// Already-populated services (from tests) are left alone.
func ensureServices() error {
	if ingestService != nil && askService != nil {
		return nil
	}

	// .env is optional; environment variables win over config file values
	if err := godotenv.Load(); err != nil {
		logger.Debug("No .env file loaded: %v", err)
	}

	configStore, err := file.NewConfigStore(configDir)
	if err != nil {
		return fmt.Errorf("open config store: %w", err)
	}
	if settingsService == nil {
		settingsService = services.NewSettingsService(configStore)
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}
	applyEnvOverrides(settings)
	if llmModelOverride != "" {
		settings.LLM.Model = llmModelOverride
	}

	embedder, err := buildEmbedder(settings)
	if err != nil {
		return err
	}

	llm, err := buildLLM(settings)
	if err != nil {
		return err
	}

	if vectorStore == nil {
		store, err := sqlite.NewStore(dataDir, settings.Retrieval.Collection)
		if err != nil {
			return fmt.Errorf("open vector store: %w", err)
		}
		vectorStore = store
	}

	promptDir := ""
	if configDir != "" {
		promptDir = filepath.Join(configDir, "prompts")
	}
	prompts, err := file.NewPromptStore(promptDir)
	if err != nil {
		return fmt.Errorf("open prompt store: %w", err)
	}

	splitter := chunker.New(
		chunker.WithChunkSize(settings.Chunk.Size),
		chunker.WithOverlap(settings.Chunk.Overlap),
	)

	if ingestService == nil {
		ingestService = services.NewIngestService(splitter, embedder, vectorStore)
	}
	if askService == nil {
		askService = services.NewQueryService(
			embedder, vectorStore, llm, prompts,
			services.WithTopK(settings.Retrieval.TopK),
		)
	}

	return nil
}

// applyEnvOverrides lets environment variables supply API keys without
// writing them to the config file.
func applyEnvOverrides(settings *domain.AppSettings) {
	if key := os.Getenv("OPENAI_API_KEY"); key != "" && settings.Embedding.APIKey == "" {
		settings.Embedding.APIKey = key
	}
	if key := os.Getenv("OPENAI_API_KEY"); key != "" && settings.LLM.APIKey == "" &&
		settings.LLM.Provider == domain.AIProviderOpenAI {
		settings.LLM.APIKey = key
	}
	if key := os.Getenv("ANTHROPIC_API_KEY"); key != "" && settings.LLM.APIKey == "" &&
		settings.LLM.Provider == domain.AIProviderAnthropic {
		settings.LLM.APIKey = key
	}
}

// buildEmbedder creates the configured embedding service wrapped in the
// retry decorator.
func buildEmbedder(settings *domain.AppSettings) (driven.EmbeddingService, error) {
	inner, err := ai.CreateEmbeddingService(&settings.Embedding)
	if err != nil {
		return nil, fmt.Errorf("create embedding service: %w", err)
	}

	policy := retry.Policy{
		Attempts:  settings.Retry.Attempts,
		BaseDelay: time.Duration(settings.Retry.BaseDelaySeconds * float64(time.Second)),
	}
	opts := []retrying.Option{retrying.WithPolicy(policy)}
	if settings.Embedding.RateLimit > 0 {
		opts = append(opts, retrying.WithRateLimit(settings.Embedding.RateLimit))
	}
	return retrying.Wrap(inner, opts...), nil
}

// buildLLM creates the configured LLM service.
func buildLLM(settings *domain.AppSettings) (driven.LLMService, error) {
	svc, err := ai.CreateLLMService(&settings.LLM)
	if err != nil {
		return nil, fmt.Errorf("create LLM service: %w", err)
	}
	return svc, nil
}
