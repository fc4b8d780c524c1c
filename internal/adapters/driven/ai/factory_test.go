package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docq-labs/docq-cli/internal/core/domain"
)

func TestCreateEmbeddingService(t *testing.T) {
	t.Run("ollama needs no API key", func(t *testing.T) {
		svc, err := CreateEmbeddingService(&domain.EmbeddingSettings{
			Provider: domain.AIProviderOllama,
			Model:    "nomic-embed-text",
		})
		require.NoError(t, err)
		require.NotNil(t, svc)
		assert.Equal(t, "nomic-embed-text", svc.ModelName())
	})

	t.Run("openai requires API key", func(t *testing.T) {
		svc, err := CreateEmbeddingService(&domain.EmbeddingSettings{
			Provider: domain.AIProviderOpenAI,
		})
		require.Error(t, err)
		assert.Nil(t, svc)
	})

	t.Run("openai with key succeeds", func(t *testing.T) {
		svc, err := CreateEmbeddingService(&domain.EmbeddingSettings{
			Provider: domain.AIProviderOpenAI,
			APIKey:   "sk-test",
		})
		require.NoError(t, err)
		require.NotNil(t, svc)
	})

	t.Run("anthropic is rejected", func(t *testing.T) {
		svc, err := CreateEmbeddingService(&domain.EmbeddingSettings{
			Provider: domain.AIProviderAnthropic,
			APIKey:   "sk-test",
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrConfiguration)
		assert.Nil(t, svc)
	})

	t.Run("unknown provider is rejected", func(t *testing.T) {
		_, err := CreateEmbeddingService(&domain.EmbeddingSettings{
			Provider: domain.AIProvider("mystery"),
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrConfiguration)
	})

	t.Run("nil settings is rejected", func(t *testing.T) {
		_, err := CreateEmbeddingService(nil)
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrConfiguration)
	})
}

func TestCreateLLMService(t *testing.T) {
	t.Run("ollama needs no API key", func(t *testing.T) {
		svc, err := CreateLLMService(&domain.LLMSettings{
			Provider: domain.AIProviderOllama,
			Model:    "llama3.2",
		})
		require.NoError(t, err)
		require.NotNil(t, svc)
		assert.Equal(t, "llama3.2", svc.ModelName())
	})

	t.Run("openai requires API key", func(t *testing.T) {
		svc, err := CreateLLMService(&domain.LLMSettings{
			Provider: domain.AIProviderOpenAI,
		})
		require.Error(t, err)
		assert.Nil(t, svc)
	})

	t.Run("anthropic with key succeeds", func(t *testing.T) {
		svc, err := CreateLLMService(&domain.LLMSettings{
			Provider: domain.AIProviderAnthropic,
			APIKey:   "sk-ant-test",
		})
		require.NoError(t, err)
		require.NotNil(t, svc)
	})

	t.Run("unknown provider is rejected", func(t *testing.T) {
		_, err := CreateLLMService(&domain.LLMSettings{
			Provider: domain.AIProvider("mystery"),
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrConfiguration)
	})
}
