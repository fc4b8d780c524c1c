package cli

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusCmd_PrintsCounts(t *testing.T) {
	restore := withServices(&mockIngestor{}, &mockAnswerer{})
	defer restore()
	origStore, origSettings := vectorStore, settingsService
	vectorStore = &mockVectorStore{count: 12}
	settingsService = &mockSettingsService{}
	defer func() {
		vectorStore, settingsService = origStore, origSettings
	}()

	out, err := execute(t, "status")

	require.NoError(t, err)
	assert.Contains(t, out, "--- Status ---")
	assert.Contains(t, out, "openai (text-embedding-3-small)")
	assert.Contains(t, out, "openai (gpt-4o-mini)")
	assert.Contains(t, out, "Collection: docs")
	assert.Contains(t, out, "Chunks:     12")
}

func TestStatusCmd_CountFailure(t *testing.T) {
	restore := withServices(&mockIngestor{}, &mockAnswerer{})
	defer restore()
	origStore, origSettings := vectorStore, settingsService
	vectorStore = &mockVectorStore{err: errors.New("store closed")}
	settingsService = &mockSettingsService{}
	defer func() {
		vectorStore, settingsService = origStore, origSettings
	}()

	_, err := execute(t, "status")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "store closed")
}
