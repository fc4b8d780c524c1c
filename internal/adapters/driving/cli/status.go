package cli

import (
	"errors"

	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show vector store status",
	Long:  `Shows the configured providers and how many chunks are stored.`,
	RunE:  runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, _ []string) error {
	if err := ensureServices(); err != nil {
		return err
	}
	if vectorStore == nil {
		return errors.New("vector store not configured")
	}
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return err
	}

	count, err := vectorStore.Count(cmd.Context())
	if err != nil {
		return err
	}

	cmd.Println(headingStyle.Render("--- Status ---"))
	cmd.Printf("Embedding:  %s (%s)\n", settings.Embedding.Provider, settings.Embedding.Model)
	cmd.Printf("LLM:        %s (%s)\n", settings.LLM.Provider, settings.LLM.Model)
	cmd.Printf("Collection: %s\n", settings.Retrieval.Collection)
	cmd.Printf("Chunks:     %d\n", count)
	return nil
}
