package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/docq-labs/docq-cli/internal/adapters/driven/docsource/filesystem"
)

// defaultDocsDir is where documents are read from when no directory is given.
const defaultDocsDir = "data"

var ingestWatch bool

var ingestCmd = &cobra.Command{
	Use:   "ingest [dir]",
	Short: "Ingest text documents into the vector store",
	Long: `Reads .txt files from a directory, splits them into sentence-aligned
chunks, embeds the chunks and stores them for retrieval.

Empty files are skipped. Repeating an ingest adds new records; it does not
replace earlier ones.

With --watch the command keeps running and re-ingests whenever files in
the directory change.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runIngest,
}

func init() {
	ingestCmd.Flags().BoolVar(&ingestWatch, "watch", false, "re-ingest when files in the directory change")
	rootCmd.AddCommand(ingestCmd)
}

func runIngest(cmd *cobra.Command, args []string) error {
	if err := ensureServices(); err != nil {
		return err
	}
	if ingestService == nil {
		return errors.New("ingest service not configured")
	}

	dir := defaultDocsDir
	if len(args) > 0 {
		dir = args[0]
	}

	source := filesystem.New(dir)
	if err := ingestFrom(cmd, source, dir); err != nil {
		return err
	}

	if !ingestWatch {
		return nil
	}

	cmd.Printf("Watching %s for changes (Ctrl+C to stop)...\n", dir)
	err := source.Watch(cmd.Context(), func() error {
		return ingestFrom(cmd, source, dir)
	})
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// ingestFrom runs one load-and-ingest round over the directory.
func ingestFrom(cmd *cobra.Command, source *filesystem.Source, dir string) error {
	docs, err := source.Load(cmd.Context())
	if err != nil {
		return fmt.Errorf("load documents: %w", err)
	}
	if len(docs) == 0 {
		cmd.Printf("No documents found in %s - add .txt files first.\n", dir)
		return nil
	}

	count, err := ingestService.Ingest(cmd.Context(), docs)
	if err != nil {
		return fmt.Errorf("ingest failed: %w", err)
	}

	cmd.Printf("Ingested %d document(s).\n", count)
	return nil
}
