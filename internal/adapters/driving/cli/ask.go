package cli

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/docq-labs/docq-cli/internal/adapters/driven/docsource/filesystem"
	"github.com/docq-labs/docq-cli/internal/core/domain"
	"github.com/docq-labs/docq-cli/internal/core/ports/driving"
)

var (
	askTopK        int
	askNoIngest    bool
	askDumpContext bool
	askDocsDir     string
)

var askCmd = &cobra.Command{
	Use:   "ask [question]",
	Short: "Ask a question about your documents",
	Long: `Embeds the question, retrieves the most relevant chunks and asks the
LLM for an answer grounded in them.

Unless --no-ingest is given, documents are ingested from the docs
directory first so the store reflects the current files. When no
question argument is given, one is read interactively.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAsk,
}

func init() {
	askCmd.Flags().IntVar(&askTopK, "k", 0, "number of chunks to retrieve (0 = configured default)")
	askCmd.Flags().BoolVar(&askNoIngest, "no-ingest", false, "skip ingestion before asking")
	askCmd.Flags().BoolVar(&askDumpContext, "dump-context", false, "print retrieved chunks for debugging")
	askCmd.Flags().StringVar(&askDocsDir, "docs-dir", defaultDocsDir, "directory to ingest documents from")
	askCmd.Flags().StringVar(&llmModelOverride, "model", "", "override the configured LLM model")
	rootCmd.AddCommand(askCmd)
}

func runAsk(cmd *cobra.Command, args []string) error {
	if err := ensureServices(); err != nil {
		return err
	}
	if askService == nil {
		return errors.New("ask service not configured")
	}

	if !askNoIngest {
		if err := ingestBeforeAsk(cmd); err != nil {
			return err
		}
	}

	question := ""
	if len(args) > 0 {
		question = args[0]
	}
	if strings.TrimSpace(question) == "" {
		cmd.Print("\nAsk a question about your documents: ")
		reader := bufio.NewReader(os.Stdin)
		line, _ := reader.ReadString('\n')
		question = strings.TrimSpace(line)
	}
	if question == "" {
		return errors.New("no question given")
	}

	result, err := askService.Ask(cmd.Context(), question, driving.AskOptions{TopK: askTopK})
	if err != nil {
		return err
	}

	printResult(cmd, result)
	return nil
}

// ingestBeforeAsk refreshes the store from the docs directory. A missing
// directory is not fatal; the question is answered from whatever is stored.
func ingestBeforeAsk(cmd *cobra.Command) error {
	docs, err := filesystem.New(askDocsDir).Load(cmd.Context())
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			cmd.Printf("No documents found in %s - add .txt files first.\n", askDocsDir)
			return nil
		}
		return err
	}
	if len(docs) == 0 {
		cmd.Printf("No documents found in %s - add .txt files first.\n", askDocsDir)
		return nil
	}

	count, err := ingestService.Ingest(cmd.Context(), docs)
	if err != nil {
		return err
	}
	cmd.Printf("Ingested %d document(s).\n", count)
	return nil
}

func printResult(cmd *cobra.Command, result *domain.RetrievalResult) {
	cmd.Println()
	cmd.Println(headingStyle.Render("--- Answer ---"))
	cmd.Println()
	cmd.Println(result.Answer)

	if len(result.Sources) > 0 {
		cmd.Println()
		cmd.Println(headingStyle.Render("--- Sources ---"))
		for _, source := range result.Sources {
			cmd.Println(sourceStyle.Render("- " + source))
		}
	}

	if askDumpContext {
		cmd.Println()
		cmd.Println(headingStyle.Render("--- Retrieved Chunks (debug) ---"))
		for i, text := range result.ContextDocs {
			hit := domain.Hit{Metadata: result.ContextMetas[i]}
			label := chunkLabelStyle.Render(
				fmt.Sprintf("[%s, chunk=%d]", hit.Source(), hit.ChunkIndex()))
			cmd.Printf("%s %s\n", label, snippet(text, 200))
		}
	}
}

// snippet truncates text to at most n runes with an ellipsis.
func snippet(text string, n int) string {
	runes := []rune(text)
	if len(runes) <= n {
		return text
	}
	return string(runes[:n]) + "..."
}
