// Package filesystem provides a document source that loads plain text files
// from a local directory.
package filesystem

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/docq-labs/docq-cli/internal/core/domain"
	"github.com/docq-labs/docq-cli/internal/core/ports/driven"
	"github.com/docq-labs/docq-cli/internal/logger"
)

// Ensure Source implements the interface.
var _ driven.DocumentSource = (*Source)(nil)

// DefaultExtension is the file extension loaded by default.
const DefaultExtension = ".txt"

// Source loads documents from text files in a directory. Files are read
// in lexical order so repeated ingests produce the same document order.
type Source struct {
	dir       string
	extension string
}

// Option configures a Source.
type Option func(*Source)

// WithExtension overrides the file extension to load (including the dot).
func WithExtension(ext string) Option {
	return func(s *Source) {
		if ext != "" {
			s.extension = ext
		}
	}
}

// New creates a document source reading from the given directory.
func New(dir string, opts ...Option) *Source {
	s := &Source{
		dir:       dir,
		extension: DefaultExtension,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load reads all matching files from the directory. Files whose content is
// empty or whitespace-only are skipped. A missing directory is an error;
// an empty one yields no documents.
func (s *Source) Load(ctx context.Context) ([]domain.Document, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("reading directory %s: %w", s.dir, err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if strings.EqualFold(filepath.Ext(entry.Name()), s.extension) {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)

	var docs []domain.Document
	for _, name := range names {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		content, err := os.ReadFile(filepath.Join(s.dir, name))
		if err != nil {
			return nil, fmt.Errorf("reading file %s: %w", name, err)
		}

		if strings.TrimSpace(string(content)) == "" {
			logger.Debug("Skipping empty file: %s", name)
			continue
		}

		docs = append(docs, domain.Document{
			Content: string(content),
			Metadata: map[string]any{
				domain.MetaSource: name,
			},
		})
	}

	logger.Debug("Loaded %d document(s) from %s", len(docs), s.dir)
	return docs, nil
}
