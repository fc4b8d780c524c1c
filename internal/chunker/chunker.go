// Package chunker provides sentence-aware text segmentation with a size bound.
package chunker

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// DefaultChunkSize is the default maximum number of characters per chunk.
const DefaultChunkSize = 500

// DefaultOverlap is the default requested overlap between chunks.
const DefaultOverlap = 40

// Splitter segments text into bounded-size, sentence-aligned chunks.
// A single sentence longer than the bound becomes its own oversized chunk
// rather than being truncated.
type Splitter struct {
	chunkSize int
	overlap   int
}

// Option configures the splitter.
type Option func(*Splitter)

// WithChunkSize sets the maximum chunk size in characters.
func WithChunkSize(size int) Option {
	return func(s *Splitter) {
		if size > 0 {
			s.chunkSize = size
		}
	}
}

// WithOverlap sets the requested overlap between chunks in characters.
// The option is accepted for forward compatibility; sentence-aligned
// packing does not currently apply it.
func WithOverlap(overlap int) Option {
	return func(s *Splitter) {
		if overlap >= 0 {
			s.overlap = overlap
		}
	}
}

// New creates a splitter with the given options.
func New(opts ...Option) *Splitter {
	s := &Splitter{
		chunkSize: DefaultChunkSize,
		overlap:   DefaultOverlap,
	}

	for _, opt := range opts {
		opt(s)
	}

	if s.overlap >= s.chunkSize {
		s.overlap = s.chunkSize / 4
	}

	return s
}

// ChunkSize returns the configured maximum chunk size.
func (s *Splitter) ChunkSize() int {
	return s.chunkSize
}

// Split segments text into chunks. Sentences are packed greedily into each
// chunk, joined by single spaces, without ever splitting a sentence across
// chunks. Chunk order equals sentence order. Empty input yields nil; text
// without terminal punctuation comes back as a single chunk.
func (s *Splitter) Split(text string) []string {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	var chunks []string
	var buf []string
	currentLen := 0

	flush := func() {
		if len(buf) > 0 {
			chunks = append(chunks, strings.Join(buf, " "))
		}
	}

	for _, sentence := range splitSentences(text) {
		sentence = strings.TrimSpace(sentence)
		if sentence == "" {
			continue
		}

		length := utf8.RuneCountInString(sentence)
		candidate := length
		if currentLen > 0 {
			candidate++ // joining space
		}

		if currentLen+candidate <= s.chunkSize {
			buf = append(buf, sentence)
			currentLen += candidate
		} else {
			flush()
			buf = []string{sentence}
			currentLen = length
		}
	}
	flush()

	// Degenerate inputs (no sentence boundaries found) pass through whole.
	if len(chunks) == 0 {
		chunks = []string{text}
	}

	return chunks
}

// splitSentences cuts text at `.`, `!` or `?` followed by whitespace.
// Each sentence keeps its terminator; the separating whitespace is dropped.
func splitSentences(text string) []string {
	var sentences []string
	var current strings.Builder

	runes := []rune(text)
	for i, r := range runes {
		current.WriteRune(r)
		if isTerminator(r) && i+1 < len(runes) && unicode.IsSpace(runes[i+1]) {
			sentences = append(sentences, current.String())
			current.Reset()
		}
	}

	if current.Len() > 0 {
		sentences = append(sentences, current.String())
	}

	return sentences
}

func isTerminator(r rune) bool {
	return r == '.' || r == '!' || r == '?'
}
