package chunker

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestNew(t *testing.T) {
	t.Run("default values", func(t *testing.T) {
		s := New()
		if s.chunkSize != DefaultChunkSize {
			t.Errorf("expected chunkSize %d, got %d", DefaultChunkSize, s.chunkSize)
		}
		if s.overlap != DefaultOverlap {
			t.Errorf("expected overlap %d, got %d", DefaultOverlap, s.overlap)
		}
	})

	t.Run("custom chunk size", func(t *testing.T) {
		s := New(WithChunkSize(200))
		if s.chunkSize != 200 {
			t.Errorf("expected chunkSize 200, got %d", s.chunkSize)
		}
	})

	t.Run("overlap exceeds chunk size", func(t *testing.T) {
		s := New(WithChunkSize(100), WithOverlap(150))
		if s.overlap >= s.chunkSize {
			t.Error("overlap should be reduced when it exceeds chunk size")
		}
	})

	t.Run("zero values ignored", func(t *testing.T) {
		s := New(WithChunkSize(0), WithOverlap(-1))
		if s.chunkSize != DefaultChunkSize {
			t.Errorf("expected default chunkSize, got %d", s.chunkSize)
		}
		if s.overlap != DefaultOverlap {
			t.Errorf("expected default overlap, got %d", s.overlap)
		}
	})
}

func TestSplitter_Split_EmptyInput(t *testing.T) {
	s := New()
	if got := s.Split(""); got != nil {
		t.Errorf("expected nil for empty input, got %v", got)
	}
	if got := s.Split("   \n\t "); got != nil {
		t.Errorf("expected nil for whitespace input, got %v", got)
	}
}

func TestSplitter_Split_ShortText(t *testing.T) {
	s := New()
	text := "One sentence. Another sentence follows it."

	chunks := s.Split(text)
	if len(chunks) != 1 {
		t.Fatalf("expected 1 chunk, got %d", len(chunks))
	}
	if chunks[0] != text {
		t.Errorf("expected chunk to equal trimmed input, got %q", chunks[0])
	}
}

func TestSplitter_Split_NoTerminators(t *testing.T) {
	s := New(WithChunkSize(10))
	text := "a heading with no terminal punctuation at all"

	chunks := s.Split(text)
	if len(chunks) != 1 {
		t.Fatalf("expected whole text as single chunk, got %d chunks", len(chunks))
	}
	if chunks[0] != text {
		t.Errorf("got %q", chunks[0])
	}
}

func TestSplitter_Split_PacksUntilBound(t *testing.T) {
	// Each sentence is 9 characters; with a joining space two fit in 19.
	s := New(WithChunkSize(19))
	text := "Aaaa bbb. Cccc ddd. Eeee fff."

	chunks := s.Split(text)
	if len(chunks) != 2 {
		t.Fatalf("expected 2 chunks, got %d: %v", len(chunks), chunks)
	}
	if chunks[0] != "Aaaa bbb. Cccc ddd." {
		t.Errorf("first chunk: got %q", chunks[0])
	}
	if chunks[1] != "Eeee fff." {
		t.Errorf("second chunk: got %q", chunks[1])
	}
}

func TestSplitter_Split_OversizedSentence(t *testing.T) {
	s := New(WithChunkSize(20))
	long := strings.Repeat("word ", 10) + "end."
	text := "Short one. " + long + " Tail."

	chunks := s.Split(text)

	found := false
	for _, c := range chunks {
		if c == strings.TrimSpace(long) {
			found = true
			if utf8.RuneCountInString(c) <= 20 {
				t.Error("oversized sentence should exceed the bound, not be truncated")
			}
		}
		if c == "" {
			t.Error("no chunk may be empty")
		}
	}
	if !found {
		t.Errorf("oversized sentence should survive whole, got %v", chunks)
	}
}

func TestSplitter_Split_LosslessBySentence(t *testing.T) {
	s := New(WithChunkSize(30))
	text := "First one here. Second one there! Third one anywhere? Fourth. Fifth closes it."

	chunks := s.Split(text)

	joined := strings.Join(chunks, " ")
	if joined != text {
		t.Errorf("concatenated chunks must reproduce the sentence sequence:\nwant %q\ngot  %q", text, joined)
	}
}

func TestSplitter_Split_MixedTerminators(t *testing.T) {
	s := New(WithChunkSize(12))
	text := "Really? Yes! Sure."

	chunks := s.Split(text)
	if len(chunks) != 2 {
		t.Fatalf("expected 2 chunks, got %d: %v", len(chunks), chunks)
	}
	if chunks[0] != "Really? Yes!" {
		t.Errorf("first chunk: got %q", chunks[0])
	}
	if chunks[1] != "Sure." {
		t.Errorf("second chunk: got %q", chunks[1])
	}
}

func TestSplitter_Split_BoundIsRuneBased(t *testing.T) {
	s := New(WithChunkSize(12))
	// 10 runes + terminator, multibyte characters.
	text := "héllo wörld. Second bit."

	chunks := s.Split(text)
	if len(chunks) != 2 {
		t.Fatalf("expected 2 chunks, got %d: %v", len(chunks), chunks)
	}
	if chunks[0] != "héllo wörld." {
		t.Errorf("got %q", chunks[0])
	}
}

func TestSplitter_Split_OrderStable(t *testing.T) {
	s := New(WithChunkSize(25))
	text := "Alpha one. Bravo two. Charlie three. Delta four. Echo five."

	chunks := s.Split(text)
	offset := 0
	for i, c := range chunks {
		idx := strings.Index(text, c[:strings.IndexByte(c, '.')+1])
		if idx < offset {
			t.Errorf("chunk %d out of order: %q", i, c)
		}
		offset = idx
	}
}
