package chunker_test

import (
	"strings"
	"testing"

	"github.com/devalla/anuvad/internal/chunker"
)

func TestPack_ShortText(t *testing.T) {
	text := "A short clause."
	chunks := chunker.Pack(text, 100)
	if len(chunks) != 1 {
		t.Fatalf("expected 1 chunk, got %d", len(chunks))
	}
	if chunks[0] != text {
		t.Errorf("expected %q, got %q", text, chunks[0])
	}
}

func TestPack_DefaultLimit(t *testing.T) {
	text := strings.Repeat("word ", 500) // 2500 chars, under the default
	if got := chunker.Pack(text, 0); len(got) != 1 {
		t.Errorf("expected 1 chunk under the default limit, got %d", len(got))
	}
}

func TestPack_SplitsOnParagraphs(t *testing.T) {
	para := strings.Repeat("clause text ", 10) // ~120 chars
	text := strings.Join([]string{para, para, para, para}, "\n\n")

	chunks := chunker.Pack(text, 300)
	if len(chunks) < 2 {
		t.Fatalf("expected ≥2 chunks, got %d", len(chunks))
	}
	want := strings.TrimSpace(para)
	for i, c := range chunks {
		// No paragraph may be cut: every chunk is whole paragraphs
		// joined by blank lines.
		for _, p := range strings.Split(c, "\n\n") {
			if p != want {
				t.Errorf("chunk %d contains a fragment: %q", i, p)
			}
		}
		if len(c) > 300 {
			t.Errorf("chunk %d exceeds limit: %d chars", i, len(c))
		}
	}
}

func TestPack_OversizedParagraphKeptWhole(t *testing.T) {
	big := strings.Repeat("x", 500)
	text := "small one\n\n" + big + "\n\nsmall two"

	chunks := chunker.Pack(text, 100)
	found := false
	for _, c := range chunks {
		if c == big {
			found = true
		}
	}
	if !found {
		t.Errorf("oversized paragraph must stay whole, got chunks %v", len(chunks))
	}
}

func TestPack_GreedyAccumulation(t *testing.T) {
	// Four 40-char paragraphs with a 100-char limit pack as 2+2.
	para := strings.Repeat("ab", 20)
	text := strings.Join([]string{para, para, para, para}, "\n\n")

	chunks := chunker.Pack(text, 100)
	if len(chunks) != 2 {
		t.Fatalf("expected 2 chunks, got %d", len(chunks))
	}
	for i, c := range chunks {
		if got := len(strings.Split(c, "\n\n")); got != 2 {
			t.Errorf("chunk %d should hold 2 paragraphs, holds %d", i, got)
		}
	}
}

func TestPack_CountsRunesNotBytes(t *testing.T) {
	// Devanagari is 3 bytes per rune: 82 runes (246 bytes) must still
	// take the single-chunk path under a 100-rune limit.
	para := strings.Repeat("क", 40)
	text := para + "\n\n" + para

	if got := chunker.Pack(text, 100); len(got) != 1 {
		t.Fatalf("expected 1 chunk for %d runes, got %d", len([]rune(text)), len(got))
	}

	chunks := chunker.Pack(text, 50)
	if len(chunks) != 2 {
		t.Fatalf("expected 2 chunks at a 50-rune limit, got %d", len(chunks))
	}
	for i, c := range chunks {
		if n := len([]rune(c)); n > 50 {
			t.Errorf("chunk %d exceeds limit: %d runes", i, n)
		}
	}
}

func TestPack_RejoinsToLogicalDocument(t *testing.T) {
	paras := []string{"first paragraph", "second paragraph", "third paragraph", "fourth paragraph"}
	text := strings.Join(paras, "\n\n")

	chunks := chunker.Pack(text, 35)
	rejoined := strings.Join(chunks, "\n\n")
	if rejoined != text {
		t.Errorf("rejoined chunks = %q, want %q", rejoined, text)
	}
}

func TestParagraphs(t *testing.T) {
	text := "one\n\ntwo\n\n\n\nthree\n\n  \n\n"
	paras := chunker.Paragraphs(text)
	want := []string{"one", "two", "three"}
	if len(paras) != len(want) {
		t.Fatalf("expected %d paragraphs, got %d: %v", len(want), len(paras), paras)
	}
	for i := range want {
		if paras[i] != want[i] {
			t.Errorf("paragraph %d = %q, want %q", i, paras[i], want[i])
		}
	}
}

func TestExtractContext(t *testing.T) {
	text := "one two three four five"
	if got := chunker.ExtractContext(text, 2); got != "four five" {
		t.Errorf("ExtractContext = %q, want %q", got, "four five")
	}
	if got := chunker.ExtractContext(text, 10); got != text {
		t.Errorf("ExtractContext = %q, want whole text", got)
	}
	if got := chunker.ExtractContext("", 5); got != "" {
		t.Errorf("ExtractContext on empty = %q", got)
	}
}
