package terminology_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/devalla/anuvad/internal/terminology"
)

const fixture = `{
  "metadata": {"version": "1.0", "languages": ["english", "hindi"], "total_terms": 4, "total_patterns": 1},
  "terminology": {
    "Agreement": {"english": "agreement", "hindi": "समझौता"},
    "plaintiff": {"english": "plaintiff", "hindi": "वादी"},
    "court": {"english": "court", "hindi": "न्यायालय"},
    "escrow": {"english": "escrow"}
  },
  "patterns": {
    "whereas_clause": {"english": "WHEREAS the parties hereto", "hindi": "जबकि पक्षकार"}
  }
}`

func writeFixture(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "legal_terminology.json")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}
	return path
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := terminology.Load(filepath.Join(t.TempDir(), "absent.json"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLoad_MalformedFile(t *testing.T) {
	path := writeFixture(t, "{not json")
	if _, err := terminology.Load(path); err == nil {
		t.Fatal("expected error for malformed file")
	}
}

func TestLoad_EmptyTable(t *testing.T) {
	path := writeFixture(t, `{"metadata": {}, "terminology": {}, "patterns": {}}`)
	if _, err := terminology.Load(path); err == nil {
		t.Fatal("expected error for empty terminology table")
	}
}

func TestLookup_CaseInsensitive(t *testing.T) {
	s, err := terminology.Load(writeFixture(t, fixture))
	if err != nil {
		t.Fatalf("failed to load: %v", err)
	}

	for _, key := range []string{"agreement", "AGREEMENT", "Agreement"} {
		term, ok := s.Lookup(key, "hindi")
		if !ok {
			t.Fatalf("Lookup(%q) not found", key)
		}
		if term != "समझौता" {
			t.Errorf("Lookup(%q) = %q, want %q", key, term, "समझौता")
		}
	}
}

func TestLookup_AbsentLanguage(t *testing.T) {
	s, err := terminology.Load(writeFixture(t, fixture))
	if err != nil {
		t.Fatalf("failed to load: %v", err)
	}

	// "escrow" has no hindi entry; absent, not empty string.
	if _, ok := s.Lookup("escrow", "hindi"); ok {
		t.Error("expected absent entry for escrow/hindi")
	}
	if _, ok := s.Lookup("nonexistent", "hindi"); ok {
		t.Error("expected absent entry for unknown concept")
	}
}

func TestTopTerms_RelevanceOrder(t *testing.T) {
	s, err := terminology.Load(writeFixture(t, fixture))
	if err != nil {
		t.Fatalf("failed to load: %v", err)
	}

	pairs := s.TopTerms("english", "hindi", 10)
	if len(pairs) != 3 {
		t.Fatalf("expected 3 pairs (escrow has no hindi form), got %d", len(pairs))
	}
	// "agreement" and "court" are on the relevance list ahead of
	// "plaintiff"; all three are listed, but relevance order governs.
	if pairs[0].Source != "agreement" {
		t.Errorf("expected agreement first, got %q", pairs[0].Source)
	}
	if pairs[1].Source != "court" {
		t.Errorf("expected court second, got %q", pairs[1].Source)
	}
	if pairs[2].Source != "plaintiff" {
		t.Errorf("expected plaintiff third, got %q", pairs[2].Source)
	}
}

func TestTopTerms_Limit(t *testing.T) {
	s, err := terminology.Load(writeFixture(t, fixture))
	if err != nil {
		t.Fatalf("failed to load: %v", err)
	}

	if got := len(s.TopTerms("english", "hindi", 1)); got != 1 {
		t.Errorf("expected 1 pair, got %d", got)
	}
	if got := len(s.TopTerms("english", "hindi", 0)); got != 0 {
		t.Errorf("expected 0 pairs for n=0, got %d", got)
	}
}

func TestPatternPairs(t *testing.T) {
	s, err := terminology.Load(writeFixture(t, fixture))
	if err != nil {
		t.Fatalf("failed to load: %v", err)
	}

	examples := s.PatternPairs("english", "hindi")
	if len(examples) != 1 {
		t.Fatalf("expected 1 pattern example, got %d", len(examples))
	}
	if examples[0].Name != "whereas_clause" {
		t.Errorf("unexpected pattern name %q", examples[0].Name)
	}
	if examples[0].Target != "जबकि पक्षकार" {
		t.Errorf("unexpected pattern target %q", examples[0].Target)
	}
}

func TestCountMatches(t *testing.T) {
	s, err := terminology.Load(writeFixture(t, fixture))
	if err != nil {
		t.Fatalf("failed to load: %v", err)
	}

	text := "This Agreement is filed before the Court by the plaintiff."
	if got := s.CountMatches(text); got != 3 {
		t.Errorf("CountMatches = %d, want 3", got)
	}
	if got := s.CountMatches(""); got != 0 {
		t.Errorf("CountMatches on empty text = %d, want 0", got)
	}
}

func TestReload(t *testing.T) {
	path := writeFixture(t, fixture)
	s, err := terminology.Load(path)
	if err != nil {
		t.Fatalf("failed to load: %v", err)
	}

	updated := `{
	  "metadata": {"version": "2.0"},
	  "terminology": {"decree": {"english": "decree", "hindi": "डिक्री"}},
	  "patterns": {}
	}`
	if err := os.WriteFile(path, []byte(updated), 0644); err != nil {
		t.Fatalf("failed to rewrite fixture: %v", err)
	}
	if err := s.Reload(); err != nil {
		t.Fatalf("reload failed: %v", err)
	}

	if _, ok := s.Lookup("agreement", "hindi"); ok {
		t.Error("expected old table to be replaced")
	}
	if _, ok := s.Lookup("decree", "hindi"); !ok {
		t.Error("expected new table to be visible")
	}
	if s.Metadata().Version != "2.0" {
		t.Errorf("metadata not refreshed: %q", s.Metadata().Version)
	}
}
