package corpus_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/devalla/anuvad/internal/corpus"
)

func writeDoc(t *testing.T, dir string, doc corpus.Document) {
	t.Helper()
	raw, err := json.Marshal(doc)
	if err != nil {
		t.Fatalf("failed to marshal doc: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, doc.ID+".json"), raw, 0644); err != nil {
		t.Fatalf("failed to write doc: %v", err)
	}
}

func buildIndex(t *testing.T) *corpus.Index {
	t.Helper()
	dir := t.TempDir()
	writeDoc(t, dir, corpus.Document{
		ID: "doc1", Title: "Sale Agreement", Language: "english", DocumentType: "agreement",
		Content: "This agreement witnesses that the vendor sells the property to the purchaser",
	})
	writeDoc(t, dir, corpus.Document{
		ID: "doc2", Title: "Rent Notice", Language: "english", DocumentType: "notice",
		Content: "Notice regarding termination of tenancy premises rental arrears",
	})
	writeDoc(t, dir, corpus.Document{
		ID: "doc3", Title: "किराया करार", Language: "hindi", DocumentType: "agreement",
		Content: "यह करार दोनों पक्षकारों के बीच किया गया है",
	})

	ix, err := corpus.Load(dir)
	if err != nil {
		t.Fatalf("failed to load corpus: %v", err)
	}
	return ix
}

func TestLoad_AbsentDirectory(t *testing.T) {
	ix, err := corpus.Load(filepath.Join(t.TempDir(), "no-such-dir"))
	if err != nil {
		t.Fatalf("absent directory should not error: %v", err)
	}
	if got := ix.Search("agreement text", "english", "", 5); len(got) != 0 {
		t.Errorf("expected empty results, got %d", len(got))
	}
	if ix.Len() != 0 {
		t.Errorf("expected empty index, got %d docs", ix.Len())
	}
}

func TestLoad_SkipsIndexAndMalformed(t *testing.T) {
	dir := t.TempDir()
	writeDoc(t, dir, corpus.Document{ID: "doc1", Language: "english", DocumentType: "agreement", Content: "text"})
	os.WriteFile(filepath.Join(dir, "index.json"), []byte(`{"totalDocuments": 99}`), 0644)
	os.WriteFile(filepath.Join(dir, "broken.json"), []byte("{oops"), 0644)
	os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("not json"), 0644)

	ix, err := corpus.Load(dir)
	if err != nil {
		t.Fatalf("failed to load corpus: %v", err)
	}
	if ix.Len() != 1 {
		t.Errorf("expected 1 document, got %d", ix.Len())
	}
}

func TestSearch_RankedByOverlap(t *testing.T) {
	ix := buildIndex(t)

	results := ix.Search("the vendor sells the property under this agreement", "english", "", 5)
	if len(results) != 2 {
		t.Fatalf("expected 2 english documents, got %d", len(results))
	}
	if results[0].ID != "doc1" {
		t.Errorf("expected doc1 ranked first, got %s", results[0].ID)
	}
}

func TestSearch_FiltersLanguageAndType(t *testing.T) {
	ix := buildIndex(t)

	results := ix.Search("करार पक्षकारों", "hindi", "agreement", 5)
	if len(results) != 1 || results[0].ID != "doc3" {
		t.Fatalf("expected only doc3, got %v", results)
	}

	if got := ix.Search("anything", "english", "affidavit", 5); len(got) != 0 {
		t.Errorf("expected no affidavits, got %d", len(got))
	}
}

func TestSearch_EmptyLanguageMatchesAll(t *testing.T) {
	ix := buildIndex(t)

	results := ix.Search("agreement", "", "agreement", 5)
	if len(results) != 2 {
		t.Fatalf("expected agreements in every language, got %d", len(results))
	}
}

func TestSearch_StableTieOrder(t *testing.T) {
	dir := t.TempDir()
	// Identical content: similarity ties must keep corpus (ID) order.
	for _, id := range []string{"a1", "a2", "a3"} {
		writeDoc(t, dir, corpus.Document{ID: id, Language: "english", DocumentType: "agreement",
			Content: "identical agreement content between parties"})
	}
	ix, err := corpus.Load(dir)
	if err != nil {
		t.Fatalf("failed to load corpus: %v", err)
	}

	results := ix.Search("agreement content between parties", "english", "", 5)
	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(results))
	}
	for i, want := range []string{"a1", "a2", "a3"} {
		if results[i].ID != want {
			t.Errorf("position %d: expected %s, got %s", i, want, results[i].ID)
		}
	}
}

func TestSearch_Limit(t *testing.T) {
	ix := buildIndex(t)
	if got := ix.Search("agreement notice property tenancy", "english", "", 1); len(got) != 1 {
		t.Errorf("expected 1 result with limit=1, got %d", len(got))
	}
}

func TestExamples(t *testing.T) {
	ix := buildIndex(t)
	examples := ix.Examples("english", "agreement", 3)
	if len(examples) != 1 || examples[0].ID != "doc1" {
		t.Fatalf("unexpected examples: %v", examples)
	}
}

func TestStats(t *testing.T) {
	ix := buildIndex(t)
	stats := ix.Stats()
	if stats.TotalDocuments != 3 {
		t.Errorf("TotalDocuments = %d, want 3", stats.TotalDocuments)
	}
	if stats.Languages["english"] != 2 || stats.Languages["hindi"] != 1 {
		t.Errorf("unexpected language counts: %v", stats.Languages)
	}
	if stats.DocumentTypes["agreement"] != 2 {
		t.Errorf("unexpected type counts: %v", stats.DocumentTypes)
	}
}

func TestSimilarity_Bounds(t *testing.T) {
	cases := []struct {
		name string
		a, b string
	}{
		{"identical", "whereas agreement between parties", "whereas agreement between parties"},
		{"disjoint", "lease rental premises", "judgment decree appeal"},
		{"empty a", "", "some document content"},
		{"short words only", "a an it to", "of in at on"},
	}
	for _, tc := range cases {
		sim := corpus.Similarity(tc.a, tc.b)
		if sim < 0 || sim > 100 {
			t.Errorf("%s: similarity %f out of range", tc.name, sim)
		}
	}

	if sim := corpus.Similarity("whereas agreement between parties", "whereas agreement between parties"); sim != 100 {
		t.Errorf("identical texts: similarity = %f, want 100", sim)
	}
	if sim := corpus.Similarity("", "content"); sim != 0 {
		t.Errorf("empty text: similarity = %f, want 0", sim)
	}
}
