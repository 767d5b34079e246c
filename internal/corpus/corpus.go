// Package corpus loads the reference set of legal documents and ranks
// them against an input text by word overlap. The corpus grounds the
// translation prompt with real examples and feeds the corpus-similarity
// factor of the quality score.
package corpus

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
)

// Document is one reference legal document. Immutable once loaded.
type Document struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	Content      string `json:"content"`
	Language     string `json:"language"`
	DocumentType string `json:"documentType"`
	Source       string `json:"source"`
}

// Stats summarises the loaded corpus.
type Stats struct {
	TotalDocuments int
	Languages      map[string]int
	DocumentTypes  map[string]int
}

// Index holds the corpus in memory. Safe for concurrent readers;
// Reload takes the write lock.
type Index struct {
	mu   sync.RWMutex
	dir  string
	docs []Document
}

// Load reads every *.json document under dir, skipping index.json and
// files that fail to parse. An absent directory yields an empty index,
// not an error: the pipeline degrades to zero corpus grounding.
func Load(dir string) (*Index, error) {
	ix := &Index{dir: dir}
	if err := ix.Reload(); err != nil {
		return nil, err
	}
	return ix, nil
}

// Reload re-reads the corpus directory, replacing the document set.
func (ix *Index) Reload() error {
	entries, err := os.ReadDir(ix.dir)
	if err != nil {
		if os.IsNotExist(err) {
			ix.mu.Lock()
			ix.docs = nil
			ix.mu.Unlock()
			return nil
		}
		return err
	}

	var docs []Document
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".json") || name == "index.json" {
			continue
		}
		raw, err := os.ReadFile(filepath.Join(ix.dir, name))
		if err != nil {
			continue
		}
		var doc Document
		if err := json.Unmarshal(raw, &doc); err != nil {
			continue
		}
		docs = append(docs, doc)
	}

	// Deterministic corpus order regardless of directory listing order;
	// ties in Search keep this order.
	sort.SliceStable(docs, func(i, j int) bool { return docs[i].ID < docs[j].ID })

	ix.mu.Lock()
	ix.docs = docs
	ix.mu.Unlock()
	return nil
}

// Len returns the number of loaded documents.
func (ix *Index) Len() int {
	ix.mu.RLock()
	defer ix.mu.RUnlock()
	return len(ix.docs)
}

// Search returns up to limit documents ranked by similarity to text
// (highest first), optionally filtered by language and documentType
// (empty means any). Ties keep corpus order. A limit ≤ 0 defaults to 5.
func (ix *Index) Search(text, language, documentType string, limit int) []Document {
	if limit <= 0 {
		limit = 5
	}

	ix.mu.RLock()
	defer ix.mu.RUnlock()

	type scored struct {
		doc Document
		sim float64
	}
	var candidates []scored
	for _, doc := range ix.docs {
		if language != "" && doc.Language != language {
			continue
		}
		if documentType != "" && doc.DocumentType != documentType {
			continue
		}
		candidates = append(candidates, scored{doc: doc, sim: Similarity(text, doc.Content)})
	}

	sort.SliceStable(candidates, func(i, j int) bool { return candidates[i].sim > candidates[j].sim })

	if len(candidates) > limit {
		candidates = candidates[:limit]
	}
	result := make([]Document, len(candidates))
	for i, c := range candidates {
		result[i] = c.doc
	}
	return result
}

// Examples returns up to limit documents of the given language and type
// in corpus order, for few-shot grounding when no similarity ranking is
// wanted. A limit ≤ 0 defaults to 3.
func (ix *Index) Examples(language, documentType string, limit int) []Document {
	if limit <= 0 {
		limit = 3
	}

	ix.mu.RLock()
	defer ix.mu.RUnlock()

	var result []Document
	for _, doc := range ix.docs {
		if doc.Language != language || doc.DocumentType != documentType {
			continue
		}
		result = append(result, doc)
		if len(result) == limit {
			break
		}
	}
	return result
}

// Stats reports document counts by language and type.
func (ix *Index) Stats() Stats {
	ix.mu.RLock()
	defer ix.mu.RUnlock()

	stats := Stats{
		TotalDocuments: len(ix.docs),
		Languages:      make(map[string]int),
		DocumentTypes:  make(map[string]int),
	}
	for _, doc := range ix.docs {
		stats.Languages[doc.Language]++
		stats.DocumentTypes[doc.DocumentType]++
	}
	return stats
}

// Similarity computes symmetric word overlap between two texts on a
// 0–100 scale: |intersection| / |union| × 100 over the sets of
// lowercase words longer than 3 runes.
func Similarity(a, b string) float64 {
	setA := wordSet(a)
	setB := wordSet(b)
	if len(setA) == 0 || len(setB) == 0 {
		return 0
	}

	intersection := 0
	for word := range setA {
		if setB[word] {
			intersection++
		}
	}
	union := len(setA) + len(setB) - intersection
	if union == 0 {
		return 0
	}
	return float64(intersection) / float64(union) * 100
}

func wordSet(text string) map[string]bool {
	set := make(map[string]bool)
	for _, word := range strings.Fields(strings.ToLower(text)) {
		if len([]rune(word)) > 3 {
			set[word] = true
		}
	}
	return set
}
