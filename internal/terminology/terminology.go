// Package terminology loads the static legal terminology table used for
// prompt grounding and quality scoring.
//
// The table maps a canonical legal concept ("agreement", "plaintiff") to
// its surface form in each supported language. It is loaded once at
// startup and is read-only afterwards; Reload exists for tests and for
// picking up edits to the data file without a restart.
package terminology

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"
	"sync"
)

// TermPair is a (source-language, target-language) rendering of one
// legal concept, used for prompt grounding.
type TermPair struct {
	Source string
	Target string
}

// PatternExample is a named boilerplate phrase rendered in both the
// source and target language.
type PatternExample struct {
	Name   string
	Source string
	Target string
}

// Metadata describes the loaded terminology file.
type Metadata struct {
	Version       string   `json:"version"`
	Languages     []string `json:"languages"`
	TotalTerms    int      `json:"total_terms"`
	TotalPatterns int      `json:"total_patterns"`
}

type dataFile struct {
	Metadata    Metadata                     `json:"metadata"`
	Terminology map[string]map[string]string `json:"terminology"`
	Patterns    map[string]map[string]string `json:"patterns"`
}

// Store holds the terminology table. Safe for concurrent readers;
// Reload takes the write lock.
type Store struct {
	mu       sync.RWMutex
	path     string
	meta     Metadata
	terms    map[string]map[string]string
	patterns map[string]map[string]string
}

// relevanceOrder fixes which concepts are offered to the prompt first.
// A static priority list bounds prompt size predictably, unlike ranking
// by frequency in the input text.
var relevanceOrder = []string{
	"agreement",
	"contract",
	"whereas",
	"party",
	"witness",
	"petition",
	"court",
	"plaintiff",
	"defendant",
	"hereby",
	"affidavit",
	"deponent",
	"power of attorney",
	"lease",
	"lessor",
	"lessee",
	"will",
	"testator",
	"notice",
	"appeal",
	"judgment",
	"decree",
	"jurisdiction",
	"consideration",
	"stamp duty",
	"registration",
	"executed",
	"covenant",
	"indemnity",
	"arbitration",
}

// Load reads the terminology file at path. A missing or malformed file
// is an error: the whole translation capability depends on this table,
// so callers are expected to fail fast at startup.
func Load(path string) (*Store, error) {
	s := &Store{path: path}
	if err := s.Reload(); err != nil {
		return nil, err
	}
	return s, nil
}

// Reload re-reads the data file, replacing the table atomically.
func (s *Store) Reload() error {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		return fmt.Errorf("failed to read terminology file: %w", err)
	}

	var f dataFile
	if err := json.Unmarshal(raw, &f); err != nil {
		return fmt.Errorf("failed to parse terminology file %s: %w", s.path, err)
	}
	if len(f.Terminology) == 0 {
		return fmt.Errorf("terminology file %s contains no terms", s.path)
	}

	terms := make(map[string]map[string]string, len(f.Terminology))
	for key, byLang := range f.Terminology {
		terms[strings.ToLower(key)] = byLang
	}
	patterns := make(map[string]map[string]string, len(f.Patterns))
	for key, byLang := range f.Patterns {
		patterns[strings.ToLower(key)] = byLang
	}

	s.mu.Lock()
	s.meta = f.Metadata
	s.terms = terms
	s.patterns = patterns
	s.mu.Unlock()
	return nil
}

// Metadata returns the metadata block of the loaded file.
func (s *Store) Metadata() Metadata {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.meta
}

// Lookup returns the surface form of conceptKey in lang. The lookup is
// case-insensitive on the concept key. A concept with no entry for lang
// reports ok=false rather than an empty string.
func (s *Store) Lookup(conceptKey, lang string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	byLang, ok := s.terms[strings.ToLower(conceptKey)]
	if !ok {
		return "", false
	}
	term, ok := byLang[lang]
	if !ok || term == "" {
		return "", false
	}
	return term, true
}

// TopTerms returns up to n (source, target) pairs for concepts that have
// surface forms in both languages. Concepts on the fixed relevance list
// come first, in list order; any remaining concepts follow in sorted key
// order so the result is deterministic.
func (s *Store) TopTerms(sourceLang, targetLang string, n int) []TermPair {
	if n <= 0 {
		return nil
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	var pairs []TermPair
	seen := make(map[string]bool)

	appendPair := func(key string) {
		if seen[key] || len(pairs) >= n {
			return
		}
		byLang, ok := s.terms[key]
		if !ok {
			return
		}
		src, tgt := byLang[sourceLang], byLang[targetLang]
		if src == "" || tgt == "" {
			return
		}
		pairs = append(pairs, TermPair{Source: src, Target: tgt})
		seen[key] = true
	}

	for _, key := range relevanceOrder {
		appendPair(key)
	}

	if len(pairs) < n {
		rest := make([]string, 0, len(s.terms))
		for key := range s.terms {
			rest = append(rest, key)
		}
		sort.Strings(rest)
		for _, key := range rest {
			appendPair(key)
		}
	}

	return pairs
}

// PatternPairs returns the boilerplate phrases available in both
// languages, sorted by pattern name.
func (s *Store) PatternPairs(sourceLang, targetLang string) []PatternExample {
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := make([]string, 0, len(s.patterns))
	for name := range s.patterns {
		names = append(names, name)
	}
	sort.Strings(names)

	var examples []PatternExample
	for _, name := range names {
		byLang := s.patterns[name]
		src, tgt := byLang[sourceLang], byLang[targetLang]
		if src == "" || tgt == "" {
			continue
		}
		examples = append(examples, PatternExample{Name: name, Source: src, Target: tgt})
	}
	return examples
}

// CountMatches reports how many concept keys appear in text. The scan is
// a case-insensitive substring check, the same measure the quality
// scorer uses for its terminology-density factor.
func (s *Store) CountMatches(text string) int {
	if text == "" {
		return 0
	}
	lower := strings.ToLower(text)

	s.mu.RLock()
	defer s.mu.RUnlock()

	matches := 0
	for key := range s.terms {
		if strings.Contains(lower, key) {
			matches++
		}
	}
	return matches
}
