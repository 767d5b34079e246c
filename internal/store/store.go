// Package store persists translation memory, document version history
// and the user glossary in a local SQLite database.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/text/unicode/norm"
	_ "modernc.org/sqlite"

	"github.com/devalla/anuvad/internal"
)

type Store struct {
	db *sql.DB
}

func New(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		return nil, fmt.Errorf("failed to migrate: %w", err)
	}

	return s, nil
}

func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS translation_memory (
		id TEXT PRIMARY KEY,
		source_text TEXT NOT NULL,
		source_lang TEXT NOT NULL,
		target_lang TEXT NOT NULL,
		final_text TEXT NOT NULL,
		document_type TEXT,
		confidence INTEGER DEFAULT 0,
		usage_count INTEGER DEFAULT 1,
		invalidated BOOLEAN DEFAULT FALSE,
		last_used TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		UNIQUE(source_text, source_lang, target_lang)
	);

	-- document_versions keeps every saved translation of a logical
	-- document so revisions can be listed and compared.
	CREATE TABLE IF NOT EXISTS document_versions (
		id TEXT PRIMARY KEY,
		document_id TEXT NOT NULL,
		source_text TEXT NOT NULL,
		translated_text TEXT NOT NULL,
		source_lang TEXT NOT NULL,
		target_lang TEXT NOT NULL,
		document_type TEXT,
		confidence INTEGER DEFAULT 0,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);

	-- glossary stores user-defined terminology for consistent translation of specific terms
	CREATE TABLE IF NOT EXISTS glossary (
		id TEXT PRIMARY KEY,
		source_lang TEXT NOT NULL,
		target_lang TEXT NOT NULL,
		source_term TEXT NOT NULL,
		target_term TEXT NOT NULL,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		UNIQUE(source_lang, target_lang, source_term)
	);

	CREATE INDEX IF NOT EXISTS idx_memory_lookup ON translation_memory(source_text, source_lang, target_lang);
	CREATE INDEX IF NOT EXISTS idx_versions_document ON document_versions(document_id);
	CREATE INDEX IF NOT EXISTS idx_glossary_lookup ON glossary(source_lang, target_lang);
	`

	_, err := s.db.Exec(schema)
	return err
}

// GetCachedTranslation returns the remembered translation for an exact
// source text and language pair. A hit bumps the entry's usage count.
// Invalidated entries behave like misses.
func (s *Store) GetCachedTranslation(ctx context.Context, sourceText, sourceLang, targetLang string) (string, bool, error) {
	var finalText string
	var invalidated bool

	err := s.db.QueryRowContext(ctx,
		`SELECT final_text, invalidated FROM translation_memory WHERE source_text = ? AND source_lang = ? AND target_lang = ?`,
		normalizeText(sourceText), sourceLang, targetLang).Scan(&finalText, &invalidated)

	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}

	if invalidated {
		return "", false, nil
	}

	_, err = s.db.ExecContext(ctx,
		`UPDATE translation_memory SET usage_count = usage_count + 1, last_used = ? WHERE source_text = ? AND source_lang = ? AND target_lang = ?`,
		time.Now(), normalizeText(sourceText), sourceLang, targetLang)

	return finalText, true, err
}

// SaveToMemory stores a completed translation. Re-saving the same
// source text updates the translation in place and bumps the usage
// count rather than resetting it.
func (s *Store) SaveToMemory(ctx context.Context, sourceText, sourceLang, targetLang, finalText, documentType string, confidence int) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO translation_memory (id, source_text, source_lang, target_lang, final_text, document_type, confidence, usage_count, invalidated, last_used, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, 1, FALSE, ?, ?)
		 ON CONFLICT(source_text, source_lang, target_lang) DO UPDATE SET
			final_text = excluded.final_text,
			document_type = excluded.document_type,
			confidence = excluded.confidence,
			usage_count = usage_count + 1,
			invalidated = FALSE,
			last_used = excluded.last_used`,
		uuid.NewString(), normalizeText(sourceText), sourceLang, targetLang, finalText, documentType, confidence, time.Now(), time.Now())
	return err
}

// MemoryEntry is a row from the translation_memory table.
type MemoryEntry struct {
	ID           string
	SourceText   string
	SourceLang   string
	TargetLang   string
	FinalText    string
	DocumentType string
	Confidence   int
	UsageCount   int
	Invalidated  bool
	LastUsed     time.Time
}

// CacheStats summarises translation memory usage.
type CacheStats struct {
	TotalEntries   int
	ActiveEntries  int
	InvalidEntries int
	TotalUsage     int
}

func (s *Store) InvalidateMemory(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, `UPDATE translation_memory SET invalidated = TRUE WHERE id = ?`, id)
	return err
}

// DeleteMemory permanently removes a translation memory entry by ID.
func (s *Store) DeleteMemory(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM translation_memory WHERE id = ?`, id)
	return err
}

// ClearMemory removes all translation memory entries.
func (s *Store) ClearMemory(ctx context.Context) (int64, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM translation_memory`)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// ListMemory returns all translation memory entries ordered by most recently used.
func (s *Store) ListMemory(ctx context.Context) ([]MemoryEntry, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, source_text, source_lang, target_lang, final_text, COALESCE(document_type, ''), confidence, usage_count, invalidated, last_used FROM translation_memory ORDER BY last_used DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []MemoryEntry
	for rows.Next() {
		var e MemoryEntry
		if err := rows.Scan(&e.ID, &e.SourceText, &e.SourceLang, &e.TargetLang, &e.FinalText, &e.DocumentType, &e.Confidence, &e.UsageCount, &e.Invalidated, &e.LastUsed); err != nil {
			return nil, err
		}
		results = append(results, e)
	}

	return results, rows.Err()
}

// Stats returns summary statistics for the translation memory.
func (s *Store) Stats(ctx context.Context) (*CacheStats, error) {
	stats := &CacheStats{}

	err := s.db.QueryRowContext(ctx, `
		SELECT
			COUNT(*),
			COALESCE(SUM(CASE WHEN NOT invalidated THEN 1 ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN invalidated THEN 1 ELSE 0 END), 0),
			COALESCE(SUM(usage_count), 0)
		FROM translation_memory`).Scan(
		&stats.TotalEntries,
		&stats.ActiveEntries,
		&stats.InvalidEntries,
		&stats.TotalUsage,
	)
	if err != nil {
		return nil, err
	}
	return stats, nil
}

// FindSimilar returns remembered translations whose source text shares
// keywords with sourceText, most used first. Keywords are the first
// few words longer than four letters; short queries fall back to a
// whole-text match.
func (s *Store) FindSimilar(ctx context.Context, sourceText, sourceLang, targetLang string, limit int) ([]MemoryEntry, error) {
	if limit <= 0 {
		limit = 5
	}

	var keywords []string
	for _, w := range strings.Fields(normalizeText(sourceText)) {
		if len([]rune(w)) > 4 {
			keywords = append(keywords, w)
		}
		if len(keywords) == 3 {
			break
		}
	}
	if len(keywords) == 0 {
		keywords = []string{normalizeText(sourceText)}
	}

	query := `SELECT id, source_text, source_lang, target_lang, final_text, COALESCE(document_type, ''), confidence, usage_count, invalidated, last_used
		FROM translation_memory
		WHERE source_lang = ? AND target_lang = ? AND NOT invalidated AND (`
	args := []interface{}{sourceLang, targetLang}
	for i, kw := range keywords {
		if i > 0 {
			query += ` OR `
		}
		query += `source_text LIKE ?`
		args = append(args, "%"+kw+"%")
	}
	query += `) ORDER BY usage_count DESC, last_used DESC LIMIT ?`
	args = append(args, limit)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []MemoryEntry
	for rows.Next() {
		var e MemoryEntry
		if err := rows.Scan(&e.ID, &e.SourceText, &e.SourceLang, &e.TargetLang, &e.FinalText, &e.DocumentType, &e.Confidence, &e.UsageCount, &e.Invalidated, &e.LastUsed); err != nil {
			return nil, err
		}
		results = append(results, e)
	}
	return results, rows.Err()
}

// FuzzyGetCachedTranslation returns a cached translation whose normalised source
// text has at least threshold similarity (0–1) to sourceText. Pass threshold ≤ 0
// to disable (always returns "", false, nil). To avoid O(n²) cost, texts longer
// than 1 000 runes are not fuzzy-matched.
func (s *Store) FuzzyGetCachedTranslation(ctx context.Context, sourceText, sourceLang, targetLang string, threshold float64) (string, bool, error) {
	if threshold <= 0 {
		return "", false, nil
	}

	normalized := normalizeText(sourceText)
	const maxFuzzyRunes = 1000
	if len([]rune(normalized)) > maxFuzzyRunes {
		return "", false, nil
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT source_text, final_text FROM translation_memory
		 WHERE source_lang = ? AND target_lang = ? AND NOT invalidated`,
		sourceLang, targetLang)
	if err != nil {
		return "", false, err
	}
	defer rows.Close()

	var bestFinal string
	bestScore := 0.0

	for rows.Next() {
		var srcText, finalText string
		if err := rows.Scan(&srcText, &finalText); err != nil {
			return "", false, err
		}

		// Quick length pre-filter: if the length difference alone makes it
		// impossible to reach the threshold, skip the expensive edit distance.
		ls, lr := len([]rune(normalized)), len([]rune(srcText))
		maxL := ls
		if lr > maxL {
			maxL = lr
		}
		diff := ls - lr
		if diff < 0 {
			diff = -diff
		}
		if maxL > 0 && 1.0-float64(diff)/float64(maxL) < threshold {
			continue
		}

		score := stringSimilarity(normalized, srcText)
		if score >= threshold && score > bestScore {
			bestScore = score
			bestFinal = finalText
		}
	}
	if err := rows.Err(); err != nil {
		return "", false, err
	}

	if bestFinal != "" {
		return bestFinal, true, nil
	}
	return "", false, nil
}

// Version is a row from the document_versions table.
type Version struct {
	ID             string
	DocumentID     string
	SourceText     string
	TranslatedText string
	SourceLang     string
	TargetLang     string
	DocumentType   string
	Confidence     int
	CreatedAt      time.Time
}

// SaveVersion appends a new version under documentID and returns the
// generated version ID.
func (s *Store) SaveVersion(ctx context.Context, documentID, sourceText, translatedText, sourceLang, targetLang, documentType string, confidence int) (string, error) {
	id := uuid.NewString()
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO document_versions (id, document_id, source_text, translated_text, source_lang, target_lang, document_type, confidence, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		id, documentID, sourceText, translatedText, sourceLang, targetLang, documentType, confidence, time.Now())
	return id, err
}

// ListVersions returns the versions of a document oldest first, in
// insertion order.
func (s *Store) ListVersions(ctx context.Context, documentID string) ([]Version, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, document_id, source_text, translated_text, source_lang, target_lang, COALESCE(document_type, ''), confidence, created_at
		 FROM document_versions WHERE document_id = ? ORDER BY created_at, rowid`,
		documentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var versions []Version
	for rows.Next() {
		var v Version
		if err := rows.Scan(&v.ID, &v.DocumentID, &v.SourceText, &v.TranslatedText, &v.SourceLang, &v.TargetLang, &v.DocumentType, &v.Confidence, &v.CreatedAt); err != nil {
			return nil, err
		}
		versions = append(versions, v)
	}
	return versions, rows.Err()
}

// GetVersion returns one version by its ID.
func (s *Store) GetVersion(ctx context.Context, id string) (*Version, error) {
	var v Version
	err := s.db.QueryRowContext(ctx,
		`SELECT id, document_id, source_text, translated_text, source_lang, target_lang, COALESCE(document_type, ''), confidence, created_at
		 FROM document_versions WHERE id = ?`, id).
		Scan(&v.ID, &v.DocumentID, &v.SourceText, &v.TranslatedText, &v.SourceLang, &v.TargetLang, &v.DocumentType, &v.Confidence, &v.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("version not found: %s", id)
	}
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// GlossaryEntry represents a row in the glossary table.
type GlossaryEntry struct {
	ID         string
	SourceLang string
	TargetLang string
	SourceTerm string
	TargetTerm string
	CreatedAt  time.Time
}

// AddGlossaryTerm inserts or replaces a glossary entry.
func (s *Store) AddGlossaryTerm(ctx context.Context, sourceLang, targetLang, sourceTerm, targetTerm string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO glossary (id, source_lang, target_lang, source_term, target_term)
		 VALUES (?, ?, ?, ?, ?)`,
		uuid.NewString(), sourceLang, targetLang, sourceTerm, targetTerm)
	return err
}

// GetGlossaryTerms returns all glossary terms for a language pair,
// ready to pass into a translation request.
func (s *Store) GetGlossaryTerms(ctx context.Context, sourceLang, targetLang string) ([]internal.GlossaryTerm, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT source_term, target_term FROM glossary WHERE source_lang = ? AND target_lang = ? ORDER BY source_term`,
		sourceLang, targetLang)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var terms []internal.GlossaryTerm
	for rows.Next() {
		var t internal.GlossaryTerm
		if err := rows.Scan(&t.Source, &t.Target); err != nil {
			return nil, err
		}
		terms = append(terms, t)
	}
	return terms, rows.Err()
}

// ListGlossaryTerms returns all glossary entries, optionally filtered by language
// pair (pass empty strings to return everything).
func (s *Store) ListGlossaryTerms(ctx context.Context, sourceLang, targetLang string) ([]GlossaryEntry, error) {
	query := `SELECT id, source_lang, target_lang, source_term, target_term, created_at FROM glossary`
	var args []interface{}

	switch {
	case sourceLang != "" && targetLang != "":
		query += ` WHERE source_lang = ? AND target_lang = ?`
		args = append(args, sourceLang, targetLang)
	case sourceLang != "":
		query += ` WHERE source_lang = ?`
		args = append(args, sourceLang)
	case targetLang != "":
		query += ` WHERE target_lang = ?`
		args = append(args, targetLang)
	}
	query += ` ORDER BY source_lang, target_lang, source_term`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []GlossaryEntry
	for rows.Next() {
		var e GlossaryEntry
		if err := rows.Scan(&e.ID, &e.SourceLang, &e.TargetLang, &e.SourceTerm, &e.TargetTerm, &e.CreatedAt); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// DeleteGlossaryTerm removes a glossary entry by ID.
func (s *Store) DeleteGlossaryTerm(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM glossary WHERE id = ?`, id)
	return err
}

func (s *Store) Close() error {
	return s.db.Close()
}

// normalizeText trims whitespace and applies Unicode NFC normalization
// for consistent cache key comparison.
func normalizeText(text string) string {
	return norm.NFC.String(strings.TrimSpace(text))
}

// levenshtein returns the edit distance between two strings (rune-aware).
// Uses a space-optimized two-row DP implementation.
func levenshtein(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	la, lb := len(ra), len(rb)
	if la == 0 {
		return lb
	}
	if lb == 0 {
		return la
	}

	prev := make([]int, lb+1)
	curr := make([]int, lb+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= la; i++ {
		curr[0] = i
		for j := 1; j <= lb; j++ {
			if ra[i-1] == rb[j-1] {
				curr[j] = prev[j-1]
			} else {
				min := prev[j]
				if prev[j-1] < min {
					min = prev[j-1]
				}
				if curr[j-1] < min {
					min = curr[j-1]
				}
				curr[j] = min + 1
			}
		}
		prev, curr = curr, prev
	}

	return prev[lb]
}

// stringSimilarity returns a similarity score in [0, 1] (1 = identical).
func stringSimilarity(a, b string) float64 {
	if a == b {
		return 1.0
	}
	la, lb := len([]rune(a)), len([]rune(b))
	maxLen := la
	if lb > maxLen {
		maxLen = lb
	}
	if maxLen == 0 {
		return 1.0
	}
	return 1.0 - float64(levenshtein(a, b))/float64(maxLen)
}
