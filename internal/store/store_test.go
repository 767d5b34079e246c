package store

import (
	"context"
	"path/filepath"
	"testing"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")

	s, err := New(dbPath)
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestStore_New(t *testing.T) {
	s := newTestStore(t)
	if s == nil {
		t.Fatal("expected non-nil store")
	}
}

func TestStore_New_InvalidPath(t *testing.T) {
	_, err := New("/nonexistent/path/test.db")
	if err == nil {
		t.Error("expected error for invalid path")
	}
}

func TestStore_MemoryRoundTrip(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	err := s.SaveToMemory(ctx, "This agreement binds the parties.", "english", "hindi",
		"यह अनुबंध पक्षों को बांधता है।", "agreement", 92)
	if err != nil {
		t.Fatalf("SaveToMemory failed: %v", err)
	}

	text, found, err := s.GetCachedTranslation(ctx, "This agreement binds the parties.", "english", "hindi")
	if err != nil {
		t.Fatalf("GetCachedTranslation failed: %v", err)
	}
	if !found {
		t.Fatal("expected a cache hit")
	}
	if text != "यह अनुबंध पक्षों को बांधता है।" {
		t.Errorf("cached text = %q", text)
	}
}

func TestStore_MemoryMiss(t *testing.T) {
	s := newTestStore(t)

	_, found, err := s.GetCachedTranslation(context.Background(), "never stored", "english", "hindi")
	if err != nil {
		t.Fatalf("GetCachedTranslation failed: %v", err)
	}
	if found {
		t.Error("expected a miss for unknown source text")
	}
}

func TestStore_MemoryKeyNormalization(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	// Leading and trailing whitespace must not produce distinct keys.
	if err := s.SaveToMemory(ctx, "  Deed of sale  ", "english", "hindi", "बिक्री विलेख", "deed", 90); err != nil {
		t.Fatalf("SaveToMemory failed: %v", err)
	}

	text, found, err := s.GetCachedTranslation(ctx, "Deed of sale", "english", "hindi")
	if err != nil {
		t.Fatalf("GetCachedTranslation failed: %v", err)
	}
	if !found || text != "बिक्री विलेख" {
		t.Errorf("found = %v, text = %q; want hit on normalized key", found, text)
	}
}

func TestStore_MemoryUsageCount(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if err := s.SaveToMemory(ctx, "source one", "english", "hindi", "अनुवाद एक", "general", 80); err != nil {
		t.Fatalf("SaveToMemory failed: %v", err)
	}

	// Two hits plus a re-save on top of the initial insert.
	for i := 0; i < 2; i++ {
		if _, _, err := s.GetCachedTranslation(ctx, "source one", "english", "hindi"); err != nil {
			t.Fatalf("GetCachedTranslation failed: %v", err)
		}
	}
	if err := s.SaveToMemory(ctx, "source one", "english", "hindi", "अनुवाद दो", "general", 85); err != nil {
		t.Fatalf("re-save failed: %v", err)
	}

	entries, err := s.ListMemory(ctx)
	if err != nil {
		t.Fatalf("ListMemory failed: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1 (re-save must not duplicate)", len(entries))
	}
	if entries[0].UsageCount != 4 {
		t.Errorf("UsageCount = %d, want 4", entries[0].UsageCount)
	}
	if entries[0].FinalText != "अनुवाद दो" {
		t.Errorf("FinalText = %q, want the re-saved translation", entries[0].FinalText)
	}
}

func TestStore_InvalidateMemory(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if err := s.SaveToMemory(ctx, "stale source", "english", "hindi", "पुराना अनुवाद", "general", 70); err != nil {
		t.Fatalf("SaveToMemory failed: %v", err)
	}

	entries, err := s.ListMemory(ctx)
	if err != nil || len(entries) != 1 {
		t.Fatalf("ListMemory: entries=%d err=%v", len(entries), err)
	}
	if err := s.InvalidateMemory(ctx, entries[0].ID); err != nil {
		t.Fatalf("InvalidateMemory failed: %v", err)
	}

	_, found, err := s.GetCachedTranslation(ctx, "stale source", "english", "hindi")
	if err != nil {
		t.Fatalf("GetCachedTranslation failed: %v", err)
	}
	if found {
		t.Error("invalidated entry must behave like a miss")
	}

	// A fresh save reactivates the entry.
	if err := s.SaveToMemory(ctx, "stale source", "english", "hindi", "नया अनुवाद", "general", 88); err != nil {
		t.Fatalf("re-save failed: %v", err)
	}
	text, found, err := s.GetCachedTranslation(ctx, "stale source", "english", "hindi")
	if err != nil || !found {
		t.Fatalf("expected hit after re-save: found=%v err=%v", found, err)
	}
	if text != "नया अनुवाद" {
		t.Errorf("text = %q, want the fresh translation", text)
	}
}

func TestStore_ClearMemoryAndStats(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	for _, src := range []string{"first text", "second text", "third text"} {
		if err := s.SaveToMemory(ctx, src, "english", "hindi", "अनुवाद", "general", 80); err != nil {
			t.Fatalf("SaveToMemory failed: %v", err)
		}
	}
	entries, _ := s.ListMemory(ctx)
	if err := s.InvalidateMemory(ctx, entries[0].ID); err != nil {
		t.Fatalf("InvalidateMemory failed: %v", err)
	}

	stats, err := s.Stats(ctx)
	if err != nil {
		t.Fatalf("Stats failed: %v", err)
	}
	if stats.TotalEntries != 3 || stats.ActiveEntries != 2 || stats.InvalidEntries != 1 {
		t.Errorf("stats = %+v", stats)
	}

	n, err := s.ClearMemory(ctx)
	if err != nil {
		t.Fatalf("ClearMemory failed: %v", err)
	}
	if n != 3 {
		t.Errorf("ClearMemory removed %d rows, want 3", n)
	}
}

func TestStore_FindSimilar(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	seed := []struct {
		src, final string
	}{
		{"The lease agreement between landlord and tenant", "पट्टा अनुबंध"},
		{"The sale agreement between buyer and seller", "बिक्री अनुबंध"},
		{"A power of attorney for property matters", "मुख्तारनामा"},
	}
	for _, e := range seed {
		if err := s.SaveToMemory(ctx, e.src, "english", "hindi", e.final, "agreement", 85); err != nil {
			t.Fatalf("SaveToMemory failed: %v", err)
		}
	}

	matches, err := s.FindSimilar(ctx, "A rental agreement between owner and occupant", "english", "hindi", 5)
	if err != nil {
		t.Fatalf("FindSimilar failed: %v", err)
	}
	// Both "agreement between" rows share keywords; the attorney row does not.
	if len(matches) != 2 {
		t.Fatalf("got %d matches, want 2: %+v", len(matches), matches)
	}
	for _, m := range matches {
		if m.FinalText == "मुख्तारनामा" {
			t.Error("unrelated entry matched")
		}
	}
}

func TestStore_FuzzyGetCachedTranslation(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if err := s.SaveToMemory(ctx, "The party of the first part agrees to the terms.", "english", "hindi", "पहला पक्ष शर्तों से सहमत है।", "agreement", 90); err != nil {
		t.Fatalf("SaveToMemory failed: %v", err)
	}

	// One-character difference clears a 0.9 threshold.
	text, found, err := s.FuzzyGetCachedTranslation(ctx, "The party of the first part agrees to the terms", "english", "hindi", 0.9)
	if err != nil {
		t.Fatalf("FuzzyGetCachedTranslation failed: %v", err)
	}
	if !found || text != "पहला पक्ष शर्तों से सहमत है।" {
		t.Errorf("found=%v text=%q; want fuzzy hit", found, text)
	}

	// Dissimilar text misses.
	_, found, err = s.FuzzyGetCachedTranslation(ctx, "Completely unrelated sentence here", "english", "hindi", 0.9)
	if err != nil {
		t.Fatalf("FuzzyGetCachedTranslation failed: %v", err)
	}
	if found {
		t.Error("expected fuzzy miss for dissimilar text")
	}

	// Threshold zero disables fuzzy matching.
	_, found, err = s.FuzzyGetCachedTranslation(ctx, "The party of the first part agrees to the terms", "english", "hindi", 0)
	if err != nil || found {
		t.Errorf("threshold 0: found=%v err=%v, want disabled", found, err)
	}
}

func TestStore_Versions(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	id1, err := s.SaveVersion(ctx, "doc-1", "source v1", "अनुवाद v1", "english", "hindi", "agreement", 80)
	if err != nil {
		t.Fatalf("SaveVersion failed: %v", err)
	}
	id2, err := s.SaveVersion(ctx, "doc-1", "source v2", "अनुवाद v2", "english", "hindi", "agreement", 91)
	if err != nil {
		t.Fatalf("SaveVersion failed: %v", err)
	}
	if _, err := s.SaveVersion(ctx, "doc-2", "other doc", "अन्य", "english", "hindi", "general", 75); err != nil {
		t.Fatalf("SaveVersion failed: %v", err)
	}

	versions, err := s.ListVersions(ctx, "doc-1")
	if err != nil {
		t.Fatalf("ListVersions failed: %v", err)
	}
	if len(versions) != 2 {
		t.Fatalf("got %d versions, want 2", len(versions))
	}
	if versions[0].ID != id1 || versions[1].ID != id2 {
		t.Errorf("versions out of insertion order: %q then %q", versions[0].ID, versions[1].ID)
	}
	if versions[1].Confidence != 91 {
		t.Errorf("Confidence = %d, want 91", versions[1].Confidence)
	}

	v, err := s.GetVersion(ctx, id2)
	if err != nil {
		t.Fatalf("GetVersion failed: %v", err)
	}
	if v.TranslatedText != "अनुवाद v2" {
		t.Errorf("TranslatedText = %q", v.TranslatedText)
	}

	if _, err := s.GetVersion(ctx, "no-such-id"); err == nil {
		t.Error("expected error for unknown version id")
	}
}

func TestStore_Glossary(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if err := s.AddGlossaryTerm(ctx, "english", "hindi", "grantor", "दाता"); err != nil {
		t.Fatalf("AddGlossaryTerm failed: %v", err)
	}
	if err := s.AddGlossaryTerm(ctx, "english", "hindi", "grantee", "प्राप्तकर्ता"); err != nil {
		t.Fatalf("AddGlossaryTerm failed: %v", err)
	}
	if err := s.AddGlossaryTerm(ctx, "english", "gujarati", "grantor", "દાતા"); err != nil {
		t.Fatalf("AddGlossaryTerm failed: %v", err)
	}

	terms, err := s.GetGlossaryTerms(ctx, "english", "hindi")
	if err != nil {
		t.Fatalf("GetGlossaryTerms failed: %v", err)
	}
	if len(terms) != 2 {
		t.Fatalf("got %d terms, want 2", len(terms))
	}
	if terms[0].Source != "grantee" || terms[0].Target != "प्राप्तकर्ता" {
		t.Errorf("terms[0] = %+v, want grantee first (sorted)", terms[0])
	}

	// Re-adding a term replaces it instead of duplicating.
	if err := s.AddGlossaryTerm(ctx, "english", "hindi", "grantor", "अनुदाता"); err != nil {
		t.Fatalf("AddGlossaryTerm failed: %v", err)
	}
	terms, err = s.GetGlossaryTerms(ctx, "english", "hindi")
	if err != nil || len(terms) != 2 {
		t.Fatalf("after replace: terms=%d err=%v", len(terms), err)
	}

	all, err := s.ListGlossaryTerms(ctx, "", "")
	if err != nil {
		t.Fatalf("ListGlossaryTerms failed: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("got %d entries, want 3", len(all))
	}

	if err := s.DeleteGlossaryTerm(ctx, all[0].ID); err != nil {
		t.Fatalf("DeleteGlossaryTerm failed: %v", err)
	}
	all, err = s.ListGlossaryTerms(ctx, "", "")
	if err != nil || len(all) != 2 {
		t.Errorf("after delete: entries=%d err=%v", len(all), err)
	}
}
