// Package prompt assembles the grounded system instruction for one
// translation call: terminology pairs, corpus excerpts, boilerplate
// patterns, the transliteration policy and structure-preservation rules.
package prompt

import (
	"fmt"
	"strings"

	"github.com/devalla/anuvad/internal"
	"github.com/devalla/anuvad/internal/corpus"
	"github.com/devalla/anuvad/internal/terminology"
	"github.com/devalla/anuvad/internal/transliteration"
)

const (
	// maxTermPairs bounds the terminology block so prompt size stays
	// predictable regardless of input length.
	maxTermPairs = 10
	// maxExcerpts bounds the number of corpus excerpts.
	maxExcerpts = 2
	// excerptRunes is how much of each corpus document is quoted.
	excerptRunes = 200
)

// Spec is the composed instruction for one translation call. System is
// the full instruction block; the remaining fields expose the grounding
// that went into it.
type Spec struct {
	System    string
	TermPairs []terminology.TermPair
	Excerpts  []string
}

// Composer builds prompts from the terminology store and corpus index.
// Either dependency may be nil; the corresponding prompt section is
// simply omitted.
type Composer struct {
	terms  *terminology.Store
	corpus *corpus.Index
}

// NewComposer creates a Composer over the given grounding sources.
func NewComposer(terms *terminology.Store, ix *corpus.Index) *Composer {
	return &Composer{terms: terms, corpus: ix}
}

// Compose builds the instruction for translating text of the given
// document type from sourceLang to targetLang, with optional glossary
// overrides. Compose never fails: missing grounding sources degrade to
// empty prompt sections.
func (c *Composer) Compose(text, sourceLang, targetLang, documentType string, glossary []internal.GlossaryTerm) Spec {
	spec := Spec{}
	var b strings.Builder

	fmt.Fprintf(&b, "You are an expert legal translator specializing in Indian legal documents. "+
		"Translate with the precision and cultural awareness of an experienced human interpreter, "+
		"using formal court-standard %s.\n", targetLang)

	if documentType == "" {
		documentType = "general legal document"
	}
	fmt.Fprintf(&b, "\nDocument Type: %s\nSource Language: %s\nTarget Language: %s\n",
		documentType, sourceLang, targetLang)

	if c.terms != nil {
		spec.TermPairs = c.terms.TopTerms(sourceLang, targetLang, maxTermPairs)
		if len(spec.TermPairs) > 0 {
			b.WriteString("\nLEGAL TERMINOLOGY (use these exact translations):\n")
			for _, p := range spec.TermPairs {
				fmt.Fprintf(&b, "- %q → %q\n", p.Source, p.Target)
			}
		}

		if patterns := c.terms.PatternPairs(sourceLang, targetLang); len(patterns) > 0 {
			b.WriteString("\nDOCUMENT PATTERN EXAMPLES:\n")
			for _, p := range patterns {
				fmt.Fprintf(&b, "%s:\n%s: %s\n%s: %s\n", p.Name, sourceLang, p.Source, targetLang, p.Target)
			}
		}
	}

	if c.corpus != nil {
		docs := c.corpus.Search(text, targetLang, "", maxExcerpts)
		if len(docs) > 0 {
			b.WriteString("\nREFERENCE EXAMPLES from similar legal documents:\n")
			for i, doc := range docs {
				excerpt := truncate(doc.Content, excerptRunes)
				spec.Excerpts = append(spec.Excerpts, excerpt)
				fmt.Fprintf(&b, "\nExample %d (%s):\n%s...\n", i+1, doc.Language, excerpt)
			}
		}
	}

	if rules := transliteration.Rules(targetLang); rules != "" {
		b.WriteString("\n" + rules + "\n")
	}

	if len(glossary) > 0 {
		b.WriteString("\nIMPORTANT TERMINOLOGY MAPPINGS (use these exact translations):\n")
		for _, g := range glossary {
			fmt.Fprintf(&b, "- %q → %q\n", g.Source, g.Target)
		}
	}

	b.WriteString(`
CRITICAL FORMATTING RULES:
- Preserve ALL document structure: headings, clauses, sub-clauses
- Maintain numbering systems: 1., 2., 3. or (a), (b), (c) or i., ii., iii.
- Keep paragraph breaks exactly as in the original
- Preserve capitalization of fixed legal boilerplate (e.g. "WHEREAS" stays capitalized)
- Keep bullet points and list formatting

Provide only the translated text without any explanations or notes.`)

	spec.System = b.String()
	return spec
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
