// Package quality grades a translation with a multi-factor confidence
// score: terminology density, corpus similarity and source-text
// complexity, combined 40/30/30 and banded into high/medium/low.
// Scores are computed per section and aggregated to a document score.
package quality

import (
	"fmt"
	"math"
	"regexp"
	"strings"
	"unicode/utf8"
)

// Confidence is the banded form of an overall score.
type Confidence string

const (
	High   Confidence = "high"
	Medium Confidence = "medium"
	Low    Confidence = "low"
)

// Factors are the three component scores, each on a 0–100 scale.
// Complexity is inverted: simpler source text scores higher.
type Factors struct {
	TerminologyMatch int `json:"terminologyMatch"`
	CorpusSimilarity int `json:"corpusSimilarity"`
	Complexity       int `json:"complexity"`
}

// Score is the composite quality result. Never mutated after
// construction.
type Score struct {
	Overall    int        `json:"overall"`
	Confidence Confidence `json:"confidence"`
	Factors    Factors    `json:"factors"`
	Details    string     `json:"details"`
}

// SectionScore grades one (source, translated) section pair.
type SectionScore struct {
	Text           string `json:"text"`
	TranslatedText string `json:"translatedText"`
	Score          Score  `json:"score"`
	NeedsReview    bool   `json:"needsReview"`
}

// reviewThreshold marks a section for manual review.
const reviewThreshold = 70

// Calculate scores one translation. terminologyMatches is the count of
// known legal terms found in the source; corpusMatches is the number of
// similar corpus documents (saturating at 3). Empty source or
// translated text short-circuits to a zero/low score.
func Calculate(sourceText, translatedText string, terminologyMatches, corpusMatches int) Score {
	if strings.TrimSpace(sourceText) == "" || translatedText == "" {
		return Score{
			Overall:    0,
			Confidence: Low,
			Details:    "Empty or invalid text",
		}
	}

	wordCount := len(strings.Fields(sourceText))

	// Terminology density: matches per ~10 source words, capped at 100.
	terminologyScore := math.Min(100, float64(terminologyMatches)/math.Max(1, float64(wordCount)/10)*100)

	// Corpus similarity saturates at 3 or more similar documents.
	corpusScore := math.Min(100, float64(corpusMatches)/3*100)

	complexityScore := complexity(sourceText)

	overall := int(math.Round(clamp(
		terminologyScore*0.4+corpusScore*0.3+complexityScore*0.3, 0, 100)))

	return Score{
		Overall:    overall,
		Confidence: confidenceFor(float64(overall)),
		Factors: Factors{
			TerminologyMatch: int(math.Round(terminologyScore)),
			CorpusSimilarity: int(math.Round(corpusScore)),
			Complexity:       int(math.Round(complexityScore)),
		},
		Details: describe(terminologyScore, corpusScore, complexityScore),
	}
}

var (
	specialCharRe = regexp.MustCompile(`[^a-zA-Z0-9\s]`)
	sentenceEndRe = regexp.MustCompile(`[.!?]+`)
)

// complexity scores text simplicity on 0–100: the mean of word-length,
// sentence-length and special-character sub-scores. Simpler text earns
// a higher score and therefore higher translation confidence.
func complexity(text string) float64 {
	words := strings.Fields(text)
	if len(words) == 0 {
		return 0
	}

	sentenceCount := 0
	for _, s := range sentenceEndRe.Split(text, -1) {
		if strings.TrimSpace(s) != "" {
			sentenceCount++
		}
	}

	totalLen := 0
	for _, w := range words {
		totalLen += utf8.RuneCountInString(w)
	}
	avgWordLen := float64(totalLen) / float64(len(words))
	wordLengthScore := clamp(100-(avgWordLen-5)*10, 0, 100)

	avgSentenceLen := float64(len(words)) / math.Max(1, float64(sentenceCount))
	sentenceLengthScore := clamp(100-(avgSentenceLen-15)*3, 0, 100)

	specialChars := len(specialCharRe.FindAllString(text, -1))
	textLen := float64(utf8.RuneCountInString(text))
	specialCharScore := clamp(100-float64(specialChars)/textLen*200, 0, 100)

	return clamp((wordLengthScore+sentenceLengthScore+specialCharScore)/3, 0, 100)
}

func confidenceFor(overall float64) Confidence {
	switch {
	case overall >= 80:
		return High
	case overall >= 60:
		return Medium
	default:
		return Low
	}
}

// describe renders a deterministic explanation from threshold bands on
// the unrounded factor scores.
func describe(terminologyScore, corpusScore, complexityScore float64) string {
	var parts []string

	switch {
	case terminologyScore >= 70:
		parts = append(parts, "Strong terminology match with legal database")
	case terminologyScore >= 40:
		parts = append(parts, "Moderate terminology match")
	default:
		parts = append(parts, "Limited terminology match - may need review")
	}

	switch {
	case corpusScore >= 70:
		parts = append(parts, "similar documents found in corpus")
	case corpusScore >= 40:
		parts = append(parts, "some similar documents found")
	default:
		parts = append(parts, "few similar documents in corpus")
	}

	if complexityScore < 50 {
		parts = append(parts, "complex text structure")
	}

	return strings.Join(parts, ", ") + "."
}

// TermCounter reports how many known legal terms appear in a text.
// *terminology.Store satisfies it.
type TermCounter interface {
	CountMatches(text string) int
}

// Scorer grades whole documents section by section.
type Scorer struct {
	terms TermCounter
}

// NewScorer creates a Scorer. terms may be nil, in which case the
// per-section terminology count is zero.
func NewScorer(terms TermCounter) *Scorer {
	return &Scorer{terms: terms}
}

var sectionSplitRe = regexp.MustCompile(`\n\n+`)

// splitSections breaks text into paragraph sections on blank-line
// boundaries. Text without blank lines is a single section.
func splitSections(text string) []string {
	var sections []string
	for _, s := range sectionSplitRe.Split(text, -1) {
		if s = strings.TrimSpace(s); s != "" {
			sections = append(sections, s)
		}
	}
	if len(sections) == 0 {
		return []string{text}
	}
	return sections
}

// AnalyzeDocument re-splits the source and translated documents into
// sections and scores each pair. Sections are paired positionally up to
// the shorter side; trailing sections on the longer side are dropped.
// The document-level corpus-match count is distributed evenly across
// source sections; terminology matches are recounted per section.
func (s *Scorer) AnalyzeDocument(sourceText, translatedText string, corpusMatchCount int) []SectionScore {
	sourceSections := splitSections(sourceText)
	translatedSections := splitSections(translatedText)

	n := len(sourceSections)
	if len(translatedSections) < n {
		n = len(translatedSections)
	}
	perSectionCorpus := corpusMatchCount / len(sourceSections)

	scores := make([]SectionScore, 0, n)
	for i := 0; i < n; i++ {
		src, tgt := sourceSections[i], translatedSections[i]

		termMatches := 0
		if s.terms != nil {
			termMatches = s.terms.CountMatches(src)
		}

		score := Calculate(src, tgt, termMatches, perSectionCorpus)
		scores = append(scores, SectionScore{
			Text:           src,
			TranslatedText: tgt,
			Score:          score,
			NeedsReview:    score.Overall < reviewThreshold,
		})
	}
	return scores
}

// Aggregate combines section scores into a document-level score: the
// arithmetic mean of each factor and of the overall, with confidence
// re-derived from the averaged overall.
func Aggregate(sections []SectionScore) Score {
	if len(sections) == 0 {
		return Score{
			Overall:    0,
			Confidence: Low,
			Details:    "No sections to analyze",
		}
	}

	var overall, term, corpus, cmplx float64
	needingReview := 0
	for _, s := range sections {
		overall += float64(s.Score.Overall)
		term += float64(s.Score.Factors.TerminologyMatch)
		corpus += float64(s.Score.Factors.CorpusSimilarity)
		cmplx += float64(s.Score.Factors.Complexity)
		if s.NeedsReview {
			needingReview++
		}
	}
	n := float64(len(sections))
	overall, term, corpus, cmplx = overall/n, term/n, corpus/n, cmplx/n

	var details string
	if needingReview > 0 {
		details = fmt.Sprintf("%d section(s) may need manual review. %s",
			needingReview, describe(term, corpus, cmplx))
	} else {
		details = fmt.Sprintf("All sections have good confidence. %s",
			describe(term, corpus, cmplx))
	}

	return Score{
		Overall:    int(math.Round(overall)),
		Confidence: confidenceFor(overall),
		Factors: Factors{
			TerminologyMatch: int(math.Round(term)),
			CorpusSimilarity: int(math.Round(corpus)),
			Complexity:       int(math.Round(cmplx)),
		},
		Details: details,
	}
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
