// Package chunker splits long documents into paragraph-aligned chunks
// for sequential translation, and extracts a sliding-window context
// snippet (last N words) so LLM translators keep continuity across
// chunk boundaries.
package chunker

import (
	"regexp"
	"strings"
)

const (
	// DefaultMaxChars is the chunk size limit used by the translation
	// pipeline.
	DefaultMaxChars = 3000

	// DefaultContextWords is the default number of words extracted by
	// ExtractContext.
	DefaultContextWords = 25
)

var paragraphRe = regexp.MustCompile(`\n\n+`)

// Paragraphs splits text on blank-line boundaries, trimming each
// paragraph and dropping empty ones.
func Paragraphs(text string) []string {
	var paras []string
	for _, p := range paragraphRe.Split(text, -1) {
		if p = strings.TrimSpace(p); p != "" {
			paras = append(paras, p)
		}
	}
	return paras
}

// Pack splits text into chunks of at most maxChars unicode code points
// by greedily accumulating whole paragraphs. Paragraphs are never
// split: a chunk exceeds maxChars only when a single paragraph alone
// does. Text within the limit returns a single chunk. If maxChars ≤ 0,
// DefaultMaxChars is used.
func Pack(text string, maxChars int) []string {
	if maxChars <= 0 {
		maxChars = DefaultMaxChars
	}
	if len([]rune(text)) <= maxChars {
		return []string{text}
	}

	var chunks []string
	var current strings.Builder
	currentLen := 0
	for _, para := range Paragraphs(text) {
		paraLen := len([]rune(para))
		if currentLen > 0 && currentLen+len("\n\n")+paraLen > maxChars {
			chunks = append(chunks, current.String())
			current.Reset()
			currentLen = 0
		}
		if currentLen > 0 {
			current.WriteString("\n\n")
			currentLen += len("\n\n")
		}
		current.WriteString(para)
		currentLen += paraLen
	}
	if current.Len() > 0 {
		chunks = append(chunks, current.String())
	}
	if len(chunks) == 0 {
		return []string{text}
	}
	return chunks
}

// ExtractContext returns the tail of text as a continuity snippet: the
// last wordCount words joined by single spaces. The engine shows it to
// the model alongside the next chunk so translated chunks read as one
// document. Shorter texts come back whole; wordCount ≤ 0 falls back to
// DefaultContextWords.
func ExtractContext(text string, wordCount int) string {
	if wordCount <= 0 {
		wordCount = DefaultContextWords
	}
	words := strings.Fields(text)
	if len(words) <= wordCount {
		return strings.Join(words, " ")
	}
	return strings.Join(words[len(words)-wordCount:], " ")
}
