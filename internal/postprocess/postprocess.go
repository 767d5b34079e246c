// Package postprocess normalizes raw model output into a usable
// translation: it strips common LLM artifacts and applies user-supplied
// glossary overrides.
package postprocess

import (
	"regexp"
	"strings"

	"github.com/devalla/anuvad/internal"
)

// Clean removes LLM artifacts from text and returns the trimmed result:
// reasoning blocks, echoed instructions, and whole-text quote wrapping.
func Clean(text string) string {
	text = stripReasoningBlocks(text)
	text = stripInstructionEchoes(text)
	text = stripQuoteWrapping(text)
	return strings.TrimSpace(text)
}

// reasoningBlockRe matches complete <thinking>…</thinking> style blocks.
// Tag variants are listed explicitly; RE2 has no backreferences.
var reasoningBlockRe = regexp.MustCompile(
	`(?is)<thinking>.*?</thinking>|<think>.*?</think>|<reasoning>.*?</reasoning>|<reflection>.*?</reflection>`,
)

// truncatedReasoningRe matches an opened reasoning tag whose closing tag
// never arrived (the model was cut off mid-thought).
var truncatedReasoningRe = regexp.MustCompile(
	`(?is)(?:<thinking>|<think>|<reasoning>|<reflection>).*$`,
)

func stripReasoningBlocks(text string) string {
	text = reasoningBlockRe.ReplaceAllString(text, "")
	text = truncatedReasoningRe.ReplaceAllString(text, "")
	return strings.TrimSpace(text)
}

// echoPatterns match introductory phrases models sometimes prepend even
// when told not to. Anchored to the start and requiring a colon to
// avoid false positives on legitimate content.
var echoPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)^here(?:'s| is)(?: the)? (?:translated |legal )?(?:translation|text|document)\s*:`),
	regexp.MustCompile(`(?i)^(?:the )?(?:translated )?(?:translation|translated text|document)\s*:`),
	regexp.MustCompile(`(?i)^(?:certainly|sure|of course)[,.]? here(?:'s| is)(?: the)? (?:translated )?(?:translation|text|document)\s*:`),
}

func stripInstructionEchoes(text string) string {
	for _, re := range echoPatterns {
		if loc := re.FindStringIndex(text); loc != nil && loc[0] == 0 {
			text = strings.TrimSpace(text[loc[1]:])
		}
	}
	return text
}

// stripQuoteWrapping removes a matching pair of outer quotes when the
// entire text is wrapped in them.
func stripQuoteWrapping(text string) string {
	runes := []rune(text)
	n := len(runes)
	if n < 2 {
		return text
	}
	first, last := runes[0], runes[n-1]
	if (first == '"' && last == '"') ||
		(first == '\'' && last == '\'') ||
		(first == '«' && last == '»') ||
		(first == '“' && last == '”') ||
		(first == '‘' && last == '’') {
		return strings.TrimSpace(string(runes[1 : n-1]))
	}
	return text
}

// ApplyGlossary replaces each glossary source term with its target,
// case-insensitively and globally, in the order the entries were
// supplied. Single forward pass: a later entry may re-match text
// inserted by an earlier one, and no fixed point is sought.
func ApplyGlossary(text string, glossary []internal.GlossaryTerm) string {
	for _, term := range glossary {
		if term.Source == "" {
			continue
		}
		re, err := regexp.Compile(`(?i)` + regexp.QuoteMeta(term.Source))
		if err != nil {
			continue
		}
		text = re.ReplaceAllLiteralString(text, term.Target)
	}
	return text
}
