// Package transliteration supports phonetic rendering of Latin-script
// proper nouns into Indian scripts. It supplies the transliteration
// policy block for the translation prompt, a rough romanization table
// for offline previews, and detection of residual Latin-script words in
// output that should have been fully transliterated.
package transliteration

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
	"unicode"
)

// Supported reports whether lang has a transliteration target script.
// "english" is not a transliteration target.
func Supported(lang string) bool {
	_, ok := scriptRanges[lang]
	return ok
}

// scriptRanges maps a target language to its Unicode script table.
// Hindi and Marathi both use Devanagari.
var scriptRanges = map[string]*unicode.RangeTable{
	"hindi":    unicode.Devanagari,
	"marathi":  unicode.Devanagari,
	"gujarati": unicode.Gujarati,
	"kannada":  unicode.Kannada,
}

// ScriptRange returns the Unicode script table for lang, or nil when
// lang has no non-Latin target script.
func ScriptRange(lang string) *unicode.RangeTable {
	return scriptRanges[lang]
}

// maps holds rough Latin-digraph to script-letter tables per language.
// Digraphs are tried before single letters. This is a preview aid, not
// a linguistically complete romanization.
var maps = map[string]map[string]string{
	"hindi": {
		"a": "अ", "aa": "आ", "i": "इ", "ii": "ई", "u": "उ", "uu": "ऊ",
		"e": "ए", "ai": "ऐ", "o": "ओ", "au": "औ",
		"k": "क", "kh": "ख", "g": "ग", "gh": "घ",
		"ch": "च", "chh": "छ", "j": "ज", "jh": "झ",
		"t": "ट", "th": "ठ", "d": "ड", "dh": "ढ", "n": "ण",
		"p": "प", "ph": "फ", "b": "ब", "bh": "भ", "m": "म",
		"y": "य", "r": "र", "l": "ल", "v": "व", "w": "व",
		"sh": "श", "s": "स", "h": "ह",
	},
	"gujarati": {
		"a": "અ", "aa": "આ", "i": "ઇ", "ii": "ઈ", "u": "ઉ", "uu": "ઊ",
		"e": "એ", "ai": "ઐ", "o": "ઓ", "au": "ઔ",
		"k": "ક", "kh": "ખ", "g": "ગ", "gh": "ઘ",
		"ch": "ચ", "chh": "છ", "j": "જ", "jh": "ઝ",
		"t": "ટ", "th": "ઠ", "d": "ડ", "dh": "ઢ", "n": "ણ",
		"p": "પ", "ph": "ફ", "b": "બ", "bh": "ભ", "m": "મ",
		"y": "ય", "r": "ર", "l": "લ", "v": "વ", "w": "વ",
		"sh": "શ", "s": "સ", "h": "હ",
	},
	"kannada": {
		"a": "ಅ", "aa": "ಆ", "i": "ಇ", "ii": "ಈ", "u": "ಉ", "uu": "ಊ",
		"e": "ಏ", "ai": "ಐ", "o": "ಓ", "au": "ಔ",
		"k": "ಕ", "kh": "ಖ", "g": "ಗ", "gh": "ಘ",
		"ch": "ಚ", "chh": "ಛ", "j": "ಜ", "jh": "ಝ",
		"t": "ಟ", "th": "ಠ", "d": "ಡ", "dh": "ಢ", "n": "ಣ",
		"p": "ಪ", "ph": "ಫ", "b": "ಬ", "bh": "ಭ", "m": "ಮ",
		"y": "ಯ", "r": "ರ", "l": "ಲ", "v": "ವ", "w": "ವ",
		"sh": "ಶ", "s": "ಸ", "h": "ಹ",
	},
}

func init() {
	// Marathi shares the Devanagari table with Hindi.
	maps["marathi"] = maps["hindi"]
}

// Word renders a Latin-script word in the target script by greedy
// digraph-first substitution. Characters without a mapping (digits,
// punctuation) pass through unchanged. Unsupported languages return the
// word as-is.
func Word(word, lang string) string {
	table, ok := maps[lang]
	if !ok {
		return word
	}

	lower := strings.ToLower(word)
	var b strings.Builder
	runes := []rune(lower)
	for i := 0; i < len(runes); i++ {
		// Longest match first: three-rune, then two-rune digraphs.
		matched := false
		for n := 3; n >= 2; n-- {
			if i+n <= len(runes) {
				if out, ok := table[string(runes[i:i+n])]; ok {
					b.WriteString(out)
					i += n - 1
					matched = true
					break
				}
			}
		}
		if matched {
			continue
		}
		if out, ok := table[string(runes[i])]; ok {
			b.WriteString(out)
		} else {
			b.WriteRune(runes[i])
		}
	}
	return b.String()
}

var (
	capitalizedRe = regexp.MustCompile(`\b[A-Z][a-z]+(?:\s+[A-Z][a-z]+)*\b`)
	allCapsRe     = regexp.MustCompile(`\b[A-Z]{2,}\b`)
	addressRe     = regexp.MustCompile(`(?i)\d+\s+[A-Z][a-z]+(?:\s+[A-Z][a-z]+)*\s+(?:Street|Road|Avenue|Lane|Drive|Boulevard)`)
)

// ProperNouns extracts likely proper nouns from text: capitalized word
// runs, all-caps tokens and street addresses. Heuristic only; the
// result is deduplicated and sorted.
func ProperNouns(text string) []string {
	seen := make(map[string]bool)
	for _, re := range []*regexp.Regexp{capitalizedRe, allCapsRe, addressRe} {
		for _, m := range re.FindAllString(text, -1) {
			seen[m] = true
		}
	}

	nouns := make([]string, 0, len(seen))
	for n := range seen {
		nouns = append(nouns, n)
	}
	sort.Strings(nouns)
	return nouns
}

// residualAllowlist holds Latin abbreviations acceptable in any output.
var residualAllowlist = map[string]bool{
	"Ltd": true, "Pvt": true, "Inc": true, "LLC": true,
	"Dr": true, "Mr": true, "Mrs": true, "Ms": true,
}

var latinWordRe = regexp.MustCompile(`\b[A-Za-z]{3,}\b`)

// ResidualLatinWords returns the Latin-script words of 3+ letters left
// in text, excluding allow-listed abbreviations. For a non-English
// target the general-case expectation is an empty result.
func ResidualLatinWords(text string) []string {
	var residual []string
	for _, w := range latinWordRe.FindAllString(text, -1) {
		if residualAllowlist[w] {
			continue
		}
		residual = append(residual, w)
	}
	return residual
}

// ruleExamples holds per-language transliteration examples shown to the
// model. Each demonstrates phonetic rendering, not translation.
var ruleExamples = map[string]string{
	"hindi": `Examples of correct transliteration:
- "John Smith" → "जॉन स्मिथ"
- "ABC Corporation" → "एबीसी कॉर्पोरेशन"
- "123 Main Street" → "123 मेन स्ट्रीट"
- "New Delhi" → "नई दिल्ली"`,
	"gujarati": `Examples of correct transliteration:
- "John Smith" → "જોન સ્મિથ"
- "ABC Corporation" → "એબીસી કોર્પોરેશન"
- "123 Main Street" → "123 મેઇન સ્ટ્રીટ"
- "Ahmedabad" → "અમદાવાદ"`,
	"marathi": `Examples of correct transliteration:
- "John Smith" → "जॉन स्मिथ"
- "ABC Corporation" → "एबीसी कॉर्पोरेशन"
- "123 Main Street" → "123 मेन स्ट्रीट"
- "Mumbai" → "मुंबई"`,
	"kannada": `Examples of correct transliteration:
- "John Smith" → "ಜಾನ್ ಸ್ಮಿತ್"
- "ABC Corporation" → "ಎಬಿಸಿ ಕಾರ್ಪೊರೇಶನ್"
- "123 Main Street" → "123 ಮೈನ್ ಸ್ಟ್ರೀಟ್"
- "Bangalore" → "ಬೆಂಗಳೂರು"`,
}

// Rules returns the transliteration policy block for the translation
// prompt, or "" when lang needs none (english or unsupported).
func Rules(lang string) string {
	if !Supported(lang) {
		return ""
	}

	return fmt.Sprintf(`CRITICAL TRANSLITERATION RULES:
1. ALL proper nouns (names, places, companies) MUST be transliterated to %[1]s script
2. ALL addresses including street names MUST be transliterated
3. Company names and acronyms MUST be transliterated phonetically
4. Numbers may remain in Arabic numerals (1, 2, 3)
5. NO source-script words may remain in the output - everything must be in %[1]s script

%[2]s

Remember: the goal is 100%% %[1]s output. Even if a word is originally English, it must be written in %[1]s script.`,
		lang, ruleExamples[lang])
}
