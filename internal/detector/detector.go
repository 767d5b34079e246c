// Package detector wraps the lingua language detector, restricted to
// English and the Indian languages the application handles so that
// detection stays fast and unambiguous.
package detector

import (
	"strings"

	lingua "github.com/pemistahl/lingua-go"
)

// languageNames maps lingua languages to the lowercase names used by
// the terminology data file. Kannada is absent: lingua has no model
// for it, so Kannada output is validated by script instead.
var languageNames = map[lingua.Language]string{
	lingua.English:  "english",
	lingua.Hindi:    "hindi",
	lingua.Gujarati: "gujarati",
	lingua.Marathi:  "marathi",
	lingua.Bengali:  "bengali",
	lingua.Punjabi:  "punjabi",
	lingua.Tamil:    "tamil",
	lingua.Telugu:   "telugu",
	lingua.Urdu:     "urdu",
}

type Detector struct {
	detector lingua.LanguageDetector
}

// New builds a detector over the supported language set. Building is
// expensive; reuse the instance.
func New() *Detector {
	langs := make([]lingua.Language, 0, len(languageNames))
	for lang := range languageNames {
		langs = append(langs, lang)
	}
	detector := lingua.NewLanguageDetectorBuilder().
		FromLanguages(langs...).
		Build()

	return &Detector{detector: detector}
}

// Detect returns the detected language of text.
func (d *Detector) Detect(text string) (lingua.Language, bool) {
	if text == "" {
		return lingua.Unknown, false
	}
	return d.detector.DetectLanguageOf(text)
}

// DetectName returns the detected language as a lowercase name
// ("english", "hindi", …), or ok=false when detection is ambiguous.
func (d *Detector) DetectName(text string) (string, bool) {
	lang, ok := d.Detect(text)
	if !ok {
		return "", false
	}
	name, ok := languageNames[lang]
	return name, ok
}

// KnownLanguage reports whether the detector has a model for the given
// language name.
func KnownLanguage(name string) bool {
	for _, n := range languageNames {
		if n == strings.ToLower(name) {
			return true
		}
	}
	return false
}
