// Package validator checks that a translation result is in the expected target language.
package validator

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/devalla/anuvad/internal/detector"
	"github.com/devalla/anuvad/internal/transliteration"
)

// minValidationLength is the minimum rune count required to attempt
// validation. Shorter texts produce unreliable results and are accepted
// without validation.
const minValidationLength = 20

// scriptDominance is the minimum share of letters that must belong to
// the target script for an Indian-language translation to pass.
const scriptDominance = 0.5

// Validator checks that a translation result is written in the expected
// target language. Indian-language output is validated by script
// membership, which covers Kannada where the statistical detector has
// no model. English output falls back to the detector. The detector is
// expensive to build; reuse the instance.
type Validator struct {
	det *detector.Detector
}

// New creates a Validator backed by the lingua-go language detector.
func New() *Validator {
	return &Validator{det: detector.New()}
}

// IsValid returns true when translatedText appears to be written in
// targetLang.
//
// Short texts (fewer than minValidationLength runes) and texts whose
// language cannot be determined pass without error. When validation
// fails the returned error names what was expected and what was seen.
func (v *Validator) IsValid(translatedText, targetLang string) (bool, error) {
	if targetLang == "" {
		return true, nil
	}

	text := strings.TrimSpace(translatedText)
	if text == "" {
		return false, fmt.Errorf("translation is empty")
	}

	if len([]rune(text)) < minValidationLength {
		return true, nil
	}

	if rng := transliteration.ScriptRange(strings.ToLower(targetLang)); rng != nil {
		return v.validateScript(text, targetLang, rng)
	}

	if !detector.KnownLanguage(targetLang) {
		// No script table and no detector model for this language.
		return true, nil
	}

	detected, ok := v.det.DetectName(text)
	if !ok {
		// Ambiguous language — cannot validate, pass through.
		return true, nil
	}

	if !strings.EqualFold(detected, targetLang) {
		return false, fmt.Errorf("expected %s but detected %s", targetLang, detected)
	}

	return true, nil
}

// validateScript checks that most letters in text fall inside the
// target script's Unicode range. Digits, punctuation and whitespace are
// ignored; legal documents keep clause numbers and section symbols in
// the source script.
func (v *Validator) validateScript(text, targetLang string, rng *unicode.RangeTable) (bool, error) {
	var letters, inScript int
	for _, r := range text {
		if !unicode.IsLetter(r) {
			continue
		}
		letters++
		if unicode.Is(rng, r) {
			inScript++
		}
	}
	if letters == 0 {
		return true, nil
	}

	share := float64(inScript) / float64(letters)
	if share < scriptDominance {
		return false, fmt.Errorf("expected %s script but only %d%% of letters match", targetLang, int(share*100))
	}
	return true, nil
}
