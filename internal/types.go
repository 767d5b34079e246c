package internal

import "time"

// Languages are referred to by full lowercase names throughout
// ("english", "hindi", "gujarati", "marathi", "kannada"), matching the
// keys of the terminology data file.

// GlossaryTerm is a user-supplied override mapping one source term to
// one target term for a single translation request.
type GlossaryTerm struct {
	Source string `json:"source"`
	Target string `json:"target"`
}

// TranslationRequest describes one translation job. It is constructed
// per call and discarded afterwards.
type TranslationRequest struct {
	ID           string         `json:"id"`
	SourceText   string         `json:"source_text"`
	SourceLang   string         `json:"source_lang"`
	TargetLang   string         `json:"target_lang"`
	DocumentType string         `json:"document_type,omitempty"`
	Glossary     []GlossaryTerm `json:"glossary,omitempty"`
	Timestamp    time.Time      `json:"timestamp"`
}
