// Package engine runs the translation pipeline: classify, compose the
// grounded prompt, invoke the backend, clean and post-process the
// output, and score how much of it landed in the target script. Large
// documents are split on paragraph boundaries and translated
// sequentially so each chunk fits comfortably in one model call.
package engine

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/devalla/anuvad/internal"
	"github.com/devalla/anuvad/internal/chunker"
	"github.com/devalla/anuvad/internal/doctype"
	"github.com/devalla/anuvad/internal/llm"
	"github.com/devalla/anuvad/internal/postprocess"
	"github.com/devalla/anuvad/internal/prompt"
	"github.com/devalla/anuvad/internal/transliteration"
)

// ErrTranslationFailed wraps backend transport failures so callers can
// distinguish "the service broke" from "the model returned nothing".
var ErrTranslationFailed = errors.New("translation failed")

// Result is the outcome of one translation. Confidence is a 0-100
// estimate of script completeness; for non-English targets it drops as
// untransliterated Latin words remain in the output.
type Result struct {
	TranslatedText string
	Confidence     int
	DocumentType   doctype.Type
}

// Engine orchestrates one translation call end to end.
type Engine struct {
	composer *prompt.Composer
	backend  llm.Backend
}

// New creates an Engine over the given prompt composer and backend.
func New(composer *prompt.Composer, backend llm.Backend) *Engine {
	return &Engine{composer: composer, backend: backend}
}

// Translate runs the full pipeline for one request. The document type
// is detected from the source text when the request leaves it empty.
// A backend transport failure returns an error wrapping
// ErrTranslationFailed; a reply with no extractable text yields an
// empty translation and no error.
func (e *Engine) Translate(ctx context.Context, req internal.TranslationRequest) (Result, error) {
	return e.translate(ctx, req, "")
}

// translate runs one model call. contextTail, when non-empty, is the
// end of the previously translated chunk and is shown to the model for
// continuity only.
func (e *Engine) translate(ctx context.Context, req internal.TranslationRequest, contextTail string) (Result, error) {
	docType := doctype.Type(req.DocumentType)
	if docType == "" {
		docType = doctype.Detect(req.SourceText)
	}

	spec := e.composer.Compose(req.SourceText, req.SourceLang, req.TargetLang, string(docType), req.Glossary)

	user := req.SourceText
	if contextTail != "" {
		user = fmt.Sprintf("Preceding translated text, for continuity only (do not repeat it):\n%s\n\nTranslate the following:\n%s",
			contextTail, req.SourceText)
	}

	raw, err := e.backend.Complete(ctx, []llm.Message{
		{Role: llm.RoleSystem, Content: spec.System},
		{Role: llm.RoleUser, Content: user},
	})
	if err != nil {
		return Result{}, fmt.Errorf("%w: %s: %v", ErrTranslationFailed, e.backend.Name(), err)
	}

	text := postprocess.Clean(raw)
	text = postprocess.ApplyGlossary(text, req.Glossary)

	return Result{
		TranslatedText: text,
		Confidence:     confidence(text, req.TargetLang),
		DocumentType:   docType,
	}, nil
}

// TranslateLarge translates a document of any size. Text within the
// chunk limit goes through a single call; longer documents are packed
// into paragraph-aligned chunks and translated sequentially, with
// onProgress (optional) reporting percent complete after each chunk.
// The document type is classified once over the whole text so every
// chunk is translated under the same framing, and each chunk after the
// first carries the tail of the previous translation for continuity.
func (e *Engine) TranslateLarge(ctx context.Context, req internal.TranslationRequest, onProgress func(float64)) (Result, error) {
	if req.DocumentType == "" {
		req.DocumentType = string(doctype.Detect(req.SourceText))
	}

	chunks := chunker.Pack(req.SourceText, chunker.DefaultMaxChars)
	if len(chunks) <= 1 {
		res, err := e.Translate(ctx, req)
		if err == nil && onProgress != nil {
			onProgress(100)
		}
		return res, err
	}

	parts := make([]string, 0, len(chunks))
	confidenceSum := 0
	contextTail := ""
	for i, chunk := range chunks {
		chunkReq := req
		chunkReq.SourceText = chunk

		res, err := e.translate(ctx, chunkReq, contextTail)
		if err != nil {
			return Result{}, fmt.Errorf("chunk %d/%d: %w", i+1, len(chunks), err)
		}
		parts = append(parts, res.TranslatedText)
		confidenceSum += res.Confidence
		contextTail = chunker.ExtractContext(res.TranslatedText, chunker.DefaultContextWords)

		if onProgress != nil {
			onProgress(float64(i+1) / float64(len(chunks)) * 100)
		}
	}

	return Result{
		TranslatedText: strings.Join(parts, "\n\n"),
		Confidence:     int(math.Round(float64(confidenceSum) / float64(len(chunks)))),
		DocumentType:   doctype.Type(req.DocumentType),
	}, nil
}

// confidence estimates script completeness of a translation. English
// targets get a flat high score; for Indian targets each residual
// Latin word (relative to total word count) costs double weight.
func confidence(text, targetLang string) int {
	if text == "" {
		return 0
	}
	if !transliteration.Supported(strings.ToLower(targetLang)) {
		return 95
	}

	words := len(strings.Fields(text))
	if words == 0 {
		return 0
	}
	residual := len(transliteration.ResidualLatinWords(text))

	score := 100 - float64(residual)/float64(words)*200
	if score < 0 {
		score = 0
	}
	return int(math.Round(score))
}
