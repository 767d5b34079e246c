/*
Copyright © 2025 Arjun Devalla <arjun.devalla@gmail.com>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/devalla/anuvad/internal"
	"github.com/devalla/anuvad/internal/corpus"
	"github.com/devalla/anuvad/internal/detector"
	"github.com/devalla/anuvad/internal/engine"
	"github.com/devalla/anuvad/internal/llm"
	"github.com/devalla/anuvad/internal/prompt"
	"github.com/devalla/anuvad/internal/quality"
	"github.com/devalla/anuvad/internal/store"
	"github.com/devalla/anuvad/internal/terminology"
	"github.com/devalla/anuvad/internal/validator"
)

var (
	inputFile  string
	outputFile string
	sourceLang string
	targetLang string
	docType    string
	termFlags  []string
	documentID string

	backendName string
	modelName   string
	apiKey      string
	baseURL     string
	ollamaURL   string

	noCache        bool
	fuzzyThreshold float64
	noReport       bool
)

var translateCmd = &cobra.Command{
	Use:   "translate",
	Short: "Translate a legal document",
	Long: `Translate a legal document, grounding the model in the legal
terminology database, similar corpus documents, and any glossary
overrides for the language pair.

Available backends:
  - openai      OpenAI Chat Completions (requires API key)
  - openrouter  OpenRouter (requires API key)
  - ollama      Ollama (self-hosted)

Per-request terminology overrides:
  --term "consideration=प्रतिफल" --term "deed=विलेख"

Large documents are split on paragraph boundaries and translated in
sequence; progress is reported on stderr.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if inputFile == outputFile {
			return fmt.Errorf("input file and output file cannot be the same")
		}

		raw, err := os.ReadFile(inputFile)
		if err != nil {
			return fmt.Errorf("failed to read input file: %w", err)
		}
		text := string(raw)

		ctx := context.Background()

		if sourceLang == "auto" {
			det := detector.New()
			if detected, ok := det.DetectName(text); ok {
				sourceLang = detected
				fmt.Fprintf(os.Stderr, "Detected source language: %s\n", sourceLang)
			} else {
				return fmt.Errorf("could not detect source language; pass --source")
			}
		}

		glossary, err := parseTermFlags(termFlags)
		if err != nil {
			return err
		}

		var db *store.Store
		if !noCache && dbPath != "" {
			db, err = store.New(dbPath)
			if err != nil {
				return fmt.Errorf("failed to open database: %w", err)
			}
			defer db.Close()

			// Stored glossary terms apply under any ad-hoc --term overrides.
			if stored, gerr := db.GetGlossaryTerms(ctx, sourceLang, targetLang); gerr == nil {
				glossary = append(stored, glossary...)
			}

			cached, found, cacheErr := db.GetCachedTranslation(ctx, text, sourceLang, targetLang)
			if cacheErr == nil && !found && fuzzyThreshold > 0 {
				cached, found, cacheErr = db.FuzzyGetCachedTranslation(ctx, text, sourceLang, targetLang, fuzzyThreshold)
			}
			if cacheErr == nil && found {
				fmt.Fprintf(os.Stderr, "Using cached translation\n")
				if err := writeOutput(outputFile, cached); err != nil {
					return err
				}
				fmt.Printf("Successfully translated %s to %s (from cache)\n", sourceLang, targetLang)
				return nil
			}
		}

		terms, err := terminology.Load(terminologyPath())
		if err != nil {
			return fmt.Errorf("failed to load terminology: %w", err)
		}
		ix, err := corpus.Load(corpusDir())
		if err != nil {
			return fmt.Errorf("failed to load corpus: %w", err)
		}

		backend, err := buildBackend()
		if err != nil {
			return err
		}

		eng := engine.New(prompt.NewComposer(terms, ix), backend)

		req := internal.TranslationRequest{
			ID:           uuid.NewString(),
			SourceText:   text,
			SourceLang:   sourceLang,
			TargetLang:   targetLang,
			DocumentType: docType,
			Glossary:     glossary,
			Timestamp:    time.Now(),
		}

		res, err := eng.TranslateLarge(ctx, req, func(pct float64) {
			fmt.Fprintf(os.Stderr, "Progress: %.0f%%\n", pct)
		})
		if err != nil {
			return err
		}
		if res.TranslatedText == "" {
			return fmt.Errorf("backend returned an empty translation")
		}

		v := validator.New()
		if ok, verr := v.IsValid(res.TranslatedText, targetLang); !ok {
			fmt.Fprintf(os.Stderr, "Warning: translation may not be in %s: %v\n", targetLang, verr)
		}

		if !noReport {
			corpusMatches := len(ix.Search(text, "", string(res.DocumentType), 3))
			scorer := quality.NewScorer(terms)
			sections := scorer.AnalyzeDocument(text, res.TranslatedText, corpusMatches)
			printQualityReport(quality.Aggregate(sections), sections)
		}

		if db != nil {
			_ = db.SaveToMemory(ctx, text, sourceLang, targetLang, res.TranslatedText, string(res.DocumentType), res.Confidence)
			if documentID != "" {
				if _, verr := db.SaveVersion(ctx, documentID, text, res.TranslatedText, sourceLang, targetLang, string(res.DocumentType), res.Confidence); verr != nil {
					fmt.Fprintf(os.Stderr, "Warning: failed to save version: %v\n", verr)
				}
			}
		}

		if err := writeOutput(outputFile, res.TranslatedText); err != nil {
			return err
		}

		fmt.Printf("Successfully translated %s to %s\n", sourceLang, targetLang)
		fmt.Printf("Document type: %s\n", res.DocumentType)
		fmt.Printf("Script confidence: %d%%\n", res.Confidence)
		return nil
	},
}

// parseTermFlags converts repeated "source=target" flags into glossary
// overrides.
func parseTermFlags(flags []string) ([]internal.GlossaryTerm, error) {
	var glossary []internal.GlossaryTerm
	for _, f := range flags {
		src, tgt, ok := strings.Cut(f, "=")
		if !ok || strings.TrimSpace(src) == "" {
			return nil, fmt.Errorf("invalid --term %q, want source=target", f)
		}
		glossary = append(glossary, internal.GlossaryTerm{
			Source: strings.TrimSpace(src),
			Target: strings.TrimSpace(tgt),
		})
	}
	return glossary, nil
}

// buildBackend constructs the configured LLM backend. API keys come
// from flags or from ANUVAD_API_KEY.
func buildBackend() (llm.Backend, error) {
	key := apiKey
	if key == "" {
		key = viper.GetString("api-key")
	}

	switch backendName {
	case "openai":
		if key == "" {
			return nil, fmt.Errorf("openai backend requires --api-key or ANUVAD_API_KEY")
		}
		return llm.NewOpenAIBackend(key, baseURL, modelName), nil
	case "openrouter":
		if key == "" {
			return nil, fmt.Errorf("openrouter backend requires --api-key or ANUVAD_API_KEY")
		}
		url := baseURL
		if url == "" {
			url = "https://openrouter.ai/api/v1"
		}
		return llm.NewOpenAIBackend(key, url, modelName), nil
	case "ollama":
		return llm.NewOllamaBackend(ollamaURL, modelName), nil
	default:
		return nil, fmt.Errorf("unknown backend %q (want openai, openrouter or ollama)", backendName)
	}
}

func printQualityReport(overall quality.Score, sections []quality.SectionScore) {
	fmt.Fprintf(os.Stderr, "\nQuality report\n")
	fmt.Fprintf(os.Stderr, "  Overall score: %d (%s confidence)\n", overall.Overall, overall.Confidence)
	fmt.Fprintf(os.Stderr, "  Terminology: %d  Corpus: %d  Complexity: %d\n",
		overall.Factors.TerminologyMatch, overall.Factors.CorpusSimilarity, overall.Factors.Complexity)
	fmt.Fprintf(os.Stderr, "  %s\n", overall.Details)
	for i, s := range sections {
		if s.NeedsReview {
			fmt.Fprintf(os.Stderr, "  Section %d needs review (score %d): %s\n", i+1, s.Score.Overall, s.Score.Details)
		}
	}
}

func writeOutput(path, content string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}

func init() {
	rootCmd.AddCommand(translateCmd)

	translateCmd.Flags().StringVarP(&inputFile, "input", "i", "", "Input file to translate (required)")
	translateCmd.Flags().StringVarP(&outputFile, "output", "o", "", "Output file for translation (required)")
	translateCmd.Flags().StringVarP(&sourceLang, "source", "s", "auto", "Source language (english, hindi, gujarati, marathi, kannada)")
	translateCmd.Flags().StringVarP(&targetLang, "target", "t", "", "Target language (required)")
	translateCmd.Flags().StringVar(&docType, "doc-type", "", "Document type (agreement, affidavit, lease, ...); detected when empty")
	translateCmd.Flags().StringArrayVar(&termFlags, "term", nil, "Terminology override as source=target (repeatable)")
	translateCmd.Flags().StringVar(&documentID, "document-id", "", "Save the result as a new version of this document")

	translateCmd.Flags().StringVar(&backendName, "backend", "ollama", "LLM backend: openai, openrouter or ollama")
	translateCmd.Flags().StringVar(&modelName, "model", "", "Model name (backend default when empty)")
	translateCmd.Flags().StringVar(&apiKey, "api-key", "", "API key for openai/openrouter (or ANUVAD_API_KEY)")
	translateCmd.Flags().StringVar(&baseURL, "base-url", "", "Custom API base URL for OpenAI-compatible endpoints")
	translateCmd.Flags().StringVar(&ollamaURL, "ollama-url", "http://localhost:11434", "Ollama base URL")

	translateCmd.Flags().BoolVar(&noCache, "no-cache", false, "Disable translation memory cache")
	translateCmd.Flags().Float64Var(&fuzzyThreshold, "fuzzy", 0, "Fuzzy cache match threshold 0-1 (0 disables)")
	translateCmd.Flags().BoolVar(&noReport, "no-report", false, "Skip the quality report")

	translateCmd.MarkFlagRequired("input")
	translateCmd.MarkFlagRequired("output")
	translateCmd.MarkFlagRequired("target")
}
