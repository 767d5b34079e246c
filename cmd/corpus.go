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
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/devalla/anuvad/internal/corpus"
)

var corpusCmd = &cobra.Command{
	Use:   "corpus",
	Short: "Inspect the reference document corpus",
}

var corpusStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show corpus document counts by language and type",
	RunE: func(cmd *cobra.Command, args []string) error {
		ix, err := corpus.Load(corpusDir())
		if err != nil {
			return fmt.Errorf("failed to load corpus: %w", err)
		}

		stats := ix.Stats()
		fmt.Printf("Total documents: %d\n", stats.TotalDocuments)

		fmt.Println("\nBy language:")
		for _, k := range sortedKeys(stats.Languages) {
			fmt.Printf("  %-12s %d\n", k, stats.Languages[k])
		}
		fmt.Println("\nBy document type:")
		for _, k := range sortedKeys(stats.DocumentTypes) {
			fmt.Printf("  %-20s %d\n", k, stats.DocumentTypes[k])
		}
		return nil
	},
}

var (
	corpusSearchLang  string
	corpusSearchType  string
	corpusSearchLimit int
)

var corpusSearchCmd = &cobra.Command{
	Use:   "search <text>",
	Short: "Find corpus documents similar to the given text",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ix, err := corpus.Load(corpusDir())
		if err != nil {
			return fmt.Errorf("failed to load corpus: %w", err)
		}

		docs := ix.Search(args[0], corpusSearchLang, corpusSearchType, corpusSearchLimit)
		if len(docs) == 0 {
			fmt.Println("No similar documents found.")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tLANGUAGE\tTYPE\tSIMILARITY\tTITLE")
		for _, d := range docs {
			fmt.Fprintf(w, "%s\t%s\t%s\t%.1f\t%s\n",
				d.ID, d.Language, d.DocumentType, corpus.Similarity(args[0], d.Content), d.Title)
		}
		return w.Flush()
	},
}

var (
	corpusExamplesLang  string
	corpusExamplesType  string
	corpusExamplesLimit int
)

var corpusExamplesCmd = &cobra.Command{
	Use:   "examples",
	Short: "List reference documents for a language and document type",
	RunE: func(cmd *cobra.Command, args []string) error {
		ix, err := corpus.Load(corpusDir())
		if err != nil {
			return fmt.Errorf("failed to load corpus: %w", err)
		}

		docs := ix.Examples(corpusExamplesLang, corpusExamplesType, corpusExamplesLimit)
		if len(docs) == 0 {
			fmt.Println("No matching documents.")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tLANGUAGE\tTYPE\tTITLE")
		for _, d := range docs {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", d.ID, d.Language, d.DocumentType, d.Title)
		}
		return w.Flush()
	},
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func init() {
	rootCmd.AddCommand(corpusCmd)

	corpusSearchCmd.Flags().StringVarP(&corpusSearchLang, "language", "l", "", "Filter by language")
	corpusSearchCmd.Flags().StringVar(&corpusSearchType, "doc-type", "", "Filter by document type")
	corpusSearchCmd.Flags().IntVarP(&corpusSearchLimit, "limit", "n", 5, "Maximum results")

	corpusExamplesCmd.Flags().StringVarP(&corpusExamplesLang, "language", "l", "", "Filter by language")
	corpusExamplesCmd.Flags().StringVar(&corpusExamplesType, "doc-type", "", "Filter by document type")
	corpusExamplesCmd.Flags().IntVarP(&corpusExamplesLimit, "limit", "n", 5, "Maximum results")

	corpusCmd.AddCommand(corpusStatsCmd)
	corpusCmd.AddCommand(corpusSearchCmd)
	corpusCmd.AddCommand(corpusExamplesCmd)
}
