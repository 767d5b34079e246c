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
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/devalla/anuvad/internal/transliteration"
)

var transliterateLang string

var transliterateCmd = &cobra.Command{
	Use:   "transliterate <text-or-file>",
	Short: "Preview phonetic renderings of proper nouns",
	Long: `Extract likely proper nouns (names, companies, addresses) from the
given text or file and show a rough phonetic rendering in the target
script. This is an offline preview of what the translation prompt asks
the model to do; the model's own transliteration is authoritative.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if !transliteration.Supported(transliterateLang) {
			return fmt.Errorf("no transliteration script for %q (want hindi, gujarati, marathi or kannada)", transliterateLang)
		}

		text := args[0]
		if raw, err := os.ReadFile(args[0]); err == nil {
			text = string(raw)
		}

		nouns := transliteration.ProperNouns(text)
		if len(nouns) == 0 {
			fmt.Println("No proper nouns found.")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "SOURCE\tPREVIEW")
		for _, n := range nouns {
			words := strings.Fields(n)
			for i, word := range words {
				words[i] = transliteration.Word(word, transliterateLang)
			}
			fmt.Fprintf(w, "%s\t%s\n", n, strings.Join(words, " "))
		}
		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(transliterateCmd)

	transliterateCmd.Flags().StringVarP(&transliterateLang, "target", "t", "hindi", "Target language script")
}
