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

	"github.com/spf13/cobra"

	"github.com/devalla/anuvad/internal/detector"
	"github.com/devalla/anuvad/internal/doctype"
)

var classifyCmd = &cobra.Command{
	Use:   "classify <file>",
	Short: "Detect the document type and language of a legal document",
	Long: `Classify a legal document by keyword inspection, without calling
any translation backend.

Recognised types: agreement, affidavit, power_of_attorney, lease,
will, notice, petition, appeal; anything else is reported as general.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read file: %w", err)
		}
		text := string(raw)

		fmt.Printf("Document type: %s\n", doctype.Detect(text))

		det := detector.New()
		if lang, ok := det.DetectName(text); ok {
			fmt.Printf("Language: %s\n", lang)
		} else {
			fmt.Printf("Language: unknown\n")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(classifyCmd)
}
