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
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/devalla/anuvad/internal/store"
)

var versionsCmd = &cobra.Command{
	Use:   "versions",
	Short: "Inspect saved document versions",
	Long: `Every translation run with --document-id appends a version under
that document. List a document's history or print one version in full.`,
}

var versionsListCmd = &cobra.Command{
	Use:   "list <document-id>",
	Short: "List the saved versions of a document, oldest first",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := store.New(dbPath)
		if err != nil {
			return fmt.Errorf("failed to open database: %w", err)
		}
		defer db.Close()

		versions, err := db.ListVersions(context.Background(), args[0])
		if err != nil {
			return fmt.Errorf("failed to list versions: %w", err)
		}
		if len(versions) == 0 {
			fmt.Printf("No versions saved for document %s.\n", args[0])
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "#\tID\tSOURCE\tTARGET\tTYPE\tCONF\tCREATED")
		for i, v := range versions {
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%d\t%s\n",
				i+1, v.ID, v.SourceLang, v.TargetLang, v.DocumentType,
				v.Confidence, v.CreatedAt.Format("2006-01-02 15:04"))
		}
		return w.Flush()
	},
}

var versionsShowCmd = &cobra.Command{
	Use:   "show <version-id>",
	Short: "Print one version's source and translated text",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := store.New(dbPath)
		if err != nil {
			return fmt.Errorf("failed to open database: %w", err)
		}
		defer db.Close()

		v, err := db.GetVersion(context.Background(), args[0])
		if err != nil {
			return err
		}

		fmt.Printf("Version:       %s\n", v.ID)
		fmt.Printf("Document:      %s\n", v.DocumentID)
		fmt.Printf("Languages:     %s → %s\n", v.SourceLang, v.TargetLang)
		fmt.Printf("Document type: %s\n", v.DocumentType)
		fmt.Printf("Confidence:    %d%%\n", v.Confidence)
		fmt.Printf("Created:       %s\n", v.CreatedAt.Format("2006-01-02 15:04:05"))
		fmt.Printf("\n--- Source ---\n%s\n", v.SourceText)
		fmt.Printf("\n--- Translation ---\n%s\n", v.TranslatedText)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(versionsCmd)

	versionsCmd.AddCommand(versionsListCmd)
	versionsCmd.AddCommand(versionsShowCmd)
}
