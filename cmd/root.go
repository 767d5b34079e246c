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
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var version = "0.3.0"

var (
	cfgFile string
	dataDir string
	dbPath  string
)

var rootCmd = &cobra.Command{
	Use:   "anuvad",
	Short: "Legal document translator for Indian languages",
	Long: `Translates legal documents between English and Indian languages
(Hindi, Gujarati, Marathi, Kannada) using an LLM grounded in a legal
terminology database and a corpus of reference documents.

Every translation is scored for quality, checked for residual source
script, and remembered in a local translation memory.

Use "anuvad translate --help" for translation options.`,
	Version: version,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config file (default ~/.anuvad.yaml)")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "./data", "Directory holding terminology and corpus files")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "./data/anuvad.db", "SQLite database path")

	viper.BindPFlag("data-dir", rootCmd.PersistentFlags().Lookup("data-dir"))
	viper.BindPFlag("db", rootCmd.PersistentFlags().Lookup("db"))
}

// initConfig reads the config file (--config, or ~/.anuvad.yaml when
// present) and ANUVAD_* env vars.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else if home, err := os.UserHomeDir(); err == nil {
		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".anuvad")
	}

	viper.SetEnvPrefix("ANUVAD")
	viper.AutomaticEnv()

	_ = viper.ReadInConfig()

	dataDir = viper.GetString("data-dir")
	dbPath = viper.GetString("db")
}

// terminologyPath is the legal terminology database inside the data dir.
func terminologyPath() string {
	return filepath.Join(dataDir, "legal_terminology.json")
}

// corpusDir is the reference document corpus inside the data dir.
func corpusDir() string {
	return filepath.Join(dataDir, "corpus")
}
