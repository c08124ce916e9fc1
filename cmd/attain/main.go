// Package main is the entry point for the attain CLI, a Markov-chain
// pseudo-sentence generator over stored or ad-hoc text corpora.
package main

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the attain CLI.
var rootCmd = &cobra.Command{
	Use:   "attain",
	Short: "Generate pseudo-sentences from Markov chains",
	Long: `attain trains a first-order Markov chain over a text corpus and walks it
to produce new pseudo-sentences.

Corpora can be stored by name in a local SQLite database (see the corpus
subcommand) or read directly from a file or stdin. A fresh chain is
trained on every run; only raw corpora are ever persisted.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		setupLogger(viper.GetString("log_level"))
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./attain.yaml or ~/.config/attain/attain.yaml)")
}

func initConfig() {
	setConfigDefaults()

	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("attain")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "attain"))
		}
	}

	viper.SetEnvPrefix("ATTAIN")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		// First run without an explicit config: write the defaults so
		// they are discoverable and editable.
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) && cfgFile == "" {
			writeDefaultConfig("attain.yaml")
		}
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
