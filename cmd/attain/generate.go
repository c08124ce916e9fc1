package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/toastdriven/attain/pkg/markov"
	"github.com/toastdriven/attain/pkg/tokenize"
)

// walkRetries bounds the automatic retries when a walk overruns the
// step cap. Each retry draws fresh random choices, so a handful of
// attempts is almost always enough on a sane corpus.
const walkRetries = 5

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Train a chain and generate pseudo-sentences",
	Long: `Generate trains a fresh Markov chain on a corpus and walks it to
produce pseudo-sentences. The corpus comes from the store (--corpus) or
straight from a text file (--file); exactly one source must be given.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		corpusName, _ := cmd.Flags().GetString("corpus")
		filePath, _ := cmd.Flags().GetString("file")
		seedWord, _ := cmd.Flags().GetString("seed-word")

		if (corpusName == "") == (filePath == "") {
			return fmt.Errorf("exactly one of --corpus or --file is required")
		}

		var tokens []string
		if corpusName != "" {
			db, store, err := openStore()
			if err != nil {
				return err
			}
			loaded, err := store.LoadTokens(cmd.Context(), corpusName)
			_ = db.Close()
			if err != nil {
				return err
			}
			tokens = loaded
		} else {
			f, err := os.Open(filePath)
			if err != nil {
				return fmt.Errorf("failed to open corpus file: %w", err)
			}
			tokens, err = tokenize.New().Split(f)
			_ = f.Close()
			if err != nil {
				return fmt.Errorf("failed to tokenize input: %w", err)
			}
		}

		chain := markov.New(
			markov.WithMaxSteps(viper.GetInt("max_steps")),
			markov.WithPunctuation(viper.GetString("punctuation")),
		)
		chain.SetLogger(logger)

		if err := chain.Train(tokens); err != nil {
			if errors.Is(err, markov.ErrEmptyCorpus) {
				return fmt.Errorf("corpus contains no usable tokens")
			}
			return fmt.Errorf("training failed: %w", err)
		}
		logger.Debug("Chain trained", slog.Int("known_states", chain.Len()))

		for i := 0; i < viper.GetInt("sentences"); i++ {
			sentence, err := generateOne(chain, seedWord)
			if err != nil {
				return err
			}
			fmt.Println(sentence)
		}
		return nil
	},
}

// generateOne produces a single sentence, retrying overlong walks with
// fresh random draws.
func generateOne(chain *markov.Chain, seedWord string) (string, error) {
	for attempt := 0; ; attempt++ {
		var sentence string
		var err error
		if seedWord != "" {
			var words []string
			words, err = chain.GenerateFrom(seedWord)
			sentence = chain.FormatSentence(words)
		} else {
			sentence, err = chain.GenerateSentence()
		}

		if err == nil {
			return sentence, nil
		}
		if !errors.Is(err, markov.ErrWalkTooLong) || attempt >= walkRetries {
			return "", fmt.Errorf("generation failed: %w", err)
		}
		logger.Warn("Walk exceeded step cap, retrying",
			slog.Int("attempt", attempt+1),
		)
	}
}

func init() {
	generateCmd.Flags().String("corpus", "", "name of a stored corpus to train on")
	generateCmd.Flags().String("file", "", "text file to tokenize and train on")
	generateCmd.Flags().String("seed-word", "", "start the walk from this corpus word instead of the chain start")
	generateCmd.Flags().Int("sentences", 0, "number of sentences to generate")
	generateCmd.Flags().Int("max-steps", 0, "maximum walk length before giving up")
	generateCmd.Flags().String("punct", "", "terminal punctuation mark")

	_ = viper.BindPFlag("sentences", generateCmd.Flags().Lookup("sentences"))
	_ = viper.BindPFlag("max_steps", generateCmd.Flags().Lookup("max-steps"))
	_ = viper.BindPFlag("punctuation", generateCmd.Flags().Lookup("punct"))

	rootCmd.AddCommand(generateCmd)
}
