package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/toastdriven/attain/pkg/corpus"
	"github.com/toastdriven/attain/pkg/tokenize"
)

var corpusCmd = &cobra.Command{
	Use:   "corpus",
	Short: "Manage stored training corpora",
}

var corpusAddCmd = &cobra.Command{
	Use:   "add <name> [file]",
	Short: "Tokenize a text file (or stdin) and store it under a name",
	Long: `Add normalizes a text source into a token sequence (lower-cased words,
surrounding punctuation stripped) and stores it in the corpus database.
Adding to an existing name appends to that corpus.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]

		var source io.Reader = os.Stdin
		if len(args) == 2 {
			f, err := os.Open(args[1])
			if err != nil {
				return fmt.Errorf("failed to open corpus file: %w", err)
			}
			defer func() { _ = f.Close() }()
			source = f
		}

		tokens, err := tokenize.New().Split(source)
		if err != nil {
			return fmt.Errorf("failed to tokenize input: %w", err)
		}
		if len(tokens) == 0 {
			return fmt.Errorf("input contains no usable tokens")
		}

		db, store, err := openStore()
		if err != nil {
			return err
		}
		defer func() { _ = db.Close() }()

		ctx := cmd.Context()
		info, err := store.GetInfo(ctx, name)
		if errors.Is(err, corpus.ErrNotFound) {
			if err = store.Insert(ctx, name); err != nil {
				return fmt.Errorf("failed to create corpus %q: %w", name, err)
			}
			info, err = store.GetInfo(ctx, name)
		}
		if err != nil {
			return err
		}

		if err = store.AppendTokens(ctx, info, tokens); err != nil {
			return fmt.Errorf("failed to store tokens: %w", err)
		}

		fmt.Printf("Stored %d tokens in corpus %q\n", len(tokens), name)
		return nil
	},
}

var corpusListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored corpora",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		db, store, err := openStore()
		if err != nil {
			return err
		}
		defer func() { _ = db.Close() }()

		infos, err := store.GetInfos(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to list corpora: %w", err)
		}
		if len(infos) == 0 {
			fmt.Println("No corpora stored.")
			return nil
		}

		names := make([]string, 0, len(infos))
		for name := range infos {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			fmt.Printf("%s\t%d tokens\n", name, infos[name].TokenCount)
		}
		return nil
	},
}

var corpusRemoveCmd = &cobra.Command{
	Use:   "remove <name>",
	Short: "Delete a stored corpus and all of its tokens",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		db, store, err := openStore()
		if err != nil {
			return err
		}
		defer func() { _ = db.Close() }()

		ctx := cmd.Context()
		info, err := store.GetInfo(ctx, args[0])
		if err != nil {
			return err
		}
		if err = store.Remove(ctx, info); err != nil {
			return fmt.Errorf("failed to remove corpus %q: %w", args[0], err)
		}

		fmt.Printf("Removed corpus %q\n", args[0])
		return nil
	},
}

func init() {
	corpusCmd.AddCommand(corpusAddCmd)
	corpusCmd.AddCommand(corpusListCmd)
	corpusCmd.AddCommand(corpusRemoveCmd)
	rootCmd.AddCommand(corpusCmd)
}
