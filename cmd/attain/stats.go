package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show statistics for the corpus database",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		format, _ := cmd.Flags().GetString("format")

		db, store, err := openStore()
		if err != nil {
			return err
		}
		defer func() { _ = db.Close() }()

		stats, err := store.Stats(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to gather stats: %w", err)
		}

		switch format {
		case "yaml":
			out, err := yaml.Marshal(stats)
			if err != nil {
				return fmt.Errorf("failed to marshal stats: %w", err)
			}
			fmt.Print(string(out))
		case "text":
			fmt.Printf("Corpora:         %d\n", len(stats.Corpora))
			fmt.Printf("Total tokens:    %d\n", stats.TotalTokens)
			fmt.Printf("Distinct tokens: %d\n", stats.DistinctTokens)
			for _, info := range stats.Corpora {
				fmt.Printf("  %s\t%d tokens\n", info.Name, info.TokenCount)
			}
		default:
			return fmt.Errorf("unknown format %q (want text or yaml)", format)
		}
		return nil
	},
}

func init() {
	statsCmd.Flags().String("format", "text", "output format: text or yaml")

	rootCmd.AddCommand(statsCmd)
}
