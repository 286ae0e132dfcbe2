package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bragi-io/bragi/pkg/dict"
)

// wordsCmd represents the words command
var wordsCmd = &cobra.Command{
	Use:   "words",
	Short: "Inspect the mnemonic dictionary",
	Long: `Inspect the fixed 1024-word dictionary backing the codec.

Without flags the dictionary's shape is printed. Use --index to look up
a word by position, or --word to look up a position by word.

Examples:
  bragi words
  bragi words --index 1020
  bragi words --word sugar`,
	RunE: func(cmd *cobra.Command, args []string) error {
		index, _ := cmd.Flags().GetInt("index")
		word, _ := cmd.Flags().GetString("word")
		table := dict.English()

		if index >= 0 {
			w, err := table.Word(uint16(index))
			if err != nil {
				return fmt.Errorf("failed to look up index %d: %w", index, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\n", index, w)
			return nil
		}

		if word != "" {
			i, err := table.Index(word)
			if err != nil {
				return fmt.Errorf("failed to look up word %q: %w", word, err)
			}
			canonical, _ := table.Word(i)
			fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\n", i, canonical)
			return nil
		}

		fmt.Fprintf(cmd.OutOrStdout(), "words: %d\nunique prefix: %d characters\n",
			table.Len(), dict.UniquePrefixLen)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(wordsCmd)
	wordsCmd.Flags().Int("index", -1, "Look up the word at this index")
	wordsCmd.Flags().String("word", "", "Look up the index of this word")
}
