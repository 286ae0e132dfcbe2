package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "bragi",
	Short: "bragi - mnemonic phrase codec",
	Long: `bragi converts arbitrary binary data into human-pronounceable phrases
and back. Each word of a phrase carries 16 bits: 10 bits select a word
from a fixed 1024-word dictionary and 6 bits become a decimal suffix
between 0 and 63. The suffix 64 marks a final word carrying a single
byte, so buffers of any length round-trip exactly.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
