package cmd

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/bragi-io/bragi/pkg/mnemonic"
)

// encodeCmd represents the encode command
var encodeCmd = &cobra.Command{
	Use:   "encode [file]",
	Short: "Encode binary data into a phrase",
	Long: `Encode binary data into a mnemonic phrase.

Input is read from the given file, from --hex, or from stdin.

Examples:
  bragi encode secret.bin
  bragi encode --hex 010203
  head -c 16 /dev/urandom | bragi encode`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		hexInput, _ := cmd.Flags().GetString("hex")

		data, err := readInput(cmd, args, hexInput)
		if err != nil {
			return err
		}

		codec := mnemonic.NewCodec()
		fmt.Fprintln(cmd.OutOrStdout(), codec.Encode(data))
		return nil
	},
}

// readInput resolves the encode payload: --hex wins, then a file argument,
// then stdin.
func readInput(cmd *cobra.Command, args []string, hexInput string) ([]byte, error) {
	if hexInput != "" {
		data, err := hex.DecodeString(hexInput)
		if err != nil {
			return nil, fmt.Errorf("invalid hex input: %w", err)
		}
		return data, nil
	}
	if len(args) == 1 {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return nil, fmt.Errorf("failed to read input file: %w", err)
		}
		return data, nil
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return nil, fmt.Errorf("failed to read stdin: %w", err)
	}
	return data, nil
}

func init() {
	rootCmd.AddCommand(encodeCmd)
	encodeCmd.Flags().String("hex", "", "Encode a hex string instead of file/stdin input")
}
