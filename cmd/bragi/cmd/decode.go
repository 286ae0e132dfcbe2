package cmd

import (
	"encoding/hex"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bragi-io/bragi/pkg/mnemonic"
)

// decodeCmd represents the decode command
var decodeCmd = &cobra.Command{
	Use:   "decode [word...]",
	Short: "Decode a phrase back into binary data",
	Long: `Decode a mnemonic phrase back into the exact bytes it encodes.

The phrase is taken from the arguments, or from stdin when none are
given. Output is raw bytes on stdout; use --hex for a text rendering.

Examples:
  bragi decode abyss2 adhesive64 --hex
  bragi decode sugar21 toffee21 mob32 > secret.bin
  cat phrase.txt | bragi decode --hex`,
	RunE: func(cmd *cobra.Command, args []string) error {
		asHex, _ := cmd.Flags().GetBool("hex")

		phrase := strings.Join(args, " ")
		if len(args) == 0 {
			raw, err := io.ReadAll(cmd.InOrStdin())
			if err != nil {
				return fmt.Errorf("failed to read stdin: %w", err)
			}
			phrase = string(raw)
		}

		codec := mnemonic.NewCodec()
		data, err := codec.Decode(phrase)
		if err != nil {
			return fmt.Errorf("failed to decode phrase: %w", err)
		}

		if asHex {
			fmt.Fprintln(cmd.OutOrStdout(), hex.EncodeToString(data))
			return nil
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	},
}

func init() {
	rootCmd.AddCommand(decodeCmd)
	decodeCmd.Flags().Bool("hex", false, "Print the decoded bytes as hex text")
}
