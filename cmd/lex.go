package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/noesis-atp/noesis/tptp"
)

var lexCmd = &cobra.Command{
	Use:   "lex <file>",
	Short: "Tokenize a TPTP file and print its tokens",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}
		toks, err := tptp.NewLexer(string(data)).Tokenize()
		if err != nil {
			return err
		}
		for _, tok := range toks {
			fmt.Fprintln(cmd.OutOrStdout(), tok)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(lexCmd)
}
