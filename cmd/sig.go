package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/noesis-atp/noesis/signature"
	"github.com/noesis-atp/noesis/szs"
	"github.com/noesis-atp/noesis/tptp"
)

var sigCmd = &cobra.Command{
	Use:   "sig <file>",
	Short: "Read a TPTP file's type declarations into a signature table",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			fmt.Fprintln(cmd.OutOrStdout(), szs.InputError)
			return err
		}

		sig := signature.New()
		stmts, err := tptp.NewReader(string(data), sig).ReadAll()
		if err != nil {
			if szsErr, ok := err.(szs.Error); ok {
				fmt.Fprintln(cmd.OutOrStdout(), szsErr.Status)
			}
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%d statement(s) read\n", len(stmts))
		for _, e := range sig.All() {
			fmt.Fprintf(out, "%-4d %-20s %-16s", e.Key, e.Name, e.Kind)
			if e.Type != nil {
				fmt.Fprintf(out, " : %s", e.Type)
			}
			fmt.Fprintln(out)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(sigCmd)
}
