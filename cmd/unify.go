package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/noesis-atp/noesis/kernel/fresh"
	"github.com/noesis-atp/noesis/kernel/huet"
	"github.com/noesis-atp/noesis/kernel/term"
	"github.com/noesis-atp/noesis/kernel/typesys"
	"github.com/noesis-atp/noesis/signature"
)

var (
	unifyLimit int
	unifyDepth int
)

var unifyCmd = &cobra.Command{
	Use:   "unify <lhs> <rhs>",
	Short: "Search for pre-unifiers of two terms written in a minimal S-expression syntax",
	Long: `unify parses lhs and rhs as prefix S-expressions -- (c a b) for
application, (\ (x i) body) for a one-parameter abstraction, ?X for a free
variable -- and prints up to --limit pre-unifiers from the Huet-style
search, one per line, stopping at --depth (spec.md section 4.6's
configurable maximum search depth).`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		sig := signature.New()
		gen := fresh.New(1)
		freeI := map[string]int{}
		freeT := map[string]typesys.Type{}

		lhs, err := newTermParser(args[0], sig, gen, freeI, freeT).Parse()
		if err != nil {
			return fmt.Errorf("parsing lhs: %w", err)
		}
		rhs, err := newTermParser(args[1], sig, gen, freeI, freeT).Parse()
		if err != nil {
			return fmt.Errorf("parsing rhs: %w", err)
		}

		stream := huet.Solve(sig, gen, lhs, rhs, unifyDepth)
		out := cmd.OutOrStdout()
		count := 0
		for count < unifyLimit {
			uni, ok := stream.Next(context.Background())
			if !ok {
				break
			}
			fmt.Fprintf(out, "sigma(lhs) = %s", term.Apply(uni.Subst, lhs))
			if len(uni.Residual) > 0 {
				fmt.Fprintf(out, "  (residual: ")
				for i, eq := range uni.Residual {
					if i > 0 {
						fmt.Fprint(out, ", ")
					}
					fmt.Fprintf(out, "%s =?= %s", eq.Left, eq.Right)
				}
				fmt.Fprint(out, ")")
			}
			fmt.Fprintln(out)
			count++
		}
		if count == 0 {
			fmt.Fprintln(out, "no pre-unifier found")
		}
		return nil
	},
}

func init() {
	unifyCmd.Flags().IntVar(&unifyLimit, "limit", 10, "maximum number of pre-unifiers to print")
	unifyCmd.Flags().IntVar(&unifyDepth, "depth", huet.DefaultMaxDepth, "maximum search depth")
	rootCmd.AddCommand(unifyCmd)
}
