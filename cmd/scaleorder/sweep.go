package main

import (
	"fmt"
	"strings"

	"github.com/mager/woodshed/scale"
	"github.com/spf13/cobra"
)

func newSweepCmd() *cobra.Command {
	var (
		from, to float64
		steps    int
	)

	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Compare the pentatonic and an 8-note scale across a range of alphas",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if steps < 1 {
				return fmt.Errorf("invalid --steps %d: must be at least 1", steps)
			}
			out := cmd.OutOrStdout()

			fmt.Fprintln(out, "Alpha    Pentatonic   Octatonic    Winner")
			fmt.Fprintln(out, strings.Repeat("-", 50))
			for _, p := range scale.Sweep(scale.Pentatonic, scale.Octatonic, from, to, steps) {
				winner := "octatonic"
				if p.A > p.B {
					winner = "PENTATONIC"
				}
				fmt.Fprintf(out, "%.2f     %.4f       %.4f       %s\n", p.Alpha, p.A, p.B, winner)
			}

			if alpha, ok := scale.Crossover(scale.Pentatonic, scale.Octatonic, from, to, 1e-9); ok {
				fmt.Fprintf(out, "\nCrossover at alpha = %.6f\n", alpha)
			} else {
				fmt.Fprintf(out, "\nNo crossover between %s and %s\n", scale.FormatAlpha(from), scale.FormatAlpha(to))
			}
			return nil
		},
	}

	cmd.Flags().Float64Var(&from, "from", 0, "first alpha")
	cmd.Flags().Float64Var(&to, "to", 1, "last alpha")
	cmd.Flags().IntVar(&steps, "steps", 101, "number of alphas to evaluate")

	return cmd
}
