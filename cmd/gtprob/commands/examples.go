package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/gtprob/internal/newick"
)

func (c *CLI) newExamplesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "examples",
		Short: "List example newick strings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if invalid, _ := cmd.Flags().GetBool("invalid"); invalid {
				// Quoted, since some of them are empty or only whitespace.
				for _, s := range newick.InvalidExamples() {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%q\n", s)
				}
				return nil
			}
			for _, s := range newick.ValidExamples() {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), s)
			}
			return nil
		},
	}
	cmd.Flags().Bool("invalid", false, "List strings that are not valid newicks")
	return cmd
}
