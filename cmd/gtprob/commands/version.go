package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/gtprob/internal/build"
)

func (c *CLI) newVersionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print the application version",
		Run: func(cmd *cobra.Command, _ []string) {
			cmdo := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(cmdo, "gtprob version %s (commit: %s, date: %s)\n", build.Version, build.Commit, build.Date)

			if history, _ := cmd.Flags().GetBool("history"); history {
				_, _ = fmt.Fprintln(cmdo)
				for _, entry := range build.History {
					_, _ = fmt.Fprintln(cmdo, entry)
				}
			}
		},
	}
	cmd.Flags().Bool("history", false, "Print the version history")
	return cmd
}
