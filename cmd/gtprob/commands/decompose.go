package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"
	"go.trai.ch/gtprob/internal/core/domain"
)

type termJSON struct {
	Topology     string   `json:"topology"`
	Multiplicity int      `json:"multiplicity"`
	Coefficient  float64  `json:"coefficient"`
	Probability  float64  `json:"probability"`
	Contribution float64  `json:"contribution"`
	Reference    *float64 `json:"reference,omitempty"`
	Difference   *float64 `json:"difference,omitempty"`
}

type decompositionJSON struct {
	Topology    string     `json:"topology"`
	Theta       float64    `json:"theta"`
	Denominator float64    `json:"denominator"`
	Simple      bool       `json:"simple"`
	Probability float64    `json:"probability"`
	Terms       []termJSON `json:"terms"`
	Reference   *float64   `json:"reference,omitempty"`
	Difference  *float64   `json:"difference,omitempty"`
}

func (c *CLI) newDecomposeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "decompose <newick>",
		Short: "Show how the probability of a topology is calculated",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := options(cmd)
			opts.Compare, _ = cmd.Flags().GetBool("compare")
			d, err := c.app.Decompose(cmd.Context(), args[0], opts)
			if err != nil {
				return err
			}

			if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
				return printDecompositionJSON(cmd.OutOrStdout(), d)
			}
			printDecomposition(cmd.OutOrStdout(), d)
			return nil
		},
	}
	cmd.Flags().Float64P("theta", "t", domain.DefaultTheta, "Mutation parameter theta")
	cmd.Flags().Uint64("max-complexity", domain.DefaultMaxComplexity, "Reject topologies above this complexity")
	cmd.Flags().Bool("json", false, "Print the decomposition as JSON")
	cmd.Flags().Bool("compare", false, "Recompute every probability without the shared store and show the difference")
	return cmd
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

func printDecomposition(w io.Writer, d domain.Decomposition) {
	_, _ = fmt.Fprintf(w, "topology:    %s\n", d.Topology)
	_, _ = fmt.Fprintf(w, "theta:       %s\n", formatFloat(d.Theta))
	_, _ = fmt.Fprintf(w, "denominator: %s\n", formatFloat(d.Denominator))

	if d.Simple {
		_, _ = fmt.Fprintf(w, "probability: %s (closed form)\n", formatFloat(d.Probability))
		printReference(w, d)
		return
	}

	_, _ = fmt.Fprintf(w, "terms:       %d\n\n", len(d.Terms))
	for _, term := range d.Terms {
		_, _ = fmt.Fprintf(w, "  %s x P(%s) = %s x %s = %s\n",
			formatFloat(term.Coefficient),
			term.Topology,
			formatFloat(term.Coefficient),
			formatFloat(term.Probability),
			formatFloat(term.Contribution()),
		)
		if d.Compared {
			_, _ = fmt.Fprintf(w, "    reference %s, difference %s\n",
				formatFloat(term.Reference), formatFloat(term.Difference()))
		}
	}
	_, _ = fmt.Fprintf(w, "\nprobability: %s\n", formatFloat(d.Probability))
	printReference(w, d)
}

func printReference(w io.Writer, d domain.Decomposition) {
	if !d.Compared {
		return
	}
	_, _ = fmt.Fprintf(w, "reference:   %s\n", formatFloat(d.Reference))
	_, _ = fmt.Fprintf(w, "difference:  %s\n", formatFloat(d.Difference()))
}

func ptr(f float64) *float64 { return &f }

func printDecompositionJSON(w io.Writer, d domain.Decomposition) error {
	out := decompositionJSON{
		Topology:    d.Topology.String(),
		Theta:       d.Theta,
		Denominator: d.Denominator,
		Simple:      d.Simple,
		Probability: d.Probability,
		Terms:       make([]termJSON, len(d.Terms)),
	}
	for i, term := range d.Terms {
		out.Terms[i] = termJSON{
			Topology:     term.Topology.String(),
			Multiplicity: term.Multiplicity,
			Coefficient:  term.Coefficient,
			Probability:  term.Probability,
			Contribution: term.Contribution(),
		}
		if d.Compared {
			out.Terms[i].Reference = ptr(term.Reference)
			out.Terms[i].Difference = ptr(term.Difference())
		}
	}
	if d.Compared {
		out.Reference = ptr(d.Reference)
		out.Difference = ptr(d.Difference())
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
