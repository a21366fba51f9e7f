package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"go.trai.ch/gtprob/internal/core/domain"
)

type inspectionJSON struct {
	Topology         string   `json:"topology"`
	Vector           []int    `json:"vector"`
	Size             int      `json:"size"`
	Lineages         int      `json:"lineages"`
	Leaves           int      `json:"leaves"`
	Binary           bool     `json:"binary"`
	Simple           bool     `json:"simple"`
	Complexity       string   `json:"complexity"`
	Fingerprint      string   `json:"fingerprint"`
	Theta            float64  `json:"theta"`
	Denominator      float64  `json:"denominator"`
	LabeledHistories string   `json:"labeled_histories,omitempty"`
	Symmetries       string   `json:"symmetries,omitempty"`
	RootBranches     []string `json:"root_branches,omitempty"`
	Simpler          []string `json:"simpler"`
}

func (c *CLI) newInspectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect <newick>",
		Short: "Show the structural properties of a topology",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := c.app.Inspect(args[0], options(cmd))
			if err != nil {
				return err
			}

			if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(toInspectionJSON(in))
			}
			printInspection(cmd.OutOrStdout(), in)
			return nil
		},
	}
	cmd.Flags().Float64P("theta", "t", domain.DefaultTheta, "Mutation parameter theta used for the denominator")
	cmd.Flags().Bool("json", false, "Print the inspection as JSON")
	return cmd
}

func toInspectionJSON(in domain.Inspection) inspectionJSON {
	out := inspectionJSON{
		Topology:    in.Topology.String(),
		Vector:      in.Vector,
		Size:        in.Size,
		Lineages:    in.Lineages,
		Leaves:      in.Leaves,
		Binary:      in.Binary,
		Simple:      in.Simple,
		Complexity:  in.Complexity.String(),
		Fingerprint: fmt.Sprintf("%016x", in.Fingerprint),
		Theta:       in.Theta,
		Denominator: in.Denominator,
		Simpler:     make([]string, len(in.Simpler)),
	}
	if in.LabeledHistories != nil {
		out.LabeledHistories = in.LabeledHistories.String()
	}
	if in.Symmetries != nil {
		out.Symmetries = in.Symmetries.String()
	}
	for _, t := range in.RootBranches {
		out.RootBranches = append(out.RootBranches, t.String())
	}
	for i, t := range in.Simpler {
		out.Simpler[i] = t.String()
	}
	return out
}

func printInspection(w io.Writer, in domain.Inspection) {
	out := toInspectionJSON(in)

	vector := make([]string, len(out.Vector))
	for i, x := range out.Vector {
		vector[i] = fmt.Sprint(x)
	}

	_, _ = fmt.Fprintf(w, "topology:          %s\n", out.Topology)
	_, _ = fmt.Fprintf(w, "vector:            [%s]\n", strings.Join(vector, " "))
	_, _ = fmt.Fprintf(w, "size:              %d\n", out.Size)
	_, _ = fmt.Fprintf(w, "lineages:          %d\n", out.Lineages)
	_, _ = fmt.Fprintf(w, "leaves:            %d\n", out.Leaves)
	_, _ = fmt.Fprintf(w, "binary:            %t\n", out.Binary)
	_, _ = fmt.Fprintf(w, "simple:            %t\n", out.Simple)
	_, _ = fmt.Fprintf(w, "complexity:        %s\n", out.Complexity)
	_, _ = fmt.Fprintf(w, "fingerprint:       %s\n", out.Fingerprint)
	_, _ = fmt.Fprintf(w, "denominator:       %s (theta %s)\n", formatFloat(out.Denominator), formatFloat(out.Theta))
	if out.Binary {
		_, _ = fmt.Fprintf(w, "labeled histories: %s\n", out.LabeledHistories)
		_, _ = fmt.Fprintf(w, "symmetries:        %s\n", out.Symmetries)
		_, _ = fmt.Fprintf(w, "root branches:     %s\n", strings.Join(out.RootBranches, " "))
	}
	_, _ = fmt.Fprintf(w, "simpler:           %s\n", strings.Join(out.Simpler, " "))
}
