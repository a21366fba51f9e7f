package commands

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.trai.ch/gtprob/internal/core/domain"
	"go.trai.ch/zerr"
)

type resultJSON struct {
	Input       string  `json:"input"`
	Topology    string  `json:"topology"`
	Theta       float64 `json:"theta"`
	Probability float64 `json:"probability"`
	Complexity  string  `json:"complexity"`
	Status      string  `json:"status"`
}

type statsJSON struct {
	Evaluations       uint64  `json:"evaluations"`
	CacheHits         uint64  `json:"cache_hits"`
	CacheMisses       uint64  `json:"cache_misses"`
	BaseCases         uint64  `json:"base_cases"`
	Decompositions    uint64  `json:"decompositions"`
	Terms             uint64  `json:"terms"`
	EvaluationSeconds float64 `json:"evaluation_seconds"`
}

type evalJSON struct {
	Results []resultJSON `json:"results"`
	Stats   *statsJSON   `json:"stats,omitempty"`
}

func (c *CLI) newEvalCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "eval [newick...]",
		Short: "Calculate the probability of gene tree topologies",
		Example: `  gtprob eval "(1,(1,1))"
  gtprob eval --theta 0.5 "((1,2),(3,4))" "(2,(1,1))"
  gtprob eval -f topologies.txt --json`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			file, _ := cmd.Flags().GetString("file")
			inputs := args
			if file != "" {
				fromFile, err := readInputs(cmd, file)
				if err != nil {
					return err
				}
				inputs = append(inputs, fromFile...)
			}
			if len(inputs) == 0 {
				// Display command usage help without returning an error
				_ = cmd.Help()
				return nil
			}

			opts := options(cmd)
			opts.Progress, _ = cmd.Flags().GetBool("progress")
			opts.NoCache, _ = cmd.Flags().GetBool("no-cache")
			results, err := c.app.Evaluate(cmd.Context(), inputs, opts)
			if len(results) > 0 {
				asJSON, _ := cmd.Flags().GetBool("json")
				withStats, _ := cmd.Flags().GetBool("stats")
				if printErr := c.printResults(cmd.OutOrStdout(), results, asJSON, withStats); printErr != nil {
					return printErr
				}
			}
			return err
		},
	}
	cmd.Flags().StringP("file", "f", "", "Read newick strings from a file, one per line (- for stdin)")
	cmd.Flags().Float64P("theta", "t", domain.DefaultTheta, "Mutation parameter theta")
	cmd.Flags().Uint64("max-complexity", domain.DefaultMaxComplexity, "Reject topologies above this complexity")
	cmd.Flags().IntP("parallel", "p", 0, "Number of topologies evaluated concurrently (default number of CPUs)")
	cmd.Flags().Bool("stats", false, "Print evaluator statistics")
	cmd.Flags().Bool("json", false, "Print results as JSON")
	cmd.Flags().Bool("progress", false, "Show live progress on stderr")
	cmd.Flags().String("cache-dir", "", "Directory of the persistent result cache")
	cmd.Flags().Bool("no-cache", false, "Ignore the persistent result cache")
	return cmd
}

// readInputs reads one newick per line. Blank lines and lines starting with
// '#' are skipped.
func readInputs(cmd *cobra.Command, path string) ([]string, error) {
	var r io.Reader
	if path == "-" {
		r = cmd.InOrStdin()
	} else {
		f, err := os.Open(path)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, "failed to open input file"), "path", path)
		}
		defer func() { _ = f.Close() }()
		r = f
	}

	var inputs []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		inputs = append(inputs, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to read input file"), "path", path)
	}
	return inputs, nil
}

func (c *CLI) printResults(w io.Writer, results []domain.Result, asJSON, withStats bool) error {
	if asJSON {
		out := evalJSON{Results: make([]resultJSON, len(results))}
		for i, r := range results {
			out.Results[i] = resultJSON{
				Input:       r.Input,
				Topology:    r.Topology.String(),
				Theta:       r.Theta,
				Probability: r.Probability,
				Complexity:  r.Complexity.String(),
				Status:      string(r.Status),
			}
		}
		if withStats {
			s := c.app.Stats()
			out.Stats = &statsJSON{
				Evaluations:       s.Evaluations,
				CacheHits:         s.CacheHits,
				CacheMisses:       s.CacheMisses,
				BaseCases:         s.BaseCases,
				Decompositions:    s.Decompositions,
				Terms:             s.Terms,
				EvaluationSeconds: s.EvaluationSeconds,
			}
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	for _, r := range results {
		switch r.Status {
		case domain.VertexStatusCompleted, domain.VertexStatusCached:
			_, _ = fmt.Fprintf(w, "%s\t%s\n", r.Topology, strconv.FormatFloat(r.Probability, 'g', -1, 64))
		default:
			_, _ = fmt.Fprintf(w, "%s\t%s\n", r.Topology, r.Status)
		}
	}
	if withStats {
		printStats(w, c.app.Stats())
	}
	return nil
}

func printStats(w io.Writer, s domain.Stats) {
	_, _ = fmt.Fprintf(w, "\nevaluations:    %d\n", s.Evaluations)
	_, _ = fmt.Fprintf(w, "cache hits:     %d\n", s.CacheHits)
	_, _ = fmt.Fprintf(w, "cache misses:   %d\n", s.CacheMisses)
	_, _ = fmt.Fprintf(w, "base cases:     %d\n", s.BaseCases)
	_, _ = fmt.Fprintf(w, "decompositions: %d (%d terms)\n", s.Decompositions, s.Terms)
	_, _ = fmt.Fprintf(w, "time:           %.6fs\n", s.EvaluationSeconds)
}
