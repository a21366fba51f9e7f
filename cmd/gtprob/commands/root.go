// Package commands implements the CLI commands for gtprob.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/gtprob/internal/app"
	"go.trai.ch/gtprob/internal/build"
	"go.trai.ch/gtprob/internal/core/domain"
)

// CLI represents the command line interface for gtprob.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	Evaluate(ctx context.Context, inputs []string, opts app.Options) ([]domain.Result, error)
	Decompose(ctx context.Context, input string, opts app.Options) (domain.Decomposition, error)
	Inspect(input string, opts app.Options) (domain.Inspection, error)
	Stats() domain.Stats
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	rootCmd := &cobra.Command{
		Use:           "gtprob",
		Short:         "Gene tree topology probabilities under the neutral coalescent",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	rootCmd.PersistentFlags().StringP("config", "c", "", "Path to the configuration file (default gtprob.yaml if present)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().Bool("json-logs", false, "Write logs as JSON")

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.AddCommand(c.newEvalCmd())
	rootCmd.AddCommand(c.newDecomposeCmd())
	rootCmd.AddCommand(c.newInspectCmd())
	rootCmd.AddCommand(c.newExamplesCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetInput sets the input stream for the root command. Used for testing.
func (c *CLI) SetInput(in io.Reader) {
	c.rootCmd.SetIn(in)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}

// options collects the global flags and the evaluation flags defined on cmd.
// Evaluation flags only override the configuration when set explicitly.
func options(cmd *cobra.Command) app.Options {
	flags := cmd.Flags()

	var opts app.Options
	opts.ConfigPath, _ = flags.GetString("config")
	opts.Verbose, _ = flags.GetBool("verbose")
	opts.JSONLogs, _ = flags.GetBool("json-logs")

	if flags.Changed("theta") {
		theta, _ := flags.GetFloat64("theta")
		opts.Theta = &theta
	}
	if flags.Changed("max-complexity") {
		limit, _ := flags.GetUint64("max-complexity")
		opts.MaxComplexity = &limit
	}
	if flags.Changed("parallel") {
		parallelism, _ := flags.GetInt("parallel")
		opts.Parallelism = &parallelism
	}
	if flags.Changed("cache-dir") {
		dir, _ := flags.GetString("cache-dir")
		opts.CacheDir = &dir
	}
	return opts
}
