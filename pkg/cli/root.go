package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Version is injected during build
	Version = "dev"
	// Commit is injected during build
	Commit = "none"
)

// globalFlags are the persistent flags shared by every command.
type globalFlags struct {
	configPath string
	token      string
	jsonOutput bool
	metrics    bool
}

// NewRootCmd builds the command tree. Each call returns an independent tree.
func NewRootCmd() *cobra.Command {
	root, _ := newRoot()
	return root
}

func newRoot() (*cobra.Command, *app) {
	flags := &globalFlags{}
	a := &app{flags: flags}

	root := &cobra.Command{
		Use:   "fakeapi",
		Short: "fakeapi simulates the users and inventory REST API locally",
		Long: `fakeapi answers the users and inventory API from a local key-value store.

Configuration is read from fakeapi.yaml in the working directory, the file
named by --config or FAKEAPI_CONFIG, and FAKEAPI_* environment variables.`,
		Version:       Version + " (" + Commit + ")",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.open(cmd.Context(), cmd.ErrOrStderr())
		},
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			if flags.metrics {
				return a.printMetrics(cmd.ErrOrStderr())
			}
			return nil
		},
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&flags.configPath, "config", "c", "", "Path to fakeapi.yaml")
	pf.StringVar(&flags.token, "token", "", "Bearer token for guarded commands (default: the configured token)")
	pf.BoolVar(&flags.jsonOutput, "json", false, "Output command results in JSON format")
	pf.BoolVar(&flags.metrics, "metrics", false, "Print request metrics to stderr after the command")

	root.AddCommand(
		newUsersCmd(a),
		newInventoryCmd(a),
		newResetCmd(a),
		newStatsCmd(a),
	)
	return root, a
}

// Run executes the CLI with args and returns the process exit code.
func Run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	root, a := newRoot()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.ExecuteContext(ctx)
	if cerr := a.close(); err == nil {
		err = cerr
	}
	if err != nil {
		fmt.Fprintln(stderr, "Error:", err)
		return 1
	}
	return 0
}

// Execute runs the CLI against the process arguments and exits on failure.
func Execute() {
	if code := Run(context.Background(), os.Args[1:], os.Stdout, os.Stderr); code != 0 {
		os.Exit(code)
	}
}
