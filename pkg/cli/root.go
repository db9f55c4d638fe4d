// Package cli implements the synthd command-line interface.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "synthd",
	Short: "synthd serves parameterized fake data over HTTP",
	Long: `synthd is an HTTP service for synthetic records: users, companies,
addresses, products, and arbitrary custom shapes, as JSON or CSV.

Responses are reproducible: pass an integer seed and the same request
returns the same data on every run.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// BuildInfo carries version metadata injected at build time.
type BuildInfo struct {
	Version   string
	Commit    string
	BuildDate string
}

// buildInfo is set by Execute before any command runs.
var buildInfo = BuildInfo{Version: "dev", Commit: "unknown", BuildDate: "unknown"}

// Execute runs the CLI. Called once from main.
func Execute(info BuildInfo) {
	if info.Version != "" {
		buildInfo = info
	}
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
