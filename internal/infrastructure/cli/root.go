// Package cli implements the ward command tree.
package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/wardsec/ward/internal/infrastructure/wiring"
)

var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// RootCmd represents the base command when called without any subcommands.
var RootCmd = &cobra.Command{
	Use:     "ward",
	Version: Version,
	Short:   "Marker-file based directory protection",
	Long: `Ward protects directories with declarative .ward marker files.
A marker records the policy for its directory: protected folders,
command whitelists and blacklists, and guidance for AI tools working
inside the tree.`,
}

// Execute runs the root command. Called once from main.
func Execute() error {
	return RootCmd.Execute()
}

// services builds the wired application services. WARD_HOME overrides the
// ~/.ward store location.
func services() (*wiring.AppServices, error) {
	return wiring.BuildAppServices(os.Getenv("WARD_HOME"))
}

// argPath returns the positional path argument, defaulting to the current
// directory.
func argPath(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return "."
}
