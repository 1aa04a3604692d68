package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/wardsec/ward/internal/domain"
	"github.com/wardsec/ward/internal/infrastructure/config"
	"github.com/wardsec/ward/internal/infrastructure/shell"
)

var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Pick the shell used for activation scripts",
	Long: `Shell opens an interactive picker over the shells installed on this
machine and records the choice in ~/.ward/config.yaml. The activate
command uses the recorded shell when generating its script.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		svcs, err := services()
		if err != nil {
			return MapError(err)
		}

		choice, err := shell.Select(shell.NewDetector())
		if errors.Is(err, shell.ErrSelectionCancelled) {
			fmt.Println("Selection cancelled.")
			return nil
		}
		if err != nil {
			return MapError(err)
		}

		if svcs.Workspace.Config == nil {
			svcs.Workspace.Config = &config.UserConfig{}
		}
		svcs.Workspace.Config.Shell = choice
		if err := svcs.Workspace.SaveConfig(); err != nil {
			return MapError(err)
		}

		fmt.Printf("Shell set to %s\n", choice)
		return nil
	},
}

var activateCmd = &cobra.Command{
	Use:   "activate",
	Short: "Write the shell activation script",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		svcs, err := services()
		if err != nil {
			return MapError(err)
		}

		cwd, err := os.Getwd()
		if err != nil {
			return MapError(err)
		}
		if !svcs.Workspace.Repo.HasWard(cwd) {
			return MapError(fmt.Errorf("%s: %w", cwd, domain.ErrNotWarded))
		}

		name := activeShell(svcs.Workspace.Config)
		home, err := os.UserHomeDir()
		if err != nil {
			return MapError(err)
		}

		script, err := shell.WriteActivation(home, name)
		if err != nil {
			return MapError(err)
		}

		fmt.Printf("Activation script written: %s\n", script)
		fmt.Printf("Source it from your %s startup file to enable the ward prompt.\n", name)
		return nil
	},
}

var deactivateCmd = &cobra.Command{
	Use:   "deactivate",
	Short: "Remove the shell activation script",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		svcs, err := services()
		if err != nil {
			return MapError(err)
		}

		name := activeShell(svcs.Workspace.Config)
		home, err := os.UserHomeDir()
		if err != nil {
			return MapError(err)
		}

		if err := shell.RemoveActivation(home, name); err != nil {
			return MapError(err)
		}

		fmt.Println("Activation script removed.")
		return nil
	},
}

// activeShell prefers the configured shell and falls back to detection.
func activeShell(cfg *config.UserConfig) string {
	if cfg != nil && cfg.Shell != "" {
		return cfg.Shell
	}
	return shell.NewDetector().Current()
}

func init() {
	RootCmd.AddCommand(shellCmd)
	RootCmd.AddCommand(activateCmd)
	RootCmd.AddCommand(deactivateCmd)
}
