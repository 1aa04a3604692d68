package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status [path]",
	Short: "Show the ward status of a directory",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svcs, err := services()
		if err != nil {
			return MapError(err)
		}

		report, err := svcs.Ward.Status(argPath(args))
		if err != nil {
			return MapError(err)
		}

		fmt.Printf("Path:  %s\n", report.Path)
		if !report.Warded {
			fmt.Println("State: not warded")
			return nil
		}
		fmt.Printf("State: warded (%s)\n", report.GateState)
		if report.Description != "" {
			fmt.Printf("Description: %s\n", report.Description)
		}
		if len(report.ProtectedFolders) > 0 {
			fmt.Printf("Protected folders: %s\n", strings.Join(report.ProtectedFolders, ", "))
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(statusCmd)
}
