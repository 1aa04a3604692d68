package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var (
	protectPath   string
	unprotectPath string
	checkPath     string
)

var protectCmd = &cobra.Command{
	Use:   "protect <folder>...",
	Short: "Add folders to the ward's protected list",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svcs, err := services()
		if err != nil {
			return MapError(err)
		}

		report, err := svcs.Ward.Protect(protectPath, args...)
		if err != nil {
			return MapError(err)
		}

		fmt.Printf("Protected folders: %s\n", strings.Join(report.ProtectedFolders, ", "))
		return nil
	},
}

var unprotectCmd = &cobra.Command{
	Use:   "unprotect <folder>...",
	Short: "Remove folders from the ward's protected list",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svcs, err := services()
		if err != nil {
			return MapError(err)
		}

		report, err := svcs.Ward.Unprotect(unprotectPath, args...)
		if err != nil {
			return MapError(err)
		}

		if len(report.ProtectedFolders) == 0 {
			fmt.Println("No folders remain protected.")
			return nil
		}
		fmt.Printf("Protected folders: %s\n", strings.Join(report.ProtectedFolders, ", "))
		return nil
	},
}

var checkCmd = &cobra.Command{
	Use:   "check <target>",
	Short: "Check whether a path falls under folder protection",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svcs, err := services()
		if err != nil {
			return MapError(err)
		}

		info, err := svcs.Ward.Check(checkPath, args[0])
		if err != nil {
			return MapError(err)
		}

		if !info.Protected {
			fmt.Printf("Not protected: %s\n", args[0])
			return nil
		}
		fmt.Printf("Protected: %s\n", args[0])
		fmt.Printf("Matched folder: %s (%s)\n", info.Folder, info.Type)
		fmt.Printf("%s\n", info.Message)
		return nil
	},
}

var validateCmd = &cobra.Command{
	Use:   "validate [path]",
	Short: "Validate that a ward carries a complete policy",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svcs, err := services()
		if err != nil {
			return MapError(err)
		}

		if err := svcs.Ward.Validate(argPath(args)); err != nil {
			return MapError(err)
		}

		fmt.Println("Ward policy is valid.")
		return nil
	},
}

func init() {
	protectCmd.Flags().StringVarP(&protectPath, "path", "p", ".", "Warded directory")
	unprotectCmd.Flags().StringVarP(&unprotectPath, "path", "p", ".", "Warded directory")
	checkCmd.Flags().StringVarP(&checkPath, "path", "p", ".", "Warded directory")
	RootCmd.AddCommand(protectCmd)
	RootCmd.AddCommand(unprotectCmd)
	RootCmd.AddCommand(checkCmd)
	RootCmd.AddCommand(validateCmd)
}
