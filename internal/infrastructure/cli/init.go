package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var initDescription string

var initCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Initialize a directory with a starter development policy",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svcs, err := services()
		if err != nil {
			return MapError(err)
		}

		result, err := svcs.Ward.Init(argPath(args), initDescription)
		if err != nil {
			return MapError(err)
		}

		fmt.Printf("Ward initialized: %s\n", result.WardFile)
		fmt.Println("Edit the .ward file to adjust the policy for your project.")
		return nil
	},
}

func init() {
	initCmd.Flags().StringVarP(&initDescription, "description", "d", "", "Policy description")
	RootCmd.AddCommand(initCmd)
}
