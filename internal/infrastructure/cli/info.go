package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var infoCmd = &cobra.Command{
	Use:   "info [path]",
	Short: "Show the full ward report for a directory",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svcs, err := services()
		if err != nil {
			return MapError(err)
		}

		info, err := svcs.Ward.Info(argPath(args))
		if err != nil {
			return MapError(err)
		}

		if !info.Protected {
			fmt.Println("No ward found in this directory.")
			return nil
		}
		fmt.Printf("Ward file: %s\n", info.WardFile)
		if info.PasswordProtected {
			fmt.Printf("Password protected: yes (%s)\n", info.PasswordFile)
		} else {
			fmt.Println("Password protected: no")
		}
		if !info.Readable {
			fmt.Println("Warning: the ward file exists but could not be read.")
			return nil
		}
		fmt.Println()
		fmt.Println(info.Content)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(infoCmd)
}
