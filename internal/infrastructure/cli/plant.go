package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	plantDescription string
	plantAIInitiated bool
)

var plantCmd = &cobra.Command{
	Use:   "plant [path]",
	Short: "Plant a password-protected ward in a directory",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svcs, err := services()
		if err != nil {
			return MapError(err)
		}

		result, err := svcs.Ward.Plant(argPath(args), plantDescription, plantAIInitiated)
		if err != nil {
			return MapError(err)
		}

		fmt.Println("Ward planted successfully")
		fmt.Printf("Location:      %s\n", result.WardFile)
		fmt.Printf("Password file: %s\n", result.PasswordFile)
		fmt.Println()
		fmt.Println("A password token was generated and stored.")
		fmt.Println("To modify or remove this ward, edit the password file manually.")
		return nil
	},
}

func init() {
	plantCmd.Flags().StringVarP(&plantDescription, "description", "d", "", "Policy description")
	plantCmd.Flags().BoolVar(&plantAIInitiated, "ai", false, "Mark the ward as AI-initiated")
	RootCmd.AddCommand(plantCmd)
}
