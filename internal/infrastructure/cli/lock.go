package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	lockMessage   string
	unlockMessage string
)

var lockCmd = &cobra.Command{
	Use:   "lock [path]",
	Short: "Lock a directory against modification",
	Long: `Lock marks a directory's ward as locked. Unwarded directories are
planted first, then locked. Locking an already-locked ward is an error.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svcs, err := services()
		if err != nil {
			return MapError(err)
		}

		report, err := svcs.Ward.Lock(argPath(args), lockMessage)
		if err != nil {
			return MapError(err)
		}

		fmt.Printf("Locked: %s\n", report.Path)
		fmt.Printf("Description: %s\n", report.Description)
		return nil
	},
}

var unlockCmd = &cobra.Command{
	Use:   "unlock [path]",
	Short: "Unlock a previously locked directory",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svcs, err := services()
		if err != nil {
			return MapError(err)
		}

		report, err := svcs.Ward.Unlock(argPath(args), unlockMessage)
		if err != nil {
			return MapError(err)
		}

		fmt.Printf("Unlocked: %s\n", report.Path)
		fmt.Printf("Description: %s\n", report.Description)
		return nil
	},
}

func init() {
	lockCmd.Flags().StringVarP(&lockMessage, "message", "m", "", "Reason for locking")
	unlockCmd.Flags().StringVarP(&unlockMessage, "message", "m", "", "Reason for unlocking")
	RootCmd.AddCommand(lockCmd)
	RootCmd.AddCommand(unlockCmd)
}
