package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	recentHours int
	recentLimit int
)

var recentCmd = &cobra.Command{
	Use:   "recent",
	Short: "Show recently accessed warded directories",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		svcs, err := services()
		if err != nil {
			return MapError(err)
		}

		entries, err := svcs.Index.Recent(recentHours, recentLimit)
		if err != nil {
			return MapError(err)
		}

		if len(entries) == 0 {
			fmt.Printf("No warded directories accessed in the last %d hours.\n", recentHours)
			return nil
		}
		for _, e := range entries {
			fmt.Printf("%s  %s (%s)\n", e.Timestamp, e.Path, e.Action)
		}
		return nil
	},
}

func init() {
	recentCmd.Flags().IntVar(&recentHours, "hours", 24, "Look-back window in hours")
	recentCmd.Flags().IntVar(&recentLimit, "limit", 10, "Maximum entries")
	RootCmd.AddCommand(recentCmd)
}
