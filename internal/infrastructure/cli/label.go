package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var labelDescription string

var labelCmd = &cobra.Command{
	Use:   "label",
	Short: "Attach and query semantic labels on warded directories",
}

var labelAddCmd = &cobra.Command{
	Use:   "add <path> <label>...",
	Short: "Attach labels to a warded directory",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		svcs, err := services()
		if err != nil {
			return MapError(err)
		}

		labels, err := svcs.Index.AddLabel(args[0], args[1:], labelDescription)
		if err != nil {
			return MapError(err)
		}

		fmt.Printf("Labels: %s\n", strings.Join(labels, ", "))
		return nil
	},
}

var labelListCmd = &cobra.Command{
	Use:   "list [label]",
	Short: "List labeled directories, optionally filtered by one label",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svcs, err := services()
		if err != nil {
			return MapError(err)
		}

		filter := ""
		if len(args) > 0 {
			filter = args[0]
		}
		folders, err := svcs.Index.LabeledFolders(filter)
		if err != nil {
			return MapError(err)
		}

		if len(folders) == 0 {
			fmt.Println("No labeled directories.")
			return nil
		}
		for _, f := range folders {
			fmt.Printf("%s  [%s]\n", f.Path, strings.Join(f.Labels, ", "))
			if f.Description != "" {
				fmt.Printf("    %s\n", f.Description)
			}
		}
		return nil
	},
}

var labelSuggestCmd = &cobra.Command{
	Use:   "suggest [path]",
	Short: "Suggest labels for a directory from its contents",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svcs, err := services()
		if err != nil {
			return MapError(err)
		}

		suggestions, err := svcs.Index.SuggestLabels(argPath(args))
		if err != nil {
			return MapError(err)
		}

		if len(suggestions.Suggested) > 0 {
			fmt.Printf("Suggested: %s\n", strings.Join(suggestions.Suggested, ", "))
		} else {
			fmt.Println("No suggestions for this directory.")
		}
		fmt.Printf("Common labels: %s\n", strings.Join(suggestions.CommonLabels, ", "))
		return nil
	},
}

func init() {
	labelAddCmd.Flags().StringVarP(&labelDescription, "description", "d", "", "Short description")
	labelCmd.AddCommand(labelAddCmd)
	labelCmd.AddCommand(labelListCmd)
	labelCmd.AddCommand(labelSuggestCmd)
	RootCmd.AddCommand(labelCmd)
}
