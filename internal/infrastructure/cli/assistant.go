package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var assistantCmd = &cobra.Command{
	Use:     "assistant",
	Aliases: []string{"ai"},
	Short:   "Manage AI assistant profiles",
}

var assistantListCmd = &cobra.Command{
	Use:   "list",
	Short: "List configured assistant profiles",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		svcs, err := services()
		if err != nil {
			return MapError(err)
		}

		profiles, err := svcs.Assistant.Profiles()
		if err != nil {
			return MapError(err)
		}
		active, err := svcs.Assistant.Active()
		if err != nil {
			return MapError(err)
		}

		for _, p := range profiles {
			marker := " "
			if active != nil && active.Name == p.Name {
				marker = "*"
			}
			state := "enabled"
			if !p.Enabled {
				state = "disabled"
			}
			fmt.Printf("%s %s (%s, %s) [%s]\n", marker, p.Name, p.Type, p.Model, state)
		}
		return nil
	},
}

var assistantUseCmd = &cobra.Command{
	Use:   "use [name]",
	Short: "Activate an assistant profile, interactively when no name is given",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svcs, err := services()
		if err != nil {
			return MapError(err)
		}

		var name string
		if len(args) > 0 {
			name = args[0]
		} else {
			profiles, err := svcs.Assistant.Profiles()
			if err != nil {
				return MapError(err)
			}
			name, err = pickAssistant(profiles)
			if err != nil {
				return MapError(err)
			}
			if name == "" {
				fmt.Println("Selection cancelled.")
				return nil
			}
		}

		profile, err := svcs.Assistant.Activate(name)
		if err != nil {
			return MapError(err)
		}

		fmt.Printf("Active assistant: %s (%s)\n", profile.Name, profile.Model)
		return nil
	},
}

var assistantOffCmd = &cobra.Command{
	Use:   "off",
	Short: "Deactivate the current assistant profile",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		svcs, err := services()
		if err != nil {
			return MapError(err)
		}

		if err := svcs.Assistant.Deactivate(); err != nil {
			return MapError(err)
		}

		fmt.Println("Assistant deactivated. Requests use local processing.")
		return nil
	},
}

var assistantAskCmd = &cobra.Command{
	Use:   "ask <request>",
	Short: "Interpret a natural-language request",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svcs, err := services()
		if err != nil {
			return MapError(err)
		}

		intent, err := svcs.Assistant.Interpret(args[0])
		if err != nil {
			return MapError(err)
		}

		fmt.Printf("Action:     %s\n", intent.Action)
		fmt.Printf("Confidence: %.2f\n", intent.Confidence)
		fmt.Printf("Assistant:  %s\n", intent.Assistant)
		if intent.Reasoning != "" {
			fmt.Printf("Reasoning:  %s\n", intent.Reasoning)
		}
		return nil
	},
}

func init() {
	assistantCmd.AddCommand(assistantListCmd)
	assistantCmd.AddCommand(assistantUseCmd)
	assistantCmd.AddCommand(assistantOffCmd)
	assistantCmd.AddCommand(assistantAskCmd)
	RootCmd.AddCommand(assistantCmd)
}
