package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	favoriteDescription string
	commentAuthor       string
)

var favoritesCmd = &cobra.Command{
	Use:     "favorites",
	Aliases: []string{"fav"},
	Short:   "Manage favorite warded directories",
}

var favoritesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List favorite directories, most recently accessed first",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		svcs, err := services()
		if err != nil {
			return MapError(err)
		}

		favorites, err := svcs.Favorites.List()
		if err != nil {
			return MapError(err)
		}

		if len(favorites) == 0 {
			fmt.Println("No favorites yet. Add one with 'ward favorites add <path>'.")
			return nil
		}
		for _, fav := range favorites {
			marker := " "
			if !fav.Exists {
				marker = "!"
			}
			fmt.Printf("%s %s\n", marker, fav.Path)
			if fav.Description != "" {
				fmt.Printf("    %s\n", fav.Description)
			}
			fmt.Printf("    accessed %d times, last %s\n", fav.AccessCount, fav.LastAccessed)
			for _, c := range fav.RecentComments {
				fmt.Printf("    [%s] %s: %s\n", c.Timestamp, c.Author, c.Text)
			}
		}
		return nil
	},
}

var favoritesAddCmd = &cobra.Command{
	Use:   "add <path>",
	Short: "Add a warded directory to favorites",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svcs, err := services()
		if err != nil {
			return MapError(err)
		}

		if err := svcs.Favorites.Add(args[0], favoriteDescription); err != nil {
			return MapError(err)
		}
		if err := svcs.Favorites.RecordAccess(args[0]); err != nil {
			return MapError(err)
		}

		fmt.Printf("Added to favorites: %s\n", args[0])
		return nil
	},
}

var favoritesRemoveCmd = &cobra.Command{
	Use:   "remove <path>",
	Short: "Remove a directory from favorites",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svcs, err := services()
		if err != nil {
			return MapError(err)
		}

		if err := svcs.Favorites.Remove(args[0]); err != nil {
			return MapError(err)
		}

		fmt.Printf("Removed from favorites: %s\n", args[0])
		return nil
	},
}

var favoritesCommentCmd = &cobra.Command{
	Use:   "comment <path> <text>",
	Short: "Attach a comment to a favorite",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		svcs, err := services()
		if err != nil {
			return MapError(err)
		}

		author := commentAuthor
		if author == "" && svcs.Workspace.Config != nil {
			author = svcs.Workspace.Config.DefaultAuthor
		}
		if err := svcs.Favorites.Comment(args[0], args[1], author); err != nil {
			return MapError(err)
		}

		fmt.Println("Comment added.")
		return nil
	},
}

func init() {
	favoritesAddCmd.Flags().StringVarP(&favoriteDescription, "description", "d", "", "Short description")
	favoritesCommentCmd.Flags().StringVarP(&commentAuthor, "author", "a", "", "Comment author")
	favoritesCmd.AddCommand(favoritesListCmd)
	favoritesCmd.AddCommand(favoritesAddCmd)
	favoritesCmd.AddCommand(favoritesRemoveCmd)
	favoritesCmd.AddCommand(favoritesCommentCmd)
	RootCmd.AddCommand(favoritesCmd)
}
