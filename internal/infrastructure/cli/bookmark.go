package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var (
	bookmarkCategory    string
	bookmarkName        string
	bookmarkDescription string
	bookmarkTags        []string
	bookmarkListTags    []string
)

var bookmarkCmd = &cobra.Command{
	Use:   "bookmark",
	Short: "Manage categorized directory bookmarks",
}

var bookmarkAddCmd = &cobra.Command{
	Use:   "add <path>",
	Short: "Bookmark a warded directory",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svcs, err := services()
		if err != nil {
			return MapError(err)
		}

		id, err := svcs.Index.AddBookmark(args[0], bookmarkCategory, bookmarkName, bookmarkDescription, bookmarkTags)
		if err != nil {
			return MapError(err)
		}
		if err := svcs.Index.RecordAccess(args[0], "bookmark_add"); err != nil {
			return MapError(err)
		}

		fmt.Printf("Bookmarked as %s\n", id)
		return nil
	},
}

var bookmarkListCmd = &cobra.Command{
	Use:   "list [category]",
	Short: "List bookmarks, optionally filtered by category and tags",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svcs, err := services()
		if err != nil {
			return MapError(err)
		}

		category := ""
		if len(args) > 0 {
			category = args[0]
		}
		bookmarks, err := svcs.Index.Bookmarks(category, bookmarkListTags)
		if err != nil {
			return MapError(err)
		}

		if len(bookmarks) == 0 {
			fmt.Println("No bookmarks.")
			return nil
		}
		for _, b := range bookmarks {
			fmt.Printf("%s  %s\n", b.ID, b.Path)
			if b.Description != "" {
				fmt.Printf("    %s\n", b.Description)
			}
			if len(b.Tags) > 0 {
				fmt.Printf("    tags: %s\n", strings.Join(b.Tags, ", "))
			}
		}
		return nil
	},
}

var bookmarkCategoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List bookmark categories",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		svcs, err := services()
		if err != nil {
			return MapError(err)
		}

		categories, err := svcs.Index.Categories()
		if err != nil {
			return MapError(err)
		}

		if len(categories) == 0 {
			fmt.Println("No categories.")
			return nil
		}
		for _, c := range categories {
			fmt.Println(c)
		}
		return nil
	},
}

func init() {
	bookmarkAddCmd.Flags().StringVarP(&bookmarkCategory, "category", "c", "", "Bookmark category (default \"default\")")
	bookmarkAddCmd.Flags().StringVarP(&bookmarkName, "name", "n", "", "Bookmark name (default: folder name)")
	bookmarkAddCmd.Flags().StringVarP(&bookmarkDescription, "description", "d", "", "Short description")
	bookmarkAddCmd.Flags().StringSliceVarP(&bookmarkTags, "tag", "t", nil, "Tags (repeatable)")
	bookmarkListCmd.Flags().StringSliceVarP(&bookmarkListTags, "tag", "t", nil, "Require these tags")
	bookmarkCmd.AddCommand(bookmarkAddCmd)
	bookmarkCmd.AddCommand(bookmarkListCmd)
	bookmarkCmd.AddCommand(bookmarkCategoriesCmd)
	RootCmd.AddCommand(bookmarkCmd)
}
