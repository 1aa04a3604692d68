package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var (
	searchIn    string
	searchLimit int
	cleanupDays int
)

var indexCmd = &cobra.Command{
	Use:   "index [path]",
	Short: "Index a warded directory for search",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svcs, err := services()
		if err != nil {
			return MapError(err)
		}

		path := argPath(args)
		if err := svcs.Index.Index(path); err != nil {
			return MapError(err)
		}
		if err := svcs.Index.RecordAccess(path, "index"); err != nil {
			return MapError(err)
		}

		fmt.Printf("Indexed: %s\n", path)
		return nil
	},
}

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search indexed directories",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svcs, err := services()
		if err != nil {
			return MapError(err)
		}

		results, err := svcs.Index.Search(args[0], searchIn, searchLimit)
		if err != nil {
			return MapError(err)
		}

		if len(results) == 0 {
			fmt.Println("No matches.")
			return nil
		}
		for _, r := range results {
			fmt.Printf("%s (score %d)\n", r.Path, r.Score)
			fmt.Printf("    matched: %s\n", strings.Join(r.Matches, ", "))
			fmt.Printf("    %d files, %d dirs, %d bytes\n", r.TotalFiles, r.TotalDirs, r.TotalSize)
		}
		return nil
	},
}

var statsCmd = &cobra.Command{
	Use:   "stats [path]",
	Short: "Show index statistics for a warded directory",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svcs, err := services()
		if err != nil {
			return MapError(err)
		}

		stats, err := svcs.Index.Stats(argPath(args))
		if err != nil {
			return MapError(err)
		}

		fmt.Printf("Path:        %s\n", stats.Path)
		fmt.Printf("Files:       %d\n", stats.TotalFiles)
		fmt.Printf("Directories: %d\n", stats.TotalDirectories)
		fmt.Printf("Total size:  %d bytes\n", stats.TotalSize)
		fmt.Printf("Indexed at:  %s\n", stats.IndexedAt)
		if len(stats.FileTypes) > 0 {
			fmt.Println("File types:")
			for ext, count := range stats.FileTypes {
				fmt.Printf("    %s: %d\n", ext, count)
			}
		}
		return nil
	},
}

var cleanupCmd = &cobra.Command{
	Use:   "cleanup",
	Short: "Drop index entries older than the retention window",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		svcs, err := services()
		if err != nil {
			return MapError(err)
		}

		if err := svcs.Index.Cleanup(cleanupDays); err != nil {
			return MapError(err)
		}

		fmt.Printf("Removed index entries older than %d days.\n", cleanupDays)
		return nil
	},
}

func init() {
	searchCmd.Flags().StringVar(&searchIn, "in", "all", "Search surface: all, name, files, directories, types")
	searchCmd.Flags().IntVar(&searchLimit, "limit", 20, "Maximum results")
	cleanupCmd.Flags().IntVar(&cleanupDays, "days", 30, "Retention window in days")
	RootCmd.AddCommand(indexCmd)
	RootCmd.AddCommand(searchCmd)
	RootCmd.AddCommand(statsCmd)
	RootCmd.AddCommand(cleanupCmd)
}
