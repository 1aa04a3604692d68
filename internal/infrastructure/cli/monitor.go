package cli

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/wardsec/ward/internal/infrastructure/watch"
)

var monitorDebounce time.Duration

var monitorCmd = &cobra.Command{
	Use:   "monitor [path]",
	Short: "Watch a warded directory and report writes to protected folders",
	Long: `Monitor watches the directory tree and reports filesystem events that
touch protected folders. It never blocks or reverts writes; the report
is the enforcement surface.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svcs, err := services()
		if err != nil {
			return MapError(err)
		}

		path := argPath(args)
		protector, err := svcs.Ward.Protector(path)
		if err != nil {
			return MapError(err)
		}

		monitor, err := watch.NewMonitor(protector, monitorDebounce, func(hit watch.Hit) {
			fmt.Printf("[%s] %s %s\n", time.Now().Format(time.RFC3339), hit.Op, hit.Path)
			fmt.Printf("    %s\n", hit.Info.Message)
			_ = svcs.Index.RecordAccess(path, "flagged")
		})
		if err != nil {
			return MapError(err)
		}

		if err := monitor.WatchRecursive(path); err != nil {
			return MapError(err)
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		fmt.Printf("Monitoring %s (Ctrl-C to stop)\n", path)
		if err := monitor.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			return MapError(err)
		}
		return nil
	},
}

func init() {
	monitorCmd.Flags().DurationVar(&monitorDebounce, "debounce", 500*time.Millisecond, "Event coalescing window")
	RootCmd.AddCommand(monitorCmd)
}
