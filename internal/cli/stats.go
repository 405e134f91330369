package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"promptify/internal/metrics"
)

var statsSamples int

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Probe the backend and show request statistics",
	Long: `Probe the backend's read endpoints and print per-operation timing
statistics. Useful as a quick health and latency check.

Examples:
  promptify stats
  promptify stats --samples 5`,
	Args: cobra.NoArgs,
	RunE: runStats,
}

func init() {
	statsCmd.Flags().IntVarP(&statsSamples, "samples", "n", 3, "probe rounds per endpoint")
}

func runStats(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	var failures int
	for i := 0; i < statsSamples; i++ {
		if _, err := apiClient.ListDocuments(ctx); err != nil {
			failures++
		}
		if _, err := apiClient.ListSessions(ctx); err != nil {
			failures++
		}
	}

	snap := collector.Snapshot()
	if len(snap.Requests) == 0 {
		return fmt.Errorf("no requests recorded")
	}

	fmt.Printf("Backend: %s\n\n", apiClient.BaseURL())
	for _, req := range snap.Requests {
		printRequestStats(req)
	}

	if failures > 0 {
		return fmt.Errorf("%d of %d probes failed", failures, statsSamples*2)
	}
	return nil
}

// printRequestStats displays timing statistics for an operation.
func printRequestStats(req metrics.RequestSnapshot) {
	fmt.Printf("%s:\n", req.Op)
	fmt.Printf("  Calls: %d, Failures: %d, Total: %dms\n", req.Count, req.Failures, req.TotalTimeMs)
	fmt.Printf("  Time: avg %.1fms, min %dms, max %dms\n",
		req.AvgTimeMs, req.MinTimeMs, req.MaxTimeMs)
}
