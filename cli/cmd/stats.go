package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Shows the seller dashboard summary.",
	Long: `Aggregates your streams into dashboard figures. Uses the backend's
analytics summary when the deployment has one and per-stream metrics
otherwise.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second*15)
		defer cancel()

		stats, err := api.SellerStats(ctx)
		if err != nil {
			printError(err, true)
			return
		}

		fmt.Printf("streams:   %d\n", stats.TotalStreams)
		fmt.Printf("viewers:   %d\n", stats.TotalViewers)
		fmt.Printf("revenue:   %.2f\n", stats.TotalRevenue)
		if stats.AvgRating > 0 {
			fmt.Printf("rating:    %.1f\n", stats.AvgRating)
		}
		fmt.Printf("today:     %d streams, %d viewers, %.2f revenue\n",
			stats.Today.Streams, stats.Today.Viewers, stats.Today.Revenue)
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
}
