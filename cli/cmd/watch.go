package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/alpaso-live/alpaso-cli/bridge"
)

var watchCmd = &cobra.Command{
	Use:   "watch <stream-id>",
	Short: "Joins a stream as a viewer.",
	Long: `Fetches the stream's metadata and opens the live playback view. Viewers
request no local camera or microphone capture.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
		stream, err := api.Stream(ctx, args[0])
		if err != nil {
			cancel()
			printError(err, true)
			return
		}
		name := viewerName(ctx)
		cancel()

		// Rejected before any widget load.
		if !stream.Joinable() {
			fmt.Fprintln(os.Stderr, "This stream has ended.")
			return
		}

		if _, err := runLiveView(stream, bridge.RoleViewer, name); err != nil {
			fmt.Fprintf(os.Stderr, "Live view error: %v\n", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
}
