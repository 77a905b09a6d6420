package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/alpaso-live/alpaso-cli/bridge"
	"github.com/alpaso-live/alpaso-cli/domain"
)

var hostCmd = &cobra.Command{
	Use:   "host <stream-id>",
	Short: "Goes live on one of your streams.",
	Long: `Starts the stream if it is still scheduled, then opens the live view as
host with camera and microphone capture. Ending the stream from the view
also marks it ended on the backend.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second*15)
		stream, err := api.Stream(ctx, args[0])
		if err != nil {
			cancel()
			printError(err, true)
			return
		}

		if stream.Status == domain.StreamEnded {
			cancel()
			fmt.Fprintln(os.Stderr, "This stream has ended and cannot be hosted again.")
			return
		}
		if stream.Status == domain.StreamScheduled {
			stream, err = api.StartStream(ctx, stream.ID)
			if err != nil {
				cancel()
				printError(err, false)
				return
			}
		}
		name := viewerName(ctx)
		cancel()

		ended, err := runLiveView(stream, bridge.RoleHost, name)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Live view error: %v\n", err)
		}

		if ended {
			// The in-view end is only a local leave; the backend transition
			// is its own call.
			ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
			defer cancel()
			if _, err := api.EndStream(ctx, stream.ID); err != nil {
				fmt.Fprintf(os.Stderr, "Stream left but not marked ended: %v\nRun 'streams end %s' to finish it.\n", err, stream.ID)
				return
			}
			fmt.Println("Stream ended.")
		}
	},
}

func init() {
	rootCmd.AddCommand(hostCmd)
}
