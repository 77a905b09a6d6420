package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/alpaso-live/alpaso-cli/domain"
)

var streamsCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Creates a new stream (sellers).",
	Long: `Creates a stream in scheduled state. Start it with 'streams start' or go
live directly with 'host'. Creation is not idempotent: resubmit the form on
failure rather than retrying blindly.`,
	Run: func(cmd *cobra.Command, args []string) {
		title, _ := cmd.Flags().GetString("title")
		description, _ := cmd.Flags().GetString("description")
		category, _ := cmd.Flags().GetString("category")
		scheduled, _ := cmd.Flags().GetString("scheduled")
		maxParticipants, _ := cmd.Flags().GetInt("max-participants")
		products, _ := cmd.Flags().GetStringSlice("product")

		in := domain.StreamInput{
			Title:           title,
			Description:     description,
			Category:        category,
			ScheduledTime:   scheduled,
			MaxParticipants: maxParticipants,
			Products:        products,
		}

		ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
		defer cancel()

		stream, err := api.CreateStream(ctx, in)
		if err != nil {
			printError(err, false)
			return
		}
		fmt.Printf("Created stream %s (%s)\n", stream.Title, stream.ID)
	},
}

var streamsStartCmd = &cobra.Command{
	Use:   "start <stream-id>",
	Short: "Moves a scheduled stream to live.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
		defer cancel()

		// Whether this transition is legal is the backend's call.
		stream, err := api.StartStream(ctx, args[0])
		if err != nil {
			printError(err, false)
			return
		}
		fmt.Printf("Stream %s is now %s. Join it with 'host %s'.\n", stream.Title, stream.Status, stream.ID)
	},
}

var streamsEndCmd = &cobra.Command{
	Use:   "end <stream-id>",
	Short: "Ends a live stream.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
		defer cancel()

		stream, err := api.EndStream(ctx, args[0])
		if err != nil {
			printError(err, false)
			return
		}
		fmt.Printf("Stream %s is now %s.\n", stream.Title, stream.Status)
	},
}

func init() {
	streamsCmd.AddCommand(streamsCreateCmd)
	streamsCmd.AddCommand(streamsStartCmd)
	streamsCmd.AddCommand(streamsEndCmd)

	streamsCreateCmd.Flags().String("title", "", "Stream title")
	streamsCreateCmd.Flags().String("description", "", "Stream description")
	streamsCreateCmd.Flags().String("category", "", "Stream category")
	streamsCreateCmd.Flags().String("scheduled", "", "Scheduled time (RFC 3339), empty for now")
	streamsCreateCmd.Flags().Int("max-participants", 100, "Participant limit")
	streamsCreateCmd.Flags().StringSlice("product", nil, "Product id to feature (repeatable)")
}
