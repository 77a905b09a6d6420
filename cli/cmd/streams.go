package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/alpaso-live/alpaso-cli/domain"
)

var streamsCmd = &cobra.Command{
	Use:   "streams",
	Short: "Browses and manages live streams.",
}

var streamsLsCmd = &cobra.Command{
	Use:   "ls",
	Short: "Lists streams, optionally filtered by status.",
	Run: func(cmd *cobra.Command, args []string) {
		status, _ := cmd.Flags().GetString("status")

		ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
		defer cancel()

		streams, err := api.Streams(ctx, domain.StreamStatus(status))
		if err != nil {
			printError(err, true)
			return
		}
		printStreams(streams)
	},
}

var streamsLiveCmd = &cobra.Command{
	Use:   "live",
	Short: "Lists streams that are live right now.",
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
		defer cancel()

		streams, err := api.LiveStreams(ctx)
		if err != nil {
			printError(err, true)
			return
		}
		printStreams(streams)
	},
}

var streamsGetCmd = &cobra.Command{
	Use:   "get <stream-id>",
	Short: "Shows one stream in detail.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
		defer cancel()

		stream, err := api.Stream(ctx, args[0])
		if err != nil {
			printError(err, true)
			return
		}

		fmt.Printf("%s\n", stream.Title)
		fmt.Printf("  id:           %s\n", stream.ID)
		fmt.Printf("  status:       %s\n", stream.Status)
		fmt.Printf("  seller:       %s\n", stream.SellerName)
		fmt.Printf("  watching:     %d/%d\n", stream.CurrentParticipants, stream.MaxParticipants)
		if stream.Category != "" {
			fmt.Printf("  category:     %s\n", stream.Category)
		}
		if stream.StartedAt != nil {
			fmt.Printf("  running for:  %s\n", domain.FormatDuration(stream.Duration()))
		}
		if stream.Description != "" {
			fmt.Printf("  %s\n", stream.Description)
		}
		if len(stream.Products) > 0 {
			fmt.Printf("  featured products: %d\n", len(stream.Products))
		}
	},
}

var streamsMineCmd = &cobra.Command{
	Use:   "mine",
	Short: "Lists your own streams (sellers).",
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
		defer cancel()

		streams, err := api.MyStreams(ctx)
		if err != nil {
			printError(err, true)
			return
		}
		for _, s := range streams {
			fmt.Printf("%-9s  %5d viewers  %8s  %-30s %s\n",
				s.Status, s.CurrentParticipants, domain.FormatDuration(s.Duration()), s.Title, s.ID)
		}
		if len(streams) == 0 {
			fmt.Println("No streams yet. Create one with 'streams create'.")
		}
	},
}

func printStreams(streams []domain.Stream) {
	if len(streams) == 0 {
		fmt.Println("No streams found.")
		return
	}
	for _, s := range streams {
		live := " "
		if s.Live() {
			live = "●"
		}
		fmt.Printf("%s %-9s %4d/%-4d %-30s %s\n",
			live, s.Status, s.CurrentParticipants, s.MaxParticipants, s.Title, s.ID)
	}
}

func init() {
	rootCmd.AddCommand(streamsCmd)
	streamsCmd.AddCommand(streamsLsCmd)
	streamsCmd.AddCommand(streamsLiveCmd)
	streamsCmd.AddCommand(streamsGetCmd)
	streamsCmd.AddCommand(streamsMineCmd)

	streamsLsCmd.Flags().String("status", "", "Filter by status: scheduled, live or ended")
}
