package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/alpaso-live/alpaso-cli/client"
)

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Shows the authenticated profile.",
	Run: func(cmd *cobra.Command, args []string) {
		if !tokens.IsAuthenticated() {
			fmt.Println("Not logged in.")
			return
		}

		ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
		defer cancel()

		user, err := api.Profile(ctx)
		if err != nil {
			// An auth failure on the profile fetch means the stored token is
			// dead: drop back to the unauthenticated flow.
			if client.IsAuth(err) {
				tokens.Logout()
				fmt.Fprintln(os.Stderr, "Session expired, please log in again.")
				return
			}
			printError(err, true)
			return
		}
		fmt.Println(user)
	},
}

func init() {
	rootCmd.AddCommand(whoamiCmd)
}
