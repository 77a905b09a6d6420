package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
)

var loginCmd = &cobra.Command{
	Use:   "login <email> <password>",
	Short: "Authenticates against the backend and stores the session token.",
	Long: `Exchanges credentials for a session token. The token is persisted in the
config file so the session survives restarts, until 'alpaso logout'.`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
		defer cancel()

		user, err := tokens.Login(ctx, api, args[0], args[1])
		if err != nil {
			printError(err, false)
			return
		}
		fmt.Printf("Logged in as %s\n", user)
		if !tokens.IsAuthenticated() {
			fmt.Fprintln(os.Stderr, "Warning: session token was not stored")
		}
	},
}

func init() {
	rootCmd.AddCommand(loginCmd)
}
