package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Clears the stored session.",
	Long: `Drops the session token from memory and from the config file. Always
succeeds locally; the backend is not contacted.`,
	Run: func(cmd *cobra.Command, args []string) {
		tokens.Logout()
		fmt.Println("Logged out.")
	},
}

func init() {
	rootCmd.AddCommand(logoutCmd)
}
