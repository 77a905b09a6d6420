package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/alpaso-live/alpaso-cli/domain"
)

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Creates an account on the backend.",
	Long: `Creates a buyer or seller account. When the backend hands back a session
token right away it is stored like a login; otherwise run 'alpaso login'
afterwards.`,
	Run: func(cmd *cobra.Command, args []string) {
		name, _ := cmd.Flags().GetString("name")
		email, _ := cmd.Flags().GetString("email")
		password, _ := cmd.Flags().GetString("password")
		confirm, _ := cmd.Flags().GetString("confirm")
		role, _ := cmd.Flags().GetString("role")

		in := domain.RegisterInput{
			Name:            name,
			Email:           email,
			Password:        password,
			ConfirmPassword: confirm,
			Role:            domain.Role(role),
		}

		ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
		defer cancel()

		res, err := tokens.Register(ctx, api, in)
		if err != nil {
			printError(err, false)
			return
		}
		if res.Token != "" {
			fmt.Printf("Account created, logged in as %s\n", res.User)
			return
		}
		fmt.Println("Account created. Run 'alpaso login' to sign in.")
	},
}

func init() {
	rootCmd.AddCommand(registerCmd)

	registerCmd.Flags().String("name", "", "Display name")
	registerCmd.Flags().String("email", "", "Account email")
	registerCmd.Flags().String("password", "", "Password (at least 6 characters)")
	registerCmd.Flags().String("confirm", "", "Password confirmation")
	registerCmd.Flags().String("role", "buyer", "Account role: buyer or seller")
}
