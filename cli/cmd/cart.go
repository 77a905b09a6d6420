package cmd

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/alpaso-live/alpaso-cli/domain"
)

var cartCmd = &cobra.Command{
	Use:   "cart",
	Short: "Shows and edits the shopping cart.",
}

var cartShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Shows the cart contents.",
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
		defer cancel()

		cart, err := api.Cart(ctx)
		if err != nil {
			printError(err, true)
			return
		}
		printCart(cart)
	},
}

var cartAddCmd = &cobra.Command{
	Use:   "add <product-id> [quantity]",
	Short: "Adds a product to the cart.",
	Long: `Adds a product to the cart. Whether a repeated add sets or increments the
quantity is decided by the backend; the cart printed afterwards is what the
backend returned.`,
	Args: cobra.RangeArgs(1, 2),
	Run: func(cmd *cobra.Command, args []string) {
		quantity := 1
		if len(args) == 2 {
			n, err := strconv.Atoi(args[1])
			if err != nil {
				fmt.Println("Quantity must be a number.")
				return
			}
			quantity = n
		}

		ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
		defer cancel()

		cart, err := api.AddToCart(ctx, args[0], quantity)
		if err != nil {
			printError(err, false)
			return
		}
		printCart(cart)
	},
}

var cartRmCmd = &cobra.Command{
	Use:   "rm <product-id>",
	Short: "Removes a product from the cart.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
		defer cancel()

		cart, err := api.RemoveFromCart(ctx, args[0])
		if err != nil {
			printError(err, true)
			return
		}
		printCart(cart)
	},
}

func printCart(cart domain.Cart) {
	if cart.Empty() {
		fmt.Println("Cart is empty.")
		return
	}
	var total float64
	for _, item := range cart.Items {
		name := item.ProductID
		var linePrice float64
		if item.Product != nil {
			name = item.Product.Name
			linePrice = item.Product.EffectivePrice() * float64(item.Quantity)
		}
		if linePrice > 0 {
			fmt.Printf("%3d x %-30s %8.2f\n", item.Quantity, name, linePrice)
		} else {
			fmt.Printf("%3d x %-30s\n", item.Quantity, name)
		}
		total += linePrice
	}
	if cart.Total > 0 {
		total = cart.Total
	}
	if total > 0 {
		fmt.Printf("      %-30s %8.2f\n", "total", total)
	}
}

func init() {
	rootCmd.AddCommand(cartCmd)
	cartCmd.AddCommand(cartShowCmd)
	cartCmd.AddCommand(cartAddCmd)
	cartCmd.AddCommand(cartRmCmd)
}
