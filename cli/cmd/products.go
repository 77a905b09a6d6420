package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/alpaso-live/alpaso-cli/domain"
)

var productsCmd = &cobra.Command{
	Use:   "products",
	Short: "Browses the catalog and manages seller inventory.",
}

var productsLsCmd = &cobra.Command{
	Use:   "ls",
	Short: "Lists the product catalog.",
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
		defer cancel()

		products, err := api.Products(ctx)
		if err != nil {
			printError(err, true)
			return
		}
		printProducts(products)
	},
}

var productsGetCmd = &cobra.Command{
	Use:   "get <product-id>",
	Short: "Shows one product in detail.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
		defer cancel()

		p, err := api.Product(ctx, args[0])
		if err != nil {
			printError(err, true)
			return
		}

		fmt.Printf("%s\n", p.Name)
		fmt.Printf("  id:        %s\n", p.ID)
		fmt.Printf("  price:     %.2f", p.Price)
		if p.LivePrice > 0 && p.LivePrice < p.Price {
			fmt.Printf("  (live: %.2f)", p.LivePrice)
		}
		fmt.Println()
		fmt.Printf("  stock:     %d (sold %d)\n", p.Stock, p.Sold)
		fmt.Printf("  status:    %s\n", p.Status)
		if p.Category != "" {
			fmt.Printf("  category:  %s\n", p.Category)
		}
		if p.Description != "" {
			fmt.Printf("  %s\n", p.Description)
		}
	},
}

var productsMineCmd = &cobra.Command{
	Use:   "mine",
	Short: "Lists your own inventory (sellers).",
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
		defer cancel()

		products, err := api.MyProducts(ctx)
		if err != nil {
			printError(err, true)
			return
		}
		printProducts(products)
	},
}

func printProducts(products []domain.Product) {
	if len(products) == 0 {
		fmt.Println("No products found.")
		return
	}
	for _, p := range products {
		fmt.Printf("%-8s %8.2f  stock %-5d %-30s %s\n",
			p.Status, p.EffectivePrice(), p.Stock, p.Name, p.ID)
	}
}

func init() {
	rootCmd.AddCommand(productsCmd)
	productsCmd.AddCommand(productsLsCmd)
	productsCmd.AddCommand(productsGetCmd)
	productsCmd.AddCommand(productsMineCmd)
}
