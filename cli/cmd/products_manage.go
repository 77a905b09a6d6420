package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/alpaso-live/alpaso-cli/domain"
)

func productInputFromFlags(cmd *cobra.Command) domain.ProductInput {
	name, _ := cmd.Flags().GetString("name")
	description, _ := cmd.Flags().GetString("description")
	price, _ := cmd.Flags().GetFloat64("price")
	livePrice, _ := cmd.Flags().GetFloat64("live-price")
	stock, _ := cmd.Flags().GetInt("stock")
	category, _ := cmd.Flags().GetString("category")
	image, _ := cmd.Flags().GetString("image")

	return domain.ProductInput{
		Name:        name,
		Description: description,
		Price:       price,
		LivePrice:   livePrice,
		Stock:       stock,
		Category:    category,
		Image:       image,
	}
}

func addProductFlags(cmd *cobra.Command) {
	cmd.Flags().String("name", "", "Product name")
	cmd.Flags().String("description", "", "Product description")
	cmd.Flags().Float64("price", 0, "Regular price")
	cmd.Flags().Float64("live-price", 0, "Discounted price during live streams")
	cmd.Flags().Int("stock", 0, "Units in stock")
	cmd.Flags().String("category", "", "Product category")
	cmd.Flags().String("image", "", "Image URL")
}

var productsCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Adds a product to your inventory (sellers).",
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
		defer cancel()

		p, err := api.CreateProduct(ctx, productInputFromFlags(cmd))
		if err != nil {
			printError(err, false)
			return
		}
		fmt.Printf("Created product %s (%s)\n", p.Name, p.ID)
	},
}

var productsUpdateCmd = &cobra.Command{
	Use:   "update <product-id>",
	Short: "Updates a product.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
		defer cancel()

		p, err := api.UpdateProduct(ctx, args[0], productInputFromFlags(cmd))
		if err != nil {
			printError(err, true)
			return
		}
		fmt.Printf("Updated product %s\n", p.Name)
	},
}

var productsRmCmd = &cobra.Command{
	Use:   "rm <product-id>",
	Short: "Removes a product from your inventory.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
		defer cancel()

		if err := api.DeleteProduct(ctx, args[0]); err != nil {
			printError(err, true)
			return
		}
		fmt.Println("Product removed.")
	},
}

func init() {
	productsCmd.AddCommand(productsCreateCmd)
	productsCmd.AddCommand(productsUpdateCmd)
	productsCmd.AddCommand(productsRmCmd)

	addProductFlags(productsCreateCmd)
	addProductFlags(productsUpdateCmd)
}
