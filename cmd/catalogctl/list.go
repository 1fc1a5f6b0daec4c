package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/shopbot/backend/internal/domain"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List catalog products in id order",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		var products []domain.Product
		if limit > 0 {
			products, err = store.ListProductsLimit(cmd.Context(), limit)
		} else {
			products, err = store.ListProducts(cmd.Context())
		}
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tPRICE")
		for _, p := range products {
			fmt.Fprintf(w, "%d\t%s\t%.0f\n", p.ID, p.Name, p.Price)
		}
		return w.Flush()
	},
}

func init() {
	listCmd.Flags().Int("limit", 20, "maximum number of products to list (0 for all)")
	rootCmd.AddCommand(listCmd)
}
