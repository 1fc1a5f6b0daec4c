package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shopbot/backend/internal/infrastructure/sqlite"
	"github.com/shopbot/backend/internal/usecase"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the catalog database and seed it with sample products",
	Long: `init creates the products table if needed and, when the table is empty,
inserts the sample electronics catalog. It then runs a verification search.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		out := cmd.OutOrStdout()

		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		seeded, err := store.SeedIfEmpty(ctx, sqlite.SampleProducts())
		if err != nil {
			return err
		}
		total, err := store.CountProducts(ctx)
		if err != nil {
			return err
		}

		if seeded > 0 {
			fmt.Fprintf(out, "Seeded %d products into %s\n", seeded, opts.dbPath)
		} else {
			fmt.Fprintf(out, "Catalog %s already has %d products, nothing seeded\n", opts.dbPath, total)
		}

		sample, err := store.ListProductsLimit(ctx, 3)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, "Sample products:")
		for _, p := range sample {
			fmt.Fprintf(out, "  %d\t%s\t%.0f\n", p.ID, p.Name, p.Price)
		}

		verifyQuery, _ := cmd.Flags().GetString("verify")
		if verifyQuery == "" {
			return nil
		}

		vocabulary, err := loadVocabulary()
		if err != nil {
			return err
		}
		all, err := store.ListProducts(ctx)
		if err != nil {
			return err
		}
		matcher := usecase.NewMatchingService(usecase.MatchConfig{Vocabulary: vocabulary, Logger: newLogger()})
		results := matcher.Search(verifyQuery, all, usecase.DefaultResultLimit)
		fmt.Fprintf(out, "Verification search %q: %d results\n", verifyQuery, len(results))
		for _, p := range results {
			fmt.Fprintf(out, "  %d\t%s\n", p.ID, p.Name)
		}
		return nil
	},
}

func init() {
	initCmd.Flags().String("verify", "گوشی سامسونگ", "query to run after seeding (empty to skip)")
	rootCmd.AddCommand(initCmd)
}
