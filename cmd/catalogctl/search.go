package main

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/shopbot/backend/internal/usecase"
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Rank catalog products against a query",
	Long: `search classifies the query into brand, category and other keywords and
prints the best matching products with their scores. Multiple arguments are
joined into one query.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		query := strings.Join(args, " ")
		limit, _ := cmd.Flags().GetInt("limit")
		asJSON, _ := cmd.Flags().GetBool("json")

		vocabulary, err := loadVocabulary()
		if err != nil {
			return err
		}

		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		products, err := store.ListProducts(cmd.Context())
		if err != nil {
			return err
		}

		matcher := usecase.NewMatchingService(usecase.MatchConfig{
			Vocabulary:         vocabulary,
			EnableDebugLogging: opts.verbose,
			Logger:             newLogger(),
		})
		ranked := matcher.Rank(query, products, limit)

		out := cmd.OutOrStdout()
		if asJSON {
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(ranked)
		}

		classified := matcher.Classify(query)
		fmt.Fprintf(out, "brand: %v  category: %v  other: %v\n",
			classified.BrandTokens, classified.CategoryTokens, classified.OtherTokens)

		if len(ranked) == 0 {
			fmt.Fprintln(out, "no matching products")
			return nil
		}

		w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "SCORE\tID\tNAME\tPRICE")
		for _, r := range ranked {
			fmt.Fprintf(w, "%d\t%d\t%s\t%.0f\n", r.Score, r.Product.ID, r.Product.Name, r.Product.Price)
		}
		return w.Flush()
	},
}

func init() {
	searchCmd.Flags().Int("limit", usecase.DefaultResultLimit, "maximum number of results")
	searchCmd.Flags().Bool("json", false, "output results as JSON")
	rootCmd.AddCommand(searchCmd)
}
