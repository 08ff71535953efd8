package main

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
	"github.com/tasteplaces/tasteplaces/internal/engine"
	"github.com/tasteplaces/tasteplaces/internal/models"
	"go.uber.org/zap"
)

// List flags
var (
	listQuery   string
	listRating  int
	listPrice   int
	listCuisine string
	listSort    string
	listJSON    bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print the restaurants matching a query",
	Example: `  tasteplaces list --query plateau
  tasteplaces list --rating 3 --sort price-asc
  tasteplaces list --cuisine French --json`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func registerListFlags() {
	listCmd.Flags().StringVarP(&listQuery, "query", "q", "", "Match name, cuisine or neighborhood")
	listCmd.Flags().IntVar(&listRating, "rating", 0, "Exact rating 1-3 (0 for any)")
	listCmd.Flags().IntVar(&listPrice, "price", 0, "Exact price level 1-4 (0 for any)")
	listCmd.Flags().StringVar(&listCuisine, "cuisine", "", "Exact cuisine")
	listCmd.Flags().StringVar(&listSort, "sort", "", "Sort order ("+sortNames()+")")
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Print JSON instead of a table")
}

func runList(cmd *cobra.Command, args []string) error {
	q, err := listFlagsQuery()
	if err != nil {
		return err
	}

	restaurants, _, err := newServices()
	if err != nil {
		return err
	}

	results, err := restaurants.Search(cmd.Context(), q)
	if err != nil {
		return err
	}
	log.Debug("list", zap.Any("query", q), zap.Int("results", len(results)))

	out := cmd.OutOrStdout()
	if listJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	}

	if len(results) == 0 {
		fmt.Fprintln(out, "No restaurants match your filters")
		return nil
	}
	fmt.Fprintln(out, renderTable(results))
	return nil
}

func listFlagsQuery() (engine.Query, error) {
	if listRating < 0 || listRating > models.MaxRating {
		return engine.Query{}, fmt.Errorf("--rating must be between 0 and %d", models.MaxRating)
	}
	if listPrice < 0 || listPrice > models.MaxPrice {
		return engine.Query{}, fmt.Errorf("--price must be between 0 and %d", models.MaxPrice)
	}
	order, err := engine.ParseSortOrder(listSort)
	if err != nil {
		return engine.Query{}, fmt.Errorf("--sort: %w", err)
	}

	return engine.Query{
		Search:  listQuery,
		Rating:  listRating,
		Price:   listPrice,
		Cuisine: listCuisine,
		Sort:    order,
	}, nil
}

func renderTable(restaurants []models.Restaurant) string {
	rows := make([][]string, 0, len(restaurants))
	for _, r := range restaurants {
		rows = append(rows, []string{
			strconv.Itoa(r.ID),
			r.Name,
			r.Cuisine,
			strings.Repeat("★", r.Rating),
			strings.Repeat("$", r.Price),
			r.Neighborhood,
		})
	}

	return table.New().
		Border(lipgloss.NormalBorder()).
		Headers("ID", "NAME", "CUISINE", "RATING", "PRICE", "NEIGHBORHOOD").
		Rows(rows...).
		String()
}

func sortNames() string {
	names := make([]string, 0, len(engine.SortOrders()))
	for _, o := range engine.SortOrders() {
		names = append(names, o.String())
	}
	return strings.Join(names, ", ")
}
