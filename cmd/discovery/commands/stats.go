package commands

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/justthetip/yoto-discovery/internal/config"
	catalogrepo "github.com/justthetip/yoto-discovery/internal/repository/catalog"
	statsuc "github.com/justthetip/yoto-discovery/internal/usecase/stats"
)

func statsCmd() *cobra.Command {
	var path string

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Print catalog statistics from a local snapshot",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStats(path)
		},
	}
	cmd.Flags().StringVarP(&path, "catalog", "c", "", "snapshot path (default: catalog.path from config)")
	return cmd
}

func runStats(path string) error {
	if path == "" {
		cfg, err := config.Load(currentEnv())
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		path = cfg.Catalog.Path
	}

	items, err := catalogrepo.Load(path)
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}

	printSummary(statsuc.Summarize(items))
	return nil
}

func printSummary(s statsuc.Summary) {
	fmt.Printf("Catalog: %d items (%d available, %d new)\n\n", s.Total, s.Available, s.New)

	if s.Price.Count > 0 {
		fmt.Printf("Prices (%d priced):\n", s.Price.Count)
		fmt.Printf("  min £%.2f  max £%.2f  avg £%.2f  median £%.2f\n",
			s.Price.Min, s.Price.Max, s.Price.Average, s.Price.Median)
		printCounts("  ", s.Price.Buckets)
		fmt.Println()
	}

	if s.Runtime.Count > 0 {
		fmt.Printf("Runtimes (%d with runtime):\n", s.Runtime.Count)
		fmt.Printf("  avg %.1f min  total %.1f hours\n",
			s.Runtime.AverageMinutes, s.Runtime.TotalHours)
		printCounts("  ", s.Runtime.Buckets)
		fmt.Println()
	}

	fmt.Println("Age groups:")
	printCounts("  ", s.AgeGroups)
	fmt.Println()

	fmt.Println("Top categories:")
	printCounts("  ", s.Categories)
	fmt.Println()

	fmt.Printf("Authors: %d distinct, top:\n", s.Authors)
	printCounts("  ", s.TopAuthors)
}

func printCounts(indent string, counts []statsuc.NameCount) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	for _, c := range counts {
		fmt.Fprintf(w, "%s%s\t%d\n", indent, c.Name, c.Count)
	}
	_ = w.Flush()
}
