// Package cmd - years command
package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"taxcurve/core/catalog"
)

// yearsCmd lists the available tariff years
var yearsCmd = &cobra.Command{
	Use:   "years",
	Short: "List available tariff years",
	RunE:  runYears,
}

func runYears(cmd *cobra.Command, args []string) error {
	years := catalog.Years()

	tables, err := loadTables()
	if err != nil {
		return err
	}
	if tables != nil {
		seen := make(map[int]bool, len(years))
		for _, year := range years {
			seen[year] = true
		}
		for year := range tables.Tariffs {
			if !seen[year] {
				years = append(years, year)
			}
		}
		sort.Ints(years)
	}

	minYear, maxYear := 0, 0
	if adjuster, err := resolveAdjuster(); err == nil {
		minYear, maxYear = adjuster.Range()
	}

	fmt.Println("Tariff years:")
	for _, year := range years {
		fmt.Printf("  %d\n", year)
	}
	if maxYear != 0 {
		fmt.Printf("Inflation table: %d-%d\n", minYear, maxYear)
	}
	return nil
}
