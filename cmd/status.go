package cmd

import (
	"fmt"
	"sort"

	"github.com/intelligrit/geodis/internal/model"
	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show gazetteer composition",
	RunE: func(cmd *cobra.Command, args []string) error {
		dict, err := loadDictionary()
		if err != nil {
			return err
		}

		countByType := make(map[model.Type]int)
		for _, loc := range dict.All() {
			countByType[loc.Type]++
		}

		fmt.Printf("Gazetteer Status\n")
		fmt.Printf("================\n")
		fmt.Printf("Total locations: %d\n\n", dict.Len())
		fmt.Printf("By Type\n")
		fmt.Printf("-------\n")

		types := []model.Type{model.Continent, model.Region, model.Country, model.AdminArea2, model.AdminArea1, model.City}
		sort.Slice(types, func(i, j int) bool { return types[i] < types[j] })
		for _, t := range types {
			fmt.Printf("  %-12s %d\n", t.String(), countByType[t])
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
