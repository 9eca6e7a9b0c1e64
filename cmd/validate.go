package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the gazetteer's parent-reference integrity",
	RunE: func(cmd *cobra.Command, args []string) error {
		dict, err := loadDictionary()
		if err != nil {
			return err
		}

		var violations int
		for _, loc := range dict.All() {
			for _, pid := range loc.ParentsIds() {
				if dict.Get(pid) == nil {
					violations++
					fmt.Printf("location %s (%s): missing parent %s\n", loc.ID, loc.Name, pid)
				}
			}
		}

		fmt.Printf("\nChecked %d locations, %d missing-parent violations\n", dict.Len(), violations)
		if violations > 0 {
			return fmt.Errorf("%d parent-reference violations found", violations)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
