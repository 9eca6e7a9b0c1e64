package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/intelligrit/geodis/internal/engine"
	"github.com/intelligrit/geodis/internal/model"
	"github.com/spf13/cobra"
)

var disambiguateInputPath string

// disambiguateRequest mirrors internal/server's wire format, since both
// the CLI and the HTTP API front the same engine.FindLocations call with
// caller-supplied tokens, candidates, and groups.
type disambiguateRequest struct {
	Tokens           []string   `json:"tokens"`
	Candidates       []entity   `json:"candidates"`
	CoordinateGroups [][]string `json:"coordinateGroups"`
	AmbiguityGroups  [][]string `json:"ambiguityGroups"`
}

type entity struct {
	Name  string  `json:"name"`
	Score float64 `json:"score"`
}

var disambiguateCmd = &cobra.Command{
	Use:   "disambiguate",
	Short: "Run the disambiguation pipeline over a JSON request file",
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, err := os.ReadFile(disambiguateInputPath)
		if err != nil {
			return fmt.Errorf("reading input: %w", err)
		}
		var req disambiguateRequest
		if err := json.Unmarshal(raw, &req); err != nil {
			return fmt.Errorf("parsing input: %w", err)
		}

		dict, err := loadDictionary()
		if err != nil {
			return err
		}
		fmt.Printf("Loaded %d gazetteer locations\n", dict.Len())

		candidates := make([]model.CandidateEntity, len(req.Candidates))
		for i, c := range req.Candidates {
			candidates[i] = model.CandidateEntity{Name: c.Name, Score: c.Score}
		}
		coordGroups := make([]model.CoordinateGroup, len(req.CoordinateGroups))
		for i, g := range req.CoordinateGroups {
			coordGroups[i] = model.CoordinateGroup(g)
		}
		ambGroups := make([]model.AmbiguityGroup, len(req.AmbiguityGroups))
		for i, g := range req.AmbiguityGroups {
			ambGroups[i] = model.AmbiguityGroup(g)
		}

		results, stats, err := engine.FindLocations(dict, req.Tokens, candidates, coordGroups, ambGroups)
		if err != nil {
			return fmt.Errorf("disambiguation failed: %w", err)
		}

		if len(results) == 0 {
			fmt.Println("No candidates resolved to a location.")
			return nil
		}

		fmt.Printf("%-16s %-30s %-10s %10s %10s\n", "ID", "Name", "Type", "Score", "Confidence")
		for _, l := range results {
			fmt.Printf("%-16s %-30s %-10s %10.4f %10.4f\n",
				l.Location.ID, l.Location.Name, l.Location.Type.String(), l.Score, l.Confidence)
		}
		fmt.Printf("\nscore: avg=%.4f stdDev=%.4f (%.1f%%)\n",
			stats.Score.Avg, stats.Score.StdDev, stats.Score.StdDevPerc)
		fmt.Printf("confidence: avg=%.4f stdDev=%.4f (%.1f%%)\n",
			stats.Confidence.Avg, stats.Confidence.StdDev, stats.Confidence.StdDevPerc)

		return nil
	},
}

func init() {
	disambiguateCmd.Flags().StringVar(&disambiguateInputPath, "input", "", "Path to a JSON request file (tokens, candidates, coordinateGroups, ambiguityGroups)")
	disambiguateCmd.MarkFlagRequired("input")
	rootCmd.AddCommand(disambiguateCmd)
}
