package cmd

import (
	"fmt"

	"donorlens-backend/lib/serviceutil"
	"donorlens-backend/services/scoring"

	"github.com/spf13/cobra"
)

var baseCompetitiveness float64
var baseControlImpact float64

func init() {
	defaults := scoring.DefaultBaselines()
	scoreCmd.Flags().Float64Var(&baseCompetitiveness, "competitiveness", defaults.Competitiveness,
		"baseline competitiveness component, until polling data exists")
	scoreCmd.Flags().Float64Var(&baseControlImpact, "control-impact", defaults.ControlImpact,
		"baseline chamber-control component")
	rootCmd.AddCommand(scoreCmd)
}

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Recomputes funding comparisons and impact scores from data already in the database.",
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()

		config, err := readConfig()
		if err != nil {
			serviceutil.Fatal("failed to read config", err)
		}
		store, database, err := openStore(config)
		if err != nil {
			serviceutil.Fatal("failed to open database", err)
		}
		defer database.Close()

		scorer := scoring.NewService(store, scoring.Baselines{
			Competitiveness: baseCompetitiveness,
			ControlImpact:   baseControlImpact,
		})

		compared, err := scorer.CompareRaceFunding(ctx)
		if err != nil {
			serviceutil.Fatal("funding comparison failed", err)
		}
		scored, err := scorer.Recompute(ctx)
		if err != nil {
			serviceutil.Fatal("scoring failed", err)
		}

		fmt.Printf("compared funding for %d candidates, scored %d candidate/race pairs\n", compared, scored)
	},
}
