package cmd

import (
	"database/sql"
	"fmt"
	"os"
	"time"

	"donorlens-backend/lib/serviceutil"
	"donorlens-backend/services/campaignstore/db"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var reportLimit int

func init() {
	reportCmd.Flags().IntVar(&reportLimit, "limit", 10, "how many candidates to show")
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(underfundedCmd)
	rootCmd.AddCommand(issueCmd)
	rootCmd.AddCommand(sourcesCmd)
}

func money(v sql.NullFloat64) string {
	if !v.Valid {
		return "-"
	}
	return fmt.Sprintf("$%.0f", v.Float64)
}

func score(v sql.NullFloat64) string {
	if !v.Valid {
		return "-"
	}
	return fmt.Sprintf("%.1f", v.Float64)
}

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Prints the top donation opportunities by overall impact score.",
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

		rows, err := store.Queries().TopOpportunities(ctx, int64(reportLimit))
		if err != nil {
			serviceutil.Fatal("failed to query opportunities", err)
		}

		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.AppendHeader(table.Row{"Candidate", "Party", "Race", "Receipts", "Leverage", "Impact", "Tier"})
		for _, r := range rows {
			t.AppendRow(table.Row{
				r.Name,
				r.Party,
				fmt.Sprintf("%s %s-%s", r.Office, r.State, r.District),
				money(r.TotalReceipts),
				score(r.DonationLeverageScore),
				fmt.Sprintf("%.1f", r.OverallImpactScore),
				r.RecommendationTier,
			})
		}
		t.SetStyle(table.StyleRounded)
		t.Render()
	},
}

var underfundedCmd = &cobra.Command{
	Use:   "underfunded",
	Short: "Prints competitive candidates trailing their opponent in funding.",
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

		rows, err := store.Queries().UnderfundedCompetitive(ctx, db.UnderfundedCompetitiveParams{
			FundingRatio:          sql.NullFloat64{Float64: 0.75, Valid: true},
			DonationLeverageScore: sql.NullFloat64{Float64: 60, Valid: true},
		})
		if err != nil {
			serviceutil.Fatal("failed to query underfunded candidates", err)
		}

		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.AppendHeader(table.Row{"Candidate", "Party", "District", "Receipts", "Opponent", "Ratio", "Leverage"})
		for _, r := range rows {
			t.AppendRow(table.Row{
				r.Name,
				r.Party,
				r.State + "-" + r.District,
				money(r.TotalReceipts),
				money(r.OpponentTotalReceipts),
				score(r.FundingRatio),
				score(r.DonationLeverageScore),
			})
		}
		t.SetStyle(table.StyleRounded)
		t.Render()
	},
}

var issueCmd = &cobra.Command{
	Use:   "issue <name>",
	Short: "Prints the candidates aligned with an issue, best impact first.",
	Args:  cobra.ExactArgs(1),
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

		rows, err := store.Queries().CandidatesForIssue(ctx, args[0])
		if err != nil {
			serviceutil.Fatal("failed to query candidates for issue", err)
		}

		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.AppendHeader(table.Row{"Candidate", "Party", "District", "Position", "Strength", "Priority", "Impact"})
		for _, r := range rows {
			t.AppendRow(table.Row{
				r.Name,
				r.Party,
				r.State + "-" + r.District,
				r.Position,
				r.Strength,
				r.Priority,
				score(r.OverallImpactScore),
			})
		}
		t.SetStyle(table.StyleRounded)
		t.Render()
	},
}

var sourcesCmd = &cobra.Command{
	Use:   "sources",
	Short: "Prints the external source fetch log.",
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

		rows, err := store.Queries().ListSourceLog(ctx)
		if err != nil {
			serviceutil.Fatal("failed to query source log", err)
		}

		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.AppendHeader(table.Row{"Source", "Fetched", "Records", "Status", "Error"})
		for _, r := range rows {
			errText := ""
			if r.ErrorMessage.Valid {
				errText = r.ErrorMessage.String
			}
			t.AppendRow(table.Row{
				r.SourceName,
				time.Unix(r.LastScraped, 0).Format(time.ANSIC),
				r.RecordsAdded,
				r.Status,
				errText,
			})
		}
		t.SetStyle(table.StyleRounded)
		t.Render()
	},
}
