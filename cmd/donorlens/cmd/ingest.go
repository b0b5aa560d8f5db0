package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"donorlens-backend/lib/scrapers/ballotpedia"
	"donorlens-backend/lib/scrapers/census"
	"donorlens-backend/lib/scrapers/civic"
	"donorlens-backend/lib/scrapers/fec"
	"donorlens-backend/lib/scrapers/wikipedia"
	"donorlens-backend/lib/serviceutil"
	"donorlens-backend/lib/telemetry"
	"donorlens-backend/services/ingest"
	"donorlens-backend/services/scoring"

	"github.com/spf13/cobra"
)

var houseLimit int
var senateLimit int

func init() {
	ingestCmd.Flags().IntVar(&houseLimit, "house-limit", 0, "max House candidates to ingest")
	ingestCmd.Flags().IntVar(&senateLimit, "senate-limit", 0, "max Senate candidates to ingest")
	rootCmd.AddCommand(ingestCmd)
}

var ingestCmd = &cobra.Command{
	Use:   "ingest",
	Short: "Pulls candidates, filings, race ratings and district data, then recomputes impact scores.",
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()

		config, err := readConfig()
		if err != nil {
			serviceutil.Fatal("failed to read config", err)
		}

		err = telemetry.SetupFromEnv(ctx, "donorlens")
		if err != nil && !os.IsNotExist(err) {
			serviceutil.Fatal("failed to setup telemetry", err)
		}
		if err == nil {
			defer telemetry.Shutdown(context.Background())
		}
		telemetry.InstrumentPerfStats(ctx)

		store, database, err := openStore(config)
		if err != nil {
			serviceutil.Fatal("failed to open database", err)
		}
		defer database.Close()

		scorer := scoring.NewService(store, scoring.DefaultBaselines())
		service := ingest.NewService(store, scorer, ingest.Sources{
			Fec: fec.NewClient(fec.ClientOptions{
				ApiKey: config.FecApiKey,
				Delay:  time.Second / 2,
			}),
			Ballotpedia: ballotpedia.NewClient(ballotpedia.ClientOptions{
				Delay: time.Second * 2,
			}),
			Census: census.NewClient(census.ClientOptions{
				Delay: time.Second / 2,
			}),
			Wikipedia: wikipedia.NewClient(wikipedia.ClientOptions{
				Delay: time.Second / 2,
			}),
			Civic: civic.NewClient(civic.ClientOptions{
				ApiKey: config.CivicApiKey,
			}),
		}, ingest.Options{
			ElectionYear: config.ElectionYear,
			HouseLimit:   houseLimit,
			SenateLimit:  senateLimit,
		})

		summary, err := service.Run(ctx)
		if err != nil {
			serviceutil.Fatal("ingest aborted", err)
		}

		fmt.Println(summary)
		for _, issue := range summary.Issues {
			fmt.Printf("  %s %s/%s: %s\n", issue.Status, issue.Source, issue.Key, issue.Reason)
		}
	},
}
