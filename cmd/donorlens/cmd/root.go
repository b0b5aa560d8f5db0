package cmd

import (
	"database/sql"
	"fmt"
	"os"

	"donorlens-backend/lib/configutil"
	"donorlens-backend/lib/serviceutil"
	"donorlens-backend/lib/sqliteutil"
	"donorlens-backend/lib/telemetry"
	"donorlens-backend/services/campaignstore"
	"donorlens-backend/services/campaignstore/db"

	"github.com/spf13/cobra"
)

type Config struct {
	// sqlite database path
	Database string `json:"database"`
	// libsql:// URL of a hosted replica, takes precedence over Database
	DatabaseUrl  string `json:"database_url"`
	FecApiKey    string `json:"fec_api_key"`
	CivicApiKey  string `json:"civic_api_key"`
	ElectionYear int    `json:"election_year"`
	// where the exported JSON files go
	OutputDir string `json:"output_dir"`
}

func (c Config) withDefaults() Config {
	if c.Database == "" {
		c.Database = "donorlens.db"
	}
	if c.OutputDir == "" {
		c.OutputDir = "web-interface/public"
	}
	return c
}

var configPath string

var rootCmd = &cobra.Command{
	Use:   "donorlens",
	Short: "donorlens aggregates campaign data and scores donation opportunities.",
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "config.json5", "path to the config file")
}

func readConfig() (Config, error) {
	config, err := configutil.ReadConfig[Config](configPath)
	if os.IsNotExist(err) {
		// running without a config file is fine, everything defaults
		return Config{}.withDefaults(), nil
	}
	if err != nil {
		return Config{}, err
	}
	return config.withDefaults(), nil
}

func openStore(config Config) (campaignstore.Service, *sql.DB, error) {
	target := config.Database
	if config.DatabaseUrl != "" {
		target = config.DatabaseUrl
	}
	database, err := sqliteutil.OpenWithSchema(target, db.Schema)
	if err != nil {
		return campaignstore.Service{}, nil, err
	}
	return campaignstore.NewService(database), database, nil
}

func Execute() {
	telemetry.InitSlog(os.Getenv("DEBUG") != "")

	if err := rootCmd.ExecuteContext(serviceutil.SignalContext()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
