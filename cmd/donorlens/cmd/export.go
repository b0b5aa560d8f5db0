package cmd

import (
	"fmt"

	"donorlens-backend/lib/serviceutil"
	"donorlens-backend/services/export"

	"github.com/spf13/cobra"
)

var outputDir string

func init() {
	exportCmd.Flags().StringVar(&outputDir, "out", "", "output directory, overrides the config")
	rootCmd.AddCommand(exportCmd)
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Writes the database out as JSON files for the web interface.",
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

		dir := config.OutputDir
		if outputDir != "" {
			dir = outputDir
		}

		err = export.NewService(store).WriteJson(ctx, dir)
		if err != nil {
			serviceutil.Fatal("export failed", err)
		}
		fmt.Printf("exported to %s\n", dir)
	},
}
