package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	database "legisq_backend/internals/databases"
	"legisq_backend/internals/seeds"
	"legisq_backend/internals/seeds/metadata"
)

var (
	seedMinistriesFile string
	seedStatesFile     string
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load ministries and states from JSON files",
	Long: `Load reference data. Codes that already exist are skipped, so the
command is safe to run repeatedly. Without flags the bundled files are used.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !cmd.Flags().Changed("ministries") && !cmd.Flags().Changed("states") {
			seedMinistriesFile = seeds.MinistriesFile
			seedStatesFile = seeds.StatesFile
		}
		if seedMinistriesFile == "" && seedStatesFile == "" {
			return errors.New("nothing to seed")
		}

		db := openDB()
		defer database.Close()
		if err := database.Migrate(db); err != nil {
			return err
		}

		ctx := cmd.Context()
		if seedMinistriesFile != "" {
			n, err := metadata.SeedMinistriesFromJSON(ctx, db, seedMinistriesFile)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "ministries inserted: %d\n", n)
		}
		if seedStatesFile != "" {
			n, err := metadata.SeedStatesFromJSON(ctx, db, seedStatesFile)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "states inserted: %d\n", n)
		}
		return nil
	},
}

func init() {
	seedCmd.Flags().StringVar(&seedMinistriesFile, "ministries", "", "JSON file of {code, name} ministries")
	seedCmd.Flags().StringVar(&seedStatesFile, "states", "", "JSON file of {code, name} states")
}
