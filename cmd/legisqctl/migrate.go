package main

import (
	"log"

	"github.com/spf13/cobra"

	database "legisq_backend/internals/databases"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		db := openDB()
		defer database.Close()
		if err := database.Migrate(db); err != nil {
			return err
		}
		log.Println("✅ Migration finished")
		return nil
	},
}
