package main

import (
	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"legisq_backend/internals/configs"
	database "legisq_backend/internals/databases"
)

var rootCmd = &cobra.Command{
	Use:   "legisqctl",
	Short: "LegisQ maintenance commands",
	Long: `legisqctl runs maintenance tasks against the LegisQ database:
schema migration, reference-data seeding and admin password hashing.
Database settings are read from the same environment as the server.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		configs.LoadEnv()
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd, seedCmd, hashPasswordCmd)
}

// openDB: ConnectDB berhenti (log.Fatal) bila koneksi gagal.
func openDB() *gorm.DB {
	database.ConnectDB()
	return database.DB
}
