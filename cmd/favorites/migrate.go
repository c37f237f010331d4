package main

import (
	"github.com/spf13/cobra"

	"github.com/wikimedia/favorites/db"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply the database schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		log := newLogger()

		cfg := dbConfigFromViper()
		cfg.AutoMigrate = false

		gdb, err := db.Open(cmd.Context(), cfg)
		if err != nil {
			return err
		}
		if err := db.AutoMigrate(gdb); err != nil {
			return err
		}
		log.Info("schema up to date", "driver", cfg.Driver)
		return nil
	},
}
