package main

import (
	"github.com/jonathan/axis-portal/internal/db"
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending database migrations",
	RunE: func(cmd *cobra.Command, _ []string) error {
		if err := cfg.Validate(); err != nil {
			return err
		}
		database, err := db.Connect(cmd.Context(), cfg.Database.URL, db.PoolConfig{})
		if err != nil {
			return eris.Wrap(err, "failed to connect to database")
		}
		defer database.Close()

		if err := db.Migrate(cmd.Context(), database.Pool()); err != nil {
			return err
		}
		zap.L().Info("migrations applied")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}
