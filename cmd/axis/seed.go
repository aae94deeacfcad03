package main

import (
	"context"
	"fmt"

	"github.com/jonathan/axis-portal/internal/contractors"
	"github.com/jonathan/axis-portal/internal/db"
	"github.com/jonathan/axis-portal/internal/types"
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var seedFile string

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load reference data into the database",
}

var seedContractorsCmd = &cobra.Command{
	Use:   "contractors",
	Short: "Upsert the contractor directory from a YAML file",
	Long: `Upsert contractors from a YAML seed file. Entries are matched by name, so
running the same file twice leaves the directory unchanged.`,
	RunE: runSeedContractors,
}

func init() {
	seedContractorsCmd.Flags().StringVarP(&seedFile, "file", "f", "", "Path to the contractor seed file")
	_ = seedContractorsCmd.MarkFlagRequired("file")
	seedCmd.AddCommand(seedContractorsCmd)
	rootCmd.AddCommand(seedCmd)
}

// contractorUpserter is the slice of the store seeding needs.
type contractorUpserter interface {
	UpsertContractor(ctx context.Context, c *types.Contractor) (string, error)
}

func runSeedContractors(cmd *cobra.Command, _ []string) error {
	// Validate the file before touching the database.
	list, err := contractors.LoadSeed(seedFile)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	database, err := db.Connect(cmd.Context(), cfg.Database.URL, db.PoolConfig{})
	if err != nil {
		return eris.Wrap(err, "failed to connect to database")
	}
	defer database.Close()

	n, err := seedContractors(cmd.Context(), database, list)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Seeded %d contractors from %s\n", n, seedFile)
	return nil
}

func seedContractors(ctx context.Context, store contractorUpserter, list []types.Contractor) (int, error) {
	for i := range list {
		id, err := store.UpsertContractor(ctx, &list[i])
		if err != nil {
			return i, eris.Wrapf(err, "seed contractor %q", list[i].Name)
		}
		zap.L().Debug("contractor seeded", zap.String("name", list[i].Name), zap.String("id", id))
	}
	return len(list), nil
}
