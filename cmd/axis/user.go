package main

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jonathan/axis-portal/internal/db"
	"github.com/jonathan/axis-portal/internal/types"
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
)

var (
	grantEmail string
	grantRole  string
)

var userCmd = &cobra.Command{
	Use:   "user",
	Short: "Manage portal accounts",
}

var userGrantCmd = &cobra.Command{
	Use:   "grant",
	Short: "Grant a role to an existing account",
	RunE:  runUserGrant,
}

func init() {
	userGrantCmd.Flags().StringVar(&grantEmail, "email", "", "Email of the account")
	userGrantCmd.Flags().StringVar(&grantRole, "role", "", "Role to grant (client, contractor, admin)")
	_ = userGrantCmd.MarkFlagRequired("email")
	_ = userGrantCmd.MarkFlagRequired("role")
	userCmd.AddCommand(userGrantCmd)
	rootCmd.AddCommand(userCmd)
}

// roleGranter is the slice of the store role grants need.
type roleGranter interface {
	GetUserByEmail(ctx context.Context, email string) (*db.User, error)
	HasRole(ctx context.Context, userID uuid.UUID, role types.AppRole) (bool, error)
	AssignRole(ctx context.Context, userID uuid.UUID, role types.AppRole) error
}

func runUserGrant(cmd *cobra.Command, _ []string) error {
	role := types.AppRole(grantRole)
	if !role.Valid() {
		return eris.Errorf("unknown role %q", grantRole)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	database, err := db.Connect(cmd.Context(), cfg.Database.URL, db.PoolConfig{})
	if err != nil {
		return eris.Wrap(err, "failed to connect to database")
	}
	defer database.Close()

	granted, err := grantRoleTo(cmd.Context(), database, grantEmail, role)
	if err != nil {
		return err
	}
	if granted {
		fmt.Fprintf(cmd.OutOrStdout(), "Granted %s to %s\n", role, grantEmail)
	} else {
		fmt.Fprintf(cmd.OutOrStdout(), "%s already has %s\n", grantEmail, role)
	}
	return nil
}

// grantRoleTo reports whether the role was newly granted.
func grantRoleTo(ctx context.Context, store roleGranter, email string, role types.AppRole) (bool, error) {
	user, err := store.GetUserByEmail(ctx, email)
	if err != nil {
		return false, err
	}
	if user == nil {
		return false, eris.Errorf("no account for %s", email)
	}
	has, err := store.HasRole(ctx, user.ID, role)
	if err != nil {
		return false, err
	}
	if has {
		return false, nil
	}
	if err := store.AssignRole(ctx, user.ID, role); err != nil {
		return false, err
	}
	return true, nil
}
