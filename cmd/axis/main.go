// Package main provides the entry point for the Axis portal.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/jonathan/axis-portal/internal/config"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	configDir string
	cfg       *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "axis",
	Short: "Axis sustainability execution portal",
	Long:  "Axis turns a company's sustainability goals into an execution report and connects it with vetted contractors.",
	// Every subcommand needs configuration and logging.
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		loaded, err := config.LoadFrom(configDir)
		if err != nil {
			return err
		}
		if err := config.InitLogger(loaded.Log); err != nil {
			return err
		}
		cfg = loaded
		return nil
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", ".", "Directory containing config.yaml")
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	err := rootCmd.Execute()
	_ = zap.L().Sync()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
