// Package main is the entry point for the crastudio CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/crastudio/crastudio/internal/config"
)

// Version information set via ldflags during build.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "crastudio",
		Short: "CRA compliance tracking server",
		Long:  `Crastudio tracks EU Cyber Resilience Act compliance programs: product inventory, requirements catalog, gap assessments, remediation, vulnerabilities, and audit records, with PDF and Excel report exports.`,
	}

	cmd.AddCommand(serveCmd())
	cmd.AddCommand(versionCmd())

	return cmd
}

// loadConfig loads configuration from the .env file and environment variables.
func loadConfig(envFile string) (config.AppConfig, error) {
	cfg, err := config.LoadConfig(envFile)
	if err != nil {
		return config.AppConfig{}, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}
