// SPDX-License-Identifier: AGPL-3.0-or-later

/*
crmtool - developer tooling for the Acme CRM web frontend.
It owns the build-time configuration of the single-page application
(asset base path, dev-server settings) and the generation of the
project status workbook shared with stakeholders.

Copyright (C) 2026 Acme Engineering
*/

// Package commands contains the Cobra subcommands for the crmtool CLI.
package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/acme/crmtool/cmd/crmtool/commands/reports"
)

// NewRootCmd constructs the crmtool root Cobra command.
func NewRootCmd() *cobra.Command {
	version := os.Getenv("CRMTOOL_VERSION")
	if version == "" {
		version = "0.0.0-dev"
	}

	cmd := &cobra.Command{
		Use:           "crmtool",
		Short:         "crmtool - build and reporting tooling for the CRM frontend",
		Long:          "crmtool resolves the frontend build configuration and generates project status reports.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the version number of crmtool",
		Run: func(cmd *cobra.Command, args []string) {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "crmtool version %s\n", version)
		},
	})

	cmd.AddCommand(NewBuildConfigCommand())
	cmd.AddCommand(reports.NewReportsCommand())

	return cmd
}
