// SPDX-License-Identifier: AGPL-3.0-or-later

// Package reports contains the report-generating Cobra subcommands.
package reports

import (
	"github.com/spf13/cobra"
)

// NewReportsCommand returns the `crmtool reports` command.
func NewReportsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reports",
		Short: "Report generators for the CRM project",
		Long:  "Report commands producing the spreadsheets shared with stakeholders.",
	}

	cmd.AddCommand(NewSummaryCommand())

	return cmd
}
