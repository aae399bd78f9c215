// SPDX-License-Identifier: AGPL-3.0-or-later

/*
crmtool - developer tooling for the Acme CRM web frontend.
It owns the build-time configuration of the single-page application
(asset base path, dev-server settings) and the generation of the
project status workbook shared with stakeholders.

Copyright (C) 2026 Acme Engineering
*/

package reports

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/acme/crmtool/cmd/crmtool/internal/clierr"
	"github.com/acme/crmtool/internal/projectroot"
	"github.com/acme/crmtool/internal/report"
	"github.com/acme/crmtool/internal/status"
)

const summaryFilename = "Project-Summary.xlsx"

// NewSummaryCommand returns the `crmtool reports summary` command.
func NewSummaryCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Generate the Project-Summary.xlsx status workbook",
		Long: `Generate the project status workbook with the Frontend, Backend and
Next Steps sheets and write it to the project root. The file is
rewritten whole on every run; missing directories are created.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			outputPath, err := cmd.Flags().GetString("output")
			if err != nil {
				return clierr.Newf(2, "reports summary: get output flag: %v", err)
			}

			if outputPath == "" {
				root, err := projectroot.FromExecutable()
				if err != nil {
					return clierr.Wrap(1, "reports summary: resolve project root", err)
				}
				outputPath = filepath.Join(root, summaryFilename)
			}
			outputPath, err = filepath.Abs(outputPath)
			if err != nil {
				return clierr.Wrap(1, "reports summary: resolve output path", err)
			}

			if err := report.Write(status.Workbook(), outputPath); err != nil {
				return clierr.Wrap(1, "reports summary", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Project summary written to %s\n", outputPath)
			return nil
		},
	}

	cmd.Flags().String(
		"output",
		"",
		"path to write the workbook (default: Project-Summary.xlsx in the project root)",
	)

	return cmd
}
