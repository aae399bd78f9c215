// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/acme/crmtool/cmd/crmtool/internal/clierr"
	"github.com/acme/crmtool/internal/buildcfg"
)

const defaultBuildFile = "crmtool.yaml"

// NewBuildConfigCommand returns the `crmtool build-config` command.
func NewBuildConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build-config",
		Short: "Resolve the frontend build configuration",
		Long: `Resolve the base path, dev-server port and browser auto-open flag for
the frontend build. On GitHub Actions the base path is derived from the
repository name so assets resolve under project pages; locally it is "/".
An optional crmtool.yaml can override port, open and base path.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			file, err := cmd.Flags().GetString("file")
			if err != nil {
				return clierr.Newf(2, "build-config: get file flag: %v", err)
			}
			format, err := cmd.Flags().GetString("format")
			if err != nil {
				return clierr.Newf(2, "build-config: get format flag: %v", err)
			}

			ctx := buildcfg.ContextFromEnv(os.Getenv)
			cfg, err := buildcfg.Resolve(ctx, file)
			if err != nil {
				return clierr.Wrap(1, "build-config", err)
			}

			out := cmd.OutOrStdout()
			switch format {
			case "env":
				fmt.Fprintf(out, "BASE_PATH=%s\n", cfg.BasePath)
				fmt.Fprintf(out, "PORT=%d\n", cfg.Port)
				fmt.Fprintf(out, "OPEN=%t\n", cfg.Open)
			case "yaml":
				data, err := yaml.Marshal(cfg)
				if err != nil {
					return clierr.Wrap(1, "build-config: encode yaml", err)
				}
				fmt.Fprint(out, string(data))
			default:
				return clierr.Newf(2, "build-config: unknown format %q (want env or yaml)", format)
			}
			return nil
		},
	}

	cmd.Flags().String("file", defaultBuildFile, "path to an optional yaml build file")
	cmd.Flags().String("format", "env", "output format: env or yaml")

	return cmd
}
