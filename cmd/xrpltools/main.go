// Package main provides the xrpltools inspection CLI: list the synthesized
// tool catalogue, describe one tool, or invoke a tool with a JSON field map.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	xrpltools "github.com/tejabhargav/xrpl-py"
	"github.com/tejabhargav/xrpl-py/model/catalog"
)

var registry *xrpltools.Registry

func main() {
	rootCmd := &cobra.Command{
		Use:   "xrpltools",
		Short: "Inspect and invoke synthesized XRPL model tools",
		Long: `xrpltools builds the tool catalogue from the XRPL model library and
lets you inspect it or run a single invocation from the command line.

The engine only constructs and validates models; it never signs or
submits anything.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			quiet, _ := cmd.Flags().GetBool("quiet")
			logger := slog.Default()
			if quiet {
				logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
			}
			reg, err := xrpltools.Build(catalog.Modules(), xrpltools.WithLogger(logger))
			if err != nil {
				return fmt.Errorf("build tool registry: %w", err)
			}
			registry = reg
			return nil
		},
	}
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "suppress build log output")
	rootCmd.AddCommand(listCmd(), describeCmd(), invokeCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
