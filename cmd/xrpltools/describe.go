package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func describeCmd() *cobra.Command {
	var showParams bool
	cmd := &cobra.Command{
		Use:   "describe <tool>",
		Short: "Show one tool's description and field schema",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tool, ok := registry.Lookup(args[0])
			if !ok {
				return fmt.Errorf("unknown tool %q; run list to see the catalogue", args[0])
			}
			color.New(color.FgCyan, color.Bold).Println(tool.Name())
			fmt.Println(tool.Description())
			if showParams {
				fmt.Println()
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(tool.Parameters())
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&showParams, "params", "p", false, "print the JSON Schema parameter document")
	return cmd
}
