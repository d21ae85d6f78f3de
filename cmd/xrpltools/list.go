package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func listCmd() *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the synthesized tool catalogue",
		RunE: func(cmd *cobra.Command, args []string) error {
			switch format {
			case "json":
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(registry.Catalog())
			case "yaml":
				return yaml.NewEncoder(os.Stdout).Encode(registry.Catalog())
			case "text":
				printCatalog()
				return nil
			default:
				return fmt.Errorf("unknown format %q (want text, json, or yaml)", format)
			}
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "text", "output format: text, json, or yaml")
	return cmd
}

func printCatalog() {
	heading := color.New(color.FgCyan, color.Bold)
	toolName := color.New(color.FgGreen)
	total := 0
	for _, cat := range registry.Catalog() {
		heading.Printf("%s (%d)\n", strings.ToUpper(cat.Category[:1])+cat.Category[1:], cat.Count)
		for _, m := range cat.Models {
			fmt.Printf("  %s  %s (%d fields)\n", toolName.Sprint(m.Tool), m.Model, m.FieldCount)
		}
		total += cat.Count
	}
	fmt.Printf("\n%d tools registered\n", total)
}
