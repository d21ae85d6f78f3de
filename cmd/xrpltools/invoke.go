package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	xrpltools "github.com/tejabhargav/xrpl-py"
)

func invokeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "invoke <tool> [json]",
		Short: "Invoke a tool with a JSON field map",
		Long: `Invoke a tool with a JSON field map given as the second argument, or
read from stdin when omitted. Keys may use snake_case; the engine
normalizes them.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := readInput(args)
			if err != nil {
				return err
			}
			callID := uuid.NewString()
			out, err := registry.Invoke(cmd.Context(), args[0], input)
			if err != nil {
				printDiagnostic(callID, err)
				if xrpltools.IsDiagnostic(err) {
					os.Exit(2)
				}
				return err
			}
			color.New(color.FgGreen).Fprintf(os.Stderr, "call %s succeeded\n", callID)
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(out)
		},
	}
	return cmd
}

func readInput(args []string) (map[string]any, error) {
	var raw string
	if len(args) == 2 {
		raw = args[1]
	} else {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("read field map from stdin: %w", err)
		}
		raw = string(data)
	}
	dec := json.NewDecoder(strings.NewReader(raw))
	dec.UseNumber()
	var input map[string]any
	if err := dec.Decode(&input); err != nil {
		return nil, fmt.Errorf("field map must be a JSON object: %w", err)
	}
	return input, nil
}

// printDiagnostic renders a typed engine diagnostic with its full field
// schema so the user can fix the input and retry.
func printDiagnostic(callID string, err error) {
	red := color.New(color.FgRed)
	red.Fprintf(os.Stderr, "call %s failed: %v\n", callID, err)

	var schema *xrpltools.ToolSchema
	var ve *xrpltools.ValidationError
	var ee *xrpltools.EnumViolationError
	var ce *xrpltools.ModelConstructionError
	var ue *xrpltools.UnknownToolError
	switch {
	case errors.As(err, &ve):
		schema = &ve.Schema
	case errors.As(err, &ee):
		schema = &ee.Schema
	case errors.As(err, &ce):
		schema = &ce.Schema
	case errors.As(err, &ue):
		fmt.Fprintf(os.Stderr, "available: %s\n", strings.Join(ue.Available, ", "))
	}
	if schema != nil {
		enc := json.NewEncoder(os.Stderr)
		enc.SetIndent("", "  ")
		_ = enc.Encode(schema)
	}
}
