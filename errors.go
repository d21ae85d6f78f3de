package xrpltools

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors. Use errors.Is to check; the typed errors below wrap them.
var (
	ErrUnknownTool = errors.New("unknown tool")
	ErrValidation  = errors.New("validation failed")
	ErrSchema      = errors.New("malformed model definition")
	ErrConflict    = errors.New("duplicate tool name")
)

// SchemaError reports a model definition the extractor cannot derive a schema
// from. It is recoverable: the registry logs the model and skips it.
type SchemaError struct {
	Model  string
	Reason string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("model %s: %s", e.Model, e.Reason)
}

func (e *SchemaError) Unwrap() error { return ErrSchema }

// ConflictError reports two definitions claiming the same name: either two
// model classes mapping to one tool name, or one model name appearing in two
// categories (which would make schema lookup by model ambiguous). Fatal at
// build time; the registry must not silently pick one.
type ConflictError struct {
	Name   string
	Models []string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("name %q claimed by both %s", e.Name, strings.Join(e.Models, " and "))
}

func (e *ConflictError) Unwrap() error { return ErrConflict }

// UnknownToolError reports a lookup or invocation of a name that is not in
// the registry. Available carries the full catalogue so the caller can
// self-correct.
type UnknownToolError struct {
	Name      string
	Available []string
}

func (e *UnknownToolError) Error() string {
	return fmt.Sprintf("unknown tool %q", e.Name)
}

func (e *UnknownToolError) Unwrap() error { return ErrUnknownTool }

// ValidationError reports required fields absent from the normalized input.
// Missing always lists every absent required field, not just the first.
type ValidationError struct {
	Tool    string
	Missing []string
	Schema  ToolSchema
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("tool %s: missing required fields: %s", e.Tool, strings.Join(e.Missing, ", "))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// EnumViolation is one illegal enum value: the field, the value supplied, and
// the closed legal set.
type EnumViolation struct {
	Field   string   `json:"field"`
	Value   any      `json:"value"`
	Allowed []string `json:"allowed"`
}

func (v EnumViolation) String() string {
	return fmt.Sprintf("%s: %v is not valid, legal values: %s", v.Field, v.Value, strings.Join(v.Allowed, ", "))
}

// EnumViolationError reports every enum-constrained field whose value is
// outside the legal set.
type EnumViolationError struct {
	Tool       string
	Violations []EnumViolation
	Schema     ToolSchema
}

func (e *EnumViolationError) Error() string {
	parts := make([]string, len(e.Violations))
	for i, v := range e.Violations {
		parts[i] = v.String()
	}
	return fmt.Sprintf("tool %s: enum validation failed: %s", e.Tool, strings.Join(parts, "; "))
}

func (e *EnumViolationError) Unwrap() error { return ErrValidation }

// ModelConstructionError reports a domain-level rejection not caught by
// schema checks (bad address, cross-field invariant). Reason carries the
// domain library's message verbatim.
type ModelConstructionError struct {
	Tool   string
	Reason string
	Schema ToolSchema
}

func (e *ModelConstructionError) Error() string {
	return fmt.Sprintf("tool %s: construction failed: %s", e.Tool, e.Reason)
}

func (e *ModelConstructionError) Unwrap() error { return ErrValidation }

// IsDiagnostic reports whether err is a recoverable invocation diagnostic
// (unknown tool, validation, enum, or construction failure) rather than an
// internal failure.
func IsDiagnostic(err error) bool {
	return errors.Is(err, ErrUnknownTool) || errors.Is(err, ErrValidation)
}
