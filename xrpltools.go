package xrpltools

import (
	"context"
	"maps"
)

// Tool is one externally invokable operation wrapping a single model class.
// Tools are created at registry build time and never mutated afterwards;
// Invoke is a pure function of its input and is safe for unsynchronized
// concurrent use.
type Tool struct {
	name        string
	description string
	category    string
	model       string
	schema      ToolSchema
	params      map[string]any
	invoke      func(map[string]any) (map[string]any, error)
}

// Name returns the deterministic tool name: <category>_<model>, lower-cased.
func (t *Tool) Name() string { return t.name }

// Description returns the auto-composed human-readable description.
func (t *Tool) Description() string { return t.description }

// Category returns the source module's category label.
func (t *Tool) Category() string { return t.category }

// Model returns the wrapped model class name.
func (t *Tool) Model() string { return t.model }

// Schema returns the extracted field schema of the wrapped model.
func (t *Tool) Schema() ToolSchema { return t.schema.clone() }

// Parameters returns the tool's JSON Schema parameter document as a map
// (compatible with LLM tool definitions). The returned map is a shallow copy;
// callers must not mutate nested values.
func (t *Tool) Parameters() map[string]any { return maps.Clone(t.params) }

// Invoke normalizes, validates, and constructs the model from a field map,
// returning its canonical external representation. Failures are typed
// diagnostics: *ValidationError, *EnumViolationError, or
// *ModelConstructionError. The engine performs no I/O; ctx is accepted for
// interface symmetry with transports that impose deadlines.
func (t *Tool) Invoke(ctx context.Context, input map[string]any) (map[string]any, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return t.invoke(input)
}

// ToolInfo is the discovery view of a tool: name plus description.
type ToolInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Category    string `json:"category"`
}

// ToolSchema is the complete, self-describing field schema attached to every
// diagnostic so a caller can correct its input and retry without external
// documentation.
type ToolSchema struct {
	Model    string        `json:"model"`
	Required []string      `json:"required_fields"`
	Optional []string      `json:"optional_fields"`
	Fields   []FieldSchema `json:"fields"`
	// Provided lists the field keys exactly as the caller supplied them
	// (before key normalization). Populated on diagnostics only.
	Provided []string `json:"provided_fields,omitempty"`
}

func (s ToolSchema) clone() ToolSchema {
	out := s
	out.Required = append([]string(nil), s.Required...)
	out.Optional = append([]string(nil), s.Optional...)
	out.Fields = append([]FieldSchema(nil), s.Fields...)
	out.Provided = append([]string(nil), s.Provided...)
	return out
}

func (s ToolSchema) withProvided(provided []string) ToolSchema {
	out := s.clone()
	out.Provided = provided
	return out
}
