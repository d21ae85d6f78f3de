package xrpltools

import (
	"context"
	"errors"
	"log/slog"
	"reflect"

	"github.com/tejabhargav/xrpl-py/model"
)

// Registry is the process-wide catalogue of synthesized tools. It is built
// exactly once; after Build returns, the registry is immutable and may be
// read concurrently by any number of callers without synchronization.
type Registry struct {
	tools   map[string]*Tool
	byModel map[string]*Tool
	order   []string
}

// Build scans a fixed list of source modules and synthesizes one tool per
// discovered model class. Definitions marked as non-models (flag types,
// non-structs) are skipped silently; a definition whose extraction fails with
// *SchemaError is logged and skipped so one malformed model cannot prevent
// the rest of the catalogue from loading. A tool name collision aborts the
// build with *ConflictError before any tool becomes reachable.
func Build(modules []model.Module, opts ...Option) (*Registry, error) {
	o := buildOptions{logger: slog.Default()}
	for _, opt := range opts {
		opt(&o)
	}
	r := &Registry{
		tools:   make(map[string]*Tool),
		byModel: make(map[string]*Tool),
	}
	for _, mod := range modules {
		for _, def := range mod.Definitions {
			if model.IsFlag(def) || def.Type == nil || def.Type.Kind() != reflect.Struct {
				continue
			}
			tool, err := Synthesize(def, mod.Category)
			if err != nil {
				var se *SchemaError
				if errors.As(err, &se) {
					o.logger.Warn("skipping model with unusable schema",
						"category", mod.Category,
						"model", def.Name,
						"reason", se.Reason)
					continue
				}
				return nil, err
			}
			if existing, ok := r.tools[tool.Name()]; ok {
				return nil, &ConflictError{
					Name:   tool.Name(),
					Models: []string{existing.Model(), def.Name},
				}
			}
			// A model name shared across categories would make schema
			// lookup by model ambiguous; fatal for the same reason tool
			// name collisions are.
			if existing, ok := r.byModel[def.Name]; ok {
				return nil, &ConflictError{
					Name:   def.Name,
					Models: []string{existing.Name(), tool.Name()},
				}
			}
			r.tools[tool.Name()] = tool
			r.byModel[def.Name] = tool
			r.order = append(r.order, tool.Name())
		}
	}
	o.logger.Info("tool registry built", "tools", len(r.order))
	return r, nil
}

// Tools returns the full catalogue in registration order.
func (r *Registry) Tools() []ToolInfo {
	out := make([]ToolInfo, 0, len(r.order))
	for _, name := range r.order {
		t := r.tools[name]
		out = append(out, ToolInfo{Name: t.Name(), Description: t.Description(), Category: t.Category()})
	}
	return out
}

// Lookup returns the tool with the given name, or (nil, false).
func (r *Registry) Lookup(name string) (*Tool, bool) {
	t, ok := r.tools[name]
	return t, ok
}

// Invoke is the single entry point for callers: it resolves the tool by name
// and runs its invocation closure. An unregistered name returns
// *UnknownToolError carrying the available catalogue; all other failures are
// the tool's own typed diagnostics. Invocations are independent: a failure
// affects neither the registry nor any concurrent call.
func (r *Registry) Invoke(ctx context.Context, name string, input map[string]any) (map[string]any, error) {
	t, ok := r.tools[name]
	if !ok {
		return nil, &UnknownToolError{Name: name, Available: append([]string(nil), r.order...)}
	}
	return t.Invoke(ctx, input)
}

// CategorySummary describes the tools of one category for discovery.
type CategorySummary struct {
	Category string         `json:"category"`
	Count    int            `json:"count"`
	Models   []ModelSummary `json:"models"`
}

// ModelSummary is the catalogue view of one model: its name, the tool that
// creates it, and how many fields it declares.
type ModelSummary struct {
	Model      string `json:"model"`
	Tool       string `json:"tool"`
	FieldCount int    `json:"field_count"`
	Doc        string `json:"description,omitempty"`
}

// Catalog groups the catalogue by category, preserving registration order
// within and across categories.
func (r *Registry) Catalog() []CategorySummary {
	var out []CategorySummary
	index := make(map[string]int)
	for _, name := range r.order {
		t := r.tools[name]
		i, ok := index[t.Category()]
		if !ok {
			i = len(out)
			index[t.Category()] = i
			out = append(out, CategorySummary{Category: t.Category()})
		}
		out[i].Models = append(out[i].Models, ModelSummary{
			Model:      t.Model(),
			Tool:       t.Name(),
			FieldCount: len(t.schema.Fields),
		})
		out[i].Count++
	}
	return out
}

// ModelSchema returns the full field schema of one model by its class name,
// for callers that want to inspect a shape before invoking. Unknown names
// return *UnknownToolError listing every registered model.
func (r *Registry) ModelSchema(modelName string) (ToolSchema, error) {
	t, ok := r.byModel[modelName]
	if !ok {
		available := make([]string, 0, len(r.order))
		for _, name := range r.order {
			available = append(available, r.tools[name].Model())
		}
		return ToolSchema{}, &UnknownToolError{Name: modelName, Available: available}
	}
	return t.Schema(), nil
}
