package xrpltools

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"
	"strings"

	"github.com/invopop/jsonschema"
	sjson "github.com/santhosh-tekuri/jsonschema/v6"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// buildParameters produces the JSON Schema parameter document for a model
// type: reflect the struct, inline the $defs references, then overlay the
// extracted field schema (required set, enums, unions, opaque fields), and
// finally compile the result as a build-time sanity check. A schema that does
// not compile is a *SchemaError, handled like any other malformed model.
func buildParameters(t reflect.Type, fields []FieldSchema) (map[string]any, error) {
	flat, err := flattenSchema(reflectSchema(t))
	if err != nil {
		return nil, &SchemaError{Model: typeName(t), Reason: err.Error()}
	}
	raw, err := json.Marshal(flat)
	if err != nil {
		return nil, &SchemaError{Model: typeName(t), Reason: err.Error()}
	}
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, &SchemaError{Model: typeName(t), Reason: err.Error()}
	}
	overlayFieldSchema(m, fields)
	if err := compileCheck(m); err != nil {
		return nil, &SchemaError{Model: typeName(t), Reason: "generated schema does not compile: " + err.Error()}
	}
	return m, nil
}

func reflectSchema(t reflect.Type) *jsonschema.Schema {
	r := new(jsonschema.Reflector)
	return r.ReflectFromType(t)
}

// flattenSchema inlines the root $defs entry and resolves every reference,
// at any depth, so the document is self-contained, the shape LLM tool
// definitions expect.
func flattenSchema(s *jsonschema.Schema) (*jsonschema.Schema, error) {
	rootID := strings.TrimPrefix(s.Ref, "#/$defs/")
	var root *jsonschema.Schema
	defs := make(map[string]*jsonschema.Schema)
	for name, def := range s.Definitions {
		if name == rootID {
			root = def
		} else {
			defs[name] = def
		}
	}
	if root == nil {
		// Reflector inlined the root itself (e.g. DoNotReference or an
		// empty struct); use the schema as-is.
		root = s
		root.Version = ""
		root.ID = ""
		root.Definitions = nil
		return root, nil
	}
	out := &jsonschema.Schema{
		Type:       root.Type,
		Properties: root.Properties,
		Required:   root.Required,
	}
	r := &refResolver{defs: defs, active: make(map[string]bool)}
	r.walk(out)
	return out, nil
}

// refResolver rewrites $defs references in place wherever they occur:
// properties, array items, and items of items ([][]T reflects as
// array → array → $ref). A reference that cannot be resolved (missing def,
// cycle) degrades to a bare object node, matching the extractor's opaque
// fallback.
type refResolver struct {
	defs   map[string]*jsonschema.Schema
	active map[string]bool
}

func (r *refResolver) resolve(s *jsonschema.Schema) *jsonschema.Schema {
	if s == nil {
		return nil
	}
	if s.Ref != "" {
		name := strings.TrimPrefix(s.Ref, "#/$defs/")
		def, ok := r.defs[name]
		if !ok || r.active[name] {
			return &jsonschema.Schema{Type: "object"}
		}
		r.active[name] = true
		resolved := r.resolve(def)
		delete(r.active, name)
		return resolved
	}
	r.walk(s)
	return s
}

func (r *refResolver) walk(s *jsonschema.Schema) {
	s.Items = r.resolve(s.Items)
	r.resolveProps(s.Properties)
}

func (r *refResolver) resolveProps(props *orderedmap.OrderedMap[string, *jsonschema.Schema]) {
	if props == nil {
		return
	}
	for pair := props.Oldest(); pair != nil; pair = pair.Next() {
		pair.Value = r.resolve(pair.Value)
	}
}

// overlayFieldSchema rewrites the reflected document from the extracted
// field schema, which is authoritative: it knows about unions, enum tags,
// opaque fields, and the required/optional split.
func overlayFieldSchema(m map[string]any, fields []FieldSchema) {
	m["type"] = "object"
	delete(m, "$schema")
	delete(m, "$id")
	delete(m, "additionalProperties")
	props, ok := m["properties"].(map[string]any)
	if !ok {
		props = make(map[string]any)
		m["properties"] = props
	}
	var required []string
	for _, f := range fields {
		if f.Required {
			required = append(required, f.Name)
		}
		prop, _ := props[f.Name].(map[string]any)
		props[f.Name] = overlayProperty(prop, f)
	}
	if len(required) > 0 {
		m["required"] = required
	} else {
		delete(m, "required")
	}
}

func overlayProperty(prop map[string]any, f FieldSchema) map[string]any {
	switch f.Kind {
	case KindEnum:
		prop = ensureProp(prop)
		prop["type"] = "string"
		prop["enum"] = anySlice(f.Enum)
	case KindUnion:
		prop = map[string]any{"oneOf": variantSchemas(f.Variants)}
	case KindOpaque:
		prop = map[string]any{}
	case KindSequence:
		prop = ensureProp(prop)
		prop["type"] = "array"
		if f.Elem != nil {
			items, _ := prop["items"].(map[string]any)
			prop["items"] = overlayProperty(items, *f.Elem)
		}
	case KindModel:
		prop = ensureProp(prop)
		prop["type"] = "object"
	default:
		prop = ensureProp(prop)
	}
	if f.Description != "" {
		prop["description"] = f.Description
	}
	return prop
}

func ensureProp(prop map[string]any) map[string]any {
	if prop == nil {
		return make(map[string]any)
	}
	// The extracted field schema is authoritative; a reference node must not
	// survive into the overlaid document.
	delete(prop, "$ref")
	return prop
}

func variantSchemas(variants []FieldSchema) []any {
	out := make([]any, 0, len(variants))
	for _, v := range variants {
		out = append(out, fieldSchemaJSON(v))
	}
	return out
}

// fieldSchemaJSON renders one extracted field schema as a standalone JSON
// Schema node; used for union variants, which the reflector cannot see
// through.
func fieldSchemaJSON(f FieldSchema) map[string]any {
	switch f.Kind {
	case KindPrimitive:
		node := map[string]any{"type": f.Primitive}
		if f.Description != "" {
			node["description"] = f.Description
		}
		return node
	case KindEnum:
		return map[string]any{"type": "string", "enum": anySlice(f.Enum)}
	case KindSequence:
		node := map[string]any{"type": "array"}
		if f.Elem != nil {
			node["items"] = fieldSchemaJSON(*f.Elem)
		}
		return node
	case KindModel:
		props := make(map[string]any, len(f.Fields))
		var required []string
		for _, sub := range f.Fields {
			props[sub.Name] = fieldSchemaJSON(sub)
			if sub.Required {
				required = append(required, sub.Name)
			}
		}
		node := map[string]any{"type": "object", "properties": props}
		if len(required) > 0 {
			node["required"] = required
		}
		if f.Description != "" {
			node["description"] = f.Description
		}
		return node
	case KindUnion:
		return map[string]any{"oneOf": variantSchemas(f.Variants)}
	default:
		return map[string]any{}
	}
}

func anySlice(values []string) []any {
	out := make([]any, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}

// compileCheck compiles the parameter document with a real JSON Schema
// compiler so a malformed schema surfaces at build time, not when a caller
// first reads it.
func compileCheck(m map[string]any) error {
	raw, err := json.Marshal(m)
	if err != nil {
		return err
	}
	doc, err := sjson.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return err
	}
	c := sjson.NewCompiler()
	if err := c.AddResource("tool.json", doc); err != nil {
		return err
	}
	if _, err := c.Compile("tool.json"); err != nil {
		return fmt.Errorf("%v", err)
	}
	return nil
}
