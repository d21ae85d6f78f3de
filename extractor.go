package xrpltools

import (
	"reflect"
	"strings"

	"github.com/tejabhargav/xrpl-py/model"
)

// Kind classifies a field's declared type for validation and description
// purposes.
type Kind int

const (
	// KindPrimitive is a scalar JSON type (string, integer, number, boolean).
	KindPrimitive Kind = iota
	// KindEnum is a string constrained to a closed set of values.
	KindEnum
	// KindModel is a nested model with its own extracted schema.
	KindModel
	// KindUnion is an ordered list of candidate shapes; the first that
	// matches at validation time wins.
	KindUnion
	// KindSequence is an ordered list of one element shape.
	KindSequence
	// KindOpaque is a shape the extractor does not interpret; values pass
	// through normalization unchanged and the model decides at construction.
	KindOpaque
)

func (k Kind) String() string {
	switch k {
	case KindPrimitive:
		return "primitive"
	case KindEnum:
		return "enum"
	case KindModel:
		return "model"
	case KindUnion:
		return "union"
	case KindSequence:
		return "sequence"
	default:
		return "opaque"
	}
}

// FieldSchema is the derived, per-field projection of a model class. It is a
// pure function of the declaration: extracting the same type twice yields an
// identical schema.
type FieldSchema struct {
	// Name is the canonical external field name (the struct's json tag).
	Name        string        `json:"name"`
	Required    bool          `json:"required"`
	Kind        Kind          `json:"-"`
	Type        string        `json:"type"`
	Primitive   string        `json:"-"`
	Enum        []string      `json:"enum,omitempty"`
	Fields      []FieldSchema `json:"fields,omitempty"`
	Elem        *FieldSchema  `json:"items,omitempty"`
	Variants    []FieldSchema `json:"one_of,omitempty"`
	Description string        `json:"description,omitempty"`
}

// Extract derives the field schema of a model struct type, in declaration
// order. Embedded structs are flattened. It fails only when the type exposes
// no usable fields at all; unusual field shapes degrade to KindOpaque so one
// odd field never aborts extraction.
func Extract(t reflect.Type) ([]FieldSchema, error) {
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == nil || t.Kind() != reflect.Struct {
		return nil, &SchemaError{Model: typeName(t), Reason: "definition is not a struct type"}
	}
	fields := extractFields(t, map[reflect.Type]bool{t: true})
	if len(fields) == 0 {
		return nil, &SchemaError{Model: t.Name(), Reason: "model exposes no fields"}
	}
	return fields, nil
}

func typeName(t reflect.Type) string {
	if t == nil {
		return "<nil>"
	}
	if t.Name() != "" {
		return t.Name()
	}
	return t.String()
}

func extractFields(t reflect.Type, seen map[reflect.Type]bool) []FieldSchema {
	var out []FieldSchema
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if f.Anonymous {
			ft := f.Type
			for ft.Kind() == reflect.Pointer {
				ft = ft.Elem()
			}
			if ft.Kind() == reflect.Struct && !seen[ft] {
				seen[ft] = true
				out = append(out, extractFields(ft, seen)...)
				continue
			}
		}
		name := model.FieldName(f)
		if name == "" {
			continue
		}
		fs := typeSchema(f.Type, seen)
		fs.Name = name
		fs.Required = !model.FieldOptional(f)
		fs.Description = f.Tag.Get("description")
		applyEnumTag(&fs, f.Tag.Get("enum"))
		out = append(out, fs)
	}
	return out
}

// applyEnumTag narrows a string field (or a sequence of strings) to a closed
// value set declared in an enum struct tag.
func applyEnumTag(fs *FieldSchema, tag string) {
	if tag == "" {
		return
	}
	values := strings.Split(tag, ",")
	for i := range values {
		values[i] = strings.TrimSpace(values[i])
	}
	switch {
	case fs.Kind == KindPrimitive && fs.Primitive == "string":
		fs.Kind = KindEnum
		fs.Type = "enum"
		fs.Enum = values
	case fs.Kind == KindSequence && fs.Elem != nil && fs.Elem.Kind == KindPrimitive && fs.Elem.Primitive == "string":
		elem := *fs.Elem
		elem.Kind = KindEnum
		elem.Type = "enum"
		elem.Enum = values
		fs.Elem = &elem
	}
}

// typeSchema maps a declared Go type to a schema descriptor. Unions are
// resolved through the model package's union registry before any structural
// interpretation, so a union wrapper struct is never mistaken for a nested
// model.
func typeSchema(t reflect.Type, seen map[reflect.Type]bool) FieldSchema {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if candidates := model.UnionCandidates(t); len(candidates) > 0 {
		variants := make([]FieldSchema, 0, len(candidates))
		names := make([]string, 0, len(candidates))
		for _, c := range candidates {
			variants = append(variants, candidateSchema(c, seen))
			names = append(names, c.Name)
		}
		return FieldSchema{Kind: KindUnion, Type: strings.Join(names, " | "), Variants: variants}
	}
	switch t.Kind() {
	case reflect.String:
		return FieldSchema{Kind: KindPrimitive, Type: "string", Primitive: "string"}
	case reflect.Bool:
		return FieldSchema{Kind: KindPrimitive, Type: "boolean", Primitive: "boolean"}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return FieldSchema{Kind: KindPrimitive, Type: "integer", Primitive: "integer"}
	case reflect.Float32, reflect.Float64:
		return FieldSchema{Kind: KindPrimitive, Type: "number", Primitive: "number"}
	case reflect.Slice, reflect.Array:
		elem := typeSchema(t.Elem(), seen)
		return FieldSchema{Kind: KindSequence, Type: "list of " + elem.Type, Elem: &elem}
	case reflect.Struct:
		if seen[t] {
			return FieldSchema{Kind: KindOpaque, Type: typeName(t)}
		}
		seen[t] = true
		fields := extractFields(t, seen)
		delete(seen, t)
		if len(fields) == 0 {
			return FieldSchema{Kind: KindOpaque, Type: typeName(t)}
		}
		return FieldSchema{Kind: KindModel, Type: typeName(t), Fields: fields}
	default:
		return FieldSchema{Kind: KindOpaque, Type: "any"}
	}
}

func candidateSchema(c model.UnionCandidate, seen map[reflect.Type]bool) FieldSchema {
	if c.Type != nil {
		fs := typeSchema(c.Type, seen)
		fs.Name = c.Name
		return fs
	}
	prim := c.Primitive
	if prim == "" {
		prim = "string"
	}
	return FieldSchema{Name: c.Name, Kind: KindPrimitive, Type: prim, Primitive: prim}
}
