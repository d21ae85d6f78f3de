package xrpltools

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/tejabhargav/xrpl-py/model"
)

// Synthesize combines one model definition and a category label into a tool:
// deterministic name, auto-composed description, JSON Schema parameters, and
// the invocation closure (normalize, validate, construct). It fails with
// *SchemaError when the definition yields no usable schema.
func Synthesize(def model.Definition, category string) (*Tool, error) {
	fields, err := Extract(def.Type)
	if err != nil {
		return nil, err
	}
	params, err := buildParameters(def.Type, fields)
	if err != nil {
		return nil, err
	}
	schema := ToolSchema{Model: def.Name, Fields: fields}
	for _, f := range fields {
		if f.Required {
			schema.Required = append(schema.Required, f.Name)
		} else {
			schema.Optional = append(schema.Optional, f.Name)
		}
	}
	t := &Tool{
		name:        ToolName(category, def.Name),
		description: composeDescription(def, fields),
		category:    strings.ToLower(category),
		model:       def.Name,
		schema:      schema,
		params:      params,
	}
	t.invoke = func(input map[string]any) (map[string]any, error) {
		return invokeModel(t, def, input)
	}
	return t, nil
}

// ToolName derives the deterministic tool name for a category and model:
// both parts lower-cased, joined with an underscore (transaction_payment).
func ToolName(category, modelName string) string {
	return strings.ToLower(category) + "_" + strings.ToLower(modelName)
}

// invokeModel is the invocation algorithm shared by every synthesized tool:
//
//  1. normalize every supplied key and value, depth-first;
//  2. report every missing required field at once;
//  3. report every illegal enum value at once;
//  4. hand the normalized map to the domain constructor;
//  5. return the canonical representation (unknown fields dropped).
func invokeModel(t *Tool, def model.Definition, input map[string]any) (map[string]any, error) {
	provided := make([]string, 0, len(input))
	for key := range input {
		provided = append(provided, key)
	}
	sort.Strings(provided)
	normalized := NormalizeFields(input)

	var missing []string
	for _, name := range t.schema.Required {
		if _, ok := normalized[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return nil, &ValidationError{
			Tool:    t.name,
			Missing: missing,
			Schema:  t.schema.withProvided(provided),
		}
	}

	if violations := checkEnums(t.schema.Fields, normalized); len(violations) > 0 {
		return nil, &EnumViolationError{
			Tool:       t.name,
			Violations: violations,
			Schema:     t.schema.withProvided(provided),
		}
	}

	built, err := model.Build(def, normalized)
	if err != nil {
		reason := err.Error()
		var ce *model.ConstructionError
		if errors.As(err, &ce) {
			reason = ce.Reason
		}
		return nil, &ModelConstructionError{
			Tool:   t.name,
			Reason: reason,
			Schema: t.schema.withProvided(provided),
		}
	}
	return built, nil
}

// checkEnums verifies enum membership for every constrained field present in
// the normalized input, including sequence-of-enum fields, and collects all
// violations instead of stopping at the first.
func checkEnums(fields []FieldSchema, normalized map[string]any) []EnumViolation {
	var out []EnumViolation
	for _, f := range fields {
		value, ok := normalized[f.Name]
		if !ok || value == nil {
			continue
		}
		switch {
		case f.Kind == KindEnum:
			if !enumMember(f.Enum, value) {
				out = append(out, EnumViolation{Field: f.Name, Value: value, Allowed: f.Enum})
			}
		case f.Kind == KindSequence && f.Elem != nil && f.Elem.Kind == KindEnum:
			elems, ok := value.([]any)
			if !ok {
				continue
			}
			for _, elem := range elems {
				if !enumMember(f.Elem.Enum, elem) {
					out = append(out, EnumViolation{Field: f.Name, Value: elem, Allowed: f.Elem.Enum})
				}
			}
		}
	}
	return out
}

func enumMember(allowed []string, value any) bool {
	s, ok := value.(string)
	if !ok {
		s = fmt.Sprint(value)
	}
	for _, a := range allowed {
		if s == a {
			return true
		}
	}
	return false
}

// composeDescription builds the tool's human-readable description from the
// field schema: what the tool creates, then required and optional fields with
// one example value per field type.
func composeDescription(def model.Definition, fields []FieldSchema) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Create a %s model and return its canonical XRPL representation.", def.Name)
	if def.Doc != "" {
		b.WriteString(" ")
		b.WriteString(def.Doc)
	}
	writeFieldList(&b, "Required fields", fields, true)
	writeFieldList(&b, "Optional fields", fields, false)
	return b.String()
}

func writeFieldList(b *strings.Builder, title string, fields []FieldSchema, required bool) {
	var matched []FieldSchema
	for _, f := range fields {
		if f.Required == required {
			matched = append(matched, f)
		}
	}
	if len(matched) == 0 {
		return
	}
	fmt.Fprintf(b, "\n%s:", title)
	for _, f := range matched {
		fmt.Fprintf(b, "\n  %s (%s), e.g. %s", f.Name, f.Type, exampleFor(f))
		if len(f.Enum) > 0 {
			fmt.Fprintf(b, "; one of: %s", strings.Join(f.Enum, ", "))
		} else if f.Elem != nil && len(f.Elem.Enum) > 0 {
			fmt.Fprintf(b, "; elements one of: %s", strings.Join(f.Elem.Enum, ", "))
		}
		if f.Description != "" {
			fmt.Fprintf(b, " - %s", f.Description)
		}
	}
}

// exampleFor returns one example value per field type. Amount-semantic and
// address-like names get domain-shaped examples so a model sees realistic
// input.
func exampleFor(f FieldSchema) string {
	switch f.Kind {
	case KindEnum:
		if len(f.Enum) > 0 {
			return fmt.Sprintf("%q", f.Enum[0])
		}
		return `"value"`
	case KindUnion:
		if len(f.Variants) > 0 {
			return exampleFor(f.Variants[0])
		}
		return `"1000000"`
	case KindSequence:
		if f.Elem != nil {
			return "[" + exampleFor(*f.Elem) + "]"
		}
		return "[]"
	case KindModel:
		return "{...}"
	case KindOpaque:
		return "any value"
	}
	switch f.Primitive {
	case "string":
		if isAmountKey(f.Name) || strings.Contains(strings.ToLower(f.Name), "drops") {
			return `"1000000"`
		}
		if strings.Contains(strings.ToLower(f.Name), "account") ||
			strings.Contains(strings.ToLower(f.Name), "destination") ||
			strings.Contains(strings.ToLower(f.Name), "issuer") ||
			strings.Contains(strings.ToLower(f.Name), "owner") {
			return `"rN7n7otQDd6FczFgLdSqtcsAUxDkw6fzRH"`
		}
		return `"text"`
	case "integer":
		return "12345"
	case "number":
		return "1.5"
	case "boolean":
		return "true"
	}
	return `"value"`
}
