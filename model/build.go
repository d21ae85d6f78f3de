package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"

	"github.com/go-playground/validator/v10"
)

// validate is shared across all Build calls; validator.Validate is safe for
// concurrent use.
var validate = validator.New(validator.WithRequiredStructEnabled())

// ConstructionError is a domain-level rejection: the field map passed
// tag-level checks in the engine but the model itself refused it (bad address
// format, cross-field invariant, malformed union value). Reason carries the
// underlying message verbatim.
type ConstructionError struct {
	Model  string
	Reason string
}

func (e *ConstructionError) Error() string {
	return fmt.Sprintf("cannot construct %s: %s", e.Model, e.Reason)
}

// Build constructs a model instance from a canonical field map and returns
// its external representation. Fields the model does not declare are dropped;
// empty optional fields are omitted from the result. The input map is not
// mutated. Failures are always *ConstructionError.
func Build(def Definition, fields map[string]any) (map[string]any, error) {
	if def.Type == nil || def.Type.Kind() != reflect.Struct {
		return nil, &ConstructionError{Model: def.Name, Reason: "definition has no struct type"}
	}
	raw, err := json.Marshal(fields)
	if err != nil {
		return nil, &ConstructionError{Model: def.Name, Reason: err.Error()}
	}
	inst := reflect.New(def.Type).Interface()
	if err := json.Unmarshal(raw, inst); err != nil {
		return nil, &ConstructionError{Model: def.Name, Reason: err.Error()}
	}
	if d, ok := inst.(Defaulter); ok {
		d.SetDefaults()
	}
	if err := validate.Struct(inst); err != nil {
		return nil, &ConstructionError{Model: def.Name, Reason: err.Error()}
	}
	if v, ok := inst.(Validatable); ok {
		if err := v.Validate(); err != nil {
			return nil, &ConstructionError{Model: def.Name, Reason: err.Error()}
		}
	}
	out, err := json.Marshal(inst)
	if err != nil {
		return nil, &ConstructionError{Model: def.Name, Reason: err.Error()}
	}
	dec := json.NewDecoder(bytes.NewReader(out))
	dec.UseNumber()
	var canonical map[string]any
	if err := dec.Decode(&canonical); err != nil {
		return nil, &ConstructionError{Model: def.Name, Reason: err.Error()}
	}
	return canonical, nil
}
