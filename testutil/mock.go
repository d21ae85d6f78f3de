// Package testutil provides model fixtures for engine tests: a small
// well-formed model, an empty model, and a flag type.
package testutil

import (
	"github.com/tejabhargav/xrpl-py/model"
)

// Sample is a minimal well-formed model: one required field, one optional,
// one enum-constrained.
type Sample struct {
	Account string  `json:"Account" validate:"required" description:"Required account field"`
	Note    *string `json:"Note,omitempty" description:"Optional free text"`
	Mode    *string `json:"Mode,omitempty" enum:"fast,slow" description:"Optional mode"`
}

// Empty declares no fields at all; extraction must fail with a schema error.
type Empty struct{}

// Marker is a flag type the registry must skip.
type Marker uint32

// FlagValues marks Marker as a non-model flag type.
func (Marker) FlagValues() map[string]uint32 {
	return map[string]uint32{"tfMarker": 1}
}

// Module wraps definitions in a module with the given category.
func Module(category string, defs ...model.Definition) model.Module {
	return model.Module{Category: category, Definitions: defs}
}
