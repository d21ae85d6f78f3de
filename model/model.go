// Package model is the domain-model library the synthesis engine reflects
// over. Each submodule (transactions, requests, amounts, currencies, common)
// exposes a Module: an ordered list of struct-backed definitions with
// inspectable field metadata. The engine never constructs instances directly;
// it goes through Build, which owns validation and the canonical external
// representation.
package model

import (
	"reflect"
	"strings"
)

// Definition describes one domain entity: its public name and the struct type
// carrying its field metadata. Definitions are immutable; the engine treats
// them as read-only inputs.
type Definition struct {
	Name string
	Type reflect.Type
	Doc  string
}

// Def builds a Definition from a zero-value instance. The name is the struct
// type's name; doc is a one-line human description used in tool descriptions.
func Def(instance any, doc string) Definition {
	t := reflect.TypeOf(instance)
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return Definition{Name: t.Name(), Type: t, Doc: doc}
}

// Module is a named group of definitions sharing one tool category.
// Definitions keep declaration order; the registry synthesizes tools in
// exactly this order.
type Module struct {
	Category    string
	Definitions []Definition
}

// Flag marks enum/bitmask helper types that live alongside models but must
// never become tools. The registry skips any definition whose type implements
// Flag.
type Flag interface {
	FlagValues() map[string]uint32
}

// Validatable is implemented by models that need cross-field checks beyond
// struct tags. Build calls Validate after tag validation.
type Validatable interface {
	Validate() error
}

// Defaulter is implemented by models with optional fields that carry a fixed
// default (e.g. XRP's currency code). Build calls SetDefaults before
// validation.
type Defaulter interface {
	SetDefaults()
}

// IsFlag reports whether the definition is a non-model flag type.
func IsFlag(d Definition) bool {
	if d.Type == nil {
		return true
	}
	return reflect.PointerTo(d.Type).Implements(flagType) || d.Type.Implements(flagType)
}

var flagType = reflect.TypeOf((*Flag)(nil)).Elem()

// FieldName returns the canonical external name of a struct field: the json
// tag if present, otherwise the Go field name. Returns "" for fields excluded
// from the external shape (json:"-" or unexported).
func FieldName(f reflect.StructField) string {
	if !f.IsExported() {
		return ""
	}
	tag := strings.Split(f.Tag.Get("json"), ",")[0]
	if tag == "-" {
		return ""
	}
	if tag == "" {
		return f.Name
	}
	return tag
}

// ValidCurrencyCode reports whether a currency code is in one of the two
// canonical widths: exactly 3 characters, or 40 hexadecimal characters.
func ValidCurrencyCode(code string) bool {
	if len(code) == 3 {
		return true
	}
	if len(code) != 40 {
		return false
	}
	for i := 0; i < len(code); i++ {
		c := code[i]
		switch {
		case c >= '0' && c <= '9':
		case c >= 'A' && c <= 'F':
		case c >= 'a' && c <= 'f':
		default:
			return false
		}
	}
	return true
}

// FieldOptional reports whether a struct field is optional: pointer-typed, or
// tagged with ",omitempty". Everything else is required.
func FieldOptional(f reflect.StructField) bool {
	if f.Type.Kind() == reflect.Pointer {
		return true
	}
	for _, opt := range strings.Split(f.Tag.Get("json"), ",")[1:] {
		if opt == "omitempty" || opt == "omitzero" {
			return true
		}
	}
	return false
}
