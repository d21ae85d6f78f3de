package model

import (
	"reflect"
	"sync"
)

// UnionCandidate is one admissible shape of a union-typed field, tried in
// registration order (left to right, first match wins).
type UnionCandidate struct {
	// Name is a short label for descriptions ("drops string", "IssuedCurrencyAmount").
	Name string
	// Primitive is the JSON type when the candidate is scalar ("string",
	// "number", "boolean"); empty for nested models.
	Primitive string
	// Type is the nested model struct type; nil for scalar candidates.
	Type reflect.Type
}

var (
	unionsMu sync.RWMutex
	unions   = make(map[reflect.Type][]UnionCandidate)
)

// RegisterUnion declares the candidate shapes of a union type. emptyInstance
// is a zero value of the union wrapper (e.g. amounts.Amount{}). Call from the
// owning package's init so candidates are visible before any registry build.
func RegisterUnion(emptyInstance any, candidates ...UnionCandidate) {
	if emptyInstance == nil {
		panic("model: RegisterUnion emptyInstance must not be nil")
	}
	if len(candidates) == 0 {
		panic("model: RegisterUnion needs at least one candidate")
	}
	t := reflect.TypeOf(emptyInstance)
	unionsMu.Lock()
	defer unionsMu.Unlock()
	unions[t] = append([]UnionCandidate(nil), candidates...)
}

// UnionCandidates returns the registered candidates for t in preference
// order, or nil when t is not a union.
func UnionCandidates(t reflect.Type) []UnionCandidate {
	unionsMu.RLock()
	defer unionsMu.RUnlock()
	c, ok := unions[t]
	if !ok {
		return nil
	}
	return append([]UnionCandidate(nil), c...)
}
