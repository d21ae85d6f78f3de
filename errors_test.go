package xrpltools

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorSentinels(t *testing.T) {
	t.Parallel()
	cases := []struct {
		err      error
		sentinel error
	}{
		{&SchemaError{Model: "M", Reason: "no fields"}, ErrSchema},
		{&ConflictError{Name: "a_b", Models: []string{"B", "B"}}, ErrConflict},
		{&UnknownToolError{Name: "missing"}, ErrUnknownTool},
		{&ValidationError{Tool: "a_b", Missing: []string{"X"}}, ErrValidation},
		{&EnumViolationError{Tool: "a_b"}, ErrValidation},
		{&ModelConstructionError{Tool: "a_b", Reason: "bad address"}, ErrValidation},
	}
	for _, tc := range cases {
		assert.ErrorIs(t, tc.err, tc.sentinel, "%T", tc.err)
		assert.NotEmpty(t, tc.err.Error())
	}
}

func TestErrorMessages(t *testing.T) {
	t.Parallel()
	err := &ValidationError{Tool: "transaction_payment", Missing: []string{"Amount", "Destination"}}
	assert.Contains(t, err.Error(), "transaction_payment")
	assert.Contains(t, err.Error(), "Amount")
	assert.Contains(t, err.Error(), "Destination")

	uErr := &UnknownToolError{Name: "nope", Available: []string{"transaction_payment"}}
	assert.Contains(t, uErr.Error(), "nope")
}

func TestIsDiagnostic(t *testing.T) {
	t.Parallel()
	assert.True(t, IsDiagnostic(&UnknownToolError{Name: "x"}))
	assert.True(t, IsDiagnostic(&ValidationError{Tool: "x"}))
	assert.True(t, IsDiagnostic(&EnumViolationError{Tool: "x"}))
	assert.True(t, IsDiagnostic(&ModelConstructionError{Tool: "x"}))

	assert.False(t, IsDiagnostic(&SchemaError{Model: "x"}))
	assert.False(t, IsDiagnostic(&ConflictError{Name: "x"}))
	assert.False(t, IsDiagnostic(errors.New("boom")))
}
