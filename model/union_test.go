package model_test

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tejabhargav/xrpl-py/model"
	"github.com/tejabhargav/xrpl-py/model/amounts"
)

type notAUnion struct{}

func TestUnionCandidates_RegisteredType(t *testing.T) {
	t.Parallel()
	candidates := model.UnionCandidates(reflect.TypeOf(amounts.Amount{}))
	require.Len(t, candidates, 3)
	assert.Equal(t, "drops string", candidates[0].Name)
	assert.Equal(t, "string", candidates[0].Primitive)
	assert.Equal(t, "IssuedCurrencyAmount", candidates[1].Name)
	require.NotNil(t, candidates[1].Type)
}

func TestUnionCandidates_UnregisteredType(t *testing.T) {
	t.Parallel()
	assert.Empty(t, model.UnionCandidates(reflect.TypeOf(notAUnion{})))
	assert.Empty(t, model.UnionCandidates(reflect.TypeOf("")))
}
