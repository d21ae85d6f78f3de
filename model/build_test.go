package model_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tejabhargav/xrpl-py/model"
)

type widget struct {
	Name  string `json:"Name" validate:"required"`
	Kind  string `json:"Kind,omitempty" validate:"omitempty,oneof=plain fancy"`
	Count uint32 `json:"Count,omitempty"`
}

func (w *widget) SetDefaults() {
	if w.Kind == "" {
		w.Kind = "plain"
	}
}

type guarded struct {
	Low  uint32 `json:"Low,omitempty"`
	High uint32 `json:"High,omitempty"`
	Name string `json:"Name" validate:"required"`
}

func (g guarded) Validate() error {
	if g.High != 0 && g.High < g.Low {
		return errors.New("high must not be below low")
	}
	return nil
}

func TestBuild_AppliesDefaults(t *testing.T) {
	t.Parallel()
	out, err := model.Build(model.Def(widget{}, ""), map[string]any{"Name": "w1"})
	require.NoError(t, err)
	assert.Equal(t, "w1", out["Name"])
	assert.Equal(t, "plain", out["Kind"])
	_, hasCount := out["Count"]
	assert.False(t, hasCount, "zero optional fields are omitted")
}

func TestBuild_DropsUnknownFields(t *testing.T) {
	t.Parallel()
	out, err := model.Build(model.Def(widget{}, ""), map[string]any{
		"Name":    "w1",
		"Unknown": "dropped",
	})
	require.NoError(t, err)
	_, has := out["Unknown"]
	assert.False(t, has)
}

func TestBuild_TagValidation(t *testing.T) {
	t.Parallel()
	_, err := model.Build(model.Def(widget{}, ""), map[string]any{"Name": "w1", "Kind": "bizarre"})
	var cErr *model.ConstructionError
	require.ErrorAs(t, err, &cErr)
	assert.Equal(t, "widget", cErr.Model)
	assert.NotEmpty(t, cErr.Reason)

	_, err = model.Build(model.Def(widget{}, ""), map[string]any{})
	require.ErrorAs(t, err, &cErr)
}

func TestBuild_ModelValidate(t *testing.T) {
	t.Parallel()
	_, err := model.Build(model.Def(guarded{}, ""), map[string]any{
		"Name": "g", "Low": 10, "High": 3,
	})
	var cErr *model.ConstructionError
	require.ErrorAs(t, err, &cErr)
	assert.Contains(t, cErr.Reason, "high must not be below low")

	out, err := model.Build(model.Def(guarded{}, ""), map[string]any{
		"Name": "g", "Low": 3, "High": 10,
	})
	require.NoError(t, err)
	assert.Equal(t, json.Number("10"), out["High"])
}

func TestBuild_DoesNotMutateInput(t *testing.T) {
	t.Parallel()
	in := map[string]any{"Name": "w1", "Extra": true}
	_, err := model.Build(model.Def(widget{}, ""), in)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"Name": "w1", "Extra": true}, in)
}

func TestDef_CapturesTypeAndDoc(t *testing.T) {
	t.Parallel()
	def := model.Def(widget{}, "A widget.")
	assert.Equal(t, "widget", def.Name)
	assert.Equal(t, "A widget.", def.Doc)
	require.NotNil(t, def.Type)
	assert.Equal(t, "widget", def.Type.Name())
}
