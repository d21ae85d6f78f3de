package currencies_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tejabhargav/xrpl-py/model"
	"github.com/tejabhargav/xrpl-py/model/currencies"
)

func TestCurrency_UnmarshalXRP(t *testing.T) {
	t.Parallel()
	var c currencies.Currency
	require.NoError(t, json.Unmarshal([]byte(`{"Currency":"XRP"}`), &c))
	_, ok := c.Value().(currencies.XRP)
	assert.True(t, ok)
}

func TestCurrency_UnmarshalIssued(t *testing.T) {
	t.Parallel()
	var c currencies.Currency
	raw := `{"Currency":"USD","Issuer":"rvYAfWj5gh67oV6fW32ZzP3Aw4Eubs59B"}`
	require.NoError(t, json.Unmarshal([]byte(raw), &c))

	issued, ok := c.Value().(currencies.IssuedCurrency)
	require.True(t, ok)
	assert.Equal(t, "USD", issued.Currency)
}

func TestCurrency_UnmarshalMPT(t *testing.T) {
	t.Parallel()
	var c currencies.Currency
	raw := `{"MPTIssuanceID":"00002403C84A0A28E0190E208E982C352BBD5006600555CF"}`
	require.NoError(t, json.Unmarshal([]byte(raw), &c))
	_, ok := c.Value().(currencies.MPTCurrency)
	assert.True(t, ok)
}

func TestCurrency_UnmarshalRejectsAmbiguity(t *testing.T) {
	t.Parallel()
	var c currencies.Currency
	// An issued currency without an issuer matches no candidate.
	assert.Error(t, json.Unmarshal([]byte(`{"Currency":"USD"}`), &c))
	assert.Error(t, json.Unmarshal([]byte(`{}`), &c))
}

func TestIssuedCurrency_RejectsMalformedCodes(t *testing.T) {
	t.Parallel()
	var c currencies.Currency
	raw := `{"Currency":"AB","Issuer":"rvYAfWj5gh67oV6fW32ZzP3Aw4Eubs59B"}`
	assert.Error(t, json.Unmarshal([]byte(raw), &c))

	_, err := model.Build(model.Def(currencies.IssuedCurrency{}, ""), map[string]any{
		"Currency": "AB",
		"Issuer":   "rvYAfWj5gh67oV6fW32ZzP3Aw4Eubs59B",
	})
	var cErr *model.ConstructionError
	require.ErrorAs(t, err, &cErr)
	assert.Contains(t, cErr.Reason, "currency code")
}

func TestXRP_DefaultsThroughBuild(t *testing.T) {
	t.Parallel()
	out, err := model.Build(model.Def(currencies.XRP{}, ""), map[string]any{})
	require.NoError(t, err)
	assert.Equal(t, "XRP", out["Currency"])

	_, err = model.Build(model.Def(currencies.XRP{}, ""), map[string]any{"Currency": "BTC"})
	var cErr *model.ConstructionError
	require.ErrorAs(t, err, &cErr)
}

func TestModule_Definitions(t *testing.T) {
	t.Parallel()
	mod := currencies.Module()
	assert.Equal(t, "currency", mod.Category)
	require.Len(t, mod.Definitions, 3)
	assert.Equal(t, "XRP", mod.Definitions[0].Name)
}
