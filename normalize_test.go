package xrpltools

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeKey(t *testing.T) {
	t.Parallel()
	cases := map[string]string{
		"account":          "Account",
		"destination_tag":  "DestinationTag",
		"nftoken_id":       "NFTokenID",
		"nftoken_taxon":    "NFTokenTaxon",
		"uri":              "URI",
		"xchain_bridge":    "XChainBridge",
		"amm_account":      "AMMAccount",
		"lp_token_out":     "LPTokenOut",
		"mpt_issuance_id":  "MPTIssuanceID",
		"unl_modify":       "UNLModify",
		"taker_gets":       "TakerGets",
		"last_ledger_sequence": "LastLedgerSequence",
		// already canonical keys pass through
		"Account":        "Account",
		"DestinationTag": "DestinationTag",
		"NFTokenID":      "NFTokenID",
	}
	for in, want := range cases {
		assert.Equal(t, want, NormalizeKey(in), "key %q", in)
	}
}

func TestNormalizeKey_RoundTripStable(t *testing.T) {
	t.Parallel()
	// Normalizing an already-normalized key is a no-op.
	for _, key := range []string{"account", "nftoken_id", "limit_amount", "xchain_claim_id"} {
		once := NormalizeKey(key)
		assert.Equal(t, once, NormalizeKey(once))
	}
}

func TestNormalizeCurrencyCode(t *testing.T) {
	t.Parallel()
	// Standard three-character codes and XRP pass through unchanged.
	assert.Equal(t, "USD", NormalizeCurrencyCode("USD"))
	assert.Equal(t, "XRP", NormalizeCurrencyCode("XRP"))
	assert.Equal(t, "EUR", NormalizeCurrencyCode("EUR"))

	// Longer codes become uppercase hex, zero-padded to 40 characters.
	want := "5553444300000000000000000000000000000000"
	assert.Equal(t, want, NormalizeCurrencyCode("USDC"))
	assert.Len(t, NormalizeCurrencyCode("SOLO"), 40)
}

func TestNormalizeCurrencyCode_Idempotent(t *testing.T) {
	t.Parallel()
	once := NormalizeCurrencyCode("USDC")
	assert.Equal(t, once, NormalizeCurrencyCode(once))

	// A hand-written 40-character hex code is already canonical.
	hex := "524C555344000000000000000000000000000000"
	assert.Equal(t, hex, NormalizeCurrencyCode(hex))
}

func TestNormalizeFields_AmountsStayStrings(t *testing.T) {
	t.Parallel()
	out := NormalizeFields(map[string]any{
		"amount":   "1000000",
		"send_max": json.Number("2500000"),
		"fee":      float64(12),
	})
	assert.Equal(t, "1000000", out["Amount"])
	assert.Equal(t, "2500000", out["SendMax"])
	assert.Equal(t, "12", out["Fee"])
}

func TestNormalizeFields_NestedObjects(t *testing.T) {
	t.Parallel()
	out := NormalizeFields(map[string]any{
		"taker_gets": map[string]any{
			"currency": "USDC",
			"issuer":   "rIssuer",
			"value":    json.Number("100.5"),
		},
	})
	gets, ok := out["TakerGets"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "5553444300000000000000000000000000000000", gets["Currency"])
	assert.Equal(t, "rIssuer", gets["Issuer"])
	assert.Equal(t, "100.5", gets["Value"])
}

func TestNormalizeFields_Sequences(t *testing.T) {
	t.Parallel()
	out := NormalizeFields(map[string]any{
		"paths": []any{
			[]any{map[string]any{"currency": "USDC", "issuer": "rGateway"}},
		},
		"streams": []any{"ledger", "transactions"},
	})
	paths, ok := out["Paths"].([]any)
	require.True(t, ok)
	inner, ok := paths[0].([]any)
	require.True(t, ok)
	step, ok := inner[0].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "5553444300000000000000000000000000000000", step["Currency"])

	assert.Equal(t, []any{"ledger", "transactions"}, out["Streams"])
}

func TestNormalizeFields_LimitIsNotAnAmount(t *testing.T) {
	t.Parallel()
	// Pagination limits stay numeric; only trust-line limit amounts are
	// treated as amount values.
	out := NormalizeFields(map[string]any{
		"limit":        json.Number("20"),
		"limit_amount": map[string]any{"currency": "USD", "issuer": "rI", "value": json.Number("100")},
	})
	assert.Equal(t, json.Number("20"), out["Limit"])
	amt, ok := out["LimitAmount"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "100", amt["Value"])
}

func TestNormalizeValue_NonCurrencyStringsUntouched(t *testing.T) {
	t.Parallel()
	out := NormalizeFields(map[string]any{
		"account":     "rN7n7otQDd6FczFgLdSqtcsAUxDkw6fzRH",
		"destination": "rLNaPoKeeBjZe2qs6x4yB07ZmRBCmPXb6u",
		"domain":      "example.com",
	})
	assert.Equal(t, "rN7n7otQDd6FczFgLdSqtcsAUxDkw6fzRH", out["Account"])
	assert.Equal(t, "example.com", out["Domain"])
}
