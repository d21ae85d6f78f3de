package transactions_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tejabhargav/xrpl-py/model"
	"github.com/tejabhargav/xrpl-py/model/transactions"
)

func TestPayment_Build(t *testing.T) {
	t.Parallel()
	out, err := model.Build(model.Def(transactions.Payment{}, ""), map[string]any{
		"Account":     "rN7n7otQDd6FczFgLdSqtcsAUxDkw6fzRH",
		"Destination": "rLNaPoKeeBjZe2qs6x4yB07ZmRBCmPXb6u",
		"Amount":      "1000000",
	})
	require.NoError(t, err)
	assert.Equal(t, "Payment", out["TransactionType"])
	assert.Equal(t, "1000000", out["Amount"])
	_, has := out["Fee"]
	assert.False(t, has, "unset optional fields stay absent")
}

func TestPayment_BuildRejectsBadAddress(t *testing.T) {
	t.Parallel()
	_, err := model.Build(model.Def(transactions.Payment{}, ""), map[string]any{
		"Account":     "not-an-address",
		"Destination": "rLNaPoKeeBjZe2qs6x4yB07ZmRBCmPXb6u",
		"Amount":      "1000000",
	})
	var cErr *model.ConstructionError
	require.ErrorAs(t, err, &cErr)
	assert.Equal(t, "Payment", cErr.Model)
}

func TestPayment_BuildIssuedAmount(t *testing.T) {
	t.Parallel()
	out, err := model.Build(model.Def(transactions.Payment{}, ""), map[string]any{
		"Account":     "rN7n7otQDd6FczFgLdSqtcsAUxDkw6fzRH",
		"Destination": "rLNaPoKeeBjZe2qs6x4yB07ZmRBCmPXb6u",
		"Amount": map[string]any{
			"Currency": "USD",
			"Issuer":   "rvYAfWj5gh67oV6fW32ZzP3Aw4Eubs59B",
			"Value":    "250",
		},
	})
	require.NoError(t, err)
	amount, ok := out["Amount"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "USD", amount["Currency"])
	assert.Equal(t, "250", amount["Value"])
}

func TestAccountSet_FlagConflict(t *testing.T) {
	t.Parallel()
	_, err := model.Build(model.Def(transactions.AccountSet{}, ""), map[string]any{
		"Account":   "rN7n7otQDd6FczFgLdSqtcsAUxDkw6fzRH",
		"SetFlag":   5,
		"ClearFlag": 5,
	})
	var cErr *model.ConstructionError
	require.ErrorAs(t, err, &cErr)
	assert.Contains(t, cErr.Reason, "set_flag and clear_flag must differ")

	out, err := model.Build(model.Def(transactions.AccountSet{}, ""), map[string]any{
		"Account":   "rN7n7otQDd6FczFgLdSqtcsAUxDkw6fzRH",
		"SetFlag":   5,
		"ClearFlag": 6,
	})
	require.NoError(t, err)
	assert.Equal(t, json.Number("5"), out["SetFlag"])
}

func TestEscrowCreate_NeedsTrigger(t *testing.T) {
	t.Parallel()
	base := map[string]any{
		"Account":     "rN7n7otQDd6FczFgLdSqtcsAUxDkw6fzRH",
		"Destination": "rLNaPoKeeBjZe2qs6x4yB07ZmRBCmPXb6u",
		"Amount":      "5000000",
	}
	_, err := model.Build(model.Def(transactions.EscrowCreate{}, ""), base)
	var cErr *model.ConstructionError
	require.ErrorAs(t, err, &cErr)
	assert.Contains(t, cErr.Reason, "cancel_after")

	withTrigger := map[string]any{}
	for k, v := range base {
		withTrigger[k] = v
	}
	withTrigger["FinishAfter"] = 760000000
	out, err := model.Build(model.Def(transactions.EscrowCreate{}, ""), withTrigger)
	require.NoError(t, err)
	assert.Equal(t, "EscrowCreate", out["TransactionType"])
}

func TestAMMCreate_Build(t *testing.T) {
	t.Parallel()
	out, err := model.Build(model.Def(transactions.AMMCreate{}, ""), map[string]any{
		"Account": "rN7n7otQDd6FczFgLdSqtcsAUxDkw6fzRH",
		"Amount":  "10000000",
		"Amount2": map[string]any{
			"Currency": "USD",
			"Issuer":   "rvYAfWj5gh67oV6fW32ZzP3Aw4Eubs59B",
			"Value":    "25",
		},
		"TradingFee": 500,
	})
	require.NoError(t, err)
	assert.Equal(t, "AMMCreate", out["TransactionType"])
	assert.Equal(t, "10000000", out["Amount"])

	_, err = model.Build(model.Def(transactions.AMMCreate{}, ""), map[string]any{
		"Account":    "rN7n7otQDd6FczFgLdSqtcsAUxDkw6fzRH",
		"Amount":     "10000000",
		"Amount2":    "20000000",
		"TradingFee": 1500,
	})
	var cErr *model.ConstructionError
	require.ErrorAs(t, err, &cErr)
}

func TestAMMDeposit_NeedsATarget(t *testing.T) {
	t.Parallel()
	base := map[string]any{
		"Account": "rN7n7otQDd6FczFgLdSqtcsAUxDkw6fzRH",
		"Asset":   map[string]any{"Currency": "XRP"},
		"Asset2": map[string]any{
			"Currency": "USD",
			"Issuer":   "rvYAfWj5gh67oV6fW32ZzP3Aw4Eubs59B",
		},
	}
	_, err := model.Build(model.Def(transactions.AMMDeposit{}, ""), base)
	var cErr *model.ConstructionError
	require.ErrorAs(t, err, &cErr)
	assert.Contains(t, cErr.Reason, "lp_token_out")

	withAmount := map[string]any{}
	for k, v := range base {
		withAmount[k] = v
	}
	withAmount["Amount"] = "5000000"
	out, err := model.Build(model.Def(transactions.AMMDeposit{}, ""), withAmount)
	require.NoError(t, err)
	assert.Equal(t, "AMMDeposit", out["TransactionType"])
	assert.Equal(t, "5000000", out["Amount"])
}

func TestTransactionTypes_SetAutomatically(t *testing.T) {
	t.Parallel()
	cases := []struct {
		def    model.Definition
		fields map[string]any
		want   string
	}{
		{
			model.Def(transactions.OfferCancel{}, ""),
			map[string]any{"Account": "rN7n7otQDd6FczFgLdSqtcsAUxDkw6fzRH", "OfferSequence": 7},
			"OfferCancel",
		},
		{
			model.Def(transactions.NFTokenBurn{}, ""),
			map[string]any{
				"Account":   "rN7n7otQDd6FczFgLdSqtcsAUxDkw6fzRH",
				"NFTokenID": "000B013A95F14B0044F78A264E41713C64B5F89242540EE208C3098E00000D65",
			},
			"NFTokenBurn",
		},
	}
	for _, tc := range cases {
		out, err := model.Build(tc.def, tc.fields)
		require.NoError(t, err, tc.want)
		assert.Equal(t, tc.want, out["TransactionType"])
	}
}

func TestPaymentFlag_IsNotAModel(t *testing.T) {
	t.Parallel()
	def := model.Def(transactions.PaymentFlag(0), "")
	assert.True(t, model.IsFlag(def))
	values := transactions.PaymentFlag(0).FlagValues()
	assert.Equal(t, uint32(0x00020000), values["tfPartialPayment"])
}
