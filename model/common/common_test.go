package common_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tejabhargav/xrpl-py/model"
	"github.com/tejabhargav/xrpl-py/model/common"
)

func TestPathStep_Exclusivity(t *testing.T) {
	t.Parallel()
	_, err := model.Build(model.Def(common.PathStep{}, ""), map[string]any{})
	var cErr *model.ConstructionError
	require.ErrorAs(t, err, &cErr)

	_, err = model.Build(model.Def(common.PathStep{}, ""), map[string]any{
		"Account":  "rN7n7otQDd6FczFgLdSqtcsAUxDkw6fzRH",
		"Currency": "USD",
	})
	require.ErrorAs(t, err, &cErr)
	assert.Contains(t, cErr.Reason, "exclusive")

	out, err := model.Build(model.Def(common.PathStep{}, ""), map[string]any{
		"Currency": "USD",
		"Issuer":   "rvYAfWj5gh67oV6fW32ZzP3Aw4Eubs59B",
	})
	require.NoError(t, err)
	assert.Equal(t, "USD", out["Currency"])
}

func TestMemo_NeedsContent(t *testing.T) {
	t.Parallel()
	_, err := model.Build(model.Def(common.Memo{}, ""), map[string]any{})
	var cErr *model.ConstructionError
	require.ErrorAs(t, err, &cErr)

	out, err := model.Build(model.Def(common.Memo{}, ""), map[string]any{
		"MemoData": "72656e74",
	})
	require.NoError(t, err)
	assert.Equal(t, "72656e74", out["MemoData"])
}

func TestSigner_RequiresAllFields(t *testing.T) {
	t.Parallel()
	_, err := model.Build(model.Def(common.Signer{}, ""), map[string]any{
		"Account": "rN7n7otQDd6FczFgLdSqtcsAUxDkw6fzRH",
	})
	var cErr *model.ConstructionError
	require.ErrorAs(t, err, &cErr)
}

func TestXChainBridge_Build(t *testing.T) {
	t.Parallel()
	out, err := model.Build(model.Def(common.XChainBridge{}, ""), map[string]any{
		"LockingChainDoor":  "rN7n7otQDd6FczFgLdSqtcsAUxDkw6fzRH",
		"LockingChainIssue": map[string]any{"Currency": "XRP"},
		"IssuingChainDoor":  "rLNaPoKeeBjZe2qs6x4yB07ZmRBCmPXb6u",
		"IssuingChainIssue": map[string]any{"Currency": "XRP"},
	})
	require.NoError(t, err)
	issue, ok := out["LockingChainIssue"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "XRP", issue["Currency"])
}
