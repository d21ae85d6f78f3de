// Package catalog fixes the list of model-bearing modules scanned at
// registry build. The order here is the order tools are registered and
// listed in.
package catalog

import (
	"github.com/tejabhargav/xrpl-py/model"
	"github.com/tejabhargav/xrpl-py/model/amounts"
	"github.com/tejabhargav/xrpl-py/model/common"
	"github.com/tejabhargav/xrpl-py/model/currencies"
	"github.com/tejabhargav/xrpl-py/model/requests"
	"github.com/tejabhargav/xrpl-py/model/transactions"
)

// Modules returns the fixed module list: transactions, requests, amounts,
// currencies, common.
func Modules() []model.Module {
	return []model.Module{
		transactions.Module(),
		requests.Module(),
		amounts.Module(),
		currencies.Module(),
		common.Module(),
	}
}
