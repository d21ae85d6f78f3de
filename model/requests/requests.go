// Package requests defines the XRPL query models the engine synthesizes
// tools from. Requests only describe what to ask a server; issuing them is
// the transport's business.
package requests

import (
	"errors"

	"github.com/tejabhargav/xrpl-py/model"
	"github.com/tejabhargav/xrpl-py/model/currencies"
)

// AccountInfo asks for the current state of an account.
type AccountInfo struct {
	Account     string  `json:"Account" validate:"required,startswith=r" description:"Address to look up"`
	LedgerIndex *string `json:"LedgerIndex,omitempty" description:"Ledger to use: an index, validated, closed, or current"`
	Queue       *bool   `json:"Queue,omitempty" description:"Include queued transactions"`
	SignerLists *bool   `json:"SignerLists,omitempty" description:"Include signer lists"`
}

// AccountLines asks for an account's trust lines.
type AccountLines struct {
	Account     string  `json:"Account" validate:"required,startswith=r" description:"Address to look up"`
	Peer        *string `json:"Peer,omitempty" validate:"omitempty,startswith=r" description:"Only lines shared with this address"`
	LedgerIndex *string `json:"LedgerIndex,omitempty" description:"Ledger to use"`
	Limit       *uint32 `json:"Limit,omitempty" validate:"omitempty,gte=10,lte=400" description:"Maximum number of lines to return"`
	Marker      any     `json:"Marker,omitempty" description:"Server-defined pagination marker from a previous response"`
}

// AccountObjects asks for the raw ledger objects owned by an account.
type AccountObjects struct {
	Account string  `json:"Account" validate:"required,startswith=r" description:"Address to look up"`
	Type    *string `json:"Type,omitempty" enum:"check,deposit_preauth,escrow,nft_offer,offer,payment_channel,signer_list,state,ticket" description:"Only objects of this ledger entry type"`
	Limit   *uint32 `json:"Limit,omitempty" validate:"omitempty,gte=10,lte=400" description:"Maximum number of objects to return"`
	Marker  any     `json:"Marker,omitempty" description:"Server-defined pagination marker from a previous response"`
}

// AccountTx asks for transactions that affected an account.
type AccountTx struct {
	Account        string  `json:"Account" validate:"required,startswith=r" description:"Address to look up"`
	LedgerIndexMin *int32  `json:"LedgerIndexMin,omitempty" description:"Earliest ledger to include; -1 for the oldest available"`
	LedgerIndexMax *int32  `json:"LedgerIndexMax,omitempty" description:"Latest ledger to include; -1 for the newest available"`
	Binary         *bool   `json:"Binary,omitempty" description:"Return transactions in binary format"`
	Forward        *bool   `json:"Forward,omitempty" description:"Oldest ledger first"`
	Limit          *uint32 `json:"Limit,omitempty" description:"Maximum number of transactions to return"`
}

// Tx asks for one transaction by hash.
type Tx struct {
	Transaction string `json:"Transaction" validate:"required,len=64,hexadecimal" description:"256-bit transaction hash"`
	Binary      *bool  `json:"Binary,omitempty" description:"Return the transaction in binary format"`
}

// Ledger asks for a ledger header and optionally its contents.
type Ledger struct {
	LedgerIndex  *string `json:"LedgerIndex,omitempty" description:"Ledger to use: an index, validated, closed, or current"`
	LedgerHash   *string `json:"LedgerHash,omitempty" validate:"omitempty,len=64,hexadecimal" description:"256-bit ledger hash"`
	Transactions *bool   `json:"Transactions,omitempty" description:"Include the ledger's transaction hashes"`
	Expand       *bool   `json:"Expand,omitempty" description:"Expand transactions into full objects"`
}

// BookOffers asks for the order book between two currencies.
type BookOffers struct {
	TakerGets currencies.Currency `json:"TakerGets" validate:"required" description:"Currency the taker receives"`
	TakerPays currencies.Currency `json:"TakerPays" validate:"required" description:"Currency the taker pays"`
	Taker     *string             `json:"Taker,omitempty" validate:"omitempty,startswith=r" description:"Perspective account for unfunded offers"`
	Limit     *uint32             `json:"Limit,omitempty" description:"Maximum number of offers to return"`
}

// Subscribe asks the server to push updates for streams or accounts.
type Subscribe struct {
	Streams  []string `json:"Streams,omitempty" enum:"consensus,ledger,manifests,peer_status,transactions,transactions_proposed,validations" description:"Server streams to subscribe to"`
	Accounts []string `json:"Accounts,omitempty" description:"Addresses whose transactions to push"`
}

// Validate requires something to subscribe to.
func (s Subscribe) Validate() error {
	if len(s.Streams) == 0 && len(s.Accounts) == 0 {
		return errors.New("subscribe needs streams or accounts")
	}
	return nil
}

// Fee asks for the current transaction cost. It declares no parameters, so
// the extractor yields no schema; the registry logs it and moves on.
type Fee struct{}

// ServerInfo asks for the server's human-readable status. Parameterless,
// skipped like Fee.
type ServerInfo struct{}

// Module returns the request definitions scanned at registry build.
func Module() model.Module {
	return model.Module{
		Category: "request",
		Definitions: []model.Definition{
			model.Def(AccountInfo{}, "Retrieves information about an account."),
			model.Def(AccountLines{}, "Retrieves an account's trust lines."),
			model.Def(AccountObjects{}, "Retrieves the raw ledger objects owned by an account."),
			model.Def(AccountTx{}, "Retrieves transactions that affected an account."),
			model.Def(Tx{}, "Retrieves one transaction by hash."),
			model.Def(Ledger{}, "Retrieves a ledger header and optionally its contents."),
			model.Def(BookOffers{}, "Retrieves the order book between two currencies."),
			model.Def(Subscribe{}, "Subscribes to server streams or account updates."),
			model.Def(Fee{}, "Retrieves the current transaction cost."),
			model.Def(ServerInfo{}, "Retrieves the server's status."),
		},
	}
}
