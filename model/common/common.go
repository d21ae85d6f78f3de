// Package common defines XRPL models shared across transactions and requests:
// payment paths, memos, signers, multisign auth accounts, and cross-chain
// bridge descriptors.
package common

import (
	"errors"

	"github.com/tejabhargav/xrpl-py/model"
	"github.com/tejabhargav/xrpl-py/model/currencies"
)

// AuthAccount is one account authorized to trade in an AMM auction slot.
type AuthAccount struct {
	Account string `json:"Account" validate:"required,startswith=r" description:"Address of the authorized account"`
}

// PathStep is one hop in a cross-currency payment path. A step specifies
// either an account to ripple through, or a currency/issuer to convert into,
// never both.
type PathStep struct {
	Account  *string `json:"Account,omitempty" validate:"omitempty,startswith=r" description:"Account to ripple through"`
	Currency *string `json:"Currency,omitempty" description:"Currency code to convert to"`
	Issuer   *string `json:"Issuer,omitempty" validate:"omitempty,startswith=r" description:"Issuer of the currency to convert to"`
}

// Validate enforces the account-or-conversion exclusivity rule.
func (p PathStep) Validate() error {
	if p.Account == nil && p.Currency == nil && p.Issuer == nil {
		return errors.New("path step must set account, currency, or issuer")
	}
	if p.Account != nil && (p.Currency != nil || p.Issuer != nil) {
		return errors.New("path step account is exclusive with currency and issuer")
	}
	return nil
}

// Path is an ordered chain of path steps.
type Path []PathStep

// Memo is arbitrary hex-encoded metadata attached to a transaction.
type Memo struct {
	MemoData   *string `json:"MemoData,omitempty" validate:"omitempty,hexadecimal" description:"Hex-encoded memo content"`
	MemoFormat *string `json:"MemoFormat,omitempty" validate:"omitempty,hexadecimal" description:"Hex-encoded format, usually a MIME type"`
	MemoType   *string `json:"MemoType,omitempty" validate:"omitempty,hexadecimal" description:"Hex-encoded type, usually an RFC 5988 relation"`
}

// Validate requires at least one populated field.
func (m Memo) Validate() error {
	if m.MemoData == nil && m.MemoFormat == nil && m.MemoType == nil {
		return errors.New("memo must set at least one of memo_data, memo_format, memo_type")
	}
	return nil
}

// Signer is one signature in a multisigned transaction.
type Signer struct {
	Account       string `json:"Account" validate:"required,startswith=r" description:"Address associated with the signature"`
	TxnSignature  string `json:"TxnSignature" validate:"required,hexadecimal" description:"Signature over the transaction"`
	SigningPubKey string `json:"SigningPubKey" validate:"required,hexadecimal" description:"Public key used to make the signature"`
}

// XChainBridge identifies a cross-chain bridge by its door accounts and the
// assets moved on each chain.
type XChainBridge struct {
	LockingChainDoor  string              `json:"LockingChainDoor" validate:"required,startswith=r" description:"Door account on the locking chain"`
	LockingChainIssue currencies.Currency `json:"LockingChainIssue" validate:"required" description:"Asset locked and unlocked on the locking chain"`
	IssuingChainDoor  string              `json:"IssuingChainDoor" validate:"required,startswith=r" description:"Door account on the issuing chain"`
	IssuingChainIssue currencies.Currency `json:"IssuingChainIssue" validate:"required" description:"Asset minted and burned on the issuing chain"`
}

// Module returns the shared model definitions scanned at registry build.
func Module() model.Module {
	return model.Module{
		Category: "common",
		Definitions: []model.Definition{
			model.Def(AuthAccount{}, "An account authorized to trade at an AMM auction slot."),
			model.Def(PathStep{}, "One step in a cross-currency payment path."),
			model.Def(Memo{}, "Arbitrary hex-encoded metadata attached to a transaction."),
			model.Def(Signer{}, "One signature in a multisigned transaction."),
			model.Def(XChainBridge{}, "A cross-chain bridge between a locking and an issuing chain."),
		},
	}
}
