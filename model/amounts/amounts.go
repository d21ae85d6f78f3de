// Package amounts defines XRPL amount models. An amount is either a string of
// drops (XRP base units) or an object describing an issued-currency or MPT
// holding. Drops stay strings end to end; they are never parsed into a
// numeric type.
package amounts

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/tejabhargav/xrpl-py/model"
)

// IssuedCurrencyAmount is an amount of a fungible token: currency code,
// issuer address, and decimal value as a string.
type IssuedCurrencyAmount struct {
	Currency string `json:"Currency" validate:"required" description:"Currency code: 3 characters or 40-character hex"`
	Issuer   string `json:"Issuer" validate:"required,startswith=r" description:"Address of the token issuer"`
	Value    string `json:"Value" validate:"required" description:"Decimal amount as a string"`
}

// Validate rejects currency codes that are neither 3 characters nor 40 hex.
func (a IssuedCurrencyAmount) Validate() error {
	if !model.ValidCurrencyCode(a.Currency) {
		return fmt.Errorf("currency code must be 3 characters or 40 hex characters, got %q", a.Currency)
	}
	return nil
}

// MPTAmount is an amount of a multi-purpose token, identified by its
// issuance ID.
type MPTAmount struct {
	MPTIssuanceID string `json:"MPTIssuanceID" validate:"required,len=48,hexadecimal" description:"192-bit MPT issuance identifier in hex"`
	Value         string `json:"Value" validate:"required" description:"Decimal amount as a string"`
}

// Amount is the union of the three amount shapes: drops string,
// IssuedCurrencyAmount, or MPTAmount. Candidates are tried left to right;
// the first that decodes wins.
type Amount struct {
	value any
}

// Drops wraps an XRP amount in base units.
func Drops(v string) Amount { return Amount{value: v} }

// Issued wraps an issued-currency amount.
func Issued(v IssuedCurrencyAmount) Amount { return Amount{value: v} }

// MPT wraps an MPT amount.
func MPT(v MPTAmount) Amount { return Amount{value: v} }

// Value returns the wrapped value: string, IssuedCurrencyAmount, or MPTAmount.
func (a Amount) Value() any { return a.value }

func (a Amount) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.value)
}

// UnmarshalJSON decodes the first matching candidate shape. A digit-only
// string is drops; an object is tried as IssuedCurrencyAmount first, then as
// MPTAmount. Anything else is rejected.
func (a *Amount) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		if !isDecimal(s) {
			return fmt.Errorf("drops amount must be a decimal string, got %q", s)
		}
		a.value = s
		return nil
	}
	var issued IssuedCurrencyAmount
	if err := strictUnmarshal(b, &issued); err == nil &&
		issued.Currency != "" && issued.Issuer != "" && issued.Value != "" {
		if err := issued.Validate(); err != nil {
			return err
		}
		a.value = issued
		return nil
	}
	var mpt MPTAmount
	if err := strictUnmarshal(b, &mpt); err == nil &&
		mpt.MPTIssuanceID != "" && mpt.Value != "" {
		a.value = mpt
		return nil
	}
	return fmt.Errorf("amount must be a drops string, an issued currency amount, or an MPT amount")
}

func strictUnmarshal(b []byte, v any) error {
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}

func isDecimal(s string) bool {
	if s == "" {
		return false
	}
	dot := false
	for i := 0; i < len(s); i++ {
		if s[i] == '.' {
			if dot || i == 0 || i == len(s)-1 {
				return false
			}
			dot = true
			continue
		}
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func init() {
	model.RegisterUnion(Amount{},
		model.UnionCandidate{Name: "drops string", Primitive: "string"},
		model.UnionCandidate{Name: "IssuedCurrencyAmount", Type: model.Def(IssuedCurrencyAmount{}, "").Type},
		model.UnionCandidate{Name: "MPTAmount", Type: model.Def(MPTAmount{}, "").Type},
	)
}

// Module returns the amount definitions scanned at registry build.
func Module() model.Module {
	return model.Module{
		Category: "amount",
		Definitions: []model.Definition{
			model.Def(IssuedCurrencyAmount{}, "Specifies an amount in an issued currency."),
			model.Def(MPTAmount{}, "Specifies an amount of a multi-purpose token."),
		},
	}
}
