// Package currencies defines XRPL currency models: a currency without an
// attached value. XRP is the native unit; issued currencies carry a code and
// issuer; MPT currencies are identified by issuance ID.
package currencies

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/tejabhargav/xrpl-py/model"
)

// XRP specifies the native currency. The code is fixed.
type XRP struct {
	Currency string `json:"Currency,omitempty" validate:"omitempty,oneof=XRP" description:"Always XRP"`
}

// SetDefaults fills in the fixed code.
func (x *XRP) SetDefaults() {
	if x.Currency == "" {
		x.Currency = "XRP"
	}
}

// IssuedCurrency specifies a fungible token without a value.
type IssuedCurrency struct {
	Currency string `json:"Currency" validate:"required" description:"Currency code: 3 characters or 40-character hex"`
	Issuer   string `json:"Issuer" validate:"required,startswith=r" description:"Address of the token issuer"`
}

// Validate rejects currency codes that are neither 3 characters nor 40 hex.
func (c IssuedCurrency) Validate() error {
	if !model.ValidCurrencyCode(c.Currency) {
		return fmt.Errorf("currency code must be 3 characters or 40 hex characters, got %q", c.Currency)
	}
	return nil
}

// MPTCurrency specifies a multi-purpose token without a value.
type MPTCurrency struct {
	MPTIssuanceID string `json:"MPTIssuanceID" validate:"required,len=48,hexadecimal" description:"192-bit MPT issuance identifier in hex"`
}

// Currency is the union of the three currency shapes, tried left to right:
// XRP, IssuedCurrency, MPTCurrency.
type Currency struct {
	value any
}

// Native wraps the XRP currency.
func Native() Currency { return Currency{value: XRP{Currency: "XRP"}} }

// Issued wraps an issued currency.
func Issued(v IssuedCurrency) Currency { return Currency{value: v} }

// MPT wraps an MPT currency.
func MPT(v MPTCurrency) Currency { return Currency{value: v} }

// Value returns the wrapped value: XRP, IssuedCurrency, or MPTCurrency.
func (c Currency) Value() any { return c.value }

func (c Currency) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.value)
}

func (c *Currency) UnmarshalJSON(b []byte) error {
	var xrp XRP
	if err := strictUnmarshal(b, &xrp); err == nil && xrp.Currency == "XRP" {
		c.value = xrp
		return nil
	}
	var issued IssuedCurrency
	if err := strictUnmarshal(b, &issued); err == nil &&
		issued.Currency != "" && issued.Issuer != "" {
		if err := issued.Validate(); err != nil {
			return err
		}
		c.value = issued
		return nil
	}
	var mpt MPTCurrency
	if err := strictUnmarshal(b, &mpt); err == nil && mpt.MPTIssuanceID != "" {
		c.value = mpt
		return nil
	}
	return fmt.Errorf("currency must be XRP, an issued currency, or an MPT currency")
}

func strictUnmarshal(b []byte, v any) error {
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}

func init() {
	model.RegisterUnion(Currency{},
		model.UnionCandidate{Name: "XRP", Type: model.Def(XRP{}, "").Type},
		model.UnionCandidate{Name: "IssuedCurrency", Type: model.Def(IssuedCurrency{}, "").Type},
		model.UnionCandidate{Name: "MPTCurrency", Type: model.Def(MPTCurrency{}, "").Type},
	)
}

// Module returns the currency definitions scanned at registry build.
func Module() model.Module {
	return model.Module{
		Category: "currency",
		Definitions: []model.Definition{
			model.Def(XRP{}, "Specifies XRP as a currency, without a value."),
			model.Def(IssuedCurrency{}, "Specifies an issued currency, without a value."),
			model.Def(MPTCurrency{}, "Specifies a multi-purpose token currency, without a value."),
		},
	}
}
