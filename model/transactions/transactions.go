// Package transactions defines the XRPL transaction models the engine
// synthesizes tools from. Every model embeds BaseTx and sets its
// TransactionType default at construction.
package transactions

import (
	"errors"

	"github.com/tejabhargav/xrpl-py/model"
	"github.com/tejabhargav/xrpl-py/model/amounts"
	"github.com/tejabhargav/xrpl-py/model/common"
	"github.com/tejabhargav/xrpl-py/model/currencies"
)

// BaseTx carries the fields every transaction shares. Amounts and fees are
// decimal strings in drops.
type BaseTx struct {
	Account            string          `json:"Account" validate:"required,startswith=r" description:"Address of the sender"`
	TransactionType    string          `json:"TransactionType,omitempty" description:"Set automatically from the model"`
	Fee                string          `json:"Fee,omitempty" description:"Transaction cost in drops; auto-fillable"`
	Sequence           uint32          `json:"Sequence,omitempty" description:"Sequence number of the sending account"`
	LastLedgerSequence uint32          `json:"LastLedgerSequence,omitempty" description:"Highest ledger index this transaction can appear in"`
	SourceTag          uint32          `json:"SourceTag,omitempty" description:"Arbitrary tag identifying the sender's hosted recipient"`
	Memos              []common.Memo   `json:"Memos,omitempty" description:"Additional arbitrary metadata"`
	Signers            []common.Signer `json:"Signers,omitempty" description:"Signatures for a multisigned transaction"`
}

// Payment moves value from one account to another, in XRP or issued
// currencies, optionally along explicit paths.
type Payment struct {
	BaseTx
	Amount         amounts.Amount  `json:"Amount" validate:"required" description:"Amount to deliver"`
	Destination    string          `json:"Destination" validate:"required,startswith=r" description:"Address of the recipient"`
	DestinationTag *uint32         `json:"DestinationTag,omitempty" description:"Tag identifying the recipient's hosted beneficiary"`
	InvoiceID      *string         `json:"InvoiceID,omitempty" validate:"omitempty,len=64,hexadecimal" description:"256-bit invoice reference in hex"`
	Paths          []common.Path   `json:"Paths,omitempty" description:"Payment paths for cross-currency delivery"`
	SendMax        *amounts.Amount `json:"SendMax,omitempty" description:"Maximum amount to spend"`
	DeliverMin     *amounts.Amount `json:"DeliverMin,omitempty" description:"Minimum amount to deliver for partial payments"`
}

func (t *Payment) SetDefaults() { t.TransactionType = "Payment" }

// TrustSet creates or modifies a trust line to an issuer.
type TrustSet struct {
	BaseTx
	LimitAmount amounts.IssuedCurrencyAmount `json:"LimitAmount" validate:"required" description:"Trust line limit: currency, issuer, and maximum amount"`
	QualityIn   *uint32                      `json:"QualityIn,omitempty" description:"Inbound quality as a ratio of 1e9"`
	QualityOut  *uint32                      `json:"QualityOut,omitempty" description:"Outbound quality as a ratio of 1e9"`
}

func (t *TrustSet) SetDefaults() { t.TransactionType = "TrustSet" }

// OfferCreate places an order on the decentralized exchange.
type OfferCreate struct {
	BaseTx
	TakerGets     amounts.Amount `json:"TakerGets" validate:"required" description:"Amount the taker receives"`
	TakerPays     amounts.Amount `json:"TakerPays" validate:"required" description:"Amount the taker pays"`
	Expiration    *uint32        `json:"Expiration,omitempty" description:"Expiration time in seconds since the Ripple epoch"`
	OfferSequence *uint32        `json:"OfferSequence,omitempty" description:"Sequence of an existing offer to replace"`
}

func (t *OfferCreate) SetDefaults() { t.TransactionType = "OfferCreate" }

// OfferCancel withdraws a previously placed order.
type OfferCancel struct {
	BaseTx
	OfferSequence uint32 `json:"OfferSequence" validate:"required" description:"Sequence of the offer to cancel"`
}

func (t *OfferCancel) SetDefaults() { t.TransactionType = "OfferCancel" }

// AccountSet changes the settings of the sending account.
type AccountSet struct {
	BaseTx
	SetFlag      *uint32 `json:"SetFlag,omitempty" description:"Account flag to enable (asf value)"`
	ClearFlag    *uint32 `json:"ClearFlag,omitempty" description:"Account flag to disable (asf value)"`
	Domain       *string `json:"Domain,omitempty" validate:"omitempty,hexadecimal" description:"Domain owning the account, lowercase hex"`
	TransferRate *uint32 `json:"TransferRate,omitempty" validate:"omitempty,gte=1000000000,lte=2000000000" description:"Fee to charge on transfers, in parts of 1e9"`
	TickSize     *uint8  `json:"TickSize,omitempty" validate:"omitempty,gte=3,lte=15" description:"Significant digits for offer exchange rates"`
}

func (t *AccountSet) SetDefaults() { t.TransactionType = "AccountSet" }

// Validate rejects a flag being enabled and disabled at the same time.
func (t AccountSet) Validate() error {
	if t.SetFlag != nil && t.ClearFlag != nil && *t.SetFlag == *t.ClearFlag {
		return errors.New("set_flag and clear_flag must differ")
	}
	return nil
}

// AccountDelete removes the sending account and sends its remaining XRP to
// another account.
type AccountDelete struct {
	BaseTx
	Destination    string  `json:"Destination" validate:"required,startswith=r" description:"Address receiving the remaining balance"`
	DestinationTag *uint32 `json:"DestinationTag,omitempty" description:"Tag identifying the recipient's hosted beneficiary"`
}

func (t *AccountDelete) SetDefaults() { t.TransactionType = "AccountDelete" }

// EscrowCreate sequesters XRP until a time or condition passes.
type EscrowCreate struct {
	BaseTx
	Amount      string  `json:"Amount" validate:"required,number" description:"Escrowed amount in drops"`
	Destination string  `json:"Destination" validate:"required,startswith=r" description:"Address to receive the escrowed amount"`
	CancelAfter *uint32 `json:"CancelAfter,omitempty" description:"Time after which the escrow can be cancelled"`
	FinishAfter *uint32 `json:"FinishAfter,omitempty" description:"Time before which the escrow cannot finish"`
	Condition   *string `json:"Condition,omitempty" validate:"omitempty,hexadecimal" description:"PREIMAGE-SHA-256 crypto-condition in hex"`
}

func (t *EscrowCreate) SetDefaults() { t.TransactionType = "EscrowCreate" }

// Validate requires a release or cancellation trigger.
func (t EscrowCreate) Validate() error {
	if t.CancelAfter == nil && t.FinishAfter == nil && t.Condition == nil {
		return errors.New("escrow needs cancel_after, finish_after, or a condition")
	}
	return nil
}

// EscrowFinish delivers a finished escrow to its destination.
type EscrowFinish struct {
	BaseTx
	Owner         string  `json:"Owner" validate:"required,startswith=r" description:"Address that created the escrow"`
	OfferSequence uint32  `json:"OfferSequence" validate:"required" description:"Sequence of the EscrowCreate transaction"`
	Condition     *string `json:"Condition,omitempty" validate:"omitempty,hexadecimal" description:"Crypto-condition of the escrow in hex"`
	Fulfillment   *string `json:"Fulfillment,omitempty" validate:"omitempty,hexadecimal" description:"Fulfillment of the crypto-condition in hex"`
}

func (t *EscrowFinish) SetDefaults() { t.TransactionType = "EscrowFinish" }

// EscrowCancel returns an expired escrow to its sender.
type EscrowCancel struct {
	BaseTx
	Owner         string `json:"Owner" validate:"required,startswith=r" description:"Address that created the escrow"`
	OfferSequence uint32 `json:"OfferSequence" validate:"required" description:"Sequence of the EscrowCreate transaction"`
}

func (t *EscrowCancel) SetDefaults() { t.TransactionType = "EscrowCancel" }

// NFTokenMint issues a new non-fungible token.
type NFTokenMint struct {
	BaseTx
	NFTokenTaxon uint32  `json:"NFTokenTaxon" description:"Arbitrary taxon grouping related tokens"`
	URI          *string `json:"URI,omitempty" validate:"omitempty,hexadecimal" description:"Token data or metadata URI, in hex"`
	TransferFee  *uint16 `json:"TransferFee,omitempty" validate:"omitempty,lte=50000" description:"Secondary-sale fee in units of 0.001%"`
	Issuer       *string `json:"Issuer,omitempty" validate:"omitempty,startswith=r" description:"Issuer when minting on another account's behalf"`
}

func (t *NFTokenMint) SetDefaults() { t.TransactionType = "NFTokenMint" }

// NFTokenBurn destroys a non-fungible token.
type NFTokenBurn struct {
	BaseTx
	NFTokenID string  `json:"NFTokenID" validate:"required,len=64,hexadecimal" description:"256-bit identifier of the token to burn"`
	Owner     *string `json:"Owner,omitempty" validate:"omitempty,startswith=r" description:"Owner when burning on another account's behalf"`
}

func (t *NFTokenBurn) SetDefaults() { t.TransactionType = "NFTokenBurn" }

// AMMCreate funds a new automated market maker for an asset pair.
type AMMCreate struct {
	BaseTx
	Amount     amounts.Amount `json:"Amount" validate:"required" description:"Starting amount of the first pool asset"`
	Amount2    amounts.Amount `json:"Amount2" validate:"required" description:"Starting amount of the second pool asset"`
	TradingFee uint16         `json:"TradingFee" validate:"lte=1000" description:"Pool trading fee in units of 0.001%"`
}

func (t *AMMCreate) SetDefaults() { t.TransactionType = "AMMCreate" }

// AMMDeposit adds liquidity to an existing AMM pool in exchange for LP
// tokens.
type AMMDeposit struct {
	BaseTx
	Asset      currencies.Currency           `json:"Asset" validate:"required" description:"First asset of the pool"`
	Asset2     currencies.Currency           `json:"Asset2" validate:"required" description:"Second asset of the pool"`
	Amount     *amounts.Amount               `json:"Amount,omitempty" description:"Amount of the first asset to deposit"`
	Amount2    *amounts.Amount               `json:"Amount2,omitempty" description:"Amount of the second asset to deposit"`
	LPTokenOut *amounts.IssuedCurrencyAmount `json:"LPTokenOut,omitempty" description:"Exact amount of LP tokens to receive"`
}

func (t *AMMDeposit) SetDefaults() { t.TransactionType = "AMMDeposit" }

// Validate requires a deposit target: an asset amount or an LP token amount.
func (t AMMDeposit) Validate() error {
	if t.Amount == nil && t.LPTokenOut == nil {
		return errors.New("amm deposit needs amount or lp_token_out")
	}
	return nil
}

// PaymentChannelClaim redeems XRP from or closes a payment channel.
type PaymentChannelClaim struct {
	BaseTx
	Channel   string  `json:"Channel" validate:"required,len=64,hexadecimal" description:"256-bit identifier of the channel"`
	Balance   *string `json:"Balance,omitempty" validate:"omitempty,number" description:"Total delivered by the channel after this claim, in drops"`
	Amount    *string `json:"Amount,omitempty" validate:"omitempty,number" description:"Amount authorized by the signature, in drops"`
	Signature *string `json:"Signature,omitempty" validate:"omitempty,hexadecimal" description:"Claim signature in hex"`
	PublicKey *string `json:"PublicKey,omitempty" validate:"omitempty,hexadecimal" description:"Public key of the channel, in hex"`
}

func (t *PaymentChannelClaim) SetDefaults() { t.TransactionType = "PaymentChannelClaim" }

// PaymentFlag holds the tf flag bits of a Payment transaction. It is a
// helper, not a model; the registry skips it.
type PaymentFlag uint32

const (
	TfNoRippleDirect PaymentFlag = 0x00010000
	TfPartialPayment PaymentFlag = 0x00020000
	TfLimitQuality   PaymentFlag = 0x00040000
)

// FlagValues marks PaymentFlag as a non-model flag type.
func (PaymentFlag) FlagValues() map[string]uint32 {
	return map[string]uint32{
		"tfNoRippleDirect": uint32(TfNoRippleDirect),
		"tfPartialPayment": uint32(TfPartialPayment),
		"tfLimitQuality":   uint32(TfLimitQuality),
	}
}

// Module returns the transaction definitions scanned at registry build, in
// declaration order. PaymentFlag is listed so catalogue construction proves
// flag types are filtered, mirroring how the model library exports them.
func Module() model.Module {
	return model.Module{
		Category: "transaction",
		Definitions: []model.Definition{
			model.Def(Payment{}, "Moves value from one account to another."),
			model.Def(TrustSet{}, "Creates or modifies a trust line to an issuer."),
			model.Def(OfferCreate{}, "Places an order on the decentralized exchange."),
			model.Def(OfferCancel{}, "Withdraws a previously placed order."),
			model.Def(AccountSet{}, "Changes the settings of the sending account."),
			model.Def(AccountDelete{}, "Deletes the sending account."),
			model.Def(EscrowCreate{}, "Sequesters XRP until a time or condition passes."),
			model.Def(EscrowFinish{}, "Delivers a finished escrow to its destination."),
			model.Def(EscrowCancel{}, "Returns an expired escrow to its sender."),
			model.Def(NFTokenMint{}, "Issues a new non-fungible token."),
			model.Def(NFTokenBurn{}, "Destroys a non-fungible token."),
			model.Def(AMMCreate{}, "Funds a new automated market maker for an asset pair."),
			model.Def(AMMDeposit{}, "Adds liquidity to an AMM pool in exchange for LP tokens."),
			model.Def(PaymentChannelClaim{}, "Redeems XRP from or closes a payment channel."),
			model.Def(PaymentFlag(0), "Payment tf flag bits."),
		},
	}
}
