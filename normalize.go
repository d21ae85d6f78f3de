package xrpltools

import (
	"encoding/hex"
	"encoding/json"
	"strconv"
	"strings"
)

// abbreviations maps lower-cased key segments to their canonical XRPL
// casing. Everything else is plain-capitalized.
var abbreviations = map[string]string{
	"amm":     "AMM",
	"did":     "DID",
	"id":      "ID",
	"lp":      "LP",
	"mpt":     "MPT",
	"mptoken": "MPToken",
	"nft":     "NFT",
	"nftoken": "NFToken",
	"unl":     "UNL",
	"uri":     "URI",
	"xchain":  "XChain",
}

// NormalizeKey rewrites a caller's snake_case key into the canonical XRPL
// capitalized convention: destination_tag becomes DestinationTag, nftoken_id
// becomes NFTokenID. Keys already in canonical form pass through unchanged.
// The rewrite is purely syntactic; callers keep the original key for
// diagnostics.
func NormalizeKey(key string) string {
	if key == "" {
		return key
	}
	segments := strings.Split(key, "_")
	var b strings.Builder
	for _, seg := range segments {
		if seg == "" {
			continue
		}
		if abbr, ok := abbreviations[strings.ToLower(seg)]; ok {
			b.WriteString(abbr)
			continue
		}
		b.WriteString(strings.ToUpper(seg[:1]))
		b.WriteString(seg[1:])
	}
	return b.String()
}

// amountKeys are the field names (squashed to lower case, underscores
// removed) whose values carry base-unit or decimal amounts. Amounts are
// preserved as exact decimal strings and never coerced to a numeric type.
var amountKeys = map[string]bool{
	"amount":      true,
	"amount2":     true,
	"balance":     true,
	"lptokenout":  true,
	"lptokenin":   true,
	"fee":         true,
	"highlimit":   true,
	"limitamount": true,
	"lowlimit":    true,
	"sendmax":     true,
	"delivermin":  true,
	"delivermax":  true,
	"takergets":   true,
	"takerpays":   true,
	"value":       true,
}

func squashKey(key string) string {
	return strings.ToLower(strings.ReplaceAll(key, "_", ""))
}

// isAmountKey reports whether a field is amount-semantic, by exact squashed
// name or an _amount suffix.
func isAmountKey(key string) bool {
	s := squashKey(key)
	return amountKeys[s] || strings.HasSuffix(s, "amount")
}

func isCurrencyKey(key string) bool {
	return squashKey(key) == "currency"
}

// currencyHexWidth is the fixed width of a non-standard currency code:
// 160 bits as uppercase hex.
const currencyHexWidth = 40

// NormalizeCurrencyCode rewrites a currency code into the domain's canonical
// form: 3-character codes (including the native XRP sentinel) pass through;
// longer codes are hex-encoded from their UTF-8 bytes and zero-padded to 40
// characters. The conversion is idempotent: a correctly padded 40-character
// hex code is returned unchanged.
func NormalizeCurrencyCode(code string) string {
	if len(code) == 3 || code == "XRP" {
		return code
	}
	if len(code) == currencyHexWidth && isHex(code) {
		return code
	}
	if len(code) <= 3 || len(code) > currencyHexWidth/2 {
		// Too short or too long to encode; let the validator reject it.
		return code
	}
	encoded := strings.ToUpper(hex.EncodeToString([]byte(code)))
	return encoded + strings.Repeat("0", currencyHexWidth-len(encoded))
}

func isHex(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= '0' && c <= '9':
		case c >= 'A' && c <= 'F':
		case c >= 'a' && c <= 'f':
		default:
			return false
		}
	}
	return true
}

// NormalizeFields rewrites a raw field map into the representation the
// domain models expect: canonical keys, preserved amount strings, encoded
// currency codes, applied depth-first into nested maps and element-wise into
// sequences. Normalization never fails; values it cannot interpret pass
// through unchanged for the validator to reject.
func NormalizeFields(fields map[string]any) map[string]any {
	out := make(map[string]any, len(fields))
	for key, value := range fields {
		out[NormalizeKey(key)] = NormalizeValue(key, value)
	}
	return out
}

// NormalizeValue applies the value-level rules for one field. The key drives
// the semantic rules (amount preservation, currency encoding); nested maps
// and sequences recurse.
func NormalizeValue(key string, value any) any {
	switch v := value.(type) {
	case map[string]any:
		return NormalizeFields(v)
	case []any:
		out := make([]any, len(v))
		for i, elem := range v {
			out[i] = NormalizeValue(key, elem)
		}
		return out
	case string:
		if isCurrencyKey(key) {
			return NormalizeCurrencyCode(v)
		}
		return v
	case json.Number:
		if isAmountKey(key) {
			return v.String()
		}
		return v
	case float64:
		if isAmountKey(key) {
			return strconv.FormatFloat(v, 'f', -1, 64)
		}
		return v
	case int:
		if isAmountKey(key) {
			return strconv.Itoa(v)
		}
		return v
	case int64:
		if isAmountKey(key) {
			return strconv.FormatInt(v, 10)
		}
		return v
	case uint64:
		if isAmountKey(key) {
			return strconv.FormatUint(v, 10)
		}
		return v
	default:
		return v
	}
}
