package payment

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Transaction is the provider's record, kept as decoded JSON values. Amount
// may be a json.Number or a string and is never re-validated numerically.
type Transaction struct {
	Reference any
	Amount    any
	Status    any
}

// HasReference reports whether the record carries a usable reference.
func (t *Transaction) HasReference() bool {
	return truthy(t.Reference)
}

// HasAmount reports whether the record carries an amount. Null, empty and
// zero amounts count as absent.
func (t *Transaction) HasAmount() bool {
	return truthy(t.Amount)
}

func (t *Transaction) ReferenceString() string {
	return formatValue(t.Reference)
}

func (t *Transaction) AmountString() string {
	return formatValue(t.Amount)
}

// StatusString is the lowercased status, "" when absent.
func (t *Transaction) StatusString() string {
	if !truthy(t.Status) {
		return ""
	}
	return strings.ToLower(formatValue(t.Status))
}

func truthy(v any) bool {
	switch val := v.(type) {
	case nil:
		return false
	case bool:
		return val
	case string:
		return val != ""
	case json.Number:
		f, ok := parseNumber(val)
		if !ok {
			return val != ""
		}
		return f != 0
	default:
		return true
	}
}

// formatValue renders a decoded JSON value the way it is concatenated into
// the signature: strings verbatim, numbers the way a JavaScript Number prints.
func formatValue(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case json.Number:
		f, ok := parseNumber(val)
		if !ok {
			return val.String()
		}
		return formatNumber(f)
	case bool:
		return strconv.FormatBool(val)
	default:
		return fmt.Sprint(val)
	}
}
