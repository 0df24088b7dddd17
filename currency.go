package countries

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrInvalidCurrency is returned when currency data lacks a code, name or symbol.
var ErrInvalidCurrency = errors.New("invalid currency data")

// Currency is an immutable (code, name, symbol) triple.
type Currency struct {
	code   string
	name   string
	symbol string
}

// NewCurrency returns the currency with the given code, name and symbol.
func NewCurrency(code, name, symbol string) Currency {
	return Currency{code: code, name: name, symbol: symbol}
}

// CurrencyFromMap builds a Currency from a loose mapping. The "code", "name"
// and "symbol" keys must all be present.
func CurrencyFromMap(data map[string]string) (Currency, error) {
	var missing []string
	for _, k := range []string{"code", "name", "symbol"} {
		if _, ok := data[k]; !ok {
			missing = append(missing, k)
		}
	}
	if len(missing) > 0 {
		return Currency{}, fmt.Errorf("%w: missing %v", ErrInvalidCurrency, missing)
	}
	return NewCurrency(data["code"], data["name"], data["symbol"]), nil
}

// Code returns the ISO 4217 code, e.g. "CAD".
func (c Currency) Code() string { return c.code }

// Name returns the currency name, e.g. "Canadian dollar".
func (c Currency) Name() string { return c.name }

// Symbol returns the currency symbol, e.g. "$".
func (c Currency) Symbol() string { return c.symbol }

func (c Currency) String() string { return c.name }

type currencyJSON struct {
	Name   string `json:"name"`
	Code   string `json:"code"`
	Symbol string `json:"symbol"`
}

// MarshalJSON encodes the currency as {"name","code","symbol"}.
func (c Currency) MarshalJSON() ([]byte, error) {
	return json.Marshal(currencyJSON{Name: c.name, Code: c.code, Symbol: c.symbol})
}
