package currency

import (
	"strconv"
	"strings"
)

// style describes how a currency is displayed in price labels.
type style struct {
	symbol    string
	suffix    bool // symbol placed after the amount, separated by a space
	decimal   string
	thousands string
}

var styles = map[string]style{
	"EUR": {symbol: "€", suffix: true, decimal: ",", thousands: "."},
	"USD": {symbol: "$", decimal: ".", thousands: ","},
	"GBP": {symbol: "£", decimal: ".", thousands: ","},
	"JPY": {symbol: "¥", decimal: ".", thousands: ","},
	"AUD": {symbol: "$", decimal: ".", thousands: ","},
	"CAD": {symbol: "$", decimal: ".", thousands: ","},
	"SEK": {symbol: "kr", suffix: true, decimal: ",", thousands: "."},
	"DKK": {symbol: "kr", suffix: true, decimal: ",", thousands: "."},
	"NOK": {symbol: "kr", suffix: true, decimal: ",", thousands: "."},
}

// Label renders minor units as a localized display string, e.g. "39,00 €",
// "$44.90" or "¥4,699". Currencies without a known style fall back to the
// ISO code as a suffix.
func Label(minor int64, code string) string {
	code = strings.ToUpper(strings.TrimSpace(code))
	st, known := styles[code]
	if !known {
		st = style{symbol: code, suffix: true, decimal: ".", thousands: ","}
	}

	sign := ""
	if minor < 0 {
		sign = "-"
		minor = -minor
	}

	var body string
	if IsZeroDecimal(code) {
		body = group(strconv.FormatInt(minor, 10), st.thousands)
	} else {
		body = group(strconv.FormatInt(minor/100, 10), st.thousands) + st.decimal + pad2(minor%100)
	}

	if st.suffix {
		return sign + body + " " + st.symbol
	}
	return sign + st.symbol + body
}

// group inserts the thousands separator into an unsigned integer string.
func group(digits, sep string) string {
	if len(digits) <= 3 || sep == "" {
		return digits
	}
	var b strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteString(sep)
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
