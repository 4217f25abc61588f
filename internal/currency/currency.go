// Package currency knows how monetary minor units are rendered for humans.
// The pricing core treats it as a narrow formatting seam: it hands over an
// integer minor-unit amount plus an ISO code and gets strings back.
package currency

import (
	"strconv"
	"strings"
)

// zeroDecimal lists currencies that are not subdivided into minor units
// (charge amounts are expressed in whole units, per Stripe's currency docs).
var zeroDecimal = map[string]struct{}{
	"BIF": {}, "CLP": {}, "DJF": {}, "GNF": {}, "JPY": {}, "KMF": {},
	"KRW": {}, "MGA": {}, "PYG": {}, "RWF": {}, "UGX": {}, "VND": {},
	"VUV": {}, "XAF": {}, "XOF": {}, "XPF": {},
}

// IsZeroDecimal reports whether the currency has no minor unit.
func IsZeroDecimal(code string) bool {
	_, ok := zeroDecimal[strings.ToUpper(strings.TrimSpace(code))]
	return ok
}

// HumanValue renders minor units as a plain decimal string: "39.00" for
// 3900 EUR cents, "4699" for zero-decimal JPY.
func HumanValue(minor int64, code string) string {
	if IsZeroDecimal(code) {
		return strconv.FormatInt(minor, 10)
	}
	sign := ""
	if minor < 0 {
		sign = "-"
		minor = -minor
	}
	return sign + strconv.FormatInt(minor/100, 10) + "." + pad2(minor%100)
}

func pad2(v int64) string {
	if v < 10 {
		return "0" + strconv.FormatInt(v, 10)
	}
	return strconv.FormatInt(v, 10)
}
