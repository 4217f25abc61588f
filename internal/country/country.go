// Package country carries the destination lookup tables used by the tax
// engine. The data is static reference material: EU membership decides whether
// a product's VAT percentage applies at all.
package country

import "strings"

// standardVATRates maps EU member state codes to their standard VAT
// percentage. Membership in this table is what makes a destination
// EU-equivalent for tax purposes.
var standardVATRates = map[string]float64{
	"AT": 20,   // Austria
	"BE": 21,   // Belgium
	"BG": 20,   // Bulgaria
	"CY": 19,   // Cyprus
	"CZ": 21,   // Czech Republic
	"DE": 19,   // Germany
	"DK": 25,   // Denmark
	"EE": 20,   // Estonia
	"EL": 24,   // Greece
	"ES": 21,   // Spain
	"FI": 24,   // Finland
	"FR": 20,   // France
	"HR": 25,   // Croatia
	"HU": 27,   // Hungary
	"IE": 23,   // Ireland
	"IT": 22,   // Italy
	"LT": 21,   // Lithuania
	"LU": 17,   // Luxembourg
	"LV": 21,   // Latvia
	"MT": 18,   // Malta
	"NL": 21,   // Netherlands
	"PL": 23,   // Poland
	"PT": 23,   // Portugal
	"RO": 19,   // Romania
	"SE": 25,   // Sweden
	"SI": 22,   // Slovenia
	"SK": 20,   // Slovakia
	"UK": 20,   // United Kingdom
}

func normalize(code string) string {
	code = strings.ToUpper(strings.TrimSpace(code))
	switch code {
	case "GB":
		// ISO 3166 uses GB; the VAT tables key the United Kingdom as UK.
		return "UK"
	case "GR":
		return "EL"
	}
	return code
}

// IsEU reports whether the country code belongs to an EU member state.
func IsEU(code string) bool {
	_, ok := standardVATRates[normalize(code)]
	return ok
}

// StandardVATRate returns the standard VAT percentage for an EU member state.
// The second return value is false for non-EU destinations.
func StandardVATRate(code string) (float64, bool) {
	rate, ok := standardVATRates[normalize(code)]
	return rate, ok
}
