// Package countries holds the dialing-code table that backs the lead form's
// country selector and its per-country phone length hints. These are the
// client-facing UX rules; the server-side submission validator deliberately
// applies only the generic 7-15 digit range and never consults this table.
package countries

import "strings"

// Country describes one selectable country in the lead form.
type Country struct {
	Code     string // ISO 3166-1 alpha-2
	DialCode string
	Name     string
	// MinDigits/MaxDigits bound the national number length, excluding the
	// dial code. Fixed-length countries have MinDigits == MaxDigits.
	MinDigits int
	MaxDigits int
}

// All is ordered as the form presents it: India first, then alphabetical.
var All = []Country{
	{Code: "IN", DialCode: "+91", Name: "India", MinDigits: 10, MaxDigits: 10},
	{Code: "AF", DialCode: "+93", Name: "Afghanistan", MinDigits: 9, MaxDigits: 9},
	{Code: "AU", DialCode: "+61", Name: "Australia", MinDigits: 9, MaxDigits: 9},
	{Code: "BD", DialCode: "+880", Name: "Bangladesh", MinDigits: 10, MaxDigits: 10},
	{Code: "BR", DialCode: "+55", Name: "Brazil", MinDigits: 11, MaxDigits: 11},
	{Code: "CA", DialCode: "+1", Name: "Canada", MinDigits: 10, MaxDigits: 10},
	{Code: "CN", DialCode: "+86", Name: "China", MinDigits: 11, MaxDigits: 11},
	{Code: "DE", DialCode: "+49", Name: "Germany", MinDigits: 10, MaxDigits: 10},
	{Code: "EG", DialCode: "+20", Name: "Egypt", MinDigits: 10, MaxDigits: 10},
	{Code: "FR", DialCode: "+33", Name: "France", MinDigits: 9, MaxDigits: 9},
	{Code: "GB", DialCode: "+44", Name: "United Kingdom", MinDigits: 10, MaxDigits: 10},
	{Code: "GH", DialCode: "+233", Name: "Ghana", MinDigits: 9, MaxDigits: 9},
	{Code: "ID", DialCode: "+62", Name: "Indonesia", MinDigits: 11, MaxDigits: 11},
	{Code: "IE", DialCode: "+353", Name: "Ireland", MinDigits: 9, MaxDigits: 9},
	{Code: "IL", DialCode: "+972", Name: "Israel", MinDigits: 9, MaxDigits: 9},
	{Code: "IT", DialCode: "+39", Name: "Italy", MinDigits: 10, MaxDigits: 10},
	{Code: "JP", DialCode: "+81", Name: "Japan", MinDigits: 11, MaxDigits: 11},
	{Code: "KE", DialCode: "+254", Name: "Kenya", MinDigits: 10, MaxDigits: 10},
	{Code: "KR", DialCode: "+82", Name: "South Korea", MinDigits: 7, MaxDigits: 8},
	{Code: "LK", DialCode: "+94", Name: "Sri Lanka", MinDigits: 7, MaxDigits: 7},
	{Code: "MY", DialCode: "+60", Name: "Malaysia", MinDigits: 7, MaxDigits: 7},
	{Code: "MX", DialCode: "+52", Name: "Mexico", MinDigits: 10, MaxDigits: 10},
	{Code: "NG", DialCode: "+234", Name: "Nigeria", MinDigits: 8, MaxDigits: 8},
	{Code: "NL", DialCode: "+31", Name: "Netherlands", MinDigits: 9, MaxDigits: 9},
	{Code: "NP", DialCode: "+977", Name: "Nepal", MinDigits: 10, MaxDigits: 10},
	{Code: "NZ", DialCode: "+64", Name: "New Zealand", MinDigits: 8, MaxDigits: 9},
	{Code: "PH", DialCode: "+63", Name: "Philippines", MinDigits: 10, MaxDigits: 10},
	{Code: "PK", DialCode: "+92", Name: "Pakistan", MinDigits: 10, MaxDigits: 10},
	{Code: "SA", DialCode: "+966", Name: "Saudi Arabia", MinDigits: 9, MaxDigits: 9},
	{Code: "SG", DialCode: "+65", Name: "Singapore", MinDigits: 8, MaxDigits: 8},
	{Code: "TH", DialCode: "+66", Name: "Thailand", MinDigits: 9, MaxDigits: 9},
	{Code: "TR", DialCode: "+90", Name: "Turkey", MinDigits: 11, MaxDigits: 11},
	{Code: "AE", DialCode: "+971", Name: "UAE", MinDigits: 9, MaxDigits: 9},
	{Code: "US", DialCode: "+1", Name: "United States", MinDigits: 10, MaxDigits: 10},
	{Code: "VN", DialCode: "+84", Name: "Vietnam", MinDigits: 9, MaxDigits: 9},
	{Code: "ZA", DialCode: "+27", Name: "South Africa", MinDigits: 9, MaxDigits: 9},
}

// Lookup returns the table entry for an ISO code, case-insensitively.
func Lookup(code string) (Country, bool) {
	code = strings.ToUpper(code)
	for _, c := range All {
		if c.Code == code {
			return c, true
		}
	}
	return Country{}, false
}

// Name resolves an ISO code to its display name, falling back to the code
// itself for countries the table doesn't list.
func Name(code string) string {
	if c, ok := Lookup(code); ok {
		return c.Name
	}
	return code
}

// ValidNationalNumber reports whether a national number's digit count fits
// the country's expected range. Unknown countries accept anything; the
// generic server-side range check still applies to them.
func ValidNationalNumber(code string, digits int) bool {
	c, ok := Lookup(code)
	if !ok {
		return true
	}
	return digits >= c.MinDigits && digits <= c.MaxDigits
}
