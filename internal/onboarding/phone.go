package onboarding

import "strings"

var phoneFormatting = strings.NewReplacer("+", "", "-", "")

// FullPhoneNumber concatenates the three phone fields and strips '+' and '-'.
// Nothing else is removed and no digits are validated.
func FullPhoneNumber(countryCode, areaCode, localNumber string) string {
	return phoneFormatting.Replace(countryCode + areaCode + localNumber)
}

// Destination is the dispatch address for a normalized number.
func Destination(fullPhone string) string {
	return "+" + fullPhone
}
