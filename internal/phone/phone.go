// Package phone formats international phone numbers for display and strips
// them back to bare digits for storage. Formatting is a rough approximation
// of national conventions, not a validity check.
package phone

import (
	"fmt"
	"strings"
)

// DefaultCountryCode is assumed when no code is supplied.
const DefaultCountryCode = "+32"

// CountryCode pairs a dialing code with a country name for dropdown labels.
type CountryCode struct {
	Code string
	Name string
}

// CountryCodes is the fixed dialing-code table shown in the forms.
var CountryCodes = []CountryCode{
	{"+32", "België"},
	{"+31", "Nederland"},
	{"+33", "Frankrijk"},
	{"+34", "Spanje"},
	{"+352", "Luxemburg"},
	{"+41", "Zwitserland"},
	{"+420", "Tsjechië"},
	{"+48", "Polen"},
	{"+36", "Hongarije"},
	{"+351", "Portugal"},
	{"+44", "Engeland/VK"},
	{"+353", "Ierland"},
	{"+45", "Denemarken"},
	{"+39", "Italië"},
	{"+30", "Griekenland"},
	{"+43", "Oostenrijk"},
	{"+46", "Zweden"},
	{"+358", "Finland"},
	{"+47", "Noorwegen"},
}

// OnlyDigits removes every non-digit character.
func OnlyDigits(s string) string {
	var b strings.Builder
	for _, ch := range s {
		if ch >= '0' && ch <= '9' {
			b.WriteRune(ch)
		}
	}
	return b.String()
}

// CodeLabels returns the dropdown labels for all known dialing codes.
func CodeLabels() []string {
	labels := make([]string, len(CountryCodes))
	for i, cc := range CountryCodes {
		labels[i] = fmt.Sprintf("%s (%s)", cc.Code, cc.Name)
	}
	return labels
}

// LabelToCode extracts the dialing code from a dropdown label,
// e.g. "+32 (België)" -> "+32".
func LabelToCode(label string) string {
	code, _, _ := strings.Cut(strings.TrimSpace(label), " ")
	return code
}

// CodeToLabel renders the dropdown label for a dialing code. Unknown codes
// render as "<code> (?)".
func CodeToLabel(code string) string {
	for _, cc := range CountryCodes {
		if cc.Code == code {
			return fmt.Sprintf("%s (%s)", cc.Code, cc.Name)
		}
	}
	return fmt.Sprintf("%s (?)", code)
}

// Format renders a raw number as a spaced display string. For +32 the first
// three digits are taken as the operator block when the number looks mobile
// (eight or more digits starting with 4, or mobileHint), otherwise the first
// two digits are the area code. +31 always takes a two-digit area code.
// Other codes get no area-code special-casing. The remaining digits are
// grouped in pairs, the last group may be a single digit.
func Format(cc, raw string, mobileHint bool) string {
	digits := OnlyDigits(raw)
	if cc == "" {
		cc = DefaultCountryCode
	}

	if digits == "" {
		return fmt.Sprintf("%s (0)", cc)
	}

	var prefix string
	switch cc {
	case "+32":
		if (len(digits) >= 8 && digits[0] == '4') || mobileHint {
			prefix = digits[:min(3, len(digits))]
			digits = digits[min(3, len(digits)):]
		} else {
			prefix = digits[:min(2, len(digits))]
			digits = digits[min(2, len(digits)):]
		}
	case "+31":
		prefix = digits[:min(2, len(digits))]
		digits = digits[min(2, len(digits)):]
	}

	pieces := make([]string, 0, len(digits)/2+2)
	if prefix != "" {
		pieces = append(pieces, prefix)
	}
	for i := 0; i < len(digits); i += 2 {
		end := min(i+2, len(digits))
		pieces = append(pieces, digits[i:end])
	}

	return strings.TrimSpace(fmt.Sprintf("%s (0) %s", cc, strings.Join(pieces, " ")))
}
