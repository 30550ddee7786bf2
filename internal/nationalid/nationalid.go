// Package nationalid parses and composes the Belgian national registry
// number (rijksregisternummer), a masked string of fixed digit groups
// YY.MM.DD-SSS.CC. It is a formatting codec only; no date or checksum
// validation is performed.
package nationalid

import (
	"fmt"

	"github.com/delavector/officedb/internal/phone"
)

var widths = [5]int{2, 2, 2, 3, 2}

// Groups holds the five digit groups of a registry number. Groups may be
// shorter than their nominal width, or empty, when the source text is
// incomplete.
type Groups struct {
	BirthYear  string
	BirthMonth string
	BirthDay   string
	Serial     string
	Check      string
}

// Parse strips the text to digits and slices it into the five groups.
// Missing digits yield shorter or empty groups; nothing is padded.
func Parse(text string) Groups {
	digits := phone.OnlyDigits(text)
	slice := func(from, to int) string {
		if from > len(digits) {
			from = len(digits)
		}
		if to > len(digits) {
			to = len(digits)
		}
		return digits[from:to]
	}
	return Groups{
		BirthYear:  slice(0, 2),
		BirthMonth: slice(2, 4),
		BirthDay:   slice(4, 6),
		Serial:     slice(6, 9),
		Check:      slice(9, 11),
	}
}

// Compose renders the masked string. Each group is stripped to digits and
// truncated to its nominal width. When every group is empty the result is
// the empty string, meaning no registry number on file; any non-empty group
// yields the full mask with the remaining groups possibly blank.
func (g Groups) Compose() string {
	parts := [5]string{g.BirthYear, g.BirthMonth, g.BirthDay, g.Serial, g.Check}
	empty := true
	for i, p := range parts {
		p = phone.OnlyDigits(p)
		if len(p) > widths[i] {
			p = p[:widths[i]]
		}
		parts[i] = p
		if p != "" {
			empty = false
		}
	}
	if empty {
		return ""
	}
	return fmt.Sprintf("%s.%s.%s-%s.%s", parts[0], parts[1], parts[2], parts[3], parts[4])
}
