package project

import (
	"sort"
	"strconv"
	"strings"

	"github.com/delavector/officedb/internal/phone"
)

// vectorPrefix is the letter carried by Vector project numbers.
const vectorPrefix = "V"

// NextNumber suggests the next free bare-numeric project number: the maximum
// over all existing numbers that are wholly numeric, plus one. Prefixed or
// otherwise non-numeric numbers are ignored for the maximum. Returns "1" on
// empty history.
func NextNumber(existing []string) string {
	maxNum := 0
	for _, val := range existing {
		n, err := strconv.Atoi(strings.TrimSpace(val))
		if err != nil || n < 0 {
			continue
		}
		if n > maxNum {
			maxNum = n
		}
	}
	return strconv.Itoa(maxNum + 1)
}

// NormalizeLinkedNumber validates and normalizes a cross-reference to the
// counterpart bureau's project number. The field is optional: empty input
// yields empty output. Anything else must resolve to exactly four digits
// after stripping punctuation and letters; the result takes the shape the
// counterpart bureau uses ("V" prefix when the owner is Delafontaine, bare
// digits when the owner is Vector).
func NormalizeLinkedNumber(owner Bureau, raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	// a bare seeded prefix letter counts as empty
	if raw == "" || strings.EqualFold(raw, "V") || strings.EqualFold(raw, "D") {
		return "", nil
	}

	digits := phone.OnlyDigits(raw)
	if len(digits) != 4 {
		return "", ErrBadLinkedNumber
	}

	switch owner {
	case BureauDelafontaine:
		return vectorPrefix + digits, nil
	case BureauVector:
		return digits, nil
	default:
		return "", ErrUnknownBureau
	}
}

// numberKey orders project numbers for display: the bare-numeric group
// first, lettered numbers after it, numerically ascending within each
// group. A digit portion that fails to parse sorts as zero.
func numberKey(number string) (group, n int) {
	number = strings.TrimSpace(number)
	if v, err := strconv.Atoi(number); err == nil {
		return 0, v
	}
	digits := phone.OnlyDigits(number)
	v, err := strconv.Atoi(digits)
	if err != nil {
		v = 0
	}
	return 1, v
}

// SortByNumber orders projects by their number for display listings.
func SortByNumber(list []Project) {
	sort.SliceStable(list, func(i, j int) bool {
		gi, ni := numberKey(list[i].Number)
		gj, nj := numberKey(list[j].Number)
		if gi != gj {
			return gi < gj
		}
		return ni < nj
	})
}
