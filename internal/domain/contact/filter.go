package contact

import (
	"sort"
	"strings"
)

// Filters selects contacts by case-insensitive substring match. Empty
// fields are ignored; every supplied field must match. Keyword matches
// anywhere across company, first name, last name, email and city, the way
// the combined search box does.
type Filters struct {
	Kind      Kind
	Company   string
	FirstName string
	LastName  string
	Email     string
	City      string
	Keyword   string
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

// Match reports whether the contact passes every non-empty filter.
func (f Filters) Match(c *Contact) bool {
	if f.Kind != "" && c.Kind != f.Kind {
		return false
	}
	fields := []struct{ filter, value string }{
		{f.Company, c.Company},
		{f.FirstName, c.FirstName},
		{f.LastName, c.LastName},
		{f.Email, c.Email},
		{f.City, c.City},
	}
	for _, fv := range fields {
		if fv.filter != "" && !containsFold(fv.value, fv.filter) {
			return false
		}
	}
	if f.Keyword != "" {
		combined := strings.Join([]string{c.Company, c.FirstName, c.LastName, c.Email, c.City}, " ")
		if !containsFold(combined, f.Keyword) {
			return false
		}
	}
	return true
}

// SortAlphabetical orders a mixed listing alphabetically: persons by last
// name, companies by company name, case-insensitively. The surrogate id
// breaks ties so the order is deterministic.
func SortAlphabetical(list []Contact) {
	sort.SliceStable(list, func(i, j int) bool {
		a := strings.ToLower(list[i].listingKey())
		b := strings.ToLower(list[j].listingKey())
		if a != b {
			return a < b
		}
		return list[i].ID < list[j].ID
	})
}

// SortByModified orders most-recently-modified first, id descending on
// equal timestamps.
func SortByModified(list []Contact) {
	sort.SliceStable(list, func(i, j int) bool {
		if !list[i].ModifiedAt.Equal(list[j].ModifiedAt) {
			return list[i].ModifiedAt.After(list[j].ModifiedAt)
		}
		return list[i].ID > list[j].ID
	})
}
