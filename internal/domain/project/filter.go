package project

import (
	"sort"
	"strings"
)

// Filters selects projects by case-insensitive substring match per column,
// the way the search screen's filter bar works. Empty fields are ignored;
// every supplied field must match.
type Filters struct {
	Bureau  string
	Number  string
	Client  string
	Name    string
	Address string
	Status  string
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

// Match reports whether the project passes every non-empty filter.
func (f Filters) Match(p *Project) bool {
	fields := []struct{ filter, value string }{
		{f.Bureau, string(p.Bureau)},
		{f.Number, p.Number},
		{f.Client, p.Client},
		{f.Name, p.Name},
		{f.Address, p.Address},
		{f.Status, p.Status},
	}
	for _, fv := range fields {
		if fv.filter != "" && !containsFold(fv.value, fv.filter) {
			return false
		}
	}
	return true
}

// SortByModified orders most-recently-modified first, id descending on
// equal timestamps so the order stays deterministic.
func SortByModified(list []Project) {
	sort.SliceStable(list, func(i, j int) bool {
		if !list[i].ModifiedAt.Equal(list[j].ModifiedAt) {
			return list[i].ModifiedAt.After(list[j].ModifiedAt)
		}
		return list[i].ID > list[j].ID
	})
}
