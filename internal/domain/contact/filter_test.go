package contact_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/delavector/officedb/internal/domain/contact"
)

func sampleContacts() []contact.Contact {
	return []contact.Contact{
		{ID: "1", Kind: contact.KindPerson, FirstName: "Jan", LastName: "Peeters", Company: "Acme BV", Email: "jan@acme.be", City: "Gent"},
		{ID: "2", Kind: contact.KindPerson, FirstName: "An", LastName: "Vermeulen", Email: "an@example.be", City: "Brugge"},
		{ID: "3", Kind: contact.KindCompany, Company: "Bouwbedrijf Claes", Email: "info@claes.be", City: "Gent"},
	}
}

func TestFilters_Match_SubstringCaseInsensitive(t *testing.T) {
	list := sampleContacts()

	f := contact.Filters{Company: "bv"}
	require.True(t, f.Match(&list[0]))
	require.False(t, f.Match(&list[1]))

	f = contact.Filters{City: "GENT"}
	require.True(t, f.Match(&list[0]))
	require.True(t, f.Match(&list[2]))
	require.False(t, f.Match(&list[1]))
}

func TestFilters_Match_KindAndConjunction(t *testing.T) {
	list := sampleContacts()

	f := contact.Filters{Kind: contact.KindCompany, City: "Gent"}
	require.False(t, f.Match(&list[0]))
	require.True(t, f.Match(&list[2]))
}

func TestFilters_Match_Keyword(t *testing.T) {
	list := sampleContacts()

	f := contact.Filters{Keyword: "claes"}
	require.True(t, f.Match(&list[2]))
	require.False(t, f.Match(&list[1]))

	// Keyword searches email too.
	f = contact.Filters{Keyword: "example"}
	require.True(t, f.Match(&list[1]))
}

func TestSortAlphabetical_MixedListing(t *testing.T) {
	list := sampleContacts()
	contact.SortAlphabetical(list)

	// Companies sort on company name, persons on last name.
	require.Equal(t, "Bouwbedrijf Claes", list[0].Company)
	require.Equal(t, "Peeters", list[1].LastName)
	require.Equal(t, "Vermeulen", list[2].LastName)
}

func TestSortByModified(t *testing.T) {
	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	list := []contact.Contact{
		{ID: "a", ModifiedAt: base},
		{ID: "b", ModifiedAt: base.Add(time.Hour)},
		{ID: "c", ModifiedAt: base},
	}
	contact.SortByModified(list)

	require.Equal(t, "b", list[0].ID)
	// Equal timestamps fall back to id descending.
	require.Equal(t, "c", list[1].ID)
	require.Equal(t, "a", list[2].ID)
}
