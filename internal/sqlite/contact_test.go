package sqlite_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/delavector/officedb/internal/domain/contact"
	"github.com/delavector/officedb/internal/repository"
	"github.com/delavector/officedb/internal/sqlite"
)

func newContact(id, first, last string) *contact.Contact {
	return &contact.Contact{
		ID:         id,
		Kind:       contact.KindPerson,
		FirstName:  first,
		LastName:   last,
		MobileCC:   "+32",
		LandlineCC: "+32",
		Country:    "België",
		ModifiedBy: "Felix",
		ModifiedAt: time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
	}
}

func TestContactRepository_CreateGet(t *testing.T) {
	ctx := context.Background()
	repo := sqlite.NewContactRepository(newTestDB(t))

	c := newContact("c1", "Jan", "Peeters")
	c.MobileNumber = "0470123456"
	c.NationalID = "85.07.30-033.84"
	require.NoError(t, repo.Create(ctx, c))

	got, err := repo.Get(ctx, "c1")
	require.NoError(t, err)
	require.Equal(t, "Jan", got.FirstName)
	require.Equal(t, "0470123456", got.MobileNumber)
	require.Equal(t, "85.07.30-033.84", got.NationalID)
	require.True(t, got.ModifiedAt.Equal(c.ModifiedAt))
}

func TestContactRepository_Get_NotFound(t *testing.T) {
	repo := sqlite.NewContactRepository(newTestDB(t))
	_, err := repo.Get(context.Background(), "missing")
	require.ErrorIs(t, err, repository.ErrNotFound)
}

func TestContactRepository_Create_DuplicateID(t *testing.T) {
	ctx := context.Background()
	repo := sqlite.NewContactRepository(newTestDB(t))

	require.NoError(t, repo.Create(ctx, newContact("c1", "Jan", "Peeters")))
	err := repo.Create(ctx, newContact("c1", "An", "Vermeulen"))
	require.ErrorIs(t, err, repository.ErrDuplicate)
}

func TestContactRepository_FindPersonAndCompany(t *testing.T) {
	ctx := context.Background()
	repo := sqlite.NewContactRepository(newTestDB(t))

	p := newContact("c1", "Jan", "Peeters")
	p.Company = "Acme"
	require.NoError(t, repo.Create(ctx, p))

	co := newContact("c2", "", "")
	co.Kind = contact.KindCompany
	co.Company = "Acme"
	require.NoError(t, repo.Create(ctx, co))

	got, err := repo.FindPerson(ctx, "Jan", "Peeters", "Acme")
	require.NoError(t, err)
	require.Equal(t, "c1", got.ID)

	got, err = repo.FindCompany(ctx, "Acme")
	require.NoError(t, err)
	require.Equal(t, "c2", got.ID)

	_, err = repo.FindPerson(ctx, "Jan", "Peeters", "")
	require.ErrorIs(t, err, repository.ErrNotFound)
}

func TestContactRepository_Update(t *testing.T) {
	ctx := context.Background()
	repo := sqlite.NewContactRepository(newTestDB(t))

	c := newContact("c1", "Jan", "Peters")
	require.NoError(t, repo.Create(ctx, c))

	c.LastName = "Peeters"
	c.ModifiedBy = "Kris"
	require.NoError(t, repo.Update(ctx, c))

	got, err := repo.Get(ctx, "c1")
	require.NoError(t, err)
	require.Equal(t, "Peeters", got.LastName)
	require.Equal(t, "Kris", got.ModifiedBy)

	missing := newContact("nope", "X", "Y")
	require.ErrorIs(t, repo.Update(ctx, missing), repository.ErrNotFound)
}

func TestContactRepository_List_FiltersAndOrder(t *testing.T) {
	ctx := context.Background()
	repo := sqlite.NewContactRepository(newTestDB(t))

	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	jan := newContact("c1", "Jan", "Peeters")
	jan.Company = "Acme BV"
	jan.City = "Gent"
	jan.ModifiedAt = base

	an := newContact("c2", "An", "Vermeulen")
	an.City = "Brugge"
	an.ModifiedAt = base.Add(time.Hour)

	claes := newContact("c3", "", "")
	claes.Kind = contact.KindCompany
	claes.Company = "Bouwbedrijf Claes"
	claes.City = "Gent"
	claes.ModifiedAt = base.Add(2 * time.Hour)

	for _, c := range []*contact.Contact{jan, an, claes} {
		require.NoError(t, repo.Create(ctx, c))
	}

	// Case-insensitive substring filter.
	list, err := repo.List(ctx, contact.Filters{Company: "bv"}, contact.OrderModified)
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Equal(t, "c1", list[0].ID)

	// Kind plus city, most recent first.
	list, err = repo.List(ctx, contact.Filters{City: "gent"}, contact.OrderModified)
	require.NoError(t, err)
	require.Len(t, list, 2)
	require.Equal(t, "c3", list[0].ID)
	require.Equal(t, "c1", list[1].ID)

	// Mixed alphabetical listing: company name against last names.
	list, err = repo.List(ctx, contact.Filters{}, contact.OrderAlphabetical)
	require.NoError(t, err)
	require.Equal(t, []string{"c3", "c1", "c2"}, []string{list[0].ID, list[1].ID, list[2].ID})

	// Keyword spans name, email and city.
	list, err = repo.List(ctx, contact.Filters{Keyword: "claes"}, contact.OrderModified)
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Equal(t, "c3", list[0].ID)
}

func TestContactRepository_List_EscapesLikeWildcards(t *testing.T) {
	ctx := context.Background()
	repo := sqlite.NewContactRepository(newTestDB(t))

	c := newContact("c1", "Jan", "Peeters")
	c.Company = "100% Bouw"
	require.NoError(t, repo.Create(ctx, c))

	list, err := repo.List(ctx, contact.Filters{Company: "100%"}, contact.OrderModified)
	require.NoError(t, err)
	require.Len(t, list, 1)

	list, err = repo.List(ctx, contact.Filters{Company: "0%B"}, contact.OrderModified)
	require.NoError(t, err)
	require.Empty(t, list)
}

func TestContactRepository_Names(t *testing.T) {
	ctx := context.Background()
	repo := sqlite.NewContactRepository(newTestDB(t))

	jan := newContact("c1", "Jan", "Peeters")
	jan.Company = "Acme"
	require.NoError(t, repo.Create(ctx, jan))
	require.NoError(t, repo.Create(ctx, newContact("c2", "An", "Vermeulen")))

	co := newContact("c3", "", "")
	co.Kind = contact.KindCompany
	co.Company = "Acme"
	require.NoError(t, repo.Create(ctx, co))

	names, err := repo.PersonNames(ctx)
	require.NoError(t, err)
	require.ElementsMatch(t, []string{"Jan Peeters", "An Vermeulen"}, names)

	companies, err := repo.CompanyNames(ctx)
	require.NoError(t, err)
	require.Equal(t, []string{"Acme"}, companies)
}
