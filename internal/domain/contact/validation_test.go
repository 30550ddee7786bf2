package contact_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/delavector/officedb/internal/domain/contact"
)

func TestNormalize_Person(t *testing.T) {
	c := &contact.Contact{
		Kind:           contact.KindPerson,
		FirstName:      "  Jan ",
		LastName:       " Peeters ",
		MobileNumber:   "0470/12.34.56",
		LandlineNumber: "09 123 45 67",
	}
	contact.Normalize(c)

	require.Equal(t, "Jan", c.FirstName)
	require.Equal(t, "Peeters", c.LastName)
	require.Equal(t, "0470123456", c.MobileNumber)
	require.Equal(t, "091234567", c.LandlineNumber)
	require.Equal(t, "+32", c.MobileCC)
	require.Equal(t, "+32", c.LandlineCC)
	require.Equal(t, "België", c.Country)
}

func TestNormalize_PersonWithoutCompanyDropsLegalForm(t *testing.T) {
	c := &contact.Contact{
		Kind:      contact.KindPerson,
		FirstName: "Jan",
		LastName:  "Peeters",
		LegalForm: "BV",
	}
	contact.Normalize(c)
	require.Equal(t, "", c.LegalForm)

	c.Company = "Bouwbedrijf Peeters"
	c.LegalForm = "BV"
	contact.Normalize(c)
	require.Equal(t, "BV", c.LegalForm)
}

func TestNormalize_CompanyBlanksPersonFields(t *testing.T) {
	c := &contact.Contact{
		Kind:       contact.KindCompany,
		Company:    "Acme",
		Salutation: "Dhr.",
		FirstName:  "Jan",
		LastName:   "Peeters",
		NationalID: "85.07.30-033.84",
	}
	contact.Normalize(c)

	require.Equal(t, "", c.Salutation)
	require.Equal(t, "", c.FirstName)
	require.Equal(t, "", c.LastName)
	require.Equal(t, "", c.NationalID)
}

func TestValidate(t *testing.T) {
	err := contact.Validate(&contact.Contact{Kind: contact.KindPerson, FirstName: "Jan"})
	require.ErrorIs(t, err, contact.ErrMissingName)

	err = contact.Validate(&contact.Contact{Kind: contact.KindCompany})
	require.ErrorIs(t, err, contact.ErrMissingCompanyName)

	err = contact.Validate(&contact.Contact{Kind: "supplier"})
	require.ErrorIs(t, err, contact.ErrUnknownKind)

	err = contact.Validate(&contact.Contact{Kind: contact.KindPerson, FirstName: "Jan", LastName: "Peeters"})
	require.NoError(t, err)
}

func TestDisplayName(t *testing.T) {
	p := &contact.Contact{Kind: contact.KindPerson, FirstName: "Jan", LastName: "Peeters"}
	require.Equal(t, "Jan Peeters", p.DisplayName())

	co := &contact.Contact{Kind: contact.KindCompany, Company: "Acme"}
	require.Equal(t, "Acme", co.DisplayName())
}
