package contact

import (
	"strings"
	"time"
)

// Kind discriminates the two contact variants.
type Kind string

const (
	KindPerson  Kind = "person"
	KindCompany Kind = "company"
)

// Salutations are the titles offered for person contacts.
var Salutations = []string{"Dhr.", "Mevr.", "Familie", "Firma"}

// LegalForms are the company legal forms offered in the forms.
var LegalForms = []string{"BV", "NV", "VZW", "CV", "VOF", "EP", "ASBL", "GmbH", "SARL"}

// DefaultCountry is assumed when no country is entered.
const DefaultCountry = "België"

// Contact is a person or company record. A person carries a first and last
// name and optionally a linked company; a company carries a company name and
// legal form. All optional fields are empty strings, never absent.
type Contact struct {
	ID             string    `json:"id"`
	Kind           Kind      `json:"kind"`
	Company        string    `json:"company"`
	LegalForm      string    `json:"legal_form"`
	Salutation     string    `json:"salutation"`
	FirstName      string    `json:"first_name"`
	LastName       string    `json:"last_name"`
	MobileCC       string    `json:"mobile_country_code"`
	MobileNumber   string    `json:"mobile_number"`
	LandlineCC     string    `json:"landline_country_code"`
	LandlineNumber string    `json:"landline_number"`
	Email          string    `json:"email"`
	JobTitle       string    `json:"job_title"`
	NationalID     string    `json:"national_id"`
	Street         string    `json:"street"`
	HouseNumber    string    `json:"house_number"`
	PostalCode     string    `json:"postal_code"`
	City           string    `json:"city"`
	Country        string    `json:"country"`
	ModifiedBy     string    `json:"modified_by"`
	ModifiedAt     time.Time `json:"modified_at"`
}

// FullName returns "first last" for person contacts.
func (c *Contact) FullName() string {
	return strings.TrimSpace(c.FirstName + " " + c.LastName)
}

// DisplayName returns the name shown in listings: the full name for persons,
// the company name for companies.
func (c *Contact) DisplayName() string {
	if c.Kind == KindPerson {
		return c.FullName()
	}
	return c.Company
}

// listingKey is the alphabetical sort key for mixed listings: last name for
// persons, company name for companies.
func (c *Contact) listingKey() string {
	if c.Kind == KindPerson {
		return c.LastName
	}
	return c.Company
}
