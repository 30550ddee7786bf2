package contact

import (
	"strings"

	"github.com/delavector/officedb/internal/phone"
)

// Normalize trims every text field, strips phone numbers to bare digits and
// fills in defaults, in place. Fields that don't apply to the contact's kind
// are blanked so the record shape stays uniform across both variants.
func Normalize(c *Contact) {
	c.Company = strings.TrimSpace(c.Company)
	c.LegalForm = strings.TrimSpace(c.LegalForm)
	c.Salutation = strings.TrimSpace(c.Salutation)
	c.FirstName = strings.TrimSpace(c.FirstName)
	c.LastName = strings.TrimSpace(c.LastName)
	c.Email = strings.TrimSpace(c.Email)
	c.JobTitle = strings.TrimSpace(c.JobTitle)
	c.Street = strings.TrimSpace(c.Street)
	c.HouseNumber = strings.TrimSpace(c.HouseNumber)
	c.PostalCode = strings.TrimSpace(c.PostalCode)
	c.City = strings.TrimSpace(c.City)
	c.Country = strings.TrimSpace(c.Country)

	c.MobileNumber = phone.OnlyDigits(c.MobileNumber)
	c.LandlineNumber = phone.OnlyDigits(c.LandlineNumber)
	if c.MobileCC == "" {
		c.MobileCC = phone.DefaultCountryCode
	}
	if c.LandlineCC == "" {
		c.LandlineCC = phone.DefaultCountryCode
	}
	if c.Country == "" {
		c.Country = DefaultCountry
	}

	switch c.Kind {
	case KindPerson:
		// legal form only means something next to a linked company
		if c.Company == "" {
			c.LegalForm = ""
		}
	case KindCompany:
		c.Salutation = ""
		c.FirstName = ""
		c.LastName = ""
		c.NationalID = ""
	}
}

// Validate applies the required-field rules for the contact's kind.
func Validate(c *Contact) error {
	switch c.Kind {
	case KindPerson:
		if c.FirstName == "" || c.LastName == "" {
			return ErrMissingName
		}
	case KindCompany:
		if c.Company == "" {
			return ErrMissingCompanyName
		}
	default:
		return ErrUnknownKind
	}
	return nil
}
