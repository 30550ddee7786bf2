package project

import (
	"strings"
	"time"
)

// Bureau is the organization owning a project. It determines the lexical
// shape of the project number and of the linked cross-reference number.
type Bureau string

const (
	// BureauDelafontaine numbers its projects with bare digits, e.g. "3450".
	BureauDelafontaine Bureau = "Delafontaine"
	// BureauVector numbers its projects with a V prefix, e.g. "V3450".
	BureauVector Bureau = "Vector"
)

// Bureaus lists the known bureaus for the wizard dropdown.
var Bureaus = []Bureau{BureauDelafontaine, BureauVector}

// Statuses are the project statuses offered in the forms.
var Statuses = []string{"Nieuw", "Lopend", "Afgewerkt", "On hold"}

// DefaultStatus is assigned to projects created without a status.
const DefaultStatus = "Nieuw"

// Project is a job record owned by one bureau. The number is unique across
// all projects; the linked number, when present, refers to the counterpart
// bureau's project for the same real-world job.
type Project struct {
	ID           string    `json:"id"`
	Bureau       Bureau    `json:"bureau"`
	Number       string    `json:"project_number"`
	LinkedNumber string    `json:"linked_project_number"`
	Client       string    `json:"client"`
	Name         string    `json:"project_name"`
	Address      string    `json:"address"`
	Type         string    `json:"project_type"`
	Status       string    `json:"status"`
	ModifiedBy   string    `json:"modified_by"`
	ModifiedAt   time.Time `json:"modified_at"`
}

// Counterpart returns the other bureau.
func Counterpart(b Bureau) Bureau {
	if b == BureauDelafontaine {
		return BureauVector
	}
	return BureauDelafontaine
}

// ComposeAddress builds the single address line stored on a project:
// "<street> <houseNr>, <postal> <city>", omitting empty parts.
func ComposeAddress(street, houseNumber, postalCode, city string) string {
	streetPart := strings.TrimSpace(strings.TrimSpace(street) + " " + strings.TrimSpace(houseNumber))
	cityPart := strings.TrimSpace(strings.TrimSpace(postalCode) + " " + strings.TrimSpace(city))

	switch {
	case streetPart != "" && cityPart != "":
		return streetPart + ", " + cityPart
	case streetPart != "":
		return streetPart
	default:
		return cityPart
	}
}
