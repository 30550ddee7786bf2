package csvstore

import (
	"context"
	"sort"
	"time"

	"github.com/delavector/officedb/internal/domain/contact"
	"github.com/delavector/officedb/internal/repository"
)

const contactsFile = "contacts.csv"

var contactHeader = []string{
	"id", "kind", "company", "legal_form", "salutation", "first_name",
	"last_name", "mobile_country_code", "mobile_number",
	"landline_country_code", "landline_number", "email", "job_title",
	"national_id", "street", "house_number", "postal_code", "city",
	"country", "modified_by", "modified_at",
}

// ContactRepository implements repository.ContactRepository over contacts.csv
type ContactRepository struct {
	store *Store
}

// NewContactRepository creates a new ContactRepository
func NewContactRepository(store *Store) *ContactRepository {
	return &ContactRepository{store: store}
}

func encodeContact(c *contact.Contact) []string {
	return []string{
		c.ID, string(c.Kind), c.Company, c.LegalForm, c.Salutation,
		c.FirstName, c.LastName, c.MobileCC, c.MobileNumber,
		c.LandlineCC, c.LandlineNumber, c.Email, c.JobTitle,
		c.NationalID, c.Street, c.HouseNumber, c.PostalCode, c.City,
		c.Country, c.ModifiedBy, c.ModifiedAt.Format(repository.TimeLayout),
	}
}

func decodeContact(row []string) contact.Contact {
	c := contact.Contact{
		ID:             row[0],
		Kind:           contact.Kind(row[1]),
		Company:        row[2],
		LegalForm:      row[3],
		Salutation:     row[4],
		FirstName:      row[5],
		LastName:       row[6],
		MobileCC:       row[7],
		MobileNumber:   row[8],
		LandlineCC:     row[9],
		LandlineNumber: row[10],
		Email:          row[11],
		JobTitle:       row[12],
		NationalID:     row[13],
		Street:         row[14],
		HouseNumber:    row[15],
		PostalCode:     row[16],
		City:           row[17],
		Country:        row[18],
		ModifiedBy:     row[19],
	}
	if t, err := time.Parse(repository.TimeLayout, row[20]); err == nil {
		c.ModifiedAt = t
	}
	return c
}

func (r *ContactRepository) load() ([]contact.Contact, error) {
	rows, err := r.store.readRows(contactsFile, len(contactHeader))
	if err != nil {
		return nil, err
	}
	contacts := make([]contact.Contact, 0, len(rows))
	for _, row := range rows {
		contacts = append(contacts, decodeContact(row))
	}
	return contacts, nil
}

func (r *ContactRepository) save(contacts []contact.Contact) error {
	rows := make([][]string, 0, len(contacts))
	for i := range contacts {
		rows = append(rows, encodeContact(&contacts[i]))
	}
	return r.store.writeRows(contactsFile, contactHeader, rows)
}

// Create appends a new contact
func (r *ContactRepository) Create(ctx context.Context, c *contact.Contact) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	contacts, err := r.load()
	if err != nil {
		return err
	}
	contacts = append(contacts, *c)
	return r.save(contacts)
}

// Get retrieves a contact by ID
func (r *ContactRepository) Get(ctx context.Context, id string) (*contact.Contact, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	contacts, err := r.load()
	if err != nil {
		return nil, err
	}
	for i := range contacts {
		if contacts[i].ID == id {
			return &contacts[i], nil
		}
	}
	return nil, repository.ErrNotFound
}

// FindPerson resolves a person contact by its natural key
func (r *ContactRepository) FindPerson(ctx context.Context, firstName, lastName, company string) (*contact.Contact, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	contacts, err := r.load()
	if err != nil {
		return nil, err
	}
	for i := range contacts {
		c := &contacts[i]
		if c.Kind == contact.KindPerson &&
			c.FirstName == firstName && c.LastName == lastName && c.Company == company {
			return c, nil
		}
	}
	return nil, repository.ErrNotFound
}

// FindCompany resolves a company contact by name
func (r *ContactRepository) FindCompany(ctx context.Context, name string) (*contact.Contact, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	contacts, err := r.load()
	if err != nil {
		return nil, err
	}
	for i := range contacts {
		c := &contacts[i]
		if c.Kind == contact.KindCompany && c.Company == name {
			return c, nil
		}
	}
	return nil, repository.ErrNotFound
}

// Update overwrites a contact by ID
func (r *ContactRepository) Update(ctx context.Context, c *contact.Contact) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	contacts, err := r.load()
	if err != nil {
		return err
	}
	for i := range contacts {
		if contacts[i].ID == c.ID {
			contacts[i] = *c
			return r.save(contacts)
		}
	}
	return repository.ErrNotFound
}

// List returns the filtered, ordered contact set
func (r *ContactRepository) List(ctx context.Context, filters contact.Filters, order contact.Order) ([]contact.Contact, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	contacts, err := r.load()
	if err != nil {
		return nil, err
	}

	var matched []contact.Contact
	for i := range contacts {
		if filters.Match(&contacts[i]) {
			matched = append(matched, contacts[i])
		}
	}

	switch order {
	case contact.OrderAlphabetical:
		contact.SortAlphabetical(matched)
	default:
		contact.SortByModified(matched)
	}
	return matched, nil
}

// PersonNames returns the full names of all person contacts
func (r *ContactRepository) PersonNames(ctx context.Context) ([]string, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	contacts, err := r.load()
	if err != nil {
		return nil, err
	}
	var names []string
	for i := range contacts {
		if contacts[i].Kind == contact.KindPerson {
			names = append(names, contacts[i].FullName())
		}
	}
	return names, nil
}

// CompanyNames returns the distinct non-empty company names on file
func (r *ContactRepository) CompanyNames(ctx context.Context) ([]string, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	contacts, err := r.load()
	if err != nil {
		return nil, err
	}
	seen := make(map[string]bool)
	var names []string
	for i := range contacts {
		name := contacts[i].Company
		if name != "" && !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names, nil
}
