package contact

import "context"

// Order selects the listing order for List.
type Order int

const (
	// OrderModified lists most-recently-modified first.
	OrderModified Order = iota
	// OrderAlphabetical lists persons by last name and companies by company
	// name, case-insensitively.
	OrderAlphabetical
)

// Repository provides persistence for contacts.
type Repository interface {
	Create(ctx context.Context, c *Contact) error
	Get(ctx context.Context, id string) (*Contact, error)
	// FindPerson resolves a person by its natural key.
	FindPerson(ctx context.Context, firstName, lastName, company string) (*Contact, error)
	// FindCompany resolves a company by name.
	FindCompany(ctx context.Context, name string) (*Contact, error)
	Update(ctx context.Context, c *Contact) error
	List(ctx context.Context, filters Filters, order Order) ([]Contact, error)
	// PersonNames returns the "first last" full names of all persons on file.
	PersonNames(ctx context.Context) ([]string, error)
	// CompanyNames returns the distinct non-empty company names on file.
	CompanyNames(ctx context.Context) ([]string, error)
}
