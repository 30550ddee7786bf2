package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/delavector/officedb/internal/domain/contact"
	"github.com/delavector/officedb/internal/repository"
)

// ContactRepository implements repository.ContactRepository for SQLite
type ContactRepository struct {
	db *DB
}

// NewContactRepository creates a new ContactRepository
func NewContactRepository(db *DB) *ContactRepository {
	return &ContactRepository{db: db}
}

const contactColumns = `
	id, kind, company, legal_form, salutation, first_name, last_name,
	mobile_country_code, mobile_number, landline_country_code, landline_number,
	email, job_title, national_id, street, house_number, postal_code, city,
	country, modified_by, modified_at
`

// Create inserts a new contact
func (r *ContactRepository) Create(ctx context.Context, c *contact.Contact) error {
	query := `
		INSERT INTO contacts (` + contactColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query,
		c.ID,
		c.Kind,
		c.Company,
		c.LegalForm,
		c.Salutation,
		c.FirstName,
		c.LastName,
		c.MobileCC,
		c.MobileNumber,
		c.LandlineCC,
		c.LandlineNumber,
		c.Email,
		c.JobTitle,
		c.NationalID,
		c.Street,
		c.HouseNumber,
		c.PostalCode,
		c.City,
		c.Country,
		c.ModifiedBy,
		c.ModifiedAt.Format(repository.TimeLayout),
	)

	if err != nil {
		if isUniqueViolation(err) {
			return repository.ErrDuplicate
		}
		return fmt.Errorf("failed to create contact: %w", err)
	}

	return nil
}

func scanContact(row interface{ Scan(...any) error }) (*contact.Contact, error) {
	var c contact.Contact
	var modifiedAt string
	err := row.Scan(
		&c.ID,
		&c.Kind,
		&c.Company,
		&c.LegalForm,
		&c.Salutation,
		&c.FirstName,
		&c.LastName,
		&c.MobileCC,
		&c.MobileNumber,
		&c.LandlineCC,
		&c.LandlineNumber,
		&c.Email,
		&c.JobTitle,
		&c.NationalID,
		&c.Street,
		&c.HouseNumber,
		&c.PostalCode,
		&c.City,
		&c.Country,
		&c.ModifiedBy,
		&modifiedAt,
	)
	if err != nil {
		return nil, err
	}
	if modifiedAt != "" {
		if t, err := time.Parse(repository.TimeLayout, modifiedAt); err == nil {
			c.ModifiedAt = t
		}
	}
	return &c, nil
}

// Get retrieves a contact by ID
func (r *ContactRepository) Get(ctx context.Context, id string) (*contact.Contact, error) {
	query := `SELECT ` + contactColumns + ` FROM contacts WHERE id = ?`

	c, err := scanContact(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get contact: %w", err)
	}
	return c, nil
}

// FindPerson resolves a person contact by its natural key
func (r *ContactRepository) FindPerson(ctx context.Context, firstName, lastName, company string) (*contact.Contact, error) {
	query := `
		SELECT ` + contactColumns + `
		FROM contacts
		WHERE kind = 'person' AND first_name = ? AND last_name = ? AND company = ?
		LIMIT 1
	`

	c, err := scanContact(r.db.QueryRowContext(ctx, query, firstName, lastName, company))
	if err == sql.ErrNoRows {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find person: %w", err)
	}
	return c, nil
}

// FindCompany resolves a company contact by name
func (r *ContactRepository) FindCompany(ctx context.Context, name string) (*contact.Contact, error) {
	query := `
		SELECT ` + contactColumns + `
		FROM contacts
		WHERE kind = 'company' AND company = ?
		LIMIT 1
	`

	c, err := scanContact(r.db.QueryRowContext(ctx, query, name))
	if err == sql.ErrNoRows {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find company: %w", err)
	}
	return c, nil
}

// Update overwrites a contact by ID
func (r *ContactRepository) Update(ctx context.Context, c *contact.Contact) error {
	query := `
		UPDATE contacts
		SET kind = ?, company = ?, legal_form = ?, salutation = ?,
		    first_name = ?, last_name = ?, mobile_country_code = ?,
		    mobile_number = ?, landline_country_code = ?, landline_number = ?,
		    email = ?, job_title = ?, national_id = ?, street = ?,
		    house_number = ?, postal_code = ?, city = ?, country = ?,
		    modified_by = ?, modified_at = ?
		WHERE id = ?
	`

	result, err := r.db.ExecContext(ctx, query,
		c.Kind,
		c.Company,
		c.LegalForm,
		c.Salutation,
		c.FirstName,
		c.LastName,
		c.MobileCC,
		c.MobileNumber,
		c.LandlineCC,
		c.LandlineNumber,
		c.Email,
		c.JobTitle,
		c.NationalID,
		c.Street,
		c.HouseNumber,
		c.PostalCode,
		c.City,
		c.Country,
		c.ModifiedBy,
		c.ModifiedAt.Format(repository.TimeLayout),
		c.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update contact: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if affected == 0 {
		return repository.ErrNotFound
	}

	return nil
}

// List returns the filtered, ordered contact set
func (r *ContactRepository) List(ctx context.Context, filters contact.Filters, order contact.Order) ([]contact.Contact, error) {
	query := `SELECT ` + contactColumns + ` FROM contacts`

	var conditions []string
	var args []any

	if filters.Kind != "" {
		conditions = append(conditions, "kind = ?")
		args = append(args, filters.Kind)
	}
	like := func(column, value string) {
		if value != "" {
			conditions = append(conditions, column+" LIKE ? ESCAPE '\\'")
			args = append(args, "%"+escapeLike(value)+"%")
		}
	}
	like("company", filters.Company)
	like("first_name", filters.FirstName)
	like("last_name", filters.LastName)
	like("email", filters.Email)
	like("city", filters.City)
	if filters.Keyword != "" {
		conditions = append(conditions,
			"(company || ' ' || first_name || ' ' || last_name || ' ' || email || ' ' || city) LIKE ? ESCAPE '\\'")
		args = append(args, "%"+escapeLike(filters.Keyword)+"%")
	}

	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}

	switch order {
	case contact.OrderAlphabetical:
		query += `
			ORDER BY CASE WHEN kind = 'person' THEN last_name ELSE company END COLLATE NOCASE ASC, id ASC`
	default:
		query += " ORDER BY modified_at DESC, id DESC"
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list contacts: %w", err)
	}
	defer rows.Close()

	var contacts []contact.Contact
	for rows.Next() {
		c, err := scanContact(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan contact: %w", err)
		}
		contacts = append(contacts, *c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating contact rows: %w", err)
	}

	return contacts, nil
}

// PersonNames returns the full names of all person contacts
func (r *ContactRepository) PersonNames(ctx context.Context) ([]string, error) {
	query := `
		SELECT TRIM(first_name || ' ' || last_name)
		FROM contacts
		WHERE kind = 'person'
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list person names: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("failed to scan person name: %w", err)
		}
		names = append(names, name)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating person names: %w", err)
	}

	return names, nil
}

// CompanyNames returns the distinct non-empty company names on file
func (r *ContactRepository) CompanyNames(ctx context.Context) ([]string, error) {
	query := `
		SELECT DISTINCT company
		FROM contacts
		WHERE company <> ''
		ORDER BY company
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list company names: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("failed to scan company name: %w", err)
		}
		names = append(names, name)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating company names: %w", err)
	}

	return names, nil
}

func escapeLike(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, "%", `\%`)
	s = strings.ReplaceAll(s, "_", `\_`)
	return s
}
