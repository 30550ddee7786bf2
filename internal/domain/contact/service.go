package contact

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/delavector/officedb/internal/nationalid"
	"github.com/delavector/officedb/internal/repository/repoerr"
	"github.com/delavector/officedb/internal/session"
)

// Service handles contact business logic.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService creates a new contact service.
func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// Form carries the raw field values of the person/company form. Values may
// be padded or punctuated; the service normalizes them before storage.
type Form struct {
	Kind           Kind
	Company        string
	LegalForm      string
	Salutation     string
	FirstName      string
	LastName       string
	MobileCC       string
	MobileNumber   string
	LandlineCC     string
	LandlineNumber string
	Email          string
	JobTitle       string
	NationalID     nationalid.Groups
	Street         string
	HouseNumber    string
	PostalCode     string
	City           string
	Country        string
}

// CreateRequest describes a contact creation request.
type CreateRequest struct {
	Form
	// ConfirmDuplicate acknowledges an earlier DuplicateWarning and lets the
	// save proceed anyway.
	ConfirmDuplicate bool
}

// UpdateRequest describes a contact update. The record is matched by ID
// when set, else by the natural key it had before the edit.
type UpdateRequest struct {
	ID                string
	PreviousFirstName string
	PreviousLastName  string
	PreviousCompany   string
	Form
}

func (f Form) build() *Contact {
	return &Contact{
		Kind:           f.Kind,
		Company:        f.Company,
		LegalForm:      f.LegalForm,
		Salutation:     f.Salutation,
		FirstName:      f.FirstName,
		LastName:       f.LastName,
		MobileCC:       f.MobileCC,
		MobileNumber:   f.MobileNumber,
		LandlineCC:     f.LandlineCC,
		LandlineNumber: f.LandlineNumber,
		Email:          f.Email,
		JobTitle:       f.JobTitle,
		NationalID:     f.NationalID.Compose(),
		Street:         f.Street,
		HouseNumber:    f.HouseNumber,
		PostalCode:     f.PostalCode,
		City:           f.City,
		Country:        f.Country,
	}
}

// Create validates, normalizes and stores a new contact. For persons the
// existing names are checked first: a non-nil DuplicateWarning means nothing
// was written and the operator must confirm before retrying with
// ConfirmDuplicate set. Companies are not deduplicated.
func (s *Service) Create(ctx context.Context, req CreateRequest) (*Contact, *DuplicateWarning, error) {
	user, err := session.User(ctx)
	if err != nil {
		return nil, nil, err
	}

	c := req.Form.build()
	Normalize(c)
	if err := Validate(c); err != nil {
		return nil, nil, err
	}

	if c.Kind == KindPerson && !req.ConfirmDuplicate {
		names, err := s.repo.PersonNames(ctx)
		if err != nil {
			return nil, nil, fmt.Errorf("loading person names: %w", err)
		}
		if warning := DetectDuplicate(c.FullName(), names); warning != nil {
			s.logger.Info("possible duplicate contact",
				"name", c.FullName(), "match", warning.Match, "exact", warning.Exact)
			return nil, warning, nil
		}
	}

	c.ID = uuid.NewString()
	c.ModifiedBy = user
	c.ModifiedAt = time.Now()

	if err := s.repo.Create(ctx, c); err != nil {
		return nil, nil, fmt.Errorf("creating contact: %w", err)
	}

	return c, nil, nil
}

// Update overwrites an existing contact with the submitted form values.
// No duplicate check runs on edits.
func (s *Service) Update(ctx context.Context, req UpdateRequest) (*Contact, error) {
	user, err := session.User(ctx)
	if err != nil {
		return nil, err
	}

	current, err := s.resolve(ctx, req)
	if err != nil {
		return nil, err
	}

	c := req.Form.build()
	Normalize(c)
	if err := Validate(c); err != nil {
		return nil, err
	}

	c.ID = current.ID
	c.ModifiedBy = user
	c.ModifiedAt = time.Now()

	if err := s.repo.Update(ctx, c); err != nil {
		if errors.Is(err, repoerr.ErrNotFound) {
			return nil, ErrContactNotFound
		}
		return nil, fmt.Errorf("updating contact: %w", err)
	}

	return c, nil
}

func (s *Service) resolve(ctx context.Context, req UpdateRequest) (*Contact, error) {
	var (
		current *Contact
		err     error
	)
	switch {
	case req.ID != "":
		current, err = s.repo.Get(ctx, req.ID)
	case req.Kind == KindPerson:
		current, err = s.repo.FindPerson(ctx, req.PreviousFirstName, req.PreviousLastName, req.PreviousCompany)
	case req.Kind == KindCompany:
		current, err = s.repo.FindCompany(ctx, req.PreviousCompany)
	default:
		return nil, ErrUnknownKind
	}
	if err != nil {
		if errors.Is(err, repoerr.ErrNotFound) {
			return nil, ErrContactNotFound
		}
		return nil, fmt.Errorf("resolving contact: %w", err)
	}
	return current, nil
}

// Get returns a contact by ID.
func (s *Service) Get(ctx context.Context, id string) (*Contact, error) {
	c, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repoerr.ErrNotFound) {
			return nil, ErrContactNotFound
		}
		return nil, fmt.Errorf("getting contact: %w", err)
	}
	return c, nil
}

// List returns the filtered, ordered contact set behind the search screens.
func (s *Service) List(ctx context.Context, filters Filters, order Order) ([]Contact, error) {
	return s.repo.List(ctx, filters, order)
}

// CompanyNames returns the distinct company names for the company dropdown.
func (s *Service) CompanyNames(ctx context.Context) ([]string, error) {
	return s.repo.CompanyNames(ctx)
}
