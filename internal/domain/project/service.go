package project

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/delavector/officedb/internal/repository/repoerr"
	"github.com/delavector/officedb/internal/session"
)

// Service handles project business logic.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService creates a new project service.
func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// CreateRequest carries the wizard's field values. The number is usually
// the allocator's suggestion but the operator may have typed another one.
type CreateRequest struct {
	Bureau       Bureau
	Number       string
	LinkedNumber string
	Client       string
	Name         string
	Street       string
	HouseNumber  string
	PostalCode   string
	City         string
	Type         string
	Status       string
}

// UpdateRequest carries the edit form's field values. Bureau and project
// number are immutable and therefore absent; the record is matched by ID.
type UpdateRequest struct {
	ID           string
	LinkedNumber string
	Client       string
	Name         string
	Address      string
	Type         string
	Status       string
}

// SuggestNumber returns the next free bare-numeric project number.
func (s *Service) SuggestNumber(ctx context.Context) (string, error) {
	numbers, err := s.repo.Numbers(ctx)
	if err != nil {
		return "", fmt.Errorf("loading project numbers: %w", err)
	}
	return NextNumber(numbers), nil
}

// Create validates and stores a new project. The number must be non-empty
// and unused across all projects of both bureaus; the linked number is
// normalized to the counterpart bureau's shape.
func (s *Service) Create(ctx context.Context, req CreateRequest) (*Project, error) {
	user, err := session.User(ctx)
	if err != nil {
		return nil, err
	}

	if req.Bureau != BureauDelafontaine && req.Bureau != BureauVector {
		return nil, ErrUnknownBureau
	}

	number := strings.TrimSpace(req.Number)
	if number == "" {
		return nil, ErrMissingNumber
	}
	taken, err := s.repo.NumberExists(ctx, number)
	if err != nil {
		return nil, fmt.Errorf("checking project number: %w", err)
	}
	if taken {
		return nil, ErrNumberTaken
	}

	linked, err := NormalizeLinkedNumber(req.Bureau, req.LinkedNumber)
	if err != nil {
		return nil, err
	}

	status := strings.TrimSpace(req.Status)
	if status == "" {
		status = DefaultStatus
	}

	p := &Project{
		ID:           uuid.NewString(),
		Bureau:       req.Bureau,
		Number:       number,
		LinkedNumber: linked,
		Client:       strings.TrimSpace(req.Client),
		Name:         strings.TrimSpace(req.Name),
		Address:      ComposeAddress(req.Street, req.HouseNumber, req.PostalCode, req.City),
		Type:         strings.TrimSpace(req.Type),
		Status:       status,
		ModifiedBy:   user,
		ModifiedAt:   time.Now(),
	}

	if err := s.repo.Create(ctx, p); err != nil {
		// another writer may have claimed the number between the check
		// and the insert
		if errors.Is(err, repoerr.ErrDuplicate) {
			return nil, ErrNumberTaken
		}
		return nil, fmt.Errorf("creating project: %w", err)
	}

	return p, nil
}

// Update overwrites every mutable field of an existing project. Bureau and
// project number keep their stored values.
func (s *Service) Update(ctx context.Context, req UpdateRequest) (*Project, error) {
	user, err := session.User(ctx)
	if err != nil {
		return nil, err
	}
	if req.ID == "" {
		return nil, ErrInvalidInput
	}

	current, err := s.repo.Get(ctx, req.ID)
	if err != nil {
		if errors.Is(err, repoerr.ErrNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("loading project: %w", err)
	}

	linked, err := NormalizeLinkedNumber(current.Bureau, req.LinkedNumber)
	if err != nil {
		return nil, err
	}

	updated := *current
	updated.LinkedNumber = linked
	updated.Client = strings.TrimSpace(req.Client)
	updated.Name = strings.TrimSpace(req.Name)
	updated.Address = strings.TrimSpace(req.Address)
	updated.Type = strings.TrimSpace(req.Type)
	updated.Status = strings.TrimSpace(req.Status)
	updated.ModifiedBy = user
	updated.ModifiedAt = time.Now()

	if err := s.repo.Update(ctx, &updated); err != nil {
		if errors.Is(err, repoerr.ErrNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("updating project: %w", err)
	}

	return &updated, nil
}

// Get returns a project by ID.
func (s *Service) Get(ctx context.Context, id string) (*Project, error) {
	p, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repoerr.ErrNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("getting project: %w", err)
	}
	return p, nil
}

// GetByNumber returns a project by its project number.
func (s *Service) GetByNumber(ctx context.Context, number string) (*Project, error) {
	p, err := s.repo.GetByNumber(ctx, strings.TrimSpace(number))
	if err != nil {
		if errors.Is(err, repoerr.ErrNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("getting project: %w", err)
	}
	return p, nil
}

// List returns the filtered project set, most-recently-modified first.
func (s *Service) List(ctx context.Context, filters Filters) ([]Project, error) {
	return s.repo.List(ctx, filters)
}
