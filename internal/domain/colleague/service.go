package colleague

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/delavector/officedb/internal/repository/repoerr"
)

// Service handles the colleague list shown on the login screen.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService creates a new colleague service.
func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// List returns all colleagues ordered by name.
func (s *Service) List(ctx context.Context) ([]Colleague, error) {
	return s.repo.List(ctx)
}

// Add puts a new name on the list. Names are unique.
func (s *Service) Add(ctx context.Context, name string) (*Colleague, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrMissingName
	}

	c := &Colleague{ID: uuid.NewString(), Name: name}
	if err := s.repo.Add(ctx, c); err != nil {
		if errors.Is(err, repoerr.ErrDuplicate) {
			return nil, ErrColleagueExists
		}
		return nil, fmt.Errorf("adding colleague: %w", err)
	}
	return c, nil
}

// Remove deletes a colleague by exact name.
func (s *Service) Remove(ctx context.Context, name string) error {
	if err := s.repo.Remove(ctx, strings.TrimSpace(name)); err != nil {
		if errors.Is(err, repoerr.ErrNotFound) {
			return ErrColleagueNotFound
		}
		return fmt.Errorf("removing colleague: %w", err)
	}
	return nil
}

// EnsureDefaults seeds the default names, skipping any already present.
func (s *Service) EnsureDefaults(ctx context.Context) error {
	for _, name := range DefaultNames {
		exists, err := s.repo.Exists(ctx, name)
		if err != nil {
			return fmt.Errorf("checking colleague %q: %w", name, err)
		}
		if exists {
			continue
		}
		if err := s.repo.Add(ctx, &Colleague{ID: uuid.NewString(), Name: name}); err != nil {
			if errors.Is(err, repoerr.ErrDuplicate) {
				continue
			}
			return fmt.Errorf("seeding colleague %q: %w", name, err)
		}
		s.logger.Info("seeded colleague", "name", name)
	}
	return nil
}
