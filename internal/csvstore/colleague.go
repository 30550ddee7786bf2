package csvstore

import (
	"context"
	"sort"

	"github.com/delavector/officedb/internal/domain/colleague"
	"github.com/delavector/officedb/internal/repository"
)

const colleaguesFile = "colleagues.csv"

var colleagueHeader = []string{"id", "name"}

// ColleagueRepository implements repository.ColleagueRepository over colleagues.csv
type ColleagueRepository struct {
	store *Store
}

// NewColleagueRepository creates a new ColleagueRepository
func NewColleagueRepository(store *Store) *ColleagueRepository {
	return &ColleagueRepository{store: store}
}

func (r *ColleagueRepository) load() ([]colleague.Colleague, error) {
	rows, err := r.store.readRows(colleaguesFile, len(colleagueHeader))
	if err != nil {
		return nil, err
	}
	colleagues := make([]colleague.Colleague, 0, len(rows))
	for _, row := range rows {
		colleagues = append(colleagues, colleague.Colleague{ID: row[0], Name: row[1]})
	}
	return colleagues, nil
}

func (r *ColleagueRepository) save(colleagues []colleague.Colleague) error {
	rows := make([][]string, 0, len(colleagues))
	for _, c := range colleagues {
		rows = append(rows, []string{c.ID, c.Name})
	}
	return r.store.writeRows(colleaguesFile, colleagueHeader, rows)
}

// List returns all colleagues ordered by name
func (r *ColleagueRepository) List(ctx context.Context) ([]colleague.Colleague, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	colleagues, err := r.load()
	if err != nil {
		return nil, err
	}
	sort.Slice(colleagues, func(i, j int) bool {
		return colleagues[i].Name < colleagues[j].Name
	})
	return colleagues, nil
}

// Add appends a colleague, rejecting duplicate names
func (r *ColleagueRepository) Add(ctx context.Context, c *colleague.Colleague) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	colleagues, err := r.load()
	if err != nil {
		return err
	}
	for i := range colleagues {
		if colleagues[i].Name == c.Name {
			return repository.ErrDuplicate
		}
	}
	colleagues = append(colleagues, *c)
	return r.save(colleagues)
}

// Remove deletes a colleague by exact name
func (r *ColleagueRepository) Remove(ctx context.Context, name string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	colleagues, err := r.load()
	if err != nil {
		return err
	}
	for i := range colleagues {
		if colleagues[i].Name == name {
			colleagues = append(colleagues[:i], colleagues[i+1:]...)
			return r.save(colleagues)
		}
	}
	return repository.ErrNotFound
}

// Exists reports whether a colleague with the exact name is on file
func (r *ColleagueRepository) Exists(ctx context.Context, name string) (bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	colleagues, err := r.load()
	if err != nil {
		return false, err
	}
	for i := range colleagues {
		if colleagues[i].Name == name {
			return true, nil
		}
	}
	return false, nil
}
