package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/delavector/officedb/internal/domain/colleague"
	"github.com/delavector/officedb/internal/repository"
)

// ColleagueRepository implements repository.ColleagueRepository for SQLite
type ColleagueRepository struct {
	db *DB
}

// NewColleagueRepository creates a new ColleagueRepository
func NewColleagueRepository(db *DB) *ColleagueRepository {
	return &ColleagueRepository{db: db}
}

// List returns all colleagues ordered by name
func (r *ColleagueRepository) List(ctx context.Context) ([]colleague.Colleague, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name FROM colleagues ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to list colleagues: %w", err)
	}
	defer rows.Close()

	var colleagues []colleague.Colleague
	for rows.Next() {
		var c colleague.Colleague
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, fmt.Errorf("failed to scan colleague: %w", err)
		}
		colleagues = append(colleagues, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating colleague rows: %w", err)
	}

	return colleagues, nil
}

// Add inserts a new colleague. Names are unique.
func (r *ColleagueRepository) Add(ctx context.Context, c *colleague.Colleague) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO colleagues (id, name) VALUES (?, ?)`, c.ID, c.Name)
	if err != nil {
		if isUniqueViolation(err) {
			return repository.ErrDuplicate
		}
		return fmt.Errorf("failed to add colleague: %w", err)
	}
	return nil
}

// Remove deletes a colleague by exact name
func (r *ColleagueRepository) Remove(ctx context.Context, name string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM colleagues WHERE name = ?`, name)
	if err != nil {
		return fmt.Errorf("failed to remove colleague: %w", err)
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

// Exists reports whether a colleague with the exact name is on the list
func (r *ColleagueRepository) Exists(ctx context.Context, name string) (bool, error) {
	var one int
	err := r.db.QueryRowContext(ctx,
		`SELECT 1 FROM colleagues WHERE name = ?`, name).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to check colleague: %w", err)
	}
	return true, nil
}
