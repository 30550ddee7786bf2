package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/delavector/officedb/internal/domain/project"
	"github.com/delavector/officedb/internal/repository"
)

// ProjectRepository implements repository.ProjectRepository for SQLite
type ProjectRepository struct {
	db *DB
}

// NewProjectRepository creates a new ProjectRepository
func NewProjectRepository(db *DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

const projectColumns = `
	id, bureau, project_number, linked_project_number, client, project_name,
	address, project_type, status, modified_by, modified_at
`

// Create inserts a new project. The project number carries a UNIQUE
// constraint, so a lost race on the number surfaces as ErrDuplicate.
func (r *ProjectRepository) Create(ctx context.Context, p *project.Project) error {
	query := `
		INSERT INTO projects (` + projectColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query,
		p.ID,
		p.Bureau,
		p.Number,
		p.LinkedNumber,
		p.Client,
		p.Name,
		p.Address,
		p.Type,
		p.Status,
		p.ModifiedBy,
		p.ModifiedAt.Format(repository.TimeLayout),
	)

	if err != nil {
		if isUniqueViolation(err) {
			return repository.ErrDuplicate
		}
		return fmt.Errorf("failed to create project: %w", err)
	}

	return nil
}

func scanProject(row interface{ Scan(...any) error }) (*project.Project, error) {
	var p project.Project
	var modifiedAt string
	err := row.Scan(
		&p.ID,
		&p.Bureau,
		&p.Number,
		&p.LinkedNumber,
		&p.Client,
		&p.Name,
		&p.Address,
		&p.Type,
		&p.Status,
		&p.ModifiedBy,
		&modifiedAt,
	)
	if err != nil {
		return nil, err
	}
	if modifiedAt != "" {
		if t, err := time.Parse(repository.TimeLayout, modifiedAt); err == nil {
			p.ModifiedAt = t
		}
	}
	return &p, nil
}

// Get retrieves a project by ID
func (r *ProjectRepository) Get(ctx context.Context, id string) (*project.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects WHERE id = ?`

	p, err := scanProject(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get project: %w", err)
	}
	return p, nil
}

// GetByNumber retrieves a project by its project number
func (r *ProjectRepository) GetByNumber(ctx context.Context, number string) (*project.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects WHERE project_number = ?`

	p, err := scanProject(r.db.QueryRowContext(ctx, query, number))
	if err == sql.ErrNoRows {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get project: %w", err)
	}
	return p, nil
}

// Update overwrites a project by ID
func (r *ProjectRepository) Update(ctx context.Context, p *project.Project) error {
	query := `
		UPDATE projects
		SET linked_project_number = ?, client = ?, project_name = ?,
		    address = ?, project_type = ?, status = ?,
		    modified_by = ?, modified_at = ?
		WHERE id = ?
	`

	result, err := r.db.ExecContext(ctx, query,
		p.LinkedNumber,
		p.Client,
		p.Name,
		p.Address,
		p.Type,
		p.Status,
		p.ModifiedBy,
		p.ModifiedAt.Format(repository.TimeLayout),
		p.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update project: %w", err)
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

// List returns the filtered project set, most-recently-modified first
func (r *ProjectRepository) List(ctx context.Context, filters project.Filters) ([]project.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects`

	var conditions []string
	var args []any

	like := func(column, value string) {
		if value != "" {
			conditions = append(conditions, column+" LIKE ? ESCAPE '\\'")
			args = append(args, "%"+escapeLike(value)+"%")
		}
	}
	like("bureau", filters.Bureau)
	like("project_number", filters.Number)
	like("client", filters.Client)
	like("project_name", filters.Name)
	like("address", filters.Address)
	like("status", filters.Status)

	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY modified_at DESC, id DESC"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	defer rows.Close()

	var projects []project.Project
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan project: %w", err)
		}
		projects = append(projects, *p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating project rows: %w", err)
	}

	return projects, nil
}

// Numbers returns every project number on file
func (r *ProjectRepository) Numbers(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT project_number FROM projects`)
	if err != nil {
		return nil, fmt.Errorf("failed to list project numbers: %w", err)
	}
	defer rows.Close()

	var numbers []string
	for rows.Next() {
		var number string
		if err := rows.Scan(&number); err != nil {
			return nil, fmt.Errorf("failed to scan project number: %w", err)
		}
		numbers = append(numbers, number)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating project numbers: %w", err)
	}

	return numbers, nil
}

// NumberExists reports whether the exact project number is already taken
func (r *ProjectRepository) NumberExists(ctx context.Context, number string) (bool, error) {
	var one int
	err := r.db.QueryRowContext(ctx,
		`SELECT 1 FROM projects WHERE project_number = ?`, number).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to check project number: %w", err)
	}
	return true, nil
}
