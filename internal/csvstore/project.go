package csvstore

import (
	"context"
	"time"

	"github.com/delavector/officedb/internal/domain/project"
	"github.com/delavector/officedb/internal/repository"
)

const projectsFile = "projects.csv"

var projectHeader = []string{
	"id", "bureau", "project_number", "linked_project_number", "client",
	"project_name", "address", "project_type", "status", "modified_by",
	"modified_at",
}

// ProjectRepository implements repository.ProjectRepository over projects.csv
type ProjectRepository struct {
	store *Store
}

// NewProjectRepository creates a new ProjectRepository
func NewProjectRepository(store *Store) *ProjectRepository {
	return &ProjectRepository{store: store}
}

func encodeProject(p *project.Project) []string {
	return []string{
		p.ID, string(p.Bureau), p.Number, p.LinkedNumber, p.Client,
		p.Name, p.Address, p.Type, p.Status, p.ModifiedBy,
		p.ModifiedAt.Format(repository.TimeLayout),
	}
}

func decodeProject(row []string) project.Project {
	p := project.Project{
		ID:           row[0],
		Bureau:       project.Bureau(row[1]),
		Number:       row[2],
		LinkedNumber: row[3],
		Client:       row[4],
		Name:         row[5],
		Address:      row[6],
		Type:         row[7],
		Status:       row[8],
		ModifiedBy:   row[9],
	}
	if t, err := time.Parse(repository.TimeLayout, row[10]); err == nil {
		p.ModifiedAt = t
	}
	return p
}

func (r *ProjectRepository) load() ([]project.Project, error) {
	rows, err := r.store.readRows(projectsFile, len(projectHeader))
	if err != nil {
		return nil, err
	}
	projects := make([]project.Project, 0, len(rows))
	for _, row := range rows {
		projects = append(projects, decodeProject(row))
	}
	return projects, nil
}

func (r *ProjectRepository) save(projects []project.Project) error {
	rows := make([][]string, 0, len(projects))
	for i := range projects {
		rows = append(rows, encodeProject(&projects[i]))
	}
	return r.store.writeRows(projectsFile, projectHeader, rows)
}

// Create appends a new project, enforcing number uniqueness
func (r *ProjectRepository) Create(ctx context.Context, p *project.Project) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	projects, err := r.load()
	if err != nil {
		return err
	}
	for i := range projects {
		if projects[i].Number == p.Number {
			return repository.ErrDuplicate
		}
	}
	projects = append(projects, *p)
	return r.save(projects)
}

// Get retrieves a project by ID
func (r *ProjectRepository) Get(ctx context.Context, id string) (*project.Project, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	projects, err := r.load()
	if err != nil {
		return nil, err
	}
	for i := range projects {
		if projects[i].ID == id {
			return &projects[i], nil
		}
	}
	return nil, repository.ErrNotFound
}

// GetByNumber retrieves a project by its project number
func (r *ProjectRepository) GetByNumber(ctx context.Context, number string) (*project.Project, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	projects, err := r.load()
	if err != nil {
		return nil, err
	}
	for i := range projects {
		if projects[i].Number == number {
			return &projects[i], nil
		}
	}
	return nil, repository.ErrNotFound
}

// Update overwrites a project by ID
func (r *ProjectRepository) Update(ctx context.Context, p *project.Project) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	projects, err := r.load()
	if err != nil {
		return err
	}
	for i := range projects {
		if projects[i].ID == p.ID {
			projects[i] = *p
			return r.save(projects)
		}
	}
	return repository.ErrNotFound
}

// List returns the filtered project set, most-recently-modified first
func (r *ProjectRepository) List(ctx context.Context, filters project.Filters) ([]project.Project, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	projects, err := r.load()
	if err != nil {
		return nil, err
	}

	var matched []project.Project
	for i := range projects {
		if filters.Match(&projects[i]) {
			matched = append(matched, projects[i])
		}
	}
	project.SortByModified(matched)
	return matched, nil
}

// Numbers returns every project number on file
func (r *ProjectRepository) Numbers(ctx context.Context) ([]string, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	projects, err := r.load()
	if err != nil {
		return nil, err
	}
	numbers := make([]string, 0, len(projects))
	for i := range projects {
		numbers = append(numbers, projects[i].Number)
	}
	return numbers, nil
}

// NumberExists reports whether the exact project number is already taken
func (r *ProjectRepository) NumberExists(ctx context.Context, number string) (bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	projects, err := r.load()
	if err != nil {
		return false, err
	}
	for i := range projects {
		if projects[i].Number == number {
			return true, nil
		}
	}
	return false, nil
}
