package project

import "context"

// Repository provides persistence for projects.
type Repository interface {
	Create(ctx context.Context, p *Project) error
	Get(ctx context.Context, id string) (*Project, error)
	GetByNumber(ctx context.Context, number string) (*Project, error)
	Update(ctx context.Context, p *Project) error
	List(ctx context.Context, filters Filters) ([]Project, error)
	// Numbers returns every project number on file, across both bureaus.
	Numbers(ctx context.Context) ([]string, error)
	// NumberExists reports whether the exact number is already taken.
	NumberExists(ctx context.Context, number string) (bool, error)
}
