package colleague

import "context"

// Repository provides persistence for the colleague list.
type Repository interface {
	// List returns all colleagues ordered by name.
	List(ctx context.Context) ([]Colleague, error)
	Add(ctx context.Context, c *Colleague) error
	// Remove deletes a colleague by exact name.
	Remove(ctx context.Context, name string) error
	Exists(ctx context.Context, name string) (bool, error)
}
