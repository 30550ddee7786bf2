// Package repository defines the store contract the core depends on. Two
// backends implement it, sqlite and csvstore; the domain services never
// branch on which one is in use.
package repository

import (
	"context"

	"github.com/delavector/officedb/internal/domain/colleague"
	"github.com/delavector/officedb/internal/domain/contact"
	"github.com/delavector/officedb/internal/domain/project"
)

// ContactRepository manages contact persistence
type ContactRepository interface {
	Create(ctx context.Context, c *contact.Contact) error
	Get(ctx context.Context, id string) (*contact.Contact, error)
	FindPerson(ctx context.Context, firstName, lastName, company string) (*contact.Contact, error)
	FindCompany(ctx context.Context, name string) (*contact.Contact, error)
	Update(ctx context.Context, c *contact.Contact) error
	List(ctx context.Context, filters contact.Filters, order contact.Order) ([]contact.Contact, error)
	PersonNames(ctx context.Context) ([]string, error)
	CompanyNames(ctx context.Context) ([]string, error)
}

// ProjectRepository manages project persistence
type ProjectRepository interface {
	Create(ctx context.Context, p *project.Project) error
	Get(ctx context.Context, id string) (*project.Project, error)
	GetByNumber(ctx context.Context, number string) (*project.Project, error)
	Update(ctx context.Context, p *project.Project) error
	List(ctx context.Context, filters project.Filters) ([]project.Project, error)
	Numbers(ctx context.Context) ([]string, error)
	NumberExists(ctx context.Context, number string) (bool, error)
}

// ColleagueRepository manages the colleague list
type ColleagueRepository interface {
	List(ctx context.Context) ([]colleague.Colleague, error)
	Add(ctx context.Context, c *colleague.Colleague) error
	Remove(ctx context.Context, name string) error
	Exists(ctx context.Context, name string) (bool, error)
}
