// Package mocks provides testify mocks for the repository interfaces.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/delavector/officedb/internal/domain/colleague"
	"github.com/delavector/officedb/internal/domain/contact"
	"github.com/delavector/officedb/internal/domain/project"
)

// ContactRepository is a mock for repository.ContactRepository.
type ContactRepository struct {
	mock.Mock
}

func (m *ContactRepository) Create(ctx context.Context, c *contact.Contact) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *ContactRepository) Get(ctx context.Context, id string) (*contact.Contact, error) {
	args := m.Called(ctx, id)
	if c, ok := args.Get(0).(*contact.Contact); ok {
		return c, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ContactRepository) FindPerson(ctx context.Context, firstName, lastName, company string) (*contact.Contact, error) {
	args := m.Called(ctx, firstName, lastName, company)
	if c, ok := args.Get(0).(*contact.Contact); ok {
		return c, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ContactRepository) FindCompany(ctx context.Context, name string) (*contact.Contact, error) {
	args := m.Called(ctx, name)
	if c, ok := args.Get(0).(*contact.Contact); ok {
		return c, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ContactRepository) Update(ctx context.Context, c *contact.Contact) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *ContactRepository) List(ctx context.Context, filters contact.Filters, order contact.Order) ([]contact.Contact, error) {
	args := m.Called(ctx, filters, order)
	if list, ok := args.Get(0).([]contact.Contact); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ContactRepository) PersonNames(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if names, ok := args.Get(0).([]string); ok {
		return names, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ContactRepository) CompanyNames(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if names, ok := args.Get(0).([]string); ok {
		return names, args.Error(1)
	}
	return nil, args.Error(1)
}

// ProjectRepository is a mock for repository.ProjectRepository.
type ProjectRepository struct {
	mock.Mock
}

func (m *ProjectRepository) Create(ctx context.Context, p *project.Project) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *ProjectRepository) Get(ctx context.Context, id string) (*project.Project, error) {
	args := m.Called(ctx, id)
	if p, ok := args.Get(0).(*project.Project); ok {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ProjectRepository) GetByNumber(ctx context.Context, number string) (*project.Project, error) {
	args := m.Called(ctx, number)
	if p, ok := args.Get(0).(*project.Project); ok {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ProjectRepository) Update(ctx context.Context, p *project.Project) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *ProjectRepository) List(ctx context.Context, filters project.Filters) ([]project.Project, error) {
	args := m.Called(ctx, filters)
	if list, ok := args.Get(0).([]project.Project); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ProjectRepository) Numbers(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if numbers, ok := args.Get(0).([]string); ok {
		return numbers, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ProjectRepository) NumberExists(ctx context.Context, number string) (bool, error) {
	args := m.Called(ctx, number)
	return args.Bool(0), args.Error(1)
}

// ColleagueRepository is a mock for repository.ColleagueRepository.
type ColleagueRepository struct {
	mock.Mock
}

func (m *ColleagueRepository) List(ctx context.Context) ([]colleague.Colleague, error) {
	args := m.Called(ctx)
	if list, ok := args.Get(0).([]colleague.Colleague); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ColleagueRepository) Add(ctx context.Context, c *colleague.Colleague) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *ColleagueRepository) Remove(ctx context.Context, name string) error {
	args := m.Called(ctx, name)
	return args.Error(0)
}

func (m *ColleagueRepository) Exists(ctx context.Context, name string) (bool, error) {
	args := m.Called(ctx, name)
	return args.Bool(0), args.Error(1)
}
