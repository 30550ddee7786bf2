package colleague_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/delavector/officedb/internal/domain/colleague"
	"github.com/delavector/officedb/internal/repository"
	"github.com/delavector/officedb/internal/repository/mocks"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestColleagueService_Add(t *testing.T) {
	ctx := context.Background()

	repo := &mocks.ColleagueRepository{}
	repo.On("Add", ctx, mock.Anything).Return(nil)

	svc := colleague.NewService(repo, testLogger())
	c, err := svc.Add(ctx, "  Tine ")
	require.NoError(t, err)
	require.NotEmpty(t, c.ID)
	require.Equal(t, "Tine", c.Name)
}

func TestColleagueService_Add_Duplicate(t *testing.T) {
	ctx := context.Background()

	repo := &mocks.ColleagueRepository{}
	repo.On("Add", ctx, mock.Anything).Return(repository.ErrDuplicate)

	svc := colleague.NewService(repo, testLogger())
	_, err := svc.Add(ctx, "Felix")
	require.ErrorIs(t, err, colleague.ErrColleagueExists)
}

func TestColleagueService_Add_MissingName(t *testing.T) {
	svc := colleague.NewService(&mocks.ColleagueRepository{}, testLogger())
	_, err := svc.Add(context.Background(), "   ")
	require.ErrorIs(t, err, colleague.ErrMissingName)
}

func TestColleagueService_Remove_NotFound(t *testing.T) {
	ctx := context.Background()

	repo := &mocks.ColleagueRepository{}
	repo.On("Remove", ctx, "Tine").Return(repository.ErrNotFound)

	svc := colleague.NewService(repo, testLogger())
	err := svc.Remove(ctx, "Tine")
	require.ErrorIs(t, err, colleague.ErrColleagueNotFound)
}

func TestColleagueService_EnsureDefaults_SkipsExisting(t *testing.T) {
	ctx := context.Background()

	repo := &mocks.ColleagueRepository{}
	for _, name := range colleague.DefaultNames {
		exists := name == "Felix" || name == "Kris"
		repo.On("Exists", ctx, name).Return(exists, nil)
		if !exists {
			repo.On("Add", ctx, mock.MatchedBy(func(c *colleague.Colleague) bool {
				return c.Name == name
			})).Return(nil).Once()
		}
	}

	svc := colleague.NewService(repo, testLogger())
	require.NoError(t, svc.EnsureDefaults(ctx))
	repo.AssertNumberOfCalls(t, "Add", len(colleague.DefaultNames)-2)
}
