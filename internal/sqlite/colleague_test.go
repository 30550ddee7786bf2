package sqlite_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/delavector/officedb/internal/domain/colleague"
	"github.com/delavector/officedb/internal/repository"
	"github.com/delavector/officedb/internal/sqlite"
)

func TestColleagueRepository(t *testing.T) {
	ctx := context.Background()
	repo := sqlite.NewColleagueRepository(newTestDB(t))

	require.NoError(t, repo.Add(ctx, &colleague.Colleague{ID: "1", Name: "Kris"}))
	require.NoError(t, repo.Add(ctx, &colleague.Colleague{ID: "2", Name: "Felix"}))

	err := repo.Add(ctx, &colleague.Colleague{ID: "3", Name: "Felix"})
	require.ErrorIs(t, err, repository.ErrDuplicate)

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	require.Equal(t, "Felix", list[0].Name)
	require.Equal(t, "Kris", list[1].Name)

	exists, err := repo.Exists(ctx, "Kris")
	require.NoError(t, err)
	require.True(t, exists)

	require.NoError(t, repo.Remove(ctx, "Kris"))
	require.ErrorIs(t, repo.Remove(ctx, "Kris"), repository.ErrNotFound)

	exists, err = repo.Exists(ctx, "Kris")
	require.NoError(t, err)
	require.False(t, exists)
}
