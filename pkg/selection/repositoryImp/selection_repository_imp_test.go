package repositoryImp

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rotaplan/database"
	"rotaplan/pkg/apperr"
	"rotaplan/pkg/selection/repository"
)

func newRepo(t *testing.T) repository.SelectionRepository {
	t.Helper()
	db, err := database.OpenSQLite(filepath.Join(t.TempDir(), "selections.db"))
	require.NoError(t, err)
	return New(db)
}

func TestQuota_MissingRowIsZero(t *testing.T) {
	q, err := newRepo(t).Quota(context.Background(), "u1", 7)
	require.NoError(t, err)
	assert.Zero(t, q)
}

func TestSetQuota_Upserts(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()

	first, err := repo.SetQuota(ctx, "u1", 7, 3)
	require.NoError(t, err)
	assert.Equal(t, 3, first.Remaining)

	second, err := repo.SetQuota(ctx, "u1", 7, 5)
	require.NoError(t, err)
	assert.Equal(t, first.SelectionID, second.SelectionID)
	assert.Equal(t, 5, second.Remaining)

	q, err := repo.Quota(ctx, "u1", 7)
	require.NoError(t, err)
	assert.Equal(t, 5, q)

	other, err := repo.Quota(ctx, "u2", 7)
	require.NoError(t, err)
	assert.Zero(t, other)
}

func TestConsume(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()
	_, err := repo.SetQuota(ctx, "u1", 3, 2)
	require.NoError(t, err)

	s, err := repo.Consume(ctx, "u1", 3)
	require.NoError(t, err)
	assert.Equal(t, 1, s.Remaining)
	s, err = repo.Consume(ctx, "u1", 3)
	require.NoError(t, err)
	assert.Equal(t, 0, s.Remaining)

	_, err = repo.Consume(ctx, "u1", 3)
	assert.ErrorIs(t, err, apperr.ErrInvalidRequest)

	_, err = repo.Consume(ctx, "u1", 99)
	assert.ErrorIs(t, err, apperr.ErrInvalidRequest)
}

func TestListByUser(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()
	for _, id := range []uint{9, 2, 5} {
		_, err := repo.SetQuota(ctx, "u1", id, int(id))
		require.NoError(t, err)
	}
	_, err := repo.SetQuota(ctx, "u2", 1, 1)
	require.NoError(t, err)

	list, err := repo.ListByUser(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, uint(2), list[0].CropID)
	assert.Equal(t, uint(9), list[2].CropID)
}
