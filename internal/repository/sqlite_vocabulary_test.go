package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/parley/internal/domain"
	"github.com/alexanderramin/parley/internal/testutil"
)

func TestVocabularyRepo_CreateAndGet(t *testing.T) {
	repo := NewSQLiteVocabularyRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	e := testutil.NewTestEntry(1, "Water", testutil.WithNative("L'eau"),
		testutil.WithCategory(domain.CategoryFood), testutil.WithImage("https://picsum.photos/id/10/150/150"))
	require.NoError(t, repo.Create(ctx, e))

	got, err := repo.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, e, got)
}

func TestVocabularyRepo_GetByID_NotFound(t *testing.T) {
	repo := NewSQLiteVocabularyRepo(testutil.NewTestDB(t))
	_, err := repo.GetByID(context.Background(), 42)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestVocabularyRepo_Create_Duplicate(t *testing.T) {
	repo := NewSQLiteVocabularyRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, testutil.NewTestEntry(1, "Coffee")))
	assert.ErrorIs(t, repo.Create(ctx, testutil.NewTestEntry(1, "Tea")), ErrDuplicate)
	assert.ErrorIs(t, repo.Create(ctx, testutil.NewTestEntry(2, "coffee")), ErrDuplicate)
}

func TestVocabularyRepo_Create_InvalidCategoryRejected(t *testing.T) {
	repo := NewSQLiteVocabularyRepo(testutil.NewTestDB(t))
	err := repo.Create(context.Background(), testutil.NewTestEntry(1, "Ball", testutil.WithCategory("Sports")))
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrDuplicate)
}

func TestVocabularyRepo_ListOrderedAndFiltered(t *testing.T) {
	repo := NewSQLiteVocabularyRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	catalog := testutil.NewTestCatalog(10)
	for i := len(catalog) - 1; i >= 0; i-- {
		require.NoError(t, repo.Create(ctx, catalog[i]))
	}

	all, err := repo.List(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, catalog, all)

	travel := domain.CategoryTravel
	filtered, err := repo.List(ctx, &travel)
	require.NoError(t, err)
	require.Len(t, filtered, 2)
	for _, e := range filtered {
		assert.Equal(t, domain.CategoryTravel, e.Category)
	}
}

func TestVocabularyRepo_CountNextIDDelete(t *testing.T) {
	repo := NewSQLiteVocabularyRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	next, err := repo.NextID(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, next)

	require.NoError(t, repo.Create(ctx, testutil.NewTestEntry(7, "Train")))
	require.NoError(t, repo.Create(ctx, testutil.NewTestEntry(3, "Car")))

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	next, err = repo.NextID(ctx)
	require.NoError(t, err)
	assert.Equal(t, 8, next)

	require.NoError(t, repo.Delete(ctx, 7))
	assert.ErrorIs(t, repo.Delete(ctx, 7), ErrNotFound)

	require.NoError(t, repo.DeleteAll(ctx))
	n, err = repo.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestDeckRepo_UpsertAndGet(t *testing.T) {
	repo := NewSQLiteDeckRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	_, err := repo.Get(ctx)
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, repo.Upsert(ctx, "Starter"))
	require.NoError(t, repo.Upsert(ctx, "Travel pack"))

	info, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Travel pack", info.Name)
	assert.False(t, info.UpdatedAt.IsZero())
}
