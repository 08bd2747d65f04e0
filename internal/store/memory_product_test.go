package store

import (
	"sync"
	"testing"

	"github.com/MKhiriev/go-product-keeper/internal/logger"
	"github.com/MKhiriev/go-product-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryProductRepository_CRUD(t *testing.T) {
	repo := NewMemoryProductRepository(logger.Nop())
	ctx := testContext()

	products, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, products)

	kit, err := repo.Create(ctx, models.ProductInput{Name: "Kit", Maker: "Kat", Price: 100})
	require.NoError(t, err)
	assert.Equal(t, models.Product{ID: 1, Name: "Kit", Maker: "Kat", Price: 100}, kit)

	phone, err := repo.Create(ctx, models.ProductInput{Name: "Phone", Maker: "Acme", Price: 500})
	require.NoError(t, err)
	assert.Equal(t, int64(2), phone.ID)

	got, err := repo.Get(ctx, kit.ID)
	require.NoError(t, err)
	assert.Equal(t, kit, got)

	updated, err := repo.Update(ctx, kit.ID, models.ProductInput{Name: "Kitty", Maker: "Kat", Price: 100})
	require.NoError(t, err)
	assert.Equal(t, models.Product{ID: 1, Name: "Kitty", Maker: "Kat", Price: 100}, updated)

	products, err = repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []models.Product{updated, phone}, products)

	require.NoError(t, repo.Delete(ctx, kit.ID))

	_, err = repo.Get(ctx, kit.ID)
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestMemoryProductRepository_NotFound(t *testing.T) {
	repo := NewMemoryProductRepository(logger.Nop())
	ctx := testContext()

	_, err := repo.Get(ctx, 1000)
	assert.ErrorIs(t, err, ErrProductNotFound)

	_, err = repo.Update(ctx, 1000, models.ProductInput{Name: "Kitty", Maker: "Kat", Price: 1})
	assert.ErrorIs(t, err, ErrProductNotFound)

	err = repo.Delete(ctx, 1000)
	assert.ErrorIs(t, err, ErrProductNotFound)

	products, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, products, "failed update must not create a product")
}

func TestMemoryProductRepository_IDsNotReused(t *testing.T) {
	repo := NewMemoryProductRepository(logger.Nop())
	ctx := testContext()

	first, err := repo.Create(ctx, models.ProductInput{Name: "a", Maker: "b", Price: 1})
	require.NoError(t, err)
	require.NoError(t, repo.Delete(ctx, first.ID))

	second, err := repo.Create(ctx, models.ProductInput{Name: "a", Maker: "b", Price: 1})
	require.NoError(t, err)

	assert.Greater(t, second.ID, first.ID)
}

func TestMemoryProductRepository_ListReturnsCopy(t *testing.T) {
	repo := NewMemoryProductRepository(logger.Nop())
	ctx := testContext()

	created, err := repo.Create(ctx, models.ProductInput{Name: "Kit", Maker: "Kat", Price: 1})
	require.NoError(t, err)

	products, err := repo.List(ctx)
	require.NoError(t, err)
	products[0].Name = "changed"

	got, err := repo.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Kit", got.Name)
}

func TestMemoryProductRepository_ConcurrentCreate(t *testing.T) {
	repo := NewMemoryProductRepository(logger.Nop())
	ctx := testContext()

	const n = 50
	var wg sync.WaitGroup
	for range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := repo.Create(ctx, models.ProductInput{Name: "Kit", Maker: "Kat", Price: 1})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	products, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, products, n)

	seen := make(map[int64]struct{}, n)
	for _, p := range products {
		seen[p.ID] = struct{}{}
	}
	assert.Len(t, seen, n)
}
