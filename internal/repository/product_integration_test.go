//go:build integration

package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tuanvumaihuynh/product-store/internal/apperr"
	"github.com/tuanvumaihuynh/product-store/internal/model"
	"github.com/tuanvumaihuynh/product-store/internal/repository"
	"github.com/tuanvumaihuynh/product-store/internal/testutil"
	"github.com/tuanvumaihuynh/product-store/pkg/zerror"
)

// persistable stamps a fake product with the fields the service layer
// normally assigns before it reaches the repository.
func persistable(t *testing.T, product model.Product) model.Product {
	t.Helper()

	id, err := uuid.NewV7()
	require.NoError(t, err)

	now := time.Now()
	product.ID = id
	product.CreatedAt = now
	product.UpdatedAt = now

	return product
}

func assertSameProduct(t *testing.T, want, got model.Product) {
	t.Helper()

	assert.Equal(t, want.ID, got.ID)
	assert.Equal(t, want.Name, got.Name)
	assert.Equal(t, want.Description, got.Description)
	assert.True(t, want.Price.Equal(got.Price), "price %s != %s", want.Price, got.Price)
	assert.Equal(t, want.Available, got.Available)
	assert.Equal(t, want.Category, got.Category)
	assert.WithinDuration(t, want.CreatedAt, got.CreatedAt, time.Second)
	assert.WithinDuration(t, want.UpdatedAt, got.UpdatedAt, time.Second)
}

func TestProductRepository_CreateAndGet(t *testing.T) {
	client := testutil.SetupTestDB(t)
	repo := repository.NewProductRepository(client)
	ctx := context.Background()

	product := persistable(t, testutil.FakeProduct())
	require.NoError(t, repo.CreateProduct(ctx, product))

	got, err := repo.GetProduct(ctx, product.ID)
	require.NoError(t, err)
	assertSameProduct(t, product, got)
}

func TestProductRepository_GetMissing(t *testing.T) {
	client := testutil.SetupTestDB(t)
	repo := repository.NewProductRepository(client)

	_, err := repo.GetProduct(context.Background(), uuid.New())

	var zerr zerror.ZError
	require.ErrorAs(t, err, &zerr)
	assert.Equal(t, apperr.ProductNotFoundCode, zerr.Code())
}

func TestProductRepository_Update(t *testing.T) {
	client := testutil.SetupTestDB(t)
	repo := repository.NewProductRepository(client)
	ctx := context.Background()

	product := persistable(t, testutil.FakeProduct())
	require.NoError(t, repo.CreateProduct(ctx, product))

	product.Description = "This has been updated"
	require.NoError(t, repo.UpdateProduct(ctx, product))

	// only the changed field differs, the identifier is preserved
	products, err := repo.ListAllProducts(ctx)
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, product.ID, products[0].ID)
	assert.Equal(t, "This has been updated", products[0].Description)
	assert.Equal(t, product.Name, products[0].Name)
	assert.True(t, product.Price.Equal(products[0].Price))
}

func TestProductRepository_Delete(t *testing.T) {
	client := testutil.SetupTestDB(t)
	repo := repository.NewProductRepository(client)
	ctx := context.Background()

	product := persistable(t, testutil.FakeProduct())
	require.NoError(t, repo.CreateProduct(ctx, product))

	products, err := repo.ListAllProducts(ctx)
	require.NoError(t, err)
	require.Len(t, products, 1)

	require.NoError(t, repo.DeleteProduct(ctx, product.ID))

	products, err = repo.ListAllProducts(ctx)
	require.NoError(t, err)
	assert.Empty(t, products)

	_, err = repo.GetProduct(ctx, product.ID)
	assert.Error(t, err)

	// deleting again reports the row as gone
	err = repo.DeleteProduct(ctx, product.ID)
	var zerr zerror.ZError
	require.ErrorAs(t, err, &zerr)
	assert.Equal(t, apperr.ProductNotFoundCode, zerr.Code())
}

func TestProductRepository_ListAll(t *testing.T) {
	client := testutil.SetupTestDB(t)
	repo := repository.NewProductRepository(client)
	ctx := context.Background()

	products, err := repo.ListAllProducts(ctx)
	require.NoError(t, err)
	assert.Empty(t, products)

	for _, product := range testutil.FakeProducts(5) {
		require.NoError(t, repo.CreateProduct(ctx, persistable(t, product)))
	}

	products, err = repo.ListAllProducts(ctx)
	require.NoError(t, err)
	assert.Len(t, products, 5)
}

func TestProductRepository_FindByName(t *testing.T) {
	client := testutil.SetupTestDB(t)
	repo := repository.NewProductRepository(client)
	ctx := context.Background()

	fixtures := testutil.FakeProducts(5)
	for _, product := range fixtures {
		require.NoError(t, repo.CreateProduct(ctx, persistable(t, product)))
	}

	name := fixtures[0].Name
	var want int64
	for _, product := range fixtures {
		if product.Name == name {
			want++
		}
	}

	query := repo.FindByName(name)

	count, err := query.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, count)

	found, err := query.All(ctx)
	require.NoError(t, err)
	require.Len(t, found, int(want))
	for _, product := range found {
		assert.Equal(t, name, product.Name)
	}
}

func TestProductRepository_FindByAvailability(t *testing.T) {
	client := testutil.SetupTestDB(t)
	repo := repository.NewProductRepository(client)
	ctx := context.Background()

	fixtures := testutil.FakeProducts(10)
	for _, product := range fixtures {
		require.NoError(t, repo.CreateProduct(ctx, persistable(t, product)))
	}

	available := fixtures[0].Available
	var want int64
	for _, product := range fixtures {
		if product.Available == available {
			want++
		}
	}

	query := repo.FindByAvailability(available)

	count, err := query.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, count)

	found, err := query.All(ctx)
	require.NoError(t, err)
	require.Len(t, found, int(want))
	for _, product := range found {
		assert.Equal(t, available, product.Available)
	}
}

func TestProductRepository_FindByCategory(t *testing.T) {
	client := testutil.SetupTestDB(t)
	repo := repository.NewProductRepository(client)
	ctx := context.Background()

	fixtures := testutil.FakeProducts(10)
	for _, product := range fixtures {
		require.NoError(t, repo.CreateProduct(ctx, persistable(t, product)))
	}

	category := fixtures[0].Category
	var want int64
	for _, product := range fixtures {
		if product.Category == category {
			want++
		}
	}

	query := repo.FindByCategory(category)

	count, err := query.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, count)

	found, err := query.All(ctx)
	require.NoError(t, err)
	require.Len(t, found, int(want))
	for _, product := range found {
		assert.Equal(t, category, product.Category)
	}
}

func TestProductQuery_IsLazy(t *testing.T) {
	client := testutil.SetupTestDB(t)
	repo := repository.NewProductRepository(client)
	ctx := context.Background()

	// build the query before any matching row exists
	query := repo.FindByName("Fedora")

	count, err := query.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)

	product := persistable(t, testutil.FakeProduct())
	product.Name = "Fedora"
	require.NoError(t, repo.CreateProduct(ctx, product))

	count, err = query.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}
