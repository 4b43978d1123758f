//go:build integration

package db_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tuanvumaihuynh/product-store/internal/repository"
	"github.com/tuanvumaihuynh/product-store/internal/storage/db"
	"github.com/tuanvumaihuynh/product-store/internal/testutil"
)

func TestClientIsHealthy(t *testing.T) {
	client := testutil.SetupTestDB(t)

	healthy, err := client.IsHealthy(context.Background())
	require.NoError(t, err)
	assert.True(t, healthy)
}

func TestClientWithTx(t *testing.T) {
	client := testutil.SetupTestDB(t)
	ctx := context.Background()

	countProducts := func(t *testing.T) int64 {
		t.Helper()
		var count int64
		require.NoError(t, client.QueryRow(ctx, `SELECT COUNT(*) FROM products`).Scan(&count))
		return count
	}

	insertFake := func(tx db.DB) error {
		product := testutil.FakeProduct()
		id, err := uuid.NewV7()
		if err != nil {
			return err
		}
		product.ID = id
		product.CreatedAt = time.Now()
		product.UpdatedAt = product.CreatedAt

		return repository.NewProductRepository(client).WithDB(tx).CreateProduct(ctx, product)
	}

	t.Run("Should commit when the function succeeds", func(t *testing.T) {
		testutil.TruncateTables(t, client)

		require.NoError(t, client.WithTx(ctx, func(tx db.DB) error {
			return insertFake(tx)
		}))

		assert.Equal(t, int64(1), countProducts(t))
	})

	t.Run("Should roll back when the function fails", func(t *testing.T) {
		testutil.TruncateTables(t, client)

		boom := errors.New("boom")
		err := client.WithTx(ctx, func(tx db.DB) error {
			if err := insertFake(tx); err != nil {
				return err
			}
			return boom
		})
		require.ErrorIs(t, err, boom)

		assert.Zero(t, countProducts(t))
	})
}
