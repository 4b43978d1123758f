package testutil_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tuanvumaihuynh/product-store/internal/testutil"
	"github.com/tuanvumaihuynh/product-store/pkg/validator"
)

func TestFakeProduct(t *testing.T) {
	v, err := validator.NewDefaultValidator()
	require.NoError(t, err)

	for range 20 {
		product := testutil.FakeProduct()

		assert.False(t, product.Persisted())
		assert.NoError(t, v.Validate(product))
		assert.True(t, product.Price.GreaterThanOrEqual(decimal.NewFromFloat(0.5)))
		assert.True(t, product.Price.LessThanOrEqual(decimal.NewFromInt(2000)))
	}
}

func TestFakeProducts(t *testing.T) {
	products := testutil.FakeProducts(5)
	assert.Len(t, products, 5)
}
