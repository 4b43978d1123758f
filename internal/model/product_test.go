package model_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tuanvumaihuynh/product-store/internal/apperr"
	"github.com/tuanvumaihuynh/product-store/internal/model"
	"github.com/tuanvumaihuynh/product-store/pkg/zerror"
)

func assertValidationFailed(t *testing.T, err error) {
	t.Helper()

	var zerr zerror.ZError
	require.ErrorAs(t, err, &zerr)
	assert.Equal(t, apperr.ValidationErrorCode, zerr.Code())
}

func TestProductPersisted(t *testing.T) {
	t.Run("Should report unpersisted before an id is assigned", func(t *testing.T) {
		product := model.Product{Name: "Fedora"}
		assert.False(t, product.Persisted())
	})

	t.Run("Should report persisted once an id is assigned", func(t *testing.T) {
		id, err := uuid.NewV7()
		require.NoError(t, err)

		product := model.Product{ID: id, Name: "Fedora"}
		assert.True(t, product.Persisted())
	})
}

func TestProductSerialize(t *testing.T) {
	product := model.Product{
		Name:        "Fedora",
		Description: "A red hat",
		Price:       decimal.RequireFromString("12.50"),
		Available:   true,
		Category:    model.CategoryCloths,
	}

	t.Run("Should serialize an unpersisted product with a nil id", func(t *testing.T) {
		data := product.Serialize()

		assert.Nil(t, data["id"])
		assert.Equal(t, "Fedora", data["name"])
		assert.Equal(t, "A red hat", data["description"])
		assert.Equal(t, "12.5", data["price"])
		assert.Equal(t, true, data["available"])
		assert.Equal(t, "CLOTHS", data["category"])
	})

	t.Run("Should serialize the id of a persisted product", func(t *testing.T) {
		persisted := product
		persisted.ID = uuid.New()

		data := persisted.Serialize()
		assert.Equal(t, persisted.ID.String(), data["id"])
	})
}

func TestProductDeserialize(t *testing.T) {
	validData := func() map[string]any {
		return map[string]any{
			"name":        "Fedora",
			"description": "A red hat",
			"price":       "12.50",
			"available":   true,
			"category":    "CLOTHS",
		}
	}

	t.Run("Should deserialize a valid map", func(t *testing.T) {
		var product model.Product
		require.NoError(t, product.Deserialize(validData()))

		assert.Equal(t, uuid.Nil, product.ID)
		assert.Equal(t, "Fedora", product.Name)
		assert.Equal(t, "A red hat", product.Description)
		assert.True(t, product.Price.Equal(decimal.RequireFromString("12.50")))
		assert.True(t, product.Available)
		assert.Equal(t, model.CategoryCloths, product.Category)
	})

	t.Run("Should round trip through Serialize", func(t *testing.T) {
		original := model.Product{
			ID:          uuid.New(),
			Name:        "Wrench",
			Description: "A box wrench",
			Price:       decimal.RequireFromString("19.99"),
			Available:   false,
			Category:    model.CategoryTools,
		}

		var restored model.Product
		require.NoError(t, restored.Deserialize(original.Serialize()))

		assert.Equal(t, original.ID, restored.ID)
		assert.Equal(t, original.Name, restored.Name)
		assert.Equal(t, original.Description, restored.Description)
		assert.True(t, original.Price.Equal(restored.Price))
		assert.Equal(t, original.Available, restored.Available)
		assert.Equal(t, original.Category, restored.Category)
	})

	t.Run("Should accept a float price", func(t *testing.T) {
		data := validData()
		data["price"] = 12.5

		var product model.Product
		require.NoError(t, product.Deserialize(data))
		assert.True(t, product.Price.Equal(decimal.RequireFromString("12.5")))
	})

	t.Run("Should fail on a missing name", func(t *testing.T) {
		data := validData()
		delete(data, "name")

		var product model.Product
		assertValidationFailed(t, product.Deserialize(data))
	})

	t.Run("Should fail on a mistyped available", func(t *testing.T) {
		data := validData()
		data["available"] = "yes"

		var product model.Product
		assertValidationFailed(t, product.Deserialize(data))
	})

	t.Run("Should fail on an unparseable price", func(t *testing.T) {
		data := validData()
		data["price"] = "a lot"

		var product model.Product
		assertValidationFailed(t, product.Deserialize(data))
	})

	t.Run("Should fail on an unknown category", func(t *testing.T) {
		data := validData()
		data["category"] = "GADGETS"

		var product model.Product
		assertValidationFailed(t, product.Deserialize(data))
	})

	t.Run("Should fail on a malformed id", func(t *testing.T) {
		data := validData()
		data["id"] = "not-a-uuid"

		var product model.Product
		assertValidationFailed(t, product.Deserialize(data))
	})
}

func TestCategory(t *testing.T) {
	t.Run("Should round trip every member through text", func(t *testing.T) {
		for _, category := range model.Categories() {
			text, err := category.MarshalText()
			require.NoError(t, err)

			var parsed model.Category
			require.NoError(t, parsed.UnmarshalText(text))
			assert.Equal(t, category, parsed)
		}
	})

	t.Run("Should parse case insensitively", func(t *testing.T) {
		var category model.Category
		require.NoError(t, category.UnmarshalText([]byte("cloths")))
		assert.Equal(t, model.CategoryCloths, category)
	})

	t.Run("Should reject an unknown name", func(t *testing.T) {
		var category model.Category
		assert.Error(t, category.UnmarshalText([]byte("GADGETS")))
	})

	t.Run("Should validate members and reject values outside the enumeration", func(t *testing.T) {
		for _, category := range model.Categories() {
			assert.NoError(t, category.Validate())
		}
		assert.Error(t, model.Category(42).Validate())
	})
}
