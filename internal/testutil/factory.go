package testutil

import (
	"github.com/brianvoe/gofakeit/v7"
	"github.com/shopspring/decimal"

	"github.com/tuanvumaihuynh/product-store/internal/model"
)

var productNames = []string{
	"Hat", "Pants", "Shirt", "Apple", "Banana",
	"Pots", "Towels", "Ford", "Chevy", "Hammer", "Wrench",
}

// FakeProduct returns a randomized, valid, unpersisted product.
func FakeProduct() model.Product {
	categories := model.Categories()

	return model.Product{
		Name:        gofakeit.RandomString(productNames),
		Description: gofakeit.Sentence(8),
		Price:       decimal.NewFromFloat(gofakeit.Price(0.5, 2000)).Round(2),
		Available:   gofakeit.Bool(),
		Category:    categories[gofakeit.Number(0, len(categories)-1)],
	}
}

// FakeProducts returns n randomized, valid, unpersisted products.
func FakeProducts(n int) []model.Product {
	products := make([]model.Product, 0, n)
	for range n {
		products = append(products, FakeProduct())
	}
	return products
}
