package model

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tuanvumaihuynh/product-store/internal/apperr"
)

// Product is a single row of the products table. ID is uuid.Nil until the
// product has been persisted for the first time.
type Product struct {
	ID          uuid.UUID       `json:"id"`
	Name        string          `json:"name" validate:"required"`
	Description string          `json:"description" validate:"required"`
	Price       decimal.Decimal `json:"price"`
	Available   bool            `json:"available"`
	Category    Category        `json:"category" validate:"enum"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// Persisted reports whether the product has been assigned an identifier.
func (p Product) Persisted() bool {
	return p.ID != uuid.Nil
}

// Serialize converts the product into a map representation.
// The id entry is nil for a product that has never been persisted.
func (p Product) Serialize() map[string]any {
	var id any
	if p.Persisted() {
		id = p.ID.String()
	}

	return map[string]any{
		"id":          id,
		"name":        p.Name,
		"description": p.Description,
		"price":       p.Price.String(),
		"available":   p.Available,
		"category":    p.Category.String(),
	}
}

// Deserialize populates the product from a map representation.
// Any missing or mistyped field surfaces as a VALIDATION_FAILED error.
func (p *Product) Deserialize(data map[string]any) error {
	if err := p.deserialize(data); err != nil {
		return apperr.ErrValidation.WrapParent(err)
	}
	return nil
}

func (p *Product) deserialize(data map[string]any) error {
	if raw, ok := data["id"]; ok && raw != nil {
		s, ok := raw.(string)
		if !ok {
			return fmt.Errorf("invalid type for id: %T", raw)
		}
		id, err := uuid.Parse(s)
		if err != nil {
			return fmt.Errorf("parse id: %w", err)
		}
		p.ID = id
	}

	name, ok := data["name"].(string)
	if !ok {
		return fmt.Errorf("invalid type for name: %T", data["name"])
	}
	p.Name = name

	description, ok := data["description"].(string)
	if !ok {
		return fmt.Errorf("invalid type for description: %T", data["description"])
	}
	p.Description = description

	price, err := deserializePrice(data["price"])
	if err != nil {
		return err
	}
	p.Price = price

	available, ok := data["available"].(bool)
	if !ok {
		return fmt.Errorf("invalid type for available: %T", data["available"])
	}
	p.Available = available

	category, ok := data["category"].(string)
	if !ok {
		return fmt.Errorf("invalid type for category: %T", data["category"])
	}
	if err := p.Category.UnmarshalText([]byte(category)); err != nil {
		return err
	}

	return nil
}

func deserializePrice(raw any) (decimal.Decimal, error) {
	switch v := raw.(type) {
	case string:
		price, err := decimal.NewFromString(v)
		if err != nil {
			return decimal.Decimal{}, fmt.Errorf("parse price: %w", err)
		}
		return price, nil
	case float64:
		return decimal.NewFromFloat(v), nil
	case int:
		return decimal.NewFromInt(int64(v)), nil
	default:
		return decimal.Decimal{}, fmt.Errorf("invalid type for price: %T", raw)
	}
}

// Category is the fixed product category enumeration.
type Category uint8

const (
	CategoryUnknown Category = iota
	CategoryCloths
	CategoryFood
	CategoryHousewares
	CategoryAutomotive
	CategoryTools
)

var categoryNames = []string{
	"UNKNOWN",
	"CLOTHS",
	"FOOD",
	"HOUSEWARES",
	"AUTOMOTIVE",
	"TOOLS",
}

// Categories returns every member of the enumeration, UNKNOWN included.
func Categories() []Category {
	return []Category{
		CategoryUnknown,
		CategoryCloths,
		CategoryFood,
		CategoryHousewares,
		CategoryAutomotive,
		CategoryTools,
	}
}

// String returns the string representation of the category.
func (c Category) String() string {
	if int(c) >= len(categoryNames) {
		return categoryNames[CategoryUnknown]
	}
	return categoryNames[c]
}

// Validate reports whether the category is a member of the enumeration.
func (c Category) Validate() error {
	if int(c) >= len(categoryNames) {
		return fmt.Errorf("unknown category: %d", c)
	}
	return nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
// It unmarshals the text to a category.
func (c *Category) UnmarshalText(text []byte) error {
	name := strings.ToUpper(string(text))
	for i, candidate := range categoryNames {
		if name == candidate {
			*c = Category(i)
			return nil
		}
	}
	return fmt.Errorf("unknown category: %s", text)
}

func (c Category) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}
