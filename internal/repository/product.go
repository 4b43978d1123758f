package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/tuanvumaihuynh/product-store/internal/apperr"
	"github.com/tuanvumaihuynh/product-store/internal/model"
	"github.com/tuanvumaihuynh/product-store/internal/storage/db"
)

const productColumns = `id, name, description, price, available, category, created_at, updated_at`

type ProductRepository interface {
	WithDB(db db.DB) ProductRepository
	CreateProduct(ctx context.Context, product model.Product) error
	GetProduct(ctx context.Context, id uuid.UUID) (model.Product, error)
	UpdateProduct(ctx context.Context, product model.Product) error
	DeleteProduct(ctx context.Context, id uuid.UUID) error
	ListAllProducts(ctx context.Context) ([]model.Product, error)
	FindByName(name string) *ProductQuery
	FindByAvailability(available bool) *ProductQuery
	FindByCategory(category model.Category) *ProductQuery
}

type productRepository struct {
	db db.DB
}

func NewProductRepository(db db.DB) ProductRepository {
	return &productRepository{db: db}
}

func (r productRepository) WithDB(db db.DB) ProductRepository {
	return &productRepository{db: db}
}

func (r productRepository) CreateProduct(ctx context.Context, product model.Product) error {
	if _, err := r.db.Exec(ctx, `
		INSERT INTO products (`+productColumns+`)
		VALUES (@id, @name, @description, @price, @available, @category, @created_at, @updated_at)
	`, productArgs(product)); err != nil {
		return fmt.Errorf("create product: %w", err)
	}

	return nil
}

func (r productRepository) GetProduct(ctx context.Context, id uuid.UUID) (model.Product, error) {
	row := r.db.QueryRow(ctx, `
		SELECT `+productColumns+`
		FROM products
		WHERE id = @id
	`, pgx.NamedArgs{"id": id})

	product, err := scanProduct(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Product{}, apperr.ErrProductNotFound.WrapParent(err)
		}
		return model.Product{}, fmt.Errorf("get product: %w", err)
	}

	return product, nil
}

func (r productRepository) UpdateProduct(ctx context.Context, product model.Product) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE products
		SET
			name        = @name,
			description = @description,
			price       = @price,
			available   = @available,
			category    = @category,
			updated_at  = @updated_at
		WHERE id = @id
	`, productArgs(product))
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return apperr.ErrProductNotFound
	}

	return nil
}

func (r productRepository) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `
		DELETE FROM products
		WHERE id = @id
	`, pgx.NamedArgs{"id": id})
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return apperr.ErrProductNotFound
	}

	return nil
}

// ListAllProducts returns every product in storage order.
func (r productRepository) ListAllProducts(ctx context.Context) ([]model.Product, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+productColumns+`
		FROM products
		ORDER BY created_at, id
	`)
	if err != nil {
		return nil, fmt.Errorf("list all products: %w", err)
	}
	defer rows.Close()

	return collectProducts(rows)
}

func (r productRepository) FindByName(name string) *ProductQuery {
	return newProductQuery(r.db, "name = @name", pgx.NamedArgs{"name": name})
}

func (r productRepository) FindByAvailability(available bool) *ProductQuery {
	return newProductQuery(r.db, "available = @available", pgx.NamedArgs{"available": available})
}

func (r productRepository) FindByCategory(category model.Category) *ProductQuery {
	return newProductQuery(r.db, "category = @category", pgx.NamedArgs{"category": category.String()})
}

func productArgs(product model.Product) pgx.NamedArgs {
	return pgx.NamedArgs{
		"id":          product.ID,
		"name":        product.Name,
		"description": product.Description,
		"price":       product.Price,
		"available":   product.Available,
		"category":    product.Category.String(),
		"created_at":  product.CreatedAt,
		"updated_at":  product.UpdatedAt,
	}
}

func scanProduct(row pgx.Row) (model.Product, error) {
	var (
		product  model.Product
		category string
	)

	if err := row.Scan(
		&product.ID,
		&product.Name,
		&product.Description,
		&product.Price,
		&product.Available,
		&category,
		&product.CreatedAt,
		&product.UpdatedAt,
	); err != nil {
		return model.Product{}, err
	}

	if err := product.Category.UnmarshalText([]byte(category)); err != nil {
		return model.Product{}, fmt.Errorf("scan category: %w", err)
	}

	return product, nil
}

func collectProducts(rows pgx.Rows) ([]model.Product, error) {
	var products []model.Product
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		products = append(products, product)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate products: %w", err)
	}

	return products, nil
}
