package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/tuanvumaihuynh/product-store/internal/model"
	"github.com/tuanvumaihuynh/product-store/internal/storage/db"
)

// ProductQuery is a lazy equality filter over the products table.
// Building one issues no SQL; each call to All or Count runs its own
// statement against the current state of the table.
type ProductQuery struct {
	db    db.DB
	where string
	args  pgx.NamedArgs
}

func newProductQuery(db db.DB, where string, args pgx.NamedArgs) *ProductQuery {
	return &ProductQuery{
		db:    db,
		where: where,
		args:  args,
	}
}

// All executes the query and returns every matching product in storage order.
func (q *ProductQuery) All(ctx context.Context) ([]model.Product, error) {
	rows, err := q.db.Query(ctx, `
		SELECT `+productColumns+`
		FROM products
		WHERE `+q.where+`
		ORDER BY created_at, id
	`, q.args)
	if err != nil {
		return nil, fmt.Errorf("query products: %w", err)
	}
	defer rows.Close()

	return collectProducts(rows)
}

// Count executes the query and returns the number of matching products.
func (q *ProductQuery) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := q.db.QueryRow(ctx, `
		SELECT COUNT(*)
		FROM products
		WHERE `+q.where+`
	`, q.args).Scan(&count); err != nil {
		return 0, fmt.Errorf("count products: %w", err)
	}

	return count, nil
}
