package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tuanvumaihuynh/product-store/internal/apperr"
	"github.com/tuanvumaihuynh/product-store/internal/event"
	"github.com/tuanvumaihuynh/product-store/internal/model"
	"github.com/tuanvumaihuynh/product-store/internal/repository"
	"github.com/tuanvumaihuynh/product-store/internal/storage/db"
	"github.com/tuanvumaihuynh/product-store/pkg/outbox"
	"github.com/tuanvumaihuynh/product-store/pkg/ptr"
	"github.com/tuanvumaihuynh/product-store/pkg/validator"
)

type CreateProductParams struct {
	Name        string
	Description string
	Price       decimal.Decimal
	Available   bool
	Category    model.Category
}

type ProductService interface {
	CreateProduct(ctx context.Context, params CreateProductParams) (model.Product, error)
	UpdateProduct(ctx context.Context, product model.Product) (model.Product, error)
	DeleteProduct(ctx context.Context, product model.Product) error
	GetProduct(ctx context.Context, id uuid.UUID) (model.Product, error)
	ListAllProducts(ctx context.Context) ([]model.Product, error)
	FindByName(name string) *repository.ProductQuery
	FindByAvailability(available bool) *repository.ProductQuery
	FindByCategory(category model.Category) *repository.ProductQuery
}

type productService struct {
	db            db.DB
	validator     validator.Validator
	productRepo   repository.ProductRepository
	outboxMsgRepo repository.OutboxMsgRepository
}

func NewProductService(
	db db.DB,
	validator validator.Validator,
	productRepo repository.ProductRepository,
	outboxMsgRepo repository.OutboxMsgRepository,
) ProductService {
	return &productService{
		db:            db,
		validator:     validator,
		productRepo:   productRepo,
		outboxMsgRepo: outboxMsgRepo,
	}
}

// CreateProduct validates the params, mints an identifier and persists the
// product together with its created event in one transaction.
func (s *productService) CreateProduct(ctx context.Context, params CreateProductParams) (model.Product, error) {
	now := time.Now()
	product := model.Product{
		Name:        params.Name,
		Description: params.Description,
		Price:       params.Price,
		Available:   params.Available,
		Category:    params.Category,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.validator.Validate(product); err != nil {
		return model.Product{}, apperr.ValidationError(err)
	}

	id, err := uuid.NewV7()
	if err != nil {
		return model.Product{}, fmt.Errorf("generate uuid v7: %w", err)
	}
	product.ID = id

	ev := event.ProductCreatedEvent{
		ProductID:   product.ID.String(),
		Name:        product.Name,
		Description: product.Description,
		Price:       product.Price.String(),
		Available:   product.Available,
		Category:    product.Category.String(),
	}

	if err := s.db.WithTx(ctx, func(db db.DB) error {
		if err := s.productRepo.
			WithDB(db).
			CreateProduct(ctx, product); err != nil {
			return fmt.Errorf("product repository create product: %w", err)
		}

		if err := s.createOutboxMsg(ctx, db, event.TopicProductCreated, product.ID, ev); err != nil {
			return err
		}

		return nil
	}); err != nil {
		return model.Product{}, fmt.Errorf("db with tx: %w", err)
	}

	return product, nil
}

// UpdateProduct persists attribute changes keyed by the product identifier.
// It fails fast when the product has never been persisted.
func (s *productService) UpdateProduct(ctx context.Context, product model.Product) (model.Product, error) {
	if !product.Persisted() {
		return model.Product{}, apperr.ErrProductIDRequired
	}

	if err := s.validator.Validate(product); err != nil {
		return model.Product{}, apperr.ValidationError(err)
	}

	product.UpdatedAt = time.Now()

	ev := event.ProductUpdatedEvent{
		ProductID:   product.ID.String(),
		Name:        product.Name,
		Description: product.Description,
		Price:       product.Price.String(),
		Available:   product.Available,
		Category:    product.Category.String(),
	}

	if err := s.db.WithTx(ctx, func(db db.DB) error {
		if err := s.productRepo.
			WithDB(db).
			UpdateProduct(ctx, product); err != nil {
			return fmt.Errorf("product repository update product: %w", err)
		}

		if err := s.createOutboxMsg(ctx, db, event.TopicProductUpdated, product.ID, ev); err != nil {
			return err
		}

		return nil
	}); err != nil {
		return model.Product{}, err
	}

	return product, nil
}

// DeleteProduct removes the product row and records a deleted event in one
// transaction. It fails fast when the product has never been persisted.
func (s *productService) DeleteProduct(ctx context.Context, product model.Product) error {
	if !product.Persisted() {
		return apperr.ErrProductIDRequired
	}

	ev := event.ProductDeletedEvent{
		ProductID: product.ID.String(),
	}

	if err := s.db.WithTx(ctx, func(db db.DB) error {
		if err := s.productRepo.
			WithDB(db).
			DeleteProduct(ctx, product.ID); err != nil {
			return fmt.Errorf("product repository delete product: %w", err)
		}

		if err := s.createOutboxMsg(ctx, db, event.TopicProductDeleted, product.ID, ev); err != nil {
			return err
		}

		return nil
	}); err != nil {
		return err
	}

	return nil
}

func (s *productService) GetProduct(ctx context.Context, id uuid.UUID) (model.Product, error) {
	product, err := s.productRepo.GetProduct(ctx, id)
	if err != nil {
		return model.Product{}, err
	}

	return product, nil
}

func (s *productService) ListAllProducts(ctx context.Context) ([]model.Product, error) {
	products, err := s.productRepo.ListAllProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("product repository list all products: %w", err)
	}

	return products, nil
}

func (s *productService) FindByName(name string) *repository.ProductQuery {
	return s.productRepo.FindByName(name)
}

func (s *productService) FindByAvailability(available bool) *repository.ProductQuery {
	return s.productRepo.FindByAvailability(available)
}

func (s *productService) FindByCategory(category model.Category) *repository.ProductQuery {
	return s.productRepo.FindByCategory(category)
}

func (s *productService) createOutboxMsg(ctx context.Context, db db.DB, topic string, productID uuid.UUID, ev any) error {
	evBytes, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	if err := s.outboxMsgRepo.
		WithDB(db).
		CreateOutboxMsg(ctx, repository.CreateOutboxMsgParams{
			Topic:        topic,
			Headers:      outbox.BuildHeaders(ctx),
			Payload:      evBytes,
			PartitionKey: ptr.New(productID.String()),
		}); err != nil {
		return fmt.Errorf("outbox msg repository create outbox msg: %w", err)
	}

	return nil
}
