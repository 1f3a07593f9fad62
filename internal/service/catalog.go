package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/octobees/cladding-site/internal/dto"
	"github.com/octobees/cladding-site/internal/entity"
	"github.com/octobees/cladding-site/internal/repository"
)

const (
	// DefaultSearchLimit applies when the search API receives no usable limit.
	DefaultSearchLimit   = 10
	// MaxSearchLimit caps the number of rows the search API returns.
	MaxSearchLimit       = 50
	relatedProductsLimit = 3
)

// CatalogService exposes read operations over the product catalogue.
type CatalogService struct {
	products repository.ProductsRepository
}

// CatalogListing is the result of a catalogue page query.
type CatalogListing struct {
	Products   []entity.Product
	Categories []string
}

// ProductDetail bundles a product with related items from the same category.
type ProductDetail struct {
	Product *entity.Product
	Related []entity.Product
}

// NewCatalogService creates a new instance of CatalogService.
func NewCatalogService(products repository.ProductsRepository) *CatalogService {
	return &CatalogService{products: products}
}

// ListProducts returns released products matching the query plus every category present in the store.
// The two reads are independent; no consistency between them is guaranteed.
func (s *CatalogService) ListProducts(ctx context.Context, query dto.ProductQuery) (CatalogListing, error) {
	query.Upcoming = released()

	products, err := s.products.List(ctx, query)
	if err != nil {
		return CatalogListing{}, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	categories, err := s.products.DistinctCategories(ctx)
	if err != nil {
		return CatalogListing{}, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	return CatalogListing{Products: products, Categories: categories}, nil
}

// GetProduct returns a product and up to three released products sharing its category.
// Identifiers that are not valid UUIDs are reported as not found.
func (s *CatalogService) GetProduct(ctx context.Context, id string) (ProductDetail, error) {
	productID, err := uuid.Parse(id)
	if err != nil {
		return ProductDetail{}, ErrProductNotFound
	}

	product, err := s.products.FindByID(ctx, productID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return ProductDetail{}, ErrProductNotFound
		}
		return ProductDetail{}, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	category := product.Category
	related, err := s.products.List(ctx, dto.ProductQuery{
		Category:  &category,
		Upcoming:  released(),
		ExcludeID: &product.ID,
		Limit:     relatedProductsLimit,
	})
	if err != nil {
		return ProductDetail{}, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	return ProductDetail{Product: product, Related: related}, nil
}

// SearchProducts applies the catalogue filters and returns a bounded projection.
func (s *CatalogService) SearchProducts(ctx context.Context, query dto.ProductQuery) ([]entity.ProductSummary, error) {
	query.Upcoming = released()
	query.Limit = clampSearchLimit(query.Limit)

	products, err := s.products.List(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	summaries := make([]entity.ProductSummary, 0, len(products))
	for _, p := range products {
		summaries = append(summaries, p.Summary())
	}
	return summaries, nil
}

// ListProductsByCategory returns every released product in the category, newest first.
func (s *CatalogService) ListProductsByCategory(ctx context.Context, category string) ([]entity.Product, error) {
	products, err := s.products.List(ctx, dto.ProductQuery{
		Category: &category,
		Upcoming: released(),
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return products, nil
}

func clampSearchLimit(limit int) int {
	if limit <= 0 {
		return DefaultSearchLimit
	}
	if limit > MaxSearchLimit {
		return MaxSearchLimit
	}
	return limit
}

func released() *bool {
	upcoming := false
	return &upcoming
}
