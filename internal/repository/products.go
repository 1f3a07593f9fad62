package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/octobees/cladding-site/internal/dto"
	"github.com/octobees/cladding-site/internal/entity"
)

// ProductsRepository describes read operations over the product catalogue.
type ProductsRepository interface {
	List(ctx context.Context, query dto.ProductQuery) ([]entity.Product, error)
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)
	DistinctCategories(ctx context.Context) ([]string, error)
}

// ErrProductNotFound is returned when no product matches the identifier.
var ErrProductNotFound = errors.New("product not found")

// PGXProductsRepository implements ProductsRepository using pgx.
type PGXProductsRepository struct {
	pool pgxPool
}

// NewPGXProductsRepository wires a pgx backed repository.
func NewPGXProductsRepository(pool *pgxpool.Pool) *PGXProductsRepository {
	return &PGXProductsRepository{pool: pool}
}

const productColumns = `id, title, description, short_description, image, gallery, category, features, specifications, is_upcoming, created_at`

// List retrieves products matching the query, newest first.
func (r *PGXProductsRepository) List(ctx context.Context, query dto.ProductQuery) ([]entity.Product, error) {
	sql, args := buildProductListSQL(query)

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	return scanProducts(rows)
}

// FindByID fetches a single product.
func (r *PGXProductsRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+productColumns+` FROM products WHERE id = $1`, id)

	product, err := scanProduct(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("query product by id: %w", err)
	}
	return product, nil
}

// DistinctCategories returns every category present in the catalogue, upcoming items included.
func (r *PGXProductsRepository) DistinctCategories(ctx context.Context) ([]string, error) {
	rows, err := r.pool.Query(ctx, `SELECT DISTINCT category FROM products ORDER BY category`)
	if err != nil {
		return nil, fmt.Errorf("list product categories: %w", err)
	}
	defer rows.Close()

	categories := make([]string, 0)
	for rows.Next() {
		var category string
		if err := rows.Scan(&category); err != nil {
			return nil, fmt.Errorf("scan product category: %w", err)
		}
		categories = append(categories, category)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate product categories: %w", err)
	}
	return categories, nil
}

func buildProductListSQL(query dto.ProductQuery) (string, []any) {
	var (
		sb      strings.Builder
		clauses []string
		args    []any
		idx     = 1
	)
	sb.WriteString(`SELECT ` + productColumns + ` FROM products`)

	if query.Upcoming != nil {
		clauses = append(clauses, fmt.Sprintf("is_upcoming = $%d", idx))
		args = append(args, *query.Upcoming)
		idx++
	}
	if query.Category != nil {
		clauses = append(clauses, fmt.Sprintf("category = $%d", idx))
		args = append(args, *query.Category)
		idx++
	}
	if query.Search != nil {
		clauses = append(clauses, fmt.Sprintf(
			`(title ILIKE $%[1]d ESCAPE '\' OR description ILIKE $%[1]d ESCAPE '\' OR short_description ILIKE $%[1]d ESCAPE '\')`, idx))
		args = append(args, containsPattern(*query.Search))
		idx++
	}
	if query.ExcludeID != nil {
		clauses = append(clauses, fmt.Sprintf("id <> $%d", idx))
		args = append(args, *query.ExcludeID)
		idx++
	}

	if len(clauses) > 0 {
		sb.WriteString(" WHERE ")
		sb.WriteString(strings.Join(clauses, " AND "))
	}
	sb.WriteString(" ORDER BY created_at DESC")

	if query.Limit > 0 {
		sb.WriteString(fmt.Sprintf(" LIMIT $%d", idx))
		args = append(args, query.Limit)
	}

	return sb.String(), args
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern turns user text into an ILIKE pattern matching it as a literal substring.
func containsPattern(text string) string {
	return "%" + likeEscaper.Replace(text) + "%"
}

func scanProducts(rows pgx.Rows) ([]entity.Product, error) {
	products := make([]entity.Product, 0)
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		products = append(products, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate products: %w", err)
	}
	return products, nil
}

func scanProduct(row pgx.Row) (*entity.Product, error) {
	var (
		p     entity.Product
		specs []byte
	)
	err := row.Scan(
		&p.ID,
		&p.Title,
		&p.Description,
		&p.ShortDescription,
		&p.Image,
		&p.Gallery,
		&p.Category,
		&p.Features,
		&specs,
		&p.IsUpcoming,
		&p.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if len(specs) > 0 {
		if err := json.Unmarshal(specs, &p.Specifications); err != nil {
			return nil, fmt.Errorf("unmarshal specifications: %w", err)
		}
	}
	p.Gallery = stringSliceOrEmpty(p.Gallery)
	p.Features = stringSliceOrEmpty(p.Features)
	if p.Specifications == nil {
		p.Specifications = []entity.Specification{}
	}
	return &p, nil
}
