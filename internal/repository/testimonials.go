package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/octobees/cladding-site/internal/entity"
)

// TestimonialsRepository describes read operations for testimonials.
type TestimonialsRepository interface {
	ListActive(ctx context.Context, limit int) ([]entity.Testimonial, error)
}

// PGXTestimonialsRepository implements TestimonialsRepository using pgx.
type PGXTestimonialsRepository struct {
	pool pgxPool
}

// NewPGXTestimonialsRepository wires a pgx backed repository.
func NewPGXTestimonialsRepository(pool *pgxpool.Pool) *PGXTestimonialsRepository {
	return &PGXTestimonialsRepository{pool: pool}
}

// ListActive returns the newest active testimonials. A non-positive limit returns all of them.
func (r *PGXTestimonialsRepository) ListActive(ctx context.Context, limit int) ([]entity.Testimonial, error) {
	query := `
        SELECT id, client_name, company, position, testimonial, rating, image, company_logo, project_type, is_active, created_at
        FROM testimonials
        WHERE is_active = TRUE
        ORDER BY created_at DESC
    `
	args := []any{}
	if limit > 0 {
		query += " LIMIT $1"
		args = append(args, limit)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list testimonials: %w", err)
	}
	defer rows.Close()

	testimonials := make([]entity.Testimonial, 0)
	for rows.Next() {
		var (
			t    entity.Testimonial
			logo sql.NullString
		)
		if err := rows.Scan(
			&t.ID,
			&t.ClientName,
			&t.Company,
			&t.Position,
			&t.Testimonial,
			&t.Rating,
			&t.Image,
			&logo,
			&t.ProjectType,
			&t.IsActive,
			&t.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan testimonial: %w", err)
		}
		t.CompanyLogo = nullStringToPtr(logo)
		if t.Image == "" {
			t.Image = entity.DefaultTestimonialImage
		}
		testimonials = append(testimonials, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate testimonials: %w", err)
	}
	return testimonials, nil
}
