package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/octobees/cladding-site/internal/entity"
)

// ContactsRepository persists contact inquiries. Inquiries are insert-only here.
type ContactsRepository interface {
	Create(ctx context.Context, contact *entity.Contact) error
}

// PGXContactsRepository implements ContactsRepository using pgx.
type PGXContactsRepository struct {
	pool pgxPool
}

// NewPGXContactsRepository wires a pgx backed repository.
func NewPGXContactsRepository(pool *pgxpool.Pool) *PGXContactsRepository {
	return &PGXContactsRepository{pool: pool}
}

// Create inserts the inquiry and fills in the store generated id.
func (r *PGXContactsRepository) Create(ctx context.Context, contact *entity.Contact) error {
	if contact == nil {
		return fmt.Errorf("contact payload is nil")
	}

	row := r.pool.QueryRow(ctx, `
        INSERT INTO contacts (name, email, phone, company, project_type, message, budget, timeline, status, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
        RETURNING id
    `,
		contact.Name,
		contact.Email,
		stringOrNil(contact.Phone),
		stringOrNil(contact.Company),
		contact.ProjectType,
		contact.Message,
		stringOrNil(contact.Budget),
		stringOrNil(contact.Timeline),
		contact.Status,
		contact.CreatedAt,
	)

	if err := row.Scan(&contact.ID); err != nil {
		return fmt.Errorf("insert contact: %w", err)
	}
	return nil
}
