package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
)

// Execer is the subset of a pgx pool needed to apply DDL.
type Execer interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

var schemaStatements = []string{
	`CREATE EXTENSION IF NOT EXISTS pgcrypto`,
	`CREATE TABLE IF NOT EXISTS products (
		id                UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		title             TEXT NOT NULL,
		description       TEXT NOT NULL,
		short_description VARCHAR(200) NOT NULL,
		image             TEXT NOT NULL,
		gallery           TEXT[] NOT NULL DEFAULT '{}',
		category          TEXT NOT NULL CHECK (category IN ('exterior-cladding', 'interior-cladding', 'commercial', 'residential', 'industrial')),
		features          TEXT[] NOT NULL DEFAULT '{}',
		specifications    JSONB NOT NULL DEFAULT '[]'::jsonb,
		is_upcoming       BOOLEAN NOT NULL DEFAULT FALSE,
		created_at        TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS products_category_created_idx ON products (category, created_at DESC)`,
	`CREATE TABLE IF NOT EXISTS testimonials (
		id           UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		client_name  TEXT NOT NULL,
		company      TEXT NOT NULL,
		position     TEXT NOT NULL,
		testimonial  VARCHAR(500) NOT NULL,
		rating       SMALLINT NOT NULL CHECK (rating BETWEEN 1 AND 5),
		image        TEXT NOT NULL DEFAULT '/static/images/testimonials/default-avatar.png',
		company_logo TEXT,
		project_type TEXT NOT NULL,
		is_active    BOOLEAN NOT NULL DEFAULT TRUE,
		created_at   TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS contacts (
		id           UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		name         TEXT NOT NULL,
		email        TEXT NOT NULL,
		phone        TEXT,
		company      TEXT,
		project_type TEXT NOT NULL CHECK (project_type IN ('exterior-cladding', 'interior-cladding', 'commercial', 'residential', 'consultation', 'other')),
		message      VARCHAR(1000) NOT NULL,
		budget       TEXT CHECK (budget IN ('under-50k', '50k-100k', '100k-500k', '500k+', 'not-specified')),
		timeline     TEXT CHECK (timeline IN ('immediate', '1-3-months', '3-6-months', '6-12-months', 'flexible')),
		status       TEXT NOT NULL DEFAULT 'new' CHECK (status IN ('new', 'contacted', 'quoted', 'converted', 'closed')),
		created_at   TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS contacts_status_created_idx ON contacts (status, created_at DESC)`,
}

// EnsureSchema creates the products, testimonials and contacts tables when missing.
func EnsureSchema(ctx context.Context, db Execer) error {
	for i, stmt := range schemaStatements {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("apply schema statement %d: %w", i+1, err)
		}
	}
	return nil
}
