package service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/octobees/cladding-site/internal/dto"
	"github.com/octobees/cladding-site/internal/entity"
)

type mockProductsRepository struct {
	list       func(ctx context.Context, query dto.ProductQuery) ([]entity.Product, error)
	findByID   func(ctx context.Context, id uuid.UUID) (*entity.Product, error)
	categories func(ctx context.Context) ([]string, error)
}

func (m *mockProductsRepository) List(ctx context.Context, query dto.ProductQuery) ([]entity.Product, error) {
	if m.list != nil {
		return m.list(ctx, query)
	}
	return nil, errors.New("list not implemented")
}

func (m *mockProductsRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	if m.findByID != nil {
		return m.findByID(ctx, id)
	}
	return nil, errors.New("find not implemented")
}

func (m *mockProductsRepository) DistinctCategories(ctx context.Context) ([]string, error) {
	if m.categories != nil {
		return m.categories(ctx)
	}
	return nil, errors.New("categories not implemented")
}

type mockTestimonialsRepository struct {
	listActive func(ctx context.Context, limit int) ([]entity.Testimonial, error)
}

func (m *mockTestimonialsRepository) ListActive(ctx context.Context, limit int) ([]entity.Testimonial, error) {
	if m.listActive != nil {
		return m.listActive(ctx, limit)
	}
	return nil, errors.New("list active not implemented")
}

type mockContactsRepository struct {
	create  func(ctx context.Context, contact *entity.Contact) error
	created []*entity.Contact
}

func (m *mockContactsRepository) Create(ctx context.Context, contact *entity.Contact) error {
	if m.create != nil {
		if err := m.create(ctx, contact); err != nil {
			return err
		}
	}
	if contact.ID == uuid.Nil {
		contact.ID = uuid.New()
	}
	m.created = append(m.created, contact)
	return nil
}
