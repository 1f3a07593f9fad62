package handler

import (
	"context"
	"io"
	"sync"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/octobees/cladding-site/internal/dto"
	"github.com/octobees/cladding-site/internal/entity"
	"github.com/octobees/cladding-site/internal/repository"
	"github.com/octobees/cladding-site/internal/service"
)

type captureRenderer struct {
	name string
	data any
}

func (r *captureRenderer) Render(w io.Writer, name string, data any, c echo.Context) error {
	r.name = name
	r.data = data
	_, err := io.WriteString(w, "<html>"+name+"</html>")
	return err
}

type stubProductsRepo struct {
	products   []entity.Product
	byID       map[uuid.UUID]*entity.Product
	categories []string
	err        error

	mu      sync.Mutex
	queries []dto.ProductQuery
}

func (s *stubProductsRepo) List(ctx context.Context, query dto.ProductQuery) ([]entity.Product, error) {
	s.mu.Lock()
	s.queries = append(s.queries, query)
	s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	var out []entity.Product
	for _, p := range s.products {
		if query.Upcoming != nil && p.IsUpcoming != *query.Upcoming {
			continue
		}
		if query.Category != nil && p.Category != *query.Category {
			continue
		}
		if query.ExcludeID != nil && p.ID == *query.ExcludeID {
			continue
		}
		out = append(out, p)
		if query.Limit > 0 && len(out) == query.Limit {
			break
		}
	}
	return out, nil
}

func (s *stubProductsRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	if s.err != nil {
		return nil, s.err
	}
	if p, ok := s.byID[id]; ok {
		return p, nil
	}
	return nil, repository.ErrProductNotFound
}

func (s *stubProductsRepo) DistinctCategories(ctx context.Context) ([]string, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.categories, nil
}

type stubTestimonialsRepo struct {
	testimonials []entity.Testimonial
	err          error
}

func (s *stubTestimonialsRepo) ListActive(ctx context.Context, limit int) ([]entity.Testimonial, error) {
	return s.testimonials, s.err
}

type stubContactsRepo struct {
	created []*entity.Contact
	err     error
}

func (s *stubContactsRepo) Create(ctx context.Context, contact *entity.Contact) error {
	if s.err != nil {
		return s.err
	}
	contact.ID = uuid.New()
	s.created = append(s.created, contact)
	return nil
}

func newTestEcho() (*echo.Echo, *captureRenderer) {
	e := echo.New()
	r := &captureRenderer{}
	e.Renderer = r
	return e, r
}

func newCatalog(repo *stubProductsRepo) *service.CatalogService {
	return service.NewCatalogService(repo)
}
