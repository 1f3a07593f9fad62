package service

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/octobees/cladding-site/internal/dto"
	"github.com/octobees/cladding-site/internal/entity"
	"github.com/octobees/cladding-site/internal/repository"
)

const (
	featuredProductsLimit = 6
	upcomingProductsLimit = 3
	testimonialsLimit     = 5
)

// SiteService loads the content of the home and about pages.
type SiteService struct {
	products     repository.ProductsRepository
	testimonials repository.TestimonialsRepository
}

// HomeContent is everything the home page renders.
type HomeContent struct {
	Featured     []entity.Product
	Upcoming     []entity.Product
	Testimonials []entity.Testimonial
}

// NewSiteService builds a SiteService.
func NewSiteService(products repository.ProductsRepository, testimonials repository.TestimonialsRepository) *SiteService {
	return &SiteService{products: products, testimonials: testimonials}
}

// Home runs the featured, upcoming and testimonial reads concurrently. Any failure fails the page.
func (s *SiteService) Home(ctx context.Context) (HomeContent, error) {
	var content HomeContent
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		upcoming := false
		products, err := s.products.List(gctx, dto.ProductQuery{Upcoming: &upcoming, Limit: featuredProductsLimit})
		if err != nil {
			return fmt.Errorf("featured products: %w", err)
		}
		content.Featured = products
		return nil
	})
	g.Go(func() error {
		upcoming := true
		products, err := s.products.List(gctx, dto.ProductQuery{Upcoming: &upcoming, Limit: upcomingProductsLimit})
		if err != nil {
			return fmt.Errorf("upcoming products: %w", err)
		}
		content.Upcoming = products
		return nil
	})
	g.Go(func() error {
		testimonials, err := s.testimonials.ListActive(gctx, testimonialsLimit)
		if err != nil {
			return fmt.Errorf("testimonials: %w", err)
		}
		content.Testimonials = testimonials
		return nil
	})

	if err := g.Wait(); err != nil {
		return HomeContent{}, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return content, nil
}

// About returns every released product for the about page slider.
func (s *SiteService) About(ctx context.Context) ([]entity.Product, error) {
	products, err := s.products.List(ctx, dto.ProductQuery{Upcoming: released()})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return products, nil
}
