package app

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/poskit/checkout/internal/catalog/domain"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
)

type Service struct {
	repo ProductRepo

	maxConcurrent int
}

func NewService(repo ProductRepo, maxConcurrent int) *Service {
	if maxConcurrent <= 0 {
		maxConcurrent = 10
	}

	return &Service{
		repo:          repo,
		maxConcurrent: maxConcurrent,
	}
}

// NewProductInput carries the optional capability data alongside the base
// fields; nil means the product lacks the capability.
type NewProductInput struct {
	Name        string
	UnitPrice   decimal.Decimal
	Stock       int
	ExpiresAt   *time.Time
	WeightGrams *decimal.Decimal
}

func (s *Service) CreateProduct(ctx context.Context, in NewProductInput) (*domain.Product, error) {
	name := strings.TrimSpace(in.Name)

	if name == "" || in.UnitPrice.IsNegative() || in.Stock < 0 {
		return nil, ErrInvalidInput
	}
	if in.WeightGrams != nil && !in.WeightGrams.IsPositive() {
		return nil, ErrInvalidInput
	}

	p := domain.Product{
		Name:        name,
		UnitPrice:   in.UnitPrice,
		Stock:       in.Stock,
		ExpiresAt:   in.ExpiresAt,
		WeightGrams: in.WeightGrams,
	}

	return s.repo.Create(ctx, p)
}

func (s *Service) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	if strings.TrimSpace(id) == "" {
		return nil, ErrInvalidInput
	}
	return s.repo.Get(ctx, id)
}

func (s *Service) GetProductByName(ctx context.Context, name string) (*domain.Product, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrInvalidInput
	}
	return s.repo.GetByName(ctx, name)
}

func (s *Service) ListProducts(ctx context.Context, query string, limit int, cursor string) ([]*domain.Product, string, error) {
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	return s.repo.List(ctx, query, limit, cursor)
}

// ResolveBatch looks up products by name with bounded concurrency,
// preserving input order in the result.
func (s *Service) ResolveBatch(ctx context.Context, names ...string) ([]*domain.Product, error) {
	out := make([]*domain.Product, len(names))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.maxConcurrent)

	for idx := range names {
		idx := idx
		g.Go(func() error {
			p, err := s.repo.GetByName(ctx, names[idx])
			if err != nil {
				return fmt.Errorf("failed to resolve product %s: %w", names[idx], err)
			}
			out[idx] = p
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
