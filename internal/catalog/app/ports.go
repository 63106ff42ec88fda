package app

import (
	"context"

	"github.com/poskit/checkout/internal/catalog/domain"
)

// ProductRepo hands out *domain.Product so that stock mutations performed
// by checkout are visible to every holder of the reference.
type ProductRepo interface {
	Create(ctx context.Context, p domain.Product) (*domain.Product, error)
	Get(ctx context.Context, id string) (*domain.Product, error)
	GetByName(ctx context.Context, name string) (*domain.Product, error)
	List(ctx context.Context, query string, limit int, cursor string) ([]*domain.Product, string, error)
}
