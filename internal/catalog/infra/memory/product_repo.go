package memory

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/poskit/checkout/internal/catalog/app"
	"github.com/poskit/checkout/internal/catalog/domain"
)

// ProductRepo keeps the catalog in process memory. Products are stored and
// returned by pointer so that cart lines and checkout share one stock count.
type ProductRepo struct {
	mu     sync.RWMutex
	byID   map[string]*domain.Product
	byName map[string]*domain.Product
	order  []string // insertion order of ids, used for cursor pagination
}

func NewProductRepo() *ProductRepo {
	return &ProductRepo{
		byID:   make(map[string]*domain.Product),
		byName: make(map[string]*domain.Product),
	}
}

func (r *ProductRepo) Create(ctx context.Context, p domain.Product) (*domain.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byName[p.Name]; exists {
		return nil, app.ErrInvalidInput
	}

	now := time.Now()
	p.ID = uuid.NewString()
	p.CreatedAt = now
	p.UpdatedAt = now

	stored := p
	r.byID[stored.ID] = &stored
	r.byName[stored.Name] = &stored
	r.order = append(r.order, stored.ID)
	return &stored, nil
}

func (r *ProductRepo) Get(ctx context.Context, id string) (*domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.byID[id]
	if !ok {
		return nil, app.ErrNotFound
	}
	return p, nil
}

func (r *ProductRepo) GetByName(ctx context.Context, name string) (*domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.byName[name]
	if !ok {
		return nil, app.ErrNotFound
	}
	return p, nil
}

func (r *ProductRepo) List(ctx context.Context, query string, limit int, cursor string) ([]*domain.Product, string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	start := 0
	if cursor != "" {
		found := false
		for i, id := range r.order {
			if id == cursor {
				start = i + 1
				found = true
				break
			}
		}
		if !found {
			return nil, "", app.ErrInvalidInput
		}
	}

	query = strings.ToLower(strings.TrimSpace(query))
	out := make([]*domain.Product, 0, limit)
	var nextCursor string

	for _, id := range r.order[start:] {
		p := r.byID[id]
		if query != "" && !strings.Contains(strings.ToLower(p.Name), query) {
			continue
		}
		out = append(out, p)
		nextCursor = p.ID
		if len(out) == limit {
			break
		}
	}

	if len(out) < limit {
		nextCursor = ""
	}

	return out, nextCursor, nil
}
