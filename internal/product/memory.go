package product

import (
	"context"
	"sort"
	"strings"
	"sync"
)

// MemoryRepository is an in-memory Repository with the same contract as the
// gorm implementation. Used by tests.
type MemoryRepository struct {
	mu       sync.Mutex
	nextID   int64
	products map[int64]Product
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{nextID: 1, products: map[int64]Product{}}
}

func (r *MemoryRepository) matching(filter string) []Product {
	out := make([]Product, 0, len(r.products))
	for _, p := range r.products {
		if filter == "" ||
			strings.Contains(p.Name, filter) || strings.Contains(p.Description, filter) {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (r *MemoryRepository) List(_ context.Context, q ListQuery) (int64, []Product, error) {
	q = q.Sanitize(0)

	r.mu.Lock()
	defer r.mu.Unlock()

	matched := r.matching(q.Filter)
	total := int64(len(matched))

	start := q.offset()
	if start > len(matched) {
		start = len(matched)
	}
	end := start + q.PageSize
	if end > len(matched) {
		end = len(matched)
	}
	return total, matched[start:end], nil
}

func (r *MemoryRepository) ListAll(_ context.Context) ([]Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.matching(""), nil
}

func (r *MemoryRepository) GetByID(_ context.Context, id int64) (*Product, error) {
	if id <= 0 {
		return nil, ErrInvalidArgument
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.products[id]
	if !ok {
		return nil, ErrNotFound
	}
	out := p
	return &out, nil
}

func (r *MemoryRepository) Create(_ context.Context, p *Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	p.ID = r.nextID
	r.nextID++
	p.Price = p.Price.Round(2)
	r.products[p.ID] = *p
	return nil
}

func (r *MemoryRepository) Replace(_ context.Context, id int64, p *Product) error {
	if id <= 0 || id != p.ID {
		return ErrInvalidArgument
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.products[id]; !ok {
		return ErrNotFound
	}
	p.Price = p.Price.Round(2)
	r.products[id] = *p
	return nil
}

func (r *MemoryRepository) Delete(_ context.Context, id int64) error {
	if id <= 0 {
		return ErrInvalidArgument
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.products[id]; !ok {
		return ErrNotFound
	}
	delete(r.products, id)
	return nil
}

func (r *MemoryRepository) Exists(_ context.Context, id int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.products[id]
	return ok, nil
}
