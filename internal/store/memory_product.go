package store

import (
	"cmp"
	"context"
	"slices"
	"sync"

	"github.com/MKhiriev/go-product-keeper/internal/logger"
	"github.com/MKhiriev/go-product-keeper/models"
)

// memoryProductRepository keeps products in a map guarded by a RWMutex.
// Ids start at 1 and are never reused, even after a delete.
type memoryProductRepository struct {
	mu       sync.RWMutex
	products map[int64]models.Product
	lastID   int64
	logger   *logger.Logger
}

// NewMemoryProductRepository constructs an empty in-memory [ProductRepository].
func NewMemoryProductRepository(logger *logger.Logger) ProductRepository {
	logger.Debug().Msg("creating in-memory product repository")
	return &memoryProductRepository{
		products: make(map[int64]models.Product),
		logger:   logger,
	}
}

func (m *memoryProductRepository) List(ctx context.Context) ([]models.Product, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	products := make([]models.Product, 0, len(m.products))
	for _, p := range m.products {
		products = append(products, p)
	}

	slices.SortFunc(products, func(a, b models.Product) int {
		return cmp.Compare(a.ID, b.ID)
	})

	return products, nil
}

func (m *memoryProductRepository) Get(ctx context.Context, id int64) (models.Product, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	p, ok := m.products[id]
	if !ok {
		return models.Product{}, ErrProductNotFound
	}

	return p, nil
}

func (m *memoryProductRepository) Create(ctx context.Context, input models.ProductInput) (models.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.lastID++
	p := input.ToProduct(m.lastID)
	m.products[p.ID] = p

	logger.FromContext(ctx).Debug().Str("func", "memoryProductRepository.Create").Int64("id", p.ID).Msg("product created")

	return p, nil
}

func (m *memoryProductRepository) Update(ctx context.Context, id int64, input models.ProductInput) (models.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.products[id]; !ok {
		return models.Product{}, ErrProductNotFound
	}

	p := input.ToProduct(id)
	m.products[id] = p

	return p, nil
}

func (m *memoryProductRepository) Delete(ctx context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.products[id]; !ok {
		return ErrProductNotFound
	}

	delete(m.products, id)

	return nil
}
