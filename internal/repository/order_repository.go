package repository

import (
	"context"
	"dan_assistant/internal/models"
	"dan_assistant/internal/store"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
)

// OrderRepository holds the order list in memory, most recent first, and
// writes the whole list back to the store after every mutation.
type OrderRepository interface {
	Append(ctx context.Context, order models.Order) error
	UpdateStatus(ctx context.Context, id string, status models.OrderStatus) error
	GetByID(id string) (*models.Order, error)
	List() []models.Order
}

var ErrOrderNotFound = errors.New("order not found")

type orderRepository struct {
	mu     sync.Mutex
	store  store.Store
	logger *slog.Logger
	orders []models.Order
}

// NewOrderRepository loads the persisted order list. A missing key seeds the
// built-in starter data; a malformed blob is logged and replaced by it.
func NewOrderRepository(ctx context.Context, st store.Store, logger *slog.Logger) (OrderRepository, error) {
	r := &orderRepository{store: st, logger: logger}

	data, err := st.Get(ctx, store.KeyOrders)
	switch {
	case errors.Is(err, store.ErrNotFound):
		r.orders = models.SeedOrders()
	case err != nil:
		return nil, fmt.Errorf("load orders: %w", err)
	default:
		if err := json.Unmarshal(data, &r.orders); err != nil {
			logger.Warn("stored order list is malformed, falling back to seed data", "error", err)
			r.orders = models.SeedOrders()
		}
	}

	return r, nil
}

func (r *orderRepository) Append(ctx context.Context, order models.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	updated := make([]models.Order, 0, len(r.orders)+1)
	updated = append(updated, order)
	updated = append(updated, r.orders...)

	if err := r.persist(ctx, updated); err != nil {
		return err
	}
	r.orders = updated
	return nil
}

// UpdateStatus replaces only the status of the matching order. An unknown id
// is a silent no-op, not an error.
func (r *orderRepository) UpdateStatus(ctx context.Context, id string, status models.OrderStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := -1
	for i := range r.orders {
		if r.orders[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil
	}

	updated := make([]models.Order, len(r.orders))
	copy(updated, r.orders)
	updated[idx].Status = status

	if err := r.persist(ctx, updated); err != nil {
		return err
	}
	r.orders = updated
	return nil
}

func (r *orderRepository) GetByID(id string) (*models.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.orders {
		if r.orders[i].ID == id {
			order := r.orders[i]
			return &order, nil
		}
	}
	return nil, ErrOrderNotFound
}

func (r *orderRepository) List() []models.Order {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]models.Order, len(r.orders))
	copy(out, r.orders)
	return out
}

func (r *orderRepository) persist(ctx context.Context, orders []models.Order) error {
	data, err := json.Marshal(orders)
	if err != nil {
		return fmt.Errorf("marshal orders: %w", err)
	}
	if err := r.store.Set(ctx, store.KeyOrders, data); err != nil {
		return fmt.Errorf("persist orders: %w", err)
	}
	return nil
}
