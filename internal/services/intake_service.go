package services

import (
	"context"
	"dan_assistant/internal/models"
	"dan_assistant/internal/repository"
	"dan_assistant/internal/store"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"strconv"
	"strings"
	"sync"
	"time"
)

// OrderPublisher receives every captured order, best effort.
type OrderPublisher interface {
	PublishOrder(ctx context.Context, order models.Order)
}

// IntakeService is the normalization boundary between the assistant's
// save_order payload and the order model. Whatever arrives, an order comes
// out; missing or mistyped fields get defaults, never errors.
type IntakeService interface {
	CaptureOrder(ctx context.Context, payload map[string]interface{}) (models.Order, error)
	LastCustomer() *models.LastCustomer
}

type intakeService struct {
	orderRepo repository.OrderRepository
	store     store.Store
	publisher OrderPublisher
	logger    *slog.Logger

	mu           sync.Mutex
	lastCustomer *models.LastCustomer
}

// NewIntakeService loads the last-customer memory from the store. publisher
// may be nil when order events are disabled.
func NewIntakeService(ctx context.Context, orderRepo repository.OrderRepository, st store.Store, publisher OrderPublisher, logger *slog.Logger) IntakeService {
	s := &intakeService{orderRepo: orderRepo, store: st, publisher: publisher, logger: logger}

	data, err := st.Get(ctx, store.KeyLastCustomer)
	if err == nil {
		var last models.LastCustomer
		if err := json.Unmarshal(data, &last); err != nil {
			logger.Warn("stored last customer is malformed, ignoring", "error", err)
		} else {
			s.lastCustomer = &last
		}
	} else if !errors.Is(err, store.ErrNotFound) {
		logger.Warn("failed to load last customer", "error", err)
	}

	return s
}

// NormalizeOrder turns the loosely-typed save_order arguments into a
// well-formed order: coerced item quantities and prices, the item-sum total
// with the supplied total as fallback when the sum is zero, placeholder
// contact fields, a fresh id and date, and status "new".
func NormalizeOrder(payload map[string]interface{}) models.Order {
	items := normalizeItems(payload["items"])

	var total float64
	for _, item := range items {
		total += item.Price * float64(item.Quantity)
	}
	if total == 0 {
		if supplied, ok := toFloat(payload["totalAmount"]); ok {
			total = supplied
		}
	}

	return models.Order{
		ID:           fmt.Sprintf("ORD-%d", rand.Intn(9000)+1000),
		Date:         time.Now().Format("02/01/2006, 15:04:05"),
		CustomerName: stringOrDefault(payload["customerName"], models.PlaceholderCustomer),
		Phone:        stringOrDefault(payload["phone"], models.PlaceholderPhone),
		Address:      stringOrDefault(payload["address"], models.PlaceholderAddress),
		Items:        items,
		TotalAmount:  total,
		Status:       models.StatusNew,
	}
}

func (s *intakeService) CaptureOrder(ctx context.Context, payload map[string]interface{}) (models.Order, error) {
	order := NormalizeOrder(payload)

	if err := s.orderRepo.Append(ctx, order); err != nil {
		return models.Order{}, fmt.Errorf("store order: %w", err)
	}

	last := models.LastCustomer{Name: order.CustomerName, Phone: order.Phone, Address: order.Address}
	if data, err := json.Marshal(last); err == nil {
		if err := s.store.Set(ctx, store.KeyLastCustomer, data); err != nil {
			// The order is already captured; losing the greeting memory is
			// not worth failing the intake over.
			s.logger.Warn("failed to persist last customer", "error", err)
		}
	}
	s.mu.Lock()
	s.lastCustomer = &last
	s.mu.Unlock()

	if s.publisher != nil {
		s.publisher.PublishOrder(ctx, order)
	}

	s.logger.Info("order captured", "order_id", order.ID, "total", order.TotalAmount, "items", len(order.Items))
	return order, nil
}

func (s *intakeService) LastCustomer() *models.LastCustomer {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.lastCustomer == nil {
		return nil
	}
	last := *s.lastCustomer
	return &last
}

func normalizeItems(raw interface{}) []models.OrderItem {
	list, ok := raw.([]interface{})
	if !ok {
		return []models.OrderItem{}
	}

	items := make([]models.OrderItem, 0, len(list))
	for _, entry := range list {
		fields, ok := entry.(map[string]interface{})
		if !ok {
			continue
		}

		quantity := 1
		if q, ok := toFloat(fields["quantity"]); ok && q != 0 {
			quantity = int(q)
		}
		price, _ := toFloat(fields["price"])

		items = append(items, models.OrderItem{
			Name:     stringOrDefault(fields["name"], models.PlaceholderItemName),
			Quantity: quantity,
			Price:    price,
		})
	}
	return items
}

func toFloat(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		return f, err == nil
	}
	return 0, false
}

// Only the empty string falls back; whitespace-only values pass through
// untouched, the same way a truthiness check would treat them.
func stringOrDefault(v interface{}, fallback string) string {
	if s, ok := v.(string); ok && s != "" {
		return s
	}
	return fallback
}
