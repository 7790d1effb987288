package order

import (
	"sort"
	"sync"
	"time"

	"github.com/benjoezac-cmd/big-bite-kebabs/internal/domain"
	apperrors "github.com/benjoezac-cmd/big-bite-kebabs/internal/errors"
)

const defaultListLimit = 50

// ListFilter narrows List results. Zero-value fields are ignored; Limit <= 0
// falls back to the default of 50.
type ListFilter struct {
	Status        string
	CustomerPhone string
	Limit         int
}

// Store holds every order for the lifetime of the process. Orders are keyed
// by orderId with a separate insertion-order index; all access goes through
// the mutex, so it is safe under concurrent request handling. Orders are
// never deleted.
type Store struct {
	mu   sync.RWMutex
	byID map[string]domain.Order
	ids  []string
}

func NewStore() *Store {
	return &Store{
		byID: make(map[string]domain.Order),
	}
}

// Append persists a new order. The builder guarantees orderId uniqueness.
func (s *Store) Append(order domain.Order) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.byID[order.OrderID] = order
	s.ids = append(s.ids, order.OrderID)
}

func (s *Store) Find(orderID string) (domain.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	order, ok := s.byID[orderID]
	if !ok {
		return domain.Order{}, apperrors.NewNotFoundError("Order not found")
	}
	return order, nil
}

// List returns matching orders newest-first, truncated to the filter's limit.
// The second return value is the match count before truncation.
func (s *Store) List(filter ListFilter) ([]domain.Order, int) {
	s.mu.RLock()

	matched := make([]domain.Order, 0, len(s.ids))
	for _, id := range s.ids {
		order := s.byID[id]
		if filter.Status != "" && order.Status != filter.Status {
			continue
		}
		if filter.CustomerPhone != "" && order.CustomerPhone != filter.CustomerPhone {
			continue
		}
		matched = append(matched, order)
	}
	s.mu.RUnlock()

	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})

	limit := filter.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}

	total := len(matched)
	if total > limit {
		matched = matched[:limit]
	}
	return matched, total
}

// UpdateStatus overwrites the order's status and stamps updatedAt. Transitions
// are not validated against a fixed order.
func (s *Store) UpdateStatus(orderID, status string, updatedAt time.Time) (domain.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	order, ok := s.byID[orderID]
	if !ok {
		return domain.Order{}, apperrors.NewNotFoundError("Order not found")
	}

	order.Status = status
	order.UpdatedAt = &updatedAt
	s.byID[orderID] = order
	return order, nil
}
