// Package order содержит хранилище оформленных заказов.
package order

import (
	"errors"
	"sync"
	"time"

	"github.com/mmeshcher/storefront-system/internal/model"
)

// ErrOrderNotFound возвращается, если заказ с указанным идентификатором не найден.
var (
	ErrOrderNotFound = errors.New("order not found")
	// ErrOrderExists возвращается при попытке повторно сохранить заказ с тем же идентификатором.
	ErrOrderExists = errors.New("order already exists")
	// ErrUnknownStatus возвращается при попытке установить неизвестный статус заказа.
	ErrUnknownStatus = errors.New("unknown order status")
)

// Store хранит заказы в памяти в порядке их поступления.
type Store struct {
	mu     sync.RWMutex
	orders []*model.Order
	byID   map[string]*model.Order
}

// NewStore создаёт пустое хранилище заказов.
func NewStore() *Store {
	return &Store{
		byID: make(map[string]*model.Order),
	}
}

// Add сохраняет заказ. Хранилище держит собственную копию,
// последующие изменения переданного значения на неё не влияют.
func (s *Store) Add(o model.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.byID[o.ID]; ok {
		return ErrOrderExists
	}

	stored := cloneOrder(&o)
	s.orders = append(s.orders, stored)
	s.byID[stored.ID] = stored

	return nil
}

// ByID возвращает копию заказа по идентификатору.
func (s *Store) ByID(id string) (model.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	o, ok := s.byID[id]
	if !ok {
		return model.Order{}, ErrOrderNotFound
	}
	return *cloneOrder(o), nil
}

// ByUser возвращает заказы пользователя в порядке оформления.
func (s *Store) ByUser(userID string) []model.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []model.Order
	for _, o := range s.orders {
		if o.UserID == userID {
			out = append(out, *cloneOrder(o))
		}
	}
	return out
}

// All возвращает все заказы в порядке оформления. Используется административной панелью.
func (s *Store) All() []model.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Order, 0, len(s.orders))
	for _, o := range s.orders {
		out = append(out, *cloneOrder(o))
	}
	return out
}

// Len возвращает количество сохранённых заказов.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.orders)
}

// UpdateStatus меняет статус заказа и дописывает запись в историю статусов.
// Операция доступна только административной панели, ядро витрины её не вызывает.
func (s *Store) UpdateStatus(orderID string, status model.OrderStatus, changedBy, changedByID string) error {
	if !model.IsValidOrderStatus(status) {
		return ErrUnknownStatus
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	o, ok := s.byID[orderID]
	if !ok {
		return ErrOrderNotFound
	}

	o.Status = status
	o.StatusHistory = append(o.StatusHistory, model.StatusChange{
		Status:      status,
		Date:        time.Now(),
		ChangedBy:   changedBy,
		ChangedByID: changedByID,
	})

	return nil
}

func cloneOrder(o *model.Order) *model.Order {
	c := *o
	c.Items = make([]model.CartItem, len(o.Items))
	copy(c.Items, o.Items)
	c.StatusHistory = make([]model.StatusChange, len(o.StatusHistory))
	copy(c.StatusHistory, o.StatusHistory)
	return &c
}
