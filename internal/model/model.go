// Package model содержит доменные сущности витрины магазина.
package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Role описывает роль пользователя в системе.
type Role string

const (
	RoleCustomer  Role = "customer"
	RoleAdmin     Role = "admin"
	RoleAssistant Role = "assistant"
	RoleAgent     Role = "agent"
)

// User представляет зарегистрированного пользователя магазина.
type User struct {
	ID           string
	Name         string
	Email        string
	Role         Role
	PasswordHash []byte
	CreatedAt    time.Time
}

// HasAdminAccess сообщает, открыт ли пользователю доступ к административной панели.
func (u *User) HasAdminAccess() bool {
	if u == nil {
		return false
	}
	return u.Role == RoleAdmin || u.Role == RoleAssistant || u.Role == RoleAgent
}

// Product описывает товар каталога. Запись неизменяема для ядра витрины.
type Product struct {
	ID       string
	Name     string
	Brand    string
	Category string
	Price    decimal.Decimal
}

// CartItem описывает позицию корзины: товар и его количество.
// Количество всегда не меньше единицы, пока позиция находится в корзине.
type CartItem struct {
	Product
	Quantity int
}

// OrderStatus описывает статус обработки заказа.
type OrderStatus string

const (
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// IsValidOrderStatus проверяет, входит ли статус в число известных системе.
func IsValidOrderStatus(s OrderStatus) bool {
	switch s {
	case OrderStatusProcessing, OrderStatusShipped, OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

// StatusChange описывает одну запись истории смены статуса заказа.
type StatusChange struct {
	Status      OrderStatus
	Date        time.Time
	ChangedBy   string
	ChangedByID string
}

// Order описывает оформленный заказ: снимок корзины на момент покупки.
// Ядро витрины не изменяет заказ после создания; история статусов
// пополняется только хранилищем заказов.
type Order struct {
	ID            string
	UserID        string
	CustomerName  string
	CustomerEmail string
	Date          string
	Total         decimal.Decimal
	Status        OrderStatus
	Items         []CartItem
	StatusHistory []StatusChange
}

// View описывает активный экран витрины. Одновременно активен ровно один.
type View string

const (
	ViewHome    View = "home"
	ViewAdmin   View = "admin"
	ViewProfile View = "profile"
	ViewOrders  View = "orders"
)

// SlideLinkType описывает тип ссылки промо-слайда.
type SlideLinkType string

const (
	SlideLinkCategory SlideLinkType = "category"
	SlideLinkProduct  SlideLinkType = "product"
	SlideLinkNone     SlideLinkType = "none"
)

// Slide описывает промо-слайд главного экрана.
type Slide struct {
	ID         string
	Title      string
	Subtitle   string
	LinkType   SlideLinkType
	LinkTarget string
}
