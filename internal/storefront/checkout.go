package storefront

import (
	"strconv"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/mmeshcher/storefront-system/internal/model"
)

// Правило доставки фиксировано и не настраивается:
// бесплатно при сумме строго больше 50.00, иначе 9.99.
var (
	freeShippingThreshold = decimal.NewFromInt(50)
	shippingFee           = decimal.RequireFromString("9.99")
)

// Checkout оформляет заказ из текущей корзины.
//
// Без открытой сессии заказ не создаётся и корзина не очищается:
// пользователю показывается сообщение и окно входа. При открытой сессии
// создаётся неизменяемый снимок корзины, заказ передаётся в хранилище,
// корзина очищается и активным экраном становится список заказов.
// Пустая корзина не блокирует оформление: получится заказ на одну доставку.
func (c *Controller) Checkout() {
	c.cartOpen = false

	if !c.deps.Session.IsAuthenticated() {
		c.ShowToast("Please sign in to complete your purchase.")
		c.authModalOpen = true
		return
	}

	user := c.deps.Session.CurrentUser()
	if user == nil {
		return
	}

	subtotal, _, total := c.Totals()
	now := time.Now()

	items := make([]model.CartItem, len(c.cartItems))
	copy(items, c.cartItems)

	order := model.Order{
		ID:            newOrderID(now),
		UserID:        user.ID,
		CustomerName:  user.Name,
		CustomerEmail: user.Email,
		Date:          now.Format("2006-01-02"),
		Total:         total,
		Status:        model.OrderStatusProcessing,
		Items:         items,
		StatusHistory: []model.StatusChange{
			{Status: model.OrderStatusProcessing, Date: now, ChangedBy: "System", ChangedByID: "sys"},
		},
	}

	if err := c.deps.Orders.Add(order); err != nil {
		c.logger.Error("add order error", zap.Error(err), zap.String("order", order.ID))
	}

	c.cartItems = nil
	c.ShowToast("Order placed successfully!")
	c.view = model.ViewOrders

	c.logger.Info("order placed",
		zap.String("order", order.ID),
		zap.String("user", user.ID),
		zap.String("subtotal", subtotal.StringFixed(2)),
		zap.String("total", total.StringFixed(2)),
	)
}

// newOrderID формирует идентификатор заказа вида ORD-XXXXXX
// из шести последних цифр текущего времени в миллисекундах.
func newOrderID(now time.Time) string {
	ms := strconv.FormatInt(now.UnixMilli(), 10)
	return "ORD-" + ms[len(ms)-6:]
}
