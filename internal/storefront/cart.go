package storefront

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/mmeshcher/storefront-system/internal/model"
)

// AddToCart добавляет товар в корзину. Если позиция с таким идентификатором
// уже есть, её количество увеличивается на quantity, иначе добавляется новая
// позиция. Количество не проверяется: за корректность отвечает вызывающий.
func (c *Controller) AddToCart(p model.Product, quantity int) {
	if c.deps.Metrics != nil {
		c.deps.Metrics.TrackAddToCart()
	}

	merged := false
	for i := range c.cartItems {
		if c.cartItems[i].ID == p.ID {
			c.cartItems[i].Quantity += quantity
			merged = true
			break
		}
	}
	if !merged {
		c.cartItems = append(c.cartItems, model.CartItem{Product: p, Quantity: quantity})
	}

	c.ShowToast(fmt.Sprintf("Added %d x %s to cart", quantity, p.Name))
}

// UpdateQuantity изменяет количество позиции на delta. Если новое количество
// не положительно, позиция остаётся в корзине без изменений: удаление
// возможно только явным вызовом RemoveItem. Для отсутствующего
// идентификатора вызов ничего не делает.
func (c *Controller) UpdateQuantity(id string, delta int) {
	for i := range c.cartItems {
		if c.cartItems[i].ID == id {
			if newQty := c.cartItems[i].Quantity + delta; newQty > 0 {
				c.cartItems[i].Quantity = newQty
			}
			return
		}
	}
}

// RemoveItem удаляет позицию из корзины. Для отсутствующего
// идентификатора вызов ничего не делает.
func (c *Controller) RemoveItem(id string) {
	filtered := c.cartItems[:0]
	for _, item := range c.cartItems {
		if item.ID != id {
			filtered = append(filtered, item)
		}
	}
	c.cartItems = filtered
}

// CartItems возвращает копию позиций корзины в порядке добавления.
func (c *Controller) CartItems() []model.CartItem {
	out := make([]model.CartItem, len(c.cartItems))
	copy(out, c.cartItems)
	return out
}

// CartCount возвращает суммарное количество единиц товара в корзине.
func (c *Controller) CartCount() int {
	count := 0
	for _, item := range c.cartItems {
		count += item.Quantity
	}
	return count
}

// Subtotal возвращает стоимость корзины без доставки.
func (c *Controller) Subtotal() decimal.Decimal {
	subtotal := decimal.Zero
	for _, item := range c.cartItems {
		subtotal = subtotal.Add(item.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	return subtotal
}

// Totals возвращает стоимость корзины, доставку и итог по текущему правилу:
// доставка бесплатна при сумме строго больше 50.00, иначе 9.99.
func (c *Controller) Totals() (subtotal, shipping, total decimal.Decimal) {
	subtotal = c.Subtotal()
	shipping = shippingFee
	if subtotal.GreaterThan(freeShippingThreshold) {
		shipping = decimal.Zero
	}
	return subtotal, shipping, subtotal.Add(shipping)
}

// SetSearchQuery устанавливает строку поиска.
func (c *Controller) SetSearchQuery(query string) {
	c.searchQuery = query
}

// SearchQuery возвращает текущую строку поиска.
func (c *Controller) SearchQuery() string {
	return c.searchQuery
}

// SetActiveCategory устанавливает активную категорию фильтра.
func (c *Controller) SetActiveCategory(category string) {
	c.activeCategory = category
}

// ActiveCategory возвращает активную категорию фильтра.
func (c *Controller) ActiveCategory() string {
	return c.activeCategory
}

// ClearFilters сбрасывает категорию на "All" и очищает строку поиска.
func (c *Controller) ClearFilters() {
	c.activeCategory = AllCategories
	c.searchQuery = ""
}

// VisibleProducts возвращает товары каталога, проходящие текущие фильтры.
// Товар виден, если его категория совпадает с активной (или активна "All")
// и строка поиска входит в название либо бренд без учёта регистра.
// Пустая строка поиска пропускает все товары. Результат вычисляется заново
// при каждом вызове, отдельно он не хранится.
func (c *Controller) VisibleProducts() []model.Product {
	query := strings.ToLower(c.searchQuery)

	var out []model.Product
	for _, p := range c.deps.Catalog.Products() {
		matchesCategory := c.activeCategory == AllCategories || p.Category == c.activeCategory
		matchesSearch := strings.Contains(strings.ToLower(p.Name), query) ||
			strings.Contains(strings.ToLower(p.Brand), query)
		if matchesCategory && matchesSearch {
			out = append(out, p)
		}
	}
	return out
}
