// Package catalog предоставляет каталог товаров витрины.
// Каталог упорядочен и доступен ядру только для чтения.
package catalog

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mmeshcher/storefront-system/internal/model"
)

// Provider хранит упорядоченный список товаров и индекс по идентификатору.
type Provider struct {
	products []model.Product
	byID     map[string]model.Product
}

// NewProvider создаёт каталог из переданного списка товаров с сохранением порядка.
func NewProvider(products []model.Product) *Provider {
	byID := make(map[string]model.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}
	return &Provider{
		products: products,
		byID:     byID,
	}
}

// Products возвращает копию упорядоченного списка товаров.
func (p *Provider) Products() []model.Product {
	out := make([]model.Product, len(p.products))
	copy(out, p.products)
	return out
}

// ByID возвращает товар по идентификатору.
func (p *Provider) ByID(id string) (model.Product, bool) {
	product, ok := p.byID[id]
	return product, ok
}

// Len возвращает количество товаров в каталоге.
func (p *Provider) Len() int {
	return len(p.products)
}

// DefaultCatalog возвращает демонстрационный набор товаров аптечного магазина.
func DefaultCatalog() []model.Product {
	seed := []struct {
		name     string
		brand    string
		category string
		price    string
	}{
		{"Vitamin C 1000mg", "NutriCore", "Vitamins", "12.99"},
		{"Omega-3 Fish Oil", "NutriCore", "Vitamins", "18.50"},
		{"Daily Multivitamin", "VitaPlus", "Vitamins", "15.25"},
		{"Hydrating Face Cream", "DermaPure", "Skincare", "24.90"},
		{"SPF 50 Sunscreen", "DermaPure", "Skincare", "19.99"},
		{"Gentle Cleansing Gel", "SkinLab", "Skincare", "11.40"},
		{"Ibuprofen 200mg", "MediRelief", "Pain Relief", "6.75"},
		{"Paracetamol 500mg", "MediRelief", "Pain Relief", "4.20"},
		{"Digital Thermometer", "CareTech", "Devices", "22.00"},
		{"Blood Pressure Monitor", "CareTech", "Devices", "64.99"},
		{"Herbal Sleep Aid", "VitaPlus", "Wellness", "13.80"},
		{"Electrolyte Powder", "HydraMax", "Wellness", "9.95"},
	}

	products := make([]model.Product, 0, len(seed))
	for _, s := range seed {
		products = append(products, model.Product{
			ID:       uuid.NewString(),
			Name:     s.name,
			Brand:    s.brand,
			Category: s.category,
			Price:    decimal.RequireFromString(s.price),
		})
	}
	return products
}
