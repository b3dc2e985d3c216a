// Package siteconfig предоставляет конфигурацию содержимого витрины:
// категории, промо-баннер, преимущества магазина и слайды главного экрана.
package siteconfig

import "github.com/mmeshcher/storefront-system/internal/model"

// PromoBanner описывает промо-баннер главного экрана.
type PromoBanner struct {
	Title           string
	Subtitle        string
	ButtonText      string
	Image           string
	BackgroundColor string
	TextColor       string
	IsVisible       bool
}

// Feature описывает один пункт блока преимуществ магазина.
type Feature struct {
	ID          string
	Icon        string
	Title       string
	Description string
}

// Config содержит конфигурацию содержимого витрины.
type Config struct {
	Categories      []string
	PromoBanner     *PromoBanner
	Features        []Feature
	Slides          []model.Slide
	BackgroundColor string
}

// Provider отдаёт конфигурацию содержимого витрины только для чтения.
type Provider struct {
	config Config
}

// NewProvider создаёт провайдер с переданной конфигурацией.
func NewProvider(config Config) *Provider {
	return &Provider{config: config}
}

// Config возвращает текущую конфигурацию витрины.
func (p *Provider) Config() Config {
	return p.config
}

// Categories возвращает список категорий каталога без служебной категории "All".
func (p *Provider) Categories() []string {
	out := make([]string, len(p.config.Categories))
	copy(out, p.config.Categories)
	return out
}

// DefaultConfig возвращает демонстрационную конфигурацию витрины.
func DefaultConfig() Config {
	return Config{
		Categories: []string{"Vitamins", "Skincare", "Pain Relief", "Devices", "Wellness"},
		PromoBanner: &PromoBanner{
			Title:           "Autumn Wellness Sale",
			Subtitle:        "Up to 30% off vitamins and supplements",
			ButtonText:      "Shop Now",
			Image:           "promo-autumn.jpg",
			BackgroundColor: "#e8f5e9",
			TextColor:       "#1b5e20",
			IsVisible:       true,
		},
		Features: []Feature{
			{ID: "f1", Icon: "truck", Title: "Free Delivery", Description: "Free shipping on orders over $50"},
			{ID: "f2", Icon: "shield", Title: "Certified Products", Description: "Every item checked by licensed pharmacists"},
			{ID: "f3", Icon: "clock", Title: "Same-Day Dispatch", Description: "Orders before 2pm ship the same day"},
		},
		Slides: []model.Slide{
			{ID: "s1", Title: "Vitamins for the season", Subtitle: "Boost your immunity", LinkType: model.SlideLinkCategory, LinkTarget: "Vitamins"},
			{ID: "s2", Title: "New in skincare", Subtitle: "Dermatologist approved", LinkType: model.SlideLinkCategory, LinkTarget: "Skincare"},
			{ID: "s3", Title: "Welcome to the store", Subtitle: "Browse our full range", LinkType: model.SlideLinkNone},
		},
		BackgroundColor: "#f9fafb",
	}
}
