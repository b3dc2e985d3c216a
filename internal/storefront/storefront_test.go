package storefront

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/mmeshcher/storefront-system/internal/model"
	"github.com/mmeshcher/storefront-system/internal/siteconfig"
)

type stubCatalog struct {
	products []model.Product
}

func (s *stubCatalog) Products() []model.Product {
	return s.products
}

func (s *stubCatalog) ByID(id string) (model.Product, bool) {
	for _, p := range s.products {
		if p.ID == id {
			return p, true
		}
	}
	return model.Product{}, false
}

type stubSession struct {
	user *model.User
}

func (s *stubSession) CurrentUser() *model.User {
	return s.user
}

func (s *stubSession) IsAuthenticated() bool {
	return s.user != nil
}

type stubOrderStore struct {
	orders []model.Order
	err    error
}

func (s *stubOrderStore) Add(o model.Order) error {
	if s.err != nil {
		return s.err
	}
	s.orders = append(s.orders, o)
	return nil
}

type stubMetrics struct {
	visits     int
	addToCarts int
}

func (s *stubMetrics) TrackVisit() {
	s.visits++
}

func (s *stubMetrics) TrackAddToCart() {
	s.addToCarts++
}

type stubSiteConfig struct {
	config siteconfig.Config
}

func (s *stubSiteConfig) Config() siteconfig.Config {
	return s.config
}

func mustDecimal(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	if err != nil {
		t.Fatalf("bad decimal %q: %v", s, err)
	}
	return d
}

func testProduct(id, name, brand, category, price string) model.Product {
	return model.Product{
		ID:       id,
		Name:     name,
		Brand:    brand,
		Category: category,
		Price:    decimal.RequireFromString(price),
	}
}

type testEnv struct {
	controller *Controller
	catalog    *stubCatalog
	session    *stubSession
	orders     *stubOrderStore
	metrics    *stubMetrics
}

func newTestEnv(products ...model.Product) *testEnv {
	env := &testEnv{
		catalog: &stubCatalog{products: products},
		session: &stubSession{},
		orders:  &stubOrderStore{},
		metrics: &stubMetrics{},
	}
	env.controller = NewController(Deps{
		Catalog:    env.catalog,
		Session:    env.session,
		Orders:     env.orders,
		Metrics:    env.metrics,
		SiteConfig: &stubSiteConfig{config: siteconfig.Config{Categories: []string{"Vitamins", "Skincare"}}},
	})
	return env
}
