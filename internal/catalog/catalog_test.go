package catalog

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/mmeshcher/storefront-system/internal/model"
)

func TestProvider_PreservesOrderAndLooksUpByID(t *testing.T) {
	products := []model.Product{
		{ID: "p1", Name: "Vitamin C", Price: decimal.RequireFromString("12.99")},
		{ID: "p2", Name: "Face Cream", Price: decimal.RequireFromString("24.90")},
	}

	p := NewProvider(products)

	got := p.Products()
	if len(got) != 2 || got[0].ID != "p1" || got[1].ID != "p2" {
		t.Fatalf("Products() = %+v, want original order", got)
	}

	// Выданный список — копия, его перестановка каталог не меняет.
	got[0], got[1] = got[1], got[0]
	again := p.Products()
	if again[0].ID != "p1" {
		t.Fatalf("catalog order mutated through returned slice")
	}

	product, ok := p.ByID("p2")
	if !ok || product.Name != "Face Cream" {
		t.Fatalf("ByID(p2) = %+v, %v", product, ok)
	}

	if _, ok := p.ByID("missing"); ok {
		t.Fatalf("ByID returned a product for unknown id")
	}

	if p.Len() != 2 {
		t.Fatalf("Len = %d, want 2", p.Len())
	}
}

func TestDefaultCatalog(t *testing.T) {
	products := DefaultCatalog()
	if len(products) == 0 {
		t.Fatalf("default catalog is empty")
	}

	seen := make(map[string]bool, len(products))
	for _, p := range products {
		if p.ID == "" || seen[p.ID] {
			t.Fatalf("duplicate or empty product id: %+v", p)
		}
		seen[p.ID] = true

		if !p.Price.IsPositive() {
			t.Fatalf("non-positive price: %+v", p)
		}
	}
}
