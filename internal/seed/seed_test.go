package seed_test

import (
	"testing"

	"gpstore/internal/domain"
	"gpstore/internal/seed"
)

func TestAdminRecord(t *testing.T) {
	a := seed.Admin()
	if a.ID != seed.AdminID || a.Email != seed.AdminEmail {
		t.Fatalf("bad admin identity: %+v", a)
	}
	if a.Password == "" {
		t.Fatal("admin must carry a credential")
	}
	if a.Role != domain.RoleAdmin {
		t.Fatalf("bad admin role: %q", a.Role)
	}
}

func TestProductsShape(t *testing.T) {
	products := seed.Products()
	if len(products) != 45 {
		t.Fatalf("want 45 products, got %d", len(products))
	}

	byCategory := map[string]int{}
	seen := map[string]bool{}
	for _, p := range products {
		if p.ID == "" || seen[p.ID] {
			t.Fatalf("bad or duplicate id: %+v", p)
		}
		seen[p.ID] = true
		if !domain.ValidCategory(p.Category) {
			t.Fatalf("bad category %q", p.Category)
		}
		if p.Price <= 0 {
			t.Fatalf("non-positive price: %+v", p)
		}
		if p.Rating < 0 || p.Rating > 5 {
			t.Fatalf("rating out of range: %v", p.Rating)
		}
		if len(p.Specifications) == 0 || len(p.Tags) == 0 {
			t.Fatalf("missing specs or tags: %+v", p)
		}
		byCategory[p.Category]++
	}

	if byCategory[domain.CategoryGPSDevices] != 15 ||
		byCategory[domain.CategoryGPSTrackers] != 12 ||
		byCategory[domain.CategoryHomeAutomation] != 18 {
		t.Fatalf("bad category split: %v", byCategory)
	}
}

func TestOrdersShape(t *testing.T) {
	orders := seed.Orders()
	if len(orders) != 20 {
		t.Fatalf("want 20 orders, got %d", len(orders))
	}
	for _, o := range orders {
		if o.ID == "" || o.UserID == "" {
			t.Fatalf("missing ids: %+v", o)
		}
		if !domain.ValidOrderStatus(o.Status) {
			t.Fatalf("bad status %q", o.Status)
		}
		if o.Total < 100 || o.Total > 2000 {
			t.Fatalf("total out of range: %v", o.Total)
		}
		if o.Items == nil || len(o.Items) != 0 {
			t.Fatalf("historical orders carry empty item lists: %+v", o.Items)
		}
	}
}
