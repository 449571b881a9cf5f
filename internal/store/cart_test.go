package store_test

import (
	"testing"

	"gpstore/internal/domain"
	"gpstore/internal/store"
)

func volatileStore() *store.Store {
	return store.New(nil, "test-store")
}

func product(id string, priceVal float64) domain.Product {
	return domain.Product{
		ID:       id,
		Name:     "Product " + id,
		Price:    priceVal,
		Category: domain.CategoryGPSDevices,
		Tags:     []string{"GPS"},
	}
}

func TestAddToCartMergesSameProduct(t *testing.T) {
	s := volatileStore()
	p := product("p1", 100)

	s.AddToCart(p, 1)
	s.AddToCart(p, 2)
	s.AddToCart(p, 3)

	cart := s.Cart()
	if len(cart) != 1 {
		t.Fatalf("want one line, got %d", len(cart))
	}
	if cart[0].ID != "p1" || cart[0].Quantity != 6 {
		t.Fatalf("bad line: %+v", cart[0])
	}
}

func TestAddToCartDistinctProducts(t *testing.T) {
	s := volatileStore()
	s.AddToCart(product("p1", 100), 1)
	s.AddToCart(product("p2", 50), 2)

	if got := len(s.Cart()); got != 2 {
		t.Fatalf("want 2 lines, got %d", got)
	}
	if got := s.CartItemsCount(); got != 3 {
		t.Fatalf("want count 3, got %d", got)
	}
}

func TestUpdateQuantityZeroOrNegativeRemoves(t *testing.T) {
	for _, qty := range []int{0, -1} {
		s := volatileStore()
		s.AddToCart(product("p1", 100), 2)
		s.UpdateQuantity("p1", qty)
		if got := len(s.Cart()); got != 0 {
			t.Fatalf("qty %d: want empty cart, got %d lines", qty, got)
		}
	}
}

func TestUpdateQuantityUnknownIDIsNoop(t *testing.T) {
	s := volatileStore()
	s.AddToCart(product("p1", 100), 2)
	s.UpdateQuantity("nope", 5)

	cart := s.Cart()
	if len(cart) != 1 || cart[0].Quantity != 2 {
		t.Fatalf("cart changed: %+v", cart)
	}
}

func TestRemoveFromCartAbsentIsNoop(t *testing.T) {
	s := volatileStore()
	s.AddToCart(product("p1", 100), 1)
	s.RemoveFromCart("nope")
	if got := len(s.Cart()); got != 1 {
		t.Fatalf("want 1 line, got %d", got)
	}
}

func TestCartTotalRoundTrip(t *testing.T) {
	s := volatileStore()
	s.AddToCart(product("p1", 100), 2)
	before := s.CartTotal()

	s.AddToCart(product("p2", 33.33), 3)
	s.RemoveFromCart("p2")

	if got := s.CartTotal(); got != before {
		t.Fatalf("total not restored: want %v, got %v", before, got)
	}
}

func TestCartDerivedValuesScenario(t *testing.T) {
	s := volatileStore()
	s.AddToCart(product("pA", 100), 2)

	if got := s.CartTotal(); got != 200 {
		t.Fatalf("want total 200, got %v", got)
	}
	if got := s.CartItemsCount(); got != 2 {
		t.Fatalf("want count 2, got %d", got)
	}

	s.UpdateQuantity("pA", 1)
	if got := s.CartTotal(); got != 100 {
		t.Fatalf("want total 100, got %v", got)
	}
	if got := s.CartItemsCount(); got != 1 {
		t.Fatalf("want count 1, got %d", got)
	}
}

func TestClearCartResetsCheckoutState(t *testing.T) {
	s := volatileStore()
	s.AddToCart(product("p1", 100), 1)
	s.SetShippingAddress(domain.ShippingAddress{Name: "A", Street: "1 Main", City: "X", State: "TX", ZipCode: "12345", Country: "USA"})
	s.SetCheckoutStep(2)

	s.ClearCart()

	if got := len(s.Cart()); got != 0 {
		t.Fatalf("cart not empty: %d lines", got)
	}
	if got := s.CheckoutStep(); got != 1 {
		t.Fatalf("want step 1, got %d", got)
	}
	if s.ShippingAddress() != nil {
		t.Fatal("staged address survived ClearCart")
	}
}
