package store_test

import (
	"strings"
	"testing"

	"gpstore/internal/domain"
	"gpstore/internal/seed"
	"gpstore/internal/store"
)

func loginAdmin(t *testing.T, s *store.Store) *domain.User {
	t.Helper()
	u := s.Login(seed.AdminEmail, "admin123")
	if u == nil {
		t.Fatal("admin login failed")
	}
	return u
}

func stageAddress() domain.ShippingAddress {
	return domain.ShippingAddress{
		Name: "Jordan Vale", Street: "12 Harbor Rd", City: "Austin",
		State: "TX", ZipCode: "78701", Country: "USA",
	}
}

func TestPlaceOrderPreconditions(t *testing.T) {
	cases := []struct {
		name  string
		setup func(t *testing.T, s *store.Store)
	}{
		{"no user", func(t *testing.T, s *store.Store) {
			s.AddToCart(product("p1", 100), 1)
			s.SetShippingAddress(stageAddress())
		}},
		{"no address", func(t *testing.T, s *store.Store) {
			loginAdmin(t, s)
			s.AddToCart(product("p1", 100), 1)
		}},
		{"empty cart", func(t *testing.T, s *store.Store) {
			loginAdmin(t, s)
			s.SetShippingAddress(stageAddress())
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := volatileStore()
			tc.setup(t, s)
			before := len(s.Orders())
			if o := s.PlaceOrder(); o != nil {
				t.Fatalf("want nil order, got %+v", o)
			}
			if got := len(s.Orders()); got != before {
				t.Fatalf("orders mutated: %d -> %d", before, got)
			}
		})
	}
}

func TestPlaceOrderShippingSurcharge(t *testing.T) {
	cases := []struct {
		subtotal float64
		total    float64
	}{
		{8000, 8000}, // above threshold: free shipping
		{5000, 5500}, // at or below: flat fee
		{7999, 7999 + 500},
	}
	for _, tc := range cases {
		s := volatileStore()
		loginAdmin(t, s)
		s.SetShippingAddress(stageAddress())
		s.AddToCart(product("p1", tc.subtotal), 1)

		o := s.PlaceOrder()
		if o == nil {
			t.Fatalf("subtotal %v: order not placed", tc.subtotal)
		}
		if o.Total != tc.total {
			t.Fatalf("subtotal %v: want total %v, got %v", tc.subtotal, tc.total, o.Total)
		}
	}
}

func TestPlaceOrderSnapshotAndReset(t *testing.T) {
	s := volatileStore()
	loginAdmin(t, s)
	s.SetShippingAddress(stageAddress())
	s.SetCheckoutStep(2)
	p := product("p1", 100)
	p.Specifications = map[string]string{"Battery Life": "12 hours"}
	s.AddToCart(p, 2)

	o := s.PlaceOrder()
	if o == nil {
		t.Fatal("order not placed")
	}
	if !strings.HasPrefix(o.ID, "ORD-") {
		t.Fatalf("unexpected order id %q", o.ID)
	}
	if o.Status != domain.OrderProcessing {
		t.Fatalf("want status processing, got %q", o.Status)
	}
	if o.ShippingAddress != stageAddress() {
		t.Fatalf("address snapshot mismatch: %+v", o.ShippingAddress)
	}

	// Terminal action: cart and checkout state reset.
	if len(s.Cart()) != 0 || s.CheckoutStep() != 1 || s.ShippingAddress() != nil {
		t.Fatal("cart/checkout state not reset after placement")
	}

	// The stored order owns its items: later cart activity must not reach it.
	s.AddToCart(p, 5)
	stored, ok := s.Order(o.ID)
	if !ok {
		t.Fatal("order missing from registry")
	}
	if len(stored.Items) != 1 || stored.Items[0].Quantity != 2 {
		t.Fatalf("order items changed by later cart mutation: %+v", stored.Items)
	}
	if stored.Items[0].Product.Specifications["Battery Life"] != "12 hours" {
		t.Fatalf("order product snapshot changed: %+v", stored.Items[0].Product)
	}
}

func TestUpdateOrderStatus(t *testing.T) {
	s := volatileStore()
	loginAdmin(t, s)
	s.SetShippingAddress(stageAddress())
	s.AddToCart(product("p1", 100), 1)
	o := s.PlaceOrder()

	if !s.UpdateOrderStatus(o.ID, domain.OrderShipped) {
		t.Fatal("known order reported missing")
	}
	got, _ := s.Order(o.ID)
	if got.Status != domain.OrderShipped {
		t.Fatalf("want shipped, got %q", got.Status)
	}
	if s.UpdateOrderStatus("nope", domain.OrderShipped) {
		t.Fatal("unknown order reported updated")
	}
}

func TestOrdersByUserNewestFirst(t *testing.T) {
	s := volatileStore()
	admin := loginAdmin(t, s)
	for i := 0; i < 2; i++ {
		s.SetShippingAddress(stageAddress())
		s.AddToCart(product("p1", 100), 1)
		if s.PlaceOrder() == nil {
			t.Fatal("order not placed")
		}
	}
	mine := s.OrdersByUser(admin.ID)
	if len(mine) != 2 {
		t.Fatalf("want 2 orders, got %d", len(mine))
	}
	if mine[0].CreatedAt.Before(mine[1].CreatedAt) {
		t.Fatal("orders not newest first")
	}
	if got := s.OrdersByUser("someone-else"); len(got) != 0 {
		t.Fatalf("foreign orders leaked: %d", len(got))
	}
}

func TestStats(t *testing.T) {
	s := volatileStore()
	s.SetProducts([]domain.Product{product("p1", 100), product("p2", 50)})
	s.Signup("Cass", "cass@example.com", "hunter22")
	loginAdmin(t, s)
	s.SetShippingAddress(stageAddress())
	s.AddToCart(product("p1", 100), 1)
	s.PlaceOrder()

	st := s.Stats(5)
	if st.TotalProducts != 2 {
		t.Fatalf("want 2 products, got %d", st.TotalProducts)
	}
	if st.TotalOrders != 1 || len(st.RecentOrders) != 1 {
		t.Fatalf("bad order stats: %+v", st)
	}
	if st.TotalRevenue != 600 { // 100 + 500 shipping
		t.Fatalf("want revenue 600, got %v", st.TotalRevenue)
	}
	if st.TotalCustomers != 1 {
		t.Fatalf("want 1 customer, got %d", st.TotalCustomers)
	}
}
