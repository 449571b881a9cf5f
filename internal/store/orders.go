package store

import (
	"strconv"
	"time"

	"gpstore/internal/domain"
)

// SetOrders replaces the order registry.
func (s *Store) SetOrders(orders []domain.Order) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders = orders
	s.save()
}

// Orders returns a copy of the order registry.
func (s *Store) Orders() []domain.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.Order(nil), s.orders...)
}

// Order returns the registry entry for id.
func (s *Store) Order(id string) (domain.Order, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, o := range s.orders {
		if o.ID == id {
			return o, true
		}
	}
	return domain.Order{}, false
}

// PlaceOrder consumes the cart and staged address into a new order. It
// requires an authenticated user, a staged shipping address and a non-empty
// cart; if any precondition fails it returns nil and changes nothing. On
// success the order carries deep-copied item and address snapshots, the cart
// subtotal plus the shipping surcharge, and status processing; the cart and
// checkout state are then cleared.
func (s *Store) PlaceOrder() *domain.Order {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.user == nil || s.shippingAddress == nil || len(s.cart) == 0 {
		return nil
	}

	subtotal := s.cartTotalLocked()
	total := subtotal
	if subtotal <= freeShippingThreshold {
		total += shippingFee
	}

	items := make([]domain.CartItem, len(s.cart))
	for i, it := range s.cart {
		items[i] = it.Clone()
	}

	now := time.Now()
	order := domain.Order{
		ID:              "ORD-" + strconv.FormatInt(now.UnixMilli(), 10),
		UserID:          s.user.ID,
		Items:           items,
		Total:           total,
		Status:          domain.OrderProcessing,
		CreatedAt:       now,
		ShippingAddress: *s.shippingAddress,
	}
	s.orders = append(s.orders, order)
	s.clearCartLocked()
	s.save()
	return &order
}

// UpdateOrderStatus moves the order to a new status. Unknown ids report
// false; the order's items, total and address stay untouched.
func (s *Store) UpdateOrderStatus(id, status string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.orders {
		if s.orders[i].ID == id {
			s.orders[i].Status = status
			s.save()
			return true
		}
	}
	return false
}

// OrdersByUser lists orders belonging to userID, newest first.
func (s *Store) OrdersByUser(userID string) []domain.Order {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []domain.Order
	for _, o := range s.orders {
		if o.UserID == userID {
			out = append(out, o)
		}
	}
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// Stats summarizes the registries for the admin dashboard. recent limits the
// returned order tail, newest first.
func (s *Store) Stats(recent int) domain.StoreStats {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := domain.StoreStats{
		TotalProducts: len(s.products),
		TotalOrders:   len(s.orders),
	}
	for _, o := range s.orders {
		st.TotalRevenue += o.Total
	}
	for _, u := range s.users {
		if u.Role == domain.RoleCustomer {
			st.TotalCustomers++
		}
	}
	if recent > len(s.orders) {
		recent = len(s.orders)
	}
	for i := len(s.orders) - 1; i >= len(s.orders)-recent; i-- {
		st.RecentOrders = append(st.RecentOrders, s.orders[i])
	}
	return st
}
