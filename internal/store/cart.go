package store

import "gpstore/internal/domain"

// AddToCart merges the product into the cart: an existing line for the same
// product id has its quantity incremented, otherwise a new line is appended.
// Quantity is taken as given; callers wanting a floor pass at least 1.
func (s *Store) AddToCart(p domain.Product, quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.cart {
		if s.cart[i].ID == p.ID {
			s.cart[i].Quantity += quantity
			s.save()
			return
		}
	}
	s.cart = append(s.cart, domain.CartItem{ID: p.ID, Product: p, Quantity: quantity})
	s.save()
}

// RemoveFromCart deletes the line for productID. Unknown ids are a no-op.
func (s *Store) RemoveFromCart(productID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.removeLocked(productID)
	s.save()
}

func (s *Store) removeLocked(productID string) {
	kept := s.cart[:0]
	for _, it := range s.cart {
		if it.ID != productID {
			kept = append(kept, it)
		}
	}
	s.cart = kept
}

// UpdateQuantity replaces the line's quantity. A quantity of zero or less
// removes the line, same as RemoveFromCart. Unknown ids are a no-op.
func (s *Store) UpdateQuantity(productID string, quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if quantity <= 0 {
		s.removeLocked(productID)
		s.save()
		return
	}
	for i := range s.cart {
		if s.cart[i].ID == productID {
			s.cart[i].Quantity = quantity
			break
		}
	}
	s.save()
}

// ClearCart empties the cart and resets checkout progress: an empty cart
// invalidates any in-flight checkout, so the step returns to shipping and the
// staged address is dropped.
func (s *Store) ClearCart() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clearCartLocked()
	s.save()
}

func (s *Store) clearCartLocked() {
	s.cart = nil
	s.shippingAddress = nil
	s.checkoutStep = 1
}

// Cart returns a copy of the cart lines.
func (s *Store) Cart() []domain.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.CartItem(nil), s.cart...)
}

// CartTotal recomputes the subtotal, price times quantity over every line.
// Plain float64 accumulation, no rounding.
func (s *Store) CartTotal() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cartTotalLocked()
}

func (s *Store) cartTotalLocked() float64 {
	total := 0.0
	for _, it := range s.cart {
		total += it.Product.Price * float64(it.Quantity)
	}
	return total
}

// CartItemsCount is the sum of line quantities (badge count), not the number
// of distinct lines.
func (s *Store) CartItemsCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, it := range s.cart {
		n += it.Quantity
	}
	return n
}
