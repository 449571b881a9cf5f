package store

import "gpstore/internal/domain"

// UI-facing scalar state. None of it enters the persisted slice, so every
// fresh load starts from defaults; the adapter still observes each change.

func (s *Store) SetIsCartOpen(open bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.isCartOpen = open
	s.save()
}

func (s *Store) IsCartOpen() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.isCartOpen
}

func (s *Store) SetSearchQuery(q string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.searchQuery = q
	s.save()
}

func (s *Store) SearchQuery() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.searchQuery
}

func (s *Store) SetSelectedCategory(category string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selectedCategory = category
	s.save()
}

func (s *Store) SelectedCategory() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selectedCategory
}

func (s *Store) SetPriceRange(lo, hi float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.priceRange = [2]float64{lo, hi}
	s.save()
}

func (s *Store) PriceRange() (float64, float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.priceRange[0], s.priceRange[1]
}

func (s *Store) SetSortBy(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sortBy = key
	s.save()
}

func (s *Store) SortBy() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sortBy
}

// SetCheckoutStep moves the checkout machine: 1 is the shipping form, 2 the
// payment form. Collaborators gate step 2 on a staged address.
func (s *Store) SetCheckoutStep(step int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.checkoutStep = step
	s.save()
}

func (s *Store) CheckoutStep() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.checkoutStep
}

// SetShippingAddress stages the address for the in-flight checkout.
func (s *Store) SetShippingAddress(addr domain.ShippingAddress) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.shippingAddress = &addr
	s.save()
}

// ShippingAddress returns a copy of the staged address, or nil when none is
// staged.
func (s *Store) ShippingAddress() *domain.ShippingAddress {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.shippingAddress == nil {
		return nil
	}
	cp := *s.shippingAddress
	return &cp
}
