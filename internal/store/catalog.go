package store

import (
	"sort"
	"strings"
	"time"

	"gpstore/internal/domain"
)

// ProductPatch is a partial product update; nil fields are left untouched.
type ProductPatch struct {
	Name           *string           `json:"name"`
	Description    *string           `json:"description"`
	Price          *float64          `json:"price"`
	OriginalPrice  *float64          `json:"originalPrice"`
	Category       *string           `json:"category"`
	Image          *string           `json:"image"`
	Images         []string          `json:"images"`
	Specifications map[string]string `json:"specifications"`
	InStock        *bool             `json:"inStock"`
	Rating         *float64          `json:"rating"`
	Reviews        *int              `json:"reviews"`
	Brand          *string           `json:"brand"`
	Tags           []string          `json:"tags"`
	Featured       *bool             `json:"featured"`
}

// SetProducts replaces the whole catalog.
func (s *Store) SetProducts(products []domain.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.products = products
	s.save()
}

// AddProduct appends one product to the catalog.
func (s *Store) AddProduct(p domain.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.products = append(s.products, p)
	s.save()
}

// UpdateProduct applies the patch to the matching product and stamps its
// UpdatedAt. Unknown ids are a no-op.
func (s *Store) UpdateProduct(id string, patch ProductPatch) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.products {
		if s.products[i].ID != id {
			continue
		}
		p := &s.products[i]
		if patch.Name != nil {
			p.Name = *patch.Name
		}
		if patch.Description != nil {
			p.Description = *patch.Description
		}
		if patch.Price != nil {
			p.Price = *patch.Price
		}
		if patch.OriginalPrice != nil {
			p.OriginalPrice = *patch.OriginalPrice
		}
		if patch.Category != nil {
			p.Category = *patch.Category
		}
		if patch.Image != nil {
			p.Image = *patch.Image
		}
		if patch.Images != nil {
			p.Images = patch.Images
		}
		if patch.Specifications != nil {
			p.Specifications = patch.Specifications
		}
		if patch.InStock != nil {
			p.InStock = *patch.InStock
		}
		if patch.Rating != nil {
			p.Rating = *patch.Rating
		}
		if patch.Reviews != nil {
			p.Reviews = *patch.Reviews
		}
		if patch.Brand != nil {
			p.Brand = *patch.Brand
		}
		if patch.Tags != nil {
			p.Tags = patch.Tags
		}
		if patch.Featured != nil {
			p.Featured = *patch.Featured
		}
		p.UpdatedAt = time.Now()
		break
	}
	s.save()
}

// DeleteProduct removes the matching product. Unknown ids are a no-op.
func (s *Store) DeleteProduct(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.products[:0]
	for _, p := range s.products {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	s.products = kept
	s.save()
}

// Products returns a copy of the catalog.
func (s *Store) Products() []domain.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.Product(nil), s.products...)
}

// Product returns the catalog entry for id.
func (s *Store) Product(id string) (domain.Product, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.products {
		if p.ID == id {
			return p, true
		}
	}
	return domain.Product{}, false
}

// FilteredProducts applies the current search query (name, description and
// tags, case-insensitive), selected category, and sort key to the catalog.
// The staged price range is display state only and is not applied here.
func (s *Store) FilteredProducts() []domain.Product {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.Product, 0, len(s.products))
	q := strings.ToLower(s.searchQuery)
	for _, p := range s.products {
		if q != "" && !matchesQuery(p, q) {
			continue
		}
		if s.selectedCategory != "" && p.Category != s.selectedCategory {
			continue
		}
		out = append(out, p)
	}

	switch s.sortBy {
	case SortByName:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	case SortByPrice:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price < out[j].Price })
	case SortByRating:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Rating > out[j].Rating })
	case SortByNewest:
		sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	}
	return out
}

func matchesQuery(p domain.Product, q string) bool {
	if strings.Contains(strings.ToLower(p.Name), q) ||
		strings.Contains(strings.ToLower(p.Description), q) {
		return true
	}
	for _, tag := range p.Tags {
		if strings.Contains(strings.ToLower(tag), q) {
			return true
		}
	}
	return false
}
