// Package store holds the whole application state and every operation that
// may mutate it. Handlers and other collaborators read through its getters
// and write only through the operations defined here.
package store

import (
	"encoding/json"
	"log"
	"sync"

	"gpstore/internal/domain"
	"gpstore/internal/seed"
)

// Shipping surcharge applied at order placement: free once the cart subtotal
// passes the threshold, flat fee otherwise.
const (
	freeShippingThreshold = 7999
	shippingFee           = 500
)

// Recorder is the durable home of the persisted slice. persist.DB satisfies
// it; a nil Recorder yields a volatile store.
type Recorder interface {
	Save(name string, data []byte) error
	Load(name string) ([]byte, bool, error)
}

// snapshot is the whitelisted subset of state written to durable storage.
// UI fields (cart-open flag, search/sort/filter, checkout step, staged
// address) are deliberately absent and reset on every fresh load.
type snapshot struct {
	Cart            []domain.CartItem `json:"cart"`
	User            *domain.User      `json:"user"`
	Users           []domain.User     `json:"users"`
	IsAuthenticated bool              `json:"isAuthenticated"`
	Products        []domain.Product  `json:"products"`
	Orders          []domain.Order    `json:"orders"`
}

// Sort keys accepted by SetSortBy.
const (
	SortByName   = "name"
	SortByPrice  = "price"
	SortByRating = "rating"
	SortByNewest = "newest"
)

type Store struct {
	mu     sync.Mutex
	db     Recorder
	record string
	verify CredentialVerifier

	// persisted slice
	cart            []domain.CartItem
	user            *domain.User
	users           []domain.User
	isAuthenticated bool
	products        []domain.Product
	orders          []domain.Order

	// UI state, reset on every load
	isCartOpen       bool
	searchQuery      string
	selectedCategory string
	priceRange       [2]float64
	sortBy           string
	checkoutStep     int
	shippingAddress  *domain.ShippingAddress
}

// New builds a store with fresh defaults, restores the persisted slice from
// db (when present) over them, and applies the administrator repair rule.
// Corrupt records are logged and ignored; the store never fails to start.
func New(db Recorder, record string) *Store {
	s := &Store{
		db:     db,
		record: record,
		verify: PlainVerifier{},
		users:  []domain.User{seed.Admin()},

		priceRange:   [2]float64{0, 1000},
		sortBy:       SortByName,
		checkoutStep: 1,
	}

	if db != nil {
		data, ok, err := db.Load(record)
		if err != nil {
			log.Printf("[store] load %q failed: %v", record, err)
		} else if ok {
			s.restore(data)
		}
	}
	s.users = repairAdmin(s.users)
	return s
}

// SetVerifier swaps the credential comparison scheme. The default compares
// plaintext, matching the demo data.
func (s *Store) SetVerifier(v CredentialVerifier) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if v != nil {
		s.verify = v
	}
}

// restore shallow-merges the persisted slice over current defaults: fields
// present in the record replace defaults wholesale, absent fields keep them.
func (s *Store) restore(data []byte) {
	snap := snapshot{
		Cart:            s.cart,
		User:            s.user,
		Users:           s.users,
		IsAuthenticated: s.isAuthenticated,
		Products:        s.products,
		Orders:          s.orders,
	}
	if err := json.Unmarshal(data, &snap); err != nil {
		log.Printf("[store] corrupt state record %q, using defaults: %v", s.record, err)
		return
	}
	s.cart = snap.Cart
	s.user = snap.User
	s.users = snap.Users
	s.isAuthenticated = snap.IsAuthenticated
	s.products = snap.Products
	s.orders = snap.Orders
}

// repairAdmin enforces the administrator invariant after restoration: the
// record with the reserved admin id must carry the canonical email and a
// non-empty credential. A missing or tampered record is replaced with the
// canonical one; every other user is preserved.
func repairAdmin(users []domain.User) []domain.User {
	admin := seed.Admin()
	for _, u := range users {
		if u.ID == admin.ID {
			if u.Email == admin.Email && u.Password != "" {
				return users
			}
			break
		}
	}
	kept := make([]domain.User, 0, len(users)+1)
	for _, u := range users {
		if u.ID != admin.ID {
			kept = append(kept, u)
		}
	}
	return append(kept, admin)
}

// save writes the whitelisted slice out. Fire-and-forget: failures are
// logged, never surfaced to the operation that triggered the write.
// Callers hold s.mu.
func (s *Store) save() {
	if s.db == nil {
		return
	}
	snap := snapshot{
		Cart:            s.cart,
		User:            s.user,
		Users:           s.users,
		IsAuthenticated: s.isAuthenticated,
		Products:        s.products,
		Orders:          s.orders,
	}
	data, err := json.Marshal(snap)
	if err != nil {
		log.Printf("[store] encode state failed: %v", err)
		return
	}
	if err := s.db.Save(s.record, data); err != nil {
		log.Printf("[store] save %q failed: %v", s.record, err)
	}
}
