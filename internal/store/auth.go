package store

import (
	"strconv"
	"time"

	"gpstore/internal/domain"
)

// SignupResult is the structured outcome of Signup.
type SignupResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Login scans the registry for an exact, case-sensitive email match whose
// credential verifies. On success the session user is set and the matched
// record returned; otherwise nil, with no state change. Callers surface one
// generic invalid-credentials message either way.
func (s *Store) Login(email, password string) *domain.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Email == email && s.verify.Verify(u.Password, password) {
			found := u
			s.user = &found
			s.isAuthenticated = true
			s.save()
			out := found
			return &out
		}
	}
	return nil
}

// Signup registers a new customer. A registry entry with the same email
// (case-sensitive) yields a failure result and no change. Success appends the
// record but does not log the user in.
func (s *Store) Signup(name, email, password string) SignupResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Email == email {
			return SignupResult{Success: false, Message: "User with this email already exists."}
		}
	}
	s.users = append(s.users, domain.User{
		ID:       strconv.FormatInt(time.Now().UnixMilli(), 10),
		Name:     name,
		Email:    email,
		Password: password,
		Role:     domain.RoleCustomer,
		Avatar:   "https://i.pravatar.cc/100?u=" + email,
	})
	s.save()
	return SignupResult{Success: true, Message: "Signup successful! Please log in."}
}

// Logout clears the session and any checkout progress: a logged-out session
// must not retain a staged address or step.
func (s *Store) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = nil
	s.isAuthenticated = false
	s.shippingAddress = nil
	s.checkoutStep = 1
	s.save()
}

// SetUser installs (or clears, with nil) the session user directly.
func (s *Store) SetUser(u *domain.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if u == nil {
		s.user = nil
		s.isAuthenticated = false
	} else {
		cp := *u
		s.user = &cp
		s.isAuthenticated = true
	}
	s.save()
}

// User returns a copy of the session user, or nil when logged out.
func (s *Store) User() *domain.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return nil
	}
	cp := *s.user
	return &cp
}

func (s *Store) IsAuthenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.isAuthenticated
}

// Users returns a copy of the user registry.
func (s *Store) Users() []domain.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.User(nil), s.users...)
}
