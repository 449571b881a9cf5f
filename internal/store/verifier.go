package store

import "golang.org/x/crypto/bcrypt"

// CredentialVerifier compares a stored credential with a login attempt. It
// exists so the plaintext demo scheme can be replaced by a hashed one without
// touching the auth operations.
type CredentialVerifier interface {
	Verify(stored, attempt string) bool
}

// PlainVerifier matches credentials byte for byte. This mirrors the demo
// data, which keeps passwords in clear; an empty stored credential never
// matches.
type PlainVerifier struct{}

func (PlainVerifier) Verify(stored, attempt string) bool {
	return stored != "" && stored == attempt
}

// BcryptVerifier treats the stored credential as a bcrypt hash.
type BcryptVerifier struct{}

func (BcryptVerifier) Verify(stored, attempt string) bool {
	return bcrypt.CompareHashAndPassword([]byte(stored), []byte(attempt)) == nil
}
