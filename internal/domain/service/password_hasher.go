// Package service declares the domain's outbound ports: credential hashing,
// token issuing, event publishing and receipt rendering.
package service

import "mart/internal/domain/entity"

// PasswordHasher turns plaintext passwords into stored credentials. Its Check
// method makes it usable as the matcher in User.AssertPassword.
type PasswordHasher interface {
	entity.CredentialMatcher

	// Hash returns a salted hash of password.
	Hash(password string) (string, error)
}
