package entity

import (
	"crypto/subtle"
	"regexp"
	"strings"
	"unicode/utf8"

	domainerrors "mart/internal/domain/errors"
)

const (
	maxEmailLength    = 100
	minPasswordLength = 8
	maxPasswordLength = 100

	// SpecialCharacters lists the characters a password must contain at least one of.
	SpecialCharacters = `!@#$%^&*(),.?":{}|<>`
)

var emailMatcher = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// CredentialMatcher verifies a plaintext candidate against a stored credential.
// service.PasswordHasher satisfies it.
type CredentialMatcher interface {
	Check(password, hash string) bool
}

// User is an account identified by its email. ID is zero until persisted.
// A User is immutable; a failed login never changes it.
type User struct {
	id       int64
	email    string
	password string // plaintext right after registration, the stored credential otherwise
}

// NewUser validates a registration request.
func NewUser(email, password string) (*User, error) {
	return NewUserWithID(0, email, password)
}

// NewUserWithID validates email and password and builds a user with the given id.
func NewUserWithID(id int64, email, password string) (*User, error) {
	if err := validateEmail(email); err != nil {
		return nil, err
	}

	if err := validatePassword(password); err != nil {
		return nil, err
	}

	return &User{id: id, email: email, password: password}, nil
}

// RestoreUser rebuilds a persisted user. The credential is whatever the
// store holds (normally a hash) and is not checked against password rules.
func RestoreUser(id int64, email, credential string) (*User, error) {
	if err := validateEmail(email); err != nil {
		return nil, err
	}

	return &User{id: id, email: email, password: credential}, nil
}

func validateEmail(email string) error {
	if utf8.RuneCountInString(email) <= maxEmailLength && emailMatcher.MatchString(email) {
		return nil
	}

	return domainerrors.ErrInvalidEmail.WithDetailsf("%q cannot be used as an email", email)
}

func validatePassword(password string) error {
	length := utf8.RuneCountInString(password)
	if minPasswordLength <= length && length <= maxPasswordLength &&
		strings.ContainsAny(password, SpecialCharacters) {
		return nil
	}

	return domainerrors.ErrInvalidPassword
}

// ID returns the persisted id, or 0.
func (u *User) ID() int64 { return u.id }

// Email returns the login email.
func (u *User) Email() string { return u.email }

// Password returns the credential held by the user.
func (u *User) Password() string { return u.password }

// WithID returns a copy of the user carrying the id assigned by storage.
func (u *User) WithID(id int64) *User {
	return &User{id: id, email: u.email, password: u.password}
}

// WithCredential returns a copy of the user holding credential, typically
// the hash of the password it was registered with.
func (u *User) WithCredential(credential string) *User {
	return &User{id: u.id, email: u.email, password: credential}
}

// AssertPassword fails with ErrLoginFailed unless candidate matches the
// stored credential. A nil matcher compares the strings exactly.
func (u *User) AssertPassword(candidate string, matcher CredentialMatcher) error {
	var ok bool
	if matcher == nil {
		ok = subtle.ConstantTimeCompare([]byte(u.password), []byte(candidate)) == 1
	} else {
		ok = matcher.Check(candidate, u.password)
	}

	if !ok {
		return domainerrors.ErrLoginFailed
	}

	return nil
}

// Equal compares id, email and credential.
func (u *User) Equal(other *User) bool {
	if u == nil || other == nil {
		return u == other
	}

	return *u == *other
}
