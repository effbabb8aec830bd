// Package entity contains the core business objects of the shopping domain:
// identities (User), aggregates (Cart, Order) and the value objects they are
// built from (Name, Price, Product). Nothing in here performs I/O.
package entity

import (
	"strings"
	"unicode/utf8"

	domainerrors "mart/internal/domain/errors"
)

const maxNameLength = 20

// Name is the display name of a product: 1 to 20 characters, never blank.
type Name struct {
	value string
}

// NewName validates value and wraps it in a Name.
func NewName(value string) (Name, error) {
	return ParseName(&value)
}

// ParseName is NewName for inputs that may be absent, such as an optional
// JSON field or a nullable column. A nil value is rejected as a null name.
func ParseName(value *string) (Name, error) {
	if value == nil {
		return Name{}, domainerrors.ErrNullName
	}

	name := *value
	if utf8.RuneCountInString(name) > maxNameLength {
		return Name{}, domainerrors.ErrExceedName.WithDetailsf("name %q is longer than %d characters", name, maxNameLength)
	}

	if strings.TrimSpace(name) == "" {
		return Name{}, domainerrors.ErrBlankName.WithDetailsf("name %q is blank", name)
	}

	return Name{value: name}, nil
}

// String returns the raw name.
func (n Name) String() string {
	return n.value
}
