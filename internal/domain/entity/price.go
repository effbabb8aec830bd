package entity

import (
	"math/big"
	"regexp"

	domainerrors "mart/internal/domain/errors"

	"github.com/shopspring/decimal"
)

var priceMatcher = regexp.MustCompile(`^[0-9]+$`)

// Price is a non-negative integer amount of money. It is carried as a
// canonical decimal string and summed with arbitrary precision, so totals
// never lose digits regardless of magnitude.
//
// The zero value is a price of 0.
type Price struct {
	value string
}

// NewPrice parses a base-10 string of digits. Signs, fractions, exponents
// and surrounding spaces are rejected.
func NewPrice(value string) (Price, error) {
	if !priceMatcher.MatchString(value) {
		return Price{}, domainerrors.ErrInvalidPrice.WithDetailsf("price %q is not a non-negative integer", value)
	}

	amount, err := decimal.NewFromString(value)
	if err != nil {
		return Price{}, domainerrors.ErrInvalidPrice.WithDetails(err.Error())
	}

	return fromDecimal(amount), nil
}

func fromDecimal(amount decimal.Decimal) Price {
	if amount.IsZero() {
		return Price{}
	}

	return Price{value: amount.String()}
}

// Decimal returns the amount as an arbitrary-precision decimal.
func (p Price) Decimal() decimal.Decimal {
	if p.value == "" {
		return decimal.Zero
	}

	// value is produced by decimal.String, so parsing cannot fail.
	amount, _ := decimal.NewFromString(p.value)

	return amount
}

// Add returns the exact sum of both prices.
func (p Price) Add(other Price) Price {
	return fromDecimal(p.Decimal().Add(other.Decimal()))
}

// Mul returns the price multiplied by a unit count.
func (p Price) Mul(count uint) Price {
	return fromDecimal(p.Decimal().Mul(decimal.NewFromBigInt(new(big.Int).SetUint64(uint64(count)), 0)))
}

// String renders the canonical decimal representation, e.g. "1500".
func (p Price) String() string {
	if p.value == "" {
		return "0"
	}

	return p.value
}
