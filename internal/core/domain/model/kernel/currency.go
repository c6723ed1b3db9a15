package kernel

import (
	"errors"
	"fmt"

	"forwarding/internal/pkg/errs"
)

// Currency is a three letter upper-case currency code.
type Currency string

const (
	USD Currency = "USD"
	EUR Currency = "EUR"
	GEL Currency = "GEL"
	GBP Currency = "GBP"
)

var (
	// ErrCurrencyMismatch is the sentinel behind CurrencyMismatchError.
	ErrCurrencyMismatch = errors.New("currency mismatch")
)

// CurrencyMismatchError is returned whenever two amounts in different currencies
// are combined or compared. It is a programming error, never converted implicitly.
type CurrencyMismatchError struct {
	Left  Currency
	Right Currency
}

func NewCurrencyMismatchError(left, right Currency) *CurrencyMismatchError {
	return &CurrencyMismatchError{Left: left, Right: right}
}

func (e *CurrencyMismatchError) Error() string {
	return fmt.Sprintf("%s: %s and %s", ErrCurrencyMismatch, e.Left, e.Right)
}

func (e *CurrencyMismatchError) Unwrap() error {
	return ErrCurrencyMismatch
}

// NewCurrency validates a currency code.
func NewCurrency(code string) (Currency, error) {
	c := Currency(code)
	if err := c.Validate(); err != nil {
		return "", err
	}
	return c, nil
}

// Validate checks that the code is exactly three ASCII upper-case letters.
func (c Currency) Validate() error {
	if len(c) != 3 {
		return errs.NewValueIsInvalidErrorWithCause("currency", fmt.Errorf("%q must have 3 letters", string(c)))
	}

	for _, r := range c {
		if r < 'A' || r > 'Z' {
			return errs.NewValueIsInvalidErrorWithCause("currency", fmt.Errorf("%q must be upper-case letters", string(c)))
		}
	}

	return nil
}

// Symbol returns the display prefix used by Money.FormattedValue.
func (c Currency) Symbol() string {
	switch c {
	case USD:
		return "$"
	case EUR:
		return "€"
	case GEL:
		return "₾"
	case GBP:
		return "£"
	default:
		return string(c) + " "
	}
}

func (c Currency) String() string {
	return string(c)
}
