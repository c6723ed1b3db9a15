package kernel

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"forwarding/internal/pkg/errs"
	"forwarding/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// ErrMoneyIsNotConstructed is returned when a zero value Money is used.
var ErrMoneyIsNotConstructed = errs.NewValueIsRequiredError("money must be created via NewMoney or ParseMoney")

const moneySeparator = "-"

// Money is a currency-tagged, non-negative amount in minor units (cents).
// Arithmetic and comparisons are only defined between equal currencies and
// return CurrencyMismatchError otherwise.
//
// Money is immutable and comparable with ==.
//
// Example:
//
//	price, _ := kernel.NewMoney(kernel.USD, 1600)
//	fmt.Println(price)                  // USD-1600
//	fmt.Println(price.FormattedValue()) // $16.00
//
//	balance, _ := kernel.NewMoney(kernel.USD, 1000)
//	ok, err := balance.GreaterThanOrEqual(price) // false, nil
type Money struct { //nolint:recvcheck //using for validation
	currency Currency
	amount   int64
	guard    guard.ConstructorGuard
}

// NewMoney creates an amount of minor units in the given currency.
// The amount must not be negative.
func NewMoney(currency Currency, amount int64) (Money, error) {
	m := Money{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		m.setCurrency(currency),
		m.setAmount(amount),
	); err != nil {
		return Money{}, err
	}

	return m, nil
}

// ZeroMoney returns a zero amount in the given currency.
func ZeroMoney(currency Currency) (Money, error) {
	return NewMoney(currency, 0)
}

// ParseMoney parses the stored "CUR-amount" form produced by String.
func ParseMoney(value string) (Money, error) {
	parts := strings.Split(value, moneySeparator)
	if len(parts) != 2 {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"money",
			fmt.Errorf("%q must have the CUR-amount format", value),
		)
	}

	amount, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("money", err)
	}

	return NewMoney(Currency(parts[0]), amount)
}

// Validate returns ErrMoneyIsNotConstructed for the zero value.
func (m Money) Validate() error {
	return m.guard.Validate(ErrMoneyIsNotConstructed)
}

func (m Money) Currency() Currency {
	return m.currency
}

// Amount returns the amount in minor units.
func (m Money) Amount() int64 {
	return m.amount
}

func (m Money) IsZero() bool {
	return m.amount == 0
}

// String returns the "CUR-amount" form, e.g. "USD-1600". The format is a
// storage contract and must stay stable.
func (m Money) String() string {
	return string(m.currency) + moneySeparator + strconv.FormatInt(m.amount, 10)
}

// FormattedValue renders the amount in major units with two decimals,
// prefixed by the currency symbol, e.g. "$16.00".
func (m Money) FormattedValue() string {
	return m.currency.Symbol() + decimal.New(m.amount, -2).StringFixed(2)
}

// Add returns m + other.
func (m Money) Add(other Money) (Money, error) {
	if err := m.ensureSameCurrency(other); err != nil {
		return Money{}, err
	}

	return NewMoney(m.currency, m.amount+other.amount)
}

// Sub returns m - other. A negative result is rejected.
func (m Money) Sub(other Money) (Money, error) {
	if err := m.ensureSameCurrency(other); err != nil {
		return Money{}, err
	}

	return NewMoney(m.currency, m.amount-other.amount)
}

// Compare returns -1, 0 or 1 like cmp.Compare.
func (m Money) Compare(other Money) (int, error) {
	if err := m.ensureSameCurrency(other); err != nil {
		return 0, err
	}

	switch {
	case m.amount < other.amount:
		return -1, nil
	case m.amount > other.amount:
		return 1, nil
	default:
		return 0, nil
	}
}

func (m Money) GreaterThan(other Money) (bool, error) {
	c, err := m.Compare(other)
	return c > 0, err
}

func (m Money) GreaterThanOrEqual(other Money) (bool, error) {
	c, err := m.Compare(other)
	return c >= 0, err
}

func (m Money) LessThan(other Money) (bool, error) {
	c, err := m.Compare(other)
	return c < 0, err
}

func (m Money) LessThanOrEqual(other Money) (bool, error) {
	c, err := m.Compare(other)
	return c <= 0, err
}

// IsEqual reports equal currency and amount. Unlike Compare it never fails.
func (m Money) IsEqual(other Money) bool {
	return m.currency == other.currency && m.amount == other.amount
}

// MarshalText encodes Money in its "CUR-amount" form.
func (m Money) MarshalText() ([]byte, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return []byte(m.String()), nil
}

// UnmarshalText is the inverse of MarshalText.
func (m *Money) UnmarshalText(data []byte) error {
	parsed, err := ParseMoney(string(data))
	if err != nil {
		return err
	}

	*m = parsed
	return nil
}

func (m Money) ensureSameCurrency(other Money) error {
	if err := errors.Join(m.Validate(), other.Validate()); err != nil {
		return err
	}

	if m.currency != other.currency {
		return NewCurrencyMismatchError(m.currency, other.currency)
	}

	return nil
}

func (m *Money) setCurrency(currency Currency) error {
	if err := currency.Validate(); err != nil {
		return err
	}

	m.currency = currency
	return nil
}

func (m *Money) setAmount(amount int64) error {
	m.amount = amount

	if m.amount < 0 {
		return errs.NewValueIsOutOfRangeError("amount", amount, 0, int64(math.MaxInt64))
	}

	return nil
}
