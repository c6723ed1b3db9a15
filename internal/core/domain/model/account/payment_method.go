package account

import (
	"fmt"

	"forwarding/internal/pkg/errs"
)

// PaymentMethod is how a balance top-up was paid.
type PaymentMethod int

const (
	PaymentMethodUnknown PaymentMethod = iota
	Card
	BankTransfer
)

var paymentMethodNames = map[PaymentMethod]string{
	Card:         "Card",
	BankTransfer: "BankTransfer",
}

func ParsePaymentMethod(name string) (PaymentMethod, error) {
	for m, n := range paymentMethodNames {
		if n == name {
			return m, nil
		}
	}
	return PaymentMethodUnknown, errs.NewValueIsInvalidErrorWithCause(
		"paymentMethod", fmt.Errorf("%q is not a known payment method", name))
}

func (m PaymentMethod) Validate() error {
	if _, ok := paymentMethodNames[m]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("paymentMethod", fmt.Errorf("%d is not a valid payment method", m))
	}
	return nil
}

func (m PaymentMethod) String() string {
	if n, ok := paymentMethodNames[m]; ok {
		return n
	}
	return "Unknown"
}

// MarshalText writes the method name, so events carry "Card" rather than a number.
func (m PaymentMethod) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

func (m *PaymentMethod) UnmarshalText(data []byte) error {
	parsed, err := ParsePaymentMethod(string(data))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
