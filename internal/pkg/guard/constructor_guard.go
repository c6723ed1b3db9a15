// Package guard provides ConstructorGuard, a marker embedded in value objects,
// commands and queries so that zero values created with a struct literal can be
// told apart from values built by their constructor.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific error is
// supplied, so a zero value never passes validation silently.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard records whether the owning value went through its constructor.
// The zero value is "not constructed".
//
// Constructors validate their input and set the guard last, so a value that
// carries a constructed guard also satisfies every invariant its constructor
// checks. Handlers and aggregates call Validate on their inputs before use
// and reject a struct literal such as kernel.Money{} or
// commands.PayForShippingCommand{}.
//
// Example:
//
//	var ErrMoneyIsNotConstructed = errors.New("money must be created via NewMoney")
//
//	type Money struct {
//	    currency Currency
//	    amount   int64
//	    guard    guard.ConstructorGuard
//	}
//
//	func NewMoney(currency Currency, amount int64) (Money, error) {
//	    if amount < 0 {
//	        return Money{}, errs.NewValueIsOutOfRangeError("amount", amount, 0, int64(math.MaxInt64))
//	    }
//	    return Money{currency: currency, amount: amount, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (m Money) Validate() error {
//	    return m.guard.Validate(ErrMoneyIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard marked as constructed. Constructors call
// it once their input has been validated.
//
// Example:
//
//	return Dimensions{length: l, width: w, height: h, guard: guard.NewConstructorGuard()}, nil
//
// Returns:
//   - A ConstructorGuard whose Validate returns nil
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate reports whether the owning value was built by its constructor.
//
// Parameters:
//   - validationError: the error describing the unconstructed type, usually an
//     ErrXIsNotConstructed sentinel of the owning package
//
// Returns:
//   - nil if the guard was created by NewConstructorGuard
//   - validationError if the guard is a zero value
//   - ErrDefaultConstructorGuard if the guard is a zero value and validationError is nil
//
// Example:
//
//	var cmd commands.PayForShippingCommand
//	err := cmd.Validate() // commands.ErrPayForShippingCommandIsNotConstructed
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}

	if !g.isConstructed {
		return validationError
	}

	return nil
}
