package services

import (
	"errors"
	"fmt"

	"forwarding/internal/core/domain/model/account"
	"forwarding/internal/core/domain/model/parcel"
	"forwarding/internal/core/domain/model/pricing"
)

var (
	// ErrPackageHasNotArrived is returned when paying for a package that is not at the destination office.
	ErrPackageHasNotArrived = errors.New("package has not arrived at the destination yet")

	// ErrPackageNotOwned is returned when the payer does not own the package.
	ErrPackageNotOwned = errors.New("package does not belong to the user")
)

// ShippingPayment is a domain service that checks the payment prerequisites
// spanning the User and Package aggregates before debiting the balance.
//
// Business rules:
//   - The package must have Arrived at the destination office
//   - The payer must own the package
//   - A prohibited package cannot be paid for
//   - The balance rules of account.User.PayForPackage apply
//   - The debited amount is priced with the same policy as the quotes
//
// Example usage:
//
//	payment := services.NewShippingPayment(pricing.DefaultPolicy())
//	event, err := payment.Pay(user, pkg)
//	if errors.Is(err, account.ErrInsufficientBalance) {
//	    // ask the user to top up
//	}
type ShippingPayment struct {
	policy pricing.Policy
}

func NewShippingPayment(policy pricing.Policy) ShippingPayment {
	return ShippingPayment{policy: policy}
}

// Pay debits the shipping price of pkg from payer and marks the package paid.
func (s ShippingPayment) Pay(payer *account.User, pkg *parcel.Package) (account.UserPaidForPackage, error) {
	if err := errors.Join(payer.Validate(), pkg.Validate()); err != nil {
		return account.UserPaidForPackage{}, err
	}

	if pkg.IsPaid() {
		return account.UserPaidForPackage{}, fmt.Errorf("%w: %s", parcel.ErrPackageAlreadyPaid, pkg.TrackingCode())
	}

	if pkg.IsProhibited() {
		return account.UserPaidForPackage{}, fmt.Errorf("%w: %s", parcel.ErrPackageProhibited, pkg.TrackingCode())
	}

	if status := pkg.CurrentStatus(); status != parcel.Arrived {
		return account.UserPaidForPackage{}, fmt.Errorf("%w: %s is %s", ErrPackageHasNotArrived, pkg.TrackingCode(), status)
	}

	if !payer.Owns(pkg) {
		return account.UserPaidForPackage{}, fmt.Errorf("%w: %s", ErrPackageNotOwned, pkg.TrackingCode())
	}

	return payer.PayForPackage(pkg, s.policy)
}
