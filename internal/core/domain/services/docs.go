// Package services provides domain services that coordinate more than one
// aggregate of the forwarding domain.
//
// The package includes:
//   - ShippingPayment: checks that a package can be paid for by a user and debits the balance
package services
