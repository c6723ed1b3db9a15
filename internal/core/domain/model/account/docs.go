// Package account provides the User aggregate in its role as a balance ledger
// and package owner.
//
// Key business rules:
//   - The balance is kept in one currency and never goes below zero
//   - Top-ups must be positive, in the balance currency, and name their payment session
//   - Paying for a package debits its shipping price and marks it paid in one step
//
// User implements parcel.Owner.
package account
