// Package kernel provides the value objects shared by every aggregate of the
// parcel forwarding domain.
//
// The package includes:
//   - UUID: identifiers of packages, races, users and status records
//   - Currency and Money: currency-safe minor unit amounts with the "CUR-amount" storage form
//   - TrackingCode: validated carrier codes and generated internal codes
//   - WebAddress: product page of a declared package
//   - Dimensions: measured package size in centimetres
//   - Address: the NoAddress / FullAddress sum type
//   - DomainEvent: the contract of events returned by aggregate mutations
//
// Value objects are immutable. Zero values are invalid and are rejected by
// their Validate methods; use the constructors.
package kernel
