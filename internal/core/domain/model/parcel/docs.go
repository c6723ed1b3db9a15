// Package parcel provides the Package aggregate root and its custody lifecycle
// in the parcel forwarding system.
//
// The package includes:
//   - Package: the aggregate root holding the declaration, measurements and status history
//   - Status: the linear state machine Awaiting -> InWarehouse -> InTransit -> Arrived -> Delivered
//   - ReceptionStatus: one immutable record per reached status
//   - Measurements: dimensions, weight and per-kilogram rate recorded at the warehouse
//   - Category: the customs category of the goods
//   - Events returned by every lifecycle transition
//
// Key business rules:
//   - Every transition moves exactly one step forward; skipping and repeating fail
//   - A prohibited package cannot move any further
//   - Warehouse, dispatch and destination steps name the staff member performing them
//   - A package is dispatched only by a race that accepts it while it is InWarehouse
//   - The shipping price is derived from the measurements and is unknown before them
//
// Owners and races are referenced through the Owner and Race interfaces, which
// the account and race aggregates implement.
package parcel
