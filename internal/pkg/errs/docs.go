// Package errs holds the error kinds shared by the domain, the use cases and
// the adapters of the forwarding service.
//
// Kinds:
//   - ValueIsRequiredError: a mandatory value is missing
//   - ValueIsInvalidError: a value fails a format or business rule
//   - ValueIsOutOfRangeError: a number lies outside its bounds
//   - ObjectNotFoundError: a stored aggregate does not exist
//   - ObjectAlreadyExistsError: a unique key is already taken
//   - VersionIsInvalidError: a stored aggregate changed since it was loaded
//
// Every kind pairs a sentinel (ErrValueIsRequired, ...) with a struct that
// carries the parameter name and an optional cause. Unwrap yields the
// sentinel, so callers classify with errors.Is and read details with
// errors.As. The HTTP adapter maps the sentinels to status codes.
package errs
