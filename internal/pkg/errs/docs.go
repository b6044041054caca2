// Package errs provides the error kinds shared by the ordering service.
//
// The package includes:
//   - ValueIsRequiredError: a required value is missing or blank
//   - ValueIsInvalidError: a value breaks a domain rule
//   - ValueIsOutOfRangeError: a value falls outside its allowed range
//   - ObjectNotFoundError: a lookup by identifier found nothing
//   - ObjectAlreadyExistsError: a uniqueness rule rejected a write
//
// Each error type pairs a sentinel (e.g. ErrValueIsRequired) with a struct carrying
// details, constructors with and without cause, and an Unwrap method returning the
// sentinel so callers can classify failures with errors.Is. IsValidation groups the
// three input validation kinds.
package errs
