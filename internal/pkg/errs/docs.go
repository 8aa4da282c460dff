// Package errs provides standardized error types for the application.
// It implements a consistent pattern for error creation, formatting, and
// unwrapping that is used throughout the codebase.
//
// The package defines one concrete type per error category:
//   - ObjectNotFoundError: a referenced entity is absent
//   - ValueIsRequiredError / ValueIsInvalidError / ValueIsOutOfRangeError:
//     malformed or self-inconsistent input
//   - BusinessRuleError: an operation violates a domain invariant
//   - NotAuthorizedError: the acting party lacks rights over the resource
//   - ConflictError: a uniqueness violation
//
// Each error type follows the same pattern:
//   - A sentinel error variable (e.g. ErrObjectNotFound)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() for formatting and Unwrap() for errors.Is classification
//
// The HTTP boundary relies on the sentinels to translate domain errors into
// structured responses with stable codes, so handlers never inspect error
// strings.
package errs
