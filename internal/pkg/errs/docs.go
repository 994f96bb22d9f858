// Package errs holds the typed errors shared by the domain, the application
// layer and the adapters.
//
// Every type pairs with a sentinel (ErrValueIsRequired, ErrValueIsInvalid,
// ErrValueIsOutOfRange, ErrObjectNotFound, ErrVersionIsInvalid) returned from
// Unwrap, so callers classify with errors.Is and read details with errors.As.
// Validators combine several failures with errors.Join.
package errs
