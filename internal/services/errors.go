package services

import "errors"

// Business-rule errors surfaced to handlers. Availability and stock
// errors reuse the repository sentinels so a failure detected at
// commit time looks the same to callers as one detected up front.
var (
	// ErrProductUnavailable is returned when any requested product is
	// missing or unpublished; the whole order is rejected.
	ErrProductUnavailable = errors.New("one or more products are unavailable or unpublished")

	// ErrCancelNotAllowed is returned when cancellation is requested
	// for an order that is no longer pending.
	ErrCancelNotAllowed = errors.New("only pending orders can be cancelled")

	// ErrTrackingCodeRequired is returned when an order is moved to
	// SHIPPED without a tracking code in the same request.
	ErrTrackingCodeRequired = errors.New("tracking code is required for shipped orders")

	// ErrInvalidCredentials is returned on any login failure; it never
	// reveals whether the email exists.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrEmailTaken is returned when creating or renaming an admin
	// user to an email that is already registered.
	ErrEmailTaken = errors.New("email already registered")
)
