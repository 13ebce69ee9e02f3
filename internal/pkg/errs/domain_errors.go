package errs

import "errors"

// Domain-specific sentinel errors for CQRS usecase layers
var (
	// Product errors
	ErrProductNotFound  = errors.New("product not found")
	ErrBetaCapReached   = errors.New("product beta cap reached")
	ErrGlobalCapReached = errors.New("global beta cap reached")

	// Capacity errors
	ErrSnapshotNotFound = errors.New("capacity snapshot not found")

	// Waitlist errors
	ErrWaitlistClosed    = errors.New("waitlist is not open")
	ErrAlreadyOnWaitlist = errors.New("already on waitlist")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
