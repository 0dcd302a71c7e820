package errs

import "errors"

// Domain-specific sentinel errors for usecase layers
var (
	// Product errors
	ErrProductNotFound = errors.New("product not found")

	// Announcement errors
	ErrAnnouncementNotFound = errors.New("announcement not found")

	// User errors
	ErrUserNotFound = errors.New("user not found")

	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
