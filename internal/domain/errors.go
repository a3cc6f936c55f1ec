package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	ErrMsgInvalidInput     = "invalid input"
	ErrMsgInvalidRunStyle  = "invalid run style"
	ErrMsgInvalidPlaystyle = "invalid playstyle"
	ErrMsgClassNotFound    = "class not found"
	ErrMsgCatalogEmpty     = "catalog is empty"
	ErrMsgInvalidConfig    = "invalid risk config"
)

// Common domain errors
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	ErrInvalidInput     = errors.New(ErrMsgInvalidInput)
	ErrInvalidRunStyle  = errors.New(ErrMsgInvalidRunStyle)
	ErrInvalidPlaystyle = errors.New(ErrMsgInvalidPlaystyle)
	ErrClassNotFound    = errors.New(ErrMsgClassNotFound)
	ErrCatalogEmpty     = errors.New(ErrMsgCatalogEmpty)
	ErrInvalidConfig    = errors.New(ErrMsgInvalidConfig)
)
