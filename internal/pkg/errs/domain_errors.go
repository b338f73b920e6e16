package errs

import "errors"

// Usecase-level sentinel errors. Handlers map these to status codes.
var (
	// Scheme errors
	ErrSchemeNotFound      = errors.New("scheme not found")
	ErrDuplicateSchemeCode = errors.New("duplicate scheme code")

	// Wizard errors
	ErrStageIncomplete = errors.New("stage incomplete")
	ErrUnknownSKU      = errors.New("unknown sku")
	ErrUnknownPackSize = errors.New("unknown pack size")

	// Collaborator errors
	ErrRepositoryFailure = errors.New("repository failure")
	ErrCatalogFailure    = errors.New("catalog failure")
)
