package scheme

import "scheme-console/internal/pkg/errs"

var (
	ErrDuplicateEntry   = errs.New("sku pack entry already exists")
	ErrRegionConflict   = errs.New("region conflict")
	ErrRegionNotCovered = errs.New("region not covered by entry")
	ErrValidationFailed = errs.New("scheme validation failed")

	ErrInvalidValueType   = errs.New("invalid value type")
	ErrInvalidStatus      = errs.New("invalid scheme status")
	ErrEmptyStateCodes    = errs.New("override must claim at least one region")
	ErrIndexOutOfRange    = errs.New("index out of range")
	ErrMissingEntryKey    = errs.New("sku id and pack size id are required")
	ErrInvalidSchemeCode  = errs.New("invalid scheme code")
	ErrCodeSpaceExhausted = errs.New("daily scheme code sequence exhausted")
	ErrSchemeExpired      = errs.New("scheme has expired")
	ErrInvalidDate        = errs.New("invalid date, expected YYYY-MM-DD")
)
