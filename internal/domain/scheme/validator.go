package scheme

import (
	"fmt"
	"math"
	"strings"
)

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e FieldError) String() string {
	return e.Field + ": " + e.Message
}

// ValidationErrors is the full list of problems found in a form. It matches
// ErrValidationFailed under errors.Is.
type ValidationErrors []FieldError

func (v ValidationErrors) Error() string {
	parts := make([]string, len(v))
	for i, e := range v {
		parts[i] = e.String()
	}
	return ErrValidationFailed.Error() + ": " + strings.Join(parts, "; ")
}

func (v ValidationErrors) Is(target error) bool {
	return target == ErrValidationFailed
}

func (v ValidationErrors) Fields() []string {
	out := make([]string, len(v))
	for i, e := range v {
		out[i] = e.Field
	}
	return out
}

type ValidationOptions struct {
	// KnownRegions is the region universe; nil skips the membership check.
	KnownRegions []string
	// EnforceExpiryWithinRange turns an expiry date outside [start, end] into an error instead of a warning.
	EnforceExpiryWithinRange bool
}

type ValidationReport struct {
	Errors   ValidationErrors
	Warnings []FieldError
}

func (r ValidationReport) HasErrors() bool {
	return len(r.Errors) > 0
}

func (r ValidationReport) Err() error {
	if !r.HasErrors() {
		return nil
	}
	return r.Errors
}

func (r *ValidationReport) fail(field, format string, args ...any) {
	r.Errors = append(r.Errors, FieldError{Field: field, Message: fmt.Sprintf(format, args...)})
}

func (r *ValidationReport) warn(field, format string, args ...any) {
	r.Warnings = append(r.Warnings, FieldError{Field: field, Message: fmt.Sprintf(format, args...)})
}

// Add appends an error found outside the form itself, e.g. by a catalog lookup.
func (r *ValidationReport) Add(field, message string) {
	r.Errors = append(r.Errors, FieldError{Field: field, Message: message})
}

func EntryField(i int, name string) string {
	return fmt.Sprintf("skuPackEntries[%d].%s", i, name)
}

func OverrideField(i, j int, name string) string {
	return fmt.Sprintf("skuPackEntries[%d].regionOverrides[%d].%s", i, j, name)
}

// Validate checks every structural and numeric rule of a form and reports all
// problems at once. It has no side effects, so repeated runs agree.
func Validate(form FormData, opts ValidationOptions) ValidationReport {
	var r ValidationReport

	validateHeader(&r, form)
	validateFixedRegions(&r, form, opts)
	validateEntries(&r, form, opts)

	return r
}

func validateHeader(r *ValidationReport, f FormData) {
	if strings.TrimSpace(f.Name) == "" {
		r.fail("name", "is required")
	}
	if !f.ValueType.IsValid() {
		r.fail("valueType", "must be one of %q, %q", ValueTypeRupees, ValueTypePoints)
	}
	if f.StartDate.IsZero() {
		r.fail("startDate", "is required")
	}
	if f.EndDate.IsZero() {
		r.fail("endDate", "is required")
	}
	if !f.StartDate.IsZero() && !f.EndDate.IsZero() && !f.StartDate.Before(f.EndDate) {
		r.fail("endDate", "must be after startDate")
	}
}

func validateFixedRegions(r *ValidationReport, f FormData, opts ValidationOptions) {
	if len(f.FixedStateCodes) == 0 {
		r.fail("fixedStateCodes", "at least one region is required")
		return
	}

	var known map[string]struct{}
	if opts.KnownRegions != nil {
		known = codeSet(NormalizeCodes(opts.KnownRegions))
	}

	seen := make(map[string]struct{}, len(f.FixedStateCodes))
	for i, c := range f.FixedStateCodes {
		field := fmt.Sprintf("fixedStateCodes[%d]", i)
		if _, dup := seen[c]; dup {
			r.fail(field, "region %s is listed twice", c)
			continue
		}
		seen[c] = struct{}{}
		if known != nil {
			if _, ok := known[c]; !ok {
				r.fail(field, "unknown region %s", c)
			}
		}
	}
}

func validateEntries(r *ValidationReport, f FormData, opts ValidationOptions) {
	if len(f.SKUPackEntries) == 0 {
		r.fail("skuPackEntries", "at least one sku pack entry is required")
		return
	}

	firstByKey := make(map[EntryKey]int, len(f.SKUPackEntries))
	for i, e := range f.SKUPackEntries {
		if strings.TrimSpace(e.SKUID) == "" {
			r.fail(EntryField(i, "skuId"), "is required")
		}
		if strings.TrimSpace(e.PackSizeID) == "" {
			r.fail(EntryField(i, "packSizeId"), "is required")
		}
		if first, dup := firstByKey[e.Key()]; dup {
			r.fail(EntryField(i, "packSizeId"), "duplicates entry %d (sku %s, pack %s)", first, e.SKUID, e.PackSizeID)
		} else {
			firstByKey[e.Key()] = i
		}

		checkCount(r, EntryField(i, "couponCount"), e.CouponCount, true)
		checkAmount(r, EntryField(i, "couponValue"), e.CouponValue, true)

		if strings.TrimSpace(e.CouponTypeID) == "" {
			r.fail(EntryField(i, "couponTypeId"), "is required")
		}
		validateExpiry(r, f, i, e, opts)
		validateOverrides(r, f, i, e)
	}
}

func validateExpiry(r *ValidationReport, f FormData, i int, e SKUPackEntry, opts ValidationOptions) {
	field := EntryField(i, "expiryDate")
	if e.ExpiryDate.IsZero() {
		r.fail(field, "is required")
		return
	}
	if f.StartDate.IsZero() || f.EndDate.IsZero() {
		return
	}
	if e.ExpiryDate.Before(f.StartDate) || e.ExpiryDate.After(f.EndDate) {
		msg := "%s is outside the scheme period %s..%s"
		args := []any{FormatDate(e.ExpiryDate), FormatDate(f.StartDate), FormatDate(f.EndDate)}
		if opts.EnforceExpiryWithinRange {
			r.fail(field, msg, args...)
		} else {
			r.warn(field, msg, args...)
		}
	}
}

func validateOverrides(r *ValidationReport, f FormData, i int, e SKUPackEntry) {
	claimedBy := make(map[string]int)
	for j, o := range e.RegionOverrides {
		if len(o.StateCodes) == 0 {
			r.fail(OverrideField(i, j, "stateCodes"), "at least one region is required")
		}
		for _, c := range o.StateCodes {
			if !f.IsFixed(c) {
				r.fail(OverrideField(i, j, "stateCodes"), "region %s is not a fixed region", c)
				continue
			}
			if other, taken := claimedBy[c]; taken && other != j {
				r.fail(OverrideField(i, j, "stateCodes"), "region %s is already claimed by override %d", c, other)
				continue
			}
			claimedBy[c] = j
		}
		if !o.ValueType.IsValid() {
			r.fail(OverrideField(i, j, "valueType"), "must be one of %q, %q", ValueTypeRupees, ValueTypePoints)
		}
		checkAmount(r, OverrideField(i, j, "value"), o.Value, false)
		checkCount(r, OverrideField(i, j, "couponCount"), o.CouponCount, false)
	}
}

func checkAmount(r *ValidationReport, field string, v float64, positive bool) {
	switch {
	case math.IsNaN(v) || math.IsInf(v, 0):
		r.fail(field, "must be a finite number")
	case v < 0:
		r.fail(field, "must not be negative")
	case positive && v == 0:
		r.fail(field, "must be greater than 0")
	}
}

func checkCount(r *ValidationReport, field string, v int, positive bool) {
	switch {
	case v < 0:
		r.fail(field, "must not be negative")
	case positive && v == 0:
		r.fail(field, "must be greater than 0")
	}
}
