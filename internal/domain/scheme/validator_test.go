//go:build unit

package scheme_test

import (
	"math"
	"testing"
	"time"

	"scheme-console/internal/domain/scheme"
	"scheme-console/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type validateCase struct {
	name       string
	mutate     func(*builder.SchemeBuilder)
	opts       scheme.ValidationOptions
	wantFields []string
	wantWarn   []string
}

func TestValidate(t *testing.T) {
	t.Run("valid Diwali Promo has no findings", func(t *testing.T) {
		report := scheme.Validate(builder.NewSchemeBuilder().BuildForm(), scheme.ValidationOptions{})
		assert.False(t, report.HasErrors())
		assert.Empty(t, report.Warnings)
		assert.NoError(t, report.Err())
	})

	t.Run("header", func(t *testing.T) {
		runValidateCases(t, []validateCase{
			{
				name:       "blank name",
				mutate:     func(b *builder.SchemeBuilder) { b.Name = "   " },
				wantFields: []string{"name"},
			},
			{
				name:       "unknown value type",
				mutate:     func(b *builder.SchemeBuilder) { b.ValueType = "coins" },
				wantFields: []string{"valueType"},
			},
			{
				name: "end before start",
				mutate: func(b *builder.SchemeBuilder) {
					b.StartDate, b.EndDate = b.EndDate, b.StartDate
					b.Entries[0].ExpiryDate = b.EndDate
				},
				wantFields: []string{"endDate"},
				wantWarn:   []string{"skuPackEntries[0].expiryDate"},
			},
			{
				name:       "same start and end",
				mutate:     func(b *builder.SchemeBuilder) { b.EndDate = b.StartDate; b.Entries[0].ExpiryDate = b.StartDate },
				wantFields: []string{"endDate"},
			},
		})
	})

	t.Run("regions", func(t *testing.T) {
		runValidateCases(t, []validateCase{
			{
				name:       "no fixed regions",
				mutate:     func(b *builder.SchemeBuilder) { b.FixedStateCodes = nil },
				wantFields: []string{"fixedStateCodes"},
			},
			{
				name:       "region missing from the catalog",
				mutate:     func(b *builder.SchemeBuilder) { b.FixedStateCodes = []string{"MH", "XX"} },
				opts:       scheme.ValidationOptions{KnownRegions: []string{"MH", "GJ"}},
				wantFields: []string{"fixedStateCodes[1]"},
			},
			{
				name:   "nil known regions skips the catalog check",
				mutate: func(b *builder.SchemeBuilder) { b.FixedStateCodes = []string{"MH", "XX"} },
			},
			{
				name: "override outside the fixed set",
				mutate: func(b *builder.SchemeBuilder) {
					b.WithOverride(0, 15, 2000, "KA")
				},
				wantFields: []string{"skuPackEntries[0].regionOverrides[0].stateCodes"},
			},
			{
				name: "overlapping overrides in one entry",
				mutate: func(b *builder.SchemeBuilder) {
					b.WithOverride(0, 15, 2000, "GJ").WithOverride(0, 12, 1000, "GJ", "MH")
				},
				wantFields: []string{"skuPackEntries[0].regionOverrides[1].stateCodes"},
			},
			{
				name: "override with no regions",
				mutate: func(b *builder.SchemeBuilder) {
					b.WithOverride(0, 15, 2000)
				},
				wantFields: []string{"skuPackEntries[0].regionOverrides[0].stateCodes"},
			},
		})
	})

	t.Run("entries", func(t *testing.T) {
		runValidateCases(t, []validateCase{
			{
				name:       "no entries",
				mutate:     func(b *builder.SchemeBuilder) { b.Entries = nil },
				wantFields: []string{"skuPackEntries"},
			},
			{
				name:       "negative coupon value",
				mutate:     func(b *builder.SchemeBuilder) { b.Entries[0].CouponValue = -5 },
				wantFields: []string{"skuPackEntries[0].couponValue"},
			},
			{
				name:       "zero coupon count",
				mutate:     func(b *builder.SchemeBuilder) { b.Entries[0].CouponCount = 0 },
				wantFields: []string{"skuPackEntries[0].couponCount"},
			},
			{
				name:       "NaN coupon value",
				mutate:     func(b *builder.SchemeBuilder) { b.Entries[0].CouponValue = math.NaN() },
				wantFields: []string{"skuPackEntries[0].couponValue"},
			},
			{
				name:       "missing coupon type",
				mutate:     func(b *builder.SchemeBuilder) { b.Entries[0].CouponTypeID = "" },
				wantFields: []string{"skuPackEntries[0].couponTypeId"},
			},
			{
				name: "duplicate sku pack pair",
				mutate: func(b *builder.SchemeBuilder) {
					b.Entries = append(b.Entries, builder.NewCocaColaEntry())
				},
				wantFields: []string{"skuPackEntries[1].packSizeId"},
			},
			{
				name: "negative override value and count",
				mutate: func(b *builder.SchemeBuilder) {
					b.WithOverride(0, -1, -2, "GJ")
				},
				wantFields: []string{
					"skuPackEntries[0].regionOverrides[0].value",
					"skuPackEntries[0].regionOverrides[0].couponCount",
				},
			},
			{
				name: "zero override value is allowed",
				mutate: func(b *builder.SchemeBuilder) {
					b.WithOverride(0, 0, 0, "GJ")
				},
			},
			{
				name: "every problem is reported at once",
				mutate: func(b *builder.SchemeBuilder) {
					b.Name = ""
					b.Entries[0].CouponValue = -5
					b.Entries[0].CouponCount = -1
				},
				wantFields: []string{"name", "skuPackEntries[0].couponCount", "skuPackEntries[0].couponValue"},
			},
		})
	})

	t.Run("expiry", func(t *testing.T) {
		outside := func(b *builder.SchemeBuilder) { b.Entries[0].ExpiryDate = b.EndDate.AddDate(0, 0, 1) }

		runValidateCases(t, []validateCase{
			{
				name:       "missing expiry",
				mutate:     func(b *builder.SchemeBuilder) { b.Entries[0].ExpiryDate = time.Time{} },
				wantFields: []string{"skuPackEntries[0].expiryDate"},
			},
			{
				name:     "expiry after the period warns by default",
				mutate:   outside,
				wantWarn: []string{"skuPackEntries[0].expiryDate"},
			},
			{
				name:       "expiry after the period fails when enforced",
				mutate:     outside,
				opts:       scheme.ValidationOptions{EnforceExpiryWithinRange: true},
				wantFields: []string{"skuPackEntries[0].expiryDate"},
			},
			{
				name:   "expiry on the end date is inside the period",
				mutate: func(b *builder.SchemeBuilder) { b.Entries[0].ExpiryDate = b.EndDate },
				opts:   scheme.ValidationOptions{EnforceExpiryWithinRange: true},
			},
		})
	})
}

func TestValidate_Idempotent(t *testing.T) {
	valid := builder.NewSchemeBuilder().BuildForm()
	invalid := builder.NewSchemeBuilder().With(func(b *builder.SchemeBuilder) {
		b.Name = ""
		b.Entries[0].CouponValue = -1
	}).BuildForm()

	for _, form := range []scheme.FormData{valid, invalid} {
		first := scheme.Validate(form, scheme.ValidationOptions{})
		second := scheme.Validate(form, scheme.ValidationOptions{})
		if diff := cmp.Diff(first, second); diff != "" {
			t.Errorf("validation is not repeatable (-first +second):\n%s", diff)
		}
	}
}

func TestValidationErrors(t *testing.T) {
	report := scheme.Validate(builder.NewSchemeBuilder().With(func(b *builder.SchemeBuilder) {
		b.Entries[0].CouponValue = -5
	}).BuildForm(), scheme.ValidationOptions{})

	err := report.Err()
	require.ErrorIs(t, err, scheme.ErrValidationFailed)
	assert.Contains(t, err.Error(), "skuPackEntries[0].couponValue")

	var verrs scheme.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Equal(t, []string{"skuPackEntries[0].couponValue"}, verrs.Fields())
}

func runValidateCases(t *testing.T, cases []validateCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			form := builder.NewSchemeBuilder().With(c.mutate).BuildDraft().Form()
			report := scheme.Validate(form, c.opts)

			assert.ElementsMatch(t, c.wantFields, report.Errors.Fields())

			warned := make([]string, 0, len(report.Warnings))
			for _, w := range report.Warnings {
				warned = append(warned, w.Field)
			}
			assert.ElementsMatch(t, c.wantWarn, warned)
		})
	}
}
