//go:build unit || e2e || integration

package builder

import (
	"time"

	"scheme-console/internal/domain/scheme"
	reqdto "scheme-console/internal/handler/dto/request"
	"scheme-console/internal/usecase/queries"

	"github.com/google/uuid"
)

var (
	DiwaliStart  = time.Date(2026, 10, 20, 0, 0, 0, 0, time.UTC)
	DiwaliEnd    = time.Date(2026, 11, 15, 0, 0, 0, 0, time.UTC)
	DiwaliExpiry = time.Date(2026, 11, 10, 0, 0, 0, 0, time.UTC)
	FixedNow     = time.Date(2026, 10, 17, 9, 30, 0, 0, time.UTC)
)

// TestRegions is the slice of the catalog used across scheme tests.
var TestRegions = []scheme.Region{
	{Code: "MH", Name: "Maharashtra"},
	{Code: "GJ", Name: "Gujarat"},
	{Code: "KA", Name: "Karnataka"},
	{Code: "DL", Name: "Delhi"},
}

type SchemeBuilder struct {
	ID              uuid.UUID
	Code            string
	Name            string
	Description     string
	ValueType       scheme.ValueType
	StartDate       time.Time
	EndDate         time.Time
	FixedStateCodes []string
	Entries         []scheme.SKUPackEntry
	Now             time.Time
}

// NewSchemeBuilder defaults to the "Diwali Promo" scheme: MH and GJ fixed,
// one Coca Cola 500ml entry of 5000 coupons worth 10 and no overrides.
func NewSchemeBuilder() *SchemeBuilder {
	return &SchemeBuilder{
		Code:            "SCH-20261017-001",
		Name:            "Diwali Promo",
		Description:     "Festive season coupons",
		ValueType:       scheme.ValueTypeRupees,
		StartDate:       DiwaliStart,
		EndDate:         DiwaliEnd,
		FixedStateCodes: []string{"MH", "GJ"},
		Entries:         []scheme.SKUPackEntry{NewCocaColaEntry()},
		Now:             FixedNow,
	}
}

func NewCocaColaEntry() scheme.SKUPackEntry {
	return scheme.SKUPackEntry{
		SKUID:           "sku-1",
		SKUName:         "Coca Cola",
		PackSizeID:      "ps-2",
		PackSizeLabel:   "500ml",
		CouponCount:     5000,
		CouponValue:     10,
		ExpiryDate:      DiwaliExpiry,
		CouponTypeID:    "ct-1",
		CouponTypeName:  "Round",
		RegionOverrides: []scheme.RegionOverride{},
	}
}

func NewPepsiEntry() scheme.SKUPackEntry {
	return scheme.SKUPackEntry{
		SKUID:           "sku-2",
		SKUName:         "Pepsi",
		PackSizeID:      "ps-6",
		PackSizeLabel:   "500ml",
		CouponCount:     3000,
		CouponValue:     8,
		ExpiryDate:      DiwaliExpiry,
		CouponTypeID:    "ct-2",
		CouponTypeName:  "Card",
		RegionOverrides: []scheme.RegionOverride{},
	}
}

func (b *SchemeBuilder) With(mutate func(*SchemeBuilder)) *SchemeBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *SchemeBuilder) BuildForm() scheme.FormData {
	entries := make([]scheme.SKUPackEntry, len(b.Entries))
	for i, e := range b.Entries {
		e.RegionOverrides = append([]scheme.RegionOverride{}, e.RegionOverrides...)
		entries[i] = e
	}
	return scheme.FormData{
		Name:            b.Name,
		Description:     b.Description,
		ValueType:       b.ValueType,
		StartDate:       b.StartDate,
		EndDate:         b.EndDate,
		FixedStateCodes: append([]string{}, b.FixedStateCodes...),
		SKUPackEntries:  entries,
	}
}

func (b *SchemeBuilder) BuildDraft() scheme.Draft {
	return scheme.DraftFromForm(b.Code, b.BuildForm())
}

func (b *SchemeBuilder) BuildDomain() (*scheme.Definition, error) {
	return scheme.NewDefinition(b.ID, b.Code, b.BuildForm(), scheme.RegionNamesOf(TestRegions), b.Now)
}

func (b *SchemeBuilder) BuildCreateRequestDTO() reqdto.CreateSchemeRequest {
	entries := make([]reqdto.SKUPackEntryRequest, 0, len(b.Entries))
	for _, e := range b.Entries {
		overrides := make([]reqdto.RegionOverrideRequest, 0, len(e.RegionOverrides))
		for _, o := range e.RegionOverrides {
			overrides = append(overrides, reqdto.RegionOverrideRequest{
				StateCodes:  o.StateCodes,
				ValueType:   string(o.ValueType),
				Value:       o.Value,
				CouponCount: o.CouponCount,
			})
		}
		entries = append(entries, reqdto.SKUPackEntryRequest{
			SKUID:           e.SKUID,
			PackSizeID:      e.PackSizeID,
			CouponCount:     e.CouponCount,
			CouponValue:     e.CouponValue,
			ExpiryDate:      scheme.FormatDate(e.ExpiryDate),
			CouponTypeID:    e.CouponTypeID,
			RegionOverrides: overrides,
		})
	}
	return reqdto.CreateSchemeRequest{
		SchemeCode:      b.Code,
		Name:            b.Name,
		Description:     b.Description,
		ValueType:       string(b.ValueType),
		StartDate:       scheme.FormatDate(b.StartDate),
		EndDate:         scheme.FormatDate(b.EndDate),
		FixedStateCodes: append([]string{}, b.FixedStateCodes...),
		SKUPackEntries:  entries,
	}
}

func (b *SchemeBuilder) BuildViewQuery() *queries.SchemeView {
	id := b.ID
	if id == uuid.Nil {
		id = uuid.New()
	}
	form := b.BuildForm()
	return &queries.SchemeView{
		ID:              id,
		SchemeCode:      b.Code,
		Name:            b.Name,
		Description:     b.Description,
		ValueType:       b.ValueType,
		StartDate:       b.StartDate,
		EndDate:         b.EndDate,
		FixedStateCodes: form.FixedStateCodes,
		FixedStateNames: scheme.RegionNamesOf(TestRegions).Lookup(form.FixedStateCodes),
		SKUPackEntries:  form.SKUPackEntries,
		Status:          scheme.StatusDraft,
		CreatedAt:       b.Now,
		UpdatedAt:       b.Now,
	}
}

func (b *SchemeBuilder) BuildListItem() *queries.SchemeListItem {
	id := b.ID
	if id == uuid.Nil {
		id = uuid.New()
	}
	return &queries.SchemeListItem{
		ID:          id,
		SchemeCode:  b.Code,
		Name:        b.Name,
		ValueType:   b.ValueType,
		StartDate:   b.StartDate,
		EndDate:     b.EndDate,
		RegionCount: len(b.FixedStateCodes),
		EntryCount:  len(b.Entries),
		Status:      scheme.StatusDraft,
		CreatedAt:   b.Now,
	}
}

// Fluent builder methods
func (b *SchemeBuilder) WithID(id uuid.UUID) *SchemeBuilder {
	b.ID = id
	return b
}

func (b *SchemeBuilder) WithCode(code string) *SchemeBuilder {
	b.Code = code
	return b
}

func (b *SchemeBuilder) WithName(name string) *SchemeBuilder {
	b.Name = name
	return b
}

func (b *SchemeBuilder) WithValueType(vt scheme.ValueType) *SchemeBuilder {
	b.ValueType = vt
	return b
}

func (b *SchemeBuilder) WithPeriod(start, end time.Time) *SchemeBuilder {
	b.StartDate = start
	b.EndDate = end
	return b
}

func (b *SchemeBuilder) WithFixedStateCodes(codes ...string) *SchemeBuilder {
	b.FixedStateCodes = codes
	return b
}

func (b *SchemeBuilder) WithEntries(entries ...scheme.SKUPackEntry) *SchemeBuilder {
	b.Entries = entries
	return b
}

func (b *SchemeBuilder) WithEntry(mutate func(*scheme.SKUPackEntry)) *SchemeBuilder {
	mutate(&b.Entries[0])
	return b
}

// WithOverride appends an override to the entry at index.
func (b *SchemeBuilder) WithOverride(index int, value float64, count int, codes ...string) *SchemeBuilder {
	b.Entries[index].RegionOverrides = append(b.Entries[index].RegionOverrides, scheme.RegionOverride{
		StateCodes:  codes,
		ValueType:   b.ValueType,
		Value:       value,
		CouponCount: count,
	})
	return b
}

func (b *SchemeBuilder) WithNow(now time.Time) *SchemeBuilder {
	b.Now = now
	return b
}
