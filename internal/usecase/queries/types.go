package queries

import (
	"time"

	"scheme-console/internal/domain/scheme"

	"github.com/google/uuid"
)

// SchemeView is a read-optimized scheme with its status evaluated at query time.
type SchemeView struct {
	ID              uuid.UUID             `json:"id"`
	SchemeCode      string                `json:"scheme_code"`
	Name            string                `json:"name"`
	Description     string                `json:"description"`
	ValueType       scheme.ValueType      `json:"value_type"`
	StartDate       time.Time             `json:"start_date"`
	EndDate         time.Time             `json:"end_date"`
	FixedStateCodes []string              `json:"fixed_state_codes"`
	FixedStateNames []string              `json:"fixed_state_names"`
	SKUPackEntries  []scheme.SKUPackEntry `json:"sku_pack_entries"`
	Status          scheme.Status         `json:"status"`
	ActivatedAt     *time.Time            `json:"activated_at,omitempty"`
	CreatedAt       time.Time             `json:"created_at"`
	UpdatedAt       time.Time             `json:"updated_at"`
}

// SchemeListItem is the summary row shown in the scheme list.
type SchemeListItem struct {
	ID          uuid.UUID        `json:"id"`
	SchemeCode  string           `json:"scheme_code"`
	Name        string           `json:"name"`
	ValueType   scheme.ValueType `json:"value_type"`
	StartDate   time.Time        `json:"start_date"`
	EndDate     time.Time        `json:"end_date"`
	RegionCount int              `json:"region_count"`
	EntryCount  int              `json:"entry_count"`
	Status      scheme.Status    `json:"status"`
	CreatedAt   time.Time        `json:"created_at"`
}

type SchemeFilters struct {
	Status    *scheme.Status
	ValueType *scheme.ValueType
}

// CoverageView lists the effective value of every fixed region for one entry.
type CoverageView struct {
	SchemeID   uuid.UUID               `json:"scheme_id"`
	EntryIndex int                     `json:"entry_index"`
	SKUID      string                  `json:"sku_id"`
	PackSizeID string                  `json:"pack_size_id"`
	Values     []scheme.EffectiveValue `json:"values"`
}

func toSchemeView(d *scheme.Definition, now time.Time) *SchemeView {
	return &SchemeView{
		ID:              d.ID(),
		SchemeCode:      d.SchemeCode(),
		Name:            d.Name(),
		Description:     d.Description(),
		ValueType:       d.ValueType(),
		StartDate:       d.StartDate(),
		EndDate:         d.EndDate(),
		FixedStateCodes: d.FixedStateCodes(),
		FixedStateNames: d.FixedStateNames(),
		SKUPackEntries:  d.SKUPackEntries(),
		Status:          d.StatusAt(now),
		ActivatedAt:     d.ActivatedAt(),
		CreatedAt:       d.CreatedAt(),
		UpdatedAt:       d.UpdatedAt(),
	}
}

func toSchemeListItem(d *scheme.Definition, now time.Time) *SchemeListItem {
	return &SchemeListItem{
		ID:          d.ID(),
		SchemeCode:  d.SchemeCode(),
		Name:        d.Name(),
		ValueType:   d.ValueType(),
		StartDate:   d.StartDate(),
		EndDate:     d.EndDate(),
		RegionCount: len(d.FixedStateCodes()),
		EntryCount:  len(d.SKUPackEntries()),
		Status:      d.StatusAt(now),
		CreatedAt:   d.CreatedAt(),
	}
}
