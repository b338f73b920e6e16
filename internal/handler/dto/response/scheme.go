package response

import (
	"scheme-console/internal/domain/scheme"
	"scheme-console/internal/usecase/queries"
)

type RegionOverrideResponse struct {
	StateCodes  []string `json:"state_codes"`
	StateNames  []string `json:"state_names"`
	ValueType   string   `json:"value_type"`
	Value       float64  `json:"value"`
	CouponCount int      `json:"coupon_count"`
}

type SKUPackEntryResponse struct {
	SKUID           string                   `json:"sku_id"`
	SKUName         string                   `json:"sku_name"`
	PackSizeID      string                   `json:"pack_size_id"`
	PackSizeLabel   string                   `json:"pack_size_label"`
	CouponCount     int                      `json:"coupon_count"`
	CouponValue     float64                  `json:"coupon_value"`
	ExpiryDate      string                   `json:"expiry_date"`
	CouponTypeID    string                   `json:"coupon_type_id"`
	CouponTypeName  string                   `json:"coupon_type_name"`
	RegionOverrides []RegionOverrideResponse `json:"region_overrides"`
}

type SchemeResponse struct {
	ID              string                 `json:"id"`
	SchemeCode      string                 `json:"scheme_code"`
	Name            string                 `json:"name"`
	Description     string                 `json:"description"`
	ValueType       string                 `json:"value_type"`
	StartDate       string                 `json:"start_date"`
	EndDate         string                 `json:"end_date"`
	FixedStateCodes []string               `json:"fixed_state_codes"`
	FixedStateNames []string               `json:"fixed_state_names"`
	SKUPackEntries  []SKUPackEntryResponse `json:"sku_pack_entries"`
	Status          string                 `json:"status"`
	ActivatedAt     *int64                 `json:"activated_at,omitempty"`
	CreatedAt       int64                  `json:"created_at"`
	UpdatedAt       int64                  `json:"updated_at"`
}

type FieldErrorResponse struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type CreateSchemeResponse struct {
	Scheme   *SchemeResponse      `json:"scheme"`
	Warnings []FieldErrorResponse `json:"warnings,omitempty"`
}

type SchemeListItemResponse struct {
	ID          string `json:"id"`
	SchemeCode  string `json:"scheme_code"`
	Name        string `json:"name"`
	ValueType   string `json:"value_type"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	RegionCount int    `json:"region_count"`
	EntryCount  int    `json:"entry_count"`
	Status      string `json:"status"`
	CreatedAt   int64  `json:"created_at"`
}

type EffectiveValueResponse struct {
	RegionCode  string  `json:"region_code"`
	ValueType   string  `json:"value_type"`
	Value       float64 `json:"value"`
	CouponCount int     `json:"coupon_count"`
	Source      string  `json:"source"`
}

type CoverageResponse struct {
	SchemeID   string                   `json:"scheme_id"`
	EntryIndex int                      `json:"entry_index"`
	SKUID      string                   `json:"sku_id"`
	PackSizeID string                   `json:"pack_size_id"`
	Values     []EffectiveValueResponse `json:"values"`
}

func FromSchemeView(v *queries.SchemeView) *SchemeResponse {
	res := &SchemeResponse{
		ID:              v.ID.String(),
		SchemeCode:      v.SchemeCode,
		Name:            v.Name,
		Description:     v.Description,
		ValueType:       v.ValueType.String(),
		StartDate:       scheme.FormatDate(v.StartDate),
		EndDate:         scheme.FormatDate(v.EndDate),
		FixedStateCodes: nonNil(v.FixedStateCodes),
		FixedStateNames: nonNil(v.FixedStateNames),
		SKUPackEntries:  fromEntries(v.SKUPackEntries),
		Status:          v.Status.String(),
		CreatedAt:       v.CreatedAt.Unix(),
		UpdatedAt:       v.UpdatedAt.Unix(),
	}
	if v.ActivatedAt != nil {
		at := v.ActivatedAt.Unix()
		res.ActivatedAt = &at
	}
	return res
}

// FromDefinition renders a freshly written scheme, whose status is the stored one.
func FromDefinition(d *scheme.Definition) *SchemeResponse {
	return FromSchemeView(&queries.SchemeView{
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
		Status:          d.Status(),
		ActivatedAt:     d.ActivatedAt(),
		CreatedAt:       d.CreatedAt(),
		UpdatedAt:       d.UpdatedAt(),
	})
}

func fromEntries(entries []scheme.SKUPackEntry) []SKUPackEntryResponse {
	res := make([]SKUPackEntryResponse, len(entries))
	for i, e := range entries {
		overrides := make([]RegionOverrideResponse, len(e.RegionOverrides))
		for j, o := range e.RegionOverrides {
			overrides[j] = RegionOverrideResponse{
				StateCodes:  nonNil(o.StateCodes),
				StateNames:  nonNil(o.StateNames),
				ValueType:   o.ValueType.String(),
				Value:       o.Value,
				CouponCount: o.CouponCount,
			}
		}
		res[i] = SKUPackEntryResponse{
			SKUID:           e.SKUID,
			SKUName:         e.SKUName,
			PackSizeID:      e.PackSizeID,
			PackSizeLabel:   e.PackSizeLabel,
			CouponCount:     e.CouponCount,
			CouponValue:     e.CouponValue,
			ExpiryDate:      scheme.FormatDate(e.ExpiryDate),
			CouponTypeID:    e.CouponTypeID,
			CouponTypeName:  e.CouponTypeName,
			RegionOverrides: overrides,
		}
	}
	return res
}

func FromFieldErrors(fes []scheme.FieldError) []FieldErrorResponse {
	if len(fes) == 0 {
		return nil
	}
	res := make([]FieldErrorResponse, len(fes))
	for i, fe := range fes {
		res[i] = FieldErrorResponse{Field: fe.Field, Message: fe.Message}
	}
	return res
}

func FromSchemeList(items []*queries.SchemeListItem) []*SchemeListItemResponse {
	res := make([]*SchemeListItemResponse, len(items))
	for i, it := range items {
		res[i] = &SchemeListItemResponse{
			ID:          it.ID.String(),
			SchemeCode:  it.SchemeCode,
			Name:        it.Name,
			ValueType:   it.ValueType.String(),
			StartDate:   scheme.FormatDate(it.StartDate),
			EndDate:     scheme.FormatDate(it.EndDate),
			RegionCount: it.RegionCount,
			EntryCount:  it.EntryCount,
			Status:      it.Status.String(),
			CreatedAt:   it.CreatedAt.Unix(),
		}
	}
	return res
}

func FromEffectiveValue(v *scheme.EffectiveValue) *EffectiveValueResponse {
	return &EffectiveValueResponse{
		RegionCode:  v.RegionCode,
		ValueType:   v.ValueType.String(),
		Value:       v.Value,
		CouponCount: v.CouponCount,
		Source:      string(v.Source),
	}
}

func FromCoverageView(v *queries.CoverageView) *CoverageResponse {
	values := make([]EffectiveValueResponse, len(v.Values))
	for i := range v.Values {
		values[i] = *FromEffectiveValue(&v.Values[i])
	}
	return &CoverageResponse{
		SchemeID:   v.SchemeID.String(),
		EntryIndex: v.EntryIndex,
		SKUID:      v.SKUID,
		PackSizeID: v.PackSizeID,
		Values:     values,
	}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
