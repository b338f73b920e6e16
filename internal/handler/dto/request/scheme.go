package request

import (
	"scheme-console/internal/domain/scheme"
	"scheme-console/internal/pkg/errs"
)

type RegionOverrideRequest struct {
	StateCodes  []string `json:"state_codes" binding:"required,min=1"`
	ValueType   string   `json:"value_type" binding:"required,oneof=rupees points"`
	Value       float64  `json:"value"`
	CouponCount int      `json:"coupon_count"`
}

// Numeric fields carry no binding rules: range problems are reported by
// scheme validation as field errors.
type SKUPackEntryRequest struct {
	SKUID           string                  `json:"sku_id" binding:"required"`
	PackSizeID      string                  `json:"pack_size_id" binding:"required"`
	CouponCount     int                     `json:"coupon_count"`
	CouponValue     float64                 `json:"coupon_value"`
	ExpiryDate      string                  `json:"expiry_date"`
	CouponTypeID    string                  `json:"coupon_type_id"`
	RegionOverrides []RegionOverrideRequest `json:"region_overrides" binding:"omitempty,dive"`
}

type CreateSchemeRequest struct {
	SchemeCode      string                `json:"scheme_code" binding:"omitempty,max=32"`
	Name            string                `json:"name" binding:"required,max=200"`
	Description     string                `json:"description" binding:"max=2000"`
	ValueType       string                `json:"value_type" binding:"required,oneof=rupees points"`
	StartDate       string                `json:"start_date" binding:"required"`
	EndDate         string                `json:"end_date" binding:"required"`
	FixedStateCodes []string              `json:"fixed_state_codes" binding:"required,min=1"`
	SKUPackEntries  []SKUPackEntryRequest `json:"sku_pack_entries" binding:"required,min=1,dive"`
}

func (r *CreateSchemeRequest) ToDomain() (string, scheme.FormData, error) {
	vt, err := scheme.NewValueType(r.ValueType)
	if err != nil {
		return "", scheme.FormData{}, err
	}
	start, err := scheme.ParseDate(r.StartDate)
	if err != nil {
		return "", scheme.FormData{}, errs.Wrap(err, "start_date")
	}
	end, err := scheme.ParseDate(r.EndDate)
	if err != nil {
		return "", scheme.FormData{}, errs.Wrap(err, "end_date")
	}

	entries := make([]scheme.SKUPackEntry, 0, len(r.SKUPackEntries))
	for _, e := range r.SKUPackEntries {
		expiry, err := scheme.ParseDate(e.ExpiryDate)
		if err != nil {
			return "", scheme.FormData{}, errs.Wrapf(err, "expiry_date of sku %s", e.SKUID)
		}
		overrides := make([]scheme.RegionOverride, 0, len(e.RegionOverrides))
		for _, o := range e.RegionOverrides {
			ovt, err := scheme.NewValueType(o.ValueType)
			if err != nil {
				return "", scheme.FormData{}, err
			}
			overrides = append(overrides, scheme.RegionOverride{
				StateCodes:  o.StateCodes,
				ValueType:   ovt,
				Value:       o.Value,
				CouponCount: o.CouponCount,
			})
		}
		entries = append(entries, scheme.SKUPackEntry{
			SKUID:           e.SKUID,
			PackSizeID:      e.PackSizeID,
			CouponCount:     e.CouponCount,
			CouponValue:     e.CouponValue,
			ExpiryDate:      expiry,
			CouponTypeID:    e.CouponTypeID,
			RegionOverrides: overrides,
		})
	}

	return r.SchemeCode, scheme.FormData{
		Name:            r.Name,
		Description:     r.Description,
		ValueType:       vt,
		StartDate:       start,
		EndDate:         end,
		FixedStateCodes: r.FixedStateCodes,
		SKUPackEntries:  entries,
	}, nil
}
