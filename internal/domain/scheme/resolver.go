package scheme

import "scheme-console/internal/pkg/errs"

type EffectiveValue struct {
	RegionCode  string      `json:"regionCode"`
	ValueType   ValueType   `json:"valueType"`
	Value       float64     `json:"value"`
	CouponCount int         `json:"couponCount"`
	Source      ValueSource `json:"source"`
}

// Resolve returns the value a region receives for one entry. An override that
// covers the region wins over the entry default; the entry default applies to
// the remaining fixed regions; any other region is not covered.
func Resolve(form FormData, entryIndex int, regionCode string) (EffectiveValue, error) {
	if entryIndex < 0 || entryIndex >= len(form.SKUPackEntries) {
		return EffectiveValue{}, errs.Wrapf(ErrIndexOutOfRange, "entry %d", entryIndex)
	}
	code := NormalizeCode(regionCode)
	entry := form.SKUPackEntries[entryIndex]

	for _, o := range entry.RegionOverrides {
		if o.Covers(code) {
			return EffectiveValue{
				RegionCode:  code,
				ValueType:   o.ValueType,
				Value:       o.Value,
				CouponCount: o.CouponCount,
				Source:      SourceOverride,
			}, nil
		}
	}

	if form.IsFixed(code) {
		return EffectiveValue{
			RegionCode:  code,
			ValueType:   form.ValueType,
			Value:       entry.CouponValue,
			CouponCount: entry.CouponCount,
			Source:      SourceEntryDefault,
		}, nil
	}

	return EffectiveValue{}, errs.Wrapf(ErrRegionNotCovered, "region %s for entry %d", code, entryIndex)
}

// Coverage resolves every fixed region of one entry, in fixed-region order.
func Coverage(form FormData, entryIndex int) ([]EffectiveValue, error) {
	if entryIndex < 0 || entryIndex >= len(form.SKUPackEntries) {
		return nil, errs.Wrapf(ErrIndexOutOfRange, "entry %d", entryIndex)
	}
	out := make([]EffectiveValue, 0, len(form.FixedStateCodes))
	for _, code := range form.FixedStateCodes {
		v, err := Resolve(form, entryIndex, code)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}
