package scheme

import (
	"strings"
	"time"

	"scheme-console/internal/pkg/errs"
	"scheme-console/internal/pkg/patch"
)

// Draft is an in-progress scheme. It is a value: every mutation returns a new
// Draft and a failed mutation returns the receiver unchanged.
type Draft struct {
	code string
	form FormData
}

type FormPatch struct {
	Name        *string
	Description *string
	StartDate   *time.Time
	EndDate     *time.Time
}

type EntryPatch struct {
	SKUID          *string
	SKUName        *string
	PackSizeID     *string
	PackSizeLabel  *string
	CouponCount    *int
	CouponValue    *float64
	ExpiryDate     *time.Time
	CouponTypeID   *string
	CouponTypeName *string
}

type OverridePatch struct {
	StateCodes  *[]string
	ValueType   *ValueType
	Value       *float64
	CouponCount *int
}

func NewDraft(code string) Draft {
	return Draft{
		code: code,
		form: FormData{
			ValueType:       ValueTypeRupees,
			FixedStateCodes: []string{},
			SKUPackEntries:  []SKUPackEntry{},
		},
	}
}

// DraftFromForm starts a draft from an already filled form, e.g. one received over the wire.
func DraftFromForm(code string, form FormData) Draft {
	return Draft{code: code, form: normalizeForm(cloneForm(form))}
}

func (d Draft) Code() string         { return d.code }
func (d Draft) Form() FormData       { return cloneForm(d.form) }
func (d Draft) EntryCount() int      { return len(d.form.SKUPackEntries) }
func (d Draft) ValueType() ValueType { return d.form.ValueType }

func (d Draft) with(form FormData) Draft {
	return Draft{code: d.code, form: form}
}

func (d Draft) edit() FormData {
	return cloneForm(d.form)
}

func (d Draft) Update(p FormPatch) Draft {
	f := d.edit()
	if p.Name != nil {
		f.Name = strings.TrimSpace(*p.Name)
	}
	if p.Description != nil {
		f.Description = strings.TrimSpace(*p.Description)
	}
	f.StartDate = patch.CoalesceFunc(p.StartDate, f.StartDate, NormalizeDate)
	f.EndDate = patch.CoalesceFunc(p.EndDate, f.EndDate, NormalizeDate)
	return d.with(f)
}

// SetValueType switches the catalog segment; existing entries belong to the old segment and are dropped.
func (d Draft) SetValueType(vt ValueType) (Draft, error) {
	if !vt.IsValid() {
		return d, ErrInvalidValueType
	}
	f := d.edit()
	f.ValueType = vt
	f.SKUPackEntries = []SKUPackEntry{}
	return d.with(f), nil
}

// SetFixedRegions replaces the fixed region set and strips codes that are no
// longer fixed from every override. Overrides left without codes are removed.
func (d Draft) SetFixedRegions(codes []string) Draft {
	f := d.edit()
	f.FixedStateCodes = NormalizeCodes(codes)
	fixed := codeSet(f.FixedStateCodes)
	for i := range f.SKUPackEntries {
		f.SKUPackEntries[i].RegionOverrides = pruneOverrides(f.SKUPackEntries[i].RegionOverrides, fixed)
	}
	return d.with(f)
}

func pruneOverrides(overrides []RegionOverride, fixed map[string]struct{}) []RegionOverride {
	kept := make([]RegionOverride, 0, len(overrides))
	for _, o := range overrides {
		named := len(o.StateNames) == len(o.StateCodes)
		codes := make([]string, 0, len(o.StateCodes))
		var names []string
		for i, c := range o.StateCodes {
			if _, ok := fixed[c]; !ok {
				continue
			}
			codes = append(codes, c)
			if named {
				names = append(names, o.StateNames[i])
			}
		}
		if len(codes) == 0 {
			continue
		}
		o.StateCodes = codes
		o.StateNames = names
		kept = append(kept, o)
	}
	return kept
}

func (d Draft) AddEntry(entry SKUPackEntry) (Draft, error) {
	entry.SKUID = strings.TrimSpace(entry.SKUID)
	entry.PackSizeID = strings.TrimSpace(entry.PackSizeID)
	if entry.SKUID == "" || entry.PackSizeID == "" {
		return d, ErrMissingEntryKey
	}
	if d.form.indexOf(entry.Key(), -1) >= 0 {
		return d, errs.Wrapf(ErrDuplicateEntry, "sku %s pack %s", entry.SKUID, entry.PackSizeID)
	}

	f := d.edit()
	incoming := entry.RegionOverrides
	entry.RegionOverrides = []RegionOverride{}
	entry.ExpiryDate = NormalizeDate(entry.ExpiryDate)
	for _, o := range incoming {
		o.StateCodes = NormalizeCodes(o.StateCodes)
		if len(o.StateCodes) == 0 {
			return d, ErrEmptyStateCodes
		}
		if err := checkClaim(f, entry.RegionOverrides, o.StateCodes, -1); err != nil {
			return d, err
		}
		entry.RegionOverrides = append(entry.RegionOverrides, o)
	}
	f.SKUPackEntries = append(f.SKUPackEntries, entry)
	return d.with(f), nil
}

func (d Draft) RemoveEntry(index int) (Draft, error) {
	if err := d.checkEntryIndex(index); err != nil {
		return d, err
	}
	f := d.edit()
	f.SKUPackEntries = append(f.SKUPackEntries[:index], f.SKUPackEntries[index+1:]...)
	return d.with(f), nil
}

// UpdateEntry shallow-merges p into the entry. Cross-field rules are left to
// Validate, except that the (sku, pack) key must stay unique.
func (d Draft) UpdateEntry(index int, p EntryPatch) (Draft, error) {
	if err := d.checkEntryIndex(index); err != nil {
		return d, err
	}
	f := d.edit()
	e := f.SKUPackEntries[index]
	keyChanged := patch.Changed(p.SKUID, e.SKUID) || patch.Changed(p.PackSizeID, e.PackSizeID)

	e.SKUID = patch.ID(p.SKUID, e.SKUID)
	e.SKUName = patch.Coalesce(p.SKUName, e.SKUName)
	e.PackSizeID = patch.ID(p.PackSizeID, e.PackSizeID)
	e.PackSizeLabel = patch.Coalesce(p.PackSizeLabel, e.PackSizeLabel)
	e.CouponCount = patch.Coalesce(p.CouponCount, e.CouponCount)
	e.CouponValue = patch.Coalesce(p.CouponValue, e.CouponValue)
	e.ExpiryDate = patch.CoalesceFunc(p.ExpiryDate, e.ExpiryDate, NormalizeDate)
	e.CouponTypeID = patch.ID(p.CouponTypeID, e.CouponTypeID)
	e.CouponTypeName = patch.Coalesce(p.CouponTypeName, e.CouponTypeName)

	if e.SKUID == "" || e.PackSizeID == "" {
		return d, ErrMissingEntryKey
	}
	if keyChanged && f.indexOf(e.Key(), index) >= 0 {
		return d, errs.Wrapf(ErrDuplicateEntry, "sku %s pack %s", e.SKUID, e.PackSizeID)
	}

	f.SKUPackEntries[index] = e
	return d.with(f), nil
}

// AddOverride claims codes on one entry with value and count defaulted to 0.
func (d Draft) AddOverride(entryIndex int, codes []string) (Draft, error) {
	if err := d.checkEntryIndex(entryIndex); err != nil {
		return d, err
	}
	codes = NormalizeCodes(codes)
	if len(codes) == 0 {
		return d, ErrEmptyStateCodes
	}

	f := d.edit()
	e := &f.SKUPackEntries[entryIndex]
	if err := checkClaim(f, e.RegionOverrides, codes, -1); err != nil {
		return d, err
	}
	e.RegionOverrides = append(e.RegionOverrides, RegionOverride{
		StateCodes: codes,
		ValueType:  f.ValueType,
	})
	return d.with(f), nil
}

func (d Draft) UpdateOverride(entryIndex, overrideIndex int, p OverridePatch) (Draft, error) {
	if err := d.checkOverrideIndex(entryIndex, overrideIndex); err != nil {
		return d, err
	}
	f := d.edit()
	e := &f.SKUPackEntries[entryIndex]
	o := e.RegionOverrides[overrideIndex]

	if p.StateCodes != nil {
		codes := NormalizeCodes(*p.StateCodes)
		if len(codes) == 0 {
			return d, ErrEmptyStateCodes
		}
		if err := checkClaim(f, e.RegionOverrides, codes, overrideIndex); err != nil {
			return d, err
		}
		o.StateCodes = codes
		o.StateNames = nil
	}
	if p.ValueType != nil {
		if !p.ValueType.IsValid() {
			return d, ErrInvalidValueType
		}
		o.ValueType = *p.ValueType
	}
	o.Value = patch.Coalesce(p.Value, o.Value)
	o.CouponCount = patch.Coalesce(p.CouponCount, o.CouponCount)

	e.RegionOverrides[overrideIndex] = o
	return d.with(f), nil
}

func (d Draft) RemoveOverride(entryIndex, overrideIndex int) (Draft, error) {
	if err := d.checkOverrideIndex(entryIndex, overrideIndex); err != nil {
		return d, err
	}
	f := d.edit()
	e := &f.SKUPackEntries[entryIndex]
	e.RegionOverrides = append(e.RegionOverrides[:overrideIndex], e.RegionOverrides[overrideIndex+1:]...)
	return d.with(f), nil
}

// CanAdvance reports whether the draft satisfies the requirements of stage.
func (d Draft) CanAdvance(stage Stage) bool {
	f := d.form
	switch stage {
	case StageIdentity:
		return strings.TrimSpace(f.Name) != "" &&
			!f.StartDate.IsZero() && !f.EndDate.IsZero() &&
			f.StartDate.Before(f.EndDate)
	case StageRegions:
		return len(f.FixedStateCodes) > 0
	case StageEntries:
		return len(f.SKUPackEntries) > 0
	case StageDetails:
		for _, e := range f.SKUPackEntries {
			if e.CouponCount <= 0 || e.CouponValue <= 0 || e.ExpiryDate.IsZero() || e.CouponTypeID == "" {
				return false
			}
		}
		return true
	case StageReview:
		return true
	default:
		return false
	}
}

func (d Draft) checkEntryIndex(index int) error {
	if index < 0 || index >= len(d.form.SKUPackEntries) {
		return errs.Wrapf(ErrIndexOutOfRange, "entry %d", index)
	}
	return nil
}

func (d Draft) checkOverrideIndex(entryIndex, overrideIndex int) error {
	if err := d.checkEntryIndex(entryIndex); err != nil {
		return err
	}
	if overrideIndex < 0 || overrideIndex >= len(d.form.SKUPackEntries[entryIndex].RegionOverrides) {
		return errs.Wrapf(ErrIndexOutOfRange, "override %d of entry %d", overrideIndex, entryIndex)
	}
	return nil
}

// checkClaim rejects codes outside the fixed set or already claimed by another override of the entry.
func checkClaim(f FormData, overrides []RegionOverride, codes []string, skip int) error {
	for _, c := range codes {
		if !f.IsFixed(c) {
			return errs.Wrapf(ErrRegionConflict, "region %s is not a fixed region of the scheme", c)
		}
		for i, o := range overrides {
			if i != skip && o.Covers(c) {
				return errs.Wrapf(ErrRegionConflict, "region %s is already claimed by override %d", c, i)
			}
		}
	}
	return nil
}
