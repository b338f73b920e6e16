package scheme

import (
	"strings"
	"time"

	"scheme-console/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type RegionOverride struct {
	StateCodes  []string  `json:"stateCodes"`
	StateNames  []string  `json:"stateNames,omitempty"`
	ValueType   ValueType `json:"valueType"`
	Value       float64   `json:"value"`
	CouponCount int       `json:"couponCount"`
}

func (o RegionOverride) Covers(code string) bool {
	for _, c := range o.StateCodes {
		if c == code {
			return true
		}
	}
	return false
}

type EntryKey struct {
	SKUID      string
	PackSizeID string
}

type SKUPackEntry struct {
	SKUID           string           `json:"skuId"`
	SKUName         string           `json:"skuName"`
	PackSizeID      string           `json:"packSizeId"`
	PackSizeLabel   string           `json:"packSizeLabel"`
	CouponCount     int              `json:"couponCount"`
	CouponValue     float64          `json:"couponValue"`
	ExpiryDate      time.Time        `json:"expiryDate"`
	CouponTypeID    string           `json:"couponTypeId"`
	CouponTypeName  string           `json:"couponTypeName"`
	RegionOverrides []RegionOverride `json:"regionOverrides"`
}

func (e SKUPackEntry) Key() EntryKey {
	return EntryKey{SKUID: e.SKUID, PackSizeID: e.PackSizeID}
}

// FormData is the editable shape of a scheme: everything except identity, status and timestamps.
type FormData struct {
	Name            string         `json:"name"`
	Description     string         `json:"description"`
	ValueType       ValueType      `json:"valueType"`
	StartDate       time.Time      `json:"startDate"`
	EndDate         time.Time      `json:"endDate"`
	FixedStateCodes []string       `json:"fixedStateCodes"`
	SKUPackEntries  []SKUPackEntry `json:"skuPackEntries"`
}

func (f FormData) IsFixed(code string) bool {
	for _, c := range f.FixedStateCodes {
		if c == code {
			return true
		}
	}
	return false
}

func (f FormData) indexOf(key EntryKey, skip int) int {
	for i, e := range f.SKUPackEntries {
		if i != skip && e.Key() == key {
			return i
		}
	}
	return -1
}

var cloneOpts = copier.Option{
	DeepCopy: true,
	Converters: []copier.TypeConverter{
		{
			SrcType: time.Time{},
			DstType: time.Time{},
			Fn:      func(src any) (any, error) { return src, nil },
		},
	},
}

func cloneForm(f FormData) FormData {
	var out FormData
	if err := copier.CopyWithOption(&out, &f, cloneOpts); err != nil {
		panic("scheme: clone form: " + err.Error())
	}
	return out
}

// normalizeForm trims text, normalizes region codes and dates, and never leaves nil override slices.
func normalizeForm(f FormData) FormData {
	f.Name = strings.TrimSpace(f.Name)
	f.Description = strings.TrimSpace(f.Description)
	f.StartDate = NormalizeDate(f.StartDate)
	f.EndDate = NormalizeDate(f.EndDate)
	f.FixedStateCodes = NormalizeCodes(f.FixedStateCodes)
	for i := range f.SKUPackEntries {
		e := &f.SKUPackEntries[i]
		e.SKUID = strings.TrimSpace(e.SKUID)
		e.PackSizeID = strings.TrimSpace(e.PackSizeID)
		e.CouponTypeID = strings.TrimSpace(e.CouponTypeID)
		e.ExpiryDate = NormalizeDate(e.ExpiryDate)
		if e.RegionOverrides == nil {
			e.RegionOverrides = []RegionOverride{}
		}
		for j := range e.RegionOverrides {
			e.RegionOverrides[j].StateCodes = NormalizeCodes(e.RegionOverrides[j].StateCodes)
		}
	}
	return f
}

type Definition struct {
	id              uuid.UUID
	schemeCode      string
	form            FormData
	fixedStateNames []string
	status          Status
	activatedAt     *time.Time
	createdAt       time.Time
	updatedAt       time.Time
}

// NewDefinition builds a persisted-to-be scheme in draft status. The form must pass Validate.
func NewDefinition(id uuid.UUID, code string, form FormData, names RegionNames, now time.Time) (*Definition, error) {
	if !IsValidCode(code) {
		return nil, errs.Wrapf(ErrInvalidSchemeCode, "code %q", code)
	}

	form = normalizeForm(cloneForm(form))
	if report := Validate(form, ValidationOptions{}); report.HasErrors() {
		return nil, report.Errors
	}

	for i := range form.SKUPackEntries {
		for j := range form.SKUPackEntries[i].RegionOverrides {
			o := &form.SKUPackEntries[i].RegionOverrides[j]
			o.StateNames = names.Lookup(o.StateCodes)
		}
	}

	if id == uuid.Nil {
		id = uuid.New()
	}

	return &Definition{
		id:              id,
		schemeCode:      code,
		form:            form,
		fixedStateNames: names.Lookup(form.FixedStateCodes),
		status:          StatusDraft,
		createdAt:       now,
		updatedAt:       now,
	}, nil
}

func ReconstructDefinition(
	id uuid.UUID,
	code string,
	form FormData,
	fixedStateNames []string,
	status Status,
	activatedAt *time.Time,
	createdAt, updatedAt time.Time,
) *Definition {
	return &Definition{
		id:              id,
		schemeCode:      code,
		form:            normalizeForm(form),
		fixedStateNames: fixedStateNames,
		status:          status,
		activatedAt:     activatedAt,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}
}

// Activate is the administrative draft -> active trigger.
func (d *Definition) Activate(now time.Time) error {
	if d.StatusAt(now) == StatusExpired {
		return ErrSchemeExpired
	}
	if d.activatedAt == nil {
		at := now
		d.activatedAt = &at
	}
	d.status = Classify(d.form.StartDate, d.form.EndDate, now, true)
	d.updatedAt = now
	return nil
}

func (d *Definition) StatusAt(now time.Time) Status {
	return Classify(d.form.StartDate, d.form.EndDate, now, d.activatedAt != nil)
}

func (d *Definition) Resolve(entryIndex int, regionCode string) (EffectiveValue, error) {
	return Resolve(d.form, entryIndex, regionCode)
}

func (d *Definition) Coverage(entryIndex int) ([]EffectiveValue, error) {
	return Coverage(d.form, entryIndex)
}

func (d *Definition) ID() uuid.UUID                  { return d.id }
func (d *Definition) SchemeCode() string             { return d.schemeCode }
func (d *Definition) Name() string                   { return d.form.Name }
func (d *Definition) Description() string            { return d.form.Description }
func (d *Definition) ValueType() ValueType           { return d.form.ValueType }
func (d *Definition) StartDate() time.Time           { return d.form.StartDate }
func (d *Definition) EndDate() time.Time             { return d.form.EndDate }
func (d *Definition) FixedStateCodes() []string      { return append([]string(nil), d.form.FixedStateCodes...) }
func (d *Definition) FixedStateNames() []string      { return append([]string(nil), d.fixedStateNames...) }
func (d *Definition) SKUPackEntries() []SKUPackEntry { return cloneForm(d.form).SKUPackEntries }
func (d *Definition) Form() FormData                 { return cloneForm(d.form) }
func (d *Definition) Status() Status                 { return d.status }
func (d *Definition) ActivatedAt() *time.Time        { return d.activatedAt }
func (d *Definition) CreatedAt() time.Time           { return d.createdAt }
func (d *Definition) UpdatedAt() time.Time           { return d.updatedAt }
