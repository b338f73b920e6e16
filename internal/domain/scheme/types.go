package scheme

type ValueType string

const (
	ValueTypeRupees ValueType = "rupees"
	ValueTypePoints ValueType = "points"
)

func (v ValueType) String() string {
	return string(v)
}

func (v ValueType) IsValid() bool {
	switch v {
	case ValueTypeRupees, ValueTypePoints:
		return true
	default:
		return false
	}
}

func NewValueType(s string) (ValueType, error) {
	vt := ValueType(s)
	if !vt.IsValid() {
		return "", ErrInvalidValueType
	}
	return vt, nil
}

type Status string

const (
	StatusDraft   Status = "draft"
	StatusActive  Status = "active"
	StatusExpired Status = "expired"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusDraft, StatusActive, StatusExpired:
		return true
	default:
		return false
	}
}

func NewStatus(s string) (Status, error) {
	st := Status(s)
	if !st.IsValid() {
		return "", ErrInvalidStatus
	}
	return st, nil
}

// Stage is one step of the scheme wizard, in order.
type Stage int

const (
	StageIdentity Stage = iota + 1
	StageRegions
	StageEntries
	StageDetails
	StageReview
)

func (s Stage) IsValid() bool {
	return s >= StageIdentity && s <= StageReview
}

func (s Stage) String() string {
	switch s {
	case StageIdentity:
		return "identity"
	case StageRegions:
		return "regions"
	case StageEntries:
		return "entries"
	case StageDetails:
		return "details"
	case StageReview:
		return "review"
	default:
		return "unknown"
	}
}

type ValueSource string

const (
	SourceOverride     ValueSource = "override"
	SourceEntryDefault ValueSource = "entry_default"
)
