package scheme

import (
	"strings"
	"time"
)

const DateLayout = "2006-01-02"

type Region struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

type SKU struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Code string `json:"code"`
}

type PackSize struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	SKUID string `json:"skuId"`
}

type CouponType struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// RegionNames maps a region code to its display name.
type RegionNames map[string]string

func RegionNamesOf(regions []Region) RegionNames {
	names := make(RegionNames, len(regions))
	for _, r := range regions {
		names[NormalizeCode(r.Code)] = r.Name
	}
	return names
}

func (n RegionNames) Lookup(codes []string) []string {
	out := make([]string, len(codes))
	for i, c := range codes {
		if name, ok := n[c]; ok {
			out[i] = name
		} else {
			out[i] = c
		}
	}
	return out
}

func (n RegionNames) Codes() []string {
	out := make([]string, 0, len(n))
	for c := range n {
		out = append(out, c)
	}
	return out
}

// NormalizeDate truncates t to a calendar date at UTC midnight.
func NormalizeDate(t time.Time) time.Time {
	if t.IsZero() {
		return time.Time{}
	}
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return t, nil
}

func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(DateLayout)
}

func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// NormalizeCodes uppercases and trims codes, drops blanks and duplicates, and keeps first-seen order.
func NormalizeCodes(codes []string) []string {
	out := make([]string, 0, len(codes))
	seen := make(map[string]struct{}, len(codes))
	for _, c := range codes {
		c = NormalizeCode(c)
		if c == "" {
			continue
		}
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		out = append(out, c)
	}
	return out
}

func codeSet(codes []string) map[string]struct{} {
	set := make(map[string]struct{}, len(codes))
	for _, c := range codes {
		set[c] = struct{}{}
	}
	return set
}
