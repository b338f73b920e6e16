package scheme

import (
	"fmt"
	"regexp"
	"time"

	"scheme-console/internal/pkg/errs"
)

const (
	DefaultCodePrefix = "SCH"
	MaxDailySequence  = 999
	codeDayLayout     = "20060102"
)

var codePattern = regexp.MustCompile(`^[A-Z][A-Z0-9]{0,9}-\d{8}-\d{3}$`)

// FormatCode renders prefix-YYYYMMDD-NNN. The sequence is capped at three
// digits so codes stay lexically sortable by creation order.
func FormatCode(prefix string, day time.Time, seq int64) (string, error) {
	if seq < 1 || seq > MaxDailySequence {
		return "", errs.Wrapf(ErrCodeSpaceExhausted, "sequence %d for %s", seq, CodeDay(day))
	}
	code := fmt.Sprintf("%s-%s-%03d", prefix, CodeDay(day), seq)
	if !IsValidCode(code) {
		return "", errs.Wrapf(ErrInvalidSchemeCode, "prefix %q", prefix)
	}
	return code, nil
}

func CodeDay(t time.Time) string {
	return t.Format(codeDayLayout)
}

func IsValidCode(code string) bool {
	return codePattern.MatchString(code)
}
