//go:build unit

package scheme_test

import (
	"testing"
	"time"

	"scheme-console/internal/domain/scheme"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatCode(t *testing.T) {
	day := time.Date(2026, 10, 17, 23, 0, 0, 0, time.UTC)

	testCases := []struct {
		name   string
		prefix string
		seq    int64
		want   string
		errIs  error
	}{
		{name: "first of the day", prefix: "SCH", seq: 1, want: "SCH-20261017-001"},
		{name: "last of the day", prefix: "SCH", seq: 999, want: "SCH-20261017-999"},
		{name: "custom prefix", prefix: "DIW", seq: 42, want: "DIW-20261017-042"},
		{name: "sequence exhausted", prefix: "SCH", seq: 1000, errIs: scheme.ErrCodeSpaceExhausted},
		{name: "sequence zero", prefix: "SCH", seq: 0, errIs: scheme.ErrCodeSpaceExhausted},
		{name: "lowercase prefix", prefix: "sch", seq: 1, errIs: scheme.ErrInvalidSchemeCode},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			code, err := scheme.FormatCode(tc.prefix, day, tc.seq)
			if tc.errIs != nil {
				require.ErrorIs(t, err, tc.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, code)
			assert.True(t, scheme.IsValidCode(code))
		})
	}
}

func TestIsValidCode(t *testing.T) {
	assert.True(t, scheme.IsValidCode("SCH-20261017-001"))
	assert.False(t, scheme.IsValidCode("SCH-2026101-001"))
	assert.False(t, scheme.IsValidCode("SCH-20261017-1"))
	assert.False(t, scheme.IsValidCode(""))
}
