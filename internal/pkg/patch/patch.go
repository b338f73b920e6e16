// Package patch holds helpers for applying partial updates where a nil
// pointer means "leave the field alone".
package patch

import "strings"

func Coalesce[T any](ptr *T, fallback T) T {
	if ptr != nil {
		return *ptr
	}
	return fallback
}

// CoalesceFunc is Coalesce followed by normalize. The fallback is normalized
// too, so a stored value that predates a normalization rule is brought in line.
func CoalesceFunc[T any](ptr *T, fallback T, normalize func(T) T) T {
	return normalize(Coalesce(ptr, fallback))
}

// ID coalesces an identifier and trims surrounding whitespace.
func ID(ptr *string, fallback string) string {
	return CoalesceFunc(ptr, fallback, strings.TrimSpace)
}

// Changed reports whether ptr is set to something other than current.
func Changed[T comparable](ptr *T, current T) bool {
	return ptr != nil && *ptr != current
}
