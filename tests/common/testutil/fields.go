//go:build unit || e2e

package testutil

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

// converts a request DTO to its JSON object form and applies the mutators
func DtoMap(t *testing.T, v any, muts ...func(map[string]any)) map[string]any {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	var m map[string]any
	require.NoError(t, json.Unmarshal(b, &m))
	for _, f := range muts {
		f(m)
	}
	return m
}

// a helper function for dynamically modifying map fields in tests
func Field(key string, value any) func(m map[string]any) {
	return func(m map[string]any) {
		if value == nil {
			delete(m, key)
		} else {
			m[key] = value
		}
	}
}

// modifies a field of the sku pack entry at index
func EntryField(index int, key string, value any) func(m map[string]any) {
	return func(m map[string]any) {
		if entry := element(m, "sku_pack_entries", index); entry != nil {
			Field(key, value)(entry)
		}
	}
}

// modifies a field of a region override nested in the entry at index
func OverrideField(index, overrideIndex int, key string, value any) func(m map[string]any) {
	return func(m map[string]any) {
		entry := element(m, "sku_pack_entries", index)
		if entry == nil {
			return
		}
		if override := element(entry, "region_overrides", overrideIndex); override != nil {
			Field(key, value)(override)
		}
	}
}

func element(m map[string]any, key string, index int) map[string]any {
	list, ok := m[key].([]any)
	if !ok || index < 0 || index >= len(list) {
		return nil
	}
	el, _ := list[index].(map[string]any)
	return el
}
